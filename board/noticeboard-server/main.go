package main

import (
	"context"
	"flag"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pingcap-incubator/noticeboard/board/config"
	"github.com/pingcap-incubator/noticeboard/board/server"
	"github.com/pingcap-incubator/noticeboard/board/server/api"
	"github.com/pingcap-incubator/noticeboard/board/storage"
	"github.com/pingcap-incubator/noticeboard/pkg/logutil"
	"github.com/pingcap/log"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
)

var (
	configPath = flag.String("config", "", "config file path")
	addr       = flag.String("addr", "", "grpc listen address")
	statusAddr = flag.String("status-addr", "", "status http listen address")
	logLevel   = flag.String("L", "", "log level: debug, info, warn, error, fatal (default 'info')")
	emptyBoard = flag.Bool("empty-board", false, "start without seed notes")
)

var (
	gitHash = "None"
)

func main() {
	flag.Parse()
	conf, err := loadConfig()
	if err != nil {
		log.Fatal("load config failed", zap.Error(err))
	}
	if err := logutil.InitLogger(&conf.Log); err != nil {
		log.Fatal("initialize logger failed", zap.Error(err))
	}
	defer log.Sync()
	log.Info("noticeboard server", zap.String("git-hash", gitHash))
	log.Info("config", zap.Reflect("config", conf))

	mem := storage.NewMemStorage(conf.SeedNotes()...)
	boardServer := server.NewServer(mem, conf)
	log.Info("board seeded", zap.Int("notes", mem.Len()))

	grpcServer, err := server.NewGRPCServer(conf, boardServer)
	if err != nil {
		log.Fatal("create grpc server failed", zap.Error(err))
	}
	l, err := net.Listen("tcp", conf.Addr)
	if err != nil {
		log.Fatal("listen failed", zap.String("addr", conf.Addr), zap.Error(err))
	}

	var statusServer *http.Server
	if conf.StatusAddr != "" {
		statusServer = &http.Server{Addr: conf.StatusAddr, Handler: api.NewHandler(boardServer)}
	}

	ctx, cancel := context.WithCancel(context.Background())
	handleSignal(cancel)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("listening", zap.Stringer("addr", l.Addr()))
		return errors.WithStack(grpcServer.Serve(l))
	})
	if statusServer != nil {
		g.Go(func() error {
			log.Info("status listening", zap.String("addr", conf.StatusAddr))
			if err := statusServer.ListenAndServe(); err != http.ErrServerClosed {
				return errors.WithStack(err)
			}
			return nil
		})
	}
	g.Go(func() error {
		<-ctx.Done()
		stop(grpcServer, statusServer, conf.GracefulStopTimeout)
		return nil
	})
	if err := g.Wait(); err != nil {
		log.Error("server exited", zap.Error(err))
		log.Sync()
		os.Exit(1)
	}
	log.Info("Server stopped.")
}

func loadConfig() (*config.Config, error) {
	conf := config.NewDefaultConfig()
	if *configPath != "" {
		if err := conf.LoadFromFile(*configPath); err != nil {
			return nil, err
		}
	}
	if *addr != "" {
		conf.Addr = *addr
	}
	if *statusAddr != "" {
		conf.StatusAddr = *statusAddr
	}
	if *logLevel != "" {
		conf.Log.Level = *logLevel
	}
	if *emptyBoard {
		conf.EmptyBoard = true
	}
	return conf, conf.Validate()
}

// stop drains in-flight calls for at most timeout, then closes everything left.
func stop(grpcServer *grpc.Server, statusServer *http.Server, timeout time.Duration) {
	done := make(chan struct{})
	go func() {
		grpcServer.GracefulStop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(timeout):
		log.Warn("graceful stop timed out, closing connections", zap.Duration("timeout", timeout))
		grpcServer.Stop()
	}
	if statusServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if err := statusServer.Shutdown(ctx); err != nil {
			log.Warn("shutdown status server failed", zap.Error(err))
		}
	}
}

func handleSignal(cancel context.CancelFunc) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh,
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT)
	go func() {
		sig := <-sigCh
		log.Info("Got signal to exit", zap.String("signal", sig.String()))
		cancel()
	}()
}
