package server

import (
	grpc_prometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	"github.com/pingcap-incubator/noticeboard/board/config"
	"github.com/pingcap-incubator/noticeboard/pkg/grpcutil"
	"github.com/pingcap-incubator/noticeboard/proto/pkg/noticeboardpb"
	"google.golang.org/grpc"
	"google.golang.org/grpc/keepalive"
)

// NewGRPCServer creates a gRPC server serving server, with keepalive enforcement, TLS and gRPC metrics set up from
// conf.
func NewGRPCServer(conf *config.Config, server *Server) (*grpc.Server, error) {
	var alivePolicy = keepalive.EnforcementPolicy{
		MinTime:             conf.KeepaliveMinTime, // If a client pings more often than this, terminate the connection
		PermitWithoutStream: true,                  // Allow pings even when there are no active streams
	}

	opts, err := grpcutil.ServerOptions(conf.Security)
	if err != nil {
		return nil, err
	}
	opts = append(opts,
		grpc.KeepaliveEnforcementPolicy(alivePolicy),
		grpc.MaxRecvMsgSize(conf.MaxRecvMsgSize),
		grpc.UnaryInterceptor(grpc_prometheus.UnaryServerInterceptor),
		grpc.StreamInterceptor(grpc_prometheus.StreamServerInterceptor),
	)
	grpcServer := grpc.NewServer(opts...)
	noticeboardpb.RegisterNoticeboardServer(grpcServer, server)
	grpc_prometheus.Register(grpcServer)
	return grpcServer, nil
}
