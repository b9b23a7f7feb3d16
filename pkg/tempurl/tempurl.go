// Package tempurl hands out loopback addresses for tests that need a real listener.
package tempurl

import (
	"net"
	"sync"

	"github.com/pingcap/log"
	"go.uber.org/zap"
)

var (
	mu     sync.Mutex
	issued = make(map[string]struct{})
)

// Alloc returns a free "127.0.0.1:port" address. The same address is never returned twice in one process, so
// parallel tests do not race for a port the kernel hands out again.
func Alloc() string {
	mu.Lock()
	defer mu.Unlock()
	for {
		l, err := net.Listen("tcp", "127.0.0.1:0")
		if err != nil {
			log.Fatal("alloc test address failed", zap.Error(err))
		}
		addr := l.Addr().String()
		if err := l.Close(); err != nil {
			log.Fatal("alloc test address failed", zap.String("addr", addr), zap.Error(err))
		}
		if _, ok := issued[addr]; !ok {
			issued[addr] = struct{}{}
			return addr
		}
	}
}
