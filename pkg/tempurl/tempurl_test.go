package tempurl

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocUnique(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 20; i++ {
		addr := Alloc()
		_, dup := seen[addr]
		assert.False(t, dup, addr)
		seen[addr] = struct{}{}

		host, _, err := net.SplitHostPort(addr)
		require.Nil(t, err)
		assert.Equal(t, "127.0.0.1", host)
	}
}

func TestAllocIsListenable(t *testing.T) {
	addr := Alloc()
	l, err := net.Listen("tcp", addr)
	require.Nil(t, err)
	assert.Equal(t, addr, l.Addr().String())
	require.Nil(t, l.Close())
}
