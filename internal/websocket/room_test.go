package websocket

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDirectRoomID_OrderInvariant(t *testing.T) {
	pairs := [][2]string{
		{"alice", "bob"},
		{"bob", "alice"},
		{"6f1c8e9a", "0a2b3c4d"},
		{"zed", "anna"},
	}

	for _, p := range pairs {
		require.Equal(t, DirectRoomID(p[0], p[1]), DirectRoomID(p[1], p[0]))
	}
}

func TestDirectRoomID_SortedJoin(t *testing.T) {
	require.Equal(t, "alice-bob", DirectRoomID("alice", "bob"))
	require.Equal(t, "alice-bob", DirectRoomID("bob", "alice"))
	require.Equal(t, "anna-zed", DirectRoomID("zed", "anna"))
}
