package access

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGateRoles(t *testing.T) {
	g := NewGate(true, 1)

	require.Equal(t, Admin, g.Role(1))
	require.Equal(t, Pending, g.Role(2))
	require.True(t, g.Allowed(1))
	require.False(t, g.Allowed(2))

	g.Approve(2)
	require.Equal(t, Approved, g.Role(2))
	require.True(t, g.Allowed(2))

	// approving the admin does not demote them
	g.Approve(1)
	require.Equal(t, Admin, g.Role(1))
}

func TestGateDisabled(t *testing.T) {
	g := NewGate(false, 0)

	require.True(t, g.Allowed(99))
	require.False(t, g.IsAdmin(99))
	require.Equal(t, Pending, g.Role(99))
}

func TestGateIsAdmin(t *testing.T) {
	g := NewGate(true, 7)
	require.True(t, g.IsAdmin(7))
	require.False(t, g.IsAdmin(8))
}

func TestGateConcurrentApprove(t *testing.T) {
	g := NewGate(true, 1)

	var wg sync.WaitGroup
	for i := int64(0); i < 50; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			g.Approve(id)
			g.Allowed(id)
		}(i + 100)
	}
	wg.Wait()

	for i := int64(0); i < 50; i++ {
		require.True(t, g.Allowed(i+100))
	}
}

func TestRoleString(t *testing.T) {
	require.Equal(t, "admin", Admin.String())
	require.Equal(t, "approved", Approved.String())
	require.Equal(t, "pending", Pending.String())
}
