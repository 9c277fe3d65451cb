package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tanroute/bfs"
	"github.com/katalvlaran/tanroute/network"
)

// star: H→A, H→B, A→C, C→H; D isolated.
func star(t *testing.T) *network.Network {
	t.Helper()
	b := network.NewBuilder()
	for i, id := range []string{"H", "A", "B", "C", "D"} {
		require.NoError(t, b.AddStation(id, id, float64(i), 0))
	}
	for _, r := range [][2]string{{"H", "A"}, {"H", "B"}, {"A", "C"}, {"C", "H"}} {
		require.NoError(t, b.AddRoute(r[0], r[1]))
	}
	n, err := b.Build()
	require.NoError(t, err)

	return n
}

func TestReachable_Errors(t *testing.T) {
	_, err := bfs.Reachable(nil, "H")
	require.ErrorIs(t, err, bfs.ErrNilNetwork)

	_, err = bfs.Reachable(star(t), "Z")
	require.ErrorIs(t, err, bfs.ErrStartNotFound)

	_, err = bfs.Reachable(star(t), "H", bfs.WithMaxDepth(-1))
	require.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestReachable_OrderAndDepth(t *testing.T) {
	res, err := bfs.Reachable(star(t), "H")
	require.NoError(t, err)

	assert.Equal(t, []string{"H", "A", "B", "C"}, res.Order)
	assert.Equal(t, map[string]int{"H": 0, "A": 1, "B": 1, "C": 2}, res.Depth)
	assert.False(t, res.Reaches("D"))

	path, err := res.PathTo("C")
	require.NoError(t, err)
	assert.Equal(t, []string{"H", "A", "C"}, path)

	_, err = res.PathTo("D")
	assert.Error(t, err)
}

func TestReachable_Directed(t *testing.T) {
	res, err := bfs.Reachable(star(t), "B")
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, res.Order)
}

func TestReachable_MaxDepth(t *testing.T) {
	res, err := bfs.Reachable(star(t), "H", bfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []string{"H", "A", "B"}, res.Order)
}

func TestReachable_OnVisitAborts(t *testing.T) {
	stop := errors.New("stop")
	_, err := bfs.Reachable(star(t), "H", bfs.WithOnVisit(func(id string, _ int) error {
		if id == "A" {
			return stop
		}
		return nil
	}))
	require.ErrorIs(t, err, stop)
}

func TestReachable_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.Reachable(star(t), "H", bfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}
