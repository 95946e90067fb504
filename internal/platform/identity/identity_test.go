// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package identity_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/catalog/internal/platform/identity"
)

/*
TestBlock_Sequential verifies that a block hands out consecutive ids and panics when overdrawn.
*/
func TestBlock_Sequential(t *testing.T) {
	sequence := identity.NewMemorySequence(10)

	block, err := identity.NewBlock(context.Background(), sequence, 3)
	require.NoError(t, err)

	assert.Equal(t, int64(10), block.Next())
	assert.Equal(t, int64(11), block.Next())
	assert.Equal(t, 1, block.Remaining())
	assert.Equal(t, int64(12), block.Next())
	assert.Panics(t, func() { block.Next() })

	// The next reservation continues after the previous block.
	first, err := sequence.Reserve(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(13), first)
}

/*
TestBlock_RejectsEmpty ensures that zero-sized reservations are refused.
*/
func TestBlock_RejectsEmpty(t *testing.T) {
	_, err := identity.NewBlock(context.Background(), identity.NewMemorySequence(1), 0)
	assert.Error(t, err)
}

/*
TestMemorySequence_Concurrent verifies that concurrent reservations never overlap.
*/
func TestMemorySequence_Concurrent(t *testing.T) {
	sequence := identity.NewMemorySequence(1)

	const workers, size = 50, 4
	firsts := make(chan int64, workers)

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			first, err := sequence.Reserve(context.Background(), size)
			assert.NoError(t, err)
			firsts <- first
		}()
	}
	wg.Wait()
	close(firsts)

	seen := make(map[int64]bool)
	for first := range firsts {
		for id := first; id < first+size; id++ {
			assert.False(t, seen[id], "id %d handed out twice", id)
			seen[id] = true
		}
	}
	assert.Len(t, seen, workers*size)
}
