// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package identity allocates surrogate ids for catalog nodes.

The allocator is an injectable service rather than a process-wide counter:

  - Reserve hands out a contiguous block, so one aggregate (root plus every
    owned descendant) receives sequential ids in pre-order.
  - Block allocation is serialized by every implementation, so concurrent
    duplications never receive the same id.
  - Ids are never reused, even if the operation that reserved them fails.
*/
package identity

import (
	"context"
	"fmt"
	"sync"
)

// Sequence reserves blocks of fresh surrogate ids.
type Sequence interface {
	// Reserve returns the first id of a block of n consecutive fresh ids.
	Reserve(ctx context.Context, n int) (int64, error)
}

// Block iterates over a reserved range of ids.
type Block struct {
	next  int64
	limit int64
}

// NewBlock reserves n ids from sequence and returns an iterator over them.
func NewBlock(ctx context.Context, sequence Sequence, n int) (*Block, error) {
	if n < 1 {
		return nil, fmt.Errorf("identity: block size must be positive, got %d", n)
	}

	first, err := sequence.Reserve(ctx, n)
	if err != nil {
		return nil, fmt.Errorf("identity: reserve %d ids: %w", n, err)
	}

	return &Block{next: first, limit: first + int64(n)}, nil
}

// Next returns the next id of the block. It panics if the block is exhausted,
// which means the caller miscounted the nodes it is about to create.
func (block *Block) Next() int64 {
	if block.next >= block.limit {
		panic("identity: block exhausted")
	}

	id := block.next
	block.next++
	return id
}

// Remaining returns how many ids are left in the block.
func (block *Block) Remaining() int {
	return int(block.limit - block.next)
}

// # In-Memory Sequence

// MemorySequence is a mutex-guarded counter for the memory backend and tests.
type MemorySequence struct {
	mu   sync.Mutex
	next int64
}

// NewMemorySequence constructs a [MemorySequence] whose first id is start.
func NewMemorySequence(start int64) *MemorySequence {
	if start < 1 {
		start = 1
	}
	return &MemorySequence{next: start}
}

// Reserve implements [Sequence].
func (sequence *MemorySequence) Reserve(_ context.Context, n int) (int64, error) {
	if n < 1 {
		return 0, fmt.Errorf("identity: block size must be positive, got %d", n)
	}

	sequence.mu.Lock()
	defer sequence.mu.Unlock()

	first := sequence.next
	sequence.next += int64(n)
	return first, nil
}
