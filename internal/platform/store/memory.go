// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package store

import (
	"context"
	"sort"
	"strings"
	"sync"
)

// Memory is an in-process [Backend] guarded by a single RWMutex.
//
// Records are copied on the way in and out, so callers never share state
// with the stored aggregates.
type Memory struct {
	mu      sync.RWMutex
	records map[string]map[string]Record // kind -> root uuid -> record
	nodes   map[string]string            // node uuid -> root uuid
}

// NewMemory constructs an empty [Memory] backend.
func NewMemory() *Memory {
	return &Memory{
		records: make(map[string]map[string]Record),
		nodes:   make(map[string]string),
	}
}

// Get implements [Backend].
func (memory *Memory) Get(_ context.Context, kind, uuid string) (Record, error) {
	memory.mu.RLock()
	defer memory.mu.RUnlock()

	record, ok := memory.records[kind][uuid]
	if !ok {
		return Record{}, ErrNotFound
	}
	return clone(record), nil
}

// GetByNode implements [Backend].
func (memory *Memory) GetByNode(_ context.Context, kind, nodeUUID string) (Record, error) {
	memory.mu.RLock()
	defer memory.mu.RUnlock()

	root, ok := memory.nodes[nodeUUID]
	if !ok {
		return Record{}, ErrNotFound
	}

	record, ok := memory.records[kind][root]
	if !ok {
		return Record{}, ErrNotFound
	}
	return clone(record), nil
}

// Search implements [Backend].
func (memory *Memory) Search(_ context.Context, kind string, criteria Criteria, limit, offset int) ([]Record, int, error) {
	memory.mu.RLock()
	defer memory.mu.RUnlock()

	predicates := criteria.predicates()
	matched := make([]Record, 0)
	for _, record := range memory.records[kind] {
		if matches(record, predicates) {
			matched = append(matched, record)
		}
	}

	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })

	total := len(matched)
	if offset >= total {
		return []Record{}, total, nil
	}

	end := min(offset+limit, total)
	window := make([]Record, 0, end-offset)
	for _, record := range matched[offset:end] {
		window = append(window, clone(record))
	}
	return window, total, nil
}

// Count implements [Backend].
func (memory *Memory) Count(_ context.Context, kind string) (int, error) {
	memory.mu.RLock()
	defer memory.mu.RUnlock()

	return len(memory.records[kind]), nil
}

// Exists implements [Backend].
func (memory *Memory) Exists(_ context.Context, kind, uuid string) (bool, error) {
	memory.mu.RLock()
	defer memory.mu.RUnlock()

	_, ok := memory.records[kind][uuid]
	return ok, nil
}

// Put implements [Backend].
func (memory *Memory) Put(_ context.Context, record Record) (int64, error) {
	memory.mu.Lock()
	defer memory.mu.Unlock()

	byUUID, ok := memory.records[record.Kind]
	if !ok {
		byUUID = make(map[string]Record)
		memory.records[record.Kind] = byUUID
	}

	stored, exists := byUUID[record.UUID]
	switch {
	case record.Version == 0 && exists:
		return 0, ErrDuplicate
	case record.Version != 0 && (!exists || stored.Version != record.Version):
		return 0, ErrConcurrentModification
	}

	for _, node := range stored.Nodes {
		delete(memory.nodes, node)
	}
	for _, node := range record.Nodes {
		memory.nodes[node] = record.UUID
	}

	record = clone(record)
	record.Version++
	byUUID[record.UUID] = record
	return record.Version, nil
}

// Delete implements [Backend].
func (memory *Memory) Delete(_ context.Context, kind, uuid string) error {
	memory.mu.Lock()
	defer memory.mu.Unlock()

	record, ok := memory.records[kind][uuid]
	if !ok {
		return ErrNotFound
	}

	for _, node := range record.Nodes {
		delete(memory.nodes, node)
	}
	delete(memory.records[kind], uuid)
	return nil
}

func matches(record Record, predicates []predicate) bool {
	for _, p := range predicates {
		value, ok := record.Facets[p.key]
		if !ok {
			return false
		}
		if p.contains && !strings.Contains(value, p.value) {
			return false
		}
		if !p.contains && value != p.value {
			return false
		}
	}
	return true
}

func clone(record Record) Record {
	facets := make(map[string]string, len(record.Facets))
	for key, value := range record.Facets {
		facets[key] = value
	}
	record.Facets = facets
	record.Nodes = append([]string(nil), record.Nodes...)
	record.Payload = append([]byte(nil), record.Payload...)
	return record
}
