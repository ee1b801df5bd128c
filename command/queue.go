// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package command

import "sync"

// Queue is an unbounded FIFO of commands shared between producers (the
// socket server, the config watcher) and the goroutine that applies them.
// Push and Drain never block.
type Queue struct {
	mu    sync.Mutex
	items []Command
	ready chan struct{}
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{ready: make(chan struct{}, 1)}
}

// Push appends a command and signals Ready.
func (q *Queue) Push(c Command) {
	q.mu.Lock()
	q.items = append(q.items, c)
	q.mu.Unlock()

	select {
	case q.ready <- struct{}{}:
	default:
	}
}

// Drain removes and returns every queued command in arrival order.
func (q *Queue) Drain() []Command {
	q.mu.Lock()
	defer q.mu.Unlock()
	items := q.items
	q.items = nil
	return items
}

// Len returns the number of queued commands.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// Ready returns a channel that receives a value after one or more Push
// calls. A receive does not guarantee the queue is non-empty.
func (q *Queue) Ready() <-chan struct{} {
	return q.ready
}
