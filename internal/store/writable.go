// Copyright (c) 2025 Authflag
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package store provides a small reactive value container.
//
// A Writable holds one value and an ordered list of subscribers. Every
// subscriber first receives the current value, then each later change in the
// order the changes were applied. Setting a value equal to the current one is
// absorbed and produces no notification.
//
// Deliveries go through a single queue. Whoever finds the queue idle drains
// it, and a Set made from inside a subscriber callback is queued behind the
// delivery in progress instead of recursing, so all subscribers observe the
// same sequence of values.
package store

import (
	"sync"
	"sync/atomic"
)

type subscriber[T any] struct {
	fn     func(T)
	active atomic.Bool
}

type delivery[T any] struct {
	sub   *subscriber[T]
	value T
}

// Writable is a reactive value container safe for concurrent use.
type Writable[T comparable] struct {
	mu       sync.Mutex
	value    T
	subs     []*subscriber[T]
	queue    []delivery[T]
	draining bool
}

// NewWritable creates a Writable holding initial.
func NewWritable[T comparable](initial T) *Writable[T] {
	return &Writable[T]{value: initial}
}

// Get returns the current value.
func (w *Writable[T]) Get() T {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.value
}

// Set replaces the value and notifies subscribers if it changed.
func (w *Writable[T]) Set(value T) {
	w.Update(func(T) T { return value })
}

// Update atomically reads and replaces the value.
// Subscribers are notified only when fn returns a different value.
// fn runs with w locked and must not call back into w.
func (w *Writable[T]) Update(fn func(T) T) {
	w.mu.Lock()
	next := fn(w.value)
	if next == w.value {
		w.mu.Unlock()
		return
	}
	w.value = next
	for _, s := range w.subs {
		w.queue = append(w.queue, delivery[T]{sub: s, value: next})
	}
	w.mu.Unlock()

	w.drain()
}

// Subscribe registers fn and delivers the current value to it.
//
// The initial value goes through the delivery queue like any change. When
// the queue is idle it is delivered before Subscribe returns. When another
// delivery is in progress (another goroutine's Set, or a Subscribe made from
// inside a callback) that delivery hands it over instead, possibly after
// Subscribe has returned, but always ahead of any later change.
//
// The returned function removes the subscription; deliveries still queued
// for it are dropped. Calling it more than once is harmless.
func (w *Writable[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	s := &subscriber[T]{fn: fn}
	s.active.Store(true)

	w.mu.Lock()
	w.subs = append(w.subs, s)
	w.queue = append(w.queue, delivery[T]{sub: s, value: w.value})
	w.mu.Unlock()

	w.drain()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.active.Store(false)
			w.mu.Lock()
			defer w.mu.Unlock()
			for i, cur := range w.subs {
				if cur == s {
					w.subs = append(w.subs[:i], w.subs[i+1:]...)
					break
				}
			}
		})
	}
}

// Len returns the number of live subscribers.
func (w *Writable[T]) Len() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.subs)
}

// drain delivers queued values until the queue is empty. Only one caller
// drains at a time; the others return after enqueueing.
func (w *Writable[T]) drain() {
	w.mu.Lock()
	if w.draining {
		w.mu.Unlock()
		return
	}
	w.draining = true
	w.mu.Unlock()

	defer func() {
		// A panicking subscriber must not wedge the queue.
		if r := recover(); r != nil {
			w.mu.Lock()
			w.draining = false
			w.mu.Unlock()
			panic(r)
		}
	}()

	for {
		w.mu.Lock()
		if len(w.queue) == 0 {
			w.queue = nil
			w.draining = false
			w.mu.Unlock()
			return
		}
		d := w.queue[0]
		w.queue = w.queue[1:]
		w.mu.Unlock()

		if d.sub.active.Load() {
			d.sub.fn(d.value)
		}
	}
}
