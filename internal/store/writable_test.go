// Copyright (c) 2025 Authflag
// Licensed under the MIT License. See LICENSE file in the project root for details.

package store

import (
	"reflect"
	"sync"
	"testing"
)

func TestWritable_SubscribeDeliversCurrentValue(t *testing.T) {
	w := NewWritable(false)

	var got []bool
	unsub := w.Subscribe(func(v bool) { got = append(got, v) })
	defer unsub()

	if want := []bool{false}; !reflect.DeepEqual(got, want) {
		t.Errorf("deliveries = %v, want %v", got, want)
	}
}

func TestWritable_SetNotifiesInOrder(t *testing.T) {
	w := NewWritable(0)

	var got []int
	unsub := w.Subscribe(func(v int) { got = append(got, v) })
	defer unsub()

	w.Set(1)
	w.Set(2)
	w.Set(2)
	w.Set(3)

	if want := []int{0, 1, 2, 3}; !reflect.DeepEqual(got, want) {
		t.Errorf("deliveries = %v, want %v", got, want)
	}
	if got := w.Get(); got != 3 {
		t.Errorf("Get() = %d, want 3", got)
	}
}

func TestWritable_EqualValueIsAbsorbed(t *testing.T) {
	w := NewWritable(true)

	calls := 0
	unsub := w.Subscribe(func(bool) { calls++ })
	defer unsub()

	w.Set(true)
	w.Update(func(v bool) bool { return v })

	if calls != 1 {
		t.Errorf("calls = %d, want 1 (initial delivery only)", calls)
	}
}

func TestWritable_SubscribersInRegistrationOrder(t *testing.T) {
	w := NewWritable("")

	var order []string
	u1 := w.Subscribe(func(v string) { order = append(order, "a:"+v) })
	u2 := w.Subscribe(func(v string) { order = append(order, "b:"+v) })
	defer u1()
	defer u2()

	order = nil
	w.Set("x")

	if want := []string{"a:x", "b:x"}; !reflect.DeepEqual(order, want) {
		t.Errorf("order = %v, want %v", order, want)
	}
}

func TestWritable_Unsubscribe(t *testing.T) {
	w := NewWritable(0)

	var got []int
	unsub := w.Subscribe(func(v int) { got = append(got, v) })
	w.Set(1)
	unsub()
	unsub()
	w.Set(2)

	if want := []int{0, 1}; !reflect.DeepEqual(got, want) {
		t.Errorf("deliveries = %v, want %v", got, want)
	}
	if n := w.Len(); n != 0 {
		t.Errorf("Len() = %d, want 0", n)
	}
}

func TestWritable_SetFromCallbackIsQueued(t *testing.T) {
	w := NewWritable(0)

	var a, b []int
	ua := w.Subscribe(func(v int) {
		a = append(a, v)
		if v == 1 {
			w.Set(2)
		}
	})
	ub := w.Subscribe(func(v int) { b = append(b, v) })
	defer ua()
	defer ub()

	w.Set(1)

	if want := []int{0, 1, 2}; !reflect.DeepEqual(a, want) {
		t.Errorf("first subscriber = %v, want %v", a, want)
	}
	if want := []int{0, 1, 2}; !reflect.DeepEqual(b, want) {
		t.Errorf("second subscriber = %v, want %v", b, want)
	}
}

func TestWritable_SubscribeDuringDeliveryIsQueued(t *testing.T) {
	w := NewWritable(0)

	var inner []int
	innerAtReturn := -1
	var unsubInner func()
	outer := w.Subscribe(func(v int) {
		if v == 1 && unsubInner == nil {
			unsubInner = w.Subscribe(func(v int) { inner = append(inner, v) })
			innerAtReturn = len(inner)
		}
	})
	defer outer()

	w.Set(1)
	defer unsubInner()

	if innerAtReturn != 0 {
		t.Errorf("deliveries before Subscribe returned = %d, want 0", innerAtReturn)
	}
	if want := []int{1}; !reflect.DeepEqual(inner, want) {
		t.Errorf("deliveries after Set = %v, want %v", inner, want)
	}

	w.Set(2)
	if want := []int{1, 2}; !reflect.DeepEqual(inner, want) {
		t.Errorf("deliveries = %v, want %v", inner, want)
	}
}

func TestWritable_UnsubscribeDropsQueuedDeliveries(t *testing.T) {
	w := NewWritable(0)

	var got []int
	var ub func()
	ua := w.Subscribe(func(v int) {
		if v == 1 {
			ub()
		}
	})
	ub = w.Subscribe(func(v int) { got = append(got, v) })
	defer ua()

	w.Set(1)

	if want := []int{0}; !reflect.DeepEqual(got, want) {
		t.Errorf("deliveries = %v, want %v", got, want)
	}
}

func TestWritable_PanickingSubscriberDoesNotWedgeQueue(t *testing.T) {
	w := NewWritable(0)

	unsub := w.Subscribe(func(v int) {
		if v == 1 {
			panic("boom")
		}
	})

	func() {
		defer func() { _ = recover() }()
		w.Set(1)
	}()
	unsub()

	var got []int
	u := w.Subscribe(func(v int) { got = append(got, v) })
	defer u()
	w.Set(2)

	if want := []int{1, 2}; !reflect.DeepEqual(got, want) {
		t.Errorf("deliveries = %v, want %v", got, want)
	}
}

func TestWritable_Concurrent(t *testing.T) {
	w := NewWritable(0)

	var mu sync.Mutex
	last := -1
	unsub := w.Subscribe(func(v int) {
		mu.Lock()
		last = v
		mu.Unlock()
	})
	defer unsub()

	var wg sync.WaitGroup
	for i := 1; i <= 50; i++ {
		wg.Add(1)
		go func(v int) {
			defer wg.Done()
			w.Set(v)
			_ = w.Get()
		}(i)
	}
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	if last != w.Get() {
		t.Errorf("last delivered = %d, current = %d", last, w.Get())
	}
}
