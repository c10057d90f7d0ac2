package store

import (
	"reflect"
	"testing"
)

type counter struct {
	Count int
}

func TestStore_GetSetUpdate(t *testing.T) {
	s := New(counter{Count: 1})
	if s.Get().Count != 1 {
		t.Fatalf("Expected 1, got %d", s.Get().Count)
	}

	s.Set(counter{Count: 5})
	if s.Get().Count != 5 {
		t.Errorf("Expected 5, got %d", s.Get().Count)
	}

	s.Update(func(c counter) counter {
		c.Count *= 2
		return c
	})
	if s.Get().Count != 10 {
		t.Errorf("Expected 10, got %d", s.Get().Count)
	}
}

func TestStore_SetDoesNotNotify(t *testing.T) {
	s := New(0)
	calls := 0
	s.Subscribe("change", func(int) { calls++ })

	s.Set(3)
	s.Update(func(n int) int { return n + 1 })

	if calls != 0 {
		t.Errorf("Expected no notifications, got %d", calls)
	}
}

func TestStore_DispatchOrderAndChannels(t *testing.T) {
	s := New(7)
	var log []string

	s.Subscribe("a", func(n int) { log = append(log, "a1") })
	s.Subscribe("b", func(n int) { log = append(log, "b1") })
	s.Subscribe("a", func(n int) { log = append(log, "a2") })

	s.Dispatch("a")
	if want := []string{"a1", "a2"}; !reflect.DeepEqual(log, want) {
		t.Errorf("got %v, want %v", log, want)
	}

	s.Dispatch("missing")
	if len(log) != 2 {
		t.Errorf("dispatch on empty channel should be a no-op, got %v", log)
	}

	if s.Subscribers("a") != 2 || s.Subscribers("b") != 1 || s.Subscribers("c") != 0 {
		t.Errorf("unexpected subscriber counts: a=%d b=%d c=%d",
			s.Subscribers("a"), s.Subscribers("b"), s.Subscribers("c"))
	}
}

func TestStore_DispatchPassesCurrentState(t *testing.T) {
	s := New(counter{})
	var seen []int
	s.Subscribe("change", func(c counter) { seen = append(seen, c.Count) })

	for i := 0; i < 3; i++ {
		s.Update(func(c counter) counter { c.Count++; return c })
		s.Dispatch("change")
	}

	if want := []int{1, 2, 3}; !reflect.DeepEqual(seen, want) {
		t.Errorf("got %v, want %v", seen, want)
	}
}

func TestStore_NestedDispatchIsDepthFirst(t *testing.T) {
	s := New(0)
	var log []string
	nested := false

	s.Subscribe("change", func(n int) {
		log = append(log, "first")
		if !nested {
			nested = true
			s.Set(n + 1)
			s.Dispatch("change")
		}
	})
	s.Subscribe("change", func(n int) {
		log = append(log, "second")
	})

	s.Dispatch("change")

	want := []string{"first", "first", "second", "second"}
	if !reflect.DeepEqual(log, want) {
		t.Errorf("got %v, want %v", log, want)
	}
}

func TestStore_SubscribeDuringDispatch(t *testing.T) {
	s := New(0)
	late := 0
	s.Subscribe("change", func(int) {
		s.Subscribe("change", func(int) { late++ })
	})

	s.Dispatch("change")
	if late != 0 {
		t.Errorf("subscriber added mid-dispatch ran %d times", late)
	}

	s.Dispatch("change")
	if late != 1 {
		t.Errorf("expected late subscriber to run once on next dispatch, got %d", late)
	}
}

func TestStore_PanicStopsDispatch(t *testing.T) {
	s := New(0)
	ran := false
	s.Subscribe("change", func(int) { panic("boom") })
	s.Subscribe("change", func(int) { ran = true })

	func() {
		defer func() {
			if r := recover(); r != "boom" {
				t.Errorf("recover() = %v, want boom", r)
			}
		}()
		s.Dispatch("change")
	}()

	if ran {
		t.Error("subscriber after a panicking one should not run")
	}
}
