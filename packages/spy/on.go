package spy

import (
	"fmt"
	"reflect"
	"sync"
)

var registry = struct {
	sync.Mutex
	spies  []*Spy
	bySlot map[uintptr]*Spy
}{bySlot: make(map[uintptr]*Spy)}

// On replaces the function target points to with a spy and returns it.
// target must be a non-nil pointer to a func variable or field. Spying on a
// slot that already holds a spy returns that spy.
func On(target any) *Spy {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Func {
		panic(fmt.Sprintf("spy.On: want a pointer to a func, got %T", target))
	}

	registry.Lock()
	defer registry.Unlock()

	addr := rv.Pointer()
	if existing, ok := registry.bySlot[addr]; ok {
		return existing
	}

	slot := rv.Elem()
	previous := reflect.ValueOf(slot.Interface())
	s := Create(slot.Interface())
	slot.Set(s.fn)
	s.restore = func() {
		slot.Set(previous)
	}

	registry.spies = append(registry.spies, s)
	registry.bySlot[addr] = s
	return s
}

// RestoreAll restores every spy installed with On, most recent first.
func RestoreAll() {
	registry.Lock()
	spies := append([]*Spy(nil), registry.spies...)
	registry.Unlock()

	for i := len(spies) - 1; i >= 0; i-- {
		spies[i].Restore()
	}
}

func unregister(s *Spy) {
	registry.Lock()
	defer registry.Unlock()

	for i, other := range registry.spies {
		if other == s {
			registry.spies = append(registry.spies[:i], registry.spies[i+1:]...)
			break
		}
	}
	for addr, other := range registry.bySlot {
		if other == s {
			delete(registry.bySlot, addr)
		}
	}
}
