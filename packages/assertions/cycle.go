package assertions

import (
	"reflect"
	"unsafe"
)

type node struct {
	ptr unsafe.Pointer
	typ reflect.Type
	len int
}

// isCyclic reports whether v refers back to itself through a pointer, map or
// slice.
func isCyclic(v any) bool {
	w := cycleWalk{onPath: map[node]bool{}, done: map[node]bool{}}
	return w.walk(reflect.ValueOf(v))
}

type cycleWalk struct {
	onPath, done map[node]bool
}

func (w cycleWalk) walk(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Interface:
		return !v.IsNil() && w.walk(v.Elem())
	case reflect.Pointer, reflect.Map, reflect.Slice:
		if v.IsNil() {
			return false
		}
		n := node{ptr: v.UnsafePointer(), typ: v.Type()}
		if v.Kind() == reflect.Slice {
			n.len = v.Len()
		}
		if w.onPath[n] {
			return true
		}
		if w.done[n] {
			return false
		}
		w.onPath[n] = true
		defer func() {
			delete(w.onPath, n)
			w.done[n] = true
		}()
		return w.children(v)
	case reflect.Array, reflect.Struct:
		return w.children(v)
	}
	return false
}

func (w cycleWalk) children(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Pointer:
		return w.walk(v.Elem())
	case reflect.Map:
		iter := v.MapRange()
		for iter.Next() {
			if w.walk(iter.Key()) || w.walk(iter.Value()) {
				return true
			}
		}
	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			if w.walk(v.Index(i)) {
				return true
			}
		}
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			if w.walk(v.Field(i)) {
				return true
			}
		}
	}
	return false
}
