package logger

import (
	"reflect"
	"runtime"
	"sync"
	"unsafe"
	"weak"
)

// handledSet records errors by identity without keeping them alive.
//
// Pointer-backed errors are tracked through weak pointers keyed by
// dynamic type and address, since distinct error values may share an
// address (zero-size types, a struct and its first field). A cleanup
// evicts the key once the error is collected. A dead entry whose address
// has been reused never matches, because its weak pointer has already
// gone nil. Pointer-free comparable errors (for
// example syscall.Errno) are tracked by value. Errors that are neither
// are not tracked and are always treated as unhandled.
type handledSet struct {
	mu   sync.Mutex
	ptrs map[ptrKey]weak.Pointer[byte]
	vals map[error]struct{}
}

type ptrKey struct {
	typ  reflect.Type
	addr uintptr
}

func newHandledSet() *handledSet {
	return &handledSet{
		ptrs: make(map[ptrKey]weak.Pointer[byte]),
		vals: make(map[error]struct{}),
	}
}

// errorPointer returns the key and address behind a pointer-typed error.
func errorPointer(err error) (ptrKey, unsafe.Pointer, bool) {
	v := reflect.ValueOf(err)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return ptrKey{}, nil, false
	}
	p := v.UnsafePointer()
	return ptrKey{typ: v.Type(), addr: uintptr(p)}, p, true
}

func isComparable(err error) bool {
	return reflect.ValueOf(err).Comparable()
}

func (s *handledSet) add(err error) {
	if err == nil {
		return
	}

	if key, p, ok := errorPointer(err); ok {
		ptr := (*byte)(p)

		s.mu.Lock()
		if wp, found := s.ptrs[key]; found && wp.Value() == ptr {
			s.mu.Unlock()
			return
		}
		s.ptrs[key] = weak.Make(ptr)
		s.mu.Unlock()

		runtime.AddCleanup(ptr, s.evict, key)
		return
	}

	if isComparable(err) {
		s.mu.Lock()
		s.vals[err] = struct{}{}
		s.mu.Unlock()
	}
}

func (s *handledSet) contains(err error) bool {
	if err == nil {
		return false
	}

	if key, p, ok := errorPointer(err); ok {
		s.mu.Lock()
		wp, found := s.ptrs[key]
		s.mu.Unlock()
		return found && wp.Value() == (*byte)(p)
	}

	if !isComparable(err) {
		return false
	}
	s.mu.Lock()
	_, found := s.vals[err]
	s.mu.Unlock()
	return found
}

// evict drops key unless it has since been re-added for a live error.
func (s *handledSet) evict(key ptrKey) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if wp, found := s.ptrs[key]; found && wp.Value() == nil {
		delete(s.ptrs, key)
	}
}

// size reports the number of tracked entries, live or not yet evicted.
func (s *handledSet) size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.ptrs) + len(s.vals)
}
