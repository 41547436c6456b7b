// Copyright 2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package intrusive

import (
	"buf.build/go/intrusive/internal/debug"
)

// Ptr is a shared-ownership pointer to a [Counted] object.
//
// The element type T is either a concrete pointer type embedding [Refs], or
// an interface type embedding [Counted]. A Ptr holds exactly one reference,
// or none; the zero Ptr is empty and ready to use.
//
// Go cannot hook struct assignment, so copying a Ptr with = would alias one
// reference between two values and eventually release it twice. The
// sanctioned forms are [Ptr.Clone], which adds a reference, and [Ptr.Move],
// which transfers one. For the same reason a single Ptr value must not be
// mutated from multiple goroutines; distinct Ptrs to the same object are
// fine, that is the point of the package.
type Ptr[T Counted] struct {
	ptr T
}

// Share wraps v in a pointer holding a new reference: the count goes up by
// one, on the assumption that whoever gave us v retains their own reference.
//
// Share of a nil v returns an empty pointer.
func Share[T Counted](v T) Ptr[T] {
	if present(v) {
		AddRef(v)
	}
	return Ptr[T]{ptr: v}
}

// Adopt wraps v in a pointer without touching the count, taking over a
// reference the caller already holds. Use it with factories that return
// objects with the count already set, where [Share] would pay a spurious
// increment/decrement pair:
//
//	func NewFrame() *Frame {
//		return intrusive.AddRef(&Frame{})
//	}
//
//	p := intrusive.Adopt(NewFrame())
func Adopt[T Counted](v T) Ptr[T] {
	return Ptr[T]{ptr: v}
}

// Get returns the held object without altering the count, or the zero T if
// the pointer is empty.
//
// The returned value is borrowed: it is valid only as long as something still
// holds a reference.
func (p *Ptr[T]) Get() T {
	return p.ptr
}

// Must is [Ptr.Get] with the precondition that the pointer is non-empty.
//
// Dereferencing an empty pointer is a caller bug, not a recoverable error;
// in debug builds Must panics on one.
func (p *Ptr[T]) Must() T {
	debug.Assert(present(p.ptr), "dereference of empty Ptr")
	return p.ptr
}

// Ok reports whether the pointer holds an object.
func (p *Ptr[T]) Ok() bool {
	return present(p.ptr)
}

// UseCount returns the held object's reference count, or zero if the pointer
// is empty. Diagnostics only; see [Refs.UseCount].
func (p *Ptr[T]) UseCount() int64 {
	if !present(p.ptr) {
		return 0
	}
	return p.ptr.counter().UseCount()
}

// Clone returns a new pointer sharing the held object. The count goes up by
// one; cloning an empty pointer yields an empty pointer.
func (p *Ptr[T]) Clone() Ptr[T] {
	return Share(p.ptr)
}

// Move transfers ownership out of p: the returned pointer holds the
// reference p used to hold, p becomes empty, and the count does not change.
func (p *Ptr[T]) Move() Ptr[T] {
	var z T
	v := p.ptr
	p.ptr = z
	return Ptr[T]{ptr: v}
}

// Release drops the held reference, if any, and leaves p empty.
//
// Every non-empty Ptr must be released exactly once; this is the Go spelling
// of the destructor. Releasing an already-empty pointer is a no-op, so a
// deferred Release composes with [Ptr.Move] and [Ptr.Detach].
func (p *Ptr[T]) Release() {
	if !present(p.ptr) {
		return
	}
	var z T
	v := p.ptr
	p.ptr = z
	Release(v)
}

// ResetShare re-points p at v, adding a reference to v and dropping the old
// one. Re-pointing at the object already held is a no-op.
func (p *Ptr[T]) ResetShare(v T) {
	if Same(p.ptr, v) {
		return
	}
	tmp := Share(v)
	p.Swap(&tmp)
	tmp.Release()
}

// ResetAdopt re-points p at v, taking over a reference the caller already
// holds, and drops the old one. See [Adopt].
func (p *Ptr[T]) ResetAdopt(v T) {
	tmp := Adopt(v)
	p.Swap(&tmp)
	tmp.Release()
}

// Copy is pointer assignment: p drops what it holds and shares q's object.
// Copying a pointer onto itself is a no-op.
func (p *Ptr[T]) Copy(q *Ptr[T]) {
	if p == q {
		return
	}
	tmp := q.Clone()
	p.Swap(&tmp)
	tmp.Release()
}

// Take is move assignment: p drops what it holds and steals q's reference,
// leaving q empty. Taking from itself is a no-op.
func (p *Ptr[T]) Take(q *Ptr[T]) {
	if p == q {
		return
	}
	tmp := q.Move()
	p.Swap(&tmp)
	tmp.Release()
}

// Swap exchanges the objects held by p and q. No counts change.
func (p *Ptr[T]) Swap(q *Ptr[T]) {
	p.ptr, q.ptr = q.ptr, p.ptr
}

// Detach clears p and returns the held object without dropping the
// reference. The caller now owns that reference and must eventually pass it
// to [Release] (or back to [Adopt]).
func (p *Ptr[T]) Detach() T {
	var z T
	v := p.ptr
	p.ptr = z
	return v
}
