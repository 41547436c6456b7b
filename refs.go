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
	"sync/atomic"

	"buf.build/go/intrusive/internal/debug"
	"buf.build/go/intrusive/internal/xunsafe"
)

// Refs is an intrusive reference count. Embed it in a type to make that type
// usable with [AddRef], [Release] and [Ptr]:
//
//	type Frame struct {
//		intrusive.Refs
//		data []byte
//	}
//
// The zero value is a count of zero: a freshly constructed object is
// unreferenced until it is shared for the first time. The count is never
// part of the payload; to duplicate an object, construct a new one, whose
// own count starts at zero.
//
// Refs contains an atomic, so go vet reports accidental copies of a type
// that embeds it.
type Refs struct {
	refs atomic.Int64
}

// UseCount returns the current reference count.
//
// The returned count is inherently racy and is only meaningful for
// diagnostics; it must never be used to decide whether an object is safe to
// access.
func (r *Refs) UseCount() int64 {
	return r.refs.Load()
}

// counter is the hook through which [AddRef] and [Release] find the count.
//
// Being unexported, it also restricts [Counted] to types that embed Refs.
func (r *Refs) counter() *Refs {
	return r
}

// Dispose is the destruction entrypoint invoked by the last [Release].
//
// This default does nothing; a type with teardown work shadows it with its
// own Dispose. Never call Dispose directly: destruction must go through
// [Release], which is what guarantees it runs exactly once.
func (r *Refs) Dispose() {}

// Counted is satisfied by any type that embeds [Refs].
//
// It doubles as the constraint on every generic operation in this package
// and as a plain interface type, so a [Ptr] element type may be a concrete
// pointer or an interface embedding Counted.
type Counted interface {
	counter() *Refs
	Dispose()
}

// AddRef adds a reference to v and returns v.
//
// Use it when handing out a raw reference that some other party will
// eventually [Release]; pointer-managed references are added by [Share] and
// [Ptr.Clone] instead.
func AddRef[T Counted](v T) T {
	r := v.counter()
	n := r.refs.Add(1)
	debug.Assert(n > 0, "AddRef on object with %d references", n-1)
	debug.Log([]any{"%p", r}, "addref", "%d -> %d", n-1, n)

	if n == 1 {
		trackLive(r, v)
	}
	return v
}

// Release drops a reference to v.
//
// The release that drops the last reference destroys the object by calling
// its Dispose; exactly one releaser ever does, regardless of how many
// goroutines release concurrently. After that, v must not be used again.
func Release[T Counted](v T) {
	r := v.counter()
	n := r.refs.Add(-1)
	debug.Assert(n >= 0, "Release on object with %d references", n+1)
	debug.Log([]any{"%p", r}, "release", "%d -> %d", n+1, n)

	if n == 0 {
		trackDead(r)
		v.Dispose()
	}
}

// present reports whether v refers to an object at all.
//
// A typed nil pointer stored in a non-nil interface value counts as absent,
// which is why this inspects the data word rather than comparing against a
// zero value.
func present[T Counted](v T) bool {
	return xunsafe.AnyData(v) != nil
}
