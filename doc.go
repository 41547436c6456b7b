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

// Package intrusive provides shared ownership of objects that carry their own
// reference count.
//
// Unlike a control-block design, the count lives inside the object: a type
// embeds [Refs] and thereby gains an atomic counter and the two primitive
// operations, [AddRef] and [Release]. [Ptr] builds automatic shared ownership
// on top of that pair, without ever allocating anything of its own. Because
// the count is part of the object, the same object can be handed to code that
// deals only in ordinary Go pointers and still be re-wrapped later, and one
// allocation covers both payload and ownership state.
//
// # Design
//
// A counted type embeds [Refs] and, if it has teardown work, shadows the
// default no-op Dispose:
//
//	type Frame struct {
//		intrusive.Refs
//		data []byte
//	}
//
//	func (f *Frame) Dispose() { pool.Put(f) }
//
// Embedding is the only way to satisfy [Counted]: the constraint includes an
// unexported hook method that only [Refs] provides. This is what makes the
// count intrusive by construction; a side table is not possible.
//
// The counter starts at zero. The first [Share] brings it to one, every
// further [Ptr.Clone] or [AddRef] increments, and every [Ptr.Release] or
// [Release] decrements. The decrement that observes a prior value of exactly
// one runs the object's Dispose; the atomicity of the decrement guarantees
// that exactly one releaser does so, no matter how many goroutines drop
// references concurrently. Dispose resolves through the method set of the
// instantiated type, so the concrete type's teardown runs even when the
// reference is held through an interface.
//
// # Concurrency
//
// The counter is the only concurrency-safe state. Any number of goroutines
// may hold and drop distinct [Ptr] values referring to the same object. A
// single Ptr value is not itself safe for concurrent mutation, and must not
// be duplicated by plain assignment; use [Ptr.Clone] or [Ptr.Move].
//
// # Cycles
//
// There are no weak references and no cycle detection. Objects that refer to
// each other through counted pointers keep each other alive forever unless
// the cycle is broken manually.
package intrusive
