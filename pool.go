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
	"sync"

	"buf.build/go/intrusive/internal/debug"
)

// Pool recycles counted objects instead of leaving them to the garbage
// collector. Route the object's Dispose back into the pool:
//
//	var frames = intrusive.Pool[*Frame]{
//		New:   func() *Frame { return new(Frame) },
//		Reset: func(f *Frame) { f.data = f.data[:0] },
//	}
//
//	func (f *Frame) Dispose() { frames.Put(f) }
//
// The last Release of a frame then returns it to the pool, and the next Get
// hands it out again with a fresh count of zero.
type Pool[T Counted] struct {
	New   func() T // Called to construct new values. Required.
	Reset func(T)  // Called to reset values before re-use.

	impl sync.Pool
}

// Get returns a cached or newly constructed value with a count of zero,
// ready to be wrapped with [Share] or [AddRef].
func (p *Pool[T]) Get() T {
	v, ok := p.impl.Get().(T)
	if !ok {
		v = p.New()
	}
	return v
}

// Put returns a value to the pool.
//
// The value must be unreferenced: putting back an object somebody still
// holds is the recycling equivalent of a double free.
func (p *Pool[T]) Put(v T) {
	debug.Assert(v.counter().UseCount() == 0,
		"Put of object with %d references", v.counter().UseCount())

	if p.Reset != nil {
		p.Reset(v)
	}
	p.impl.Put(v)
}
