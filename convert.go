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

// As converts p to a pointer with a different element type, sharing the same
// object: the typical case is widening a concrete pointer into an interface
// it implements. The count goes up by one on success.
//
// The conversion is checked at runtime; an element that is not a To reports
// false and changes nothing. An empty pointer converts to an empty pointer.
// Identity is preserved either way: the result and p compare [Equal].
func As[To, From Counted](p *Ptr[From]) (Ptr[To], bool) {
	if !present(p.ptr) {
		return Ptr[To]{}, true
	}
	to, ok := any(p.ptr).(To)
	if !ok {
		return Ptr[To]{}, false
	}
	return Share(to), true
}

// MoveAs is [As] with move semantics: on success the reference is
// transferred rather than duplicated, p becomes empty, and no counts change.
// On failure p is left holding its object.
func MoveAs[To, From Counted](p *Ptr[From]) (Ptr[To], bool) {
	if !present(p.ptr) {
		return Ptr[To]{}, true
	}
	to, ok := any(p.ptr).(To)
	if !ok {
		return Ptr[To]{}, false
	}
	var z From
	p.ptr = z
	return Adopt(to), true
}
