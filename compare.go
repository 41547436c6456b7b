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
	"cmp"

	"buf.build/go/intrusive/internal/xunsafe"
)

// Identity in this package means "same embedded [Refs]", which is the same
// thing as "same object" no matter which view holds it: a *Frame and an
// interface holding that *Frame compare identical, two distinct objects with
// equal payloads do not. The element types of the operands therefore do not
// need to match.

// Same reports whether a and b are the same counted object. Two absent
// values (nil pointers, empty interfaces) count as the same.
//
// Use it to compare a [Ptr] against a raw reference: Same(p.Get(), v).
func Same[T, U Counted](a T, b U) bool {
	pa, pb := present(a), present(b)
	if !pa || !pb {
		return pa == pb
	}
	return a.counter() == b.counter()
}

// Equal reports whether a and b point at the same object. Two empty pointers
// are equal.
func Equal[T, U Counted](a *Ptr[T], b *Ptr[U]) bool {
	return Same(a.ptr, b.ptr)
}

// Compare orders pointers by object address, with empty pointers first. It
// returns -1, 0 or 1 in the manner of [cmp.Compare], giving a strict total
// order suitable for [slices.SortFunc] and ordered containers.
//
// The order is stable for as long as the operands are alive, but carries no
// meaning beyond that; two separately allocated objects may order either
// way.
func Compare[T, U Counted](a *Ptr[T], b *Ptr[U]) int {
	return cmp.Compare(refsAddr(a.ptr), refsAddr(b.ptr))
}

// refsAddr returns the address of v's counter, or zero if v is absent.
func refsAddr[T Counted](v T) xunsafe.Addr[Refs] {
	if !present(v) {
		return 0
	}
	return xunsafe.AddrOf(v.counter())
}
