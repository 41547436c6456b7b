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

package xunsafe_test

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"

	"buf.build/go/intrusive/internal/xunsafe"
)

func TestAnyData(t *testing.T) {
	t.Parallel()

	i := 0xaaaa
	p := &i
	assert.Equal(t, unsafe.Pointer(p), unsafe.Pointer(xunsafe.AnyData(p)))

	// A typed nil and an untyped nil both carry a nil data word.
	var nilPtr *int
	assert.Nil(t, xunsafe.AnyData(nilPtr))
	assert.Nil(t, xunsafe.AnyData(nil))

	var v any = nilPtr
	assert.Nil(t, xunsafe.AnyData(v))
}

func TestAddrOf(t *testing.T) {
	t.Parallel()

	var xs [2]int
	a, b := xunsafe.AddrOf(&xs[0]), xunsafe.AddrOf(&xs[1])
	assert.NotEqual(t, a, b)
	assert.Less(t, a, b)
	assert.Same(t, &xs[0], a.AssertValid())
}
