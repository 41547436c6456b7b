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

package xsync_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"buf.build/go/intrusive/internal/xsync"
)

func TestMap(t *testing.T) {
	t.Parallel()

	var m xsync.Map[string, int]

	_, ok := m.Load("a")
	assert.False(t, ok)
	assert.Zero(t, m.Len())

	m.Store("a", 1)
	m.Store("b", 2)
	v, ok := m.Load("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	assert.Equal(t, 2, m.Len())

	got := map[string]int{}
	for k, v := range m.All() {
		got[k] = v
	}
	assert.Equal(t, map[string]int{"a": 1, "b": 2}, got)

	m.Delete("a")
	_, ok = m.Load("a")
	assert.False(t, ok)
	assert.Equal(t, 1, m.Len())
}
