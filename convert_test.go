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

package intrusive_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"buf.build/go/intrusive"
)

func TestAs(t *testing.T) {
	t.Parallel()

	obj := &thing{name: "widen"}
	p := intrusive.Share(obj)

	q, ok := intrusive.As[named](&p)
	require.True(t, ok)
	assert.Equal(t, "widen", q.Get().Name())
	assert.Equal(t, int64(2), p.UseCount())
	assert.True(t, intrusive.Equal(&p, &q))

	q.Release()
	p.Release()
	assert.Equal(t, int32(1), obj.disposed.Load())
}

func TestAsFails(t *testing.T) {
	t.Parallel()

	obj := new(thing)
	p := intrusive.Share(obj)

	// thing has no String method, so nothing may change.
	q, ok := intrusive.As[stringer](&p)
	assert.False(t, ok)
	assert.False(t, q.Ok())
	assert.Equal(t, int64(1), p.UseCount())

	p.Release()
}

func TestAsEmpty(t *testing.T) {
	t.Parallel()

	var p intrusive.Ptr[*thing]
	q, ok := intrusive.As[named](&p)
	assert.True(t, ok)
	assert.False(t, q.Ok())
}

func TestMoveAs(t *testing.T) {
	t.Parallel()

	obj := &thing{name: "steal"}
	p := intrusive.Share(obj)

	q, ok := intrusive.MoveAs[named](&p)
	require.True(t, ok)
	assert.False(t, p.Ok())
	assert.Equal(t, int64(1), q.UseCount())
	assert.Equal(t, "steal", q.Get().Name())

	q.Release()
	assert.Equal(t, int32(1), obj.disposed.Load())
}

func TestMoveAsFails(t *testing.T) {
	t.Parallel()

	obj := new(thing)
	p := intrusive.Share(obj)

	// A failed move leaves the source holding its object.
	_, ok := intrusive.MoveAs[stringer](&p)
	assert.False(t, ok)
	assert.True(t, p.Ok())
	assert.Equal(t, int64(1), p.UseCount())

	p.Release()
}

func TestAsNarrows(t *testing.T) {
	t.Parallel()

	obj := &thing{name: "narrow"}
	wide := intrusive.Share[named](obj)

	// The checked conversion also recovers the concrete type from an
	// interface view.
	q, ok := intrusive.As[*thing](&wide)
	require.True(t, ok)
	assert.Same(t, obj, q.Get())
	assert.Equal(t, int64(2), wide.UseCount())

	q.Release()
	wide.Release()
	assert.Equal(t, int32(1), obj.disposed.Load())
}
