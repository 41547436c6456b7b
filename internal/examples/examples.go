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

package examples

import (
	"github.com/google/uuid"

	"buf.build/go/intrusive"
)

// Helpers for making the examples in `./example_test.go` easier to read.

// Lease is a counted stand-in for some scarce resource, such as a connection
// or a license seat. Each lease has a unique identity and reports its own
// teardown.
type Lease struct {
	intrusive.Refs

	ID    uuid.UUID
	onEnd func()
}

// NewLease issues a lease; onEnd runs when the last reference is dropped.
func NewLease(onEnd func()) *Lease {
	return &Lease{ID: uuid.New(), onEnd: onEnd}
}

// Dispose implements the teardown entrypoint called by the last release.
func (l *Lease) Dispose() {
	if l.onEnd != nil {
		l.onEnd()
	}
}
