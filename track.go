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
	"fmt"
	"iter"
	"sync/atomic"

	"buf.build/go/intrusive/internal/xsync"
)

// Live-object tracking, for hunting reference leaks in tests: objects whose
// count rises from zero while tracking is on are registered, and the release
// that destroys them unregisters. What remains at the end of a test is a
// leak candidate.

var (
	tracking atomic.Bool
	live     xsync.Map[*Refs, string]
)

// SetTracking turns live-object tracking on or off. Off by default; the
// bookkeeping adds a map operation to the 0-to-1 and 1-to-0 count
// transitions, so leave it off outside of tests.
//
// Objects already alive when tracking turns on are not registered
// retroactively, and registrations are kept when tracking turns off.
func SetTracking(enabled bool) {
	tracking.Store(enabled)
}

// LiveCount returns the number of tracked live objects.
func LiveCount() int {
	return live.Len()
}

// Live yields a description of each tracked live object, in no particular
// order.
func Live() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, desc := range live.All() {
			if !yield(desc) {
				return
			}
		}
	}
}

// trackLive registers an object whose count just rose from zero.
func trackLive(r *Refs, v Counted) {
	if tracking.Load() {
		live.Store(r, fmt.Sprintf("%T", v))
	}
}

// trackDead unregisters an object about to be destroyed.
func trackDead(r *Refs) {
	if tracking.Load() {
		live.Delete(r)
	}
}
