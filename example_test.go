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
	"fmt"

	"buf.build/go/intrusive"
	"buf.build/go/intrusive/internal/examples"
)

func Example() {
	lease := examples.NewLease(func() { fmt.Println("lease ended") })

	// Wrapping a fresh object adds the first reference.
	p := intrusive.Share(lease)
	fmt.Println("after share:", p.UseCount())

	// Cloning adds another; releasing the clone drops it again.
	q := p.Clone()
	fmt.Println("after clone:", p.UseCount())
	q.Release()
	fmt.Println("after release:", p.UseCount())

	// Dropping the last reference tears the lease down, exactly once.
	p.Release()

	// Output:
	// after share: 1
	// after clone: 2
	// after release: 1
	// lease ended
}

func Example_adopt() {
	// A factory can hand out objects with the first reference already
	// counted; the caller then adopts rather than shares, so no count
	// traffic happens on the handoff.
	issue := func() *examples.Lease {
		return intrusive.AddRef(examples.NewLease(nil))
	}

	p := intrusive.Adopt(issue())
	fmt.Println("after adopt:", p.UseCount())
	p.Release()

	// Output:
	// after adopt: 1
}

func Example_move() {
	p := intrusive.Share(examples.NewLease(nil))

	// Transferring ownership does not touch the count; the source is left
	// empty and releasing it is a no-op.
	q := p.Move()
	fmt.Println("source holds a lease:", p.Ok())
	fmt.Println("target holds a lease:", q.Ok(), "count:", q.UseCount())

	p.Release()
	q.Release()

	// Output:
	// source holds a lease: false
	// target holds a lease: true count: 1
}
