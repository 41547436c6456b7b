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

//go:build race

package xunsafe

// iface is the internal representation of a Go interface value.
type iface struct {
	itab uintptr
	data *byte
}

// AnyData extracts the pointer value from an any.
//
// Note that for an any holding a typed nil pointer, the extracted value is
// nil even though the any itself is not.
//
// Race-enabled builds run with checkptr, which rejects the uintptr
// round-trip [NoEscape] performs, so this variant lets v escape and uses a
// plain pointer conversion instead.
func AnyData(v any) *byte {
	return Cast[iface](&v).data
}
