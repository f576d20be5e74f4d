/*
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      https://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package growbuf

// Memory supplies raw storage for chunks.
// Alloc returns nil (or a short slice) when it cannot satisfy the request.
// Free receives exactly the slices previously returned by Alloc.
type Memory interface {
	Alloc(size uintptr) []byte
	Free(m []byte)
}

// HeapMemory allocates chunks on the Go heap and leaves reclamation to the GC.
type HeapMemory struct{}

func (h HeapMemory) Alloc(size uintptr) []byte {
	return make([]byte, size)
}

func (h HeapMemory) Free(m []byte) {
}
