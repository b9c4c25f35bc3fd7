// Copyright 2014 pendo.io
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package logicalsort

import (
	"fmt"
)

// KeyHandler provides the operations needed to sort, compare and shard keys whose
// static type isn't known
type KeyHandler interface {
	// Less returns a < b
	Less(a, b interface{}) bool

	// Equal returns a == b
	Equal(a, b interface{}) bool

	// KeyDump converts a key into a byte array
	KeyDump(a interface{}) []byte

	// KeyLoad converts a byte array into a key
	KeyLoad([]byte) (interface{}, error)

	// Shard returns the shard number a key belongs to, given the total number of shards
	Shard(a interface{}, shardCount int) int
}

// StringKeyHandler provides a KeyHandler which orders keys by the logical order of their
// text. Keys are converted with KeyString. A nil Comparer means Default.
type StringKeyHandler struct {
	Comparer *Comparer
}

func (s StringKeyHandler) KeyDump(a interface{}) []byte {
	return []byte(KeyString(a))
}

func (s StringKeyHandler) KeyLoad(a []byte) (interface{}, error) {
	return string(a), nil
}

func (s StringKeyHandler) Less(a, b interface{}) bool {
	return CompareKeys(s.Comparer, a, b) < 0
}

func (s StringKeyHandler) Equal(a, b interface{}) bool {
	return CompareKeys(s.Comparer, a, b) == 0
}

// Shard uses HashKey, so keys which are Equal but spelled differently ("7", "007") may
// land in different shards.
func (s StringKeyHandler) Shard(a interface{}, shardCount int) int {
	if shardCount <= 0 {
		panic(fmt.Sprintf("invalid shard count %d", shardCount))
	}

	return int(uint64(HashKey(s.Comparer, a)) % uint64(shardCount))
}

// KeyString returns the text a key is compared by. nil is the empty string.
func KeyString(a interface{}) string {
	switch v := a.(type) {
	case nil:
		return ""
	case string:
		return v
	case *string:
		if v == nil {
			return ""
		}
		return *v
	case []byte:
		return string(v)
	default:
		return fmt.Sprint(v)
	}
}

// CompareKeys compares the text of two keys with c (Default if c is nil)
func CompareKeys(c *Comparer, a, b interface{}) int {
	return orDefault(c).Compare(KeyString(a), KeyString(b))
}

// HashKey hashes the text of a key with c (Default if c is nil). A nil key hashes to 0.
func HashKey(c *Comparer, a interface{}) uint32 {
	if a == nil {
		return 0
	}

	return orDefault(c).Hash(KeyString(a))
}
