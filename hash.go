package flatcache

import (
	"encoding/hex"
	"hash"
	"io"
	"strings"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// Default size for the buffer used when reading the backing file
const defaultBufferSize = 32 * 1024 // 32KB

// bufferPool is a pool of byte slices used for file reads
var bufferPool = sync.Pool{
	New: func() interface{} {
		buffer := make([]byte, defaultBufferSize)
		return &buffer
	},
}

// HashFunc defines a function that creates a new hash.Hash instance.
type HashFunc func() hash.Hash

// readAll reads r until io.EOF. A single Read is not guaranteed to return
// the whole file, so chunks are concatenated.
func readAll(r io.Reader) (string, error) {
	bufPtr := bufferPool.Get().(*[]byte)
	buffer := *bufPtr
	defer bufferPool.Put(bufPtr)

	var text strings.Builder
	for {
		n, err := r.Read(buffer)
		if n > 0 {
			text.Write(buffer[:n])
		}
		if err == io.EOF {
			return text.String(), nil
		}
		if err != nil {
			return "", err
		}
	}
}

// digest returns the hex hash of an encoded snapshot.
func digest(hashFunc HashFunc, text string) string {
	h := hashFunc()
	_, _ = io.WriteString(h, text)
	return hex.EncodeToString(h.Sum(nil))
}

// defaultHashFunc returns the default hash function (xxHash64).
func defaultHashFunc() hash.Hash {
	return xxhash.New()
}
