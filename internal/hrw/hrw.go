package hrw

import (
	"encoding/binary"
	"strconv"

	"golang.org/x/crypto/blake2b"
)

// Best returns the index in [0, n) with the highest Rendezvous/HRW score for
// key. seed is optional and namespaces the scores. Returns -1 when n <= 0.
func Best(key string, n int, seed string) int {
	best, bestScore := -1, uint64(0)
	keyB := []byte(key)
	for i := 0; i < n; i++ {
		s := score(keyB, i, seed)
		if best < 0 || s > bestScore {
			best, bestScore = i, s
		}
	}
	return best
}

func score(key []byte, idx int, seed string) uint64 {
	// 8-byte digest => uint64 score
	h, _ := blake2b.New(8, nil)

	if seed != "" {
		h.Write([]byte(seed))
		h.Write([]byte{0})
	}

	h.Write(key)
	h.Write([]byte{0})
	h.Write(strconv.AppendInt(nil, int64(idx), 10))

	return binary.BigEndian.Uint64(h.Sum(nil))
}
