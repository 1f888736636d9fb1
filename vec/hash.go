package vec

import (
	"encoding/binary"
	"hash/fnv"
	"math"
)

// Hash combines all component hashes into one 64-bit value using
// order-dependent FNV-1a mixing: permuting the components generally
// changes the hash. Floats hash by bit pattern, so +0 and -0 hash
// differently while NaN payloads hash consistently.
func Hash[T Scalar](v Vector[T]) uint64 {
	h := fnv.New64a()
	var buf [8]byte
	for i := 0; i < v.Len(); i++ {
		binary.LittleEndian.PutUint64(buf[:], scalarBits(v.At(i)))
		_, _ = h.Write(buf[:])
	}
	return h.Sum64()
}

func scalarBits[T Scalar](x T) uint64 {
	switch v := any(x).(type) {
	case float32:
		return uint64(math.Float32bits(v))
	case float64:
		return math.Float64bits(v)
	default:
		return uint64(int64(x))
	}
}
