package object

import (
	"encoding/hex"
	"fmt"
	"hash"

	"golang.org/x/crypto/blake2b"
)

// HashSize is the digest length in bytes. Hex-encoded hashes are twice as long.
const HashSize = 20

// ShortHashLen is the length of the abbreviated form returned by Hash.Short.
const ShortHashLen = 7

// HashBytes computes the raw BLAKE2b-160 fingerprint of data and returns it
// as a lowercase hex-encoded Hash.
func HashBytes(data []byte) Hash {
	h := newHasher()
	h.Write(data)
	return Hash(hex.EncodeToString(h.Sum(nil)))
}

// HashObject computes the fingerprint of the envelope "type len\0content".
// Equal kinds with equal canonical content always produce equal hashes.
func HashObject(objType ObjectType, data []byte) Hash {
	h := newHasher()
	fmt.Fprintf(h, "%s %d\x00", objType, len(data))
	h.Write(data)
	return Hash(hex.EncodeToString(h.Sum(nil)))
}

func newHasher() hash.Hash {
	h, err := blake2b.New(HashSize, nil)
	if err != nil {
		// Only reachable with an out-of-range size or an oversized key.
		panic(fmt.Sprintf("blake2b: %v", err))
	}
	return h
}
