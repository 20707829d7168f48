package pure_utils

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"io"
)

// FingerprintLength is the hex width of upload ids. 16 hex chars carry 64
// bits of the digest: the birthday bound puts a 50% collision chance around
// 5e9 distinct uploads, far beyond what a single tracking table will see.
const FingerprintLength = 16

// Fingerprint derives the idempotency key of an upload from its metadata
// snapshot. It is deterministic: the same (bucket, object, size, createdTime)
// always hashes to the same id. Fields are length-prefixed before hashing so
// that no concatenation of two different field tuples can collide.
func Fingerprint(bucketName, objectName string, sizeBytes int64, createdTime string) string {
	h := sha256.New()
	writeLengthPrefixed(h, []byte(bucketName))
	writeLengthPrefixed(h, []byte(objectName))

	var size [8]byte
	binary.BigEndian.PutUint64(size[:], uint64(sizeBytes))
	writeLengthPrefixed(h, size[:])

	writeLengthPrefixed(h, []byte(createdTime))

	return hex.EncodeToString(h.Sum(nil))[:FingerprintLength]
}

func writeLengthPrefixed(w io.Writer, field []byte) {
	var length [8]byte
	binary.BigEndian.PutUint64(length[:], uint64(len(field)))
	w.Write(length[:])
	w.Write(field)
}
