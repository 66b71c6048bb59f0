package whirl

import (
	crypto_rand "crypto/rand"
	"encoding/binary"
	"time"

	"github.com/pavlosg/whirl/log"
)

// RandomSeed returns a non-reproducible seed from the system entropy
// source. If the entropy read fails it falls back to mixing the
// current time, with a logged warning.
func RandomSeed() uint64 {
	var seed [8]byte
	if _, err := crypto_rand.Read(seed[:]); err != nil {
		log.Warning("entropy read failed, seeding from time: %v", err)
		return MixMX(uint64(time.Now().UnixNano()))
	}
	return binary.LittleEndian.Uint64(seed[:])
}
