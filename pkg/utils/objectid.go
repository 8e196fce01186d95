package utils

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"regexp"
	"sync/atomic"
	"time"
)

// Object references are 24 hex chars: 4-byte timestamp, 5-byte machine
// entropy, 3-byte counter. The counter starts at a random offset so two
// processes on the same host do not collide inside one second.
var (
	idPattern = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

	machineEntropy [5]byte
	idCounter      uint32
)

func init() {
	if _, err := rand.Read(machineEntropy[:]); err != nil {
		panic(err)
	}
	var seed [4]byte
	if _, err := rand.Read(seed[:]); err != nil {
		panic(err)
	}
	idCounter = binary.BigEndian.Uint32(seed[:])
}

// NewObjectID generates a fresh 24-char hex identifier.
func NewObjectID() string {
	var raw [12]byte
	binary.BigEndian.PutUint32(raw[0:4], uint32(time.Now().Unix()))
	copy(raw[4:9], machineEntropy[:])
	n := atomic.AddUint32(&idCounter, 1)
	raw[9] = byte(n >> 16)
	raw[10] = byte(n >> 8)
	raw[11] = byte(n)
	return hex.EncodeToString(raw[:])
}

// IsValidID reports whether s is a well-formed 24-char hex identifier.
func IsValidID(s string) bool {
	return idPattern.MatchString(s)
}
