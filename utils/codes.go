package utils

import (
	"crypto/rand"
	"math/big"
)

// Alphabet used for group join codes
const groupCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateGroupCode returns a random uppercase alphanumeric code of the given length
func GenerateGroupCode(length int) string {
	code := make([]byte, length)
	max := big.NewInt(int64(len(groupCodeAlphabet)))
	for i := range code {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails if the system source is broken
			panic(err)
		}
		code[i] = groupCodeAlphabet[n.Int64()]
	}
	return string(code)
}
