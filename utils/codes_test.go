package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateGroupCode_LengthAndAlphabet(t *testing.T) {
	for i := 0; i < 100; i++ {
		code := GenerateGroupCode(6)
		assert.Len(t, code, 6)
		for _, r := range code {
			assert.True(t, strings.ContainsRune(groupCodeAlphabet, r),
				"unexpected character %q in code %s", r, code)
		}
	}
}

func TestGenerateGroupCode_VariesBetweenCalls(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		seen[GenerateGroupCode(6)] = true
	}
	// 36^6 possibilities make 50 identical draws effectively impossible
	assert.Greater(t, len(seen), 1)
}
