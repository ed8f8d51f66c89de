// Package tracking generates and normalizes human-readable tracking codes
// used for public document lookup.
package tracking

import (
	"crypto/rand"
	"fmt"
	"strings"
)

// Alphabet is the 32-symbol character set for code generation. Visually
// ambiguous characters (0, 1, I, O) are excluded so codes survive being read
// aloud or retyped.
const Alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// Prefix precedes every generated code.
const Prefix = "DOC-"

// codeLen is the number of random symbols after the prefix.
const codeLen = 7

// Generate returns a new tracking code of the form DOC-XXXXXXX with each X
// drawn uniformly from Alphabet. The 32^7 code space makes collisions
// negligible, but callers that persist codes should still verify uniqueness
// against the store.
func Generate() string {
	buf := make([]byte, codeLen)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms.
		panic(fmt.Sprintf("tracking: read random: %v", err))
	}
	var b strings.Builder
	b.Grow(len(Prefix) + codeLen)
	b.WriteString(Prefix)
	for _, v := range buf {
		b.WriteByte(Alphabet[int(v)%len(Alphabet)])
	}
	return b.String()
}

// Normalize prepares caller-supplied input for lookup: surrounding
// whitespace is trimmed and the code is uppercased to match generator
// output. Stored codes are compared case-sensitively.
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Valid reports whether code has the exact generated shape.
func Valid(code string) bool {
	if len(code) != len(Prefix)+codeLen || !strings.HasPrefix(code, Prefix) {
		return false
	}
	for _, c := range code[len(Prefix):] {
		if !strings.ContainsRune(Alphabet, c) {
			return false
		}
	}
	return true
}
