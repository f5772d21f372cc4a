package domain

import "math/rand/v2"

// TicketCodeLen is the length of a display ticket code.
const TicketCodeLen = 6

const codeAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NewTicketCode returns a fresh 6-character uppercase alphanumeric code.
// Codes are decorative: not unique, not persisted. A nil rng uses the
// global source.
func NewTicketCode(rng *rand.Rand) string {
	b := make([]byte, TicketCodeLen)
	for i := range b {
		var n int
		if rng != nil {
			n = rng.IntN(len(codeAlphabet))
		} else {
			n = rand.IntN(len(codeAlphabet))
		}
		b[i] = codeAlphabet[n]
	}
	return string(b)
}

// ValidTicketCode reports whether s has the shape of a ticket code.
func ValidTicketCode(s string) bool {
	if len(s) != TicketCodeLen {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'A' || c > 'Z') {
			return false
		}
	}
	return true
}
