// Package token generates handle strings for pending binder reactions.
//
// Sources make no uniqueness promise; callers that key maps by token are
// expected to retry on collision.
package token

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
)

// Source produces tokens of a requested length.
type Source interface {
	Generate(length int) string
}

// Func adapts a plain function to Source.
type Func func(length int) string

// Generate implements Source.
func (f Func) Generate(length int) string { return f(length) }

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

var alphabetSize = big.NewInt(int64(len(alphabet)))

type randomSource struct{}

// Random returns a Source of crypto-random alphanumeric tokens.
func Random() Source { return randomSource{} }

func (randomSource) Generate(length int) string {
	if length <= 0 {
		return ""
	}
	b := make([]byte, length)
	for i := range b {
		n, err := rand.Int(rand.Reader, alphabetSize)
		if err != nil {
			// crypto/rand only fails when the OS entropy source is broken.
			panic(fmt.Sprintf("token: read random: %v", err))
		}
		b[i] = alphabet[n.Int64()]
	}
	return string(b)
}

type uuidSource struct{}

// UUID returns a Source built from random (version 4) UUIDs with the
// hyphens removed. Tokens longer than 32 characters concatenate UUIDs.
func UUID() Source { return uuidSource{} }

func (uuidSource) Generate(length int) string {
	if length <= 0 {
		return ""
	}
	var sb strings.Builder
	sb.Grow(length + 32)
	for sb.Len() < length {
		sb.WriteString(strings.ReplaceAll(uuid.NewString(), "-", ""))
	}
	return sb.String()[:length]
}

// SequenceSource yields increasing tokens and never repeats within a process.
type SequenceSource struct {
	prefix string
	n      atomic.Uint64
}

// Sequence returns a SequenceSource whose tokens start with prefix.
func Sequence(prefix string) *SequenceSource {
	return &SequenceSource{prefix: prefix}
}

// Generate returns prefix followed by the next counter value, zero-padded
// so the token is at least length characters.
func (s *SequenceSource) Generate(length int) string {
	n := s.n.Add(1)
	width := length - len(s.prefix)
	if width < 1 {
		width = 1
	}
	return fmt.Sprintf("%s%0*d", s.prefix, width, n)
}

// Parse resolves a source name as used in configuration:
// "random", "uuid" or "sequence".
func Parse(name string) (Source, bool) {
	switch strings.ToLower(name) {
	case "", "random":
		return Random(), true
	case "uuid":
		return UUID(), true
	case "sequence", "seq":
		return Sequence("h"), true
	}
	return nil, false
}
