// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"math/big"
	"math/bits"
)

// ErrInvalidNoteID is returned when a textual note id is not a decimal
// unsigned integer that fits into 128 bits.
var ErrInvalidNoteID = errors.New("invalid note id")

var maxNoteID = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))

// NoteID is a 128-bit unsigned note identifier split into two 64-bit halves.
//
// On the wire it is a decimal string (JSON numbers above 2^53 lose precision
// in most clients); bare JSON numbers are accepted on input.
type NoteID struct {
	Hi uint64
	Lo uint64
}

// NewNoteID returns the NoteID equal to v.
func NewNoteID(v uint64) NoteID {
	return NoteID{Lo: v}
}

// Next returns id+1. Overflow past 2^128-1 wraps to zero; callers check
// IsMax first.
func (id NoteID) Next() NoteID {
	lo, carry := bits.Add64(id.Lo, 1, 0)
	hi, _ := bits.Add64(id.Hi, 0, carry)
	return NoteID{Hi: hi, Lo: lo}
}

// Less reports whether id < other.
func (id NoteID) Less(other NoteID) bool {
	if id.Hi != other.Hi {
		return id.Hi < other.Hi
	}
	return id.Lo < other.Lo
}

// IsMax reports whether id is 2^128-1, the last representable id.
func (id NoteID) IsMax() bool {
	return id.Hi == math.MaxUint64 && id.Lo == math.MaxUint64
}

// IsZero reports whether id is zero.
func (id NoteID) IsZero() bool {
	return id.Hi == 0 && id.Lo == 0
}

func (id NoteID) big() *big.Int {
	v := new(big.Int).SetUint64(id.Hi)
	v.Lsh(v, 64)
	return v.Or(v, new(big.Int).SetUint64(id.Lo))
}

// String returns the decimal representation of id.
func (id NoteID) String() string {
	if id.Hi == 0 {
		return fmt.Sprintf("%d", id.Lo)
	}
	return id.big().String()
}

// ParseNoteID parses a decimal unsigned 128-bit integer.
func ParseNoteID(s string) (NoteID, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok || v.Sign() < 0 || v.Cmp(maxNoteID) > 0 {
		return NoteID{}, fmt.Errorf("%w: %q", ErrInvalidNoteID, s)
	}

	lo := new(big.Int).And(v, new(big.Int).SetUint64(^uint64(0))).Uint64()
	hi := new(big.Int).Rsh(v, 64).Uint64()

	return NoteID{Hi: hi, Lo: lo}, nil
}

// MarshalText implements [encoding.TextMarshaler].
func (id NoteID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (id *NoteID) UnmarshalText(text []byte) error {
	parsed, err := ParseNoteID(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// MarshalJSON encodes id as a JSON string.
func (id NoteID) MarshalJSON() ([]byte, error) {
	return []byte(`"` + id.String() + `"`), nil
}

// UnmarshalJSON accepts both a JSON string and a bare JSON number.
func (id *NoteID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) >= 2 && b[0] == '"' && b[len(b)-1] == '"' {
		b = b[1 : len(b)-1]
	}
	return id.UnmarshalText(b)
}
