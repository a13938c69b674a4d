// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package obfuscate hides database ids in public markup and URLs.
//
// Every id is encoded together with a short label (for example "mni" for
// menu items or "pag" for pages) so that a code produced for one kind of
// object cannot be replayed as another.
package obfuscate

import (
	"errors"
	"fmt"
	"hash/fnv"
	"math/rand/v2"
	"strconv"
	"sync"

	"github.com/sqids/sqids-go"
)

// ErrInvalidCode is returned when a code cannot be decoded.
var ErrInvalidCode = errors.New("invalid obfuscated code")

// Obfuscator encodes and decodes ids for a label.
type Obfuscator interface {
	Encode(id int64, label string) (string, error)
	Decode(code string, label string) (int64, error)
}

// Kinds accepted by New.
const (
	KindDevelopment = "development"
	KindSqids       = "sqids"
)

// New returns the obfuscator of the given kind.
func New(kind, key string) (Obfuscator, error) {
	switch kind {
	case "", KindDevelopment:
		return Development{}, nil
	case KindSqids:
		return NewSqids(key)
	default:
		return nil, fmt.Errorf("unknown obfuscator %q", kind)
	}
}

// Development leaves ids readable. Use it only for local work and tests.
type Development struct{}

// Encode returns the decimal representation of id.
func (Development) Encode(id int64, _ string) (string, error) {
	return strconv.FormatInt(id, 10), nil
}

// Decode parses a decimal id.
func (Development) Decode(code string, _ string) (int64, error) {
	id, err := strconv.ParseInt(code, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCode, code)
	}
	return id, nil
}

// MinCodeLength is the minimum length of a Sqids code.
const MinCodeLength = 6

const alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Sqids encodes ids with a per label alphabet derived from a secret key.
type Sqids struct {
	key string

	mu       sync.Mutex
	encoders map[string]*sqids.Sqids
}

// NewSqids creates a Sqids obfuscator. The key must not be empty.
func NewSqids(key string) (*Sqids, error) {
	if key == "" {
		return nil, errors.New("sqids obfuscator requires a key")
	}
	return &Sqids{key: key, encoders: make(map[string]*sqids.Sqids)}, nil
}

// Encode encodes a non-negative id.
func (s *Sqids) Encode(id int64, label string) (string, error) {
	if id < 0 {
		return "", fmt.Errorf("cannot encode negative id %d", id)
	}
	enc, err := s.encoder(label)
	if err != nil {
		return "", err
	}
	return enc.Encode([]uint64{uint64(id)})
}

// Decode decodes a code produced by Encode with the same label.
func (s *Sqids) Decode(code string, label string) (int64, error) {
	enc, err := s.encoder(label)
	if err != nil {
		return 0, err
	}
	ids := enc.Decode(code)
	if len(ids) != 1 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCode, code)
	}
	// Sqids accepts several codes for one id; only the canonical one is valid.
	canonical, err := enc.Encode(ids)
	if err != nil || canonical != code {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCode, code)
	}
	return int64(ids[0]), nil
}

func (s *Sqids) encoder(label string) (*sqids.Sqids, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if enc, ok := s.encoders[label]; ok {
		return enc, nil
	}
	enc, err := sqids.New(sqids.Options{
		Alphabet:  shuffle(alphabet, s.key+":"+label),
		MinLength: MinCodeLength,
	})
	if err != nil {
		return nil, fmt.Errorf("creating encoder for label %q: %w", label, err)
	}
	s.encoders[label] = enc
	return enc, nil
}

// shuffle returns a permutation of alphabet that depends only on seed.
func shuffle(alphabet, seed string) string {
	h := fnv.New64a()
	_, _ = h.Write([]byte(seed))
	sum := h.Sum64()

	r := rand.New(rand.NewPCG(sum, sum>>1|1))
	b := []byte(alphabet)
	r.Shuffle(len(b), func(i, j int) { b[i], b[j] = b[j], b[i] })
	return string(b)
}
