// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package obfuscate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDevelopment(t *testing.T) {
	var o Development

	code, err := o.Encode(42, "mni")
	require.NoError(t, err)
	assert.Equal(t, "42", code)

	id, err := o.Decode("42", "pag")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	_, err = o.Decode("abc", "pag")
	assert.True(t, errors.Is(err, ErrInvalidCode))
}

func TestSqids_RoundTrip(t *testing.T) {
	o, err := NewSqids("secret")
	require.NoError(t, err)

	for _, id := range []int64{0, 1, 7, 12345, 1 << 40} {
		code, err := o.Encode(id, "mni")
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(code), MinCodeLength)

		got, err := o.Decode(code, "mni")
		require.NoError(t, err)
		assert.Equal(t, id, got)
	}
}

func TestSqids_LabelsDiffer(t *testing.T) {
	o, err := NewSqids("secret")
	require.NoError(t, err)

	mni, err := o.Encode(10, "mni")
	require.NoError(t, err)
	pag, err := o.Encode(10, "pag")
	require.NoError(t, err)

	assert.NotEqual(t, mni, pag)
}

func TestSqids_Deterministic(t *testing.T) {
	a, _ := NewSqids("secret")
	b, _ := NewSqids("secret")
	c, _ := NewSqids("other")

	ca, _ := a.Encode(99, "mni")
	cb, _ := b.Encode(99, "mni")
	cc, _ := c.Encode(99, "mni")

	assert.Equal(t, ca, cb)
	assert.NotEqual(t, ca, cc)
}

func TestSqids_Errors(t *testing.T) {
	_, err := NewSqids("")
	assert.Error(t, err)

	o, _ := NewSqids("secret")
	_, err = o.Encode(-1, "mni")
	assert.Error(t, err)

	_, err = o.Decode("!!", "mni")
	assert.True(t, errors.Is(err, ErrInvalidCode))
}

func TestNew(t *testing.T) {
	tests := []struct {
		kind    string
		key     string
		wantErr bool
	}{
		{"", "", false},
		{KindDevelopment, "", false},
		{KindSqids, "k", false},
		{KindSqids, "", true},
		{"rot13", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			_, err := New(tt.kind, tt.key)
			if (err != nil) != tt.wantErr {
				t.Errorf("New(%q) error = %v, wantErr %v", tt.kind, err, tt.wantErr)
			}
		})
	}
}
