package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	sampleAddress1 = "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"
	sampleAddress2 = "0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359"
)

func TestGetValidAddress(t *testing.T) {
	noPrefix := strings.TrimPrefix(sampleAddress1, "0x")

	tests := []struct {
		name     string
		input    string
		checksum bool
		want     string
		wantOK   bool
	}{
		{"valid address as lowercase", sampleAddress1, false, strings.ToLower(sampleAddress1), true},
		{"trailing space", sampleAddress1 + " ", false, strings.ToLower(sampleAddress1), true},
		{"checksummed", sampleAddress1, true, sampleAddress1, true},
		{"lowercase input checksummed", strings.ToLower(sampleAddress1), true, sampleAddress1, true},
		{"without prefix", noPrefix, false, "0x" + strings.ToLower(noPrefix), true},
		{"wrong length", sampleAddress1[:38], false, "", false},
		{"bad prefix", "1x" + noPrefix, false, "", false},
		{"non hex", sampleAddress1[:41] + "G", true, "", false},
		{"bad checksum", "0x5AAeb6053F3E94C9b9A09f33669435E7Ef1BeAed", true, "", false},
		{"empty", "", false, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := GetValidAddress(tt.input, tt.checksum)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAreAddressesEqual(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{sampleAddress1, sampleAddress1, true},
		{strings.ToUpper(sampleAddress1[2:]), strings.ToLower(sampleAddress1), true},
		{sampleAddress1 + " ", strings.ToLower(sampleAddress1), true},
		{"", "", false},
		{sampleAddress1, sampleAddress2, false},
		{sampleAddress1, sampleAddress1[:38], false},
		{"1x" + sampleAddress1[2:], "1x" + sampleAddress1[2:], false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, AreAddressesEqual(tt.a, tt.b), "%q <-> %q", tt.a, tt.b)
	}
}

func TestShortenAddress(t *testing.T) {
	address := "0x1234567890123456789012345678901234567890"

	t.Run("invalid address length", func(t *testing.T) {
		_, err := ShortenAddress("0x123", DefaultShortenChars)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidAddress)
		assert.Contains(t, err.Error(), "'0x123'")
	})

	t.Run("chars out of range", func(t *testing.T) {
		_, err := ShortenAddress(address, 0)
		assert.EqualError(t, err, "invalid 'chars' parameter '0'")
		_, err = ShortenAddress(address, 20)
		assert.EqualError(t, err, "invalid 'chars' parameter '20'")
	})

	t.Run("default chars", func(t *testing.T) {
		got, err := ShortenAddress(address, DefaultShortenChars)
		require.NoError(t, err)
		assert.Equal(t, "0x1234...7890", got)
	})

	t.Run("custom chars", func(t *testing.T) {
		got, err := ShortenAddress(address, 6)
		require.NoError(t, err)
		assert.Equal(t, "0x123456...567890", got)
	})
}
