package common

import (
	"crypto/sha512"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMakeDigest(t *testing.T) {
	text := []byte("----- confirmation ab12 -----\nalice bob\ncarol\n")

	d := MakeDigest(text)
	require.Equal(t, d, MakeDigest(text), "digest must be deterministic")

	raw, err := base64.StdEncoding.DecodeString(d)
	require.NoError(t, err)
	require.Equal(t, sha512.Size, len(raw))

	require.NotEqual(t, d, MakeDigest(append(text, '\n')))
}

func TestMakeDigestEmpty(t *testing.T) {
	// well-known SHA-512 of the empty string
	require.Equal(
		t,
		"Z4PhNX7vuL3xVChQ1m2AB9Yg5AULVxXcg/SpIdNs6c5H0NE8XYXysP+DGNKHfuwvY7kxvUdBeoGlODJ6+SfaPg==",
		MakeDigest(nil),
	)
}
