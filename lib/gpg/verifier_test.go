package gpg

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/votrify/votrify/lib/common"
	"github.com/votrify/votrify/lib/errors"
)

type testRoster map[string]bool

func (r testRoster) Has(email string) bool {
	return r[email]
}

var roster = testRoster{"alice@gentoo.org": true, "bob@gentoo.org": true}

func TestVerify(t *testing.T) {
	k := NewTestKeyring()
	k.AddKey(
		testFingerprint,
		[2]string{"m", "Alice <alice@gentoo.org>"},  // not trusted enough
		[2]string{"f", "Alice <alice@example.org>"}, // not in roster
		[2]string{"u", "Bob <bob@gentoo.org>"},
		[2]string{"f", "Alice <alice@gentoo.org>"},
	)
	k.AddDocument("conf.asc", testFingerprint, []byte(`{"master_hash":"abc="}`))

	record, payload, err := NewVerifier(NewEngine(k, "gpg", 0), roster).Verify("conf.asc")
	require.NoError(t, err)
	require.Equal(t, `{"master_hash":"abc="}`, string(payload))

	require.Equal(t, "conf.asc", record.Source)
	require.True(t, record.Good)
	require.Equal(t, testFingerprint, record.Fingerprint)
	require.Equal(t, "89ABCDEF01234567", record.KeyID)
	require.Equal(t, "bob@gentoo.org", record.Identity, "first trusted roster identity wins")
	require.Equal(t, ValidityUltimate, record.Validity)

	require.Equal(t, []string{"--batch", "--with-colons", "--list-key", testFingerprint}, k.LastCall().Args)
}

func TestVerifyNoEligibleVoter(t *testing.T) {
	k := NewTestKeyring()
	k.AddKey(
		testFingerprint,
		[2]string{"m", "Alice <alice@gentoo.org>"},
		[2]string{"f", "Mallory <mallory@gentoo.org>"},
	)
	k.AddDocument("conf.asc", testFingerprint, []byte("{}"))

	_, _, err := NewVerifier(NewEngine(k, "gpg", 0), roster).Verify("conf.asc")
	require.True(t, errors.Is(err, errors.NoEligibleVoter))
	require.Equal(t, "conf.asc", err.(*errors.Error).Data["file"])
	require.Equal(t, testFingerprint, err.(*errors.Error).Data["fingerprint"])
}

func TestVerifyMismatchedSignatures(t *testing.T) {
	r := &common.TestRunner{
		Handler: func(common.Command) (common.Output, error) {
			status := "[GNUPG:] GOODSIG 1111111111111111 Someone\n" +
				"[GNUPG:] VALIDSIG " + testFingerprint + " 2019-03-31\n"
			return common.Output{Stdout: []byte("{}"), Stderr: []byte(status)}, nil
		},
	}

	_, _, err := NewVerifier(NewEngine(r, "gpg", 0), roster).Verify("conf.asc")
	require.True(t, errors.Is(err, errors.SignatureMismatch))
	require.Equal(t, 1, len(r.Calls), "key must not be listed after a mismatch")
}

func TestVerifyBadSignature(t *testing.T) {
	k := NewTestKeyring()
	k.Documents["conf.asc"] = TestDocument{Fingerprint: testFingerprint, ExitCode: 1}

	_, _, err := NewVerifier(NewEngine(k, "gpg", 0), roster).Verify("conf.asc")
	require.True(t, errors.Is(err, errors.SignatureVerifyFailed))
	require.Equal(t, 1, err.(*errors.Error).Data["exit-code"])
}

func TestVerifyUnknownKey(t *testing.T) {
	k := NewTestKeyring()
	k.AddDocument("conf.asc", testFingerprint, []byte("{}"))

	_, _, err := NewVerifier(NewEngine(k, "gpg", 0), roster).Verify("conf.asc")
	require.True(t, errors.Is(err, errors.KeyListingFailed))
}
