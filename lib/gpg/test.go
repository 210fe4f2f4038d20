package gpg

import (
	"fmt"
	"strings"

	"github.com/votrify/votrify/lib/common"
)

// TestKeyring is a common.Runner answering like gpg for a fixed set of
// signed documents and keys.
type TestKeyring struct {
	common.TestRunner

	// Documents by path
	Documents map[string]TestDocument
	// Keys by fingerprint; each value is a list of `validity`, `user id`
	// pairs
	Keys map[string][][2]string
	// SignedPrefix is put before the payload by `--clearsign`.
	SignedPrefix string
}

type TestDocument struct {
	Fingerprint string
	Payload     []byte
	ExitCode    int
}

func NewTestKeyring() *TestKeyring {
	k := &TestKeyring{
		Documents:    map[string]TestDocument{},
		Keys:         map[string][][2]string{},
		SignedPrefix: "-----BEGIN PGP SIGNED MESSAGE-----\n",
	}
	k.Handler = k.handle

	return k
}

// AddKey registers a key with one uid per pair of validity and user id.
func (k *TestKeyring) AddKey(fingerprint string, uids ...[2]string) {
	k.Keys[fingerprint] = uids
}

func (k *TestKeyring) AddDocument(path, fingerprint string, payload []byte) {
	k.Documents[path] = TestDocument{Fingerprint: fingerprint, Payload: payload}
}

// TestStatus renders the status lines gpg prints for a good signature of
// fingerprint.
func TestStatus(fingerprint string) string {
	keyID := fingerprint
	if len(keyID) > 16 {
		keyID = keyID[len(keyID)-16:]
	}

	return strings.Join([]string{
		"[GNUPG:] NEWSIG",
		"[GNUPG:] KEY_CONSIDERED " + fingerprint + " 0",
		"[GNUPG:] SIG_ID 0123456789abcdefghijklmnopq 2019-03-31 1554036000",
		"[GNUPG:] GOODSIG " + keyID + " Test Voter <voter@example.org>",
		"[GNUPG:] VALIDSIG " + fingerprint + " 2019-03-31 1554036000 0 4 0 1 10 01 " + fingerprint,
		"[GNUPG:] TRUST_FULLY 0 pgp",
		"",
	}, "\n")
}

// TestColonListing renders the `--with-colons` listing of a key.
func TestColonListing(fingerprint string, uids [][2]string) string {
	lines := []string{
		"tru::1:1554036000:0:3:1:5",
		"pub:f:4096:1:" + fingerprint[len(fingerprint)-16:] + ":1554036000:::f:::scSC::::::23::0:",
		"fpr:::::::::" + fingerprint + ":",
	}
	for _, uid := range uids {
		lines = append(lines, fmt.Sprintf("uid:%s::::1554036000::HASH::%s::::::::::0:", uid[0], uid[1]))
	}

	return strings.Join(lines, "\n") + "\n"
}

func (k *TestKeyring) handle(cmd common.Command) (common.Output, error) {
	args := cmd.Args
	switch {
	case len(args) > 0 && args[0] == "--clearsign":
		return common.Output{Stdout: append([]byte(k.SignedPrefix), cmd.Stdin...)}, nil
	case len(args) > 1 && args[len(args)-2] == "--decrypt":
		doc, found := k.Documents[args[len(args)-1]]
		if !found {
			return common.Output{Stderr: []byte("gpg: no valid OpenPGP data found.\n"), ExitCode: 2}, nil
		}
		if doc.ExitCode != 0 {
			return common.Output{Stderr: []byte("[GNUPG:] BADSIG\n"), ExitCode: doc.ExitCode}, nil
		}
		return common.Output{Stdout: doc.Payload, Stderr: []byte(TestStatus(doc.Fingerprint))}, nil
	case len(args) > 1 && args[len(args)-2] == "--list-key":
		fingerprint := args[len(args)-1]
		uids, found := k.Keys[fingerprint]
		if !found {
			return common.Output{Stderr: []byte("gpg: error reading key: No public key\n"), ExitCode: 2}, nil
		}
		return common.Output{Stdout: []byte(TestColonListing(fingerprint, uids))}, nil
	}

	return common.Output{ExitCode: 2}, nil
}
