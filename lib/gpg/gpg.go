package gpg

import (
	lru "github.com/hashicorp/golang-lru"

	"github.com/votrify/votrify/lib/common"
	"github.com/votrify/votrify/lib/errors"
)

// Engine drives GnuPG through a common.Runner.
type Engine struct {
	runner common.Runner
	binary string

	// key listings by fingerprint; nil disables caching
	identities *lru.Cache
}

// NewEngine keeps up to cacheSize key listings; cacheSize < 1 turns the
// cache off.
func NewEngine(runner common.Runner, binary string, cacheSize int) *Engine {
	e := &Engine{
		runner: runner,
		binary: binary,
	}

	if cacheSize > 0 {
		cache, err := lru.New(cacheSize)
		if err != nil {
			panic(err)
		}
		e.identities = cache
	}

	return e
}

// Sign cleartext-signs payload. keyID selects the signing key; empty uses
// the default key of the keyring.
func (e *Engine) Sign(payload []byte, keyID, comment string) ([]byte, error) {
	args := []string{"--clearsign", "--comment", comment}
	if len(keyID) > 0 {
		args = append(args, "--local-user", keyID)
	}

	out, err := e.runner.Run(common.Command{Name: e.binary, Args: args, Stdin: payload})
	if err != nil {
		return nil, err
	}
	if out.ExitCode != 0 {
		return nil, errors.SigningFailed.Clone().
			SetData("exit-code", out.ExitCode).
			SetData("stderr", string(out.Stderr))
	}

	log.Debug("signed confirmation", "key-id", keyID, "size", len(out.Stdout))

	return out.Stdout, nil
}

// Decrypt verifies the signed document at path. It returns the machine
// readable status and the signed payload.
func (e *Engine) Decrypt(path string) (Status, []byte, error) {
	args := []string{"--batch", "--logger-file", "/dev/null", "--status-fd", "2", "--decrypt", path}

	out, err := e.runner.Run(common.Command{Name: e.binary, Args: args})
	if err != nil {
		return Status{}, nil, err
	}
	if out.ExitCode != 0 {
		return Status{}, nil, errors.SignatureVerifyFailed.Clone().
			SetData("file", path).
			SetData("exit-code", out.ExitCode).
			SetData("status", string(out.Stderr))
	}

	st := ParseStatus(out.Stderr)
	if len(st.GoodSig) < 1 || len(st.ValidSig) < 1 {
		return st, nil, errors.SignatureNotFound.Clone().
			SetData("file", path).
			SetData("status", string(out.Stderr))
	}

	return st, out.Stdout, nil
}

// ListIdentities returns the uid records of the key with fingerprint.
func (e *Engine) ListIdentities(fingerprint string) ([]Identity, error) {
	if e.identities != nil {
		if cached, ok := e.identities.Get(fingerprint); ok {
			return cached.([]Identity), nil
		}
	}

	args := []string{"--batch", "--with-colons", "--list-key", fingerprint}

	out, err := e.runner.Run(common.Command{Name: e.binary, Args: args})
	if err != nil {
		return nil, err
	}
	if out.ExitCode != 0 {
		return nil, errors.KeyListingFailed.Clone().
			SetData("fingerprint", fingerprint).
			SetData("exit-code", out.ExitCode)
	}

	ids := ParseIdentities(out.Stdout)
	if e.identities != nil {
		e.identities.Add(fingerprint, ids)
	}

	return ids, nil
}
