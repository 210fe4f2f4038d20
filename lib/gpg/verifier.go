package gpg

import (
	"strings"

	logging "github.com/inconshreveable/log15"

	"github.com/votrify/votrify/lib/errors"
)

// Roster answers whether an email address belongs to an eligible voter.
type Roster interface {
	Has(email string) bool
}

// SignatureRecord is the outcome of verifying one confirmation document.
type SignatureRecord struct {
	Source      string   `json:"source"`
	KeyID       string   `json:"key-id"`
	Fingerprint string   `json:"fingerprint"`
	Good        bool     `json:"good"`
	Validity    Validity `json:"validity"`
	Identity    string   `json:"identity,omitempty"`
}

// Verifier checks the signature of a confirmation document and resolves
// the signer to an eligible voter.
type Verifier struct {
	engine *Engine
	roster Roster
	log    logging.Logger
}

func NewVerifier(engine *Engine, roster Roster) *Verifier {
	return &Verifier{
		engine: engine,
		roster: roster,
		log:    log.New("verifier", true),
	}
}

// Verify returns the signature record of the document at path and the
// payload it signs.
func (v *Verifier) Verify(path string) (SignatureRecord, []byte, error) {
	record := SignatureRecord{Source: path}

	st, payload, err := v.engine.Decrypt(path)
	if err != nil {
		return record, nil, err
	}

	// VALIDSIG carries the full fingerprint, GOODSIG only the long key id
	if !strings.HasSuffix(st.ValidSig, st.GoodSig) {
		return record, nil, errors.SignatureMismatch.Clone().
			SetData("file", path).
			SetData("good-signature", st.GoodSig).
			SetData("valid-signature", st.ValidSig)
	}

	record.KeyID = st.GoodSig
	record.Fingerprint = st.ValidSig
	record.Good = true

	ids, err := v.engine.ListIdentities(st.ValidSig)
	if err != nil {
		return record, nil, err
	}

	for _, id := range ids {
		if !id.Validity.Trusted() {
			v.log.Debug("skip identity below full trust", "uid", id.UserID, "validity", id.Validity)
			continue
		}
		if len(id.Email) < 1 || !v.roster.Has(id.Email) {
			continue
		}

		record.Validity = id.Validity
		record.Identity = id.Email
		v.log.Debug("confirmation signed by voter", "file", path, "voter", id.Email, "fingerprint", st.ValidSig)

		return record, payload, nil
	}

	return record, nil, errors.NoEligibleVoter.Clone().
		SetData("file", path).
		SetData("fingerprint", st.ValidSig)
}
