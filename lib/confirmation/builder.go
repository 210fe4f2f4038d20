package confirmation

import (
	"github.com/votrify/votrify/lib/ballot"
	"github.com/votrify/votrify/lib/errors"
	"github.com/votrify/votrify/lib/vote"
)

// Signer cleartext-signs a payload; gpg.Engine is one.
type Signer interface {
	Sign(payload []byte, keyID, comment string) ([]byte, error)
}

// Counter runs the counting engine over a submitted election ballot and
// the master ballot; tally.Engine is one.
type Counter interface {
	Count(ballot, master []byte) (vote.Vote, error)
}

type Request struct {
	ConfirmationID ballot.ConfirmationID
	Master         *ballot.Master
	Vote           vote.Vote
	// Ballot is the election ballot given to the counting engine. It is
	// not used by lightweight builders.
	Ballot []byte
	KeyID  string
}

// Builder checks a private vote against the master ballot and produces
// the signed confirmation.
type Builder struct {
	signer  Signer
	counter Counter
	comment string
}

// NewBuilder returns a full mode builder. A nil counter makes a
// lightweight builder, whose documents carry no results.
func NewBuilder(signer Signer, counter Counter, comment string) *Builder {
	return &Builder{
		signer:  signer,
		counter: counter,
		comment: comment,
	}
}

func (b *Builder) Lightweight() bool {
	return b.counter == nil
}

// Confirm returns the signed confirmation and the document it carries.
func (b *Builder) Confirm(req Request) ([]byte, Document, error) {
	recorded := req.Master.FindVote(req.ConfirmationID)
	if err := vote.Match(vote.Normalize(req.Vote), recorded); err != nil {
		if e, ok := err.(*errors.Error); ok {
			e.SetData("confirmation-id", req.ConfirmationID.String())
		}
		return nil, Document{}, err
	}

	log.Debug("vote matches the master ballot", "confirmation-id", req.ConfirmationID, "groups", len(recorded))

	var results vote.Vote
	if !b.Lightweight() {
		var err error
		if results, err = b.counter.Count(req.Ballot, req.Master.Text()); err != nil {
			return nil, Document{}, err
		}
		log.Debug("counted master ballot", "groups", len(results))
	}

	doc := NewDocument(req.Master.Digest(), results)
	payload, err := doc.Serialize()
	if err != nil {
		return nil, Document{}, err
	}

	signed, err := b.signer.Sign(payload, req.KeyID, b.comment)
	if err != nil {
		return nil, Document{}, err
	}

	log.Info("confirmation built", "master-hash", doc.MasterHash, "lightweight", b.Lightweight())

	return signed, doc, nil
}
