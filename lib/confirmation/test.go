package confirmation

import (
	"github.com/votrify/votrify/lib/vote"
)

// TestSigner prefixes the payload instead of signing it.
type TestSigner struct {
	Prefix   string
	Err      error
	Payloads [][]byte
	KeyIDs   []string
	Comments []string
}

func (s *TestSigner) Sign(payload []byte, keyID, comment string) ([]byte, error) {
	s.Payloads = append(s.Payloads, payload)
	s.KeyIDs = append(s.KeyIDs, keyID)
	s.Comments = append(s.Comments, comment)
	if s.Err != nil {
		return nil, s.Err
	}

	return append([]byte(s.Prefix), payload...), nil
}

// TestCounter returns fixed results.
type TestCounter struct {
	Results vote.Vote
	Err     error
	Ballots [][]byte
	Masters [][]byte
}

func (c *TestCounter) Count(ballot, master []byte) (vote.Vote, error) {
	c.Ballots = append(c.Ballots, ballot)
	c.Masters = append(c.Masters, master)
	if c.Err != nil {
		return nil, c.Err
	}

	return c.Results, nil
}
