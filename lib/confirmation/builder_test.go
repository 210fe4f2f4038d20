package confirmation

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/votrify/votrify/lib/ballot"
	"github.com/votrify/votrify/lib/common"
	"github.com/votrify/votrify/lib/errors"
	"github.com/votrify/votrify/lib/vote"
)

const testMasterText = "----- confirmation 0a1f -----\ndave\n----- confirmation ab12 -----\nalice bob\ncarol\n"

func testRequest(t *testing.T, v vote.Vote) Request {
	m, err := ballot.NewMaster([]byte(testMasterText))
	require.NoError(t, err)

	return Request{
		ConfirmationID: "ab12",
		Master:         m,
		Vote:           v,
		Ballot:         []byte("alice\nbob\ncarol\ndave\n"),
		KeyID:          "0xDEADBEEF",
	}
}

func TestConfirmFull(t *testing.T) {
	signer := &TestSigner{Prefix: "signed:"}
	counter := &TestCounter{Results: vote.Vote{{"carol"}, {"bob", "alice"}, {"dave"}}}
	b := NewBuilder(signer, counter, common.DefaultConfirmationComment)
	require.False(t, b.Lightweight())

	req := testRequest(t, vote.Vote{{"bob", "alice"}, {"carol"}})
	signed, doc, err := b.Confirm(req)
	require.NoError(t, err)

	hash := common.MakeDigest([]byte(testMasterText))
	expected := `{"master_hash":"` + hash + `","results":[["carol"],["alice","bob"],["dave"]]}`
	require.Equal(t, "signed:"+expected, string(signed))
	require.Equal(t, hash, doc.MasterHash)

	require.Equal(t, []string{"0xDEADBEEF"}, signer.KeyIDs)
	require.Equal(t, []string{common.DefaultConfirmationComment}, signer.Comments)
	require.Equal(t, [][]byte{req.Ballot}, counter.Ballots)
	require.Equal(t, testMasterText, string(counter.Masters[0]))
}

func TestConfirmLightweight(t *testing.T) {
	signer := &TestSigner{}
	b := NewBuilder(signer, nil, "comment")
	require.True(t, b.Lightweight())

	_, doc, err := b.Confirm(testRequest(t, vote.Vote{{"alice", "bob"}, {"carol"}}))
	require.NoError(t, err)
	require.False(t, doc.HasResults())
	require.Equal(t, `{"master_hash":"`+doc.MasterHash+`"}`, string(signer.Payloads[0]))
}

func TestConfirmMismatch(t *testing.T) {
	signer := &TestSigner{}
	counter := &TestCounter{}
	b := NewBuilder(signer, counter, "comment")

	_, _, err := b.Confirm(testRequest(t, vote.Vote{{"dave"}}))
	require.True(t, errors.Is(err, errors.VoteMismatch))

	e := err.(*errors.Error)
	require.Equal(t, "ab12", e.Data["confirmation-id"])
	require.Contains(t, e.Data["diff"], "-alice bob\n")
	require.Contains(t, e.Data["diff"], "+dave\n")

	// nothing is counted nor signed
	require.Empty(t, counter.Masters)
	require.Empty(t, signer.Payloads)
}

func TestConfirmVoteNotFound(t *testing.T) {
	signer := &TestSigner{}
	req := testRequest(t, vote.Vote{{"alice"}})
	req.ConfirmationID = "ffff"

	_, _, err := NewBuilder(signer, nil, "comment").Confirm(req)
	require.True(t, errors.Is(err, errors.VoteNotFound))
	require.Equal(t, "ffff", err.(*errors.Error).Data["confirmation-id"])
	require.Empty(t, signer.Payloads)
}

func TestConfirmEngineFailures(t *testing.T) {
	{
		counter := &TestCounter{Err: errors.CountingEngineNoResults.Clone().SetData("stdout", "")}
		signer := &TestSigner{}

		_, _, err := NewBuilder(signer, counter, "comment").Confirm(testRequest(t, vote.Vote{{"alice", "bob"}, {"carol"}}))
		require.True(t, errors.Is(err, errors.CountingEngineNoResults))
		require.Empty(t, signer.Payloads)
	}

	{
		signer := &TestSigner{Err: errors.SigningFailed.Clone().SetData("exit-code", 2)}

		_, _, err := NewBuilder(signer, nil, "comment").Confirm(testRequest(t, vote.Vote{{"alice", "bob"}, {"carol"}}))
		require.True(t, errors.Is(err, errors.SigningFailed))
	}
}
