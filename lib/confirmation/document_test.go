package confirmation

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/votrify/votrify/lib/errors"
	"github.com/votrify/votrify/lib/vote"
)

func TestDocumentSerialize(t *testing.T) {
	{
		b, err := NewDocument("abc=", nil).Serialize()
		require.NoError(t, err)
		require.Equal(t, `{"master_hash":"abc="}`, string(b))
	}

	{
		b, err := NewDocument("abc=", vote.Vote{{"bob", "alice"}, {"carol"}}).Serialize()
		require.NoError(t, err)
		require.Equal(t, `{"master_hash":"abc=","results":[["alice","bob"],["carol"]]}`, string(b))
	}

	{
		// counted, but nobody ranked
		b, err := NewDocument("abc=", vote.Vote{}).Serialize()
		require.NoError(t, err)
		require.Equal(t, `{"master_hash":"abc=","results":[]}`, string(b))
	}
}

func TestParseDocument(t *testing.T) {
	d, err := ParseDocument([]byte(`{"master_hash": "abc=", "results": [["carol"], ["bob", "alice"]]}`))
	require.NoError(t, err)
	require.Equal(t, "abc=", d.MasterHash)
	require.True(t, d.HasResults())
	require.Equal(t, vote.Vote{{"carol"}, {"bob", "alice"}}, *d.Results)

	d, err = ParseDocument([]byte(`{"master_hash": "abc="}`))
	require.NoError(t, err)
	require.False(t, d.HasResults())
}

func TestDocumentResultsKey(t *testing.T) {
	parse := func(payload string) Document {
		d, err := ParseDocument([]byte(payload))
		require.NoError(t, err)
		return d
	}

	base := parse(`{"master_hash": "abc=", "results": [["alice", "bob"], ["carol"]]}`)
	require.Equal(t, `[["alice","bob"],["carol"]]`, base.ResultsKey())

	// order inside a group does not matter
	require.Equal(t, base.ResultsKey(), parse(`{"master_hash": "abc=", "results": [["bob", "alice"], ["carol"]]}`).ResultsKey())

	for _, payload := range []string{
		`{"master_hash": "abc=", "results": [["alice bob"], ["carol"]]}`,
		`{"master_hash": "abc=", "results": [["alice", "bob"], [], ["carol"]]}`,
		`{"master_hash": "abc=", "results": [["alice", "bob", "carol"]]}`,
		`{"master_hash": "abc=", "results": []}`,
	} {
		require.NotEqual(t, base.ResultsKey(), parse(payload).ResultsKey(), payload)
	}

	require.Equal(t, "", parse(`{"master_hash": "abc="}`).ResultsKey())
	require.Equal(t, "[]", parse(`{"master_hash": "abc=", "results": []}`).ResultsKey())
}

func TestParseDocumentInvalid(t *testing.T) {
	for _, payload := range []string{
		``,
		`not json`,
		`{"results": [["alice"]]}`,
		`{"master_hash": 1}`,
		`{"master_hash": "abc=", "results": "alice"}`,
	} {
		_, err := ParseDocument([]byte(payload))
		require.True(t, errors.Is(err, errors.InvalidConfirmationDocument), payload)
	}
}
