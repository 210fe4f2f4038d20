package confirmation

import (
	"encoding/json"

	"github.com/votrify/votrify/lib/errors"
	"github.com/votrify/votrify/lib/vote"
)

// Document is the payload a voter signs. Results is nil for lightweight
// confirmations.
type Document struct {
	MasterHash string     `json:"master_hash"`
	Results    *vote.Vote `json:"results,omitempty"`
}

func NewDocument(masterHash string, results vote.Vote) Document {
	d := Document{MasterHash: masterHash}
	if results != nil {
		sorted := vote.SortGroups(results)
		d.Results = &sorted
	}

	return d
}

// ParseDocument decodes the signed payload of a confirmation. The results
// are kept as signed.
func ParseDocument(payload []byte) (Document, error) {
	var d Document
	if err := json.Unmarshal(payload, &d); err != nil {
		return Document{}, errors.InvalidConfirmationDocument.Clone().SetData("error", err.Error())
	}
	if len(d.MasterHash) < 1 {
		return Document{}, errors.InvalidConfirmationDocument.Clone().SetData("error", "master_hash is missing")
	}

	return d, nil
}

func (d Document) Serialize() ([]byte, error) {
	return json.Marshal(d)
}

func (d Document) HasResults() bool {
	return d.Results != nil
}

// ResultsKey is the JSON encoding of the results with the tokens of every
// group sorted. Two documents have the same key only when their results
// hold the same tokens in the same groups. It is empty without results.
func (d Document) ResultsKey() string {
	if !d.HasResults() {
		return ""
	}

	b, err := json.Marshal(vote.SortGroups(*d.Results))
	if err != nil {
		return ""
	}

	return string(b)
}
