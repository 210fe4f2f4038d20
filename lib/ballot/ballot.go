package ballot

import (
	"bytes"
	"io"
	"io/ioutil"
	"regexp"
	"unicode/utf8"

	"github.com/votrify/votrify/lib/common"
	"github.com/votrify/votrify/lib/errors"
	"github.com/votrify/votrify/lib/vote"
)

// SectionPattern matches the line opening the votes of one confirmation
// id, eg. `----- confirmation ab12 -----`.
var SectionPattern = regexp.MustCompile(`^-+ confirmation ([0-9a-f]{4}) -+`)

var byteOrderMark = []byte("\xef\xbb\xbf")

// Master is the published master ballot. It keeps the canonical text: a
// leading BOM removed and every line ending turned into "\n". The digest,
// the vote lookup and the counting engine all see this text.
type Master struct {
	text  []byte
	lines []string
}

func NewMaster(raw []byte) (*Master, error) {
	if !utf8.Valid(raw) {
		return nil, errors.InvalidMasterBallot.Clone()
	}

	text := CanonicalText(raw)

	return &Master{
		text:  text,
		lines: common.SplitLines(text),
	}, nil
}

func ReadMaster(r io.Reader) (*Master, error) {
	raw, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}

	return NewMaster(raw)
}

// CanonicalText strips a UTF-8 BOM and normalizes "\r\n" and "\r" line
// endings to "\n".
func CanonicalText(raw []byte) []byte {
	b := bytes.TrimPrefix(raw, byteOrderMark)
	b = bytes.Replace(b, []byte("\r\n"), []byte("\n"), -1)
	b = bytes.Replace(b, []byte("\r"), []byte("\n"), -1)

	return b
}

func (m *Master) Text() []byte {
	return m.text
}

func (m *Master) Lines() []string {
	return m.lines
}

// Digest is the base64 SHA-512 of the canonical text.
func (m *Master) Digest() string {
	return common.MakeDigest(m.text)
}

// FindVote returns the vote recorded for id, or an empty Vote when no
// section carries it.
func (m *Master) FindVote(id ConfirmationID) vote.Vote {
	return FindVote(m.lines, id)
}

// ConfirmationIDs lists the ids of every section, in document order.
func (m *Master) ConfirmationIDs() []ConfirmationID {
	var ids []ConfirmationID
	for _, l := range m.lines {
		if found := SectionPattern.FindStringSubmatch(l); found != nil {
			ids = append(ids, ConfirmationID(found[1]))
		}
	}

	return ids
}
