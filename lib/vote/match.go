package vote

import (
	"github.com/pmezard/go-difflib/difflib"

	"github.com/votrify/votrify/lib/errors"
)

const (
	DiffRecordedLabel  = "recorded"
	DiffSubmittedLabel = "submitted"
)

// Match checks the submitted vote against the one recorded in the master
// ballot. An empty recorded vote means the confirmation id had no section.
func Match(submitted, recorded Vote) error {
	if len(recorded) < 1 {
		return errors.VoteNotFound.Clone()
	}

	if submitted.Equal(recorded) {
		return nil
	}

	return errors.VoteMismatch.Clone().SetData("diff", Diff(recorded, submitted))
}

// Diff renders a unified diff from the recorded to the submitted vote, one
// line per group.
func Diff(recorded, submitted Vote) string {
	d := difflib.UnifiedDiff{
		A:        diffLines(recorded),
		B:        diffLines(submitted),
		FromFile: DiffRecordedLabel,
		ToFile:   DiffSubmittedLabel,
		Context:  3,
	}

	s, err := difflib.GetUnifiedDiffString(d)
	if err != nil {
		return err.Error()
	}

	return s
}

func diffLines(v Vote) []string {
	lines := v.Lines()
	for i := range lines {
		lines[i] += "\n"
	}

	return lines
}
