package consensus

import (
	"fmt"

	"github.com/votrify/votrify/lib/common"
)

// Report is the outcome of one verification run, as printed by the
// `verify` command.
type Report struct {
	RunID      string        `json:"run-id" yaml:"run-id"`
	Voters     []string      `json:"voters" yaml:"voters"`
	RosterSize int           `json:"roster-size" yaml:"roster-size"`
	Verified   float64       `json:"verified" yaml:"verified"`
	MasterHash string        `json:"master-hash" yaml:"master-hash"`
	Seats      int           `json:"seats" yaml:"seats"`
	Results    []RankedGroup `json:"results,omitempty" yaml:"results,omitempty"`
}

func NewReport(r Result, seats int) (Report, error) {
	report := Report{
		RunID:      common.GenerateUUID(),
		Voters:     r.Voters,
		RosterSize: r.RosterSize,
		Verified:   r.Fraction(),
		MasterHash: r.MasterHash,
		Seats:      seats,
	}

	if r.Results != nil {
		groups, err := Classify(*r.Results, seats)
		if err != nil {
			return Report{}, err
		}
		report.Results = groups
	}

	return report, nil
}

// Percentage renders Verified with one decimal, eg. `28.6%`.
func (r Report) Percentage() string {
	return FormatPercentage(r.Verified)
}

func FormatPercentage(fraction float64) string {
	return fmt.Sprintf("%.1f%%", fraction*100)
}

// HasResults is false for reports of lightweight confirmations.
func (r Report) HasResults() bool {
	return r.Results != nil
}
