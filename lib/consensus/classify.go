package consensus

import (
	"github.com/votrify/votrify/lib/errors"
	"github.com/votrify/votrify/lib/vote"
)

type Placement string

const (
	PlacementElected     Placement = "elected"
	PlacementBoundaryTie Placement = "boundary-tie"
	PlacementNotElected  Placement = "not-elected"
)

// RankedGroup is one tie group of the results with its placement. Rank is
// the position of the first candidate of the group, starting at 1.
type RankedGroup struct {
	Rank       int       `json:"rank" yaml:"rank"`
	Candidates []string  `json:"candidates" yaml:"candidates"`
	Placement  Placement `json:"placement" yaml:"placement"`
}

// Classify places every group of results against the number of seats. A
// group of k candidates starting after c candidates is elected when
// c+k <= seats, not elected when c >= seats and a boundary tie otherwise.
func Classify(results vote.Vote, seats int) ([]RankedGroup, error) {
	if seats < 1 {
		return nil, errors.InvalidSeats.Clone().SetData("seats", seats)
	}

	groups := make([]RankedGroup, 0, len(results))

	var c int
	for _, g := range results {
		k := len(g)

		var p Placement
		switch {
		case c+k <= seats:
			p = PlacementElected
		case c >= seats:
			p = PlacementNotElected
		default:
			p = PlacementBoundaryTie
		}

		groups = append(groups, RankedGroup{
			Rank:       c + 1,
			Candidates: []string(g),
			Placement:  p,
		})
		c += k
	}

	return groups, nil
}
