package ballot

import (
	"github.com/votrify/votrify/lib/vote"
)

type scanState int

const (
	seekingSection scanState = iota
	readingVotes
)

// FindVote scans the master ballot lines once. It looks for the section
// of id, then collects vote lines until the next section line of any id.
// Only the first matching section is read.
func FindVote(lines []string, id ConfirmationID) vote.Vote {
	var found vote.Vote

	state := seekingSection
	for _, l := range lines {
		section := SectionPattern.FindStringSubmatch(l)

		switch state {
		case seekingSection:
			if section != nil && ConfirmationID(section[1]) == id {
				state = readingVotes
			}
		case readingVotes:
			if section != nil {
				return found
			}
			if g := vote.NewGroup(l); len(g) > 0 {
				found = append(found, g)
			}
		}
	}

	return found
}
