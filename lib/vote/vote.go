package vote

import (
	"io"
	"sort"
	"strings"

	"github.com/votrify/votrify/lib/common"
)

// Group is a set of candidates ranked equally, kept sorted.
type Group []string

// NewGroup splits line on whitespace and sorts the tokens.
func NewGroup(line string) Group {
	g := Group(strings.Fields(line))
	sort.Strings(g)

	return g
}

func (g Group) String() string {
	return strings.Join(g, " ")
}

func (g Group) Equal(o Group) bool {
	return common.IsStringArrayEqual(g, o)
}

// Vote is an ordered list of tie groups; the first group is ranked
// highest.
type Vote []Group

// Normalize returns a copy of v with every group sorted and empty groups
// removed.
func Normalize(v Vote) Vote {
	var n Vote
	for _, g := range v {
		if len(g) < 1 {
			continue
		}
		n = append(n, NewGroup(g.String()))
	}

	return n
}

// SortGroups returns a copy of v with the tokens of every group sorted.
// Unlike Normalize it keeps empty groups and never splits a token.
func SortGroups(v Vote) Vote {
	s := make(Vote, len(v))
	for i, g := range v {
		c := make(Group, len(g))
		copy(c, g)
		sort.Strings(c)
		s[i] = c
	}

	return s
}

// ParseLines builds a Vote from the lines of a vote or ballot file. Lines
// starting with '#' are comments; blank lines are skipped.
func ParseLines(lines []string) Vote {
	var v Vote
	for _, l := range lines {
		if strings.HasPrefix(l, "#") {
			continue
		}
		if g := NewGroup(l); len(g) > 0 {
			v = append(v, g)
		}
	}

	return v
}

func Parse(r io.Reader) (Vote, error) {
	lines, err := common.ReadLines(r)
	if err != nil {
		return nil, err
	}

	return ParseLines(lines), nil
}

func (v Vote) Equal(o Vote) bool {
	if len(v) != len(o) {
		return false
	}
	for i, g := range v {
		if !g.Equal(o[i]) {
			return false
		}
	}

	return true
}

// Lines returns one space-joined line per group.
func (v Vote) Lines() []string {
	lines := make([]string, len(v))
	for i, g := range v {
		lines[i] = g.String()
	}

	return lines
}

func (v Vote) String() string {
	return strings.Join(v.Lines(), "\n")
}

// Candidates counts the tokens of all groups.
func (v Vote) Candidates() (n int) {
	for _, g := range v {
		n += len(g)
	}

	return
}
