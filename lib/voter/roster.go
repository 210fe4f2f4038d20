package voter

import (
	"io"
	"sort"
	"strings"

	"github.com/votrify/votrify/lib/common"
	"github.com/votrify/votrify/lib/errors"
)

// Roster is the set of eligible voters, by email address.
type Roster struct {
	emails map[string]struct{}
}

// NewRoster reads one voter per line. Entries without '@' are completed
// with domain; blank lines and lines starting with '#' are skipped.
func NewRoster(lines []string, domain string) (*Roster, error) {
	r := &Roster{emails: map[string]struct{}{}}

	for _, l := range lines {
		l = strings.TrimSpace(l)
		if len(l) < 1 || strings.HasPrefix(l, "#") {
			continue
		}
		r.emails[CanonicalEmail(l, domain)] = struct{}{}
	}

	if len(r.emails) < 1 {
		return nil, errors.EmptyRoster.Clone()
	}

	log.Debug("roster loaded", "voters", len(r.emails), "domain", domain)

	return r, nil
}

func ReadRoster(rd io.Reader, domain string) (*Roster, error) {
	lines, err := common.ReadLines(rd)
	if err != nil {
		return nil, err
	}

	return NewRoster(lines, domain)
}

// CanonicalEmail appends "@domain" to a bare user name.
func CanonicalEmail(entry, domain string) string {
	if strings.Contains(entry, "@") {
		return entry
	}

	return entry + "@" + domain
}

func (r *Roster) Has(email string) bool {
	_, found := r.emails[email]
	return found
}

func (r *Roster) Len() int {
	return len(r.emails)
}

// Emails returns the sorted addresses of the roster.
func (r *Roster) Emails() []string {
	emails := make([]string, 0, len(r.emails))
	for e := range r.emails {
		emails = append(emails, e)
	}
	sort.Strings(emails)

	return emails
}
