package ballot

import (
	"regexp"
	"strings"

	"github.com/votrify/votrify/lib/errors"
)

var validConfirmationID = regexp.MustCompile(`^[0-9a-fA-F]{4}$`)

// ConfirmationID links a voter's private ballot to its anonymized section
// of the master ballot. It is always lowercase.
type ConfirmationID string

// ParseConfirmationID accepts exactly 4 hexadecimal digits, in any case.
func ParseConfirmationID(s string) (ConfirmationID, error) {
	if !validConfirmationID.MatchString(s) {
		return "", errors.InvalidConfirmationID.Clone().SetData("confirmation-id", s)
	}

	return ConfirmationID(strings.ToLower(s)), nil
}

func (c ConfirmationID) String() string {
	return string(c)
}
