package gpg

import (
	"net/mail"
	"strconv"
	"strings"

	"github.com/votrify/votrify/lib/common"
)

const statusPrefix = "[GNUPG:] "

// Validity is the calculated validity of a user id, as printed in the
// second field of `--with-colons` uid records.
type Validity string

const (
	ValidityUnknown   Validity = "-"
	ValidityUndefined Validity = "q"
	ValidityNever     Validity = "n"
	ValidityMarginal  Validity = "m"
	ValidityFull      Validity = "f"
	ValidityUltimate  Validity = "u"
	ValidityRevoked   Validity = "r"
	ValidityExpired   Validity = "e"
)

// Trusted reports whether the web of trust certifies the user id at full
// or ultimate level.
func (v Validity) Trusted() bool {
	return v == ValidityFull || v == ValidityUltimate
}

func (v Validity) String() string {
	switch v {
	case ValidityFull:
		return "full"
	case ValidityUltimate:
		return "ultimate"
	case ValidityMarginal:
		return "marginal"
	case ValidityNever:
		return "never"
	case ValidityRevoked:
		return "revoked"
	case ValidityExpired:
		return "expired"
	case ValidityUndefined:
		return "undefined"
	default:
		return "unknown"
	}
}

// Status holds the signature lines of a `--status-fd` stream.
type Status struct {
	GoodSig  string // long key id from GOODSIG
	ValidSig string // full fingerprint from VALIDSIG
}

func ParseStatus(b []byte) (st Status) {
	for _, l := range common.SplitLines(b) {
		if !strings.HasPrefix(l, statusPrefix) {
			continue
		}

		fields := strings.Fields(l)
		if len(fields) < 3 {
			continue
		}

		switch fields[1] {
		case "GOODSIG":
			st.GoodSig = fields[2]
		case "VALIDSIG":
			st.ValidSig = fields[2]
		}
	}

	return
}

// Identity is one uid record of a key listing.
type Identity struct {
	Validity Validity
	UserID   string
	Email    string // empty when UserID carries no parsable address
}

// ParseIdentities extracts the uid records of `--with-colons` output.
func ParseIdentities(b []byte) []Identity {
	var ids []Identity
	for _, l := range common.SplitLines(b) {
		if !strings.HasPrefix(l, "uid:") {
			continue
		}

		fields := strings.Split(l, ":")
		if len(fields) < 10 {
			continue
		}

		id := Identity{
			Validity: Validity(fields[1]),
			UserID:   unescapeColonField(fields[9]),
		}
		if addr, err := mail.ParseAddress(id.UserID); err == nil {
			id.Email = addr.Address
		}

		ids = append(ids, id)
	}

	return ids
}

// unescapeColonField undoes the C-style `\xNN` escaping gpg applies to
// colon listings.
func unescapeColonField(s string) string {
	if !strings.Contains(s, `\x`) {
		return s
	}

	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+3 < len(s) && s[i+1] == 'x' {
			if c, err := strconv.ParseUint(s[i+2:i+4], 16, 8); err == nil {
				b.WriteByte(byte(c))
				i += 3
				continue
			}
		}
		b.WriteByte(s[i])
	}

	return b.String()
}
