package validator

import (
	"net/mail"
	"regexp"
	"strings"
)

const (
	maxEmailLength     = 254
	maxEmailLocalPart  = 64
	maxDomainLabelSize = 63
)

var (
	// Layout only, no calendar check.
	datetimeRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}$`)

	domainLabelRegex = regexp.MustCompile(`^[A-Za-z0-9](?:[A-Za-z0-9-]*[A-Za-z0-9])?$`)

	// RFC 5322 dot-atom restricted to ASCII atext.
	localDotAtomRegex = regexp.MustCompile("^[A-Za-z0-9!#$%&'*+/=?^_`{|}~-]+(?:\\.[A-Za-z0-9!#$%&'*+/=?^_`{|}~-]+)*$")
)

// Datetime reports whether the string form of value has the shape
// `YYYY-MM-DD HH:MM:SS`. Field ranges are not checked.
func Datetime(value any) bool {
	s, ok := textOf(value)
	if !ok {
		return false
	}
	return datetimeRegex.MatchString(s)
}

// Email validates a bare email address using the RFC 5322 parser from net/mail.
// Display names and angle brackets are rejected, the local part must be ASCII
// and the domain must have at least two labels.
func Email(value any) bool {
	s, ok := textOf(value)
	if !ok || s == "" || len(s) > maxEmailLength {
		return false
	}

	addr, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}
	// ParseAddress accepts "Name <user@host>" forms; only the bare address may pass.
	if addr.Name != "" || addr.Address != s {
		return false
	}

	at := strings.LastIndexByte(s, '@')
	if at <= 0 {
		return false
	}
	local, domain := s[:at], s[at+1:]
	// net/mail accepts UTF-8 local parts (RFC 6532); only ASCII atext may pass.
	if len(local) > maxEmailLocalPart || !localDotAtomRegex.MatchString(local) {
		return false
	}

	return validDomain(domain)
}

