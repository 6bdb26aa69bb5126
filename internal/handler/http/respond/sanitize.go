package respond

import (
	"regexp"
)

var (
	// Credential patterns in database DSNs
	dbPasswordPattern = regexp.MustCompile(`://([^:]+):([^@]+)@`)

	// Bearer tokens echoed back in error messages
	bearerPattern = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9-_.]+`)
)

// SanitizeError masks credentials that could leak through error messages.
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	msg = dbPasswordPattern.ReplaceAllString(msg, "://$1:****@")
	msg = bearerPattern.ReplaceAllString(msg, "Bearer ****")
	return msg
}
