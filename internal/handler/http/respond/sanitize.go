package respond

import (
	"regexp"
)

var (
	// bearer tokens sometimes end up inside wrapped transport errors
	bearerTokenPattern = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-_.]+`)
	// JWT compact serialization (three base64url segments)
	jwtPattern = regexp.MustCompile(`eyJ[a-zA-Z0-9\-_]+\.[a-zA-Z0-9\-_]+\.[a-zA-Z0-9\-_]+`)
	// database password inside a DSN
	dbPasswordPattern = regexp.MustCompile(`://([^:/]+):([^@]+)@`)
)

// Sanitize returns the error message with credentials masked, safe to log.
func Sanitize(err error) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	msg = bearerTokenPattern.ReplaceAllString(msg, "Bearer ****")
	msg = jwtPattern.ReplaceAllString(msg, "****.****.****")
	msg = dbPasswordPattern.ReplaceAllString(msg, "://$1:****@")
	return msg
}
