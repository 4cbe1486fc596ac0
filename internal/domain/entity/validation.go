package entity

import (
	"fmt"
	"net/mail"
	"net/url"
	"strings"
)

const (
	// maxURLLength caps URL length to prevent oversized payloads.
	maxURLLength = 2048

	// maxLabelLength caps recipe labels; anything longer is garbage input.
	maxLabelLength = 200
)

// ValidateURL validates the format of a recipe URL.
// It checks that the URL is well-formed, uses HTTP/HTTPS scheme, and has a valid host.
// Returns a ValidationError if the URL is invalid or empty.
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return &ValidationError{Field: "url", Message: "URL is required"}
	}

	if len(rawURL) > maxURLLength {
		return &ValidationError{
			Field:   "url",
			Message: fmt.Sprintf("url must not exceed %d characters", maxURLLength),
		}
	}

	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("parse URL: %w", err)
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return &ValidationError{Field: "url", Message: "URL must use http or https scheme"}
	}

	if parsedURL.Host == "" {
		return &ValidationError{Field: "url", Message: "URL must have a valid host"}
	}

	return nil
}

// ValidateEmail checks that an email address is well-formed per RFC 5322
// and contains no display name ("Jane <jane@example.com>" is rejected).
func ValidateEmail(email string) error {
	if email == "" {
		return &ValidationError{Field: "email", Message: "email is required"}
	}

	addr, err := mail.ParseAddress(email)
	if err != nil {
		return &ValidationError{Field: "email", Message: "email is invalid"}
	}
	if addr.Address != email {
		return &ValidationError{Field: "email", Message: "email is invalid"}
	}

	return nil
}

// Validate checks the Recipe entity fields prior to persistence.
func (r *Recipe) Validate() error {
	if strings.TrimSpace(r.Label) == "" {
		return &ValidationError{Field: "label", Message: "is required"}
	}
	if len(r.Label) > maxLabelLength {
		return &ValidationError{
			Field:   "label",
			Message: fmt.Sprintf("must not exceed %d characters", maxLabelLength),
		}
	}
	if r.URL != "" {
		if err := ValidateURL(r.URL); err != nil {
			return err
		}
	}
	if r.SubmitterID <= 0 {
		return &ValidationError{Field: "submitter_id", Message: "must be positive"}
	}
	return nil
}
