package ideas

import "errors"

var (
	// ErrInvalidArgument indicates a misconfigured aggregation call
	// (no sources, or a non-positive limit). This is a programming or
	// configuration error, not a runtime condition.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrSourceTimeout indicates the source did not answer within its deadline
	ErrSourceTimeout = errors.New("source timed out")

	// ErrSourceUnavailable indicates a transport or connection failure
	ErrSourceUnavailable = errors.New("source unavailable")

	// ErrSourceMalformedResponse indicates a payload that could not be parsed into items
	ErrSourceMalformedResponse = errors.New("source returned a malformed response")
)
