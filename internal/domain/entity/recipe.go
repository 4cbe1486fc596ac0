// Package entity defines the core domain entities and validation logic for the application.
// It contains the fundamental business objects such as Recipe and User, along with
// their validation rules and domain-specific errors.
package entity

import "time"

// Recipe represents a single recipe record in the catalog.
// SubmitterID links the recipe to the user who submitted it and is the
// value checked by ownership enforcement.
type Recipe struct {
	ID          int64
	Label       string
	Source      string
	URL         string
	SubmitterID int64
	CreatedAt   time.Time
}
