// Package recipe provides HTTP handlers for the recipe catalog endpoints.
package recipe

import (
	"time"

	"recipe-catalog/internal/domain/entity"
)

// DTO represents the JSON structure for recipe data transfer.
type DTO struct {
	ID          int64     `json:"id"`
	Label       string    `json:"label"`
	Source      string    `json:"source"`
	URL         string    `json:"url"`
	SubmitterID int64     `json:"submitter_id"`
	CreatedAt   time.Time `json:"created_at"`
}

func toDTO(r *entity.Recipe) DTO {
	return DTO{
		ID:          r.ID,
		Label:       r.Label,
		Source:      r.Source,
		URL:         r.URL,
		SubmitterID: r.SubmitterID,
		CreatedAt:   r.CreatedAt,
	}
}

func toDTOs(recipes []*entity.Recipe) []DTO {
	out := make([]DTO, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, toDTO(r))
	}
	return out
}
