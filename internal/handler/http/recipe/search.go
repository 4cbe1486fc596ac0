package recipe

import (
	"net/http"
	"strconv"

	"recipe-catalog/internal/domain/entity"
	"recipe-catalog/internal/handler/http/respond"
	recUC "recipe-catalog/internal/usecase/recipe"
)

// SearchHandler serves GET /recipes/search?keyword=...&max_results=N.
// A missing keyword lists the most recent recipes instead.
type SearchHandler struct{ Svc *recUC.Service }

// SearchResponse wraps the matches so the payload can grow fields later.
type SearchResponse struct {
	Results []DTO `json:"results"`
}

func (h SearchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	limit := 0
	if raw := q.Get("max_results"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			respond.FromError(w, entity.ErrInvalidInput)
			return
		}
		limit = parsed
	}

	recipes, err := h.Svc.Search(r.Context(), q.Get("keyword"), limit)
	if err != nil {
		respond.FromError(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, SearchResponse{Results: toDTOs(recipes)})
}
