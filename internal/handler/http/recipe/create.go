package recipe

import (
	"encoding/json"
	"net/http"

	"recipe-catalog/internal/domain/entity"
	authHandler "recipe-catalog/internal/handler/http/auth"
	"recipe-catalog/internal/handler/http/respond"
	authSvc "recipe-catalog/internal/service/auth"
	recUC "recipe-catalog/internal/usecase/recipe"
)

// CreateHandler serves POST /recipes for authenticated users.
type CreateHandler struct {
	Svc  *recUC.Service
	Auth *authSvc.Service
}

type createRequest struct {
	Label  string `json:"label"`
	Source string `json:"source"`
	URL    string `json:"url"`
	// SubmitterID is optional; when present it must match the caller.
	SubmitterID *int64 `json:"submitter_id,omitempty"`
}

func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	user := authHandler.UserFromContext(r.Context())
	if user == nil {
		respond.Unauthorized(w, "not authenticated")
		return
	}

	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.FromError(w, entity.ErrInvalidInput)
		return
	}

	// A client may not submit a recipe on someone else's behalf.
	if req.SubmitterID != nil {
		if err := h.Auth.RequireOwnership(user, *req.SubmitterID); err != nil {
			respond.FromError(w, err)
			return
		}
	}

	rec, err := h.Svc.Create(r.Context(), user.ID, recUC.CreateInput{
		Label:  req.Label,
		Source: req.Source,
		URL:    req.URL,
	})
	if err != nil {
		respond.FromError(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toDTO(rec))
}
