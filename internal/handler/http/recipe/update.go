package recipe

import (
	"encoding/json"
	"net/http"

	"recipe-catalog/internal/domain/entity"
	authHandler "recipe-catalog/internal/handler/http/auth"
	"recipe-catalog/internal/handler/http/pathutil"
	"recipe-catalog/internal/handler/http/respond"
	authSvc "recipe-catalog/internal/service/auth"
	recUC "recipe-catalog/internal/usecase/recipe"
)

// UpdateHandler serves PUT /recipes/{id} for the recipe's submitter.
type UpdateHandler struct {
	Svc  *recUC.Service
	Auth *authSvc.Service
}

type updateRequest struct {
	Label  *string `json:"label"`
	Source *string `json:"source"`
	URL    *string `json:"url"`
}

func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	user := authHandler.UserFromContext(r.Context())
	if user == nil {
		respond.Unauthorized(w, "not authenticated")
		return
	}

	id, err := pathutil.ExtractID(r.URL.Path, "/recipes/")
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err)
		return
	}

	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.FromError(w, entity.ErrInvalidInput)
		return
	}

	existing, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		respond.FromError(w, err)
		return
	}
	if err := h.Auth.RequireOwnership(user, existing.SubmitterID); err != nil {
		respond.FromError(w, err)
		return
	}

	rec, err := h.Svc.Update(r.Context(), recUC.UpdateInput{
		ID:     id,
		Label:  req.Label,
		Source: req.Source,
		URL:    req.URL,
	})
	if err != nil {
		respond.FromError(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toDTO(rec))
}
