package recipe

import (
	"net/http"

	authHandler "recipe-catalog/internal/handler/http/auth"
	"recipe-catalog/internal/handler/http/pathutil"
	"recipe-catalog/internal/handler/http/respond"
	authSvc "recipe-catalog/internal/service/auth"
	recUC "recipe-catalog/internal/usecase/recipe"
)

// DeleteHandler serves DELETE /recipes/{id} for the recipe's submitter.
type DeleteHandler struct {
	Svc  *recUC.Service
	Auth *authSvc.Service
}

func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
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

	existing, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		respond.FromError(w, err)
		return
	}
	if err := h.Auth.RequireOwnership(user, existing.SubmitterID); err != nil {
		respond.FromError(w, err)
		return
	}

	if err := h.Svc.Delete(r.Context(), id); err != nil {
		respond.FromError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
