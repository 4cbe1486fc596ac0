package recipe

import (
	"net/http"

	"recipe-catalog/internal/handler/http/pathutil"
	"recipe-catalog/internal/handler/http/respond"
	recUC "recipe-catalog/internal/usecase/recipe"
)

// GetHandler serves GET /recipes/{id}.
type GetHandler struct{ Svc *recUC.Service }

func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/recipes/")
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err)
		return
	}

	rec, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		respond.FromError(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toDTO(rec))
}
