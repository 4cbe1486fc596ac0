package recipe

import (
	"net/http"

	authHandler "recipe-catalog/internal/handler/http/auth"
	authSvc "recipe-catalog/internal/service/auth"
	recUC "recipe-catalog/internal/usecase/recipe"
)

// Register wires the recipe endpoints onto the mux. Reads are public,
// writes require a valid bearer token and updates and deletes are
// restricted to the submitter.
func Register(mux *http.ServeMux, svc *recUC.Service, auth *authSvc.Service) {
	requireUser := authHandler.RequireUser(auth)

	mux.Handle("GET    /recipes/search", SearchHandler{Svc: svc})
	mux.Handle("GET    /recipes/", GetHandler{Svc: svc})

	mux.Handle("POST   /recipes", requireUser(CreateHandler{Svc: svc, Auth: auth}))
	mux.Handle("PUT    /recipes/", requireUser(UpdateHandler{Svc: svc, Auth: auth}))
	mux.Handle("DELETE /recipes/", requireUser(DeleteHandler{Svc: svc, Auth: auth}))
}
