package auth

import (
	"encoding/json"
	"net/http"
	"strings"

	"recipe-catalog/internal/domain/entity"
	"recipe-catalog/internal/handler/http/respond"
	"recipe-catalog/internal/observability/metrics"
	"recipe-catalog/internal/service/auth"
)

// Handler serves the credential endpoints.
type Handler struct {
	Auth *auth.Service
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type identityResponse struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	Surname   string `json:"surname"`
}

func identityOf(u *entity.User) identityResponse {
	return identityResponse{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		Surname:   u.Surname,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	// OAuth2-style clients post the email in a username field.
	Username string `json:"username"`
}

// Login handles POST /auth/login. It accepts JSON credentials or an
// OAuth2-style form body and returns a bearer access token.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest

	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "application/x-www-form-urlencoded") ||
		strings.HasPrefix(contentType, "multipart/form-data") {
		if err := r.ParseForm(); err != nil {
			respond.FromError(w, entity.ErrInvalidInput)
			return
		}
		req.Username = r.PostFormValue("username")
		req.Password = r.PostFormValue("password")
	} else {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respond.FromError(w, entity.ErrInvalidInput)
			return
		}
	}

	email := req.Email
	if email == "" {
		email = req.Username
	}

	token, err := h.Auth.Login(r.Context(), email, req.Password)
	if err != nil {
		metrics.RecordLogin(false)
		respond.FromError(w, err)
		return
	}

	metrics.RecordLogin(true)
	respond.JSON(w, http.StatusOK, tokenResponse{AccessToken: token, TokenType: "bearer"})
}

type signupRequest struct {
	FirstName string `json:"first_name"`
	Surname   string `json:"surname"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// Signup handles POST /auth/signup and creates a new account.
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.FromError(w, entity.ErrInvalidInput)
		return
	}

	user, err := h.Auth.Signup(r.Context(), auth.SignupInput{
		FirstName: req.FirstName,
		Surname:   req.Surname,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		respond.FromError(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, identityOf(user))
}

// Me handles GET /auth/me for an authenticated request.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if user == nil {
		respond.Unauthorized(w, "not authenticated")
		return
	}
	respond.JSON(w, http.StatusOK, identityOf(user))
}

// Register wires the credential endpoints onto the mux. Login sits behind
// its own rate limiter; Me requires a valid bearer token.
func (h *Handler) Register(mux *http.ServeMux, loginLimiter interface {
	Limit(http.Handler) http.Handler
}) {
	login := http.Handler(http.HandlerFunc(h.Login))
	if loginLimiter != nil {
		login = loginLimiter.Limit(login)
	}
	mux.Handle("POST   /auth/login", login)
	mux.Handle("POST   /auth/signup", http.HandlerFunc(h.Signup))
	mux.Handle("GET    /auth/me", RequireUser(h.Auth)(http.HandlerFunc(h.Me)))
}
