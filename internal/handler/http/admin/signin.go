package admin

import (
	"encoding/json"
	"errors"
	"net/http"

	httpapi "lawgan/internal/handler/http"
	"lawgan/internal/handler/http/auth"
	"lawgan/internal/handler/http/respond"
	admUC "lawgan/internal/usecase/admin"
)

type SignInHandler struct {
	Svc    *admUC.Service
	Issuer *auth.Issuer
}

// ServeHTTP handles POST /admin/signin.
// A successful sign-in records the login time and returns a bearer token
// together with the trimmed account.
// @Summary      Sign in
// @Tags         admin
// @Accept       json
// @Produce      json
// @Success      200 {object} map[string]any "token and admin"
// @Failure      400 {object} map[string]string "missing fields"
// @Failure      401 {object} map[string]string "invalid credentials"
// @Router       /admin/signin [post]
func (h SignInHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Message(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	if req.Email == "" || req.Password == "" {
		respond.Message(w, http.StatusBadRequest, "Email and password are required.")
		return
	}

	account, err := h.Svc.SignIn(r.Context(), admUC.SignInInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, admUC.ErrInvalidCredentials) {
			httpapi.RecordAdminSignIn(false)
			respond.Message(w, http.StatusUnauthorized, "Invalid credentials.")
			return
		}
		respond.Failure(w, http.StatusInternalServerError, "Failed to sign in.", err)
		return
	}

	token, err := h.Issuer.Issue(account.ID)
	if err != nil {
		respond.Failure(w, http.StatusInternalServerError, "Failed to sign in.", err)
		return
	}

	httpapi.RecordAdminSignIn(true)
	respond.JSON(w, http.StatusOK, map[string]any{
		"token": token,
		"admin": sessionDTO{ID: account.ID, Name: account.Name, Email: account.Email},
	})
}
