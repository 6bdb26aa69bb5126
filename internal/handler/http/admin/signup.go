package admin

import (
	"encoding/json"
	"errors"
	"net/http"

	"lawgan/internal/handler/http/respond"
	admUC "lawgan/internal/usecase/admin"
)

type SignupHandler struct{ Svc *admUC.Service }

// ServeHTTP handles POST /admin/signup.
// @Summary      Register an admin account
// @Tags         admin
// @Accept       json
// @Produce      json
// @Success      201 {object} map[string]DTO "created account"
// @Failure      400 {object} map[string]string "missing fields"
// @Failure      409 {object} map[string]string "email already in use"
// @Router       /admin/signup [post]
func (h SignupHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Message(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		respond.Message(w, http.StatusBadRequest, "Name, email, and password are required.")
		return
	}

	account, err := h.Svc.Signup(r.Context(), admUC.SignupInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, admUC.ErrEmailTaken) {
			respond.Message(w, http.StatusConflict, "Email already in use.")
			return
		}
		respond.Failure(w, http.StatusInternalServerError, "Failed to create admin.", err)
		return
	}

	respond.JSON(w, http.StatusCreated, map[string]DTO{"admin": toDTO(account)})
}
