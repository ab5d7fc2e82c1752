// internal/controller/auth_controller.go
package controller

import (
	"encoding/json"
	"net/http"

	"github.com/unclebandit/campaigntrack/internal/model"
	"github.com/unclebandit/campaigntrack/internal/service"
)

type AuthController struct {
	AuthService *service.AuthService
}

// userResponse is the client-facing view of a user. The password hash
// stays server-side.
type userResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func newUserResponse(u *model.User) userResponse {
	return userResponse{ID: u.ID, Name: u.Name, Email: u.Email}
}

func (c *AuthController) Signup(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "All fields are required")
		return
	}

	user, err := c.AuthService.Signup(r.Context(), body.Name, body.Email, body.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Signup successful",
		"user":    newUserResponse(user),
	})
}

func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	user, err := c.AuthService.Login(r.Context(), body.Email, body.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Login successful",
		"user":    newUserResponse(user),
	})
}
