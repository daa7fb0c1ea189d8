package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sayarti/internal/domain"
	"sayarti/internal/repositories"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login verifies credentials and issues an access token. Approval and active
// checks mirror the account lifecycle: fresh registrations wait for an admin.
func (a *API) Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	user, err := repositories.UserRepository{}.GetByEmail(req.Email)
	if err != nil {
		if domain.IsNotFound(err) {
			RespondError(c, http.StatusUnauthorized, "invalid email or password", nil)
			return
		}
		RespondError(c, http.StatusInternalServerError, "failed to query user", err)
		return
	}

	if err := a.Auth.CheckPassword(user.PasswordHash, req.Password); err != nil {
		RespondError(c, http.StatusUnauthorized, "invalid email or password", nil)
		return
	}
	if !user.IsApproved && user.Role != "admin" {
		RespondError(c, http.StatusForbidden, "account pending approval", nil)
		return
	}
	if !user.IsActive {
		RespondError(c, http.StatusForbidden, "account suspended", nil)
		return
	}

	token, err := a.Auth.GenerateToken(user.ID, user.Name, user.Role)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to create token", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}
