package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"sayarti/internal/auth"
	intconfig "sayarti/internal/config"
	"sayarti/internal/fonts"
	"sayarti/internal/http/middleware"
	"sayarti/internal/services"
)

// API bundles the handler dependencies wired once at startup.
type API struct {
	Env  intconfig.Env
	Auth *auth.Service
	Font fonts.Config
	Log  *logrus.Logger
}

func (a *API) fx() services.FxService {
	return services.NewFxService(a.Env.FxBaseURL, a.Log)
}

// RespondError sends a standard error payload with request_id included.
func RespondError(c *gin.Context, status int, message string, err error) {
	payload := gin.H{
		"message":    message,
		"request_id": middleware.GetRequestID(c),
	}
	if err != nil {
		payload["error"] = err.Error()
	}
	c.JSON(status, payload)
}

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		RespondError(c, http.StatusBadRequest, "empty body", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid payload", err)
		return false
	}
	return true
}
