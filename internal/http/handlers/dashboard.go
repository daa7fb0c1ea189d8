package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sayarti/internal/http/middleware"
	"sayarti/internal/repositories"
)

// GetDashboard returns owner-scoped counts and maintenance due within 30 days.
func (a *API) GetDashboard(c *gin.Context) {
	scope := middleware.GetScope(c)

	carCount, err := repositories.CarRepository{}.CountForScope(scope.IsAdmin, scope.UserID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to count cars", err)
		return
	}

	maintRepo := repositories.MaintenanceRepository{}
	maintCount, err := maintRepo.CountForScope(scope.IsAdmin, scope.UserID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to count maintenance records", err)
		return
	}

	upcoming, err := maintRepo.UpcomingWithin(30, scope.IsAdmin, scope.UserID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to list upcoming maintenance", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"stats": gin.H{
			"cars":     carCount,
			"maint":    maintCount,
			"upcoming": len(upcoming),
		},
		"upcoming": upcoming,
	})
}
