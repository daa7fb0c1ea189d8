package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sayarti/internal/repositories"
	"sayarti/internal/utils"
)

func (a *API) GetMaintenanceTypes(c *gin.Context) {
	types, err := repositories.MaintenanceTypeRepository{}.List()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to list maintenance types", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"types": types})
}

func (a *API) CreateMaintenanceType(c *gin.Context) {
	var req struct {
		Name string `json:"name"`
	}
	if !BindJSONOrError(c, &req) {
		return
	}
	req.Name = utils.TrimOrEmpty(req.Name)
	if req.Name == "" {
		RespondError(c, http.StatusBadRequest, "name is required", nil)
		return
	}

	id, err := repositories.MaintenanceTypeRepository{}.Create(req.Name)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}
