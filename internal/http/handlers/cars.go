package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"sayarti/internal/http/middleware"
	"sayarti/internal/repositories"
	"sayarti/internal/utils"
)

type carRequest struct {
	CarType string `json:"car_type"`
	Model   string `json:"model"`
	OwnerID int64  `json:"owner_id"`
}

func (a *API) GetCars(c *gin.Context) {
	scope := middleware.GetScope(c)
	cars, err := repositories.CarRepository{}.ListForScope(scope.IsAdmin, scope.UserID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to list cars", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cars": cars})
}

func (a *API) CreateCar(c *gin.Context) {
	var req carRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	req.CarType = utils.TrimOrEmpty(req.CarType)
	req.Model = utils.TrimOrEmpty(req.Model)
	if req.CarType == "" || req.Model == "" {
		RespondError(c, http.StatusBadRequest, "car_type and model are required", nil)
		return
	}

	scope := middleware.GetScope(c)
	ownerID := scope.UserID
	if scope.IsAdmin && req.OwnerID > 0 {
		ownerID = req.OwnerID
	}

	id, err := repositories.CarRepository{}.Create(req.CarType, req.Model, ownerID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to create car", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (a *API) UpdateCar(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid car id", err)
		return
	}

	var req carRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	req.CarType = utils.TrimOrEmpty(req.CarType)
	req.Model = utils.TrimOrEmpty(req.Model)
	if req.CarType == "" || req.Model == "" {
		RespondError(c, http.StatusBadRequest, "car_type and model are required", nil)
		return
	}

	scope := middleware.GetScope(c)
	if err := (repositories.CarRepository{}).Update(id, req.CarType, req.Model, scope.IsAdmin, scope.UserID); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "car updated"})
}

func (a *API) DeleteCar(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid car id", err)
		return
	}

	scope := middleware.GetScope(c)
	if err := (repositories.CarRepository{}).Delete(id, scope.IsAdmin, scope.UserID); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "car deleted"})
}
