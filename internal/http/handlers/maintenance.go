package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"sayarti/internal/domain"
	"sayarti/internal/http/middleware"
	"sayarti/internal/repositories"
	"sayarti/internal/utils"
)

type maintenanceRequest struct {
	CarID               int64    `json:"car_id"`
	MaintenanceDate     string   `json:"maintenance_date"`
	MaintenanceType     string   `json:"maintenance_type"`
	Mileage             *int64   `json:"mileage"`
	Cost                *float64 `json:"cost"`
	ServiceCenter       string   `json:"service_center"`
	Notes               string   `json:"notes"`
	NextMaintenanceDate string   `json:"next_maintenance_date"`
}

func (a *API) CreateMaintenance(c *gin.Context) {
	var req maintenanceRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	req.MaintenanceType = utils.TrimOrEmpty(req.MaintenanceType)
	if req.CarID == 0 || req.MaintenanceType == "" {
		RespondError(c, http.StatusBadRequest, "car_id and maintenance_type are required", nil)
		return
	}
	if req.Mileage != nil && *req.Mileage < 0 {
		RespondError(c, http.StatusBadRequest, "mileage must be non-negative", nil)
		return
	}
	if req.Cost != nil && *req.Cost < 0 {
		RespondError(c, http.StatusBadRequest, "cost must be non-negative", nil)
		return
	}

	if req.MaintenanceDate == "" {
		req.MaintenanceDate = utils.FormatDate(time.Now())
	} else if _, err := utils.ParseDate(req.MaintenanceDate); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid maintenance_date", err)
		return
	}
	if req.NextMaintenanceDate != "" {
		if _, err := utils.ParseDate(req.NextMaintenanceDate); err != nil {
			RespondError(c, http.StatusBadRequest, "invalid next_maintenance_date", err)
			return
		}
	}

	scope := middleware.GetScope(c)

	// the car must exist and belong to the caller unless admin
	car, err := repositories.CarRepository{}.GetByID(req.CarID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if !scope.IsAdmin && car.OwnerID != scope.UserID {
		RespondDomainError(c, domain.NotFoundError{Resource: "car"})
		return
	}

	id, err := repositories.MaintenanceRepository{}.Insert(repositories.NewMaintenance{
		CarID:               req.CarID,
		MaintenanceDate:     req.MaintenanceDate,
		MaintenanceType:     req.MaintenanceType,
		Mileage:             req.Mileage,
		Cost:                req.Cost,
		ServiceCenter:       utils.TrimOrEmpty(req.ServiceCenter),
		Notes:               utils.TrimOrEmpty(req.Notes),
		NextMaintenanceDate: req.NextMaintenanceDate,
		CreatedBy:           scope.UserID,
	})
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to create maintenance record", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}
