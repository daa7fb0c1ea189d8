package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"sayarti/internal/http/middleware"
	"sayarti/internal/repositories"
	"sayarti/internal/services"
)

func reportQueryFromRequest(c *gin.Context) services.ReportQuery {
	return services.ReportQuery{
		Group:         strings.TrimSpace(c.DefaultQuery("group", "car")),
		From:          strings.TrimSpace(c.Query("from")),
		To:            strings.TrimSpace(c.Query("to")),
		QuickFilter:   strings.TrimSpace(c.Query("qf")),
		CarID:         strings.TrimSpace(c.Query("car_id")),
		Type:          strings.TrimSpace(c.Query("type")),
		ServiceCenter: strings.TrimSpace(c.Query("sc")),
		OwnerID:       strings.TrimSpace(c.Query("owner_id")),
		Currency:      strings.ToUpper(strings.TrimSpace(c.DefaultQuery("currency", ""))),
	}
}

// GetReports returns the report as JSON together with the filter-form context.
func (a *API) GetReports(c *gin.Context) {
	scope := middleware.GetScope(c)
	query := reportQueryFromRequest(c)

	svc := services.ReportsService{MaintRepo: repositories.MaintenanceRepository{}}
	result, err := svc.BuildReport(query, scope)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to build report", err)
		return
	}

	currency := query.Currency
	if currency == "" {
		currency = a.Env.BaseCurrency
	}
	rate := a.fx().Rate(a.Env.BaseCurrency, currency)

	cars, err := repositories.CarRepository{}.ListForScope(scope.IsAdmin, scope.UserID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to list cars", err)
		return
	}
	types, err := repositories.MaintenanceTypeRepository{}.List()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to list maintenance types", err)
		return
	}
	centers, err := repositories.MaintenanceRepository{}.ListServiceCenters()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to list service centers", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"group":           result.Mode.String(),
		"data":            result,
		"currency":        currency,
		"fx_rate":         rate,
		"cars":            cars,
		"types":           types,
		"service_centers": centers,
	})
}

// ExportReports streams the report as CSV or renders the PDF document.
// An unrecognized fmt value falls back to PDF, the original export format.
func (a *API) ExportReports(c *gin.Context) {
	scope := middleware.GetScope(c)
	query := reportQueryFromRequest(c)

	svc := services.ReportsService{MaintRepo: repositories.MaintenanceRepository{}}
	result, err := svc.BuildReport(query, scope)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to build report", err)
		return
	}

	currency := query.Currency
	if currency == "" {
		currency = a.Env.BaseCurrency
	}
	rate := decimal.NewFromFloat(a.fx().Rate(a.Env.BaseCurrency, currency))

	switch strings.ToLower(strings.TrimSpace(c.DefaultQuery("fmt", "pdf"))) {
	case "csv":
		c.Header("Content-Type", "text/csv; charset=utf-8")
		c.Header("Content-Disposition", `attachment; filename=reports.csv`)
		c.Status(http.StatusOK)
		// rows go straight to the response writer, line by line
		if err := services.WriteReportCSV(c.Writer, result, rate); err != nil {
			a.Log.WithFields(map[string]any{
				"module":     "reports",
				"request_id": middleware.GetRequestID(c),
			}).WithError(err).Warn("csv stream aborted")
		}
	default:
		renderer := services.ReportPDF{Font: a.Font}
		data, filename, err := renderer.Output(result, rate)
		if err != nil {
			RespondError(c, http.StatusInternalServerError, "failed to render pdf", err)
			return
		}
		c.Header("Content-Disposition", `attachment; filename=`+filename)
		c.Data(http.StatusOK, "application/pdf", data)
	}
}
