package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	intconfig "sayarti/internal/config"
	intdb "sayarti/internal/db"
)

func (a *API) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "time": time.Now().Format(time.RFC3339)})
}

func (a *API) DBCheck(c *gin.Context) {
	if err := intconfig.EnsureDB(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database not reachable: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":           "database connection OK",
		"maintenance_table": intdb.HasTable(intconfig.DB, "maintenance"),
	})
}
