package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	stats StatsProvider
}

func NewDashboardController(stats StatsProvider) *DashboardController {
	return &DashboardController{stats: stats}
}

// GetStats recomputes the dashboard aggregate from the current book
// collection.
// GET /api/dashboard/stats
func (dc *DashboardController) GetStats(c *gin.Context) {
	result, err := dc.stats.ComputeStats()
	if err != nil {
		respondInternalError(c, err, "dashboard stats")
		return
	}
	c.JSON(http.StatusOK, result)
}
