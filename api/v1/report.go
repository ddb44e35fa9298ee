package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/vulndesk-api/services"
)

var reportService = services.NewReportService()

// clientScope reads the optional clientId query parameter. Returns
// false after writing the response when the value is not a UUID.
func clientScope(c *gin.Context) (string, bool) {
	clientID := c.Query("clientId")
	if clientID == "" {
		return "", true
	}
	if _, err := uuid.Parse(clientID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid clientId parameter",
			"error":   err.Error(),
		})
		return "", false
	}
	return clientID, true
}

// GetSummaryReport godoc
// @Summary Get the top-level dashboard counters
// @Tags reports
// @Produce json
// @Success 200 {object} dto.SummaryReport
// @Router /reports/summary [get]
func GetSummaryReport(c *gin.Context) {
	report, err := reportService.Summary()
	if err != nil {
		respondError(c, "Failed to build summary report", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   report,
	})
}

// GetVulnerabilityReport godoc
// @Summary Get vulnerability counts by status and criticality
// @Tags reports
// @Produce json
// @Param clientId query string false "Scope to one client"
// @Success 200 {object} dto.VulnerabilityReport
// @Router /reports/vulnerabilities [get]
func GetVulnerabilityReport(c *gin.Context) {
	clientID, ok := clientScope(c)
	if !ok {
		return
	}

	report, err := reportService.Vulnerabilities(clientID)
	if err != nil {
		respondError(c, "Failed to build vulnerability report", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   report,
	})
}

// GetTicketReport godoc
// @Summary Get ticket counts by status and priority
// @Tags reports
// @Produce json
// @Param clientId query string false "Scope to one client"
// @Success 200 {object} dto.TicketReport
// @Router /reports/tickets [get]
func GetTicketReport(c *gin.Context) {
	clientID, ok := clientScope(c)
	if !ok {
		return
	}

	report, err := reportService.Tickets(clientID)
	if err != nil {
		respondError(c, "Failed to build ticket report", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   report,
	})
}

// GetAssetReport godoc
// @Summary Get asset counts by status and client
// @Tags reports
// @Produce json
// @Param clientId query string false "Scope to one client"
// @Success 200 {object} dto.AssetReport
// @Router /reports/assets [get]
func GetAssetReport(c *gin.Context) {
	clientID, ok := clientScope(c)
	if !ok {
		return
	}

	report, err := reportService.Assets(clientID)
	if err != nil {
		respondError(c, "Failed to build asset report", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   report,
	})
}

// GetClientOverviews godoc
// @Summary Get one dashboard overview row per client
// @Tags reports
// @Produce json
// @Success 200 {array} dto.ClientOverviewReport
// @Router /reports/clients [get]
func GetClientOverviews(c *gin.Context) {
	overviews, err := reportService.ClientOverviews()
	if err != nil {
		respondError(c, "Failed to build client overviews", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   overviews,
	})
}
