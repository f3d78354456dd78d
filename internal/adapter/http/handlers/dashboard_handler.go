package handlers

import (
	"net/http"

	"protese_lab/internal/usecase"
	"protese_lab/pkg"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the aggregated KPI report.

type DashboardHandler struct {
	usecase usecase.IReportUseCase
}

func NewDashboardHandler(uc usecase.IReportUseCase) *DashboardHandler {
	return &DashboardHandler{usecase: uc}
}

func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	report, err := h.usecase.Dashboard(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("SYNC_FAILED", "Could not reach the data store", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, report)
}
