package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/skillhorizon/marketplace-service/internal/services"
	"github.com/skillhorizon/marketplace-service/internal/utils"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ReportHandler struct {
	BaseHandler
	reportService services.ReportService
}

func NewReportHandler(reportService services.ReportService, logger utils.Logger) *ReportHandler {
	return &ReportHandler{
		BaseHandler:   NewBaseHandler(logger),
		reportService: reportService,
	}
}

// PaymentsReport streams all payments as an xlsx workbook
// @Summary Payments report
// @Tags reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary
// @Failure 403 {object} ErrorResponse
// @Router /admin/reports/payments [get]
func (h *ReportHandler) PaymentsReport(c *gin.Context) {
	h.writeReport(c, "payments", h.reportService.PaymentsReport)
}

// ClassesReport streams all classes as an xlsx workbook
// @Summary Classes report
// @Tags reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary
// @Failure 403 {object} ErrorResponse
// @Router /admin/reports/classes [get]
func (h *ReportHandler) ClassesReport(c *gin.Context) {
	h.writeReport(c, "classes", h.reportService.ClassesReport)
}

func (h *ReportHandler) writeReport(c *gin.Context, name string, build func(context.Context) (*excelize.File, error)) {
	f, err := build(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	defer f.Close()

	filename := fmt.Sprintf("%s-%s.xlsx", name, time.Now().UTC().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", xlsxContentType)
	c.Status(http.StatusOK)

	if err := f.Write(c.Writer); err != nil {
		h.LogError(c, err, "Failed to stream report", "report", name)
	}
}
