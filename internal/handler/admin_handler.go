package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vidro-absolut/study-api/internal/dto"
	"github.com/vidro-absolut/study-api/internal/models"
	"github.com/vidro-absolut/study-api/internal/service"
	"github.com/vidro-absolut/study-api/pkg/response"
)

type adminLoginService interface {
	AdminLogin(ctx context.Context, req models.AdminLoginRequest) (*models.AdminLoginResponse, error)
}

type adminService interface {
	ListCustomers(ctx context.Context, filter models.CustomerFilter) ([]models.Customer, *models.Pagination, *dto.CustomerSummary, error)
	Export(ctx context.Context, format dto.ExportFormat) (*service.ExportFile, error)
	Clear(ctx context.Context) (int64, error)
}

// AdminHandler serves the sales panel.
type AdminHandler struct {
	auth    adminLoginService
	service adminService
}

// NewAdminHandler constructs the handler.
func NewAdminHandler(auth adminLoginService, service adminService) *AdminHandler {
	return &AdminHandler{auth: auth, service: service}
}

// Login godoc
// @Summary Admin panel login
// @Tags Admin
// @Accept json
// @Produce json
// @Param payload body models.AdminLoginRequest true "Password"
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /admin/login [post]
func (h *AdminHandler) Login(c *gin.Context) {
	var req models.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err, "invalid login payload"))
		return
	}
	res, err := h.auth.AdminLogin(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, res, nil)
}

// ListCustomers godoc
// @Summary List registered customers
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page"
// @Param page_size query int false "Page size"
// @Param search query string false "Name, CPF or telegram"
// @Success 200 {object} response.Envelope
// @Router /admin/customers [get]
func (h *AdminHandler) ListCustomers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	filter := models.CustomerFilter{
		Search:   strings.TrimSpace(c.Query("search")),
		Page:     page,
		PageSize: size,
	}
	customers, pagination, summary, err := h.service.ListCustomers(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, customers, pagination, map[string]interface{}{
		"count":               summary.Count,
		"total_revenue_cents": summary.TotalRevenueCents,
		"total_revenue":       summary.TotalRevenue,
	})
}

// ExportCustomers godoc
// @Summary Download customers
// @Tags Admin
// @Produce text/csv
// @Produce application/pdf
// @Security BearerAuth
// @Param format query string false "csv or pdf" Enums(csv, pdf)
// @Success 200 {file} file
// @Failure 400 {object} response.Envelope
// @Router /admin/customers/export [get]
func (h *AdminHandler) ExportCustomers(c *gin.Context) {
	format := dto.ExportFormat(strings.ToLower(c.DefaultQuery("format", "csv")))
	file, err := h.service.Export(c.Request.Context(), format)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Attachment(c, file.Filename, file.ContentType, file.Body)
}

// ClearCustomers godoc
// @Summary Delete every registration
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /admin/customers [delete]
func (h *AdminHandler) ClearCustomers(c *gin.Context) {
	deleted, err := h.service.Clear(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dto.ClearCustomersResponse{Deleted: deleted}, nil)
}
