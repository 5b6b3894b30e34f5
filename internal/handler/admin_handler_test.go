package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidro-absolut/study-api/internal/dto"
	"github.com/vidro-absolut/study-api/internal/models"
	"github.com/vidro-absolut/study-api/internal/service"
	appErrors "github.com/vidro-absolut/study-api/pkg/errors"
)

type fakeAdminLogin struct{}

func (fakeAdminLogin) AdminLogin(_ context.Context, req models.AdminLoginRequest) (*models.AdminLoginResponse, error) {
	if req.Password != "segredo" {
		return nil, appErrors.ErrInvalidCredentials
	}
	return &models.AdminLoginResponse{AccessToken: "admin-token", ExpiresIn: 7200}, nil
}

type fakeAdminSrv struct {
	lastFilter models.CustomerFilter
	lastFormat dto.ExportFormat
	cleared    bool
}

func (f *fakeAdminSrv) ListCustomers(_ context.Context, filter models.CustomerFilter) ([]models.Customer, *models.Pagination, *dto.CustomerSummary, error) {
	f.lastFilter = filter
	customers := []models.Customer{{ID: "c-1", FirstName: "Ana"}, {ID: "c-2", FirstName: "Bia"}}
	return customers,
		&models.Pagination{Page: filter.Page, PageSize: filter.PageSize, TotalCount: 2},
		&dto.CustomerSummary{Count: 2, TotalRevenueCents: 8000, TotalRevenue: "R$ 80,00"},
		nil
}

func (f *fakeAdminSrv) Export(_ context.Context, format dto.ExportFormat) (*service.ExportFile, error) {
	f.lastFormat = format
	if format != dto.ExportFormatCSV && format != dto.ExportFormatPDF {
		return nil, appErrors.Clone(appErrors.ErrValidation, "format must be csv or pdf")
	}
	return &service.ExportFile{Filename: "clientes-20240310-1200.csv", ContentType: "text/csv; charset=utf-8", Body: []byte("Nome\nAna\n")}, nil
}

func (f *fakeAdminSrv) Clear(context.Context) (int64, error) {
	f.cleared = true
	return 2, nil
}

func newAdminRouter(h *AdminHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/admin/login", h.Login)
	r.GET("/admin/customers", h.ListCustomers)
	r.GET("/admin/customers/export", h.ExportCustomers)
	r.DELETE("/admin/customers", h.ClearCustomers)
	return r
}

func TestAdminHandlerLogin(t *testing.T) {
	r := newAdminRouter(NewAdminHandler(fakeAdminLogin{}, &fakeAdminSrv{}))

	rec := serve(r, http.MethodPost, "/admin/login", `{"password":"segredo"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var envelope responseEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "admin-token", envelope.Data["access_token"])

	rec = serve(r, http.MethodPost, "/admin/login", `{"password":"errada"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminHandlerListCustomersMeta(t *testing.T) {
	srv := &fakeAdminSrv{}
	rec := serve(newAdminRouter(NewAdminHandler(fakeAdminLogin{}, srv)), http.MethodGet, "/admin/customers?page=2&page_size=10&search=%20ana%20", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.CustomerFilter{Search: "ana", Page: 2, PageSize: 10}, srv.lastFilter)

	var envelope struct {
		Data []map[string]interface{} `json:"data"`
		Meta map[string]interface{}   `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Len(t, envelope.Data, 2)
	assert.EqualValues(t, 2, envelope.Meta["count"])
	assert.EqualValues(t, 8000, envelope.Meta["total_revenue_cents"])
	assert.Equal(t, "R$ 80,00", envelope.Meta["total_revenue"])
}

func TestAdminHandlerExportAttachment(t *testing.T) {
	srv := &fakeAdminSrv{}
	rec := serve(newAdminRouter(NewAdminHandler(fakeAdminLogin{}, srv)), http.MethodGet, "/admin/customers/export?format=CSV", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, dto.ExportFormatCSV, srv.lastFormat)
	assert.Equal(t, `attachment; filename="clientes-20240310-1200.csv"`, rec.Header().Get("Content-Disposition"))
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/csv")
	assert.Equal(t, "Nome\nAna\n", rec.Body.String())
}

func TestAdminHandlerExportInvalidFormat(t *testing.T) {
	rec := serve(newAdminRouter(NewAdminHandler(fakeAdminLogin{}, &fakeAdminSrv{})), http.MethodGet, "/admin/customers/export?format=xlsx", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminHandlerClearCustomers(t *testing.T) {
	srv := &fakeAdminSrv{}
	rec := serve(newAdminRouter(NewAdminHandler(fakeAdminLogin{}, srv)), http.MethodDelete, "/admin/customers", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, srv.cleared)
	var envelope responseEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.EqualValues(t, 2, envelope.Data["deleted"])
}
