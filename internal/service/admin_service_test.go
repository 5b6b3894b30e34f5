package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidro-absolut/study-api/internal/dto"
	"github.com/vidro-absolut/study-api/internal/models"
	appErrors "github.com/vidro-absolut/study-api/pkg/errors"
)

type customerRepoStub struct {
	customers  []models.Customer
	lastFilter models.CustomerFilter
}

func (s *customerRepoStub) List(ctx context.Context, filter models.CustomerFilter) ([]models.Customer, int, error) {
	s.lastFilter = filter
	return s.customers, len(s.customers), nil
}

func (s *customerRepoStub) ListAll(ctx context.Context) ([]models.Customer, error) {
	return s.customers, nil
}

func (s *customerRepoStub) Count(ctx context.Context) (int, error) {
	return len(s.customers), nil
}

func (s *customerRepoStub) DeleteAll(ctx context.Context) (int64, error) {
	n := int64(len(s.customers))
	s.customers = nil
	return n, nil
}

func sampleCustomers() []models.Customer {
	at := time.Date(2024, 3, 10, 15, 0, 0, 0, time.UTC)
	return []models.Customer{
		{ID: "c-1", FirstName: "Ana", LastName: "Souza", CPF: "529.982.247-25", Telegram: "@ana", RegisteredAt: at},
		{ID: "c-2", FirstName: "João", LastName: "Lima", CPF: "100.000.001-08", Telegram: "@joao", RegisteredAt: at},
		{ID: "c-3", FirstName: "Bia", LastName: "Reis", CPF: "529.982.247-25", Telegram: "@bia", RegisteredAt: at},
	}
}

func TestAdminServiceListCustomersSummary(t *testing.T) {
	repo := &customerRepoStub{customers: sampleCustomers()}
	svc := NewAdminService(repo, nil, nil, 4000)

	customers, pagination, summary, err := svc.ListCustomers(context.Background(), models.CustomerFilter{PageSize: 500})
	require.NoError(t, err)
	assert.Len(t, customers, 3)
	assert.Equal(t, 1, pagination.Page)
	assert.Equal(t, 20, repo.lastFilter.PageSize)
	assert.Equal(t, 3, summary.Count)
	assert.EqualValues(t, 12000, summary.TotalRevenueCents)
	assert.Equal(t, "R$ 120,00", summary.TotalRevenue)
}

func TestAdminServiceExportCSV(t *testing.T) {
	svc := NewAdminService(&customerRepoStub{customers: sampleCustomers()}, nil, nil, 4000)

	file, err := svc.Export(context.Background(), dto.ExportFormatCSV)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(file.Filename, ".csv"))
	assert.Contains(t, file.ContentType, "text/csv")
	body := string(file.Body)
	assert.Contains(t, body, "Nome;Sobrenome;CPF;Telegram;Data de Cadastro")
	assert.Contains(t, body, "João;Lima;100.000.001-08;@joao;10/03/2024")
}

func TestAdminServiceExportPDF(t *testing.T) {
	svc := NewAdminService(&customerRepoStub{customers: sampleCustomers()}, nil, nil, 4000)

	file, err := svc.Export(context.Background(), dto.ExportFormatPDF)
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", file.ContentType)
	assert.True(t, strings.HasPrefix(string(file.Body), "%PDF"))
}

func TestAdminServiceExportUnknownFormat(t *testing.T) {
	svc := NewAdminService(&customerRepoStub{}, nil, nil, 4000)
	_, err := svc.Export(context.Background(), dto.ExportFormat("xlsx"))
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestAdminServiceClear(t *testing.T) {
	repo := &customerRepoStub{customers: sampleCustomers()}
	svc := NewAdminService(repo, nil, nil, 4000)

	deleted, err := svc.Clear(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 3, deleted)

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Count)
	assert.Equal(t, "R$ 0,00", summary.TotalRevenue)
}
