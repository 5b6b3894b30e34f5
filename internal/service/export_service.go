package service

import (
	"fmt"
	"time"

	"github.com/vidro-absolut/study-api/internal/dto"
	"github.com/vidro-absolut/study-api/internal/models"
	"github.com/vidro-absolut/study-api/pkg/export"
	appErrors "github.com/vidro-absolut/study-api/pkg/errors"
)

type renderer interface {
	ContentType() string
	Render(data export.Dataset, title string) ([]byte, error)
}

// ExportFile is a rendered download.
type ExportFile struct {
	Filename    string
	ContentType string
	Body        []byte
}

var customerHeaders = []string{"Nome", "Sobrenome", "CPF", "Telegram", "Data de Cadastro"}

// ExportService renders customer registrations as CSV or PDF.
type ExportService struct {
	renderers map[dto.ExportFormat]renderer
	location  *time.Location
	now       func() time.Time
}

// NewExportService constructs an ExportService. Nil renderers fall back to the defaults.
func NewExportService(csv, pdf renderer) *ExportService {
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	loc, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		loc = time.UTC
	}
	return &ExportService{
		renderers: map[dto.ExportFormat]renderer{
			dto.ExportFormatCSV: csv,
			dto.ExportFormatPDF: pdf,
		},
		location: loc,
		now:      time.Now,
	}
}

// Customers renders the registration table in the requested format.
func (s *ExportService) Customers(customers []models.Customer, format dto.ExportFormat, summary dto.CustomerSummary) (*ExportFile, error) {
	r, ok := s.renderers[format]
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrValidation, "format must be csv or pdf")
	}
	dataset := export.Dataset{Headers: customerHeaders, Rows: make([]map[string]string, 0, len(customers))}
	for _, c := range customers {
		dataset.Rows = append(dataset.Rows, map[string]string{
			"Nome":             c.FirstName,
			"Sobrenome":        c.LastName,
			"CPF":              c.CPF,
			"Telegram":         c.Telegram,
			"Data de Cadastro": c.RegisteredAt.In(s.location).Format("02/01/2006 15:04"),
		})
	}

	title := fmt.Sprintf("Clientes Cadastrados - %d vendas - %s", summary.Count, summary.TotalRevenue)
	body, err := r.Render(dataset, title)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render export")
	}
	return &ExportFile{
		Filename:    fmt.Sprintf("clientes-%s.%s", s.now().In(s.location).Format("20060102-1504"), format),
		ContentType: r.ContentType(),
		Body:        body,
	}, nil
}
