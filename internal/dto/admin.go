package dto

// CustomerSummary is the revenue block shown above the registration table.
type CustomerSummary struct {
	Count             int    `json:"count"`
	TotalRevenueCents int64  `json:"total_revenue_cents"`
	TotalRevenue      string `json:"total_revenue"`
}

// ClearCustomersResponse reports how many registrations were removed.
type ClearCustomersResponse struct {
	Deleted int64 `json:"deleted"`
}

// ExportFormat selects the export renderer.
type ExportFormat string

const (
	ExportFormatCSV ExportFormat = "csv"
	ExportFormatPDF ExportFormat = "pdf"
)
