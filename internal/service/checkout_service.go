package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/vidro-absolut/study-api/internal/dto"
	"github.com/vidro-absolut/study-api/internal/models"
	"github.com/vidro-absolut/study-api/pkg/cpf"
	appErrors "github.com/vidro-absolut/study-api/pkg/errors"
)

type customerWriter interface {
	Create(ctx context.Context, customer *models.Customer) error
}

// CheckoutConfig carries the manual PIX instructions returned to buyers.
type CheckoutConfig struct {
	PixKey     string
	Recipient  string
	PriceCents int64
	ContactURL string
}

// CheckoutService registers buyers and hands out payment instructions.
type CheckoutService struct {
	repo      customerWriter
	metrics   *MetricsService
	validator *validator.Validate
	logger    *zap.Logger
	cfg       CheckoutConfig
}

// NewCheckoutService constructs the service. The validator must know the cpf tag.
func NewCheckoutService(repo customerWriter, metrics *MetricsService, validate *validator.Validate, logger *zap.Logger, cfg CheckoutConfig) *CheckoutService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = NewValidator()
	}
	if cfg.PriceCents <= 0 {
		cfg.PriceCents = 4000
	}
	return &CheckoutService{repo: repo, metrics: metrics, validator: validate, logger: logger, cfg: cfg}
}

// Register validates the form, stores the buyer and returns how to pay.
func (s *CheckoutService) Register(ctx context.Context, req dto.CheckoutRequest) (*models.CheckoutResult, error) {
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	req.CPF = strings.TrimSpace(req.CPF)
	req.Telegram = strings.TrimSpace(req.Telegram)
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, checkoutValidationMessage(err))
	}
	telegram := NormalizeTelegram(req.Telegram)
	if telegram == "@" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "telegram username is required")
	}

	customer := &models.Customer{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		CPF:       cpf.Format(req.CPF),
		Telegram:  telegram,
	}
	if err := s.repo.Create(ctx, customer); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to register checkout")
	}
	s.metrics.RecordCheckout()
	s.logger.Info("checkout registered", zap.String("customer_id", customer.ID))

	return &models.CheckoutResult{Customer: customer, Payment: s.Instructions()}, nil
}

// Instructions returns the configured PIX payment details.
func (s *CheckoutService) Instructions() models.PixInstructions {
	return models.PixInstructions{
		PixKey:      s.cfg.PixKey,
		Recipient:   s.cfg.Recipient,
		AmountCents: s.cfg.PriceCents,
		Amount:      FormatBRL(s.cfg.PriceCents),
		ContactURL:  s.cfg.ContactURL,
	}
}

// NormalizeTelegram prefixes a username with "@" unless it already has one.
func NormalizeTelegram(raw string) string {
	handle := strings.TrimSpace(raw)
	if strings.HasPrefix(handle, "@") {
		return handle
	}
	return "@" + handle
}

// FormatBRL renders cents as Brazilian reais, e.g. 4000 -> "R$ 40,00".
func FormatBRL(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	whole := fmt.Sprintf("%d", cents/100)
	var grouped strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteRune(r)
	}
	return fmt.Sprintf("%sR$ %s,%02d", sign, grouped.String(), cents%100)
}

func checkoutValidationMessage(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return "invalid checkout payload"
	}
	switch verrs[0].Field() {
	case "CPF":
		return "invalid CPF"
	case "Telegram":
		return "telegram username is required"
	case "FirstName", "LastName":
		return "full name is required"
	}
	return "invalid checkout payload"
}
