package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/vidro-absolut/study-api/internal/models"
	appErrors "github.com/vidro-absolut/study-api/pkg/errors"
)

const (
	adminSubject  = "admin"
	adminAudience = "study-api-admin"
)

// AuthConfig defines how tokens are verified and issued.
type AuthConfig struct {
	// UserTokenSecret verifies HS256 tokens issued by the identity provider.
	UserTokenSecret string
	Issuer          string
	Audience        []string

	AdminPasswordHash string
	AdminTokenSecret  string
	AdminTokenExpiry  time.Duration
}

// AuthService verifies student tokens and runs the admin panel login.
type AuthService struct {
	validator *validator.Validate
	logger    *zap.Logger
	config    AuthConfig
	now       func() time.Time
}

// NewAuthService constructs an AuthService instance.
func NewAuthService(validate *validator.Validate, logger *zap.Logger, config AuthConfig) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	if config.AdminTokenExpiry <= 0 {
		config.AdminTokenExpiry = 2 * time.Hour
	}
	return &AuthService{validator: validate, logger: logger, config: config, now: time.Now}
}

// AdminLogin checks the panel password and issues a short lived admin token.
func (s *AuthService) AdminLogin(ctx context.Context, req models.AdminLoginRequest) (*models.AdminLoginResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "password is required")
	}
	if s.config.AdminPasswordHash == "" {
		s.logger.Warn("admin login attempted without a configured password hash")
		return nil, appErrors.Clone(appErrors.ErrInvalidCredentials, "admin login is disabled")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.config.AdminPasswordHash), []byte(req.Password)); err != nil {
		return nil, appErrors.ErrInvalidCredentials
	}

	issuedAt := s.now().UTC()
	token, err := s.generateAdminToken(issuedAt)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create access token")
	}
	return &models.AdminLoginResponse{
		AccessToken: token,
		ExpiresIn:   int64(s.config.AdminTokenExpiry.Seconds()),
		IssuedAt:    issuedAt,
	}, nil
}

// ValidateToken parses a student token from the identity provider.
func (s *AuthService) ValidateToken(tokenString string) (*models.JWTClaims, error) {
	opts := []jwt.ParserOption{jwt.WithTimeFunc(s.now)}
	if s.config.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.config.Issuer))
	}
	if len(s.config.Audience) > 0 {
		opts = append(opts, jwt.WithAudience(s.config.Audience[0]))
	}
	claims, err := s.parse(tokenString, s.config.UserTokenSecret, opts...)
	if err != nil {
		return nil, err
	}
	if claims.Role == "" {
		claims.Role = models.RoleStudent
	}
	return claims, nil
}

// ValidateAdminToken parses a token issued by AdminLogin.
func (s *AuthService) ValidateAdminToken(tokenString string) (*models.JWTClaims, error) {
	claims, err := s.parse(tokenString, s.config.AdminTokenSecret, jwt.WithTimeFunc(s.now), jwt.WithAudience(adminAudience))
	if err != nil {
		return nil, err
	}
	if claims.Role != models.RoleAdmin {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "invalid token claims")
	}
	return claims, nil
}

func (s *AuthService) parse(tokenString, secret string, opts ...jwt.ParserOption) (*models.JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	}, opts...)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUnauthorized.Code, appErrors.ErrUnauthorized.Status, "invalid token")
	}

	claims, ok := token.Claims.(*models.JWTClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "invalid token claims")
	}
	return claims, nil
}

func (s *AuthService) generateAdminToken(issuedAt time.Time) (string, error) {
	claims := &models.JWTClaims{
		Role: models.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.config.Issuer,
			Subject:   adminSubject,
			Audience:  jwt.ClaimStrings{adminAudience},
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.config.AdminTokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			NotBefore: jwt.NewNumericDate(issuedAt),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.AdminTokenSecret))
}
