package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/vidro-absolut/study-api/internal/models"
	appErrors "github.com/vidro-absolut/study-api/pkg/errors"
)

func newAuthServiceForTest(t *testing.T) *AuthService {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("vidro-secret"), bcrypt.MinCost)
	require.NoError(t, err)
	return NewAuthService(nil, nil, AuthConfig{
		UserTokenSecret:   "user-secret",
		Audience:          []string{"authenticated"},
		AdminPasswordHash: string(hash),
		AdminTokenSecret:  "admin-secret",
		AdminTokenExpiry:  time.Hour,
	})
}

func signUserToken(t *testing.T, secret string, claims jwt.RegisteredClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &models.JWTClaims{Email: "aluno@example.com", Role: models.RoleStudent, RegisteredClaims: claims})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestAuthServiceAdminLogin(t *testing.T) {
	svc := newAuthServiceForTest(t)

	res, err := svc.AdminLogin(context.Background(), models.AdminLoginRequest{Password: "vidro-secret"})
	require.NoError(t, err)
	assert.NotEmpty(t, res.AccessToken)
	assert.EqualValues(t, 3600, res.ExpiresIn)

	claims, err := svc.ValidateAdminToken(res.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, claims.Role)

	_, err = svc.ValidateToken(res.AccessToken)
	assert.Error(t, err)
}

func TestAuthServiceAdminLoginWrongPassword(t *testing.T) {
	svc := newAuthServiceForTest(t)

	_, err := svc.AdminLogin(context.Background(), models.AdminLoginRequest{Password: "guess"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInvalidCredentials.Code, appErrors.FromError(err).Code)

	_, err = svc.AdminLogin(context.Background(), models.AdminLoginRequest{})
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestAuthServiceAdminLoginDisabledWithoutHash(t *testing.T) {
	svc := NewAuthService(nil, nil, AuthConfig{AdminTokenSecret: "admin-secret"})
	_, err := svc.AdminLogin(context.Background(), models.AdminLoginRequest{Password: "anything"})
	assert.Equal(t, appErrors.ErrInvalidCredentials.Code, appErrors.FromError(err).Code)
}

func TestAuthServiceValidateUserToken(t *testing.T) {
	svc := newAuthServiceForTest(t)
	now := time.Now()

	token := signUserToken(t, "user-secret", jwt.RegisteredClaims{
		Subject:   "user-1",
		Audience:  jwt.ClaimStrings{"authenticated"},
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		IssuedAt:  jwt.NewNumericDate(now),
	})
	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID())

	_, err = svc.ValidateAdminToken(token)
	assert.Error(t, err)
}

func TestAuthServiceRejectsExpiredAndForeignTokens(t *testing.T) {
	svc := newAuthServiceForTest(t)
	now := time.Now()

	expired := signUserToken(t, "user-secret", jwt.RegisteredClaims{
		Subject:   "user-1",
		Audience:  jwt.ClaimStrings{"authenticated"},
		ExpiresAt: jwt.NewNumericDate(now.Add(-time.Minute)),
	})
	_, err := svc.ValidateToken(expired)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUnauthorized.Code, appErrors.FromError(err).Code)

	foreign := signUserToken(t, "other-secret", jwt.RegisteredClaims{
		Subject:   "user-1",
		Audience:  jwt.ClaimStrings{"authenticated"},
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	})
	_, err = svc.ValidateToken(foreign)
	assert.Error(t, err)

	noSubject := signUserToken(t, "user-secret", jwt.RegisteredClaims{
		Audience:  jwt.ClaimStrings{"authenticated"},
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	})
	_, err = svc.ValidateToken(noSubject)
	assert.Error(t, err)
}
