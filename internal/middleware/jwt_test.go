package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidro-absolut/study-api/internal/models"
	appErrors "github.com/vidro-absolut/study-api/pkg/errors"
)

type errorEnvelope struct {
	Error struct {
		Code string `json:"code"`
	} `json:"error"`
}

func staticValidator(claims *models.JWTClaims) TokenValidator {
	return func(token string) (*models.JWTClaims, error) {
		if token != "good-token" {
			return nil, appErrors.Clone(appErrors.ErrUnauthorized, "invalid token")
		}
		return claims, nil
	}
}

func studentClaims(id string) *models.JWTClaims {
	return &models.JWTClaims{Role: models.RoleStudent, RegisteredClaims: jwt.RegisteredClaims{Subject: id}}
}

func newProtectedRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user": Claims(c).UserID()})
	})
	r.GET("/protected", handlers...)
	return r
}

func perform(r *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var env errorEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env.Error.Code
}

func TestJWTRejectsMissingHeader(t *testing.T) {
	r := newProtectedRouter(JWT(staticValidator(studentClaims("user-1"))))
	rec := perform(r, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, appErrors.ErrUnauthorized.Code, decodeCode(t, rec))
}

func TestJWTRejectsMalformedHeader(t *testing.T) {
	r := newProtectedRouter(JWT(staticValidator(studentClaims("user-1"))))
	assert.Equal(t, http.StatusUnauthorized, perform(r, "Token abc").Code)
	assert.Equal(t, http.StatusUnauthorized, perform(r, "Bearer   ").Code)
}

func TestJWTRejectsInvalidToken(t *testing.T) {
	r := newProtectedRouter(JWT(staticValidator(studentClaims("user-1"))))
	assert.Equal(t, http.StatusUnauthorized, perform(r, "Bearer other").Code)
}

func TestJWTStoresClaims(t *testing.T) {
	r := newProtectedRouter(JWT(staticValidator(studentClaims("user-1"))))
	rec := perform(r, "bearer good-token")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"user":"user-1"}`, rec.Body.String())
}

func TestRequireRoles(t *testing.T) {
	admin := &models.JWTClaims{Role: models.RoleAdmin, RegisteredClaims: jwt.RegisteredClaims{Subject: "admin"}}

	r := newProtectedRouter(JWT(staticValidator(studentClaims("user-1"))), RequireRoles(models.RoleAdmin))
	rec := perform(r, "Bearer good-token")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, appErrors.ErrForbidden.Code, decodeCode(t, rec))

	r = newProtectedRouter(JWT(staticValidator(admin)), RequireRoles(models.RoleAdmin))
	assert.Equal(t, http.StatusOK, perform(r, "Bearer good-token").Code)

	r = newProtectedRouter(RequireRoles(models.RoleAdmin))
	assert.Equal(t, http.StatusUnauthorized, perform(r, "").Code)
}

type accessStub struct {
	granted map[string]bool
	err     error
}

func (a accessStub) HasAccess(_ context.Context, userID string) (bool, error) {
	return a.granted[userID], a.err
}

func TestRequireAccess(t *testing.T) {
	checker := accessStub{granted: map[string]bool{"paid": true}}

	r := newProtectedRouter(JWT(staticValidator(studentClaims("unpaid"))), RequireAccess(checker))
	rec := perform(r, "Bearer good-token")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, appErrors.ErrPaymentPending.Code, decodeCode(t, rec))

	r = newProtectedRouter(JWT(staticValidator(studentClaims("paid"))), RequireAccess(checker))
	assert.Equal(t, http.StatusOK, perform(r, "Bearer good-token").Code)
}

func TestRequireAccessStoreFailure(t *testing.T) {
	checker := accessStub{err: appErrors.Wrap(errors.New("db down"), appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check access")}
	r := newProtectedRouter(JWT(staticValidator(studentClaims("paid"))), RequireAccess(checker))
	assert.Equal(t, http.StatusInternalServerError, perform(r, "Bearer good-token").Code)
}

func TestResponseMetaKeepsHandlerValues(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(WithResponseMeta())
	r.GET("/meta", func(c *gin.Context) {
		SetCacheHit(c, true)
		SetMeta(c, "count", 3)
		c.JSON(http.StatusOK, ExtractMeta(c))
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/meta", nil))

	var meta map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &meta))
	assert.Equal(t, true, meta["cache_hit"])
	assert.EqualValues(t, 3, meta["count"])
}
