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
	appErrors "github.com/vidro-absolut/study-api/pkg/errors"
)

type fakeCheckoutSrv struct {
	last dto.CheckoutRequest
	err  error
}

func (f *fakeCheckoutSrv) Register(_ context.Context, req dto.CheckoutRequest) (*models.CheckoutResult, error) {
	f.last = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.CheckoutResult{
		Customer: &models.Customer{FirstName: req.FirstName, CPF: req.CPF},
		Payment:  models.PixInstructions{PixKey: "pix@vidro", AmountCents: 4000, Amount: "R$ 40,00"},
	}, nil
}

func newCheckoutRouter(h *CheckoutHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/checkout", h.Register)
	r.GET("/cpf/validate", h.ValidateCPF)
	return r
}

func TestCheckoutHandlerRegister(t *testing.T) {
	srv := &fakeCheckoutSrv{}
	body := `{"first_name":"Ana","last_name":"Souza","cpf":"52998224725","telegram":"ana"}`
	rec := serve(newCheckoutRouter(NewCheckoutHandler(srv)), http.MethodPost, "/checkout", body)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "52998224725", srv.last.CPF)
	var envelope responseEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	payment, ok := envelope.Data["payment"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "R$ 40,00", payment["amount"])
}

func TestCheckoutHandlerValidationError(t *testing.T) {
	srv := &fakeCheckoutSrv{err: appErrors.Clone(appErrors.ErrValidation, "invalid CPF")}
	body := `{"first_name":"Ana","last_name":"Souza","cpf":"111.111.111-11","telegram":"@ana"}`
	rec := serve(newCheckoutRouter(NewCheckoutHandler(srv)), http.MethodPost, "/checkout", body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var envelope responseEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "invalid CPF", envelope.Error.Message)
}

func TestCheckoutHandlerMalformedBody(t *testing.T) {
	rec := serve(newCheckoutRouter(NewCheckoutHandler(&fakeCheckoutSrv{})), http.MethodPost, "/checkout", `[1,2`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCheckoutHandlerValidateCPF(t *testing.T) {
	r := newCheckoutRouter(NewCheckoutHandler(&fakeCheckoutSrv{}))

	cases := []struct {
		value     string
		valid     bool
		formatted string
	}{
		{"52998224725", true, "529.982.247-25"},
		{"529.982.247-25", true, "529.982.247-25"},
		{"111.111.111-11", false, "111.111.111-11"},
		{"5299", false, "529.9"},
	}
	for _, tc := range cases {
		rec := serve(r, http.MethodGet, "/cpf/validate?value="+tc.value, "")
		require.Equal(t, http.StatusOK, rec.Code)
		var envelope responseEnvelope
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
		assert.Equal(t, tc.valid, envelope.Data["valid"], tc.value)
		assert.Equal(t, tc.formatted, envelope.Data["formatted"], tc.value)
	}
}
