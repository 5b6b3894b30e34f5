package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	cfg := fromViper(v)
	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, "/api/v1", cfg.APIPrefix)
	assert.Equal(t, int64(4000), cfg.Checkout.PriceCents)
	assert.Equal(t, 20, cfg.Study.DefaultWeeklyHours)
	assert.Equal(t, 2*time.Hour, cfg.Admin.TokenTTL)
	assert.Equal(t, []string{"authenticated"}, cfg.JWT.Audience)
	assert.True(t, cfg.Database.AutoMigrate)
}

func TestOverridesAndFallbacks(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("CHECKOUT_PRICE_CENTS", -1)
	v.Set("ADMIN_TOKEN_TTL", "not-a-duration")
	v.Set("ALLOWED_ORIGINS", " https://a.example , ,https://b.example")
	v.Set("STUDY_DEFAULT_WEEKLY_HOURS", 30)

	cfg := fromViper(v)
	assert.Equal(t, int64(4000), cfg.Checkout.PriceCents)
	assert.Equal(t, 2*time.Hour, cfg.Admin.TokenTTL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, 30, cfg.Study.DefaultWeeklyHours)
}
