package app

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseDatabaseURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw    string
		driver string
		dsn    string
	}{
		{"sqlite:///./data/blog.db", "sqlite", "./data/blog.db"},
		{"sqlite:////var/lib/blog.db", "sqlite", "/var/lib/blog.db"},
		{"blog.db", "sqlite", "blog.db"},
		{":memory:", "sqlite", ":memory:"},
		{"postgres://u:p@localhost:5432/blog", "postgres", "postgres://u:p@localhost:5432/blog"},
		{"postgresql://localhost/blog", "postgres", "postgresql://localhost/blog"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			driver, dsn := parseDatabaseURL(tt.raw)
			require.Equal(t, tt.driver, driver)
			require.Equal(t, tt.dsn, dsn)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		for _, key := range []string{"ENV", "PORT", "SECRET_KEY", "COOKIE_SECURE", "BACKEND_CORS_ORIGINS", "DATABASE_URL"} {
			t.Setenv(key, "")
		}

		cfg := LoadConfig()
		require.Equal(t, "dev", cfg.Env)
		require.Equal(t, 8000, cfg.Port)
		require.Equal(t, 30*time.Minute, cfg.AccessTokenTTL)
		require.Equal(t, 7*24*time.Hour, cfg.RefreshTokenTTL)
		require.Equal(t, 48*time.Hour, cfg.ResetTokenTTL)
		require.Equal(t, "sqlite:///./data/blog.db", cfg.DatabaseURL)
		require.Equal(t, []string{"http://localhost:3000"}, cfg.CORSOrigins)
		require.False(t, cfg.CookieSecure)
		require.True(t, cfg.ExposeResetToken)
		require.Len(t, cfg.SecretKey, 43)
		require.True(t, cfg.secretGenerated)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("ENV", "prod")
		t.Setenv("PORT", "9000")
		t.Setenv("SECRET_KEY", "s3cret")
		t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "5")
		t.Setenv("REFRESH_TOKEN_EXPIRE_DAYS", "1")
		t.Setenv("BACKEND_CORS_ORIGINS", "https://a.example, https://b.example,")
		t.Setenv("EXPOSE_RESET_TOKEN", "false")
		t.Setenv("COOKIE_SECURE", "")
		t.Setenv("SHUTDOWN_GRACE_PERIOD", "3")

		cfg := LoadConfig()
		require.Equal(t, 9000, cfg.Port)
		require.Equal(t, []byte("s3cret"), cfg.SecretKey)
		require.False(t, cfg.secretGenerated)
		require.Equal(t, 5*time.Minute, cfg.AccessTokenTTL)
		require.Equal(t, 24*time.Hour, cfg.RefreshTokenTTL)
		require.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
		require.False(t, cfg.ExposeResetToken)
		require.True(t, cfg.CookieSecure)
		require.Equal(t, 3*time.Minute, cfg.ShutdownGracePeriod)
	})
}

func TestApplicationWiring(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{
		Env:                  "dev",
		LogLevel:             "error",
		LogFormat:            "text",
		ShutdownGracePeriod:  time.Second,
		HousekeepingInterval: time.Hour,
		SecretKey:            []byte("test-secret"),
		DatabaseURL:          "sqlite:///" + filepath.Join(dir, "blog.db"),
		PepperFile:           filepath.Join(dir, "pepper"),
		CORSOrigins:          []string{"http://localhost:3000"},
		SeedSampleData:       true,
	}

	app, err := New(cfg)
	require.NoError(t, err)
	app.housekeepingService.Start()
	t.Cleanup(func() { require.NoError(t, app.Shutdown()) })

	require.Nil(t, app.oauthBridge.Provider)
	require.NotNil(t, app.sweeper)

	t.Run("seeded posts are served", func(t *testing.T) {
		rec := httptest.NewRecorder()
		app.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/posts", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `"Technology"`)
	})

	t.Run("cors preflight allows credentials", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/auth/refresh", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)

		rec := httptest.NewRecorder()
		app.Handler().ServeHTTP(rec, req)
		require.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
		require.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("unknown origin is not allowed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/livez", nil)
		req.Header.Set("Origin", "https://evil.example")

		rec := httptest.NewRecorder()
		app.Handler().ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})
}
