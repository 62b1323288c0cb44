package configs

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want Config
	}{
		{
			name: "development defaults",
			env:  map[string]string{},
			want: Config{
				Env:        EnvDevelopment,
				Debug:      true,
				Port:       "5001",
				SQLitePath: "athlete_evaluation.db",
				JWTSecret:  defaultSecret,
				SessionTTL: 31 * 24 * time.Hour,
				SlowQuery:  200 * time.Millisecond,
			},
		},
		{
			name: "development ignores DATABASE_URL",
			env:  map[string]string{"APP_ENV": "development", "DATABASE_URL": "postgres://x"},
			want: Config{
				Env:        EnvDevelopment,
				Debug:      true,
				Port:       "5001",
				SQLitePath: "athlete_evaluation.db",
				JWTSecret:  defaultSecret,
				SessionTTL: 31 * 24 * time.Hour,
				SlowQuery:  200 * time.Millisecond,
			},
		},
		{
			name: "production with postgres",
			env: map[string]string{
				"APP_ENV":      "production",
				"DATABASE_URL": "postgres://u:p@db/club",
				"SECRET_KEY":   "s3cret",
				"PORT":         "8080",
			},
			want: Config{
				Env:          EnvProduction,
				Port:         "8080",
				DatabaseURL:  "postgres://u:p@db/club",
				JWTSecret:    "s3cret",
				SessionTTL:   24 * time.Hour,
				CookieSecure: true,
				SlowQuery:    200 * time.Millisecond,
			},
		},
		{
			name: "production falls back to in-memory sqlite",
			env:  map[string]string{"FLASK_ENV": "production", "JWT_SECRET": "jwt"},
			want: Config{
				Env:          EnvProduction,
				Port:         "5001",
				SQLitePath:   MemorySQLite,
				JWTSecret:    "jwt",
				SessionTTL:   24 * time.Hour,
				CookieSecure: true,
				SlowQuery:    200 * time.Millisecond,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, k := range []string{"APP_ENV", "FLASK_ENV", "DATABASE_URL", "SECRET_KEY", "JWT_SECRET", "PORT", "SQLITE_PATH", "SESSION_TTL", "SLOW_QUERY_MS"} {
				t.Setenv(k, "")
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			assert.Equal(t, tt.want, Load(viper.New()))
		})
	}
}

func TestConfigDatabaseKind(t *testing.T) {
	assert.True(t, Config{SQLitePath: MemorySQLite}.UsesMemoryDB())
	assert.True(t, Config{SQLitePath: "a.db"}.UsesSQLite())
	assert.False(t, Config{SQLitePath: "a.db"}.UsesMemoryDB())
	assert.False(t, Config{DatabaseURL: "postgres://x"}.UsesSQLite())
}
