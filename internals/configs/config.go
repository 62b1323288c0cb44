package configs

import (
	"context"
	"errors"
	"log"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	gormLogger "gorm.io/gorm/logger"
	"gorm.io/gorm/utils"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	// MemorySQLite is the serverless fall-back when production runs without DATABASE_URL.
	MemorySQLite = ":memory:"
)

type Config struct {
	Env          string
	Debug        bool
	Port         string
	DatabaseURL  string
	SQLitePath   string
	JWTSecret    string
	SessionTTL   time.Duration
	CookieSecure bool
	SlowQuery    time.Duration
	CORSOrigins  string
}

// UsesSQLite reports whether the database is a SQLite file or in-memory database.
func (c Config) UsesSQLite() bool {
	return c.DatabaseURL == ""
}

func (c Config) UsesMemoryDB() bool {
	return c.UsesSQLite() && c.SQLitePath == MemorySQLite
}

func (c Config) IsProduction() bool {
	return c.Env == EnvProduction
}

var (
	cfg     Config
	cfgOnce sync.Once
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, using system environment")
	} else {
		log.Println("✅ .env file loaded")
	}
}

// Get builds the configuration once from the environment.
func Get() Config {
	cfgOnce.Do(func() {
		cfg = Load(viper.New())
		if cfg.JWTSecret == defaultSecret {
			log.Println("❌ SECRET_KEY is not set, using the development key")
		}
	})
	return cfg
}

const defaultSecret = "dev-secret-key-change-in-production"

// Load reads keys from v (bound to the environment) and resolves the defaults
// of the selected environment.
func Load(v *viper.Viper) Config {
	v.AutomaticEnv()
	v.SetDefault("PORT", "5001")
	v.SetDefault("SECRET_KEY", defaultSecret)
	v.SetDefault("SLOW_QUERY_MS", 200)

	env := strings.ToLower(strings.TrimSpace(v.GetString("APP_ENV")))
	if env == "" {
		env = strings.ToLower(strings.TrimSpace(v.GetString("FLASK_ENV")))
	}
	if env != EnvProduction {
		env = EnvDevelopment
	}

	c := Config{
		Env:         env,
		Port:        v.GetString("PORT"),
		DatabaseURL: strings.TrimSpace(v.GetString("DATABASE_URL")),
		JWTSecret:   v.GetString("JWT_SECRET"),
		SlowQuery:   time.Duration(v.GetInt("SLOW_QUERY_MS")) * time.Millisecond,
		CORSOrigins: v.GetString("CORS_ORIGINS"),
	}
	if c.JWTSecret == "" {
		c.JWTSecret = v.GetString("SECRET_KEY")
	}

	switch env {
	case EnvProduction:
		c.Debug = false
		c.CookieSecure = true
		c.SessionTTL = 24 * time.Hour
		if c.DatabaseURL == "" {
			c.SQLitePath = MemorySQLite
		}
	default:
		// development always uses the local SQLite file
		c.Debug = true
		c.DatabaseURL = ""
		c.SQLitePath = v.GetString("SQLITE_PATH")
		if c.SQLitePath == "" {
			c.SQLitePath = "athlete_evaluation.db"
		}
		c.SessionTTL = 31 * 24 * time.Hour
	}

	if ttl := v.GetDuration("SESSION_TTL"); ttl > 0 {
		c.SessionTTL = ttl
	}
	return c
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

// =======================
// GORM LOGGER CUSTOM
// =======================
type GormLogger struct {
	SlowThreshold time.Duration
	LogLevel      gormLogger.LogLevel
}

func NewGormLogger(slow time.Duration, debug bool) gormLogger.Interface {
	level := gormLogger.Warn
	if debug {
		level = gormLogger.Info
	}
	if slow <= 0 {
		slow = 200 * time.Millisecond
	}
	return &GormLogger{
		SlowThreshold: slow,
		LogLevel:      level,
	}
}

func (l *GormLogger) LogMode(level gormLogger.LogLevel) gormLogger.Interface {
	nl := *l
	nl.LogLevel = level
	return &nl
}

func (l *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Info {
		log.Printf("[INFO] "+msg, data...)
	}
}

func (l *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Warn {
		log.Printf("[WARN] "+msg, data...)
	}
}

func (l *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Error {
		log.Printf("[ERROR] "+msg, data...)
	}
}

func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.LogLevel <= gormLogger.Silent {
		return
	}
	elapsed := time.Since(begin)
	sql, rows := fc()
	file := utils.FileWithLineNum()

	switch {
	case err != nil && !isRecordNotFound(err):
		log.Printf("[ERROR] %s | %v | %s | %d rows | %s", file, err, elapsed, rows, sql)
	case elapsed > l.SlowThreshold:
		log.Printf("[SLOW SQL] %s | %s | %d rows | %s", file, elapsed, rows, sql)
	case l.LogLevel >= gormLogger.Info:
		log.Printf("[QUERY] %s | %s | %d rows | %s", file, elapsed, rows, sql)
	}
}

func isRecordNotFound(err error) bool {
	return errors.Is(err, gormLogger.ErrRecordNotFound)
}
