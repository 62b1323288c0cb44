package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"snowschool_backend/internals/configs"
	"snowschool_backend/internals/models"
)

// ConnectDB opens Postgres when DATABASE_URL is set and SQLite otherwise.
func ConnectDB(cfg configs.Config) (*gorm.DB, error) {
	gcfg := &gorm.Config{
		Logger: configs.NewGormLogger(cfg.SlowQuery, cfg.Debug),
	}

	if cfg.UsesSQLite() {
		log.Printf("🔌 Connecting to SQLite (%s)...", cfg.SQLitePath)
		db, err := gorm.Open(sqlite.Open(sqliteDSN(cfg.SQLitePath)), gcfg)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		log.Println("✅ DB connected.")
		return db, nil
	}

	log.Println("🔌 Connecting to PostgreSQL...")
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DatabaseURL,
		PreferSimpleProtocol: true, // works behind PgBouncer transaction pooling
	}), gcfg)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	log.Println("✅ DB connected.")
	return db, nil
}

func sqliteDSN(path string) string {
	if path == configs.MemorySQLite {
		return "file::memory:?_pragma=foreign_keys(1)"
	}
	return "file:" + path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

// TunePool sizes the connection pool. An in-memory SQLite database lives in a
// single connection, so the pool is pinned to it.
func TunePool(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	switch db.Dialector.Name() {
	case "sqlite":
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetConnMaxIdleTime(0)
		sqlDB.SetConnMaxLifetime(0)
	default:
		sqlDB.SetMaxOpenConns(20)
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetConnMaxIdleTime(60 * time.Second)
		sqlDB.SetConnMaxLifetime(10 * time.Minute)
	}
}

// Migrate creates or updates the club tables. The coach foreign keys point
// back at "user" which itself references team, so on Postgres they are added
// once every table exists.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	if db.Dialector.Name() != "postgres" {
		return nil
	}

	for _, fk := range coachForeignKeys {
		if db.Migrator().HasConstraint(fk.model, fk.name) {
			continue
		}
		stmt := fmt.Sprintf(`ALTER TABLE %q ADD CONSTRAINT %q FOREIGN KEY (coach_id) REFERENCES "user"(id)`, fk.table, fk.name)
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("add constraint %s: %w", fk.name, err)
		}
		log.Printf("[INFO] constraint %s created", fk.name)
	}
	return nil
}

var coachForeignKeys = []struct {
	model interface{}
	table string
	name  string
}{
	{&models.Team{}, "team", "fk_team_coach"},
	{&models.Evaluation{}, "evaluation", "fk_evaluation_coach"},
}

func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
