// api/db/db.go
package db

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/dev-sahilarora/nestly/api/config"
	logger "github.com/dev-sahilarora/nestly/api/logging"
)

var DB *gorm.DB

func InitPostgres() error {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		config.GetString("postgres.host"),
		config.GetInt("postgres.port"),
		config.GetString("postgres.user"),
		config.GetString("postgres.password"),
		config.GetString("postgres.name"),
		config.GetString("postgres.sslmode"),
	)

	logger.Info("Connecting to Postgres",
		zap.String("host", config.GetString("postgres.host")),
		zap.String("database", config.GetString("postgres.name")))

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to Postgres: %w", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return fmt.Errorf("failed to access underlying sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(config.GetInt("postgres.maxOpenConns"))
	sqlDB.SetMaxIdleConns(config.GetInt("postgres.maxIdleConns"))

	if err := sqlDB.Ping(); err != nil {
		return fmt.Errorf("failed to ping Postgres: %w", err)
	}

	logger.Info("Successfully connected to Postgres")
	return nil
}

func ClosePostgres() {
	if DB == nil {
		return
	}
	sqlDB, err := DB.DB()
	if err != nil {
		logger.Error("Error accessing Postgres connection for close", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.Error("Error closing Postgres connection", zap.Error(err))
	} else {
		logger.Info("Postgres connection closed successfully")
	}
}
