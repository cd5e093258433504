package infra

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"match2b/internal/config"
	"match2b/internal/models/db_models"
)

func InitPostgresql(cfg config.PostgresConfig, log *zap.Logger) (*gorm.DB, error) {
	connectionPool, err := gorm.Open(postgres.Open(cfg.GetDSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	sqlDB, err := connectionPool.DB()
	if err != nil {
		return nil, fmt.Errorf("postgres pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxConnections)
	sqlDB.SetMaxIdleConns(cfg.MaxIdle)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	log.Info("postgres connected",
		zap.Int("max_connections", cfg.MaxConnections),
		zap.Int("max_idle", cfg.MaxIdle))

	return connectionPool, nil
}

// Migrate creates or updates the tables this service owns. profiles is owned
// by the identity provider and is only read.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&db_models.Solution{},
		&db_models.SurveyQuestion{},
		&db_models.SurveyResponse{},
	)
}

func ClosePostgresql(db *gorm.DB, log *zap.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Error("error getting database instance", zap.Error(err))
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Error("error closing database connection", zap.Error(err))
	} else {
		log.Info("postgres connection closed")
	}
}
