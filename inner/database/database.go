package database

import (
	"fmt"
	"time"

	"hrm/inner/common"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

const (
	maxIdleConns    = 5
	maxOpenConns    = 20
	connMaxLifetime = 1 * time.Minute
	connMaxIdleTime = 10 * time.Minute
)

// Подключиться к базе данных с переданным конфигом
func ConnectDbWithCfg(cfg common.Config, logger *common.Logger) (*sqlx.DB, error) {
	db, err := sqlx.Connect(cfg.DbDriverName, cfg.Dsn)
	if err != nil {
		logger.Error("Failed to connect to database",
			zap.String("driver", cfg.DbDriverName),
			zap.Error(err))
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	logger.Info("Database connection established successfully",
		zap.String("driver", cfg.DbDriverName))

	db.SetMaxIdleConns(maxIdleConns)
	db.SetMaxOpenConns(maxOpenConns)
	db.SetConnMaxLifetime(connMaxLifetime)
	db.SetConnMaxIdleTime(connMaxIdleTime)

	logger.Debug("Database connection pool configured",
		zap.Int("maxIdleConns", maxIdleConns),
		zap.Int("maxOpenConns", maxOpenConns),
		zap.Duration("connMaxLifetime", connMaxLifetime),
		zap.Duration("connMaxIdleTime", connMaxIdleTime))

	return db, nil
}
