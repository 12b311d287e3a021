package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gitlab.com/aoterocom/AOStrategyPreview/config"
	database "gitlab.com/aoterocom/AOStrategyPreview/database/models"
	"gitlab.com/aoterocom/AOStrategyPreview/models"
	"gitlab.com/aoterocom/AOStrategyPreview/series"
	"gitlab.com/aoterocom/AOStrategyPreview/services"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var ErrStrategyNotFound = errors.New("strategy not found")

// DBService reads the strategy rows that feed previews. It never writes: previews are recomputed, not stored.
type DBService struct {
	DB *gorm.DB
}

func NewDBService(dbHost string, dbPort string, dbName string, dbUser string, dbPass string) (*DBService, error) {
	dsn := dbUser + ":" + dbPass + "@tcp(" + dbHost + ":" + dbPort + ")/" + dbName + "?charset=utf8mb4&parseTime=True&loc=Local"
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	return &DBService{
		DB: db,
	}, nil
}

func NewDBServiceFromConfig(cfg config.Config) (*DBService, error) {
	if !cfg.DatabaseEnabled {
		return nil, errors.New("database is not enabled, set enableDatabase=true")
	}
	return NewDBService(cfg.DatabaseHost, cfg.DatabasePort, cfg.DatabaseName, cfg.DatabaseUser, cfg.DatabasePassword)
}

func (dbs *DBService) GetStrategy(ctx context.Context, id string) (database.Strategy, error) {
	var strategy database.Strategy
	err := dbs.DB.WithContext(ctx).Where("id = ?", id).First(&strategy).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return strategy, fmt.Errorf("%w: %s", ErrStrategyNotFound, id)
	}
	return strategy, err
}

func (dbs *DBService) ListStrategies(ctx context.Context, userID string) ([]database.Strategy, error) {
	var strategies []database.Strategy
	err := dbs.DB.WithContext(ctx).Scopes(ByUser(userID)).Find(&strategies).Error
	return strategies, err
}

// ByUser restricts a strategies query to the rows of userID, newest first
func ByUser(userID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", userID).Order("created_at DESC")
	}
}

// NewPreviewRequest turns a strategy row into preview inputs and the bar period of its timeframe
func NewPreviewRequest(strategy database.Strategy, bars int, shape models.Shape, start time.Time) (services.PreviewRequest, time.Duration, error) {
	period, err := series.ParseTimeframe(strategy.Timeframe)
	if err != nil {
		return services.PreviewRequest{}, 0, err
	}
	return services.PreviewRequest{
		Name:         strategy.Name,
		Bars:         bars,
		StrategyType: models.ParseStrategyType(strategy.StrategyType),
		Shape:        shape,
		Start:        start,
	}, period, nil
}
