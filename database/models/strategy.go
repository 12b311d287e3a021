package database

import "time"

// Strategy is a strategy row owned by the web application. Only the columns needed to build a preview are mapped.
type Strategy struct {
	ID           string `gorm:"primaryKey;size:36"`
	UserID       string `gorm:"index;size:36"`
	Name         string
	StrategyType string
	Timeframe    string
	Description  string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Strategy) TableName() string {
	return "strategies"
}
