package analytics

import "gitlab.com/aoterocom/AOStrategyPreview/models"

// Report is everything a chart needs to render a strategy preview
type Report struct {
	Name         string              `json:"name"`
	Seed         int64               `json:"seed"`
	StrategyType models.StrategyType `json:"strategyType"`
	Shape        models.Shape        `json:"shape"`
	Bars         []models.Bar        `json:"bars"`
	Signals      []models.Signal     `json:"signals"`
	Trades       []models.Trade      `json:"trades"`
	Summary      Summary             `json:"summary"`
}

func (r *Report) SignalCount(side models.SideType) int {
	count := 0
	for _, signal := range r.Signals {
		if signal.Side == side {
			count++
		}
	}
	return count
}
