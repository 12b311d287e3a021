package interfaces

import (
	"gitlab.com/aoterocom/AOStrategyPreview/models"
)

type (
	Strategy interface {
		Type() models.StrategyType
		// MaxSignals caps the signals emitted per side
		MaxSignals() int
		ShouldEnter(ctx *models.SignalContext, index int) bool
		ShouldExit(ctx *models.SignalContext, index int) bool
		EntryReason() string
		ExitReason() string
	}
)
