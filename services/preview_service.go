package services

import (
	"fmt"
	"sync"
	"time"

	"gitlab.com/aoterocom/AOStrategyPreview/helpers"
	"gitlab.com/aoterocom/AOStrategyPreview/models"
	"gitlab.com/aoterocom/AOStrategyPreview/models/analytics"
	"gitlab.com/aoterocom/AOStrategyPreview/series"
)

type PreviewRequest struct {
	Name         string
	Bars         int
	StrategyType models.StrategyType
	Shape        models.Shape
	Start        time.Time
}

type previewKey struct {
	seed         int64
	bars         int
	strategyType models.StrategyType
	shape        models.Shape
	start        time.Time
}

// PreviewService runs the seed → series → indicators → signals → trades pipeline, optionally memoizing reports
type PreviewService struct {
	cacheEnabled bool
	cache        map[previewKey]analytics.Report
	cacheMutex   *sync.Mutex
}

func NewPreviewService(cacheEnabled bool) *PreviewService {
	return &PreviewService{
		cacheEnabled: cacheEnabled,
		cache:        make(map[previewKey]analytics.Report),
		cacheMutex:   &sync.Mutex{},
	}
}

func (ps *PreviewService) Preview(request PreviewRequest) analytics.Report {
	if request.Start.IsZero() {
		request.Start = series.DefaultStart
	}
	if request.Shape == "" {
		request.Shape = models.ShapeLine
	}
	request.StrategyType = models.ParseStrategyType(string(request.StrategyType))

	key := previewKey{
		seed:         series.Seed(request.Name),
		bars:         request.Bars,
		strategyType: request.StrategyType,
		shape:        request.Shape,
		start:        request.Start,
	}

	if ps.cacheEnabled {
		ps.cacheMutex.Lock()
		report, ok := ps.cache[key]
		ps.cacheMutex.Unlock()
		if ok {
			helpers.Logger.Traceln(fmt.Sprintf("preview cache hit for %q (%s)", request.Name, request.StrategyType))
			return report
		}
	}

	report := ps.build(request, key.seed)

	if ps.cacheEnabled {
		ps.cacheMutex.Lock()
		ps.cache[key] = report
		ps.cacheMutex.Unlock()
	}
	return report
}

// CacheSize returns how many reports are memoized
func (ps *PreviewService) CacheSize() int {
	ps.cacheMutex.Lock()
	defer ps.cacheMutex.Unlock()
	return len(ps.cache)
}

func (ps *PreviewService) build(request PreviewRequest, seed int64) analytics.Report {
	bars := series.Generate(request.Bars, seed, series.Options{Shape: request.Shape, Start: request.Start})

	emaFast := make([]float64, len(bars))
	emaSlow := make([]float64, len(bars))
	rsi := make([]float64, len(bars))
	for i, bar := range bars {
		emaFast[i] = bar.EMA20
		emaSlow[i] = bar.EMA50
		rsi[i] = bar.RSI
	}

	signals := GenerateSignals(bars, emaFast, emaSlow, rsi, request.StrategyType)
	trades := PairTrades(signals)
	summary := Summarize(trades)

	helpers.Logger.Debugln(fmt.Sprintf("→ Preview %q seed %d: %d bars, %d signals, %d trades, win rate %.2f%%",
		request.Name, seed, len(bars), len(signals), len(trades), summary.WinRate))

	return analytics.Report{
		Name:         request.Name,
		Seed:         seed,
		StrategyType: request.StrategyType,
		Shape:        request.Shape,
		Bars:         bars,
		Signals:      signals,
		Trades:       trades,
		Summary:      summary,
	}
}
