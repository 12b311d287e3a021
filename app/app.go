package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/urfave/cli/v2"
	"gitlab.com/aoterocom/AOStrategyPreview/config"
	"gitlab.com/aoterocom/AOStrategyPreview/database"
	dbmodels "gitlab.com/aoterocom/AOStrategyPreview/database/models"
	"gitlab.com/aoterocom/AOStrategyPreview/helpers"
	"gitlab.com/aoterocom/AOStrategyPreview/models"
	"gitlab.com/aoterocom/AOStrategyPreview/models/analytics"
	"gitlab.com/aoterocom/AOStrategyPreview/series"
	"gitlab.com/aoterocom/AOStrategyPreview/services"
	"gitlab.com/aoterocom/AOStrategyPreview/ui"
)

// StrategyStore reads the stored strategy rows previews are built from
type StrategyStore interface {
	GetStrategy(ctx context.Context, id string) (dbmodels.Strategy, error)
	ListStrategies(ctx context.Context, userID string) ([]dbmodels.Strategy, error)
}

type Previewer struct {
	cfg            config.Config
	previewService *services.PreviewService
	openStore      func(cfg config.Config) (StrategyStore, error)
}

func openDBStore(cfg config.Config) (StrategyStore, error) {
	return database.NewDBServiceFromConfig(cfg)
}

// NewApp wires the preview commands. Configuration is loaded from the env file before any command runs.
func NewApp(out io.Writer) *cli.App {
	return newApp(out, &Previewer{openStore: openDBStore})
}

func newApp(out io.Writer, previewer *Previewer) *cli.App {

	previewFlags := []cli.Flag{
		&cli.StringFlag{Name: "name", Aliases: []string{"n"}, Usage: "strategy display name the series is seeded from", Required: true},
		&cli.StringFlag{Name: "type", Aliases: []string{"t"}, Usage: "momentum, mean-reversion, breakout, scalping or swing", Value: string(models.StrategyTypeSwing)},
		&cli.IntFlag{Name: "bars", Aliases: []string{"b"}, Usage: "number of bars, defaults to the configured value"},
		&cli.StringFlag{Name: "shape", Usage: "line or candle, defaults to the configured value"},
		&cli.StringFlag{Name: "start", Usage: "first candle date (YYYY-MM-DD), defaults to the configured value"},
	}

	return &cli.App{
		Name:   "strategy-preview",
		Usage:  "deterministic synthetic charts, signals and simulated P&L for strategy previews",
		Writer: out,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "env", Usage: "env file to load", Value: config.DefaultEnvFile},
		},
		Before: previewer.setup,
		After:  previewer.teardown,
		Commands: []*cli.Command{
			{
				Name:   "preview",
				Usage:  "print the full preview report as JSON",
				Flags:  previewFlags,
				Action: previewer.Preview,
			},
			{
				Name:   "signals",
				Usage:  "print the signals and the simulated trades summary",
				Flags:  previewFlags,
				Action: previewer.Signals,
			},
			{
				Name:  "series",
				Usage: "print the generated bars as timestamped candles",
				Flags: append(previewFlags, &cli.StringFlag{
					Name: "timeframe", Usage: "bar period for index labelled bars (15m, 4h, 1d)", Value: "1d",
				}),
				Action: previewer.Series,
			},
			{
				Name:   "chart",
				Usage:  "draw the preview in the terminal",
				Flags:  previewFlags,
				Action: previewer.Chart,
			},
			{
				Name:  "strategy",
				Usage: "preview strategies stored in the database",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "id", Usage: "strategy id to preview"},
					&cli.StringFlag{Name: "user", Usage: "list the strategies of a user instead"},
					&cli.IntFlag{Name: "bars", Aliases: []string{"b"}, Usage: "number of bars, defaults to the configured value"},
					&cli.StringFlag{Name: "shape", Usage: "line or candle, defaults to the configured value"},
					&cli.BoolFlag{Name: "series", Usage: "print the bars on the stored timeframe instead of the JSON report"},
				},
				Action: previewer.Strategy,
			},
		},
	}
}

func (p *Previewer) setup(c *cli.Context) error {
	cfg, err := config.Load(c.String("env"))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	if err := helpers.ConfigureLogger(cfg); err != nil {
		return cli.Exit(err.Error(), 1)
	}
	p.cfg = cfg
	p.previewService = services.NewPreviewService(cfg.CacheEnabled)
	return nil
}

func (p *Previewer) teardown(c *cli.Context) error {
	return helpers.Logger.Close()
}

func (p *Previewer) request(c *cli.Context) (services.PreviewRequest, error) {
	request := services.PreviewRequest{
		Name:         c.String("name"),
		Bars:         p.cfg.Bars,
		StrategyType: models.ParseStrategyType(c.String("type")),
		Shape:        models.ParseShape(p.cfg.Shape),
		Start:        p.cfg.StartDate,
	}
	if c.IsSet("bars") {
		request.Bars = c.Int("bars")
	}
	if c.IsSet("shape") {
		request.Shape = models.ParseShape(c.String("shape"))
	}
	if c.IsSet("start") {
		start, err := time.Parse(config.DateLayout, c.String("start"))
		if err != nil {
			return request, cli.Exit(fmt.Sprintf("invalid start date: %s", err), 1)
		}
		request.Start = start
	}
	return request, nil
}

func (p *Previewer) Preview(c *cli.Context) error {
	request, err := p.request(c)
	if err != nil {
		return err
	}
	return p.writeJSON(c, p.previewService.Preview(request))
}

func (p *Previewer) Signals(c *cli.Context) error {
	request, err := p.request(c)
	if err != nil {
		return err
	}
	report := p.previewService.Preview(request)
	out := c.App.Writer

	fmt.Fprintln(out, ui.ReportHeader(report))
	for _, row := range ui.SignalRows(report.Signals) {
		fmt.Fprintln(out, row)
	}
	fmt.Fprint(out, ui.SummaryText(report.Summary))

	helpers.Logger.Infoln(fmt.Sprintf("📈 %s (%s): %d trades, win rate %.2f%%, P&L %.2f", report.Name,
		report.StrategyType, report.Summary.TotalTrades, report.Summary.WinRate, report.Summary.TotalPnL))
	return nil
}

func (p *Previewer) Series(c *cli.Context) error {
	request, err := p.request(c)
	if err != nil {
		return err
	}
	period, err := series.ParseTimeframe(c.String("timeframe"))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	p.writeSeries(c, p.previewService.Preview(request), request.Start, period)
	return nil
}

func (p *Previewer) Chart(c *cli.Context) error {
	request, err := p.request(c)
	if err != nil {
		return err
	}
	return ui.NewChart(p.previewService.Preview(request)).Run()
}

func (p *Previewer) Strategy(c *cli.Context) error {
	if c.String("id") == "" && c.String("user") == "" {
		return cli.Exit("either --id or --user is required", 1)
	}

	store, err := p.openStore(p.cfg)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	ctx, cancel := context.WithTimeout(c.Context, 30*time.Second)
	defer cancel()

	if userID := c.String("user"); userID != "" {
		strategies, err := store.ListStrategies(ctx, userID)
		if err != nil {
			return cli.Exit(err.Error(), 1)
		}
		for _, strategy := range strategies {
			fmt.Fprintf(c.App.Writer, "%s\t%s\t%s\t%s\n", strategy.ID, strategy.Name, strategy.StrategyType, strategy.Timeframe)
		}
		return nil
	}

	strategy, err := store.GetStrategy(ctx, c.String("id"))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	bars := p.cfg.Bars
	if c.IsSet("bars") {
		bars = c.Int("bars")
	}
	shape := models.ParseShape(p.cfg.Shape)
	if c.IsSet("shape") {
		shape = models.ParseShape(c.String("shape"))
	}
	request, period, err := database.NewPreviewRequest(strategy, bars, shape, p.cfg.StartDate)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	report := p.previewService.Preview(request)
	if c.Bool("series") {
		p.writeSeries(c, report, request.Start, period)
		return nil
	}
	return p.writeJSON(c, report)
}

func (p *Previewer) writeSeries(c *cli.Context, report analytics.Report, start time.Time, period time.Duration) {
	timeSeries := series.ToTimeSeries(report.Bars, start, period)
	out := c.App.Writer
	for i, candle := range timeSeries.Candles {
		bar := report.Bars[i]
		fmt.Fprintf(out, "%s O %.2f H %.2f L %.2f C %.2f V %.0f EMA20 %.2f EMA50 %.2f RSI %.2f\n",
			candle.Period.Start.Format("2006-01-02 15:04"), candle.OpenPrice.Float(), candle.MaxPrice.Float(),
			candle.MinPrice.Float(), candle.ClosePrice.Float(), candle.Volume.Float(), bar.EMA20, bar.EMA50, bar.RSI)
	}
}

func (p *Previewer) writeJSON(c *cli.Context, report analytics.Report) error {
	encoder := json.NewEncoder(c.App.Writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}
