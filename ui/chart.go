package ui

import (
	"fmt"

	"github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"
	"gitlab.com/aoterocom/AOStrategyPreview/helpers"
	"gitlab.com/aoterocom/AOStrategyPreview/models"
	"gitlab.com/aoterocom/AOStrategyPreview/models/analytics"
)

type Chart struct {
	report analytics.Report
}

func NewChart(report analytics.Report) *Chart {
	return &Chart{report: report}
}

// Run draws the report and blocks until q or Ctrl-C is pressed
func (c *Chart) Run() error {
	if err := termui.Init(); err != nil {
		return fmt.Errorf("failed to initialize termui: %w", err)
	}
	defer termui.Close()

	c.Render()
	uiEvents := termui.PollEvents()
	for {
		e := <-uiEvents
		switch e.ID {
		case "q", "<C-c>":
			helpers.Logger.Debugln("chart closed by keyboard")
			return nil
		case "<Resize>":
			c.Render()
		}
	}
}

func (c *Chart) Render() {
	width, height := termui.TerminalDimensions()
	plotHeight := height * 2 / 3

	pricePlot := widgets.NewPlot()
	pricePlot.Title = ReportHeader(c.report) + " | close / EMA 20 / EMA 50"
	pricePlot.Data = PlotData(c.report.Bars)
	pricePlot.LineColors = []termui.Color{termui.ColorWhite, termui.ColorYellow, termui.ColorCyan}
	pricePlot.AxesColor = termui.ColorWhite
	pricePlot.SetRect(0, 0, width, plotHeight)

	signalList := widgets.NewList()
	signalList.Title = "Signals"
	signalList.Rows = SignalRows(c.report.Signals)
	signalList.SetRect(0, plotHeight, width/2, height)

	summaryParagraph := widgets.NewParagraph()
	summaryParagraph.Title = "Simulated P&L"
	summaryParagraph.BorderStyle.Fg = termui.ColorYellow
	summaryParagraph.TitleStyle.Fg = termui.ColorYellow
	summaryParagraph.Text = SummaryText(c.report.Summary)
	summaryParagraph.SetRect(width/2, plotHeight, width, height)

	termui.Render(pricePlot, signalList, summaryParagraph)
}

// PlotData returns the close, EMA 20 and EMA 50 lines of the bars
func PlotData(bars []models.Bar) [][]float64 {
	data := make([][]float64, 3)
	for i := range data {
		data[i] = make([]float64, len(bars))
	}
	for i, bar := range bars {
		data[0][i] = bar.Close
		data[1][i] = bar.EMA20
		data[2][i] = bar.EMA50
	}
	return data
}

// ReportHeader describes the series and its signal split on one line
func ReportHeader(report analytics.Report) string {
	header := fmt.Sprintf("%s seed %d (%s, %d bars)", report.Name, report.Seed, report.StrategyType, len(report.Bars))
	if closes := models.Closes(report.Bars); len(closes) > 0 {
		header += fmt.Sprintf(" close %.2f-%.2f", helpers.Min(closes), helpers.Max(closes))
	}
	return header + fmt.Sprintf(", %d buys / %d sells",
		report.SignalCount(models.SideTypeBuy), report.SignalCount(models.SideTypeSell))
}

func SignalRows(signals []models.Signal) []string {
	rows := make([]string, len(signals))
	for i, signal := range signals {
		color := "green"
		if signal.IsSell() {
			color = "red"
		}
		rows[i] = fmt.Sprintf("[%-4s](fg:%s) %s @ %.2f  %s", signal.Side, color, signal.Label, signal.Price, signal.Reason)
	}
	return rows
}

func SummaryText(summary analytics.Summary) string {
	text := fmt.Sprintf("Trades: %d\n", summary.TotalTrades)
	text += fmt.Sprintf("Wins: %d\n", summary.WinCount)
	text += fmt.Sprintf("Win rate: %.2f%%\n", summary.WinRate)
	text += fmt.Sprintf("Total P&L: %.2f\n", summary.TotalPnL)
	text += fmt.Sprintf("Mean P&L: %.2f%% (σ %.2f%%)\n", summary.MeanPnLPct, summary.StdDevPnLPct)
	return text
}
