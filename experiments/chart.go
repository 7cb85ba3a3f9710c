package experiments

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

const chartFile = "wins.html"

// writeChart renders a grouped bar chart of the results per matchup.
func writeChart(dir, name string, tallies []Tally) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    name,
			Subtitle: "results per matchup",
		}),
	)

	labels := make([]string, 0, len(tallies))
	firstWins := make([]opts.BarData, 0, len(tallies))
	secondWins := make([]opts.BarData, 0, len(tallies))
	draws := make([]opts.BarData, 0, len(tallies))
	for _, tally := range tallies {
		labels = append(labels, tally.Matchup.String())
		firstWins = append(firstWins, opts.BarData{Value: tally.FirstWins})
		secondWins = append(secondWins, opts.BarData{Value: tally.SecondWins})
		draws = append(draws, opts.BarData{Value: tally.Draws})
	}
	bar.SetXAxis(labels).
		AddSeries("first seat wins", firstWins).
		AddSeries("second seat wins", secondWins).
		AddSeries("draws", draws)

	f, err := os.Create(filepath.Join(dir, chartFile))
	if err != nil {
		return fmt.Errorf("failed to create chart: %w", err)
	}
	defer f.Close()
	if err := bar.Render(f); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}
