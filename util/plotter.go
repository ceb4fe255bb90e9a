package util

import (
	"fmt"
	"io"

	"crowd-server/models/location"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

const nowBarColor = "#6366F1"
const barColor = "#A5B4FC"

// RenderPopularTimesChart writes an HTML bar chart of a 24 hour profile. The
// current hour is highlighted.
func RenderPopularTimesChart(w io.Writer, l location.Location, bestTime string) error {
	hours := make([]string, 0, len(l.PopularTimes))
	bars := make([]opts.BarData, 0, len(l.PopularTimes))
	for _, p := range l.PopularTimes {
		color := barColor
		if p.IsNow {
			color = nowBarColor
		}
		hours = append(hours, p.Hour)
		bars = append(bars, opts.BarData{
			Name:      p.Hour,
			Value:     p.Score,
			ItemStyle: &opts.ItemStyle{Color: color},
		})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: l.Name + " - Popular Times",
			Width:     "900px",
			Height:    "400px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    l.Name,
			Subtitle: "Best time to visit: " + bestTime,
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Popularity", Max: 100}),
	)
	bar.SetXAxis(hours).AddSeries("Popularity", bars)

	if err := bar.Render(w); err != nil {
		return fmt.Errorf("failed to render popular times chart for %s: %w", l.ID, err)
	}
	return nil
}

// RenderCrowdMap writes an HTML map with one scatter series per crowd level.
func RenderCrowdMap(w io.Writer, locations []location.Location) error {
	byLevel := map[location.CrowdLevel][]opts.GeoData{}
	for _, l := range locations {
		byLevel[l.CrowdLevel] = append(byLevel[l.CrowdLevel], opts.GeoData{
			Name:  l.Name,
			Value: []float64{l.Lng, l.Lat, float64(l.CurrentCount)},
		})
	}

	geo := charts.NewGeo()
	geo.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Live Crowd Map",
			Width:     "1000px",
			Height:    "700px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Live Crowd Map",
			Subtitle: fmt.Sprintf("%d locations", len(locations)),
		}),
		charts.WithGeoComponentOpts(opts.GeoComponent{
			Map:    "world",
			Silent: opts.Bool(true),
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)

	for _, level := range []location.CrowdLevel{location.CrowdLevelLow, location.CrowdLevelMedium, location.CrowdLevelHigh} {
		geo.AddSeries(string(level), types.ChartScatter, byLevel[level],
			charts.WithItemStyleOpts(opts.ItemStyle{Color: level.Color()}),
			charts.WithLabelOpts(opts.Label{
				Show:      opts.Bool(false),
				Formatter: "{b}",
			}),
		)
	}

	if err := geo.Render(w); err != nil {
		return fmt.Errorf("failed to render crowd map: %w", err)
	}
	return nil
}
