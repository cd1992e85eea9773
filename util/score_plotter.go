package util

import (
	"fmt"
	"log"
	"os"

	"pb-server/models"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// PlotPreferenceScores generates an HTML file rendering the preference score
// of every section winner in a built package. Handy for eyeballing whether
// the selection looks sane on real packets.
func PlotPreferenceScores(layout models.FinalTripLayout) {
	var names []string
	var bars []opts.BarData

	for i, section := range layout.Sections {
		label := fmt.Sprintf("%d:%s", i, section.Type)
		var scores *models.ComponentScores
		switch section.Type {
		case models.SECTION_FLIGHT:
			scores = section.Flight.Scores
		case models.SECTION_STAY:
			scores = section.Stay.Hotel.Scores
		case models.SECTION_TRANSFER:
			scores = section.Transfer.Scores
		}
		if scores == nil {
			continue
		}
		names = append(names, label)
		bars = append(bars, opts.BarData{Value: scores.PreferenceScore})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Package Preference Scores",
			Width:     "800px",
			Height:    "600px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: "Preference score per section winner",
		}),
	)

	bar.SetXAxis(names)
	bar.AddSeries("preference_score", bars,
		charts.WithLabelOpts(opts.Label{
			Show:      opts.Bool(true),
			Formatter: "{c}",
		}),
	)

	// Create an HTML file to render the chart.
	f, err := os.Create("package_scores.html")
	if err != nil {
		log.Fatalf("Failed to create HTML file: %v", err)
	}
	defer f.Close()

	// Render the chart into the HTML file.
	if err := bar.Render(f); err != nil {
		log.Fatalf("Failed to render chart: %v", err)
	}

	fmt.Println("Package scores chart generated: package_scores.html")
}
