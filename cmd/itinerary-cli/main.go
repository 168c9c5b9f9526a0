// Command itinerary-cli prints a markdown itinerary as a colored day-by-day
// schedule.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"tripweaver/internal/itinerary"
	"tripweaver/internal/itinerary/persona"
	"tripweaver/pkg/utils"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err == nil {
		zap.ReplaceGlobals(logger)
		defer func() { _ = logger.Sync() }()
	}

	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error: %v", err))
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("itinerary-cli", flag.ContinueOnError)
	start := fs.String("start", "", "Trip start date (YYYY-MM-DD), defaults to today")
	personaID := fs.String("persona", "", "Narrative voice: "+personaNames())
	noColor := fs.Bool("no-color", false, "Disable colored output")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: itinerary-cli [flags] <itinerary.md>")
	}
	if *noColor {
		color.NoColor = true
	}

	raw, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("read itinerary: %w", err)
	}

	startDate, err := utils.ParseDate(*start)
	if err != nil {
		return err
	}

	days := itinerary.ParseItineraryDays(string(raw), startDate)
	if len(days) == 0 {
		zap.L().Debug("itinerary has no recognizable days, printing text")
		_, err := fmt.Fprintln(out, itinerary.Normalize(string(raw)))
		return err
	}

	render(out, itinerary.EnrichDays(days, persona.Parse(*personaID)))
	return nil
}

func personaNames() string {
	names := make([]string, 0, len(persona.All()))
	for _, p := range persona.All() {
		names = append(names, string(p))
	}
	return strings.Join(names, ", ")
}

var bucketColors = map[itinerary.ColorID]*color.Color{
	itinerary.ColorMorning:   color.New(color.FgYellow),
	itinerary.ColorAfternoon: color.New(color.FgCyan),
	itinerary.ColorEvening:   color.New(color.FgMagenta),
	itinerary.ColorDefault:   color.New(color.FgHiBlack),
}

func colorFor(id itinerary.ColorID) *color.Color {
	if c, ok := bucketColors[id]; ok {
		return c
	}
	return bucketColors[itinerary.ColorDefault]
}

func render(out io.Writer, days []itinerary.EnrichedDay) {
	heading := color.New(color.Bold, color.Underline)
	muted := color.New(color.FgHiBlack)

	for i, day := range days {
		if i > 0 {
			fmt.Fprintln(out)
		}
		heading.Fprintf(out, "Day %d  %s\n", day.DayNumber, day.Date.Format("Monday, Jan 2"))

		for _, bucket := range itinerary.GroupByTimeOfDay(day.Activities) {
			if len(bucket.Activities) == 0 {
				continue
			}
			c := colorFor(itinerary.ColorBucket(bucket.TimeOfDay))
			c.Fprintf(out, "  %s\n", bucket.TimeOfDay)
			for _, a := range bucket.Activities {
				fmt.Fprintf(out, "    %-9s %s %s\n", a.DisplayTime, c.Sprint(a.Title), muted.Sprintf("[%s]", a.TagBucket))
				if a.Narrative != "" {
					muted.Fprintf(out, "              %s\n", a.Narrative)
				}
			}
		}
	}
}
