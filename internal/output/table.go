package output

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/mobil-koeln/treni-cli/internal/feed"
	"github.com/mobil-koeln/treni-cli/internal/models"
	"github.com/mobil-koeln/treni-cli/internal/operators"
)

// Status markers shown after the destination
const (
	MarkerDeparting  = "DEPARTING NOW"
	MarkerBus        = "BUS"
	MarkerIncomplete = "DETAILS N/A"
)

// TableOptions configures the table output
type TableOptions struct {
	Colors      *Colors
	ShowHeader  bool
	ShowCarrier bool
	ShowSummary bool
}

// RenderBoard renders a station board as a formatted table
func RenderBoard(w io.Writer, board *models.Board, opts TableOptions) {
	c := opts.Colors
	if c == nil {
		c = NewColors(ColorNever)
	}

	if opts.ShowHeader && board != nil {
		_, _ = fmt.Fprintf(w, "%s  %s\n\n",
			c.Header("%s - %s", board.Station.Label(), DirectionTitle(board.Direction)),
			c.Muted("updated %s", board.FetchedAt.Format("15:04:05")),
		)
	}

	if board.IsEmpty() {
		_, _ = fmt.Fprintln(w, EmptyBoardMessage)
		return
	}

	RenderTrains(w, board.Trains, opts)

	if board.Dropped > 0 {
		_, _ = fmt.Fprintf(w, "\n%s\n", c.Muted("%d entries without train number or destination skipped", board.Dropped))
	}
}

// RenderTrains renders one table row per train
func RenderTrains(w io.Writer, trains []models.Train, opts TableOptions) {
	if len(trains) == 0 {
		_, _ = fmt.Fprintln(w, EmptyBoardMessage)
		return
	}

	c := opts.Colors
	if c == nil {
		c = NewColors(ColorNever)
	}

	for _, t := range trains {
		// Time
		timeStr := t.Time
		if timeStr == "" {
			timeStr = "??:??"
		}

		// Service and number (padded to 12 runes)
		number := t.Number
		if name := feed.ServiceName(t.Icon); name != "" {
			number = t.Icon + " " + number
		}
		numberStr := padRight(truncate(number, 12), 12)

		// Platform (fixed 7-char width: "Bin.XX " or spaces)
		platformStr := "       "
		if t.Platform != "" {
			platformStr = fmt.Sprintf("Bin.%-3s", truncate(t.Platform, 3))
		}

		line := fmt.Sprintf("%s %s  %s  %s %s",
			c.Time(timeStr),
			c.FormatDelay(t.Delay),
			c.Number(numberStr),
			c.Platform(platformStr),
			c.Dest(t.Destination),
		)

		if opts.ShowCarrier && t.Carrier != "" {
			line += "  " + c.Carrier(operators.Label(t.Carrier))
		}
		if markers := statusMarkers(c, t); markers != "" {
			line += "  " + markers
		}
		_, _ = fmt.Fprintln(w, line)

		if opts.ShowSummary {
			_, _ = fmt.Fprintf(w, "                              %s\n", c.Muted(TrainSummary(t)))
		}
	}
}

func statusMarkers(c *Colors, t models.Train) string {
	var markers []string
	if t.IsBlinking {
		markers = append(markers, c.Departing("[%s]", MarkerDeparting))
	}
	if t.IsReplacedByBus {
		markers = append(markers, c.Bus("[%s]", MarkerBus))
	}
	if t.IsIncomplete {
		markers = append(markers, c.Incomplete("[%s]", MarkerIncomplete))
	}
	return strings.Join(markers, " ")
}

// RenderStations renders catalog stations as a formatted list
func RenderStations(w io.Writer, stations []models.Station, opts TableOptions) {
	if len(stations) == 0 {
		_, _ = fmt.Fprintln(w, "No stations found.")
		return
	}

	c := opts.Colors
	if c == nil {
		c = NewColors(ColorNever)
	}

	if opts.ShowHeader {
		_, _ = fmt.Fprintln(w, c.Header("Found stations:"))
		_, _ = fmt.Fprintln(w)
	}

	for _, st := range stations {
		_, _ = fmt.Fprintf(w, "  %s %s  %s\n",
			c.Number("%6s", st.ID),
			st.Name,
			c.Muted(st.Region),
		)
	}
}

// DirectionTitle is the heading used for a board direction
func DirectionTitle(d models.Direction) string {
	if d == models.Arrivals {
		return "Arrivals"
	}
	return "Departures"
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

func padRight(s string, n int) string {
	if pad := n - utf8.RuneCountInString(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}
