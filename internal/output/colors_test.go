package output

import (
	"fmt"
	"regexp"
	"testing"

	"github.com/fatih/color"

	"github.com/mobil-koeln/treni-cli/internal/testutil"
)

var ansi = regexp.MustCompile("\033\\[[0-9;]*m")

func stripANSI(s string) string {
	return ansi.ReplaceAllString(s, "")
}

// noColor forces plain output for the duration of a test
func noColor(t *testing.T) *Colors {
	t.Helper()
	old := color.NoColor
	t.Cleanup(func() { color.NoColor = old })
	color.NoColor = true
	return NewColors(ColorNever)
}

func TestParseColorMode(t *testing.T) {
	tests := []struct {
		input string
		want  ColorMode
	}{
		{"always", ColorAlways},
		{"never", ColorNever},
		{"auto", ColorAuto},
		{"", ColorAuto},        // default
		{"invalid", ColorAuto}, // default
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			testutil.AssertEqual(t, ParseColorMode(tt.input), tt.want)
		})
	}
}

func TestNewColors_NeverMode(t *testing.T) {
	c := noColor(t)

	testutil.AssertEqual(t, c.Time("14:30"), "14:30")
	testutil.AssertEqual(t, c.Delay("+2"), "+2")
	testutil.AssertEqual(t, c.DelayHigh("+12"), "+12")
	testutil.AssertEqual(t, c.Number("9547"), "9547")
	testutil.AssertEqual(t, c.Platform("Bin.7"), "Bin.7")
	testutil.AssertEqual(t, c.Dest("ROMA TERMINI"), "ROMA TERMINI")
	testutil.AssertEqual(t, c.Carrier("TI"), "TI")
	testutil.AssertEqual(t, c.Departing("DEPARTING NOW"), "DEPARTING NOW")
	testutil.AssertEqual(t, c.Bus("BUS"), "BUS")
	testutil.AssertEqual(t, c.Incomplete("DETAILS N/A"), "DETAILS N/A")
	testutil.AssertEqual(t, c.Header("Partenze"), "Partenze")
	testutil.AssertEqual(t, c.Muted("details"), "details")
}

func TestNewColors_AlwaysMode(t *testing.T) {
	old := color.NoColor
	defer func() { color.NoColor = old }()

	c := NewColors(ColorAlways)

	for _, got := range []string{c.Time("14:30"), c.DelayHigh("+12"), c.Departing("DEPARTING NOW")} {
		testutil.AssertContains(t, got, "\033[")
	}
	testutil.AssertEqual(t, stripANSI(c.Number("9547")), "9547")
}

func TestFormatDelay_NoColor(t *testing.T) {
	c := noColor(t)

	tests := []struct {
		name  string
		delay int
		want  string
	}{
		{"zero delay", 0, "    "},
		{"negative treated as on time", -3, "    "},
		{"minor delay", 5, "  +5"},
		{"major delay", 12, " +12"},
		{"large delay", 123, "+123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertEqual(t, c.FormatDelay(tt.delay), tt.want)
		})
	}
}

func TestFormatDelay_WithColor(t *testing.T) {
	old := color.NoColor
	defer func() { color.NoColor = old }()

	c := NewColors(ColorAlways)

	testutil.AssertNotContains(t, c.FormatDelay(0), "\033[")
	testutil.AssertContains(t, c.FormatDelay(5), "\033[")
	testutil.AssertEqual(t, stripANSI(c.FormatDelay(12)), " +12")
}

func TestFormatDelay_Width(t *testing.T) {
	c := noColor(t)

	// All formatted delays are exactly 4 characters wide
	for _, delay := range []int{0, 1, 5, 9, 10, 15, 99, 100, 999} {
		t.Run(fmt.Sprint(delay), func(t *testing.T) {
			testutil.AssertEqual(t, len(c.FormatDelay(delay)), 4)
		})
	}
}

func TestColors_Sprintf(t *testing.T) {
	c := noColor(t)

	testutil.AssertEqual(t, c.Time("%02d:%02d", 14, 30), "14:30")
	testutil.AssertEqual(t, c.Number("FR %d", 9547), "FR 9547")
	testutil.AssertEqual(t, c.Platform("Bin.%s", "7"), "Bin.7")
}
