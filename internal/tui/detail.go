package tui

import (
	"strings"

	"github.com/mobil-koeln/treni-cli/internal/feed"
	"github.com/mobil-koeln/treni-cli/internal/models"
	"github.com/mobil-koeln/treni-cli/internal/operators"
	"github.com/mobil-koeln/treni-cli/internal/output"
)

// renderDetail renders the metadata pane for the selected train
func (m Model) renderDetail(width int) string {
	t, ok := m.selectedTrain()
	if !ok {
		return ""
	}

	var b strings.Builder

	// Title with tags
	b.WriteString(styleHeader.Render(truncate(t.Destination+" - "+t.Number, width)))
	var tags []string
	if t.IsDelayed {
		tags = append(tags, styleTag.Background(colorRed).Render(output.DelayTag(t)))
	}
	if t.IsBlinking {
		tags = append(tags, styleTag.Background(colorBlue).Render("Departing now"))
	}
	if len(tags) > 0 {
		b.WriteString("\n")
		b.WriteString(strings.Join(tags, " "))
	}

	b.WriteString("\n\n")
	b.WriteString(styleMuted.Render("Info"))
	b.WriteString("\n")

	scheduled := "Scheduled departure"
	if m.direction == models.Arrivals {
		scheduled = "Scheduled arrival"
	}
	b.WriteString(detailRow(scheduled, t.Time))
	b.WriteString(detailRow("Platform", orDash(t.Platform)))
	b.WriteString(detailRow("Train", trainLabel(t)))
	if name := feed.ServiceName(t.Icon); name != "" {
		b.WriteString(detailRow("Service", name))
	}

	if t.IsReplacedByBus {
		b.WriteString("\n")
		b.WriteString(styleBus.Render(wrap(output.BusNotice, width)))
	}
	if t.IsIncomplete {
		b.WriteString("\n")
		b.WriteString(styleWarning.Render(wrap("⚠ "+output.IncompleteNotice, width)))
	}

	return b.String()
}

func detailRow(label, value string) string {
	return styleMuted.Render(padRight(label, 20)) + value + "\n"
}

// trainLabel prefers the carrier's full name in the detail pane
func trainLabel(t models.Train) string {
	if name := operators.GetOperatorName(t.Carrier); name != "" {
		return name + " " + t.Number
	}
	return output.TrainLabel(t)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// wrap breaks text into lines of at most width runes at word boundaries
func wrap(text string, width int) string {
	if width <= 0 {
		return text
	}
	var lines []string
	var line string
	for _, word := range strings.Fields(text) {
		switch {
		case line == "":
			line = word
		case runeLen(line)+1+runeLen(word) <= width:
			line += " " + word
		default:
			lines = append(lines, line)
			line = word
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
