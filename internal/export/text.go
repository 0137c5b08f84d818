package export

import (
	"fmt"
	"strings"

	"github.com/dmagallanes2/coldcallingassistant/internal/calllog"
	"github.com/dmagallanes2/coldcallingassistant/internal/stats"
)

// reportLine is one "label: value" pair of a report section. Text and PDF
// renderers share these so their numbers cannot drift apart.
type reportLine struct {
	label string
	value string
}

type reportSection struct {
	title string
	lines []reportLine
}

// reportSections lays out the report content in its fixed order: time
// statistics, call summary, reason breakdown. A nil summary yields no
// sections; the renderers emit a "no data" body instead.
func reportSections(s *stats.Summary) []reportSection {
	if s == nil {
		return nil
	}

	hours, minutes := s.DurationParts()
	timeSec := reportSection{
		title: "Time Statistics",
		lines: []reportLine{
			{"Start", s.StartTime},
			{"End", s.EndTime},
			{"Duration", fmt.Sprintf("%dh %dm", hours, minutes)},
			{"Calls per hour", stats.FormatRate(s.CallsPerHour)},
		},
	}

	callSec := reportSection{
		title: "Call Summary",
		lines: []reportLine{
			{"Total calls", fmt.Sprintf("%d", s.TotalCalls)},
			{"Interested", stats.FormatPct(s.InterestedPct) + "%"},
			{"Rejected", stats.FormatPct(s.RejectedPct) + "%"},
		},
	}

	reasonSec := reportSection{title: "Reason Breakdown"}
	// The summary map is unordered; emit reasons in declaration order so the
	// document is deterministic.
	for _, reason := range calllog.Reasons() {
		pct, ok := s.ReasonPcts[reason]
		if !ok {
			continue
		}
		reasonSec.lines = append(reasonSec.lines, reportLine{reason.Label(), stats.FormatPct(pct) + "%"})
	}

	return []reportSection{timeSec, callSec, reasonSec}
}

const reportTitle = "Cold Call Report"

const emptyReportBody = "No calls logged."

func renderText(s *stats.Summary, day string) ([]byte, error) {
	var b strings.Builder

	title := fmt.Sprintf("%s - %s", reportTitle, day)
	b.WriteString(title + "\n")
	b.WriteString(strings.Repeat("=", len(title)) + "\n\n")

	sections := reportSections(s)
	if sections == nil {
		b.WriteString(emptyReportBody + "\n")
		return []byte(b.String()), nil
	}

	for i, sec := range sections {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(sec.title + "\n")
		b.WriteString(strings.Repeat("-", len(sec.title)) + "\n")

		width := 0
		for _, ln := range sec.lines {
			if len(ln.label) > width {
				width = len(ln.label)
			}
		}
		for _, ln := range sec.lines {
			b.WriteString(fmt.Sprintf("%-*s  %s\n", width+1, ln.label+":", ln.value))
		}
	}
	return []byte(b.String()), nil
}
