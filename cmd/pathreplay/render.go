package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/pathreplay/session"
)

// metricPrefix selects this program's metrics from the default registry.
const metricPrefix = "pathreplay_"

var (
	colorAccent  = lipgloss.Color("#2CD7C7")
	colorPath    = lipgloss.Color("#F4D03F")
	colorMuted   = lipgloss.Color("#5C7A84")
	colorWarning = lipgloss.Color("#E67E22")
)

// styles holds the lipgloss styles for one output stream.
type styles struct {
	title   lipgloss.Style
	label   lipgloss.Style
	path    lipgloss.Style
	muted   lipgloss.Style
	warning lipgloss.Style
	box     lipgloss.Style
}

func newStyles(noColor bool) styles {
	if noColor {
		plain := lipgloss.NewStyle()
		return styles{
			title:   plain.Bold(true),
			label:   plain.Width(10),
			path:    plain,
			muted:   plain,
			warning: plain,
			box:     plain.Border(lipgloss.NormalBorder()).Padding(0, 1),
		}
	}

	return styles{
		title:   lipgloss.NewStyle().Bold(true).Foreground(colorAccent),
		label:   lipgloss.NewStyle().Width(10).Foreground(colorMuted),
		path:    lipgloss.NewStyle().Bold(true).Foreground(colorPath),
		muted:   lipgloss.NewStyle().Foreground(colorMuted),
		warning: lipgloss.NewStyle().Foreground(colorWarning),
		box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(0, 1),
	}
}

// renderStep formats one replay tick.
func renderStep(i, n int, name string, dist float64, st styles) string {
	return fmt.Sprintf("%s %s %s",
		st.muted.Render(fmt.Sprintf("step %d/%d", i+1, n)),
		st.title.Render(name),
		st.muted.Render("dist "+session.FormatDistance(dist)),
	)
}

// renderReport formats the results panel: path, distance, visit order and
// the per-node distance table.
func renderReport(rep session.Report, names map[string]string, st styles) string {
	row := func(k, v string) string {
		return lipgloss.JoinHorizontal(lipgloss.Top, st.label.Render(k), v)
	}

	var lines []string
	lines = append(lines, st.title.Render("Shortest paths from "+label(names, rep.Source)))
	if rep.Target != "" {
		if rep.PathFound {
			lines = append(lines,
				row("path", st.path.Render(joinLabels(names, rep.Path, " → "))),
				row("distance", st.path.Render(session.FormatDistance(rep.Distance))),
			)
		} else {
			lines = append(lines, row("path", st.warning.Render("no path to "+label(names, rep.Target))))
		}
	}
	lines = append(lines, row("visited", fmt.Sprintf("%s %s",
		joinLabels(names, rep.Visited, ", "),
		st.muted.Render(fmt.Sprintf("(%d/%d)", len(rep.Visited), rep.Frame.Len)),
	)))
	if rep.NegativeWeights {
		lines = append(lines, st.warning.Render("negative edge weights: distances may be wrong"))
	}
	lines = append(lines, "", renderTable(rep.Nodes, names, st))

	return st.box.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func renderTable(rows []session.NodeDistance, names map[string]string, st styles) string {
	width := len("node")
	for _, r := range rows {
		width = max(width, lipgloss.Width(label(names, r.ID)))
	}
	nameCol := lipgloss.NewStyle().Width(width + 2)
	distCol := lipgloss.NewStyle().Width(10)

	lines := []string{st.muted.Render(nameCol.Render("node") + distCol.Render("distance"))}
	for _, r := range rows {
		var marks []string
		if r.Visited {
			marks = append(marks, "visited")
		}
		if r.OnPath {
			marks = append(marks, "path")
		}
		line := nameCol.Render(label(names, r.ID)) + distCol.Render(session.FormatDistance(r.Distance)) +
			st.muted.Render(strings.Join(marks, " "))
		if r.OnPath {
			line = st.path.Render(line)
		}
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}

// renderMetrics gathers this program's metrics from g and formats one line
// per series.
func renderMetrics(g prometheus.Gatherer, st styles) (string, error) {
	mfs, err := g.Gather()
	if err != nil {
		return "", err
	}

	var lines []string
	for _, mf := range mfs {
		if !strings.HasPrefix(mf.GetName(), metricPrefix) {
			continue
		}
		for _, m := range mf.GetMetric() {
			var labels []string
			for _, lp := range m.GetLabel() {
				labels = append(labels, lp.GetName()+"="+lp.GetValue())
			}
			series := mf.GetName()
			if len(labels) > 0 {
				series += "{" + strings.Join(labels, ",") + "}"
			}
			switch {
			case m.GetCounter() != nil:
				lines = append(lines, fmt.Sprintf("%s %g", series, m.GetCounter().GetValue()))
			case m.GetHistogram() != nil:
				h := m.GetHistogram()
				lines = append(lines, fmt.Sprintf("%s count=%d sum=%g", series, h.GetSampleCount(), h.GetSampleSum()))
			}
		}
	}
	sort.Strings(lines)

	return st.title.Render("Metrics") + "\n" + st.muted.Render(strings.Join(lines, "\n")), nil
}

func joinLabels(names map[string]string, ids []string, sep string) string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = label(names, id)
	}

	return strings.Join(out, sep)
}
