package views

import (
	"fmt"
	"math"
	"strings"

	"moodlog/internal/adapters/tui/styles"
	"moodlog/internal/domain"
)

// Axis ranges are fixed so charts of different lists compare visually
const (
	MoodAxisMin      = 0.0
	MoodAxisMax      = 10.0
	SentimentAxisMin = -1.0
	SentimentAxisMax = 1.0
)

// Series legends
const (
	MoodSeriesLabel      = "My Mood (1-10)"
	SentimentSeriesLabel = "AI Sentiment (-1 to 1)"
)

const (
	moodMarker      = "●"
	sentimentMarker = "◆"
	gridCell        = "┈"
	minGroupWidth   = 3
	maxGroupWidth   = 7
	axisWidth       = 4
)

// moodTicks are the left-axis values that get a gridline
var moodTicks = []float64{0, 2, 4, 6, 8, 10}

// Chart is one built instance of the dual-axis chart: a column group per
// entry, mood on the left axis and sentiment on the right.
type Chart struct {
	Labels    []string
	Mood      []float64
	Sentiment []float64
}

// NewChart builds a chart from entries in list order. Labels are not
// deduplicated; two entries on the same day get two groups.
func NewChart(entries []domain.Entry) *Chart {
	c := &Chart{
		Labels:    make([]string, len(entries)),
		Mood:      make([]float64, len(entries)),
		Sentiment: make([]float64, len(entries)),
	}
	for i, e := range entries {
		c.Labels[i] = e.DisplayDate()
		c.Mood[i] = float64(e.Mood)
		c.Sentiment[i] = e.Sentiment
	}
	return c
}

// Len returns the number of column groups
func (c *Chart) Len() int {
	return len(c.Labels)
}

// Render draws the chart into width columns and height rows
func (c *Chart) Render(width, height int) string {
	if c.Len() == 0 {
		return styles.MutedText.Render("No data to chart.")
	}

	plotH := max(height-2, 5)
	plotW := max(width-2*axisWidth-2, minGroupWidth)

	groups := c.Len()
	if limit := plotW / minGroupWidth; groups > limit {
		groups = limit
	}
	groupW := min(max(plotW/groups, minGroupWidth), maxGroupWidth)
	cols := groups * groupW

	cells := make([][]string, plotH)
	for r := range cells {
		cells[r] = make([]string, cols)
		fill := " "
		if isMoodTickRow(r, plotH) {
			fill = styles.ChartGrid.Render(gridCell)
		}
		for col := range cells[r] {
			cells[r][col] = fill
		}
	}

	for i := 0; i < groups; i++ {
		moodCol := i*groupW + (groupW-1)/2
		cells[moodRow(c.Mood[i], plotH)][moodCol] = styles.ChartMood.Render(moodMarker)
		cells[sentimentRow(c.Sentiment[i], plotH)][moodCol+1] = styles.ChartSenti.Render(sentimentMarker)
	}

	var b strings.Builder
	for r := 0; r < plotH; r++ {
		b.WriteString(styles.ChartAxis.Render(leftLabel(r, plotH) + "┤"))
		b.WriteString(strings.Join(cells[r], ""))
		b.WriteString(styles.ChartAxis.Render("│" + rightLabel(r, plotH)))
		b.WriteString("\n")
	}

	b.WriteString(strings.Repeat(" ", axisWidth))
	for i := 0; i < groups; i++ {
		b.WriteString(styles.ChartAxis.Render(fitLabel(c.Labels[i], groupW)))
	}
	b.WriteString("\n")

	b.WriteString(styles.ChartMood.Render(moodMarker + " " + MoodSeriesLabel))
	b.WriteString("   ")
	b.WriteString(styles.ChartSenti.Render(sentimentMarker + " " + SentimentSeriesLabel))
	if hidden := c.Len() - groups; hidden > 0 {
		b.WriteString("   ")
		b.WriteString(styles.MutedText.Render(fmt.Sprintf("+%d more not shown", hidden)))
	}

	return b.String()
}

// scaleRow maps v in [lo, hi] to a row, row 0 being the top
func scaleRow(v, lo, hi float64, rows int) int {
	v = math.Max(lo, math.Min(hi, v))
	frac := (v - lo) / (hi - lo)
	return rows - 1 - int(math.Round(frac*float64(rows-1)))
}

func moodRow(v float64, rows int) int {
	return scaleRow(v, MoodAxisMin, MoodAxisMax, rows)
}

func sentimentRow(v float64, rows int) int {
	return scaleRow(v, SentimentAxisMin, SentimentAxisMax, rows)
}

// Only the mood axis draws gridlines
func isMoodTickRow(r, rows int) bool {
	for _, t := range moodTicks {
		if moodRow(t, rows) == r {
			return true
		}
	}
	return false
}

func leftLabel(r, rows int) string {
	for _, t := range moodTicks {
		if moodRow(t, rows) == r {
			return fmt.Sprintf("%*.0f", axisWidth-1, t)
		}
	}
	return strings.Repeat(" ", axisWidth-1)
}

func rightLabel(r, rows int) string {
	for _, t := range []float64{SentimentAxisMax, 0, SentimentAxisMin} {
		if sentimentRow(t, rows) == r {
			return fmt.Sprintf("%-*.0f", axisWidth-1, t)
		}
	}
	return strings.Repeat(" ", axisWidth-1)
}

func fitLabel(label string, width int) string {
	r := []rune(label)
	if len(r) > width-1 {
		r = r[:width-1]
	}
	return string(r) + strings.Repeat(" ", width-len(r))
}

// ChartModel owns the current chart instance. Each SetEntries call discards
// the previous instance and builds a new one.
type ChartModel struct {
	chart  *Chart
	builds int
	width  int
	height int
}

// NewChartModel creates an empty chart model
func NewChartModel() *ChartModel {
	return &ChartModel{chart: NewChart(nil), height: 12}
}

// SetEntries rebuilds the chart from entries
func (m *ChartModel) SetEntries(entries []domain.Entry) {
	m.chart = nil
	m.chart = NewChart(entries)
	m.builds++
}

// Chart returns the current instance
func (m *ChartModel) Chart() *Chart {
	return m.chart
}

// Builds returns how many instances have been built
func (m *ChartModel) Builds() int {
	return m.builds
}

// SetSize updates the drawing area
func (m *ChartModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// View renders the current chart
func (m *ChartModel) View() string {
	width := m.width
	if width <= 0 {
		width = 80
	}
	return m.chart.Render(width, m.height)
}
