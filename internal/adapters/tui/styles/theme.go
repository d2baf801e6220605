package styles

import (
	"github.com/charmbracelet/lipgloss"

	"moodlog/internal/domain"
)

var (
	// Colors
	Primary   = lipgloss.Color("#7C3AED") // Purple
	Secondary = lipgloss.Color("#10B981") // Green
	Muted     = lipgloss.Color("#6B7280") // Gray
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#EF4444") // Red
	Black     = lipgloss.Color("#000000")

	// Series colors
	MoodSeries      = lipgloss.Color("#60A5FA") // Blue
	SentimentSeries = lipgloss.Color("#EC4899") // Pink

	// Base styles
	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	// Panels
	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Muted).
		Padding(0, 1)

	PanelTitle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	// Entry cards
	Card = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(Muted).
		PaddingLeft(1)

	CardSelected = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(Primary).
			PaddingLeft(1)

	CardMeta = lipgloss.NewStyle().
			Foreground(Muted)

	AnomalyBadge = lipgloss.NewStyle().
			Background(Warning).
			Foreground(Black).
			Bold(true).
			Padding(0, 1)

	// Stats tiers
	ScorePositive = lipgloss.NewStyle().Foreground(Secondary).Bold(true)
	ScoreNeutral  = lipgloss.NewStyle().Foreground(Warning).Bold(true)
	ScoreNegative = lipgloss.NewStyle().Foreground(Error).Bold(true)

	// Chart
	ChartAxis  = lipgloss.NewStyle().Foreground(Muted)
	ChartGrid  = lipgloss.NewStyle().Foreground(lipgloss.Color("#374151"))
	ChartMood  = lipgloss.NewStyle().Foreground(MoodSeries)
	ChartSenti = lipgloss.NewStyle().Foreground(SentimentSeries)

	// Input styles
	InputLabel = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	InputField = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(0, 1)

	InputFocused = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Secondary).
			Padding(0, 1)

	// Help styles
	HelpKey = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Muted)

	HelpSeparator = lipgloss.NewStyle().
			Foreground(Muted).
			SetString(" • ")

	// Message styles
	Success = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	ErrorMsg = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	// Muted text style (for using Muted color as a style)
	MutedText = lipgloss.NewStyle().
			Foreground(Muted)
)

// TierStyle returns the score style for a stats tier
func TierStyle(t domain.Tier) lipgloss.Style {
	switch t {
	case domain.TierPositive:
		return ScorePositive
	case domain.TierNeutral:
		return ScoreNeutral
	default:
		return ScoreNegative
	}
}
