package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Item                  *lipgloss.Style
	ItemIndicator         *lipgloss.Style
	SelectedItemIndicator *lipgloss.Style
	SelectedItem          *lipgloss.Style
	URL                   *lipgloss.Style
	Highlight             *lipgloss.Style
	Section               *lipgloss.Style
	Group                 *lipgloss.Style
	Error                 *lipgloss.Style
	Info                  *lipgloss.Style
	Footer                *lipgloss.Style
	Filter                *lipgloss.Style
	FilterPrompt          *lipgloss.Style
	FilterPlaceholder     *lipgloss.Style
	Cursor                *lipgloss.Style
	Loading               *lipgloss.Style

	// GroupColors is indexed by an item's group colour.
	GroupColors []lipgloss.Color
}

var groupColors = []lipgloss.Color{"33", "34", "136", "166", "125", "61", "37", "64", "160", "245"}

var darkStyles = Styles{
	Item: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	ItemIndicator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	SelectedItemIndicator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Background(lipgloss.Color("238")),
	),
	SelectedItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	URL: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
	),
	Highlight: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
	),
	Section: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	Group: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Filter: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	FilterPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	FilterPlaceholder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Cursor: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("33")),
	),
	Loading: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Italic(true),
	),
	GroupColors: groupColors,
}

var lightStyles = Styles{
	Item: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	ItemIndicator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	),
	SelectedItemIndicator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("27")).Background(lipgloss.Color("254")),
	),
	SelectedItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("232")).Background(lipgloss.Color("254")).Bold(true),
	),
	URL: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
	),
	Highlight: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("166")).Bold(true),
	),
	Section: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Bold(true),
	),
	Group: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("160")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
	),
	Filter: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("235")),
	),
	FilterPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("28")).Bold(true),
	),
	FilterPlaceholder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("247")),
	),
	Cursor: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("27")),
	),
	Loading: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("27")).Italic(true),
	),
	GroupColors: groupColors,
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &darkStyles
}

// Dark returns the dark style set.
func Dark() *Styles {
	return &darkStyles
}

// Light returns the light style set.
func Light() *Styles {
	return &lightStyles
}

// For returns the dark or light style set.
func For(dark bool) *Styles {
	if dark {
		return Dark()
	}
	return Light()
}

// GroupStyle returns the accent style for a group colour. Negative colours
// fall back to the plain group style.
func (s *Styles) GroupStyle(color int) lipgloss.Style {
	if color < 0 || len(s.GroupColors) == 0 {
		return *s.Group
	}
	return s.Group.Foreground(s.GroupColors[color%len(s.GroupColors)])
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
