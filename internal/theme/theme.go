package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the desktop.
type Styles struct {
	Desktop           *lipgloss.Style
	DesktopIcon       *lipgloss.Style
	TitleActive       *lipgloss.Style
	TitleInactive     *lipgloss.Style
	Controls          *lipgloss.Style
	CloseControl      *lipgloss.Style
	Border            *lipgloss.Style
	BorderActive      *lipgloss.Style
	Body              *lipgloss.Style
	Status            *lipgloss.Style
	Taskbar           *lipgloss.Style
	StartButton       *lipgloss.Style
	StartButtonOpen   *lipgloss.Style
	TaskButton        *lipgloss.Style
	TaskButtonActive  *lipgloss.Style
	Tray              *lipgloss.Style
	MenuHeader        *lipgloss.Style
	MenuItem          *lipgloss.Style
	MenuSelected      *lipgloss.Style
	MenuBorder        *lipgloss.Style
	FilterPrompt      *lipgloss.Style
	FilterPlaceholder *lipgloss.Style
	Error             *lipgloss.Style
	Info              *lipgloss.Style
	Highlight         *lipgloss.Style
	Success           *lipgloss.Style
}

var defaultStyles = Styles{
	Desktop: ptr(
		lipgloss.NewStyle().Background(lipgloss.Color("24")),
	),
	DesktopIcon: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("24")),
	),
	TitleActive: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("26")).Bold(true),
	),
	TitleInactive: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("67")),
	),
	Controls: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("33")),
	),
	CloseControl: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("160")).Bold(true),
	),
	Border: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("67")).Background(lipgloss.Color("254")),
	),
	BorderActive: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("26")).Background(lipgloss.Color("254")),
	),
	Body: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("235")).Background(lipgloss.Color("254")),
	),
	Status: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("242")).Background(lipgloss.Color("252")),
	),
	Taskbar: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("25")),
	),
	StartButton: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("28")).Bold(true).Italic(true),
	),
	StartButtonOpen: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("22")).Bold(true).Italic(true),
	),
	TaskButton: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("32")),
	),
	TaskButtonActive: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("18")).Bold(true),
	),
	Tray: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("31")),
	),
	MenuHeader: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("26")).Bold(true),
	),
	MenuItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("235")).Background(lipgloss.Color("255")),
	),
	MenuSelected: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("33")).Bold(true),
	),
	MenuBorder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("26")).Background(lipgloss.Color("255")),
	),
	FilterPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("28")).Background(lipgloss.Color("255")).Bold(true),
	),
	FilterPlaceholder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Background(lipgloss.Color("255")),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("160")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	),
	Highlight: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("33")),
	),
	Success: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("28")).Bold(true),
	),
}

// Default exposes the standard style set used across the desktop.
func Default() *Styles {
	return &defaultStyles
}

// Render applies style to text, tolerating a nil style.
func Render(style *lipgloss.Style, text string) string {
	if style == nil || text == "" {
		return text
	}
	return style.Render(text)
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
