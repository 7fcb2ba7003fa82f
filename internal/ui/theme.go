package ui

import "github.com/charmbracelet/lipgloss"

// Theme defines how notifications and listings look on the terminal.
type Theme struct {
	Icon     string
	AccentFg string
	TextFg   string
	MutedFg  string
	Border   string
	BorderFg string
	// Plain disables styling, for output that is not a terminal.
	Plain bool
}

// DefaultTheme returns the default toast look.
func DefaultTheme() Theme {
	return Theme{
		Icon:     "✓",
		AccentFg: "205",
		TextFg:   "252",
		MutedFg:  "241",
		Border:   "rounded",
		BorderFg: "240",
	}
}

// AccentStyle returns the style for the toast icon and trigger indexes.
func (t Theme) AccentStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.AccentFg)).Bold(true)
}

// TextStyle returns the style for message text.
func (t Theme) TextStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.TextFg))
}

// MutedStyle returns the style for secondary details such as selectors.
func (t Theme) MutedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.MutedFg))
}

// ToastStyle returns the bordered box a notification is rendered in.
func (t Theme) ToastStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(t.borderType()).
		BorderForeground(lipgloss.Color(t.BorderFg)).
		Padding(0, 1)
}

// Toast renders msg as a notification.
func (t Theme) Toast(msg string) string {
	if t.Plain {
		return t.Icon + " " + msg
	}
	body := t.AccentStyle().Render(t.Icon) + " " + t.TextStyle().Render(msg)
	return t.ToastStyle().Render(body)
}

func (t Theme) borderType() lipgloss.Border {
	switch t.Border {
	case "normal":
		return lipgloss.NormalBorder()
	case "thick":
		return lipgloss.ThickBorder()
	case "hidden":
		return lipgloss.HiddenBorder()
	default:
		return lipgloss.RoundedBorder()
	}
}
