package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colours of the countdown card.
type Theme struct {
	Name string

	Background string // outside the card
	Surface    string // card panel
	SurfaceAlt string // bucket boxes
	Border     string
	BorderCard string

	Text    string
	Muted   string
	Faint   string
	Accent  string
	Warning string
	Danger  string
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Page        lipgloss.Style
	Card        lipgloss.Style
	Image       lipgloss.Style
	Title       lipgloss.Style
	Subtitle    lipgloss.Style
	BucketBox   lipgloss.Style
	BucketCount lipgloss.Style
	BucketLabel lipgloss.Style
	Expired     lipgloss.Style
	Text        lipgloss.Style
	Footer      lipgloss.Style
	Error       lipgloss.Style
	HelpKey     lipgloss.Style
	HelpDesc    lipgloss.Style
	HelpSep     lipgloss.Style

	Surface BgStyle // text inside the card
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Page: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Background)),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.BorderCard)).
			Background(lipgloss.Color(t.Surface)).
			Padding(1, 2),

		Image: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)).
			Italic(true),

		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),

		Subtitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		BucketBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(t.Border)).
			Padding(0, 1).
			Margin(1, 1, 0, 0).
			Align(lipgloss.Center),

		BucketCount: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)).
			Background(lipgloss.Color(t.SurfaceAlt)).
			Bold(true).
			Padding(0, 1),

		BucketLabel: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		Expired: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)).
			MarginTop(1),

		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		Footer: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),

		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Padding(0, 1),

		HelpKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		HelpDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		HelpSep: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		Surface: NewBgStyle(t.Surface),
	}
}

// Theme definitions

var themes = map[string]Theme{
	"Nightfox": nightfoxTheme(),
	"Kanagawa": kanagawaTheme(),
	"Slate":    slateTheme(),
}

var themeOrder = []string{"Slate", "Nightfox", "Kanagawa"}

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return slateTheme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return themeOrder
}

func nightfoxTheme() Theme {
	// Nightfox palette: https://github.com/EdenEast/nightfox.nvim
	return Theme{
		Name:       "Nightfox",
		Background: "#131a24", // bg0
		Surface:    "#192330", // bg1
		SurfaceAlt: "#29394f", // bg3
		Border:     "#39506d", // bg4
		BorderCard: "#9d79d6", // magenta
		Text:       "#cdcecf", // fg1
		Muted:      "#738091", // comment
		Faint:      "#71839b", // fg3
		Accent:     "#719cd6", // blue
		Warning:    "#dbc074", // yellow
		Danger:     "#c94f6d", // red
	}
}

func kanagawaTheme() Theme {
	// Kanagawa palette: https://github.com/rebelot/kanagawa.nvim
	return Theme{
		Name:       "Kanagawa",
		Background: "#16161D", // sumiInk0
		Surface:    "#1F1F28", // sumiInk3
		SurfaceAlt: "#2D4F67", // waveBlue1
		Border:     "#54546D", // sumiInk6
		BorderCard: "#957FB8", // oniViolet
		Text:       "#DCD7BA", // fujiWhite
		Muted:      "#C8C093", // oldWhite
		Faint:      "#727169", // fujiGray
		Accent:     "#7E9CD8", // crystalBlue
		Warning:    "#E6C384", // carpYellow
		Danger:     "#E46876", // waveRed
	}
}

func slateTheme() Theme {
	// Tailwind CSS palette, violet to fuchsia like the promotion card.
	return Theme{
		Name:       "Slate",
		Background: "#020617", // slate-950
		Surface:    "#0f172a", // slate-900
		SurfaceAlt: "#6d28d9", // violet-700
		Border:     "#334155", // slate-700
		BorderCard: "#d946ef", // fuchsia-500
		Text:       "#f8fafc", // slate-50
		Muted:      "#cbd5e1", // slate-300
		Faint:      "#64748b", // slate-500
		Accent:     "#a78bfa", // violet-400
		Warning:    "#f59e0b", // amber-500
		Danger:     "#ef4444", // red-500
	}
}
