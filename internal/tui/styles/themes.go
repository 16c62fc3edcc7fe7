package styles

// NewPicoTheme creates the default theme, teal on charcoal
func NewPicoTheme() *Theme {
	return &Theme{
		Name:   "pico",
		IsDark: true,

		// Brand colors
		Primary:   ParseHex("#1ABC9C"), // Teal
		Secondary: ParseHex("#48C9B0"), // Light teal
		Tertiary:  ParseHex("#5DADE2"), // Sky
		Accent:    ParseHex("#76D7C4"), // Mint

		// Background colors
		BgBase:      ParseHex("#1B1B1B"),
		BgSubtle:    ParseHex("#2A2A2A"),
		BgOverlay:   ParseHex("#101010"),
		BgHighlight: ParseHex("#3C4A48"),

		// Foreground colors
		FgBase:     ParseHex("#ECECEC"),
		FgMuted:    ParseHex("#A0A0A0"),
		FgSubtle:   ParseHex("#6F6F70"),
		FgInverted: ParseHex("#101010"),
		FgSelected: ParseHex("#FFFFFF"),

		// Border colors
		Border:      ParseHex("#3D3D3D"),
		BorderFocus: ParseHex("#1ABC9C"),

		// Semantic colors
		Success: ParseHex("#27AE60"),
		Error:   ParseHex("#E74C3C"),
		Warning: ParseHex("#F39C12"),
		Info:    ParseHex("#3498DB"),

		// Special colors
		Blue:      ParseHex("#008AE5"),
		BlueLight: ParseHex("#ADD8E6"), // key labels
		Green:     ParseHex("#3DCC91"),
		Yellow:    ParseHex("#F4D03F"),
		Purple:    ParseHex("#7C3AED"),
		Pink:      ParseHex("#EC4899"),
		Orange:    ParseHex("#F97316"),
		Cyan:      ParseHex("#00CED1"),
	}
}

// NewDarkTheme creates a slate theme with blue accents
func NewDarkTheme() *Theme {
	return &Theme{
		Name:   "dark",
		IsDark: true,

		// Brand colors
		Primary:   ParseHex("#60a5fa"), // Sky blue
		Secondary: ParseHex("#a78bfa"), // Violet
		Tertiary:  ParseHex("#f472b6"), // Pink
		Accent:    ParseHex("#34d399"), // Emerald

		// Background colors
		BgBase:      ParseHex("#0f172a"), // Slate 900
		BgSubtle:    ParseHex("#334155"), // Slate 700
		BgOverlay:   ParseHex("#020617"), // Slate 950
		BgHighlight: ParseHex("#475569"), // Slate 600

		// Foreground colors
		FgBase:     ParseHex("#f8fafc"), // Slate 50
		FgMuted:    ParseHex("#cbd5e1"), // Slate 300
		FgSubtle:   ParseHex("#94a3b8"), // Slate 400
		FgInverted: ParseHex("#0f172a"), // Slate 900
		FgSelected: ParseHex("#ffffff"),

		// Border colors
		Border:      ParseHex("#334155"), // Slate 700
		BorderFocus: ParseHex("#60a5fa"), // Sky 400

		// Semantic colors
		Success: ParseHex("#10b981"),
		Error:   ParseHex("#ef4444"),
		Warning: ParseHex("#f59e0b"),
		Info:    ParseHex("#3b82f6"),

		// Special colors
		Blue:      ParseHex("#3b82f6"),
		BlueLight: ParseHex("#93c5fd"),
		Green:     ParseHex("#22c55e"),
		Yellow:    ParseHex("#eab308"),
		Purple:    ParseHex("#a855f7"),
		Pink:      ParseHex("#ec4899"),
		Orange:    ParseHex("#f97316"),
		Cyan:      ParseHex("#06b6d4"),
	}
}
