package badge

// Theme names a fixed visual palette for the badge.
type Theme string

// The six supported themes. Anything else fails closed to ThemeDark.
const (
	ThemeDark     Theme = "dark"
	ThemeLight    Theme = "light"
	ThemeGradient Theme = "gradient"
	ThemeMidnight Theme = "midnight"
	ThemeOcean    Theme = "ocean"
	ThemeSunset   Theme = "sunset"
)

// palette holds the colors a theme applies to the card.
type palette struct {
	bg1, bg2 string
	border   string
	title    string
	text     string
	subtext  string
	accent   string
	cardBg   string
}

var palettes = map[Theme]palette{
	ThemeDark: {
		bg1: "#0d1117", bg2: "#161b22", border: "#30363d", title: "#58a6ff",
		text: "#e6edf3", subtext: "#8b949e", accent: "#238636", cardBg: "#21262d",
	},
	ThemeLight: {
		bg1: "#ffffff", bg2: "#f6f8fa", border: "#d0d7de", title: "#0969da",
		text: "#1f2328", subtext: "#656d76", accent: "#1a7f37", cardBg: "#f6f8fa",
	},
	ThemeGradient: {
		bg1: "#1a1a2e", bg2: "#16213e", border: "#6366f1", title: "#a5b4fc",
		text: "#e0e7ff", subtext: "#94a3b8", accent: "#818cf8", cardBg: "#1e1e3f",
	},
	ThemeMidnight: {
		bg1: "#0f0f1a", bg2: "#1a1a2e", border: "#2d2d44", title: "#c4b5fd",
		text: "#e2e8f0", subtext: "#94a3b8", accent: "#7c3aed", cardBg: "#1e1e30",
	},
	ThemeOcean: {
		bg1: "#0c1929", bg2: "#0f2744", border: "#1e4976", title: "#38bdf8",
		text: "#e0f2fe", subtext: "#7dd3fc", accent: "#0ea5e9", cardBg: "#0d2847",
	},
	ThemeSunset: {
		bg1: "#1a0a0a", bg2: "#2d1515", border: "#7c2d12", title: "#fb923c",
		text: "#fff7ed", subtext: "#fdba74", accent: "#ea580c", cardBg: "#2a1010",
	},
}

// ParseTheme maps a query value to a Theme, failing closed to dark for
// unknown values rather than erroring.
func ParseTheme(s string) Theme {
	t := Theme(s)
	if _, ok := palettes[t]; ok {
		return t
	}
	return ThemeDark
}

// rankStyle carries the rank-dependent accent styling.
type rankStyle struct {
	color   string
	bgColor string
	icon    string
}

// styleForRank maps a rank to its medal or tier styling. Ranks 1/2/3 get
// distinct medal colors; ≤10, ≤50, ≤100 get progressively muted tiers.
func styleForRank(rank int) rankStyle {
	switch {
	case rank == 1:
		return rankStyle{color: "#FFD700", bgColor: "#422006", icon: "🥇"}
	case rank == 2:
		return rankStyle{color: "#C0C0C0", bgColor: "#1f2937", icon: "🥈"}
	case rank == 3:
		return rankStyle{color: "#CD7F32", bgColor: "#431407", icon: "🥉"}
	case rank > 0 && rank <= 10:
		return rankStyle{color: "#22c55e", bgColor: "#052e16", icon: "⭐"}
	case rank > 0 && rank <= 50:
		return rankStyle{color: "#3b82f6", bgColor: "#172554", icon: "🔥"}
	case rank > 0 && rank <= 100:
		return rankStyle{color: "#8b5cf6", bgColor: "#2e1065", icon: "💎"}
	default:
		return rankStyle{color: "#6b7280", bgColor: "#1f2937", icon: "👨‍💻"}
	}
}
