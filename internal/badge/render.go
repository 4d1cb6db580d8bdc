// Package badge renders the embeddable SVG rank card. Rendering is pure:
// the same user, country, rank, and theme always produce the same document,
// so output can be cached byte-for-byte. All user-controlled text is escaped
// before interpolation.
package badge

import (
	"fmt"
	"html"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/tbourn/go-rankings-backend/internal/domain"
)

const (
	cardWidth  = 495
	cardHeight = 195

	// maxNameRunes caps the displayed profile name.
	maxNameRunes = 22

	fontStack = "-apple-system, BlinkMacSystemFont, Segoe UI, Helvetica, Arial, sans-serif"

	footerText = "github-rankings.vercel.app"

	githubIconPath = "M12 0C5.37 0 0 5.37 0 12c0 5.31 3.435 9.795 8.205 11.385.6.105.825-.255.825-.57 0-.285-.015-1.23-.015-2.235-3.015.555-3.795-.735-4.035-1.41-.135-.345-.72-1.41-1.23-1.695-.42-.225-1.02-.78-.015-.795.945-.015 1.62.87 1.845 1.23 1.08 1.815 2.805 1.305 3.495.99.105-.78.42-1.305.765-1.605-2.67-.3-5.46-1.335-5.46-5.925 0-1.305.465-2.385 1.23-3.225-.12-.3-.54-1.53.12-3.18 0 0 1.005-.315 3.3 1.23.96-.27 1.98-.405 3-.405s2.04.135 3 .405c2.295-1.56 3.3-1.23 3.3-1.23.66 1.65.24 2.88.12 3.18.765.84 1.23 1.905 1.23 3.225 0 4.605-2.805 5.625-5.475 5.925.435.375.81 1.095.81 2.22 0 1.605-.015 2.895-.015 3.3 0 .315.225.69.825.57A12.02 12.02 0 0024 12c0-6.63-5.37-12-12-12z"
)

// FormatNumber renders large counts compactly: 1500000 → "1.5M",
// 1000 → "1.0K", 999 → "999".
func FormatNumber(n int) string {
	switch {
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%.1fK", float64(n)/1_000)
	default:
		return fmt.Sprintf("%d", n)
	}
}

// truncateName clips a display name to maxNameRunes with an ellipsis suffix.
func truncateName(name string) string {
	runes := []rune(name)
	if len(runes) <= maxNameRunes {
		return name
	}
	return string(runes[:maxNameRunes]) + "..."
}

// percentile returns round(rank/total*100) with a floor of 1, so a top user
// never reads "Top 0%".
func percentile(rank, total int) int {
	if total <= 0 {
		return 1
	}
	p := int(math.Round(float64(rank) / float64(total) * 100))
	if p < 1 {
		p = 1
	}
	return p
}

// Render produces the badge SVG for a user. country may be nil (unresolved
// location); rank 0 renders as "N/A"/"Not Ranked". avatarDataURL, when
// non-empty, replaces the remote avatar reference so the document is
// self-contained.
func Render(user domain.User, country *domain.Country, rank, total int, theme Theme, avatarDataURL string) string {
	p := palettes[ParseTheme(string(theme))]
	st := styleForRank(rank)

	displayName := html.EscapeString(truncateName(user.DisplayName()))
	login := html.EscapeString(user.Login)

	countryName := "Unknown"
	countryFlag := "🌍"
	if country != nil {
		countryName = country.Name
		countryFlag = country.Flag
	}
	// Width follows the visible character count, not the escaped markup.
	countryBadgeWidth := utf8.RuneCountInString(countryName)*8 + 40
	if countryBadgeWidth > 160 {
		countryBadgeWidth = 160
	}
	countryName = html.EscapeString(countryName)

	rankText := "N/A"
	totalText := ""
	rankLabel := "Not Ranked"
	if rank > 0 {
		rankText = fmt.Sprintf("#%d", rank)
		totalText = "of " + FormatNumber(total)
		rankLabel = fmt.Sprintf("Top %d%% in %s", percentile(rank, total), countryName)
	}

	avatarHref := html.EscapeString(user.AvatarURL)
	if avatarDataURL != "" {
		avatarHref = avatarDataURL
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<svg width="%d" height="%d" viewBox="0 0 %d %d" xmlns="http://www.w3.org/2000/svg">`,
		cardWidth, cardHeight, cardWidth, cardHeight)

	fmt.Fprintf(&b, `
  <defs>
    <linearGradient id="bgGradient" x1="0%%" y1="0%%" x2="100%%" y2="100%%">
      <stop offset="0%%" style="stop-color:%s"/>
      <stop offset="100%%" style="stop-color:%s"/>
    </linearGradient>
    <linearGradient id="rankGradient" x1="0%%" y1="0%%" x2="100%%" y2="0%%">
      <stop offset="0%%" style="stop-color:%s;stop-opacity:0.8"/>
      <stop offset="100%%" style="stop-color:%s;stop-opacity:0.4"/>
    </linearGradient>
    <linearGradient id="shine" x1="0%%" y1="0%%" x2="100%%" y2="100%%">
      <stop offset="0%%" style="stop-color:white;stop-opacity:0.1"/>
      <stop offset="50%%" style="stop-color:white;stop-opacity:0"/>
      <stop offset="100%%" style="stop-color:white;stop-opacity:0.05"/>
    </linearGradient>
    <filter id="shadow" x="-20%%" y="-20%%" width="140%%" height="140%%">
      <feDropShadow dx="0" dy="4" stdDeviation="4" flood-color="#000" flood-opacity="0.25"/>
    </filter>
    <clipPath id="avatarClip">
      <circle cx="70" cy="85" r="40"/>
    </clipPath>
  </defs>`, p.bg1, p.bg2, st.color, st.color)

	// Card background and avatar ring.
	fmt.Fprintf(&b, `
  <rect x="0.5" y="0.5" width="%d" height="%d" rx="12" fill="url(#bgGradient)" stroke="%s" stroke-width="1"/>
  <rect x="0.5" y="0.5" width="%d" height="%d" rx="12" fill="url(#shine)"/>
  <circle cx="70" cy="85" r="44" fill="%s" filter="url(#shadow)"/>
  <circle cx="70" cy="85" r="42" fill="%s" stroke="%s" stroke-width="2"/>
  <image href="%s" x="30" y="45" width="80" height="80" clip-path="url(#avatarClip)" preserveAspectRatio="xMidYMid slice"/>`,
		cardWidth-1, cardHeight-1, p.border, cardWidth-1, cardHeight-1,
		p.cardBg, p.border, st.color, avatarHref)

	// Name, handle, country, rank.
	fmt.Fprintf(&b, `
  <text x="130" y="50" fill="%s" font-family="%s" font-size="20" font-weight="700">%s</text>
  <text x="130" y="72" fill="%s" font-family="%s" font-size="13">@%s</text>
  <rect x="130" y="82" width="%d" height="26" rx="13" fill="%s" stroke="%s" stroke-width="1"/>
  <text x="145" y="100" fill="%s" font-family="%s" font-size="13">%s %s</text>
  <rect x="130" y="116" width="110" height="32" rx="8" fill="%s" stroke="%s" stroke-width="1.5"/>
  <text x="145" y="138" fill="%s" font-family="%s" font-size="16" font-weight="700">%s</text>
  <text x="185" y="138" fill="%s" font-family="%s" font-size="12">%s</text>`,
		p.title, fontStack, displayName,
		p.subtext, fontStack, login,
		countryBadgeWidth, p.cardBg, p.border,
		p.text, fontStack, countryFlag, countryName,
		st.bgColor, st.color,
		st.color, fontStack, rankText,
		p.subtext, fontStack, totalText)

	// Stats cards.
	fmt.Fprintf(&b, `
  <g transform="translate(320, 35)">
    <rect x="0" y="0" width="75" height="60" rx="8" fill="%s" stroke="%s" stroke-width="1"/>
    <text x="37.5" y="25" fill="%s" font-family="%s" font-size="10" text-anchor="middle" font-weight="500">FOLLOWERS</text>
    <text x="37.5" y="47" fill="%s" font-family="%s" font-size="18" text-anchor="middle" font-weight="700">%s</text>
    <rect x="85" y="0" width="75" height="60" rx="8" fill="%s" stroke="%s" stroke-width="1"/>
    <text x="122.5" y="25" fill="%s" font-family="%s" font-size="10" text-anchor="middle" font-weight="500">REPOS</text>
    <text x="122.5" y="47" fill="%s" font-family="%s" font-size="18" text-anchor="middle" font-weight="700">%s</text>
  </g>
  <g transform="translate(320, 110)">
    <rect x="0" y="0" width="160" height="45" rx="8" fill="%s" stroke="%s" stroke-width="1"/>
    <text x="80" y="20" fill="%s" font-family="%s" font-size="9" text-anchor="middle" font-weight="500" letter-spacing="0.5">COUNTRY RANK</text>
    <text x="80" y="38" fill="%s" font-family="%s" font-size="14" text-anchor="middle" font-weight="700">%s</text>
  </g>`,
		p.cardBg, p.border,
		p.subtext, fontStack,
		p.text, fontStack, FormatNumber(user.Followers),
		p.cardBg, p.border,
		p.subtext, fontStack,
		p.text, fontStack, FormatNumber(user.PublicRepos),
		p.cardBg, p.border,
		p.subtext, fontStack,
		st.color, fontStack, rankLabel)

	// Footer and GitHub mark.
	fmt.Fprintf(&b, `
  <text x="15" y="183" fill="%s" font-family="%s" font-size="10" opacity="0.7">%s</text>
  <g transform="translate(455, 165)">
    <path d="%s" fill="%s" opacity="0.5" transform="scale(0.8)"/>
  </g>
</svg>`, p.subtext, fontStack, footerText, githubIconPath, p.subtext)

	return b.String()
}

// RenderError produces a compact error card. Unlike the full badge, only a
// light/dark split is honored: any theme other than "light" uses the dark
// error palette.
func RenderError(message string, theme Theme) string {
	isDark := theme != ThemeLight

	bg1, bg2 := "#1a0a0a", "#2d1515"
	border, circleFill, circleStroke := "#7f1d1d", "#450a0a", "#dc2626"
	bang, title, body := "#f87171", "#fca5a5", "#f87171"
	if !isDark {
		bg1, bg2 = "#fef2f2", "#fee2e2"
		border, circleFill, circleStroke = "#fecaca", "#fecaca", "#f87171"
		bang, title, body = "#dc2626", "#991b1b", "#b91c1c"
	}

	return fmt.Sprintf(`<svg width="495" height="120" viewBox="0 0 495 120" xmlns="http://www.w3.org/2000/svg">
  <defs>
    <linearGradient id="errorBg" x1="0%%" y1="0%%" x2="100%%" y2="100%%">
      <stop offset="0%%" style="stop-color:%s"/>
      <stop offset="100%%" style="stop-color:%s"/>
    </linearGradient>
  </defs>
  <rect x="0.5" y="0.5" width="494" height="119" rx="12" fill="url(#errorBg)" stroke="%s" stroke-width="1"/>
  <circle cx="50" cy="60" r="24" fill="%s" stroke="%s" stroke-width="2"/>
  <text x="50" y="68" fill="%s" font-family="%s" font-size="24" text-anchor="middle">!</text>
  <text x="90" y="55" fill="%s" font-family="%s" font-size="16" font-weight="600">Unable to load badge</text>
  <text x="90" y="78" fill="%s" font-family="%s" font-size="12">%s</text>
</svg>`,
		bg1, bg2, border, circleFill, circleStroke,
		bang, fontStack,
		title, fontStack,
		body, fontStack, html.EscapeString(message))
}
