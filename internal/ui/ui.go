package ui

import (
	"image/color"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

type Colors struct {
	Gray50  lipgloss.AdaptiveColor
	Gray100 lipgloss.AdaptiveColor
	Gray200 lipgloss.AdaptiveColor
	Gray300 lipgloss.AdaptiveColor
	Gray400 lipgloss.AdaptiveColor
	Gray500 lipgloss.AdaptiveColor
	Gray600 lipgloss.AdaptiveColor
	Gray700 lipgloss.AdaptiveColor
	Gray800 lipgloss.AdaptiveColor
	Gray900 lipgloss.AdaptiveColor

	Primary50  lipgloss.AdaptiveColor
	Primary100 lipgloss.AdaptiveColor
	Primary200 lipgloss.AdaptiveColor
	Primary300 lipgloss.AdaptiveColor
	Primary400 lipgloss.AdaptiveColor
	Primary500 lipgloss.AdaptiveColor
	Primary600 lipgloss.AdaptiveColor
	Primary700 lipgloss.AdaptiveColor

	Success lipgloss.AdaptiveColor
	Warning lipgloss.AdaptiveColor
	Error   lipgloss.AdaptiveColor
}

var C = Colors{
	Gray50:  lipgloss.AdaptiveColor{Light: "#fafbfc", Dark: "#0d1117"},
	Gray100: lipgloss.AdaptiveColor{Light: "#f4f6f8", Dark: "#161b22"},
	Gray200: lipgloss.AdaptiveColor{Light: "#e1e8ed", Dark: "#21262d"},
	Gray300: lipgloss.AdaptiveColor{Light: "#c1ccd7", Dark: "#30363d"},
	Gray400: lipgloss.AdaptiveColor{Light: "#8896a6", Dark: "#656d76"},
	Gray500: lipgloss.AdaptiveColor{Light: "#6b7785", Dark: "#8b949e"},
	Gray600: lipgloss.AdaptiveColor{Light: "#4a5663", Dark: "#c9d1d9"},
	Gray700: lipgloss.AdaptiveColor{Light: "#2d3843", Dark: "#f0f6fc"},
	Gray800: lipgloss.AdaptiveColor{Light: "#1a2027", Dark: "#f4f6f8"},
	Gray900: lipgloss.AdaptiveColor{Light: "#0d1117", Dark: "#fafbfc"},

	Primary50:  lipgloss.AdaptiveColor{Light: "#f0fdfa", Dark: "#0c1a18"},
	Primary100: lipgloss.AdaptiveColor{Light: "#ccfbf1", Dark: "#142f2c"},
	Primary200: lipgloss.AdaptiveColor{Light: "#99f6e4", Dark: "#1f4e48"},
	Primary300: lipgloss.AdaptiveColor{Light: "#5eead4", Dark: "#2dd4bf"},
	Primary400: lipgloss.AdaptiveColor{Light: "#2dd4bf", Dark: "#5eead4"},
	Primary500: lipgloss.AdaptiveColor{Light: "#0d9488", Dark: "#14b8a6"},
	Primary600: lipgloss.AdaptiveColor{Light: "#0f766e", Dark: "#0d9488"},
	Primary700: lipgloss.AdaptiveColor{Light: "#115e59", Dark: "#134e4a"},

	Success: lipgloss.AdaptiveColor{Light: "#16a34a", Dark: "#22c55e"},
	Warning: lipgloss.AdaptiveColor{Light: "#d97706", Dark: "#f59e0b"},
	Error:   lipgloss.AdaptiveColor{Light: "#dc2626", Dark: "#ef4444"},
}

type Symbols struct {
	ArrowRight string
	Check      string
	Cross      string
	Dot        string

	CornerTL string
	CornerTR string
	CornerBL string
	CornerBR string
	Line     string
	Pipe     string
	Spinner  []string
}

var S = Symbols{
	ArrowRight: "→",
	Check:      "✓",
	Cross:      "✗",
	Dot:        "•",

	CornerTL: "╭",
	CornerTR: "╮",
	CornerBL: "╰",
	CornerBR: "╯",
	Line:     "─",
	Pipe:     "│",
	Spinner:  []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"},
}

var (
	H1 = lipgloss.NewStyle().
		Foreground(C.Gray800).
		Bold(true).
		MarginBottom(1)

	H2 = lipgloss.NewStyle().
		Foreground(C.Gray700).
		Bold(true).
		MarginBottom(1)

	Body = lipgloss.NewStyle().
		Foreground(C.Gray700)

	BodyMuted = lipgloss.NewStyle().
			Foreground(C.Gray600)

	BodySmall = lipgloss.NewStyle().
			Foreground(C.Gray500)

	StatusSuccess = lipgloss.NewStyle().
			Foreground(C.Success).
			Bold(true)

	StatusWarning = lipgloss.NewStyle().
			Foreground(C.Warning).
			Bold(true)

	StatusError = lipgloss.NewStyle().
			Foreground(C.Error).
			Bold(true)
)

func Title(text string) string {
	return H1.Render(text)
}

func Subtitle(text string) string {
	return H2.Render(text)
}

func Text(text string) string {
	return Body.Render(text)
}

func Muted(text string) string {
	return BodyMuted.Render(text)
}

func Small(text string) string {
	return BodySmall.Render(text)
}

func Success(text string) string {
	return StatusSuccess.Render(S.Check + " " + text)
}

func Warning(text string) string {
	return StatusWarning.Render("⚠ " + text)
}

func Error(text string) string {
	return StatusError.Render(S.Cross + " " + text)
}

func ErrorMessage(title string, err ...error) string {
	var b strings.Builder

	b.WriteString(StatusError.Render(S.Cross + " " + title))

	if len(err) > 0 && err[0] != nil {
		errorMsg := cleanErrorMessage(err[0].Error())
		if errorMsg != "" {
			b.WriteString("\n")
			b.WriteString(BodyMuted.Render(errorMsg))
		}
	}

	return b.String()
}

func ErrorBox(title string, err ...error) string {
	content := ErrorMessage(title, err...)
	return Box(content)
}

func cleanErrorMessage(errStr string) string {
	// Raw API failure bodies sometimes end up inside transport errors,
	// surface just their statusDescription.
	if start := strings.Index(errStr, `"statusDescription":"`); start != -1 {
		start += len(`"statusDescription":"`)
		if end := strings.Index(errStr[start:], `"`); end != -1 {
			return errStr[start : start+end]
		}
	}

	if strings.Contains(errStr, "401") || strings.Contains(errStr, "Unauthorized") {
		return "Authentication failed - check auth-id and auth-password"
	}
	if strings.Contains(errStr, "403") || strings.Contains(errStr, "Forbidden") {
		return "Access denied - this API profile may be restricted"
	}
	if strings.Contains(errStr, "429") || strings.Contains(errStr, "Too Many Requests") {
		return "Rate limit exceeded - please try again later"
	}
	if strings.Contains(errStr, "500") || strings.Contains(errStr, "Internal Server Error") {
		return "Server error - please try again later"
	}
	if strings.Contains(errStr, "timeout") || strings.Contains(errStr, "Timeout") {
		return "Request timed out - please check your connection"
	}
	if strings.Contains(errStr, "connection") && strings.Contains(errStr, "refused") {
		return "Cannot connect to the API - please check your network"
	}

	return errStr
}

func BulletList(items []string) string {
	var b strings.Builder
	for _, item := range items {
		b.WriteString(BodyMuted.Render(S.Dot+" ") + Body.Render(item) + "\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func StyledSpinner() spinner.Model {
	s := spinner.New()
	s.Spinner = spinner.Spinner{
		Frames: S.Spinner,
		FPS:    10,
	}
	s.Style = lipgloss.NewStyle().Foreground(C.Primary500)
	return s
}

func Box(content string, title ...string) string {
	termWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		termWidth = 80
	}

	originalLines := strings.Split(content, "\n")
	longestLineLen := 0
	for _, line := range originalLines {
		if width := lipgloss.Width(line); width > longestLineLen {
			longestLineLen = width
		}
	}

	const boxOverhead = 4
	const terminalMargin = 2
	maxAllowedContentWidth := termWidth - boxOverhead - terminalMargin
	if maxAllowedContentWidth < 1 {
		maxAllowedContentWidth = 1
	}

	finalContentWidth := longestLineLen
	if finalContentWidth > maxAllowedContentWidth {
		finalContentWidth = maxAllowedContentWidth
	}

	contentWrapper := lipgloss.NewStyle().Width(finalContentWidth)
	wrappedContent := contentWrapper.Render(content)
	lines := strings.Split(wrappedContent, "\n")

	totalBoxWidth := finalContentWidth + 2

	var titleStr string
	var titleLen int
	const leftTitleDashes = 2
	const rightTitleDashes = 2

	if len(title) > 0 && title[0] != "" {
		titleStr = " " + title[0] + " "
		titleLen = lipgloss.Width(titleStr)

		minTitleBarWidth := titleLen + leftTitleDashes + rightTitleDashes

		if minTitleBarWidth > totalBoxWidth {
			totalBoxWidth = minTitleBarWidth
		}
	}

	var b strings.Builder
	borderStyle := lipgloss.NewStyle().Foreground(C.Gray500)
	titleStyle := lipgloss.NewStyle().Foreground(C.Primary500)

	if titleLen > 0 {
		rightLen := totalBoxWidth - titleLen - leftTitleDashes
		if rightLen < 0 {
			rightLen = 0
		}

		b.WriteString(borderStyle.Render(S.CornerTL + strings.Repeat(S.Line, leftTitleDashes)))
		b.WriteString(titleStyle.Render(titleStr))
		b.WriteString(borderStyle.Render(strings.Repeat(S.Line, rightLen) + S.CornerTR))
	} else {
		b.WriteString(borderStyle.Render(S.CornerTL + strings.Repeat(S.Line, totalBoxWidth) + S.CornerTR))
	}
	b.WriteString("\n")

	for _, line := range lines {
		padding := totalBoxWidth - lipgloss.Width(line) - 2
		if padding < 0 {
			padding = 0
		}
		b.WriteString(borderStyle.Render(S.Pipe))
		b.WriteString(" " + line + strings.Repeat(" ", padding) + " ")
		b.WriteString(borderStyle.Render(S.Pipe))
		b.WriteString("\n")
	}

	b.WriteString(borderStyle.Render(S.CornerBL + strings.Repeat(S.Line, totalBoxWidth) + S.CornerBR))

	return b.String()
}

func FangTheme() fang.ColorScheme {
	errorFg := lipgloss.AdaptiveColor{Light: "#ffffff", Dark: "#1a2027"}

	return fang.ColorScheme{
		Base:           C.Gray700,
		Title:          C.Primary500,
		Description:    C.Gray600,
		Codeblock:      C.Gray100,
		Program:        C.Primary400,
		DimmedArgument: C.Gray400,
		Comment:        C.Gray500,
		Flag:           C.Warning,
		FlagDefault:    C.Gray500,
		Command:        C.Success,
		QuotedString:   C.Success,
		Argument:       C.Gray700,
		Help:           C.Gray600,
		Dash:           C.Gray400,
		ErrorHeader:    [2]color.Color{errorFg, C.Error},
		ErrorDetails:   C.Error,
	}
}
