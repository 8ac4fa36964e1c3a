// Package layout draws the chrome around every screen: a status header, a
// footer of key hints and the frame that stacks them around the content.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/vexillo/internal/country"
	"github.com/abhisek/vexillo/internal/i18n"
	"github.com/abhisek/vexillo/internal/ui/theme"
)

const (
	MinWidth  = 64
	MinHeight = 20

	// Below either of these, screens drop decoration such as title art.
	compactWidth  = 96
	compactHeight = 28

	// chromeHeight is what header and footer take, borders included.
	chromeHeight = 6
)

// KeyHint is one key binding shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// Status is the right-hand side of the header.
type Status struct {
	Lang country.Lang

	// Level is hidden when zero. MaxLevel is hidden when zero.
	Level      int
	MaxLevel   int
	LevelLabel string
}

// TooSmall reports whether the terminal cannot fit a question and its
// four options.
func TooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// Compact reports whether a screen of the given content size should use its
// condensed rendering.
func Compact(width, contentHeight int) bool {
	return width < compactWidth || contentHeight+chromeHeight < compactHeight
}

// TooSmallView asks the player to enlarge the terminal.
func TooSmallView(lang country.Lang, width, height int) string {
	msg := i18n.Format(lang, i18n.TooSmall, map[string]string{
		"min": fmt.Sprintf("%d×%d", MinWidth, MinHeight),
		"now": fmt.Sprintf("%d×%d", width, height),
	})
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Text).Align(lipgloss.Center).Render(msg))
}

// Header renders the app name, the screen title centred, then the level and
// a language switch with the active language lit.
func Header(appName, title string, st Status, width int) string {
	left := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("⚑ " + appName)
	center := lipgloss.NewStyle().Foreground(theme.Text).Render(title)

	var right []string
	if st.Level > 0 {
		lv := fmt.Sprintf("%s %d", st.LevelLabel, st.Level)
		if st.MaxLevel > 0 {
			lv += fmt.Sprintf("/%d", st.MaxLevel)
		}
		right = append(right, lipgloss.NewStyle().Foreground(theme.Accent).Render(lv))
	}
	right = append(right, langSwitch(st.Lang))

	return bar(spread(width-4, left, center, strings.Join(right, "   ")), width)
}

func langSwitch(active country.Lang) string {
	on := lipgloss.NewStyle().Foreground(theme.Signal).Bold(true)
	off := lipgloss.NewStyle().Foreground(theme.TextDim)

	parts := make([]string, 0, 2)
	for _, l := range []country.Lang{country.LangEnglish, country.LangKhmer} {
		label := strings.ToUpper(string(l))
		if l == active {
			parts = append(parts, on.Render(label))
		} else {
			parts = append(parts, off.Render(label))
		}
	}
	return strings.Join(parts, off.Render("·"))
}

// spread places left and right at the edges of inner and center in the
// middle, keeping at least one space between neighbours.
func spread(inner int, left, center, right string) string {
	lw, cw, rw := lipgloss.Width(left), lipgloss.Width(center), lipgloss.Width(right)

	gapL := max((inner-cw)/2-lw, 1)
	gapR := max(inner-lw-gapL-cw-rw, 1)
	return left + strings.Repeat(" ", gapL) + center + strings.Repeat(" ", gapR) + right
}

// Footer renders as many key hints as fit. The last hint, usually quit, is
// always kept.
func Footer(hints []KeyHint, width int) string {
	key := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	desc := lipgloss.NewStyle().Foreground(theme.TextDim)
	sep := desc.Render("  ·  ")

	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = key.Render(h.Key) + " " + desc.Render(h.Description)
	}

	return bar(strings.Join(fitHints(parts, width-6, lipgloss.Width(sep)), sep), width)
}

func fitHints(parts []string, room, sepWidth int) []string {
	if len(parts) == 0 {
		return nil
	}
	last := parts[len(parts)-1]
	used := lipgloss.Width(last)

	kept := make([]string, 0, len(parts))
	for _, p := range parts[:len(parts)-1] {
		w := lipgloss.Width(p) + sepWidth
		if used+w > room {
			break
		}
		used += w
		kept = append(kept, p)
	}
	return append(kept, last)
}

func bar(content string, width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Padding(0, 1).
		Background(theme.Panel).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(content)
}

// Frame stacks header, content and footer, giving content whatever height
// is left.
func Frame(header, content, footer string, width, height int) string {
	body := BodyHeight(header, footer, height)
	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		lipgloss.NewStyle().Width(width).Height(body).MaxHeight(body).Render(content),
		footer,
	)
}

// BodyHeight is the height left for content between header and footer.
func BodyHeight(header, footer string, height int) int {
	return max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
}
