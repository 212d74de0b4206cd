package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

const barWidth = 10

func (m Model) View() string {
	if m.showHelp {
		return m.helpView()
	}

	var b strings.Builder
	b.WriteString(m.titleBar())
	b.WriteByte('\n')
	b.WriteString(m.dirInfoLine())
	b.WriteByte('\n')
	b.WriteString(m.listView())
	b.WriteString(m.footer())
	return b.String()
}

func (m Model) titleBar() string {
	left := " " + headerKeyStyle.Render("rdu") + headerStyle.Render(" v"+m.version+"    (press ") +
		headerKeyStyle.Render("?") + headerStyle.Render(" for help)")
	plain := fmt.Sprintf(" rdu v%s    (press ? for help)", m.version)
	pad := m.viewWidth() - lipgloss.Width(plain)
	if pad < 0 {
		pad = 0
	}
	return left + headerStyle.Render(strings.Repeat(" ", pad))
}

func (m Model) dirInfoLine() string {
	cur := m.app.Current()
	info := fmt.Sprintf(" %s (%d visible, %s)", cur.Path, len(m.app.Children()), formatSize(m.app.TotalSize()))
	if cur.ErrorCount > 0 {
		info += fmt.Sprintf("  [%d errors]", cur.ErrorCount)
	}
	return dirInfoStyle.Render(info)
}

func (m Model) listView() string {
	children := m.app.Children()
	if len(children) == 0 {
		return helpHintStyle.Render("  <empty>") + "\n"
	}

	total := m.app.TotalSize()
	start := m.offset
	end := min(start+m.listHeight(), len(children))

	var b strings.Builder
	for i := start; i < end; i++ {
		child := children[i]
		percent := 0.0
		if total > 0 {
			percent = float64(child.Size) / float64(total) * 100
		}
		prefix := " "
		nameStyle := fileStyle
		if child.IsDir {
			prefix = "/"
			nameStyle = dirStyle
		}

		sizeCol := fmt.Sprintf("%10s", formatSize(child.Size))
		percentCol := fmt.Sprintf("%5.1f%%", percent)
		barCol := fmt.Sprintf("%-*s", barWidth, renderBar(percent, barWidth))
		name := prefix + child.Name

		if i == m.app.Selection() {
			row := fmt.Sprintf("%s | %s | %s | %s", sizeCol, percentCol, barCol, name)
			b.WriteString(selectedStyle.Render(row))
		} else {
			b.WriteString(sizeStyle.Render(sizeCol))
			b.WriteString(" | ")
			b.WriteString(percentStyle.Render(percentCol))
			b.WriteString(" | ")
			b.WriteString(percentStyle.Render(barCol))
			b.WriteString(" | ")
			b.WriteString(nameStyle.Render(name))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (m Model) footer() string {
	direction := "descending"
	if m.app.Ascending() {
		direction = "ascending"
	}
	left := fmt.Sprintf("Sort mode: %s %s  Total disk usage: %s",
		m.app.Mode(), direction, formatSize(m.app.TotalSize()))
	right := m.app.Status()
	pad := m.viewWidth() - len(left) - len(right)
	if pad < 1 {
		pad = 1
	}
	return headerStyle.Render(left + strings.Repeat(" ", pad) + right)
}

func (m Model) helpView() string {
	lines := []string{
		"",
		helpTitleStyle.Render("  rdu - Disk Usage Analyzer"),
		"",
		helpHeadStyle.Render("  Navigation:"),
		helpRow(keys.Down),
		helpRow(keys.Up),
		helpRow(keys.PageDown),
		helpRow(keys.PageUp),
		helpRow(keys.First),
		helpRow(keys.Last),
		"",
		helpHeadStyle.Render("  Actions:"),
		helpRow(keys.Enter),
		helpRow(keys.GoUp),
		helpRow(keys.Refresh),
		"",
		helpHeadStyle.Render("  Display:"),
		helpRow(keys.SortSize),
		helpRow(keys.SortMTime),
		helpRow(keys.SortCount),
		"",
		helpHeadStyle.Render("  Other:"),
		helpRow(keys.Help),
		helpRow(keys.Quit),
		"",
		helpHintStyle.Render("  Press any key to close"),
		"",
	}
	box := helpBoxStyle.Render(strings.Join(lines, "\n"))
	height := m.height
	if height <= 0 {
		height = defaultListHeight + chromeLines
	}
	return lipgloss.Place(m.viewWidth(), height, lipgloss.Center, lipgloss.Center, box)
}

func helpRow(b key.Binding) string {
	h := b.Help()
	return fmt.Sprintf("    %-15s %s", h.Key, h.Desc)
}

func formatSize(size int64) string {
	if size < 0 {
		size = 0
	}
	return humanize.IBytes(uint64(size))
}

// renderBar draws percent of width using eighth-block characters, so a
// 3.4% entry still shows a sliver instead of rounding to nothing.
func renderBar(percent float64, width int) string {
	fraction := percent / 100 * float64(width)
	full := int(math.Floor(fraction))
	partial := int(math.Round((fraction - float64(full)) * 8))

	partials := []rune{'▏', '▎', '▍', '▌', '▋', '▊', '▉'}

	var b strings.Builder
	for i := 0; i < min(full, width); i++ {
		b.WriteRune('█')
	}
	if full < width && partial > 0 {
		b.WriteRune(partials[min(partial-1, 6)])
	}
	return b.String()
}
