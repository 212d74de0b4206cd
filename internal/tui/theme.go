package tui

import "github.com/charmbracelet/lipgloss"

// Process-wide read-only theme. The values track the palette of
// dua-style analyzers: green sizes, cyan directories, light gray files,
// inverted bars for the header and footer.
var (
	headerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#000000")).Background(lipgloss.Color("#dedede"))
	headerKeyStyle = headerStyle.Bold(true)
	dirInfoStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ffff"))
	sizeStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#4e9a06"))
	percentStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff"))
	dirStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#00dcff"))
	fileStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#dcdcdc"))
	selectedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#282828")).Background(lipgloss.Color("#ffffff"))
	helpTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ffff")).Bold(true)
	helpHeadStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffdc00")).Bold(true)
	helpHintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#808080"))
	helpBoxStyle   = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1)
)
