// Package style provides the shared styling primitives (brand colors and
// icons) used by the logger and the demo surfaces.
package style

import "github.com/charmbracelet/lipgloss"

// Brand Colors.
var (
	Teal   = lipgloss.Color("#14B8A6")
	Slate  = lipgloss.Color("#667085")
	White  = lipgloss.Color("#FFFFFF")
	Ink    = lipgloss.Color("#0B0F19")
	Mist   = lipgloss.Color("#F6F7FB")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Dot     = "●"
	Circle  = "○"
)
