package monitor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Row labels in display order.
const (
	LabelOSName        = "OS NAME"
	LabelOSVersion     = "OS VERSION"
	LabelKernelVersion = "KERNEL VERSION"
	LabelHostName      = "HOST NAME"
	LabelDisks         = "DISKS"
	LabelCPUs          = "NB CPUS"
	LabelRAMTotal      = "RAM TOTAL"
	LabelRAMUsed       = "RAM USED"
)

// Sentinels substituted for unavailable values.
const (
	SentinelUnknown = "Unknown"
	SentinelNoDisks = "No disks found"
)

const (
	DashboardTitle = "System Monitor"
	FooterText     = "Press 'q' to quit"

	// LabelColumnWidth fits "KERNEL VERSION" plus cell padding.
	LabelColumnWidth    = 18
	MinValueColumnWidth = 10
	FooterHeight        = 1

	// tableChrome is the left, separator, and right border columns.
	tableChrome = 3
)

// Row is one label/value line of the metrics table.
type Row struct {
	Label string
	Value string
}

// Table describes the metrics table. Height 0 means natural height.
type Table struct {
	Title      string
	Headers    [2]string
	Rows       []Row
	LabelWidth int
	ValueWidth int
	Height     int
}

// Footer is the single-line hint under the table.
type Footer struct {
	Text   string
	Height int
}

// Frame is the widget tree for one tick, sized to the terminal it will be
// painted on. Width and Height are 0 when the terminal size is unknown.
type Frame struct {
	Width  int
	Height int
	Table  Table
	Footer Footer
}

// Render lays out a snapshot for a width x height terminal. It has no side
// effects; painting is left to the console.
func Render(s Snapshot, width, height int) Frame {
	f := Frame{
		Width:  width,
		Height: height,
		Table: Table{
			Title:      DashboardTitle,
			Headers:    [2]string{"KEY", "VALUE"},
			Rows:       Rows(s),
			LabelWidth: LabelColumnWidth,
		},
		Footer: Footer{Text: FooterText, Height: FooterHeight},
	}

	if width > 0 {
		f.Table.ValueWidth = width - LabelColumnWidth - tableChrome
		if f.Table.ValueWidth < MinValueColumnWidth {
			f.Table.ValueWidth = MinValueColumnWidth
		}
	}

	// The footer keeps exactly one line and the table takes the rest.
	if height > 0 {
		f.Table.Height = height - FooterHeight
		if f.Table.Height < 0 {
			f.Table.Height = 0
		}
	}

	return f
}

// Rows returns the table rows for a snapshot with sentinels applied.
func Rows(s Snapshot) []Row {
	return []Row{
		{Label: LabelOSName, Value: orUnknown(s.OSName)},
		{Label: LabelOSVersion, Value: orUnknown(s.OSVersion)},
		{Label: LabelKernelVersion, Value: orUnknown(s.KernelVersion)},
		{Label: LabelHostName, Value: orUnknown(s.HostName)},
		{Label: LabelDisks, Value: FormatDisks(s.DiskNames)},
		{Label: LabelCPUs, Value: strconv.Itoa(s.CPUCount)},
		{Label: LabelRAMTotal, Value: FormatGB(s.TotalMemoryBytes)},
		{Label: LabelRAMUsed, Value: FormatGB(s.UsedMemoryBytes)},
	}
}

// FormatGB formats a byte count with two decimals and a "GB" suffix.
func FormatGB(bytes uint64) string {
	return fmt.Sprintf("%.2f GB", BytesToGB(bytes))
}

// FormatDisks joins disk names with ", " in order, or returns the no-disk sentinel.
func FormatDisks(names []string) string {
	if len(names) == 0 {
		return SentinelNoDisks
	}
	return strings.Join(names, ", ")
}

func orUnknown(v *string) string {
	if v == nil {
		return SentinelUnknown
	}
	return *v
}

// String paints the frame with lipgloss for string-based consoles.
func (f Frame) String() string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(BorderStyle).
		Headers(f.Table.Headers[0], f.Table.Headers[1]).
		StyleFunc(func(row, col int) lipgloss.Style {
			var s lipgloss.Style
			switch {
			case row == table.HeaderRow:
				s = HeaderCellStyle
			case col == 0:
				s = LabelStyle
			default:
				s = ValueStyle
			}
			if col == 0 {
				return s.Width(f.Table.LabelWidth)
			}
			if f.Table.ValueWidth > 0 {
				return s.Width(f.Table.ValueWidth)
			}
			return s
		})
	for _, r := range f.Table.Rows {
		t.Row(r.Label, r.Value)
	}

	body := lipgloss.JoinVertical(lipgloss.Left, TitleStyle.Render(f.Table.Title), t.String())
	if f.Table.Height > 0 {
		body = lipgloss.NewStyle().
			Height(f.Table.Height).
			MaxHeight(f.Table.Height).
			Render(body)
	}

	footer := FooterStyle.MaxHeight(f.Footer.Height)
	if f.Width > 0 {
		footer = footer.Width(f.Width)
	}

	var out string
	if f.Height > 0 && f.Table.Height == 0 {
		// One-line terminal: only the footer fits.
		out = footer.Render(f.Footer.Text)
	} else {
		out = lipgloss.JoinVertical(lipgloss.Left, body, footer.Render(f.Footer.Text))
	}
	if f.Width > 0 {
		out = lipgloss.NewStyle().MaxWidth(f.Width).Render(out)
	}
	return out
}

// Lines returns how many terminal lines the painted frame occupies.
func (f Frame) Lines() int {
	if f.Height > 0 {
		return f.Height
	}
	return lipgloss.Height(f.String())
}
