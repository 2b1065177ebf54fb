package ui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/vvka-141/ecomload/pkg/ecomload"
)

// Renderer formats summaries either plain or with lipgloss styles.
type Renderer struct {
	styled bool
}

// NewRenderer creates a Renderer. Use ColorEnabled to pick styled.
func NewRenderer(styled bool) *Renderer {
	return &Renderer{styled: styled}
}

func (r *Renderer) style(s lipgloss.Style, text string) string {
	if !r.styled {
		return text
	}
	return s.Render(text)
}

// Summary renders the per-table row counts of a finished import.
func (r *Renderer) Summary(report *ecomload.ImportReport) string {
	nameWidth := len("table")
	countWidth := max(len("rows"), len(strconv.FormatInt(report.TotalRows(), 10)))
	for _, t := range report.Tables {
		nameWidth = max(nameWidth, len(t.Table))
	}

	var b strings.Builder
	b.WriteString(r.style(TitleStyle, "Import "+report.RunID.String()))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s  %s\n",
		r.style(HeaderStyle, pad("table", nameWidth)),
		r.style(HeaderStyle, padLeft("rows", countWidth)))

	for _, t := range report.Tables {
		mark := " "
		if r.styled {
			mark = r.style(CountStyle, SymbolCheck)
		}
		fmt.Fprintf(&b, "%s  %s %s\n",
			pad(t.Table, nameWidth),
			r.style(CountStyle, padLeft(strconv.FormatInt(t.Rows, 10), countWidth)),
			mark)
	}

	fmt.Fprintf(&b, "%s  %s\n",
		pad("total", nameWidth),
		padLeft(strconv.FormatInt(report.TotalRows(), 10), countWidth))
	b.WriteString(r.style(MutedStyle, fmt.Sprintf("%s in %s", report.Location, report.Duration.Round(time.Millisecond))))

	if r.styled {
		return BoxStyle.Render(b.String()) + "\n"
	}
	return b.String() + "\n"
}

// Tables renders the configuration table: destination, source file and
// numeric columns for each entry.
func (r *Renderer) Tables(specs []ecomload.TableSpec) string {
	nameWidth, fileWidth := len("table"), len("file")
	for _, s := range specs {
		nameWidth = max(nameWidth, len(s.Name))
		fileWidth = max(fileWidth, len(s.Filename))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s  %s\n",
		r.style(HeaderStyle, pad("table", nameWidth)),
		r.style(HeaderStyle, pad("file", fileWidth)),
		r.style(HeaderStyle, "numeric columns"))
	for _, s := range specs {
		numeric := strings.Join(s.NumericColumns, ", ")
		if numeric == "" {
			numeric = r.style(MutedStyle, "-")
		}
		fmt.Fprintf(&b, "%s  %s  %s\n", pad(s.Name, nameWidth), pad(s.Filename, fileWidth), numeric)
	}
	return b.String()
}

func pad(s string, width int) string {
	return s + strings.Repeat(" ", max(0, width-len(s)))
}

func padLeft(s string, width int) string {
	return strings.Repeat(" ", max(0, width-len(s))) + s
}
