package ui

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/samber/lo"
	"golang.org/x/term"

	"screenwave/internal/media"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(accent).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	titleStyle  = lipgloss.NewStyle().Bold(true)
)

// Styled reports whether f is a terminal that should get colors and borders.
func Styled(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Resolution describes a format's picture size.
func Resolution(f media.FormatVariant) string {
	w, hasW := f.Width.Get()
	h, hasH := f.Height.Get()
	switch {
	case hasW && hasH:
		return fmt.Sprintf("%dx%d", w, h)
	case hasH:
		return fmt.Sprintf("%dp", h)
	case hasW:
		return fmt.Sprintf("%dw", w)
	case f.AudioOnly:
		return "audio only"
	default:
		return "unknown"
	}
}

// FormatLabel is a one-line description of a format, used by the picker.
func FormatLabel(f media.FormatVariant) string {
	parts := []string{lo.Ternary(f.FormatID != "", f.FormatID, "default"), Resolution(f)}
	if kbps, ok := f.BitrateKbps.Get(); ok {
		parts = append(parts, strconv.Itoa(kbps)+"k")
	}
	return strings.Join(parts, "  ")
}

// Render formats a resolved video as a header and a table of its formats.
func Render(res *media.VideoResult, styled bool) string {
	var b strings.Builder

	title := res.Title
	if styled {
		title = titleStyle.Render(title)
	}
	fmt.Fprintf(&b, "%s [%s]\n", title, res.ID)
	if d, ok := res.UploadDate.Get(); ok {
		fmt.Fprintf(&b, "Uploaded: %s\n", d)
	}
	if th, ok := res.Thumbnail.Get(); ok {
		fmt.Fprintf(&b, "Thumbnail: %s\n", th)
	}
	if desc, ok := res.Description.Get(); ok {
		fmt.Fprintf(&b, "\n%s\n", desc)
	}
	b.WriteString("\n")
	b.WriteString(FormatTable(res.Formats, styled))
	b.WriteString("\n")

	return b.String()
}

// FormatTable renders formats best first.
func FormatTable(formats []media.FormatVariant, styled bool) string {
	rows := lo.Map(formats, func(f media.FormatVariant, i int) []string {
		bitrate := "-"
		if kbps, ok := f.BitrateKbps.Get(); ok {
			bitrate = strconv.Itoa(kbps) + "k"
		}
		return []string{
			strconv.Itoa(i + 1),
			lo.Ternary(f.FormatID != "", f.FormatID, "-"),
			Resolution(f),
			bitrate,
			lo.Ternary(f.AudioOnly, "audio", "video"),
			f.URL,
		}
	})

	t := table.New().
		Headers("#", "FORMAT", "RESOLUTION", "BITRATE", "TYPE", "URL").
		Rows(rows...)

	if styled {
		t = t.Border(lipgloss.RoundedBorder()).
			BorderStyle(lipgloss.NewStyle().Foreground(accent)).
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == table.HeaderRow {
					return headerStyle
				}
				return cellStyle
			})
	} else {
		t = t.Border(lipgloss.ASCIIBorder())
	}

	return t.String()
}
