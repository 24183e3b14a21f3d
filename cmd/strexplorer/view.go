package main

import (
	"fmt"
	"strings"
)

func (m *model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("strexplorer") + " " + pathStyle.Render(m.path) + "\n\n")

	content := m.str.Bytes()
	start := m.top * bytesPerRow
	for row := 0; row < m.viewRows(); row++ {
		off := start + row*bytesPerRow
		if off >= len(content) {
			break
		}
		end := off + bytesPerRow
		if end > len(content) {
			end = len(content)
		}
		b.WriteString(renderRow(content[off:end], off))
		b.WriteByte('\n')
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	return b.String()
}

// renderRow formats one hex line: offset, byte columns, ASCII gutter.
func renderRow(line []byte, off int) string {
	var hexCols, ascii strings.Builder
	for i := 0; i < bytesPerRow; i++ {
		if i == bytesPerRow/2 {
			hexCols.WriteByte(' ')
		}
		if i >= len(line) {
			hexCols.WriteString("   ")
			continue
		}
		c := line[i]
		cell := fmt.Sprintf("%02x ", c)
		if c == 0 {
			cell = zeroByteStyle.Render(cell)
		}
		hexCols.WriteString(cell)
		if c >= 0x20 && c < 0x7F {
			ascii.WriteByte(c)
		} else {
			ascii.WriteByte('.')
		}
	}
	return offsetStyle.Render(fmt.Sprintf("%08x  ", off)) +
		hexCols.String() + " " + asciiStyle.Render("|"+ascii.String()+"|")
}

func (m *model) renderStatus() string {
	if m.gotoMode {
		return promptStyle.Render(": " + m.gotoInput)
	}

	layout := "heap"
	if m.str.IsInline() {
		layout = "inline"
	}
	line := fmt.Sprintf("len %d  capa %d  %s", m.str.Len(), m.str.Capa(), layout)
	if m.str.Frozen() {
		line += "  " + frozenStyle.Render("FROZEN")
	}
	if m.status != "" {
		line += "  * " + m.status
	}
	help := "  [q quit  : goto  c compact  f freeze]"
	return statusStyle.Render(line + help)
}
