package main

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/strkit/strkit/bstr"
	"github.com/strkit/strkit/cmd/strexplorer/logger"
	"github.com/strkit/strkit/internal/buf"
	"github.com/strkit/strkit/internal/mmfile"
)

const bytesPerRow = 16

// model is the explorer's single bubbletea model: one container, a
// scrollable hex view and a one-line status bar.
type model struct {
	path string
	str  *bstr.String

	width  int
	height int
	top    int // first visible hex row

	gotoMode  bool
	gotoInput string
	status    string
}

func newModel(path string) (*model, error) {
	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = cleanup() }()

	// The container owns its content, so copy out of the mapping.
	owned := make([]byte, len(data)+1)
	copy(owned, data)
	s := bstr.Wrap(owned, len(data))

	logger.Debug("loaded container", "len", s.Len(), "capacity", s.Capa(), "inline", s.IsInline())
	return &model{path: path, str: s}, nil
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.clampScroll()
		return m, nil
	case tea.KeyMsg:
		if m.gotoMode {
			return m.updateGoto(msg)
		}
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m *model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.str.Free()
		return m, tea.Quit
	case "up", "k":
		m.top--
	case "down", "j":
		m.top++
	case "pgup":
		m.top -= m.viewRows()
	case "pgdown", " ":
		m.top += m.viewRows()
	case "g", "home":
		m.top = 0
	case "G", "end":
		m.top = m.totalRows()
	case ":":
		m.gotoMode = true
		m.gotoInput = ""
		m.status = ""
	case "c":
		before := m.str.Capa()
		m.str.Compact()
		logger.Info("compacted", "capacity_before", before, "capacity_after", m.str.Capa())
		m.status = "compacted"
	case "f":
		m.str.Freeze()
		logger.Info("frozen", "len", m.str.Len())
		m.status = "frozen: further edits are no-ops"
	}
	m.clampScroll()
	return m, nil
}

// updateGoto handles the ": <offset>" prompt. Offsets resolve like edit
// positions: negative values count back from the end.
func (m *model) updateGoto(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.gotoMode = false
	case "enter":
		m.gotoMode = false
		off, err := strconv.Atoi(m.gotoInput)
		if err != nil {
			m.status = "invalid offset: " + m.gotoInput
			return m, nil
		}
		resolved := buf.Clamp(buf.ResolvePos(off, m.str.Len()), 0, m.str.Len())
		m.top = resolved / bytesPerRow
		m.status = "offset " + strconv.Itoa(resolved)
	case "backspace":
		if len(m.gotoInput) > 0 {
			m.gotoInput = m.gotoInput[:len(m.gotoInput)-1]
		}
	default:
		if len(msg.String()) == 1 {
			m.gotoInput += msg.String()
		}
	}
	m.clampScroll()
	return m, nil
}

func (m *model) totalRows() int {
	return (m.str.Len() + bytesPerRow - 1) / bytesPerRow
}

// viewRows is the number of hex rows that fit between header and status.
func (m *model) viewRows() int {
	rows := m.height - 4
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (m *model) clampScroll() {
	maxTop := m.totalRows() - m.viewRows()
	if maxTop < 0 {
		maxTop = 0
	}
	m.top = buf.Clamp(m.top, 0, maxTop)
}
