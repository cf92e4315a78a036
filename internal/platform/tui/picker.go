package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pipes/internal/core"
	"github.com/vovakirdan/tui-pipes/internal/games/pipes/levels"
	"github.com/vovakirdan/tui-pipes/internal/storage"
)

var (
	pickerTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	pickerCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	pickerBestStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	pickerDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// LevelPickerModel is the Bubble Tea model for choosing a starting level.
type LevelPickerModel struct {
	levels         []levels.Level
	best           map[string]storage.LevelResultEntry
	cursor         int
	width          int
	height         int
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	quitting       bool
	selected       *levels.Level // Set when user picks a level
	openScoreboard bool          // True if user pressed Tab for scoreboard
}

// NewLevelPickerModel creates a picker over the campaign. Best results are
// read from store when it is non-nil.
func NewLevelPickerModel(lvls []levels.Level, store *storage.Store, cfg core.RuntimeConfig) LevelPickerModel {
	m := LevelPickerModel{
		levels:    lvls,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}

	if store != nil {
		if best, err := store.BestLevelResults(); err == nil {
			m.best = best
		}
	}
	return m
}

// Init initializes the picker model.
func (m LevelPickerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the picker.
func (m LevelPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

func (m LevelPickerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.levels)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.levels) > 0 {
			selected := m.levels[m.cursor]
			m.selected = &selected
			return m, tea.Quit
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the level list.
func (m LevelPickerModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(pickerTitleStyle.Render("P I P E   M A Z E"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a starting level", m.width))
	b.WriteString("\n\n")

	if len(m.levels) == 0 {
		b.WriteString(centerText(pickerDimStyle.Render("No levels found."), m.width))
		b.WriteString("\n")
	}

	for i, lvl := range m.levels {
		line := m.levelLine(lvl)
		if i == m.cursor {
			line = pickerCursorStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Play  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(pickerDimStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// levelLine formats one row: id, name, size and the best recorded result.
func (m LevelPickerModel) levelLine(lvl levels.Level) string {
	size := fmt.Sprintf("%dx%d", lvl.Columns, lvl.Height())
	line := fmt.Sprintf("%-4s %-14s %-6s", lvl.ID, lvl.Name, size)

	best, ok := m.best[lvl.ID]
	if !ok {
		return line + pickerDimStyle.Render("  --")
	}
	return line + pickerBestStyle.Render(fmt.Sprintf("  best %d turns", best.Rotations))
}

// Selected returns the chosen level, or nil if none was chosen.
func (m LevelPickerModel) Selected() *levels.Level {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m LevelPickerModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m LevelPickerModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m LevelPickerModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}

// PickerResult holds the result of running the level picker.
type PickerResult struct {
	LevelID         string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunLevelPicker runs the picker and returns the selection result.
func RunLevelPicker(lvls []levels.Level, store *storage.Store, cfg core.RuntimeConfig) (PickerResult, error) {
	model := NewLevelPickerModel(lvls, store, cfg)

	p := tea.NewProgram(model, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return PickerResult{Config: cfg}, err
	}

	m, ok := finalModel.(LevelPickerModel)
	if !ok {
		return PickerResult{Config: cfg, Quit: true}, nil
	}

	result := PickerResult{Config: m.Config()}

	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.Selected() != nil:
		result.LevelID = m.Selected().ID
	default:
		result.Quit = true
	}

	return result, nil
}
