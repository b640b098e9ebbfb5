// Package tui provides an interactive terminal calculator for pitches and intervals
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/james-see/interval/pkg/converter"
	"github.com/james-see/interval/pkg/theory"
)

var (
	inkBlue    = lipgloss.Color("#4FC3F7")
	brassGold  = lipgloss.Color("#FFD54F")
	paperWhite = lipgloss.Color("#ECEFF1")
	slateGray  = lipgloss.Color("#37474F")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(inkBlue).
			Background(slateGray).
			Padding(0, 2).
			MarginBottom(1)

	menuStyle = lipgloss.NewStyle().
			Foreground(paperWhite).
			PaddingLeft(2)

	selectedStyle = lipgloss.NewStyle().
			Foreground(inkBlue).
			Bold(true).
			PaddingLeft(2)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5252")).
			Bold(true)

	resultStyle = lipgloss.NewStyle().
			Foreground(brassGold)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#78909C")).
			MarginTop(1)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(inkBlue).
			Padding(1, 2)
)

// State represents the current TUI state
type State int

const (
	StateMenu State = iota
	StateInput
	StateResult
)

// Mode selects what the input line is read as
type Mode int

const (
	ModePitch Mode = iota
	ModeSemitonePitch
	ModeInterval
	ModeSemitoneInterval
	ModeBetween
	ModeMelody
)

// MenuItem represents a menu option
type MenuItem struct {
	Title       string
	Description string
	Placeholder string
	Mode        Mode
	Exit        bool
}

var menuItems = []MenuItem{
	{Title: "Pitch", Description: "Name a pitch token such as c#' or bb,", Placeholder: "c#'", Mode: ModePitch},
	{Title: "Semitone → Pitch", Description: "Spell a semitone value (48 is c)", Placeholder: "61", Mode: ModeSemitonePitch},
	{Title: "Interval", Description: "Name an interval token such as M3 or -p5", Placeholder: "M3", Mode: ModeInterval},
	{Title: "Semitones → Interval", Description: "Spell a signed semitone count", Placeholder: "7", Mode: ModeSemitoneInterval},
	{Title: "Between", Description: "Interval from one pitch to another", Placeholder: "c e", Mode: ModeBetween},
	{Title: "Melody", Description: "Walk a line of pitch tokens", Placeholder: "c e a c'", Mode: ModeMelody},
	{Title: "Exit", Description: "Exit the application", Exit: true},
}

// Model represents the TUI model
type Model struct {
	state     State
	menuIndex int
	input     textinput.Model
	selected  MenuItem
	lines     []string
	err       error
	width     int
	height    int
}

// New creates a new TUI model
func New() Model {
	ti := textinput.New()
	ti.CharLimit = 256
	ti.Width = 40
	ti.PromptStyle = lipgloss.NewStyle().Foreground(inkBlue)

	return Model{
		state: StateMenu,
		input: ti,
	}
}

// Init initializes the TUI model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles TUI updates
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch m.state {
		case StateMenu:
			return m.updateMenu(msg)
		case StateInput:
			return m.updateInput(msg)
		case StateResult:
			return m.updateResult(msg)
		}
	}

	if m.state == StateInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.menuIndex > 0 {
			m.menuIndex--
		}
	case "down", "j":
		if m.menuIndex < len(menuItems)-1 {
			m.menuIndex++
		}
	case "enter":
		item := menuItems[m.menuIndex]
		if item.Exit {
			return m, tea.Quit
		}
		m.selected = item
		m.state = StateInput
		m.input.Reset()
		m.input.Placeholder = item.Placeholder
		return m, m.input.Focus()
	case "q", "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.input.Blur()
		m.state = StateMenu
		return m, nil
	case "ctrl+c":
		return m, tea.Quit
	case "enter":
		m.lines, m.err = evaluate(m.selected.Mode, m.input.Value())
		m.input.Blur()
		m.state = StateResult
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateResult(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.state = StateInput
		m.input.Reset()
		m.lines, m.err = nil, nil
		return m, m.input.Focus()
	case "esc":
		m.state = StateMenu
		m.lines, m.err = nil, nil
		return m, nil
	case "q", "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

func evaluate(mode Mode, input string) ([]string, error) {
	input = strings.TrimSpace(input)
	switch mode {
	case ModePitch:
		p, err := theory.ParsePitch(input)
		if err != nil {
			return nil, err
		}
		return describePitch(p), nil
	case ModeSemitonePitch:
		n, err := strconv.Atoi(input)
		if err != nil {
			return nil, fmt.Errorf("not an integer: %q", input)
		}
		return describePitch(theory.PitchFromInteger(n)), nil
	case ModeInterval:
		iv, err := theory.ParseInterval(input)
		if err != nil {
			return nil, err
		}
		return describeInterval(iv)
	case ModeSemitoneInterval:
		n, err := strconv.Atoi(input)
		if err != nil {
			return nil, fmt.Errorf("not an integer: %q", input)
		}
		return describeInterval(theory.IntervalFromInteger(n))
	case ModeBetween:
		pitches, err := converter.ParseTokens(input)
		if err != nil {
			return nil, err
		}
		if len(pitches) != 2 {
			return nil, fmt.Errorf("want two pitches, got %d", len(pitches))
		}
		return describeInterval(theory.Between(pitches[0], pitches[1]))
	case ModeMelody:
		pitches, err := converter.ParseTokens(input)
		if err != nil {
			return nil, err
		}
		return describeMelody(converter.Analyze(pitches))
	}
	return nil, fmt.Errorf("unknown mode %d", mode)
}

func describePitch(p theory.Pitch) []string {
	name, err := p.LongName()
	if err != nil {
		name = "(no name: " + err.Error() + ")"
	}
	lines := []string{
		fmt.Sprintf("Name:       %s", name),
		fmt.Sprintf("Short:      %s", p.ShortName()),
		fmt.Sprintf("Notename:   %c", p.Notename()),
		fmt.Sprintf("Octave:     %d", p.Octave()),
		fmt.Sprintf("Accidental: %d", p.Accidental()),
		fmt.Sprintf("Semitone:   %d", p.Semitone()),
	}
	if key, err := p.MIDINote(); err == nil {
		lines = append(lines, fmt.Sprintf("MIDI:       %d", key))
	}
	return append(lines, fmt.Sprintf("Frequency:  %.2f Hz", p.Frequency()))
}

func describeInterval(iv theory.Interval) ([]string, error) {
	name, err := iv.LongName()
	if err != nil {
		return nil, err
	}
	dir := "up"
	if iv.Direction() == theory.Descending {
		dir = "down"
	}
	return []string{
		fmt.Sprintf("Name:      %s %s", name, dir),
		fmt.Sprintf("Short:     %s", iv.ShortName()),
		fmt.Sprintf("Octaves:   %d", iv.Octave()),
		fmt.Sprintf("Semitones: %d", iv.Semitones()),
	}, nil
}

func describeMelody(steps []converter.Step) ([]string, error) {
	lines := make([]string, 0, len(steps))
	for _, st := range steps {
		line := fmt.Sprintf("%-8s %3d", st.ShortName, st.Semitone)
		if st.Interval != nil {
			name, err := st.Interval.LongName()
			if err != nil {
				return nil, err
			}
			line += fmt.Sprintf("  → %s (%s)", name, st.Interval.ShortName())
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// View renders the TUI
func (m Model) View() string {
	var s strings.Builder

	switch m.state {
	case StateMenu:
		s.WriteString(m.viewMenu())
	case StateInput:
		s.WriteString(m.viewInput())
	case StateResult:
		s.WriteString(m.viewResult())
	}

	s.WriteString("\n")
	s.WriteString(helpStyle.Render("↑/↓: navigate • enter: select • esc: back • q: quit"))

	return s.String()
}

func (m Model) viewMenu() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render(" INTERVAL "))
	s.WriteString("\n\n")

	for i, item := range menuItems {
		if i == m.menuIndex {
			s.WriteString(selectedStyle.Render(fmt.Sprintf("▸ %s", item.Title)))
			s.WriteString("\n")
			s.WriteString(lipgloss.NewStyle().Foreground(brassGold).PaddingLeft(4).Render(item.Description))
		} else {
			s.WriteString(menuStyle.Render(fmt.Sprintf("  %s", item.Title)))
		}
		s.WriteString("\n")
	}

	return boxStyle.Render(s.String())
}

func (m Model) viewInput() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render(fmt.Sprintf(" %s ", strings.ToUpper(m.selected.Title))))
	s.WriteString("\n\n")
	s.WriteString(m.selected.Description)
	s.WriteString("\n\n")
	s.WriteString(m.input.View())

	return boxStyle.Render(s.String())
}

func (m Model) viewResult() string {
	var s strings.Builder

	if m.err != nil {
		s.WriteString(titleStyle.Render(" ERROR "))
		s.WriteString("\n\n")
		s.WriteString(errorStyle.Render(fmt.Sprintf("✗ %s", m.err.Error())))
	} else {
		s.WriteString(titleStyle.Render(fmt.Sprintf(" %s ", strings.ToUpper(m.selected.Title))))
		s.WriteString("\n\n")
		s.WriteString(resultStyle.Render(strings.Join(m.lines, "\n")))
	}

	s.WriteString("\n\n")
	s.WriteString(helpStyle.Render("enter: another • esc: menu"))

	return boxStyle.Render(s.String())
}

// Run starts the TUI application
func Run() error {
	p := tea.NewProgram(New(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
