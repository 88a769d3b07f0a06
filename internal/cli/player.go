package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/katalvlaran/dptrace/problem"
	"github.com/katalvlaran/dptrace/trace"
)

// PlayerModel is the bubbletea model for stepping through a solution.
// Moving never re-runs the engine: it only changes the playback cursor.
type PlayerModel struct {
	Solution problem.Solution
	Playback *trace.Playback[problem.Frame]
	Quit     bool
}

// NewPlayerModel creates a player positioned at the first frame.
func NewPlayerModel(sol problem.Solution) PlayerModel {
	return PlayerModel{
		Solution: sol,
		Playback: trace.NewPlayback(sol.Frames),
	}
}

func (m PlayerModel) Init() tea.Cmd {
	return nil
}

func (m PlayerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c", "esc":
		m.Quit = true
		return m, tea.Quit
	case "right", "l", "n", " ":
		m.Playback.Next()
	case "left", "h", "p":
		m.Playback.Prev()
	case "home", "g":
		m.Playback.First()
	case "end", "G":
		m.Playback.Last()
	}
	return m, nil
}

func (m PlayerModel) View() string {
	var b strings.Builder

	b.WriteString(renderSummary(m.Solution))
	b.WriteString("\n")

	frame, ok := m.Playback.Current()
	if !ok {
		b.WriteString(styleDim.Render("no steps recorded"))
		b.WriteString("\n")
	} else {
		b.WriteString(renderFrame(frame, m.Playback.Index(), m.Playback.Len()))
	}

	b.WriteString("\n")
	b.WriteString(styleDim.Render(fmt.Sprintf("←/→ step  home/end jump  q quit  [%d/%d]",
		min(m.Playback.Index()+1, m.Playback.Len()), m.Playback.Len())))
	b.WriteString("\n")

	return b.String()
}
