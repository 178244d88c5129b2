// Command curvetui is a terminal host shell for the timecurve engine.
//
// It draws the visible viewport as a character plot and binds transport,
// zoom, pan, marker, and undo keys to engine operations. The engine owns
// all state; this shell only calls public operations and reads snapshots.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/robinz-labs/timecurve"
)

const plotRows = 14

type keyMap struct {
	PlayPause key.Binding
	Stop      key.Binding
	SeekBack  key.Binding
	SeekFwd   key.Binding
	PanBack   key.Binding
	PanFwd    key.Binding
	ZoomIn    key.Binding
	ZoomOut   key.Binding
	Marker    key.Binding
	Clear     key.Binding
	Undo      key.Binding
	Reset     key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		PlayPause: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "play/pause")),
		Stop:      key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "stop")),
		SeekBack:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "seek -1s")),
		SeekFwd:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "seek +1s")),
		PanBack:   key.NewBinding(key.WithKeys("["), key.WithHelp("[", "pan back")),
		PanFwd:    key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "pan forward")),
		ZoomIn:    key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "zoom in")),
		ZoomOut:   key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "zoom out")),
		Marker:    key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "marker at playhead")),
		Clear:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear markers")),
		Undo:      key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "undo")),
		Reset:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("114"))
	axisStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	curveStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("114"))
	markerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	playheadStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// tickMsg drives periodic redraws so playback is visible.
type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

type model struct {
	ed    *timecurve.Editor
	keys  keyMap
	width int
}

func newModel(ed *timecurve.Editor) model {
	return model{ed: ed, keys: defaultKeyMap(), width: 80}
}

func (m model) Init() tea.Cmd {
	return tick()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return m, tick()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.ed.Pause()
			return m, tea.Quit
		case key.Matches(msg, m.keys.PlayPause):
			if m.ed.IsPlaying() {
				m.ed.Pause()
			} else {
				m.ed.Play()
			}
		case key.Matches(msg, m.keys.Stop):
			m.ed.Stop()
		case key.Matches(msg, m.keys.SeekBack):
			m.ed.Seek(m.ed.PlayheadTime() - 1)
		case key.Matches(msg, m.keys.SeekFwd):
			m.ed.Seek(m.ed.PlayheadTime() + 1)
		case key.Matches(msg, m.keys.PanBack):
			m.ed.PanBy(-m.ed.Viewport().Duration / 4)
		case key.Matches(msg, m.keys.PanFwd):
			m.ed.PanBy(m.ed.Viewport().Duration / 4)
		case key.Matches(msg, m.keys.ZoomIn):
			m.ed.ZoomBy(-1)
		case key.Matches(msg, m.keys.ZoomOut):
			m.ed.ZoomBy(1)
		case key.Matches(msg, m.keys.Marker):
			m.ed.AddMarker(m.ed.PlayheadTime())
		case key.Matches(msg, m.keys.Clear):
			m.ed.ClearMarkers()
		case key.Matches(msg, m.keys.Undo):
			m.ed.Undo()
		case key.Matches(msg, m.keys.Reset):
			m.ed.Reset()
		}
	}
	return m, nil
}

func (m model) View() string {
	cols := m.width - 8
	if cols < 20 {
		cols = 20
	}
	vp := m.ed.Viewport()
	markers := m.ed.Markers()
	playhead := m.ed.PlayheadTime()

	colTime := func(c int) float64 {
		return vp.Start + (float64(c)+0.5)/float64(cols)*vp.Duration
	}
	timeCol := func(t float64) int {
		return int((t - vp.Start) / vp.Duration * float64(cols))
	}

	// Sample the curve into a row per column.
	rowFor := make([]int, cols)
	for c := 0; c < cols; c++ {
		v := m.ed.ValueAt(colTime(c))
		rowFor[c] = int(math.Round((1 - v/100) * float64(plotRows-1)))
	}
	markerCols := make(map[int]bool, len(markers))
	for _, t := range markers {
		if vp.Contains(t) {
			markerCols[timeCol(t)] = true
		}
	}
	playheadCol := -1
	if vp.Contains(playhead) {
		playheadCol = timeCol(playhead)
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("timecurve"))
	b.WriteString("\n\n")
	for r := 0; r < plotRows; r++ {
		val := 100 * (1 - float64(r)/float64(plotRows-1))
		b.WriteString(axisStyle.Render(fmt.Sprintf("%4.0f ", val)))
		for c := 0; c < cols; c++ {
			switch {
			case c == playheadCol:
				b.WriteString(playheadStyle.Render("┃"))
			case r == rowFor[c]:
				b.WriteString(curveStyle.Render("●"))
			case markerCols[c]:
				b.WriteString(markerStyle.Render("┆"))
			default:
				b.WriteString(axisStyle.Render("·"))
			}
		}
		b.WriteString("\n")
	}
	b.WriteString(axisStyle.Render(fmt.Sprintf("     %-8s%*s\n",
		formatClock(vp.Start), cols-8, formatClock(vp.End()))))

	state := "paused"
	if m.ed.IsPlaying() {
		state = "playing"
	}
	b.WriteString(statusStyle.Render(fmt.Sprintf(
		"\n t=%s  value=%5.1f  %s  window=%.0fs  markers=%d\n",
		formatClock(playhead), m.ed.ValueAt(playhead), state,
		vp.Duration, len(markers))))

	b.WriteString(helpStyle.Render(
		"\n space play/pause · s stop · ←/→ seek · [/] pan · +/- zoom · m marker · c clear · u undo · r reset · q quit\n"))
	return b.String()
}

func formatClock(t float64) string {
	total := int(t + 0.5)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

func main() {
	var (
		scenePath = flag.String("scene", "", "scene YAML file (optional)")
		duration  = flag.Float64("duration", timecurve.DefaultTotalDuration, "timeline length, seconds")
	)
	flag.Parse()

	var ed *timecurve.Editor
	if *scenePath != "" {
		scene, err := timecurve.ReadScene(*scenePath)
		if err != nil {
			log.Fatalf("Failed to read scene: %v", err)
		}
		ed = timecurve.NewFromScene(scene)
	} else {
		ed = timecurve.New(timecurve.WithTotalDuration(*duration))
	}

	if _, err := tea.NewProgram(newModel(ed), tea.WithAltScreen()).Run(); err != nil {
		log.Fatalf("curvetui: %v", err)
	}
}
