package tui

import (
	"fmt"
	"log"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/lipgloss"
	"github.com/vedantwpatil/color-picker/internal/clipboard"
	"github.com/vedantwpatil/color-picker/internal/config"
	"github.com/vedantwpatil/color-picker/internal/picker"
	"github.com/vedantwpatil/color-picker/internal/tracking"
)

// pointerMsg carries a tracker event into the update loop.
type pointerMsg tracking.Event

// activateMsg starts tracking from inside the update loop.
type activateMsg struct{}

// copiedMsg reports the outcome of a clipboard write.
type copiedMsg struct {
	hex string
	err error
}

// Run shows the picker panel until the user quits.
func Run(cfg *config.Config, p *picker.Picker, clip clipboard.Writer) error {
	m := newModel(cfg, p, clip)
	prog := tea.NewProgram(m)
	m.send = func(ev tracking.Event) { prog.Send(pointerMsg(ev)) }

	_, err := prog.Run()
	// The hook must not outlive the panel even if bubbletea exits early.
	p.Deactivate()
	return err
}

// model is the bubbletea model for the picker panel. All picker calls happen
// in Update, so the picker is only ever touched by the bubbletea loop.
type model struct {
	picker *picker.Picker
	clip   clipboard.Writer
	send   tracking.Handler

	autoStart  bool
	copyOnPick bool
	swatchW    int
	swatchH    int

	status    string
	statusErr bool
	width     int
}

func newModel(cfg *config.Config, p *picker.Picker, clip clipboard.Writer) *model {
	return &model{
		picker:     p,
		clip:       clip,
		autoStart:  cfg.Tracking.AutoStart,
		copyOnPick: cfg.Clipboard.CopyOnPick,
		swatchW:    cfg.Panel.SwatchWidth,
		swatchH:    cfg.Panel.SwatchHeight,
	}
}

func (m *model) Init() tea.Cmd {
	if m.autoStart {
		return func() tea.Msg { return activateMsg{} }
	}
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyPressMsg:
		return m.handleKey(msg)

	case activateMsg:
		m.picker.Activate(m.send)
		m.setStatus("tracking, click to pick", false)
		return m, nil

	case pointerMsg:
		snap, changed := m.picker.Handle(tracking.Event(msg))
		if changed && snap.Picked {
			m.setStatus("picked "+snap.Color.Hex(), false)
			if m.copyOnPick && snap.HasColor {
				return m, m.copy(snap.Color.Hex())
			}
		}
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			log.Printf("tui: %v", msg.err)
			m.setStatus(msg.err.Error(), true)
		} else {
			m.setStatus("copied "+msg.hex, false)
		}
		return m, nil
	}
	return m, nil
}

func (m *model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.picker.Deactivate()
		return m, tea.Quit
	case "p", "space":
		m.picker.Toggle(m.send)
		if m.picker.Snapshot().State == picker.Tracking {
			m.setStatus("tracking, click to pick", false)
		} else {
			m.setStatus("paused", false)
		}
	case "c", "y":
		snap := m.picker.Snapshot()
		if !snap.HasColor {
			m.setStatus("nothing to copy yet", true)
			return m, nil
		}
		return m, m.copy(snap.Color.Hex())
	}
	return m, nil
}

func (m *model) copy(hex string) tea.Cmd {
	clip := m.clip
	return func() tea.Msg {
		return copiedMsg{hex: hex, err: clip.WriteText(hex)}
	}
}

func (m *model) setStatus(s string, isErr bool) {
	m.status = s
	m.statusErr = isErr
}

func (m *model) View() tea.View {
	var v tea.View
	v.SetContent(m.render())
	return v
}

func (m *model) render() string {
	snap := m.picker.Snapshot()

	state := lipgloss.NewStyle().Foreground(colorIdle).Render("○ idle")
	if snap.State == picker.Tracking {
		state = lipgloss.NewStyle().Foreground(colorActive).Render("● tracking")
	}
	title := titleStyle.Render("colorpicker") + "  " + state

	fill := lipgloss.NewStyle().Width(m.swatchW).Height(m.swatchH)
	hex := "Press p to start"
	var rows []string
	if snap.HasColor {
		hex = snap.Color.Hex()
		fill = fill.Background(lipgloss.Color(hex))
		h, s, l := snap.Color.HSL()
		rows = append(rows,
			row("rgb", fmt.Sprintf("%d %d %d", snap.Color.R, snap.Color.G, snap.Color.B)),
			row("hsl", fmt.Sprintf("%.0f° %.0f%% %.0f%%", h, s*100, l*100)),
		)
	}
	rows = append(rows,
		row("at", fmt.Sprintf("%.0f, %.0f", snap.Point.X, snap.Point.Y)),
		row("tip", fmt.Sprintf("%.0f, %.0f", snap.Tooltip.X, snap.Tooltip.Y)),
	)

	info := infoStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		append([]string{hexStyle.Render(hex)}, rows...)...))
	body := lipgloss.JoinHorizontal(lipgloss.Top, swatchFrame.Render(fill.Render("")), info)

	status := helpStyle.Render(m.status)
	if m.statusErr {
		status = errorStyle.Render(m.status)
	}
	help := helpStyle.Render("p/space toggle · c copy · q quit")

	return panelStyle.Render(strings.Join([]string{title, "", body, "", status, help}, "\n"))
}

func row(label, value string) string {
	return labelStyle.Render(label) + value
}
