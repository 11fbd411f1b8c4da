// Package tui is the interactive dashboard launched by running routinely
// with no arguments. It shows the profile, today's schedule and the 7-day
// trend, lets the user resolve instances with single keys, and surfaces
// due-soon reminders on a periodic tick.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mbeckers/routinely/internal/cli/formatter"
	"github.com/mbeckers/routinely/internal/domain"
	"github.com/mbeckers/routinely/internal/service"
)

const dueCheckInterval = 30 * time.Second

// Services bundles what the dashboard needs from the service layer.
type Services struct {
	Tracker  service.TrackerService
	Progress service.ProgressService
	Notify   service.NotifyService
	Profiles service.ProfileService
}

// Run starts the dashboard and blocks until the user quits.
func Run(svc Services) error {
	_, err := tea.NewProgram(newModel(svc), tea.WithAltScreen()).Run()
	return err
}

type statusMsg struct {
	view *service.StatusView
}

type dueMsg struct {
	due []domain.TaskInstance
}

type tickMsg time.Time

type errMsg struct {
	err error
}

type model struct {
	svc      Services
	status   *service.StatusView
	levelBar progress.Model
	cursor   int
	flash    string
	err      error
	width    int
}

func newModel(svc Services) model {
	bar := progress.New(
		progress.WithGradient("#d3869b", "#fe8019"),
		progress.WithWidth(30),
		progress.WithoutPercentage(),
	)
	return model{svc: svc, levelBar: bar}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.loadStatus(), tick())
}

func tick() tea.Cmd {
	return tea.Tick(dueCheckInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m model) loadStatus() tea.Cmd {
	return func() tea.Msg {
		view, err := m.svc.Progress.Status(context.Background(), time.Now())
		if err != nil {
			return errMsg{err}
		}
		return statusMsg{view}
	}
}

func (m model) checkDueSoon() tea.Cmd {
	return func() tea.Msg {
		due, err := m.svc.Notify.CheckDueSoon(context.Background(), time.Now())
		if err != nil {
			return errMsg{err}
		}
		return dueMsg{due}
	}
}

func (m model) resolveSelected(status domain.CompletionStatus) tea.Cmd {
	if m.status == nil || m.cursor >= len(m.status.Today.Instances) {
		return nil
	}
	inst := m.status.Today.Instances[m.cursor]
	if inst.Recorded {
		return nil
	}
	return func() tea.Msg {
		var err error
		if status == domain.StatusCompleted {
			_, err = m.svc.Tracker.Complete(context.Background(), inst.InstanceID(), time.Now())
		} else {
			_, err = m.svc.Tracker.Skip(context.Background(), inst.InstanceID(), time.Now())
		}
		if err != nil {
			return errMsg{err}
		}
		view, err := m.svc.Progress.Status(context.Background(), time.Now())
		if err != nil {
			return errMsg{err}
		}
		return statusMsg{view}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "j", "down":
			if m.status != nil && m.cursor < len(m.status.Today.Instances)-1 {
				m.cursor++
			}
		case "k", "up":
			if m.cursor > 0 {
				m.cursor--
			}
		case "c", "enter":
			return m, m.resolveSelected(domain.StatusCompleted)
		case "s":
			return m, m.resolveSelected(domain.StatusSkipped)
		case "r":
			return m, m.loadStatus()
		}
		return m, nil

	case statusMsg:
		m.status = msg.view
		m.err = nil
		if m.cursor >= len(m.status.Today.Instances) {
			m.cursor = 0
		}
		return m, nil

	case dueMsg:
		if len(msg.due) > 0 {
			names := make([]string, 0, len(msg.due))
			for _, inst := range msg.due {
				names = append(names, fmt.Sprintf("%s at %s", inst.Label(), inst.Time))
			}
			m.flash = "⏰ Due soon: " + strings.Join(names, ", ")
		}
		return m, nil

	case tickMsg:
		return m, tea.Batch(m.checkDueSoon(), m.loadStatus(), tick())

	case errMsg:
		m.err = msg.err
		return m, nil
	}
	return m, nil
}

var (
	titleStyle  = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	cursorStyle = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	flashStyle  = lipgloss.NewStyle().Foreground(formatter.ColorYellow).Bold(true)
	errStyle    = lipgloss.NewStyle().Foreground(formatter.ColorRed)
	helpStyle   = lipgloss.NewStyle().Foreground(formatter.ColorDim)
)

func (m model) View() string {
	if m.status == nil {
		if m.err != nil {
			return errStyle.Render("error: "+m.err.Error()) + "\n"
		}
		return helpStyle.Render("loading...") + "\n"
	}

	var b strings.Builder
	p := m.status.Profile

	b.WriteString(titleStyle.Render("ROUTINELY") + "  " + helpStyle.Render(p.Name) + "\n\n")
	b.WriteString(fmt.Sprintf("Level %d  %s  %d/%d\n\n",
		p.Level,
		m.levelBar.ViewAs(float64(p.Points)/float64(domain.LevelThreshold)),
		p.Points, domain.LevelThreshold))

	b.WriteString(formatter.Header("Today") + "\n")
	if len(m.status.Today.Instances) == 0 {
		b.WriteString(helpStyle.Render("Nothing scheduled.") + "\n")
	}
	for i, inst := range m.status.Today.Instances {
		marker := "  "
		if i == m.cursor {
			marker = cursorStyle.Render("▸ ")
		}
		b.WriteString(fmt.Sprintf("%s%s  %s  %s\n",
			marker,
			formatter.OutcomePill(inst.Status, inst.Recorded),
			inst.Label(),
			helpStyle.Render(inst.Time)))
	}
	b.WriteString("\n" + formatter.RenderProgress(m.status.Today.Progress, 30) + "\n")

	b.WriteString("\n" + formatter.Header("7-day trend") + "\n")
	b.WriteString(formatter.RenderTrend(m.status.History) + "\n")

	if m.flash != "" {
		b.WriteString("\n" + flashStyle.Render(m.flash) + "\n")
	}
	if m.err != nil {
		b.WriteString("\n" + errStyle.Render("error: "+m.err.Error()) + "\n")
	}

	b.WriteString("\n" + helpStyle.Render("j/k move · c complete · s skip · r refresh · q quit") + "\n")
	return b.String()
}
