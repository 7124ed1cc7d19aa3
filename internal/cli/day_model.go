package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pbarbosa/vida/internal/cli/formatter"
	"github.com/pbarbosa/vida/internal/contract"
	"github.com/pbarbosa/vida/internal/domain"
)

// dayLoadedMsg carries one finished day fetch. The date tags which day the
// fetch was issued for: responses for a day the user has since navigated
// away from are discarded on arrival.
type dayLoadedMsg struct {
	date   time.Time
	withAI bool
	resp   *contract.DayResponse
	err    error
}

// dayModel is the navigable day view. Each rendered day shows its
// deterministic items immediately; suggestions stream in afterwards.
type dayModel struct {
	app  *App
	date time.Time

	resp    *contract.DayResponse
	respAI  bool // resp came from the suggestion-bearing fetch
	spin    spinner.Model
	loading bool
	err     error

	quitting bool
}

func newDayModel(app *App, date time.Time) dayModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = formatter.StyleHeader
	return dayModel{app: app, date: date, spin: s, loading: true}
}

func (m dayModel) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.loadDay(m.date, false), m.loadDay(m.date, true))
}

// loadDay fetches one day as a command, tagged with its date.
func (m dayModel) loadDay(date time.Time, withAI bool) tea.Cmd {
	app := m.app
	return func() tea.Msg {
		req := contract.NewDayRequest(date)
		req.OriginHour = app.OriginHour
		req.IncludeAI = withAI
		resp, err := app.Agenda.Day(context.Background(), req)
		return dayLoadedMsg{date: date, withAI: withAI, resp: resp, err: err}
	}
}

func (m dayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "left", "h":
			return m.navigate(m.date.AddDate(0, 0, -1))
		case "right", "l":
			return m.navigate(m.date.AddDate(0, 0, 1))
		case "t":
			now := time.Now()
			return m.navigate(time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local))
		case "r":
			m.loading = true
			return m, m.loadDay(m.date, true)
		}

	case dayLoadedMsg:
		if !domain.SameDay(msg.date, m.date) {
			// Stale response from a day we've navigated away from.
			return m, nil
		}
		if msg.err != nil {
			m.err = msg.err
			m.loading = false
			return m, nil
		}
		// A deterministic-only response never overwrites one from the
		// suggestion fetch, even when the model proposed items but no tip.
		if !msg.withAI && m.respAI {
			return m, nil
		}
		m.resp = msg.resp
		m.respAI = msg.withAI
		m.err = nil
		if msg.withAI {
			m.loading = false
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	return m, nil
}

// navigate switches the view to another day and kicks off its fetches.
// In-flight responses for the old day will arrive date-tagged and be dropped.
func (m dayModel) navigate(date time.Time) (tea.Model, tea.Cmd) {
	m.date = date
	m.resp = nil
	m.respAI = false
	m.err = nil
	m.loading = true
	return m, tea.Batch(m.loadDay(date, false), m.loadDay(date, true))
}

func (m dayModel) View() string {
	if m.quitting {
		return ""
	}

	out := formatter.DayHeader(domain.DateString(m.date), m.date.Weekday().String()) + "\n\n"

	switch {
	case m.err != nil:
		out += formatter.StyleRed.Render("error: "+m.err.Error()) + "\n"
	case m.resp == nil:
		out += m.spin.View() + " loading…\n"
	default:
		out += formatter.Timeline(m.resp.Layout, m.app.OriginHour) + "\n"
		if m.resp.AIWarning != "" {
			out += "\n" + formatter.Dim(m.resp.AIWarning) + "\n"
		}
		if hl := formatter.Highlights(m.resp.Highlights); hl != "" {
			out += "\n" + hl
		}
		if m.resp.Suggestion != "" {
			out += "\n" + formatter.Bold("Tip: ") + m.resp.Suggestion + "\n"
		}
	}

	if m.loading && m.err == nil {
		out += "\n" + m.spin.View() + formatter.Dim(" fetching suggestions…") + "\n"
	}

	out += "\n" + formatter.Dim("←/→ day · t today · r refresh · q quit")
	return out
}
