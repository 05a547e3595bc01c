package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-currency-converter/internal/service"
	"github.com/MKhiriev/go-currency-converter/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type converterField int

const (
	fieldAmount converterField = iota
	fieldFrom
	fieldTo
	fieldCount
)

const (
	statusCopied      = "Converted amount copied to clipboard"
	statusNothingCopy = "Nothing to copy yet"
)

// mainLoopModel is the converter screen shown once the user is logged in.
// Every edit goes through the [service.ConversionViewModel] and is followed
// by an async recompute; the screen renders whatever result comes back.
type mainLoopModel struct {
	ctx       context.Context
	converter service.ConversionViewModel
	username  string

	amount  textinput.Model
	focus   converterField
	spinner spinner.Model

	result models.ConversionResult
	rate   string
	status string

	logout     bool
	quitByUser bool
}

func newMainLoopModel(ctx context.Context, converter service.ConversionViewModel, session models.Session) mainLoopModel {
	amountInput := textinput.New()
	amountInput.Placeholder = "amount"
	amountInput.CharLimit = 32
	amountInput.Width = 20
	amountInput.SetValue(converter.Request().Amount)
	amountInput.CursorEnd()
	amountInput.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return mainLoopModel{
		ctx:       ctx,
		converter: converter,
		username:  session.Username,
		amount:    amountInput,
		spinner:   sp,
		result:    converter.Result(),
		rate:      converter.FormatRate(),
	}
}

// Init implements [tea.Model]. Starts the cursor blink and the spinner, and
// runs the first conversion for the restored request.
func (m mainLoopModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick, m.cmdRecompute())
}

// Update implements [tea.Model]. Handled messages:
//   - [conversionDoneMsg]: stores the result and the formatted rate.
//   - [spinner.TickMsg]: advances the spinner while a lookup is loading.
//   - [copiedMsg] / [copyFailedMsg]: set a status line cleared after a delay.
//   - [clearStatusMsg]: clears the status line.
//   - key events: see handleKey.
func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case conversionDoneMsg:
		m.result = msg.result
		m.rate = m.converter.FormatRate()
		return m, nil

	case spinner.TickMsg:
		if m.result.Status != models.StatusLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case copiedMsg:
		m.status = statusCopied
		return m, clearStatusAfter()

	case copyFailedMsg:
		m.status = "Copy failed: " + msg.err.Error()
		return m, clearStatusAfter()

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey handles quit, logout, focus movement, swap, refresh and copy.
// Other keys edit the amount or, on a currency field, cycle the currency.
// Every change to the request schedules a recompute.
func (m mainLoopModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit), key.Matches(msg, keys.esc):
		m.quitByUser = true
		return m, tea.Quit
	case key.Matches(msg, keys.logout):
		m.logout = true
		return m, tea.Quit
	case key.Matches(msg, keys.tab):
		m.setFocus((m.focus + 1) % fieldCount)
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.setFocus((m.focus - 1 + fieldCount) % fieldCount)
		return m, nil
	case key.Matches(msg, keys.swap):
		m.converter.Swap()
		cmd := m.startRecompute()
		return m, cmd
	case key.Matches(msg, keys.refresh):
		cmd := m.startRecompute()
		return m, cmd
	case key.Matches(msg, keys.copy):
		if !m.copyable() {
			m.status = statusNothingCopy
			return m, clearStatusAfter()
		}
		return m, cmdCopy(m.result.ConvertedAmount)
	}

	if m.focus != fieldAmount {
		return m.handleCurrencyKey(msg)
	}

	before := m.amount.Value()
	var cmd tea.Cmd
	m.amount, cmd = m.amount.Update(msg)
	if m.amount.Value() == before {
		return m, cmd
	}

	m.converter.SetAmount(m.amount.Value())
	recompute := m.startRecompute()
	return m, tea.Batch(cmd, recompute)
}

func (m mainLoopModel) handleCurrencyKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	req := m.converter.Request()
	current := req.From
	if m.focus == fieldTo {
		current = req.To
	}

	var next models.Currency
	switch {
	case key.Matches(msg, keys.right), key.Matches(msg, keys.down):
		next = current.Next()
	case key.Matches(msg, keys.left), key.Matches(msg, keys.up):
		next = current.Prev()
	default:
		return m, nil
	}

	if m.focus == fieldFrom {
		m.converter.SetFrom(next)
	} else {
		m.converter.SetTo(next)
	}
	cmd := m.startRecompute()
	return m, cmd
}

// startRecompute shows the loading state right away and schedules the lookup.
func (m *mainLoopModel) startRecompute() tea.Cmd {
	m.result = m.converter.Result()
	m.rate = m.converter.FormatRate()
	return tea.Batch(m.spinner.Tick, m.cmdRecompute())
}

func (m mainLoopModel) cmdRecompute() tea.Cmd {
	ctx := m.ctx
	converter := m.converter

	return func() tea.Msg {
		return conversionDoneMsg{result: converter.Recompute(ctx)}
	}
}

func (m *mainLoopModel) setFocus(f converterField) {
	m.focus = f
	if f == fieldAmount {
		m.amount.Focus()
		return
	}
	m.amount.Blur()
}

func (m mainLoopModel) copyable() bool {
	v := m.result.ConvertedAmount
	return v != "" && v != models.NotANumber
}

// View implements [tea.Model]. Renders the input table, the result labelled
// with the request it was computed for, and the status and help lines.
func (m mainLoopModel) View() string {
	req := m.converter.Request()

	var b strings.Builder
	b.WriteString("Signed in as: ")
	b.WriteString(valueOrDash(m.username))
	b.WriteString("\n\n")

	b.WriteString("Field   │ Value\n")
	b.WriteString("────────┼────────────────────────────────\n")
	b.WriteString("Amount  │ [")
	b.WriteString(m.amount.View())
	b.WriteString("]\n")
	b.WriteString("From    │ ")
	b.WriteString(m.renderCurrency(req.From, m.focus == fieldFrom))
	b.WriteString("\n")
	b.WriteString("To      │ ")
	b.WriteString(m.renderCurrency(req.To, m.focus == fieldTo))
	b.WriteString("\n\n")

	b.WriteString(resultBoxStyle.Render(m.renderResult(req)))
	b.WriteString("\n")

	if line := m.statusLine(); line != "" {
		b.WriteString("\n")
		b.WriteString(line)
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(noticeStyle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString("\nSupported: ")
	b.WriteString(models.JoinCurrencies())

	return renderPage(
		"CURRENCY CONVERTER",
		strings.TrimRight(b.String(), "\n"),
		"tab: next field │ ←/→: currency │ ctrl+s: swap │ ctrl+r: refresh │ ctrl+y: copy │ ctrl+l: log out │ esc: quit",
	)
}

func (m mainLoopModel) renderCurrency(c models.Currency, focused bool) string {
	cell := fmt.Sprintf("‹ %s ›", c)
	if focused {
		return selectedStyle.Render(cell)
	}
	return cell
}

// renderResult labels the converted amount with the request it was computed
// for, so a stale value never shows up next to the currencies being edited.
func (m mainLoopModel) renderResult(req models.ConversionRequest) string {
	shown := req
	if m.result.ConvertedAmount != "" {
		shown = m.result.Request
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s = %s %s", valueOrDash(shown.Amount), shown.From, valueOrDash(m.result.ConvertedAmount), shown.To))
	if shown != req {
		b.WriteString(" " + helpStyle.Render("(last known)"))
	}
	if m.rate != "" {
		b.WriteString("\n")
		b.WriteString(m.rate)
	}
	return b.String()
}

func (m mainLoopModel) statusLine() string {
	switch m.result.Status {
	case models.StatusLoading:
		return m.spinner.View() + " Fetching exchange rate..."
	case models.StatusFailed:
		return errorStyle.Render(humanizeError(m.result.Err))
	case models.StatusIdle:
		return helpStyle.Render("Enter an amount to convert")
	}
	return ""
}

func cmdCopy(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return copyFailedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func clearStatusAfter() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
