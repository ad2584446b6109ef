package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/sevigo/ps-reviewer/internal/config"
	"github.com/sevigo/ps-reviewer/internal/core"
	"github.com/sevigo/ps-reviewer/internal/review"
	"github.com/sevigo/ps-reviewer/internal/server/handler"
)

const banner = "⚡ " + core.Language + " Code Reviewer"

const helpText = `
  /review [path]   Review a .ps1, .psm1 or .psd1 file.
  /standards       Show the coding standards reviews are checked against.
  /status          Show which integrations are configured.
  /help            Show this help message.
  /exit, /quit     Exit.

`

type model struct {
	ctx   context.Context
	theme theme

	cfg       *config.Config
	workflow  core.SubmissionHandler
	standards core.StandardsProvider
	cleanup   func()

	viewport  viewport.Model
	textarea  textarea.Model
	spinner   spinner.Model
	isLoading bool
	ready     bool
	width     int

	history  []string
	reviewed int
}

func initialModel(ctx context.Context, name ThemeName) *model {
	th := GetTheme(name)

	ta := textarea.New()
	ta.Placeholder = "Path to a script, or /help"
	ta.Focus()
	ta.Prompt = th.prompt.Render("► ")
	ta.CharLimit = 1024
	ta.SetWidth(50)
	ta.SetHeight(1)
	ta.ShowLineNumbers = false

	sp := spinner.New()
	sp.Spinner = spinner.Points
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))

	return &model{
		ctx:       ctx,
		theme:     th,
		viewport:  viewport.New(80, 20),
		textarea:  ta,
		spinner:   sp,
		isLoading: true,
		width:     80,
		history:   []string{th.header.Render(banner), "", "⚙ Loading configuration..."},
	}
}

func (m *model) Init() tea.Cmd {
	return tea.Batch(initializeAppCmd(m.ctx), m.spinner.Tick)
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
		spCmd tea.Cmd
	)

	m.textarea, tiCmd = m.textarea.Update(msg)
	m.viewport, vpCmd = m.viewport.Update(msg)
	m.spinner, spCmd = m.spinner.Update(msg)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			input := strings.TrimSpace(m.textarea.Value())
			m.textarea.Reset()
			if input == "" {
				return m, nil
			}
			return m, m.processCommand(input)
		}

	case appInitializedMsg:
		m.isLoading = false
		if msg.err != nil {
			fmt.Fprintf(os.Stderr, "ERROR initializing app: %v\n", msg.err)
			m.appendHistory("", m.theme.error.Render(msg.err.Error()))
			return m, nil
		}
		m.cleanup = msg.cleanup
		m.attach(msg.app.Cfg, msg.app.Workflow, msg.app.Standards)
		m.appendHistory("", m.theme.success.Render("✓ READY"), "", "Type a path to review it, or /help for commands.")
		return m, nil

	case reviewCompleteMsg:
		m.isLoading = false
		m.showReview(msg)
		return m, nil

	case standardsLoadedMsg:
		m.isLoading = false
		m.appendHistory("", m.theme.success.Render("CODING STANDARDS:"), m.renderMarkdown(msg.text))
		return m, nil

	case errorMsg:
		m.isLoading = false
		m.appendHistory("", m.theme.error.Render("⚠ "+msg.err.Error()))
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.viewport.Width = msg.Width - 4
		m.viewport.Height = msg.Height - 8
		m.textarea.SetWidth(msg.Width - 10)
		m.viewport.SetContent(strings.Join(m.history, "\n"))
	}

	return m, tea.Batch(tiCmd, vpCmd, spCmd)
}

// attach connects the model to the review services.
func (m *model) attach(cfg *config.Config, workflow core.SubmissionHandler, standards core.StandardsProvider) {
	m.cfg = cfg
	m.workflow = workflow
	m.standards = standards
	m.ready = true
}

func (m *model) View() string {
	if !m.ready && m.isLoading {
		return fmt.Sprintf("\n  %s LOADING...\n\n", m.spinner.View())
	}

	var statusParts []string
	if m.cfg != nil {
		statusParts = append(statusParts, fmt.Sprintf("🤖 %s", m.cfg.AI.LLMProvider))
		if m.cfg.Features.EnhancedAnalysis() {
			statusParts = append(statusParts, m.theme.success.Render("● ENHANCED"))
		} else {
			statusParts = append(statusParts, m.theme.inactive.Render("○ STANDARD"))
		}
	}
	statusParts = append(statusParts, fmt.Sprintf("REVIEWED: %d", m.reviewed))
	status := m.theme.inactive.Render(strings.Join(statusParts, " │ "))

	var loadingIndicator string
	if m.isLoading {
		loadingIndicator = " " + m.spinner.View() + " " + m.theme.success.Render("REVIEWING...")
	}

	return m.theme.app.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			m.theme.viewport.Render(m.viewport.View()),
			m.theme.footer.Render(
				lipgloss.JoinHorizontal(lipgloss.Left,
					m.textarea.View(),
					loadingIndicator,
				),
			),
			status,
		),
	)
}

func (m *model) processCommand(input string) tea.Cmd {
	m.appendHistory(m.theme.prompt.Render("► ") + input)

	command, rest, _ := strings.Cut(input, " ")
	rest = strings.TrimSpace(rest)

	switch command {
	case "/help", "/h":
		m.appendHistory("", m.theme.success.Render("AVAILABLE COMMANDS:")+helpText)
		return nil

	case "/exit", "/quit":
		return tea.Quit

	case "/status":
		if !m.requireReady() {
			return nil
		}
		report := handler.Health(m.cfg)
		m.appendHistory("", fmt.Sprintf("status: %s\nopenai configured: %t\nstorage configured: %t\nmonitoring: %t\nenhanced analysis: %t",
			report.Status, report.HasOpenAIConfig, report.HasStorageConfig, report.HasMonitoring, report.EnhancedAnalysisEnabled))
		return nil

	case "/standards":
		if !m.requireReady() {
			return nil
		}
		m.isLoading = true
		return tea.Batch(m.spinner.Tick, loadStandardsCmd(m.ctx, m.standards))

	case "/review", "/r":
		if rest == "" {
			m.appendHistory("", m.theme.error.Render("USAGE: /review [path]"))
			return nil
		}
		return m.startReview(rest)

	default:
		if !strings.HasPrefix(command, "/") || isExistingPath(input) {
			return m.startReview(input)
		}
		m.appendHistory("", m.theme.error.Render("UNKNOWN COMMAND: "+command), m.theme.inactive.Render("Type /help for assistance."))
		return nil
	}
}

// isExistingPath reports whether input names something on disk, so absolute
// paths are reviewed instead of being read as commands.
func isExistingPath(input string) bool {
	_, err := os.Stat(input)
	return err == nil
}

func (m *model) startReview(path string) tea.Cmd {
	if !m.requireReady() {
		return nil
	}
	m.isLoading = true
	m.appendHistory("", m.theme.command.Render("→ Reviewing "+path+"..."))
	return tea.Batch(m.spinner.Tick, reviewFileCmd(m.ctx, m.workflow, path))
}

func (m *model) requireReady() bool {
	if m.ready {
		return true
	}
	m.appendHistory("", m.theme.error.Render("Services are not available yet."))
	return false
}

func (m *model) showReview(msg reviewCompleteMsg) {
	if msg.err != nil {
		var vErr *review.ValidationError
		if errors.As(msg.err, &vErr) {
			m.appendHistory("", m.theme.error.Render("✗ "+vErr.Message))
			return
		}
		m.appendHistory("", m.theme.error.Render("✗ "+msg.err.Error()))
		return
	}

	m.reviewed++
	header := m.theme.success.Render("✓ REVIEW: " + msg.outcome.Filename)
	if msg.outcome.Result.IsError() {
		header = m.theme.warning.Render("⚠ REVIEW FAILED: " + msg.outcome.Filename)
	}
	m.appendHistory("", header, m.renderMarkdown(msg.outcome.Result.Text))
}

func (m *model) renderMarkdown(text string) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(m.theme.markdown),
		glamour.WithWordWrap(max(m.width-8, 40)),
	)
	if err != nil {
		return text
	}
	out, err := renderer.Render(text)
	if err != nil {
		return text
	}
	return out
}

func (m *model) appendHistory(lines ...string) {
	m.history = append(m.history, lines...)
	m.viewport.SetContent(strings.Join(m.history, "\n"))
	m.viewport.GotoBottom()
}
