package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/hay-kot/chatbox/internal/core/chat"
	"github.com/hay-kot/chatbox/internal/core/config"
	"github.com/hay-kot/chatbox/internal/core/history"
	"github.com/hay-kot/chatbox/internal/router"
	"github.com/hay-kot/chatbox/internal/styles"
)

// Layout constants.
const (
	headerHeight = 5 // banner (4) + tab bar (1)
	helpHeight   = 1
	dividerRows  = 1
	maxFormWidth = 60
)

// Options configures the TUI behavior.
type Options struct {
	Version string         // shown on the welcome and about views
	Logger  zerolog.Logger // defaults to a no-op logger
}

// Model is the main Bubble Tea model for the TUI.
type Model struct {
	cfg    *config.Config
	chat   *chat.Chat
	router *router.Router
	keys   keyMap
	help   help.Model
	log    zerolog.Logger

	// Chat view
	conversation *ConversationView
	input        *inputBox
	after        *afterRender
	stopScroll   func()
	sent         *history.History

	// Login view
	login *LoginForm

	// About view, nil when markdown rendering is disabled
	md *markdown

	userName string
	version  string
	width    int
	height   int
	err      error
	quitting bool
}

// New creates a new TUI model over c. The model subscribes to c for
// auto-scrolling; call Close once the program has exited.
func New(c *chat.Chat, cfg *config.Config, opts Options) Model {
	mdStyle := ""
	if cfg.UI.RenderMarkdown {
		mdStyle = cfg.UI.MarkdownStyle
	}

	conversation := NewConversationView(cfg.Chat.TimestampFormat, mdStyle)
	conversation.SetMessages(c.Messages())

	h := help.New()
	helpStyle := lipgloss.NewStyle().Foreground(styles.ColorGray)
	h.Styles.ShortKey = helpStyle
	h.Styles.ShortDesc = helpStyle
	h.Styles.ShortSeparator = helpStyle
	h.ShortSeparator = " " + iconDot + " "

	after := newAfterRender()

	m := Model{
		cfg:          cfg,
		chat:         c,
		router:       router.Default(),
		keys:         defaultKeyMap(),
		help:         h,
		log:          opts.Logger,
		conversation: conversation,
		input:        newInputBox(cfg.UI.InputMaxHeight),
		after:        after,
		stopScroll:   AutoScroll(c, after.Schedule, conversation),
		sent:         history.New(history.DefaultMaxEntries),
		version:      opts.Version,
	}
	if mdStyle != "" {
		m.md = newMarkdown(mdStyle)
	}

	if err := m.router.Push(cfg.UI.StartRoute); err != nil {
		m.log.Warn().Err(err).Str("route", cfg.UI.StartRoute).Msg("invalid start route, using welcome")
	}
	if m.router.Current().Name == router.NameLogin {
		m.login = NewLoginForm(m.userName)
	}

	return m
}

// Close detaches the auto-scroll observer. It is safe to call more than once.
func (m Model) Close() {
	if m.stopScroll != nil {
		m.stopScroll()
	}
}

// Route returns the active route.
func (m Model) Route() router.Route {
	return m.router.Current()
}

// UserName returns the display name entered on the login view.
func (m Model) UserName() string {
	return m.userName
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.after.wait()}

	switch m.router.Current().Name {
	case router.NameChat:
		cmds = append(cmds, m.input.Focus())
	case router.NameLogin:
		cmds = append(cmds, m.login.Form().Init())
	}

	return tea.Batch(cmds...)
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		if m.login != nil {
			return m.updateLogin(msg)
		}
		return m, nil

	case afterRenderMsg:
		// Refresh before running the callback so it sees the laid out content.
		m.conversation.SetMessages(m.chat.Messages())
		if msg.fn != nil {
			msg.fn()
		}
		return m, m.after.wait()

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.onRoute(router.NameChat) {
			return m, m.conversation.Update(msg)
		}
		return m, nil
	}

	// Everything else belongs to the focused component (form steps, cursor
	// blinks).
	if m.login != nil {
		return m.updateLogin(msg)
	}
	if m.onRoute(router.NameChat) {
		return m, m.input.Update(msg)
	}
	return m, nil
}

// handleKey processes key presses.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.router.Current().Name {
	case router.NameLogin:
		return m.handleLoginKey(msg)
	case router.NameChat:
		return m.handleChatKey(msg)
	case router.NameAbout:
		switch {
		case key.Matches(msg, m.keys.Back):
			return m.back()
		case key.Matches(msg, m.keys.OpenChat):
			return m.navigate(router.NameChat)
		}
	default:
		switch {
		case key.Matches(msg, m.keys.Back):
			return m.back()
		case key.Matches(msg, m.keys.OpenChat):
			return m.navigate(router.NameChat)
		case key.Matches(msg, m.keys.OpenAbout):
			return m.navigate(router.NameAbout)
		case key.Matches(msg, m.keys.OpenLogin):
			return m.navigate(router.NameLogin)
		}
	}

	return m, nil
}

// handleChatKey handles keys on the chat view. Anything not bound here is
// typed into the input box.
func (m Model) handleChatKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		return m.back()
	case key.Matches(msg, m.keys.Submit):
		return m.submit()
	case key.Matches(msg, m.keys.PageUp):
		m.conversation.PageUp()
		return m, nil
	case key.Matches(msg, m.keys.PageDown):
		m.conversation.PageDown()
		return m, nil
	case key.Matches(msg, m.keys.HistoryPrev):
		if text, ok := m.sent.Prev(m.input.Value()); ok {
			m.input.SetValue(text)
			m.layout()
		}
		return m, nil
	case key.Matches(msg, m.keys.HistoryNext):
		if text, ok := m.sent.Next(); ok {
			m.input.SetValue(text)
			m.layout()
		}
		return m, nil
	}

	cmd := m.input.Update(msg)
	m.layout()
	return m, cmd
}

// submit sends the input box value through the chat facade. A rejected
// submission keeps the text so it can be edited.
func (m Model) submit() (tea.Model, tea.Cmd) {
	text := m.input.Value()

	err := m.chat.Submit(text)
	m.err = err
	if err != nil {
		m.log.Warn().Err(err).Msg("submit message")
		if errors.Is(err, chat.ErrEmptyMessage) {
			m.layout()
			return m, nil
		}
	}

	// The user message is in the conversation even when the reply failed.
	m.sent.Add(text)
	m.input.Reset()
	m.layout()
	return m, nil
}

// handleLoginKey handles keys when the login form is shown.
func (m Model) handleLoginKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Back) {
		if m.login != nil {
			m.login.SetCancelled()
		}
		return m.back()
	}
	return m.updateLogin(msg)
}

// updateLogin routes any message to the login form and handles completion.
func (m Model) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.login == nil {
		return m, nil
	}

	form, cmd := m.login.Form().Update(msg)
	f, ok := form.(*huh.Form)
	if !ok {
		return m, cmd
	}
	m.login.form = f

	switch f.State {
	case huh.StateCompleted:
		m.login.SetSubmitted()
		m.userName = m.login.Name()
		m.conversation.SetUserName(m.userName)
		m.log.Info().Str("name", m.userName).Msg("signed in")
		return m.signedIn()
	case huh.StateAborted:
		m.login.SetCancelled()
		return m.back()
	}

	return m, cmd
}

// navigate pushes the route registered under name and prepares its view.
func (m Model) navigate(name string) (tea.Model, tea.Cmd) {
	route, ok := m.router.ByName(name)
	if !ok {
		m.err = fmt.Errorf("%w: %s", router.ErrRouteNotFound, name)
		m.log.Error().Err(m.err).Msg("navigate")
		return m, nil
	}
	if err := m.router.Push(route.Path); err != nil {
		m.log.Error().Err(err).Msg("navigate")
		m.err = err
		return m, nil
	}
	return m.enterRoute()
}

// signedIn swaps the login view for the chat, so going back from the chat
// skips the finished form.
func (m Model) signedIn() (tea.Model, tea.Cmd) {
	chatRoute, _ := m.router.ByName(router.NameChat)
	if err := m.router.Replace(chatRoute.Path); err != nil {
		m.log.Error().Err(err).Msg("open chat")
		m.err = err
		return m, nil
	}
	return m.enterRoute()
}

// back returns to the previous view. At the first view it does nothing.
func (m Model) back() (tea.Model, tea.Cmd) {
	if !m.router.Back() {
		return m, nil
	}
	return m.enterRoute()
}

// enterRoute sets up component focus for the current route.
func (m Model) enterRoute() (tea.Model, tea.Cmd) {
	route := m.router.Current()
	m.log.Debug().Str("route", route.Path).Int("depth", m.router.Depth()).Msg("route changed")

	m.err = nil
	m.login = nil
	m.input.Blur()

	var cmd tea.Cmd
	switch route.Name {
	case router.NameLogin:
		m.login = NewLoginForm(m.userName)
		if m.width > 0 {
			m.login.form = m.login.form.WithWidth(min(m.width-2, maxFormWidth))
		}
		cmd = m.login.Form().Init()
	case router.NameChat:
		cmd = m.input.Focus()
	}

	m.layout()
	return m, cmd
}

func (m Model) onRoute(name string) bool {
	return m.router.Current().Name == name
}

// layout sizes the input box and the conversation viewport to the window.
// The input box grows with its content, so this runs after every edit.
func (m Model) layout() {
	if m.width == 0 || m.height == 0 {
		return
	}

	followTail := m.conversation.AtBottom()

	m.input.SetWidth(m.width - 1)
	AdjustTextareaHeight(m.input)

	m.conversation.SetSize(m.width, m.contentHeight()-dividerRows-m.input.Height())

	if followTail {
		m.conversation.ScrollToBottom()
	}
}

// contentHeight is the space between the header and the help bar.
func (m Model) contentHeight() int {
	h := m.height - headerHeight - helpHeight
	if m.err != nil {
		h--
	}
	return max(h, 1)
}

// View renders the TUI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	bannerView := bannerStyle.Render(strings.TrimPrefix(styles.Banner, "\n"))
	content := m.renderContent()

	parts := []string{bannerView, m.renderTabBar(), content}
	if m.err != nil {
		parts = append(parts, errorStyle.Render(m.err.Error()))
	}
	parts = append(parts, helpBarStyle.Render(m.help.ShortHelpView(m.keys.ShortHelp(m.router.Current().Name))))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// renderTabBar renders one tab per route with the active one highlighted.
func (m Model) renderTabBar() string {
	current := m.router.Current().Name

	routes := m.router.Routes()
	tabs := make([]string, len(routes))
	for i, r := range routes {
		if r.Name == current {
			tabs[i] = viewSelectedStyle.Render(r.Title)
		} else {
			tabs[i] = viewNormalStyle.Render(r.Title)
		}
	}

	return lipgloss.NewStyle().PaddingLeft(1).Render(strings.Join(tabs, viewNormalStyle.Render(" | ")))
}

// renderContent renders the active view at a fixed height to prevent layout
// shift between routes.
func (m Model) renderContent() string {
	var content string

	switch m.router.Current().Name {
	case router.NameChat:
		divider := styles.DividerStyle.Render(strings.Repeat("─", max(m.width, 1)))
		return lipgloss.JoinVertical(lipgloss.Left, m.conversation.View(), divider, m.input.View())
	case router.NameAbout:
		content = m.aboutView()
	case router.NameLogin:
		if m.login != nil {
			content = lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render("Sign in"), "", m.login.View())
		}
	default:
		content = m.welcomeView()
	}

	if m.height == 0 {
		return content
	}
	return lipgloss.NewStyle().Height(m.contentHeight()).MaxHeight(m.contentHeight()).Render(content)
}
