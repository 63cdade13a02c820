package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/jwebster45206/adventure-engine/internal/session"
	"github.com/jwebster45206/adventure-engine/internal/storage"
)

const (
	PlaceHolderText = "What do you do?"
	requestTimeout  = 30 * time.Second
)

type entryKind int

const (
	entryGame entryKind = iota
	entryPlayer
	entrySystem
	entryError
)

type entry struct {
	kind entryKind
	text string
}

// ConsoleUI is the BubbleTea model that runs the UI.
// https://github.com/charmbracelet/bubbletea
type ConsoleUI struct {
	backend      backend
	status       *session.Status
	transcript   []entry
	chatViewport viewport.Model
	metaViewport viewport.Model
	textarea     textarea.Model
	ready        bool
	width        int
	height       int
	err          error
	loading      bool

	// World selection state
	showWorldModal bool
	worlds         []storage.WorldInfo
	selectedWorld  int
	loadingWorlds  bool

	// Quit confirmation state
	showQuitModal bool
}

type worldsLoadedMsg struct {
	worlds []storage.WorldInfo
	err    error
}

type sessionStartedMsg struct {
	status session.Status
	err    error
}

type replyMsg struct {
	reply session.Reply
	err   error
}

var (
	chatPanelStyle = lipgloss.NewStyle().
			PaddingTop(2).
			PaddingBottom(1).
			PaddingLeft(3).
			PaddingRight(0)

	metaPanelStyle = lipgloss.NewStyle().
			PaddingTop(2).
			PaddingBottom(0).
			PaddingLeft(0).
			PaddingRight(2)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")). // pink
			Bold(true)

	narratorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")) // green

	userStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")) // teal

	systemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")) // yellow

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")) // red

	winStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")).
			Bold(true)

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2).
			Background(lipgloss.Color("235")).
			Foreground(lipgloss.Color("255"))

	modalTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Align(lipgloss.Center)

	modalItemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	modalSelectedItemStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("0")).
				Background(lipgloss.Color("205")).
				Bold(true)
)

var separatorStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("240")) // dark grey

// NewConsoleUI builds the model. With a world file the game starts right
// away, otherwise the player picks one from a list.
func NewConsoleUI(b backend, worldFile string) ConsoleUI {
	ta := textarea.New()
	ta.Placeholder = PlaceHolderText
	ta.Focus()
	ta.Prompt = promptStyle.Render(":: ")
	ta.CharLimit = 200
	ta.SetWidth(50)
	ta.SetHeight(1)
	ta.ShowLineNumbers = false

	chatVp := viewport.New(50, 20)
	chatVp.MouseWheelEnabled = true

	metaVp := viewport.New(20, 20)

	m := ConsoleUI{
		backend:        b,
		textarea:       ta,
		chatViewport:   chatVp,
		metaViewport:   metaVp,
		showWorldModal: worldFile == "",
		loadingWorlds:  worldFile == "",
	}
	if worldFile != "" {
		m.worlds = []storage.WorldInfo{{File: worldFile}}
		m.loading = true
	}
	return m
}

func writeMetadata(st *session.Status) string {
	var content strings.Builder
	content.WriteString(titleStyle.Render("GAME STATE") + "\n\n")

	if st == nil {
		content.WriteString("No game in progress\n")
		return content.String()
	}
	v := st.State

	content.WriteString("Session:\n")
	content.WriteString(st.SessionID.String()[:8] + "...\n\n")

	content.WriteString("World:\n")
	if st.Title != "" {
		content.WriteString(st.Title + "\n\n")
	} else {
		content.WriteString(st.World + "\n\n")
	}

	content.WriteString("Location:\n")
	content.WriteString(v.Location + "\n\n")

	content.WriteString("Turns:\n")
	if v.TurnLimit > 0 {
		content.WriteString(fmt.Sprintf("%d of %d (%d left)\n\n", v.Turns, v.TurnLimit, v.TurnsRemaining))
	} else {
		content.WriteString(fmt.Sprintf("%d\n\n", v.Turns))
	}

	writeList(&content, "Exits", v.Exits)
	writeList(&content, "Here", v.Objects)
	writeList(&content, "People", v.NPCs)
	writeList(&content, "Inventory", v.Inventory)

	if v.GameOver {
		if v.Win {
			content.WriteString(winStyle.Render("YOU WON") + "\n\n")
		} else {
			content.WriteString(errorStyle.Render("GAME OVER") + "\n\n")
		}
	}

	content.WriteString("Commands:\n")
	content.WriteString("• Ctrl+C: Quit\n")
	content.WriteString("• Enter: Send\n")
	content.WriteString("• help: Verbs\n")
	content.WriteString("• /restart\n")
	content.WriteString("• /copy\n")
	content.WriteString("• /quit\n")

	return content.String()
}

func writeList(sb *strings.Builder, label string, items []string) {
	sb.WriteString(label + ":\n")
	if len(items) == 0 {
		sb.WriteString("None\n\n")
		return
	}
	for _, it := range items {
		sb.WriteString("• " + it + "\n")
	}
	sb.WriteString("\n")
}

// writeChatContent rebuilds the transcript for the current viewport width.
func (m *ConsoleUI) writeChatContent() {
	chatWidth := m.chatViewport.Width - 6 // Account for left(3) + right(3) padding
	if chatWidth < 20 {
		chatWidth = 20
	}

	var content strings.Builder
	content.WriteString(titleStyle.Render("ADVENTURE ENGINE") + "\n\n")
	if m.status != nil && m.status.Title != "" {
		content.WriteString(m.status.Title + "\n")
	}
	content.WriteString("Type commands below. Try \"help\" or \"look\".\n\n")
	content.WriteString(separatorStyle.Render(strings.Repeat("─", chatWidth)) + "\n\n")

	for _, e := range m.transcript {
		content.WriteString(formatEntry(e, chatWidth) + "\n\n")
	}
	if m.loading {
		content.WriteString(promptStyle.Render("...") + "\n")
	}

	m.chatViewport.SetContent(content.String())
	m.chatViewport.GotoBottom()
}

func formatEntry(e entry, width int) string {
	switch e.kind {
	case entryPlayer:
		return userStyle.Render("> ") + wordwrap.String(e.text, width-2)
	case entrySystem:
		return systemStyle.Render(wordwrap.String(e.text, width))
	case entryError:
		return errorStyle.Render(wordwrap.String("Error: "+e.text, width))
	default:
		return narratorStyle.Render(wordwrap.String(e.text, width))
	}
}

// transcriptText renders the transcript without styling, for the clipboard.
func transcriptText(entries []entry) string {
	var sb strings.Builder
	for i, e := range entries {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		switch e.kind {
		case entryPlayer:
			sb.WriteString("> " + e.text)
		case entryError:
			sb.WriteString("Error: " + e.text)
		default:
			sb.WriteString(e.text)
		}
	}
	return sb.String()
}

func (m *ConsoleUI) add(kind entryKind, text string) {
	m.transcript = append(m.transcript, entry{kind: kind, text: text})
}

func (m *ConsoleUI) layout() {
	chatWidth := int(float64(m.width)*0.7) - 4
	metaWidth := m.width - chatWidth - 6

	m.chatViewport.Width = chatWidth - 2
	m.chatViewport.Height = m.height - 7
	m.metaViewport.Width = metaWidth - 2
	m.metaViewport.Height = m.height - 4
	m.textarea.SetWidth(chatWidth - 4)
}

func (m ConsoleUI) Init() tea.Cmd {
	if m.showWorldModal {
		return m.loadWorlds()
	}
	return tea.Batch(textarea.Blink, m.startSession(m.worlds[0].File))
}

func (m ConsoleUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.showQuitModal {
		return m.updateQuitModal(msg)
	}
	if m.showWorldModal {
		return m.updateWorldModal(msg)
	}

	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
		mvCmd tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.MouseMsg:
		m.chatViewport, vpCmd = m.chatViewport.Update(msg)
		m.metaViewport, mvCmd = m.metaViewport.Update(msg)
		return m, tea.Batch(vpCmd, mvCmd)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		m.ready = true
		m.writeChatContent()
		m.metaViewport.SetContent(writeMetadata(m.status))

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.showQuitModal = true
			return m, nil
		case tea.KeyEnter:
			if m.loading {
				return m, nil
			}

			line := strings.TrimSpace(m.textarea.Value())
			m.textarea.Reset()
			if line == "" {
				return m, nil
			}
			if strings.HasPrefix(line, "/") {
				return m.handleCommand(line)
			}

			m.add(entryPlayer, line)
			m.loading = true
			m.writeChatContent()
			return m, m.sendInput(line)
		}

	case sessionStartedMsg:
		m.loading = false
		if msg.err != nil {
			m.add(entryError, msg.err.Error())
		} else {
			m.status = &msg.status
			m.transcript = nil
			v := msg.status.State
			m.add(entryGame, v.Location+"\n"+v.Description)
		}
		m.writeChatContent()
		m.metaViewport.SetContent(writeMetadata(m.status))

	case replyMsg:
		m.loading = false
		if msg.err != nil {
			m.add(entryError, msg.err.Error())
		} else {
			m.add(entryGame, msg.reply.Result.Message)
			if m.status != nil {
				m.status.State = msg.reply.State
			}
			if msg.reply.Result.GameOver {
				m.add(entrySystem, "The game has ended. Type /restart to play again or /quit to leave.")
			}
		}
		m.writeChatContent()
		m.metaViewport.SetContent(writeMetadata(m.status))
	}

	m.textarea, tiCmd = m.textarea.Update(msg)
	m.chatViewport, vpCmd = m.chatViewport.Update(msg)
	m.metaViewport, mvCmd = m.metaViewport.Update(msg)

	return m, tea.Batch(tiCmd, vpCmd, mvCmd)
}

func (m ConsoleUI) handleCommand(line string) (tea.Model, tea.Cmd) {
	cmd := strings.ToLower(strings.TrimSpace(line))

	switch cmd {
	case "/restart":
		if m.status == nil {
			m.add(entrySystem, "No game to restart.")
			break
		}
		m.loading = true
		m.writeChatContent()
		return m, m.startSession(m.status.World)

	case "/worlds":
		m.showWorldModal = true
		m.loadingWorlds = true
		m.err = nil
		return m, m.loadWorlds()

	case "/copy":
		if err := clipboard.WriteAll(transcriptText(m.transcript)); err != nil {
			m.add(entryError, "failed to copy transcript: "+err.Error())
		} else {
			m.add(entrySystem, "Transcript copied to clipboard.")
		}

	case "/quit":
		m.showQuitModal = true
		return m, nil

	default:
		m.add(entrySystem, "Console commands: /restart, /worlds, /copy, /quit. Type help for game verbs.")
	}

	m.writeChatContent()
	return m, nil
}

func (m ConsoleUI) sendInput(line string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		reply, err := m.backend.Input(ctx, line)
		return replyMsg{reply, err}
	}
}

func (m ConsoleUI) startSession(worldFile string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		st, err := m.backend.Start(ctx, worldFile)
		return sessionStartedMsg{st, err}
	}
}

func (m ConsoleUI) loadWorlds() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		worlds, err := m.backend.Worlds(ctx)
		return worldsLoadedMsg{worlds, err}
	}
}

func (m ConsoleUI) updateWorldModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case worldsLoadedMsg:
		m.loadingWorlds = false
		m.selectedWorld = 0
		if msg.err != nil {
			m.err = msg.err
		} else if len(msg.worlds) == 0 {
			m.err = fmt.Errorf("no world files found")
		} else {
			m.worlds = msg.worlds
		}

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			if m.loadingWorlds {
				return m, tea.Quit
			}
			m.showQuitModal = true
			return m, nil
		}
		if m.loadingWorlds || m.err != nil {
			return m, nil
		}

		switch msg.Type {
		case tea.KeyUp:
			if m.selectedWorld > 0 {
				m.selectedWorld--
			}
		case tea.KeyDown:
			if m.selectedWorld < len(m.worlds)-1 {
				m.selectedWorld++
			}
		case tea.KeyEnter:
			m.showWorldModal = false
			m.loading = true
			if m.width > 0 && m.height > 0 {
				m.layout()
				m.ready = true
			}
			m.textarea.Focus()
			return m, tea.Batch(textarea.Blink, m.startSession(m.worlds[m.selectedWorld].File))
		}
	}

	return m, nil
}

func (m ConsoleUI) updateQuitModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc, tea.KeyEnter:
			return m, tea.Quit
		default:
			switch msg.String() {
			case "y", "Y":
				return m, tea.Quit
			case "n", "N":
				m.showQuitModal = false
				if m.showWorldModal {
					return m, nil
				}
				m.textarea.Focus()
				return m, textarea.Blink
			}
		}
	}

	return m, nil
}

func (m ConsoleUI) renderQuitModal() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var content strings.Builder
	content.WriteString(modalTitleStyle.Render("Quit Game?"))
	content.WriteString("\n\n")
	content.WriteString("Are you sure you want to quit your adventure?")
	content.WriteString("\n\n")
	content.WriteString(promptStyle.Render("Press Y to quit, N to continue, or Ctrl+C to force quit"))

	modal := modalStyle.Width(50).Render(content.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal, lipgloss.WithWhitespaceChars(" "))
}

func (m ConsoleUI) renderWorldModal() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var content strings.Builder

	switch {
	case m.loadingWorlds:
		content.WriteString(modalTitleStyle.Render("Loading Worlds..."))
		content.WriteString("\n\n")
		content.WriteString(systemStyle.Render("Please wait while we find available worlds..."))
	case m.err != nil:
		content.WriteString(modalTitleStyle.Render("Error"))
		content.WriteString("\n\n")
		content.WriteString(errorStyle.Render(fmt.Sprintf("Failed to load worlds: %v", m.err)))
		content.WriteString("\n\n")
		content.WriteString("Press Ctrl+C to exit")
	default:
		content.WriteString(modalTitleStyle.Render("Select a World"))
		content.WriteString("\n\n")

		for i, w := range m.worlds {
			label := w.Title
			if label == "" {
				label = w.File
			}
			if w.TurnLimit > 0 {
				label = fmt.Sprintf("%s (%d turns)", label, w.TurnLimit)
			}
			if i == m.selectedWorld {
				content.WriteString(modalSelectedItemStyle.Render("▶ " + label))
			} else {
				content.WriteString(modalItemStyle.Render("  " + label))
			}
			content.WriteString("\n")
			if w.Description != "" {
				content.WriteString(promptStyle.Render(wordwrap.String("    "+w.Description, 54)))
				content.WriteString("\n")
			}
		}

		content.WriteString("\n")
		content.WriteString(promptStyle.Render("Use ↑/↓ to navigate, Enter to select, Ctrl+C to exit"))
	}

	modal := modalStyle.Width(60).Render(content.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal, lipgloss.WithWhitespaceChars(" "))
}

func (m ConsoleUI) View() string {
	if m.showQuitModal {
		return m.renderQuitModal()
	}
	if m.showWorldModal {
		return m.renderWorldModal()
	}
	if !m.ready {
		return "\n  Initializing..."
	}

	chatWidth := int(float64(m.width)*0.7) - 4
	metaWidth := m.width - chatWidth - 6

	chatPanel := chatPanelStyle.Width(chatWidth).Height(m.height - 3).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			m.chatViewport.View(),
			"",
			separatorStyle.Render(strings.Repeat("─", chatWidth-4)),
			m.textarea.View(),
		),
	)

	metaPanel := metaPanelStyle.Width(metaWidth).Height(m.height - 2).Render(
		m.metaViewport.View(),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top, chatPanel, metaPanel)
}
