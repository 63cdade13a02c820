package main

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/adventure-engine/internal/session"
	"github.com/jwebster45206/adventure-engine/internal/storage"
	"github.com/jwebster45206/adventure-engine/pkg/engine"
)

type fakeBackend struct {
	started []string
	inputs  []string
	reply   session.Reply
	err     error
}

func (f *fakeBackend) Worlds(ctx context.Context) ([]storage.WorldInfo, error) {
	return []storage.WorldInfo{{File: "a.json", Title: "A"}, {File: "b.yaml", Title: "B"}}, f.err
}

func (f *fakeBackend) Start(ctx context.Context, worldFile string) (session.Status, error) {
	f.started = append(f.started, worldFile)
	return session.Status{
		SessionID: uuid.New(),
		World:     worldFile,
		Title:     "A",
		State:     engine.View{Location: "Yard", Description: "Grass."},
	}, f.err
}

func (f *fakeBackend) Input(ctx context.Context, line string) (session.Reply, error) {
	f.inputs = append(f.inputs, line)
	return f.reply, f.err
}

func TestTranscriptText(t *testing.T) {
	got := transcriptText([]entry{
		{kind: entryGame, text: "Yard\nGrass."},
		{kind: entryPlayer, text: "go in"},
		{kind: entryError, text: "boom"},
		{kind: entrySystem, text: "Copied."},
	})
	assert.Equal(t, "Yard\nGrass.\n\n> go in\n\nError: boom\n\nCopied.", got)
}

func TestWriteMetadata(t *testing.T) {
	assert.Contains(t, writeMetadata(nil), "No game in progress")

	st := &session.Status{
		SessionID: uuid.New(),
		World:     "a.json",
		State: engine.View{
			Location:       "Yard",
			Exits:          []string{"in"},
			Inventory:      []string{"Key"},
			Turns:          3,
			TurnLimit:      10,
			TurnsRemaining: 7,
			GameOver:       true,
			Win:            true,
		},
	}
	out := writeMetadata(st)
	assert.Contains(t, out, "a.json")
	assert.Contains(t, out, "3 of 10 (7 left)")
	assert.Contains(t, out, "• in")
	assert.Contains(t, out, "• Key")
	assert.Contains(t, out, "YOU WON")
}

func TestConsoleUI_StartAndCommand(t *testing.T) {
	fb := &fakeBackend{reply: session.Reply{
		Result: engine.CommandResult{Message: "You reached the end.", GameOver: true, Win: true},
		State:  engine.View{Location: "Shed", GameOver: true, Win: true},
	}}
	m := NewConsoleUI(fb, "a.json")

	model, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = model.(ConsoleUI)

	msg := m.startSession("a.json")()
	model, _ = m.Update(msg)
	m = model.(ConsoleUI)
	require.NotNil(t, m.status)
	assert.Equal(t, []string{"a.json"}, fb.started)
	require.Len(t, m.transcript, 1)
	assert.Equal(t, "Yard\nGrass.", m.transcript[0].text)

	model, _ = m.Update(m.sendInput("go in")())
	m = model.(ConsoleUI)
	assert.Equal(t, []string{"go in"}, fb.inputs)
	assert.Equal(t, "Shed", m.status.State.Location)
	require.Len(t, m.transcript, 3)
	assert.Equal(t, entrySystem, m.transcript[2].kind)
}

func TestConsoleUI_BackendError(t *testing.T) {
	fb := &fakeBackend{err: errors.New("connection refused")}
	m := NewConsoleUI(fb, "")

	model, _ := m.Update(m.loadWorlds()())
	m = model.(ConsoleUI)
	assert.EqualError(t, m.err, "connection refused")
	assert.True(t, m.showWorldModal)
}
