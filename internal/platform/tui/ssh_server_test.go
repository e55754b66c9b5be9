package tui

import (
	"io"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-dungeon/internal/config"
	"github.com/vovakirdan/tui-dungeon/internal/core"
)

func TestSessionMenuToGameAndBack(t *testing.T) {
	runtime := core.RuntimeConfig{ScreenW: 100, ScreenH: 40, TickRate: 60}
	m := NewSessionModel(nil, quietConfig(), runtime, "alice", log.New(io.Discard))

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	s := next.(SessionModel)
	if s.screen != screenGame {
		t.Fatalf("screen = %v, expected the game after enter", s.screen)
	}
	if cmd == nil {
		t.Error("starting a run should start its tick loop")
	}

	next, _ = s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	next, _ = next.Update(TickMsg(time.Now()))
	s = next.(SessionModel)
	if s.screen != screenMenu {
		t.Errorf("screen = %v, expected the menu after esc", s.screen)
	}
	if s.quitting {
		t.Error("leaving a run should not end the session")
	}

	// Ticks of the finished run are ignored by the menu.
	next, cmd = s.Update(TickMsg(time.Now()))
	if next.(SessionModel).screen != screenMenu || cmd != nil {
		t.Error("stale tick changed the menu")
	}
}

func TestSessionScoreboard(t *testing.T) {
	m := NewSessionModel(nil, quietConfig(), core.DefaultConfig(), "bob", log.New(io.Discard))

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	s := next.(SessionModel)
	if s.screen != screenScores {
		t.Fatalf("screen = %v, expected the scoreboard", s.screen)
	}

	next, _ = s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if next.(SessionModel).screen != screenMenu {
		t.Error("esc on the scoreboard should return to the menu")
	}
}

func TestSessionInvalidConfigStaysInMenu(t *testing.T) {
	cfg := config.DefaultDungeonConfig()
	cfg.Player.Loadout = nil
	m := NewSessionModel(nil, cfg, core.DefaultConfig(), "eve", log.New(io.Discard))

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	s := next.(SessionModel)
	if s.screen != screenMenu || s.notice == "" {
		t.Errorf("screen = %v, notice = %q, expected the menu with an error", s.screen, s.notice)
	}
}

func TestNewSSHServerRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.Dungeon.Arena.Width = 1

	if _, err := NewSSHServer(cfg); err == nil {
		t.Error("NewSSHServer() accepted an invalid dungeon config")
	}
}
