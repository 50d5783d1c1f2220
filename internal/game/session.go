package game

import (
	"fmt"
	"log/slog"

	"emoji-inventory/assets"
	"emoji-inventory/internal/component"
	"emoji-inventory/internal/ecs"
	"emoji-inventory/internal/factory"
	"emoji-inventory/internal/render"

	"github.com/gdamore/tcell/v2"
)

// Session is one player's inventory screen: a world holding the player and
// a stash, a cursor into the player's inventory and the last status line.
// A Session is driven by a single goroutine.
type Session struct {
	screen   tcell.Screen
	renderer *render.Renderer
	world    *ecs.World
	playerID ecs.EntityID
	cursor   int
	status   string
	logger   *slog.Logger
}

// New creates a Session on the local terminal.
func New(name string, capacity int, logger *slog.Logger) (*Session, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return NewSession(screen, name, capacity, logger), nil
}

// NewSession creates a Session on an already initialised screen. The player
// starts with the starter kit; everything else in the catalog is in the stash.
func NewSession(screen tcell.Screen, name string, capacity int, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	w := ecs.NewWorld()
	playerID, stored := factory.NewPlayer(w, name, capacity, assets.StarterKit())
	factory.NewStash(w, assets.StashContents(), capacity)

	s := &Session{
		screen:   screen,
		renderer: render.NewRenderer(screen),
		world:    w,
		playerID: playerID,
		logger:   logger.With("player", name),
		status:   fmt.Sprintf("You carry %d item(s). [p] picks up from the stash.", stored),
	}
	s.logger.Info("session started", "capacity", capacity, "starter_items", stored)
	return s
}

// Run draws the panel and handles input until the player quits.
// The screen is finalised on return.
func (s *Session) Run() {
	defer s.screen.Fini()

	for {
		s.Draw()
		ev := s.screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			// Screen finalised underneath us.
			return
		case *tcell.EventResize:
			s.screen.Sync()
		case *tcell.EventKey:
			if !s.HandleKey(ev) {
				s.logger.Info("session closed")
				return
			}
		}
	}
}

// Draw redraws the whole screen.
func (s *Session) Draw() {
	s.renderer.Clear()
	s.renderer.SpawnInventoryMenu(s.world, s.cursor, s.status)
	s.renderer.Show()
}

// HandleKey applies one key press. It returns false when the key closes
// the session.
func (s *Session) HandleKey(ev *tcell.EventKey) bool {
	action := keyToAction(ev)
	switch action {
	case ActionQuit:
		return false
	case ActionCursorUp:
		s.moveCursor(-1)
	case ActionCursorDown:
		s.moveCursor(1)
	case ActionMoveItemUp:
		s.status = s.moveItem(-1)
	case ActionMoveItemDown:
		s.status = s.moveItem(1)
	case ActionPickup:
		s.status = s.pickup()
	case ActionDrop:
		s.status = s.drop()
	}
	return true
}

// Cursor returns the selected row.
func (s *Session) Cursor() int { return s.cursor }

// Status returns the current status line.
func (s *Session) Status() string { return s.status }

// PlayerItems returns a copy of the player's items.
func (s *Session) PlayerItems() []component.Item { return s.playerInventory().Items() }

// StashItems returns a copy of the stash's items, or nil when the world
// holds no stash.
func (s *Session) StashItems() []component.Item {
	stash, ok := s.stashInventory()
	if !ok {
		return nil
	}
	return stash.Items()
}

func (s *Session) playerInventory() *component.Inventory {
	return s.world.Get(s.playerID, component.CInventory).(*component.Inventory)
}

// stashInventory finds the stash by its tag, so a stash that is destroyed
// or untagged stops being a pickup source.
func (s *Session) stashInventory() (*component.Inventory, bool) {
	id, ok := s.world.First(component.CTagStash, component.CInventory)
	if !ok {
		return nil, false
	}
	inv, ok := s.world.Get(id, component.CInventory).(*component.Inventory)
	return inv, ok
}

func (s *Session) moveCursor(delta int) {
	s.cursor += delta
	s.clampCursor()
}

// clampCursor keeps the cursor on an existing row (or 0 when empty).
func (s *Session) clampCursor() {
	n := s.playerInventory().Len()
	if s.cursor >= n {
		s.cursor = n - 1
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
}
