package component

import (
	"emoji-inventory/internal/ecs"

	"github.com/gdamore/tcell/v2"
)

const CRenderable ecs.ComponentType = 3

// Renderable carries how an entity is labelled on screen. The inventory
// panel uses it for its owner line.
type Renderable struct {
	Glyph   string
	Name    string
	FGColor tcell.Color
}

func (Renderable) Type() ecs.ComponentType { return CRenderable }

// Label returns the glyph and name joined for display.
func (r Renderable) Label() string {
	return Item{Name: r.Name, Glyph: r.Glyph}.Label()
}
