package factory

import (
	"emoji-inventory/assets"
	"emoji-inventory/internal/component"
	"emoji-inventory/internal/ecs"

	"github.com/gdamore/tcell/v2"
)

// NewPlayer creates the player entity with an inventory of the given
// capacity and fills it from kit in order. Kit items that do not fit are
// left out. It returns the entity and how many kit items were stored.
func NewPlayer(w *ecs.World, name string, capacity int, kit []component.Item) (ecs.EntityID, int) {
	id := w.CreateEntity()
	inv := component.NewInventoryWithCapacity(capacity)
	stored := 0
	for _, it := range kit {
		if inv.Add(it) != nil {
			break
		}
		stored++
	}
	w.Add(id, inv)
	w.Add(id, component.Renderable{
		Glyph:   assets.GlyphPlayer,
		Name:    name,
		FGColor: tcell.ColorYellow,
	})
	w.Add(id, component.TagPlayer{})
	return id, stored
}

// NewStash creates an item pile holding items with room for spare more,
// so the player can drop things back into it.
func NewStash(w *ecs.World, items []component.Item, spare int) ecs.EntityID {
	id := w.CreateEntity()
	inv := component.NewInventoryWithCapacity(len(items) + max(spare, 0))
	for _, it := range items {
		_ = inv.Add(it) // capacity is at least len(items)
	}
	w.Add(id, inv)
	w.Add(id, component.Renderable{
		Glyph:   assets.GlyphStash,
		Name:    "Stash",
		FGColor: tcell.ColorGreen,
	})
	w.Add(id, component.TagStash{})
	return id
}
