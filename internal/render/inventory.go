package render

import (
	"fmt"

	"emoji-inventory/internal/component"
	"emoji-inventory/internal/ecs"

	"github.com/mattn/go-runewidth"
)

// InventoryView is the read-only side of an inventory. The panel only ever
// sees an inventory through this interface.
type InventoryView interface {
	Capacity() int
	Len() int
	Get(index int) (component.Item, bool)
}

const (
	panelMarginX = 4
	panelMarginY = 1
	// title, owner/counter, separator above the list; separator, status,
	// hints below it.
	panelHeaderRows = 3
	panelFooterRows = 3

	inventoryTitle = "Inventory"
	inventoryHints = "[j/k] Move  [J/K] Reorder  [p] Pick up  [d] Drop  [q] Close"
)

// PlayerInventory returns the inventory of the player entity, if any.
func PlayerInventory(w *ecs.World) (InventoryView, bool) {
	id, ok := w.First(component.CTagPlayer, component.CInventory)
	if !ok {
		return nil, false
	}
	view, ok := w.Get(id, component.CInventory).(InventoryView)
	return view, ok
}

// SpawnInventoryMenu draws the player's inventory panel. It draws nothing
// and returns false when there is no player inventory.
func (r *Renderer) SpawnInventoryMenu(w *ecs.World, cursor int, status string) bool {
	view, ok := PlayerInventory(w)
	if !ok {
		return false
	}
	var owner component.Renderable
	if id, ok := w.First(component.CTagPlayer, component.CRenderable); ok {
		owner = w.Get(id, component.CRenderable).(component.Renderable)
	}
	r.DrawInventoryPanel(owner, view, cursor, status)
	return true
}

// DrawInventoryPanel renders view as a centered panel headed by owner's
// label in owner's color. cursor selects a row; the list scrolls to keep it
// visible. The screen is not cleared or shown.
func (r *Renderer) DrawInventoryPanel(owner component.Renderable, view InventoryView, cursor int, status string) {
	sw, sh := r.screen.Size()
	mx, my := panelMarginX, panelMarginY
	if sw < 2*mx+len(inventoryTitle)+2 {
		mx = 0
	}
	if sh < 2*my+panelHeaderRows+panelFooterRows+1 {
		my = 0
	}
	x0, y0, x1, y1 := mx, my, sw-mx, sh-my
	if x1 <= x0 || y1 <= y0 {
		return
	}
	r.fill(x0, y0, x1, y1, stylePanel)

	// Title row, centered.
	tx := x0 + (x1-x0-runewidth.StringWidth(inventoryTitle))/2
	r.drawText(max(tx, x0), y0, x1, inventoryTitle, styleTitle)

	// Owner on the left, slot counter on the right.
	counter := fmt.Sprintf("%d/%d", view.Len(), view.Capacity())
	cx := x1 - 1 - runewidth.StringWidth(counter)
	if label := owner.Label(); label != "" {
		r.drawText(x0+1, y0+1, cx-1, label, stylePanel.Foreground(owner.FGColor))
	}
	r.drawText(max(cx, x0), y0+1, x1, counter, styleCounter)
	r.drawHLine(x0, x1, y0+2, styleBorder)

	listTop := y0 + panelHeaderRows
	rows := y1 - panelFooterRows - listTop
	if view.Len() == 0 {
		if rows > 0 {
			r.drawText(x0+2, listTop, x1, "(empty)", styleDim)
		}
	} else {
		first := 0
		if rows > 0 && cursor >= rows {
			first = cursor - rows + 1
		}
		for row := 0; row < rows; row++ {
			idx := first + row
			item, ok := view.Get(idx)
			if !ok {
				break
			}
			r.drawItemRow(x0, x1, listTop+row, idx, item, idx == cursor)
		}
	}

	r.drawHLine(x0, x1, y1-3, styleBorder)
	if status != "" {
		r.drawText(x0+1, y1-2, x1, status, styleStatus)
	}
	r.drawText(x0+1, y1-1, x1, inventoryHints, styleDim)
}

// drawItemRow draws "► [i] glyph name" with the selected row highlighted.
func (r *Renderer) drawItemRow(x0, x1, y, index int, item component.Item, selected bool) {
	style := stylePanel
	pfx := "  "
	if selected {
		style = styleHighlight
		pfx = "► "
		r.fill(x0, y, x1, y+1, style)
	}
	col := r.drawText(x0+1, y, x1, fmt.Sprintf("%s[%d] ", pfx, index), style)
	if item.Glyph != "" && col+2 < x1 {
		col += r.putGlyph(col, y, item.Glyph, style)
		col++
	}
	r.drawText(col, y, x1, item.Name, style)
}
