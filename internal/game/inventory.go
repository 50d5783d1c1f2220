package game

import (
	"errors"
	"fmt"

	"emoji-inventory/internal/component"
)

const noStash = "There is no stash here."

// pickup moves the top stash item into the player's inventory.
func (s *Session) pickup() string {
	inv := s.playerInventory()
	stash, ok := s.stashInventory()
	if !ok {
		return noStash
	}
	item, ok := stash.Get(0)
	if !ok {
		return "The stash is empty."
	}
	if err := inv.Add(item); err != nil {
		if errors.Is(err, component.ErrInventoryFull) {
			return fmt.Sprintf("Your pack is full (%d/%d) — drop something first.", inv.Len(), inv.Capacity())
		}
		s.logger.Warn("pickup failed", "item", item.Name, "error", err)
		return "Cannot pick that up."
	}
	if err := stash.Remove(0); err != nil {
		// Undo so the item is never duplicated.
		_ = inv.Remove(inv.Len() - 1)
		s.logger.Warn("stash remove failed", "item", item.Name, "error", err)
		return "Cannot pick that up."
	}
	s.cursor = inv.Len() - 1
	s.logger.Debug("picked up", "item", item.Name, "carried", inv.Len())
	return fmt.Sprintf("Picked up %s.", item.Name)
}

// drop moves the selected item to the top of the stash.
func (s *Session) drop() string {
	inv := s.playerInventory()
	item, ok := inv.Get(s.cursor)
	if !ok {
		return "Nothing selected."
	}
	stash, ok := s.stashInventory()
	if !ok {
		return noStash
	}
	var err error
	if stash.Len() == 0 {
		err = stash.Add(item)
	} else {
		err = stash.Insert(0, item)
	}
	if err != nil {
		s.logger.Warn("drop failed", "item", item.Name, "error", err)
		return "There is no room to drop that here."
	}
	if err := inv.Remove(s.cursor); err != nil {
		_ = stash.Remove(0)
		s.logger.Warn("inventory remove failed", "item", item.Name, "index", s.cursor, "error", err)
		return "Cannot drop that."
	}
	s.clampCursor()
	s.logger.Debug("dropped", "item", item.Name, "carried", inv.Len())
	return fmt.Sprintf("Dropped %s.", item.Name)
}

// moveItem shifts the selected item delta rows, keeping the cursor on it.
func (s *Session) moveItem(delta int) string {
	inv := s.playerInventory()
	from := s.cursor
	item, ok := inv.Get(from)
	if !ok {
		return "Nothing selected."
	}
	to := from + delta
	if to < 0 || to >= inv.Len() {
		return fmt.Sprintf("%s cannot move further.", item.Name)
	}
	if err := inv.Remove(from); err != nil {
		return fmt.Sprintf("Cannot move %s.", item.Name)
	}
	if err := place(inv, to, item); err != nil {
		// Put it back where it was.
		if restoreErr := place(inv, from, item); restoreErr != nil {
			s.logger.Error("lost item while reordering", "item", item.Name, "error", restoreErr)
		}
		return fmt.Sprintf("Cannot move %s.", item.Name)
	}
	s.cursor = to
	return fmt.Sprintf("Moved %s to slot %d.", item.Name, to)
}

// place puts item at index, appending when index is one past the end.
func place(inv *component.Inventory, index int, item component.Item) error {
	if index == inv.Len() {
		return inv.Add(item)
	}
	return inv.Insert(index, item)
}
