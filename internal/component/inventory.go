package component

import (
	"errors"
	"slices"

	"emoji-inventory/internal/ecs"
)

const CInventory ecs.ComponentType = 6

// DefaultCapacity is the capacity of an inventory built by NewInventory.
const DefaultCapacity = 10

var (
	// ErrInventoryFull is returned when an item would push the inventory
	// past its capacity.
	ErrInventoryFull = errors.New("inventory full")
	// ErrIndexOutOfRange is returned when an index does not address a
	// stored item.
	ErrIndexOutOfRange = errors.New("inventory index out of range")
)

// Inventory is an ordered, capacity-bounded list of items owned by one
// entity. Indices are the only addressing scheme. Every operation either
// fully succeeds or leaves the inventory untouched.
//
// An Inventory is not safe for concurrent use; its owner serialises access.
type Inventory struct {
	capacity int
	items    []Item
}

// NewInventory returns an empty inventory holding up to DefaultCapacity items.
func NewInventory() *Inventory {
	return NewInventoryWithCapacity(DefaultCapacity)
}

// NewInventoryWithCapacity returns an empty inventory holding up to
// capacity items. A negative capacity is treated as zero.
func NewInventoryWithCapacity(capacity int) *Inventory {
	capacity = max(capacity, 0)
	return &Inventory{
		capacity: capacity,
		items:    make([]Item, 0, capacity),
	}
}

func (*Inventory) Type() ecs.ComponentType { return CInventory }

// Capacity returns the maximum number of items the inventory may hold.
func (inv *Inventory) Capacity() int { return inv.capacity }

// Len returns the number of stored items.
func (inv *Inventory) Len() int { return len(inv.items) }

// Full reports whether Add would fail.
func (inv *Inventory) Full() bool { return len(inv.items) >= inv.capacity }

// Items returns a copy of the stored items in order.
func (inv *Inventory) Items() []Item {
	out := make([]Item, len(inv.items))
	copy(out, inv.items)
	return out
}

// Add appends item to the end of the inventory.
func (inv *Inventory) Add(item Item) error {
	if inv.Full() {
		return ErrInventoryFull
	}
	inv.items = append(inv.items, item)
	return nil
}

// Remove deletes the item at index, closing the gap.
func (inv *Inventory) Remove(index int) error {
	if !inv.inRange(index) {
		return ErrIndexOutOfRange
	}
	inv.items = slices.Delete(inv.items, index, index+1)
	return nil
}

// Get returns the item at index. ok is false when index is out of range.
func (inv *Inventory) Get(index int) (item Item, ok bool) {
	if !inv.inRange(index) {
		return Item{}, false
	}
	return inv.items[index], true
}

// Insert places item at index, shifting the item already there and
// everything after it one slot later. index must address an existing
// item, and the inventory must have room.
func (inv *Inventory) Insert(index int, item Item) error {
	if !inv.inRange(index) {
		return ErrIndexOutOfRange
	}
	if inv.Full() {
		return ErrInventoryFull
	}
	inv.items = slices.Insert(inv.items, index, item)
	return nil
}

func (inv *Inventory) inRange(index int) bool {
	return index >= 0 && index < len(inv.items)
}
