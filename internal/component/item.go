package component

// Item describes one carried item. The inventory stores it by value and
// never looks inside it.
type Item struct {
	Name  string
	Glyph string
}

// Label returns the glyph and name joined for display, e.g. "🗡️ Shard Blade".
func (i Item) Label() string {
	switch {
	case i.Glyph == "":
		return i.Name
	case i.Name == "":
		return i.Glyph
	}
	return i.Glyph + " " + i.Name
}
