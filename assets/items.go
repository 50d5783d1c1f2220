package assets

import "emoji-inventory/internal/component"

// Item glyphs.
const (
	GlyphPlayer        = "🧙"
	GlyphStash         = "🧰"
	GlyphHyperflask    = "🧪"
	GlyphPrismShard    = "💎"
	GlyphNullCloak     = "🫥"
	GlyphTesseract     = "📦"
	GlyphMemoryScroll  = "📜"
	GlyphCrystalHelm   = "⛑️"
	GlyphFrostWeave    = "🥼"
	GlyphFluxTreads    = "👢"
	GlyphShardBlade    = "🗡️"
	GlyphResonanceMaul = "🔨"
	GlyphPhaseMirror   = "🪞"
	GlyphPowerCell     = "🔋"
	GlyphNanoSyringe   = "💉"
	GlyphApexCore      = "🔮"
)

// Items is the full catalog in display order.
var Items = []component.Item{
	{Glyph: GlyphHyperflask, Name: "Hyperflask"},
	{Glyph: GlyphPrismShard, Name: "Prism Shard"},
	{Glyph: GlyphNullCloak, Name: "Null Cloak"},
	{Glyph: GlyphTesseract, Name: "Tesseract Cube"},
	{Glyph: GlyphMemoryScroll, Name: "Memory Scroll"},
	{Glyph: GlyphCrystalHelm, Name: "Crystal Helm"},
	{Glyph: GlyphFrostWeave, Name: "Frost Weave"},
	{Glyph: GlyphFluxTreads, Name: "Flux Treads"},
	{Glyph: GlyphShardBlade, Name: "Shard Blade"},
	{Glyph: GlyphResonanceMaul, Name: "Resonance Maul"},
	{Glyph: GlyphPhaseMirror, Name: "Phase Mirror"},
	{Glyph: GlyphPowerCell, Name: "Power Cell"},
	{Glyph: GlyphNanoSyringe, Name: "Nano-Syringe"},
	{Glyph: GlyphApexCore, Name: "Apex Core"},
}

// starterGlyphs lists what a new player carries.
var starterGlyphs = []string{GlyphHyperflask, GlyphPrismShard, GlyphShardBlade}

// ItemByGlyph returns the catalog entry for glyph.
func ItemByGlyph(glyph string) (component.Item, bool) {
	for _, it := range Items {
		if it.Glyph == glyph {
			return it, true
		}
	}
	return component.Item{}, false
}

// StarterKit returns a fresh slice of the items a new player starts with.
func StarterKit() []component.Item {
	out := make([]component.Item, 0, len(starterGlyphs))
	for _, g := range starterGlyphs {
		if it, ok := ItemByGlyph(g); ok {
			out = append(out, it)
		}
	}
	return out
}

// StashContents returns a fresh slice of every catalog item not in the
// starter kit, for seeding the pile next to the player.
func StashContents() []component.Item {
	starter := make(map[string]bool, len(starterGlyphs))
	for _, g := range starterGlyphs {
		starter[g] = true
	}
	var out []component.Item
	for _, it := range Items {
		if !starter[it.Glyph] {
			out = append(out, it)
		}
	}
	return out
}
