package assets

import "github.com/gdamore/tcell/v2"

// Emoji constants used as entity glyphs.
const (
	GlyphPlayer        = "🧍"
	GlyphBacteriaSpawn = "🦠"
	GlyphSpreader      = "🧫"
	GlyphBroodMother   = "🕷"
	GlyphSmiler        = "😁"
	GlyphLight         = "💡"
	GlyphLightBroken   = "🔌"
	GlyphMannequin     = "🗿"
	GlyphBarrelFire    = "🔥"
	GlyphExit          = "🕳"
)

// Entity type identifiers. These are the keys of the behavior registry.
const (
	KindBacteriaSpawn = "bacteria_spawn"
	KindSpreader      = "bacteria_spreader"
	KindBroodMother   = "bacteria_brood_mother"
	KindSmiler        = "smiler"
	KindLight         = "fluorescent_light"
	KindLightBroken   = "fluorescent_light_broken"
	KindMannequin     = "mannequin"
	KindBarrelFire    = "barrel_fire"
)

// Categories group archetypes that cooperate (the spreader heals its own
// category only).
const (
	CategoryBacteria = "bacteria"
	CategoryEntity   = "entity"
	CategoryFixture  = "fixture"
)

// ArchetypeDef is the static definition of one entity type.
type ArchetypeDef struct {
	Kind     string
	Name     string
	Category string
	Glyph    string
	Color    tcell.Color
	MaxHP    float64
	Blocks   bool // occupies its tile for movement
	Light    bool // carries an entropy-lock flicker state
	Broken   bool // light that never comes on
}

// Archetypes is keyed by entity type.
var Archetypes = map[string]ArchetypeDef{
	KindBacteriaSpawn: {
		Kind: KindBacteriaSpawn, Name: "bacteria spawn", Category: CategoryBacteria,
		Glyph: GlyphBacteriaSpawn, Color: tcell.ColorGreen, MaxHP: 6, Blocks: true,
	},
	KindSpreader: {
		Kind: KindSpreader, Name: "bacteria spreader", Category: CategoryBacteria,
		Glyph: GlyphSpreader, Color: tcell.ColorOlive, MaxHP: 12, Blocks: true,
	},
	KindBroodMother: {
		Kind: KindBroodMother, Name: "brood mother", Category: CategoryBacteria,
		Glyph: GlyphBroodMother, Color: tcell.ColorDarkGreen, MaxHP: 30, Blocks: true,
	},
	KindSmiler: {
		Kind: KindSmiler, Name: "smiler", Category: CategoryEntity,
		Glyph: GlyphSmiler, Color: tcell.ColorYellow, MaxHP: 1, Blocks: true,
	},
	KindLight: {
		Kind: KindLight, Name: "fluorescent light", Category: CategoryFixture,
		Glyph: GlyphLight, Color: tcell.ColorLightYellow, MaxHP: 1, Light: true,
	},
	KindLightBroken: {
		Kind: KindLightBroken, Name: "dead fluorescent light", Category: CategoryFixture,
		Glyph: GlyphLightBroken, Color: tcell.ColorGray, MaxHP: 1, Light: true, Broken: true,
	},
	KindMannequin: {
		Kind: KindMannequin, Name: "mannequin", Category: CategoryFixture,
		Glyph: GlyphMannequin, Color: tcell.ColorTan, MaxHP: 10, Blocks: true,
	},
	KindBarrelFire: {
		Kind: KindBarrelFire, Name: "barrel fire", Category: CategoryFixture,
		Glyph: GlyphBarrelFire, Color: tcell.ColorOrangeRed, MaxHP: 20, Blocks: true, Light: true,
	},
}

// Lookup returns the definition for kind.
func Lookup(kind string) (ArchetypeDef, bool) {
	def, ok := Archetypes[kind]
	return def, ok
}
