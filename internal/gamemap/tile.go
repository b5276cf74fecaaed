package gamemap

// TileKind identifies the type of a map tile.
type TileKind uint8

const (
	TileWall TileKind = iota
	TileFloor
	TileDoor
	TilePuddle
	TileExit
)

// Tile holds the kind and passability of one map cell.
type Tile struct {
	Kind        TileKind
	Walkable    bool
	Transparent bool
}

// MakeWall returns a blocking, opaque wall tile.
func MakeWall() Tile {
	return Tile{Kind: TileWall, Walkable: false, Transparent: false}
}

// MakeFloor returns a passable, transparent floor tile.
func MakeFloor() Tile {
	return Tile{Kind: TileFloor, Walkable: true, Transparent: true}
}

// MakeDoor returns an open door: walkable but it blocks sight.
func MakeDoor() Tile {
	return Tile{Kind: TileDoor, Walkable: true, Transparent: false}
}

// MakePuddle returns a wet carpet tile (cosmetic floor).
func MakePuddle() Tile {
	return Tile{Kind: TilePuddle, Walkable: true, Transparent: true}
}

// MakeExit returns the level exit hole.
func MakeExit() Tile {
	return Tile{Kind: TileExit, Walkable: true, Transparent: true}
}
