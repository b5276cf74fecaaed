package assets

// EntityLore is shown the first time the player kills each entity type.
var EntityLore = map[string]string{
	KindBacteriaSpawn: "It twitches for a while after. The carpet drinks what leaks out.",
	KindSpreader:      "The spore cloud settles. Nearby growths stop knitting themselves back together.",
	KindBroodMother:   "Something that tall should not fit under these ceilings. It folded itself to die.",
	KindSmiler:        "The grin hangs in the dark a moment longer than the face behind it.",
	KindMannequin:     "Plastic. Definitely plastic. It was facing the other way a minute ago.",
}

// LevelLore holds atmospheric snippets; one is picked at random on entry.
var LevelLore = []string{
	"The hum of the lights is the loudest thing here. It is never quite in tune.",
	"Wet carpet. Yellow wallpaper. The same room, forever, slightly rearranged.",
	"Somebody wrote 'DON'T RUN' on the wall. The handwriting gets worse toward the end.",
	"Clap if you see teeth in the dark. Loudly.",
}
