package game

// Info describes a game for pickers and API clients.
type Info struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Tones       ToneTable `json:"tones"`
}

// Catalog lists every game in menu order.
var Catalog = []Info{
	{"rhythm", "Rhythm Master", "Follow the rhythm pattern and test your timing!", BeatPads},
	{"pitch", "Pitch Perfect", "Test your pitch recognition skills!", NaturalNotes},
	{"piano", "Virtual Piano", "Play and learn on our virtual piano!", ChromaticNotes},
	{"memory", "Music Memory", "Match the musical instruments!", Instruments},
	{"builder", "Piano Beat Builder", "Create a melody with up to 8 notes.", NaturalNotes},
}

// Lookup finds a catalog entry by id.
func Lookup(id string) (Info, bool) {
	for _, info := range Catalog {
		if info.ID == id {
			return info, true
		}
	}
	return Info{}, false
}
