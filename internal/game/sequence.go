package game

// Generator draws level targets from a fixed symbol set.
type Generator struct {
	symbols []string
	length  LengthFunc
	rng     *Rand
}

func NewGenerator(table ToneTable, length LengthFunc, rng *Rand) *Generator {
	return &Generator{symbols: table.Symbols(), length: length, rng: rng}
}

// Generate returns a fresh target for level. Each position is drawn
// independently, so neighbours may repeat.
func (g *Generator) Generate(level int) []string {
	n := g.length(level)
	seq := make([]string, n)
	for i := range seq {
		seq[i] = g.symbols[g.rng.Intn(len(g.symbols))]
	}
	return seq
}
