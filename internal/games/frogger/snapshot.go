package frogger

// Snapshot is a read-only view of a session for renderers and tests.
type Snapshot struct {
	Mode        string
	Board       *Board // immutable, shared
	Frog        Frog
	Cars        []Car // visible cars only, in slice order
	Stork       Stork
	StorkActive bool
	ElapsedSec  int
	Moves       int
	Score       int
	Outcome     Outcome
	Lanes       []Lane
	FreeLanes   int
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	cars := make([]Car, 0, len(g.cars))
	for _, c := range g.cars {
		if c.Visible {
			cars = append(cars, c)
		}
	}

	lanes := make([]Lane, g.lanes.Len())
	for i := range lanes {
		lanes[i] = g.lanes.Lane(i)
	}

	return Snapshot{
		Mode:        g.id,
		Board:       g.board,
		Frog:        g.frog,
		Cars:        cars,
		Stork:       g.stork,
		StorkActive: g.storkActive(),
		ElapsedSec:  g.ElapsedSeconds(),
		Moves:       g.frog.Moves,
		Score:       g.score,
		Outcome:     g.outcome,
		Lanes:       lanes,
		FreeLanes:   g.lanes.Free(),
	}
}
