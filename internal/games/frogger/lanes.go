package frogger

// Direction is the horizontal travel direction of a lane and its cars.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
)

// Step returns the x delta of one move in this direction.
func (d Direction) Step() int {
	if d == DirLeft {
		return -1
	}
	return 1
}

func (d Direction) String() string {
	if d == DirLeft {
		return "left"
	}
	return "right"
}

// Lane is one road band with a fixed travel direction.
type Lane struct {
	Row       int // 1-based top row of the band
	Direction Direction
	Occupancy int
}

// LaneRegistry tracks how many cars sit in each lane.
// All occupancy changes go through Assign and Release, which keep the free
// lane count equal to the number of lanes with zero occupancy.
type LaneRegistry struct {
	lanes []Lane
	free  int
}

// NewLaneRegistry creates empty lanes at the given rows with a random
// direction each.
func NewLaneRegistry(rows []int, rng randSource) *LaneRegistry {
	r := &LaneRegistry{
		lanes: make([]Lane, len(rows)),
		free:  len(rows),
	}
	for i, row := range rows {
		dir := DirRight
		if rng.Intn(2) == 0 {
			dir = DirLeft
		}
		r.lanes[i] = Lane{Row: row, Direction: dir}
	}
	return r
}

// Assign picks a lane for a spawning car: the first empty lane, or a random
// lane when every lane is occupied. Returns -1 when there are no lanes.
func (r *LaneRegistry) Assign(rng randSource) int {
	if len(r.lanes) == 0 {
		return -1
	}

	idx := -1
	for i := range r.lanes {
		if r.lanes[i].Occupancy == 0 {
			idx = i
			r.free--
			break
		}
	}
	if idx < 0 {
		idx = rng.Intn(len(r.lanes))
	}

	r.lanes[idx].Occupancy++
	return idx
}

// Release removes one car from lane idx.
func (r *LaneRegistry) Release(idx int) {
	if idx < 0 || idx >= len(r.lanes) || r.lanes[idx].Occupancy == 0 {
		return
	}
	r.lanes[idx].Occupancy--
	if r.lanes[idx].Occupancy == 0 {
		r.free++
	}
}

// LaneAt returns the index of the lane anchored at row, or -1.
func (r *LaneRegistry) LaneAt(row int) int {
	for i := range r.lanes {
		if r.lanes[i].Row == row {
			return i
		}
	}
	return -1
}

// Lane returns a copy of lane idx.
func (r *LaneRegistry) Lane(idx int) Lane {
	return r.lanes[idx]
}

// Len returns the number of lanes.
func (r *LaneRegistry) Len() int {
	return len(r.lanes)
}

// Free returns the number of lanes without cars.
func (r *LaneRegistry) Free() int {
	return r.free
}
