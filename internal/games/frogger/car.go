package frogger

import (
	"time"

	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/core"
)

// Car footprint in cells.
const (
	CarWidth  = 4
	CarHeight = 2
)

// Car lifecycle timing.
const (
	wrapOdds            = 3 // a car at its border wraps with 1-in-wrapOdds chance
	reappearMinMs       = 500
	reappearSpanMs      = 1001 // reappear 500..1500ms after hiding
	delayChangeMinMs    = 4000
	delayChangeSpanMs   = 4001 // re-roll speed every 4..8s
	categoryPercentBase = 100
)

// Category decides how a car treats the frog.
type Category int

const (
	CategoryHostile  Category = iota // never waits
	CategoryNeutral                  // waits while the frog is near and facing it
	CategoryFriendly                 // waits like neutral and can carry the frog
)

func (c Category) String() string {
	switch c {
	case CategoryNeutral:
		return "neutral"
	case CategoryFriendly:
		return "friendly"
	default:
		return "hostile"
	}
}

// drawCategory makes one weighted draw over the configured percentages.
// Whatever friendly and neutral leave of 100 is hostile.
func drawCategory(rng randSource, p config.CategoriesConfig) Category {
	r := rng.Intn(categoryPercentBase)
	switch {
	case r < p.Friendly:
		return CategoryFriendly
	case r < p.Friendly+p.Neutral:
		return CategoryNeutral
	default:
		return CategoryHostile
	}
}

// Car is a 4x2 vehicle. X, Y is its top-left cell.
type Car struct {
	X, Y      int
	Dir       Direction
	Category  Category
	MoveDelay time.Duration
	Visible   bool
	Carrying  bool

	lastMove        time.Time
	reappearAt      time.Time // valid while hidden
	nextDelayChange time.Time
}

// Rect returns the car's footprint.
func (c *Car) Rect() core.Rect {
	return core.NewRect(c.X, c.Y, CarWidth, CarHeight)
}

// ReappearAt returns when a hidden car comes back.
func (c *Car) ReappearAt() time.Time {
	return c.reappearAt
}

// randomDelay rolls a move delay in [min,max] milliseconds.
func randomDelay(rng randSource, cars config.CarsConfig) time.Duration {
	ms := cars.MinDelayMs + rng.Intn(cars.MaxDelayMs-cars.MinDelayMs+1)
	return time.Duration(ms) * time.Millisecond
}

func randomMs(rng randSource, minMs, span int) time.Duration {
	return time.Duration(minMs+rng.Intn(span)) * time.Millisecond
}

// spawnCars creates the session's cars, each placed through the lane registry.
func (g *Game) spawnCars(now time.Time) {
	g.cars = make([]Car, g.cfg.Cars.Count)
	for i := range g.cars {
		c := &g.cars[i]
		c.Category = drawCategory(g.rng, g.cfg.Cars.Categories)
		c.MoveDelay = randomDelay(g.rng, g.cfg.Cars)
		c.lastMove = now
		c.nextDelayChange = now.Add(randomMs(g.rng, delayChangeMinMs, delayChangeSpanMs))
		c.Visible = true
		g.placeInLane(c)
		c.X = g.spawnX(i, 1+g.rng.Intn(g.maxCarX()))
	}
}

// spawnX returns the first position at or after x (wrapping) where car i
// does not touch another car in its row. With no such position x is kept.
func (g *Game) spawnX(i, x int) int {
	span := g.maxCarX()
	for k := range span {
		cand := (x-1+k)%span + 1
		if g.hasRoom(i, cand, g.cars[i].Y) {
			return cand
		}
	}
	return x
}

// hasRoom reports whether car i could sit at (x, y) with at least one free
// cell between it and every other visible car in that row.
func (g *Game) hasRoom(i, x, y int) bool {
	for j := range g.cars {
		o := &g.cars[j]
		if j == i || !o.Visible || o.Y != y {
			continue
		}
		if core.Abs(o.X-x) <= CarWidth {
			return false
		}
	}
	return true
}

// maxCarX is the largest X that keeps a car fully on the board.
func (g *Game) maxCarX() int {
	return g.board.Width() - CarWidth + 1
}

// placeInLane assigns c to a lane and takes over its row and direction.
func (g *Game) placeInLane(c *Car) {
	idx := g.lanes.Assign(g.rng)
	if idx < 0 {
		return
	}
	lane := g.lanes.Lane(idx)
	c.Y = lane.Row
	c.Dir = lane.Direction
}

// updateCars advances every car whose own timer has elapsed.
// Cars are updated in slice order: a car's blocking check sees the
// positions cars before it reached in this same step.
func (g *Game) updateCars(now time.Time) {
	for i := range g.cars {
		c := &g.cars[i]
		if !core.Elapsed(g.clock, c.lastMove, c.MoveDelay) {
			continue
		}
		g.updateCar(i, now)
		c.lastMove = now
		g.changeDelay(c, now)
	}
}

// updateCar runs one turn of car i.
func (g *Game) updateCar(i int, now time.Time) {
	c := &g.cars[i]

	if !c.Visible {
		if now.Before(c.reappearAt) {
			return
		}
		g.respawn(i, now)
		return
	}

	if g.blocked(i) {
		return
	}

	if c.Carrying {
		next := c.X + c.Dir.Step()
		if next < 1 || next > g.maxCarX() {
			return
		}
		c.X = next
		g.frog.X = c.X + 1
		return
	}

	if g.waitsForFrog(c) {
		return
	}

	c.X += c.Dir.Step()
	if g.atTravelExtreme(c) {
		g.atBorder(c, now)
	}
}

// respawn brings a hidden car back at the edge its new lane travels away from.
// When that edge is taken the car gives the lane back and waits another
// reappear delay.
func (g *Game) respawn(i int, now time.Time) {
	c := &g.cars[i]
	g.placeInLane(c)
	x := 1
	if c.Dir == DirLeft {
		x = g.maxCarX()
	}
	if !g.hasRoom(i, x, c.Y) {
		g.lanes.Release(g.lanes.LaneAt(c.Y))
		c.reappearAt = now.Add(randomMs(g.rng, reappearMinMs, reappearSpanMs))
		return
	}
	c.X = x
	c.Visible = true
}

// atTravelExtreme reports whether c touches the border it is driving toward.
func (g *Game) atTravelExtreme(c *Car) bool {
	if c.Dir == DirRight {
		return c.X >= g.maxCarX()
	}
	return c.X <= 1
}

// atBorder either wraps c to the opposite edge or hides it and frees its lane.
func (g *Game) atBorder(c *Car, now time.Time) {
	if g.rng.Intn(wrapOdds) == 0 {
		if c.Dir == DirRight {
			c.X = 1
		} else {
			c.X = g.maxCarX()
		}
		return
	}

	g.lanes.Release(g.lanes.LaneAt(c.Y))
	c.Visible = false
	c.reappearAt = now.Add(randomMs(g.rng, reappearMinMs, reappearSpanMs))
}

// blocked reports whether another visible car in the same row is ahead of
// car i within one car length. Of two cars at the same x, the one earlier
// in the slice counts as ahead.
func (g *Game) blocked(i int) bool {
	c := &g.cars[i]
	for j := range g.cars {
		o := &g.cars[j]
		if j == i || !o.Visible || o.Y != c.Y {
			continue
		}
		if o.X == c.X && j < i {
			return true
		}
		switch c.Dir {
		case DirRight:
			if o.X > c.X && o.X-c.Rect().Right() <= CarWidth {
				return true
			}
		case DirLeft:
			if o.X < c.X && c.X-o.Rect().Right() <= CarWidth {
				return true
			}
		}
	}
	return false
}

// waitsForFrog reports whether c holds still for the frog: neutral and
// idle friendly cars wait while the frog is near and facing toward them.
func (g *Game) waitsForFrog(c *Car) bool {
	switch {
	case c.Category == CategoryNeutral:
	case c.Category == CategoryFriendly && !c.Carrying:
	default:
		return false
	}
	if g.frog.Carried || !g.near(c) {
		return false
	}
	return g.frog.facesToward(c.Rect())
}

// near reports whether the frog is inside c's proximity window.
func (g *Game) near(c *Car) bool {
	dx, dy := g.frog.Rect().Gap(c.Rect())
	p := g.cfg.Cars.Proximity
	return dx <= p && dy <= p
}

// changeDelay re-rolls c's speed once its delay window has passed.
func (g *Game) changeDelay(c *Car, now time.Time) {
	if now.Before(c.nextDelayChange) {
		return
	}
	c.MoveDelay = randomDelay(g.rng, g.cfg.Cars)
	c.nextDelayChange = now.Add(randomMs(g.rng, delayChangeMinMs, delayChangeSpanMs))
}
