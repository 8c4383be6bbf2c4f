package rules

import (
	"math/rand/v2"

	"github.com/vovakirdan/crossing/internal/config"
)

// Lanes are the fixed obstacle rows, in canvas pixels.
var Lanes = [...]float64{60, 150, 230}

// Random yields integers in the inclusive range [lo, hi].
type Random interface {
	IntRange(lo, hi int) int
}

// PCG is a seeded Random backed by math/rand/v2.
type PCG struct {
	r *rand.Rand
}

// NewRandom creates a deterministic Random for the seed.
func NewRandom(seed int64) *PCG {
	return &PCG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// IntRange returns a uniform integer in [lo, hi].
func (p *PCG) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + p.r.IntN(hi-lo+1)
}

// Scripted replays a fixed sequence of values, cycling when exhausted.
// Values outside the requested range are clamped into it.
type Scripted struct {
	values []int
	next   int
}

// NewScripted creates a Scripted source. With no values it always returns the low bound.
func NewScripted(values ...int) *Scripted {
	return &Scripted{values: values}
}

// IntRange returns the next scripted value clamped into [lo, hi].
func (s *Scripted) IntRange(lo, hi int) int {
	if len(s.values) == 0 {
		return lo
	}
	v := s.values[s.next%len(s.values)]
	s.next++
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Spawner draws the randomized obstacle parameters from a Random source.
type Spawner struct {
	rnd       Random
	minSpeed  int
	maxSpeed  int
	spawnMinX int
	spawnMaxX int
}

// NewSpawner creates a spawner using the enemy ranges of cfg.
func NewSpawner(cfg config.Config, rnd Random) *Spawner {
	return &Spawner{
		rnd:       rnd,
		minSpeed:  cfg.Enemies.MinSpeed,
		maxSpeed:  cfg.Enemies.MaxSpeed,
		spawnMinX: cfg.Enemies.SpawnMinX,
		spawnMaxX: cfg.Enemies.SpawnMaxX,
	}
}

// RandomSpeed returns an integer speed in px/s within the configured range.
func (s *Spawner) RandomSpeed() float64 {
	return float64(s.rnd.IntRange(s.minSpeed, s.maxSpeed))
}

// RandomHorizontalSpawnX returns an off-screen-left x within the configured range.
func (s *Spawner) RandomHorizontalSpawnX() float64 {
	return float64(s.rnd.IntRange(s.spawnMinX, s.spawnMaxX))
}

// RandomLaneY returns one of the lane y-coordinates, uniformly.
func (s *Spawner) RandomLaneY() float64 {
	return Lanes[s.rnd.IntRange(0, len(Lanes)-1)]
}
