// Package forest runs a stochastic cellular automaton for wildfire spread,
// and the same rule set reinterpreted as disease moving through a population.
//
// Cells are updated synchronously: frame k+1 is derived from frame k only.
// Every burning (sick) cell may spread to its four neighbours with
// probability PSpread and then burns out (recovers or dies).
package forest

import (
	"errors"
	"fmt"
	"math/rand"
)

// Cell is the state of one grid site. Values follow the fire convention;
// the disease mode reuses them with different meaning.
type Cell uint8

const (
	Dead    Cell = 0 // disease: killed by the infection
	Bare    Cell = 1 // fire: nothing left to burn; disease: immune
	Forest  Cell = 2 // fire: unburnt tree; disease: healthy, susceptible
	Burning Cell = 3 // fire: on fire; disease: sick
)

// Immune and Healthy/Sick alias the fire states for the disease mode.
const (
	Immune  = Bare
	Healthy = Forest
	Sick    = Burning
)

type Mode int

const (
	Fire Mode = iota
	Disease
)

func (m Mode) String() string {
	switch m {
	case Fire:
		return "fire"
	case Disease:
		return "disease"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode accepts "fire" or "disease".
func ParseMode(s string) (Mode, error) {
	switch s {
	case "fire", "":
		return Fire, nil
	case "disease":
		return Disease, nil
	}
	return 0, fmt.Errorf("unknown mode: %s", s)
}

// ErrParameterBounds indicates a non-positive size or a probability outside [0, 1].
var ErrParameterBounds = errors.New("forest: parameter out of valid bounds")

type Config struct {
	Mode    Mode
	ISize   int
	JSize   int
	NStep   int
	PSpread float64 // chance to spread into each neighbour
	PBare   float64 // chance a cell starts bare (immune)
	PStart  float64 // chance a cell starts burning; 0 lights the centre only
	PFatal  float64 // disease only: chance a sick cell dies instead of recovering
	Seed    int64
}

func DefaultConfig() Config {
	return Config{
		Mode:    Fire,
		ISize:   3,
		JSize:   3,
		NStep:   4,
		PSpread: 1.0,
	}
}

func (c Config) Validate() error {
	if c.ISize <= 0 || c.JSize <= 0 || c.NStep <= 0 {
		return fmt.Errorf("size %dx%d, %d steps: %w", c.ISize, c.JSize, c.NStep, ErrParameterBounds)
	}
	for name, p := range map[string]float64{
		"pspread": c.PSpread, "pbare": c.PBare, "pstart": c.PStart, "pfatal": c.PFatal,
	} {
		if p < 0 || p > 1 {
			return fmt.Errorf("%s=%g: %w", name, p, ErrParameterBounds)
		}
	}
	return nil
}

// Grid is one frame, indexed [i][j].
type Grid [][]Cell

func newGrid(isize, jsize int) Grid {
	backing := make([]Cell, isize*jsize)
	g := make(Grid, isize)
	for i := range g {
		g[i] = backing[i*jsize : (i+1)*jsize : (i+1)*jsize]
	}
	return g
}

func (g Grid) Clone() Grid {
	c := newGrid(len(g), len(g[0]))
	for i := range g {
		copy(c[i], g[i])
	}
	return c
}

func (g Grid) Count(state Cell) int {
	n := 0
	for _, row := range g {
		for _, c := range row {
			if c == state {
				n++
			}
		}
	}
	return n
}

// Run holds every frame of one realisation.
type Run struct {
	Config Config
	Frames []Grid
}

// Simulate advances the automaton NStep-1 times from a random initial frame.
func Simulate(cfg Config) (*Run, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(cfg.Seed))

	run := &Run{Config: cfg, Frames: make([]Grid, 0, cfg.NStep)}
	cur := initialFrame(cfg, rng)
	run.Frames = append(run.Frames, cur)

	for k := 1; k < cfg.NStep; k++ {
		cur = step(cfg, cur, rng)
		run.Frames = append(run.Frames, cur)
	}
	return run, nil
}

func initialFrame(cfg Config, rng *rand.Rand) Grid {
	g := newGrid(cfg.ISize, cfg.JSize)
	for i := range g {
		for j := range g[i] {
			g[i][j] = Forest
			if rng.Float64() < cfg.PBare {
				g[i][j] = Bare
			}
		}
	}

	if cfg.PStart == 0 {
		g[cfg.ISize/2][cfg.JSize/2] = Burning
		return g
	}
	for i := range g {
		for j := range g[i] {
			if g[i][j] == Forest && rng.Float64() < cfg.PStart {
				g[i][j] = Burning
			}
		}
	}
	return g
}

var neighbours = [4][2]int{
	{-1, 0}, // up
	{1, 0},  // down
	{0, 1},  // east
	{0, -1}, // west
}

func step(cfg Config, prev Grid, rng *rand.Rand) Grid {
	next := prev.Clone()
	isize, jsize := len(prev), len(prev[0])

	for i := 0; i < isize; i++ {
		for j := 0; j < jsize; j++ {
			if prev[i][j] != Burning {
				continue
			}
			for _, d := range neighbours {
				ni, nj := i+d[0], j+d[1]
				if ni < 0 || ni >= isize || nj < 0 || nj >= jsize {
					continue
				}
				if prev[ni][nj] == Forest && rng.Float64() < cfg.PSpread {
					next[ni][nj] = Burning
				}
			}
			next[i][j] = burnOut(cfg, rng)
		}
	}
	return next
}

func burnOut(cfg Config, rng *rand.Rand) Cell {
	if cfg.Mode == Disease && rng.Float64() < cfg.PFatal {
		return Dead
	}
	return Bare
}

// Fractions is the share of cells in each state for one frame.
type Fractions struct {
	Dead    float64
	Bare    float64
	Forest  float64
	Burning float64
}

func (g Grid) Fractions() Fractions {
	total := float64(len(g) * len(g[0]))
	return Fractions{
		Dead:    float64(g.Count(Dead)) / total,
		Bare:    float64(g.Count(Bare)) / total,
		Forest:  float64(g.Count(Forest)) / total,
		Burning: float64(g.Count(Burning)) / total,
	}
}

// History returns per-frame fractions.
func (r *Run) History() []Fractions {
	out := make([]Fractions, len(r.Frames))
	for k, f := range r.Frames {
		out[k] = f.Fractions()
	}
	return out
}

// Final is the last frame.
func (r *Run) Final() Grid {
	return r.Frames[len(r.Frames)-1]
}

// Extinguished reports the first frame with nothing burning, or -1.
func (r *Run) Extinguished() int {
	for k, f := range r.Frames {
		if f.Count(Burning) == 0 {
			return k
		}
	}
	return -1
}
