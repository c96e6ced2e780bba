package config

import (
	"fmt"
	"math"

	"github.com/AhmedSherif9/HideAndSeek/internal/camera"
	"github.com/AhmedSherif9/HideAndSeek/internal/grid"
)

// MaxClockStart bounds the countdown so scripted steps always expand to a
// manageable number of entries.
const MaxClockStart = 1 << 20

// issues accumulates validation problems.
type issues []error

func (is *issues) addf(format string, args ...any) {
	*is = append(*is, fmt.Errorf(format, args...))
}

// Validate checks the scene and returns a *ConfigError listing every problem.
func (sc *Scene) Validate(source string) error {
	var is issues
	step := sc.GridStep
	if step <= 0 {
		is.addf("grid_step %d must be positive", step)
		step = 1
	}
	aligned := func(what string, p Point) {
		if !p.Grid().Aligned(step) {
			is.addf("%s %v is not a multiple of grid_step %d", what, p.Grid(), step)
		}
	}
	direction := func(what, s string) {
		if _, err := grid.ParseDirection(s); err != nil {
			is.addf("%s: %v", what, err)
		}
	}

	if sc.TickPeriodMS <= 0 {
		is.addf("tick_period_ms %d must be positive", sc.TickPeriodMS)
	}

	cam := camera.New(sc.Camera.Eye.Vec(), sc.Camera.Center.Vec(), sc.Camera.Up.Vec())
	if err := cam.Validate(); err != nil {
		is.addf("camera: %v", err)
	}
	if sc.Camera.Near <= 0 || sc.Camera.Far <= sc.Camera.Near {
		is.addf("camera: need 0 < near < far, got near=%v far=%v", sc.Camera.Near, sc.Camera.Far)
	}
	if sc.Camera.FOVY <= 0 || sc.Camera.FOVY >= 180 {
		is.addf("camera: fovy %v must be in (0, 180)", sc.Camera.FOVY)
	}

	aligned("avatar start", sc.Avatar.Start)
	direction("avatar facing", sc.Avatar.Facing)
	if sc.Avatar.ID == "" {
		is.addf("avatar id is empty")
	}

	if b := sc.Bounds; b != nil {
		aligned("bounds min", b.Min)
		aligned("bounds max", b.Max)
		if b.Min.X > b.Max.X || b.Min.Z > b.Max.Z {
			is.addf("bounds min %v exceeds max %v", b.Min.Grid(), b.Max.Grid())
		} else if !b.bounds().Contains(sc.Avatar.Start.Grid()) {
			is.addf("avatar start %v is outside bounds", sc.Avatar.Start.Grid())
		}
	}
	for i, w := range sc.Walls {
		aligned(fmt.Sprintf("walls[%d]", i), w.At)
		direction(fmt.Sprintf("walls[%d]", i), w.Dir)
	}
	blocked := make(map[Point]bool, len(sc.BlockedCells))
	for i, c := range sc.BlockedCells {
		aligned(fmt.Sprintf("blocked_cells[%d]", i), c)
		blocked[c] = true
	}
	if blocked[sc.Avatar.Start] {
		is.addf("avatar start %v is a blocked cell", sc.Avatar.Start.Grid())
	}

	ids := map[string]string{sc.Avatar.ID: "avatar"}
	claim := func(id, what string) {
		if id == "" {
			is.addf("%s has an empty id", what)
			return
		}
		if prev, dup := ids[id]; dup {
			is.addf("%s id %q already used by %s", what, id, prev)
			return
		}
		ids[id] = what
	}
	for i, c := range sc.Collectibles {
		what := fmt.Sprintf("collectibles[%d]", i)
		claim(c.ID, what)
		aligned(what+" at", c.At)
		if len(c.Triggers) == 0 && blocked[c.At] {
			is.addf("%s at %v is a blocked cell", what, c.At.Grid())
		}
		seen := map[Point]bool{}
		for _, t := range c.Triggers {
			aligned(what+" trigger", t)
			if seen[t] {
				is.addf("%s lists trigger %v twice", what, t.Grid())
			}
			if blocked[t] {
				is.addf("%s trigger %v is a blocked cell", what, t.Grid())
			}
			seen[t] = true
		}
	}

	if len(sc.WinZone) == 0 {
		is.addf("win_zone is empty")
	}
	for i, p := range sc.WinZone {
		aligned(fmt.Sprintf("win_zone[%d]", i), p)
		if blocked[p] {
			is.addf("win_zone[%d] %v is a blocked cell", i, p.Grid())
		}
	}

	for i, z := range sc.SoundZones {
		if z.Cue == "" {
			is.addf("sound_zones[%d] has no cue", i)
		}
		for _, p := range z.At {
			aligned(fmt.Sprintf("sound_zones[%d]", i), p)
		}
	}

	if sc.Clock.Start > MaxClockStart {
		is.addf("clock start %d exceeds %d", sc.Clock.Start, MaxClockStart)
	}
	floor := sc.ClockFloor()
	if floor < 0 {
		is.addf("clock floor %d is negative", floor)
	}
	if floor >= sc.Clock.Start {
		is.addf("clock floor %d must be below start %d", floor, sc.Clock.Start)
	}
	scripts := map[string]bool{}
	for i, p := range sc.Patrols {
		if p.Name == "" {
			is.addf("patrols[%d] has no name", i)
		}
		if scripts[p.Name] {
			is.addf("patrol %q defined twice", p.Name)
		}
		scripts[p.Name] = true
		for j, st := range p.Steps {
			what := fmt.Sprintf("patrol %q step %d", p.Name, j)
			if st.Facing != "" {
				direction(what, st.Facing)
			}
			if st.Repeat < 0 {
				is.addf("%s: repeat %d is negative", what, st.Repeat)
			}
			if st.Every < 0 {
				is.addf("%s: every %d is negative", what, st.Every)
			}
			if st.Tick < floor || st.Tick >= sc.Clock.Start {
				is.addf("%s: tick %d outside clock range [%d, %d)", what, st.Tick, floor, sc.Clock.Start)
				continue
			}
			if low, ok := st.lowest(); !ok || low < floor || low < 0 {
				n, every := st.span()
				is.addf("%s: repeat %d every %d runs below floor %d", what, n, every, floor)
			}
		}
	}
	for i, a := range sc.Adversaries {
		what := fmt.Sprintf("adversaries[%d]", i)
		claim(a.ID, what)
		if !scripts[a.Patrol] {
			is.addf("%s references unknown patrol %q", what, a.Patrol)
		}
		if a.Facing != "" {
			direction(what+" facing", a.Facing)
		}
	}

	if sc.Audio.Volume < 0 || sc.Audio.Volume > 1 {
		is.addf("audio volume %v must be in [0, 1]", sc.Audio.Volume)
	}
	if sc.Audio.Enabled && sc.Audio.SampleRate <= 0 {
		is.addf("audio sample_rate %d must be positive", sc.Audio.SampleRate)
	}

	if len(is) > 0 {
		return &ConfigError{Source: source, Issues: is}
	}
	return nil
}

// span returns how many times a step fires and the spacing between firings.
func (st StepConfig) span() (n, every int) {
	n, every = st.Repeat, st.Every
	if n <= 0 {
		n = 1
	}
	if every <= 0 {
		every = 1
	}
	return n, every
}

// lowest returns the last clock value a step fires at, without expanding
// it. ok is false when the value does not fit in an int.
func (st StepConfig) lowest() (int, bool) {
	n, every := st.span()
	if n-1 > math.MaxInt/every {
		return 0, false
	}
	d := (n - 1) * every
	if st.Tick < math.MinInt+d {
		return 0, false
	}
	return st.Tick - d, true
}

// ticks expands a step into the clock values it fires at. Only call it on
// a validated scene.
func (st StepConfig) ticks() []int {
	n, every := st.span()
	out := make([]int, n)
	for i := range out {
		out[i] = st.Tick - i*every
	}
	return out
}

// ClockFloor returns the configured floor, or the lowest scripted tick, or
// zero when nothing is scripted. Steps whose range overflows are skipped;
// Validate reports them.
func (sc *Scene) ClockFloor() int {
	if sc.Clock.Floor != nil {
		return *sc.Clock.Floor
	}
	low, found := 0, false
	for _, p := range sc.Patrols {
		for _, st := range p.Steps {
			tick, ok := st.lowest()
			if !ok {
				continue
			}
			if !found || tick < low {
				low, found = tick, true
			}
		}
	}
	return low
}
