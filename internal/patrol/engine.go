package patrol

import (
	"errors"
	"fmt"
)

// Engine applies scripts to walkers as the clock counts down.
type Engine struct {
	scripts map[string]*Script
	order   []string
}

// Advance describes what one tick did.
type Advance struct {
	Clock   int  // clock value after the tick
	Wrapped bool // the clock passed its floor and restarted
	Applied int  // number of steps applied across all walkers
}

// NewEngine registers scripts by name. Duplicate names are an error.
func NewEngine(scripts ...*Script) (*Engine, error) {
	e := &Engine{scripts: make(map[string]*Script, len(scripts))}
	for _, s := range scripts {
		if s == nil {
			continue
		}
		if _, dup := e.scripts[s.Name]; dup {
			return nil, fmt.Errorf("duplicate patrol script %q", s.Name)
		}
		e.scripts[s.Name] = s
		e.order = append(e.order, s.Name)
	}
	return e, nil
}

// Validate checks that every step fires inside the clock's range and that
// every walker follows a known script.
func (e *Engine) Validate(c *Clock, walkers []*Walker) error {
	var errs []error
	for _, name := range e.order {
		for i, st := range e.scripts[name].Steps {
			if st.Tick < c.Floor || st.Tick >= c.Start {
				errs = append(errs, fmt.Errorf("script %q step %d: tick %d outside [%d,%d)", name, i, st.Tick, c.Floor, c.Start))
			}
		}
	}
	for i, w := range walkers {
		if _, ok := e.scripts[w.Script]; !ok {
			errs = append(errs, fmt.Errorf("walker %d: unknown script %q", i, w.Script))
		}
	}
	return errors.Join(errs...)
}

// Tick advances the clock by one and applies every step scheduled at the new
// value. On wrap the clock returns to Start and walkers return to their
// origins, so the patrol loops.
func (e *Engine) Tick(c *Clock, walkers []*Walker) Advance {
	if c.tick() {
		for _, w := range walkers {
			w.restart()
		}
		return Advance{Clock: c.Value(), Wrapped: true}
	}
	adv := Advance{Clock: c.Value()}
	for _, w := range walkers {
		s, ok := e.scripts[w.Script]
		if !ok {
			continue
		}
		for _, st := range s.At(c.Value()) {
			w.apply(st)
			adv.Applied++
		}
	}
	return adv
}
