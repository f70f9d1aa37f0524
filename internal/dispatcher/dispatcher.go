package dispatcher

import (
	"fmt"

	"github.com/selkie-editor/selkie/internal/engine/motion"
	"github.com/selkie-editor/selkie/internal/engine/selection"
)

// Input is one decoded key event: the mode it arrived in, the key
// sequence, an optional count prefix, and the pending target character
// for the find family.
type Input struct {
	Mode    string
	Keys    string
	Count   int
	Char    rune
	HasChar bool
}

// Dispatcher applies bound actions to selection sets.
type Dispatcher struct {
	registry *Registry
}

// New creates a dispatcher over the given registry.
func New(registry *Registry) *Dispatcher {
	return &Dispatcher{registry: registry}
}

// Registry returns the underlying registry.
func (d *Dispatcher) Registry() *Registry {
	return d.registry
}

// Dispatch resolves the key sequence and applies the bound action to
// every selection in the set. A find-family action whose character
// does not occur leaves the set untouched.
func (d *Dispatcher) Dispatch(c motion.Context, sels *selection.Set, in Input) error {
	b, ok := d.registry.Lookup(in.Mode, in.Keys)
	if !ok {
		return fmt.Errorf("%q in mode %q: %w", in.Keys, in.Mode, ErrUnboundKeys)
	}
	return d.Run(c, sels, b.Action, b.Extend, in)
}

// Run applies a named action directly, bypassing key lookup. Scripted
// callers use this.
func (d *Dispatcher) Run(c motion.Context, sels *selection.Set, action string, extend bool, in Input) error {
	spec, ok := d.registry.Action(action)
	if !ok {
		return fmt.Errorf("%q: %w", action, ErrUnknownAction)
	}
	if spec.NeedsChar && !in.HasChar {
		return fmt.Errorf("%q: %w", action, ErrPendingChar)
	}

	// The extend form of a region action is its paired point action
	// with the anchor held.
	if spec.Kind == KindRegion && extend && spec.ExtendWith != "" {
		paired, ok := d.registry.Action(spec.ExtendWith)
		if !ok {
			return fmt.Errorf("%q extend form %q: %w", action, spec.ExtendWith, ErrUnknownAction)
		}
		spec = paired
	}

	count := in.Count
	if count < 1 {
		count = 1
	}

	switch spec.Kind {
	case KindPoint:
		d.applyPoint(c, sels, spec, extend, count, in.Char)
	case KindRegion:
		d.applyRegion(c, sels, spec, count, in.Char)
	}
	return nil
}

func (d *Dispatcher) applyPoint(c motion.Context, sels *selection.Set, spec Spec, extend bool, count int, ch rune) {
	sels.Map(func(sel selection.Selection) selection.Selection {
		if spec.NeedsChar {
			p, ok := spec.pointChar(c, sel.Cursor, ch, count)
			if !ok {
				return sel
			}
			return sel.ApplyPoint(p, extend)
		}
		p := sel.Cursor
		for i := 0; i < count; i++ {
			p = spec.point(c, p)
		}
		return sel.ApplyPoint(p, extend)
	})
}

func (d *Dispatcher) applyRegion(c motion.Context, sels *selection.Set, spec Spec, count int, ch rune) {
	sels.Map(func(sel selection.Selection) selection.Selection {
		if spec.NeedsChar {
			r, ok := spec.regionChar(c, sel.Cursor, ch, count)
			if !ok {
				return sel
			}
			return sel.ApplyRegion(r)
		}
		r := spec.region(c, sel.Cursor)
		// Repetition keeps the first anchor and pushes the cursor on.
		// Forward motions land one short of the next target, so a
		// stalled re-run retries from one position further.
		for i := 1; i < count; i++ {
			next := spec.region(c, r.Stop)
			if next.Stop == r.Stop {
				next = spec.region(c, r.Stop.RightThroughLineBreaks(c.Source, true))
			}
			r.Stop = next.Stop
		}
		return sel.ApplyRegion(r)
	})
}
