package arbor

import (
	"sync"

	"github.com/jward/arbor/internal/model"
)

// Engine answers reference-resolution, grouping, and hierarchy queries over
// one Snapshot. The snapshot must be fully populated (including
// BuildRelations) before the Engine is used; from then on every query is a
// pure read, so an Engine may be shared between concurrent readers.
type Engine struct {
	snap *model.Snapshot
	mode GroupMode
	main string

	groupsOnce sync.Once
	grouping   *Grouping

	treesOnce sync.Once
	forests   *Forests
}

// Option configures an Engine.
type Option func(*Engine)

// WithMode forces the grouping mode instead of the default automatic
// selection.
func WithMode(mode GroupMode) Option {
	return func(e *Engine) {
		e.mode = mode
	}
}

// WithMain sets the main namespace/package prefix. Groups whose names carry
// the prefix sort before all others.
func WithMain(prefix string) Option {
	return func(e *Engine) {
		e.main = prefix
	}
}

// New creates an Engine over the given snapshot.
func New(snap *model.Snapshot, opts ...Option) *Engine {
	e := &Engine{
		snap: snap,
		mode: ModeAuto,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Snapshot returns the underlying element snapshot.
func (e *Engine) Snapshot() *model.Snapshot {
	return e.snap
}

// Groups returns the completed, ordered group structure. It is computed on
// first use and cached for the Engine's lifetime.
func (e *Engine) Groups() *Grouping {
	e.groupsOnce.Do(func() {
		e.grouping = e.buildGrouping()
	})
	return e.grouping
}

// Trees returns the four inheritance forests. They are computed on first
// use and cached for the Engine's lifetime.
func (e *Engine) Trees() *Forests {
	e.treesOnce.Do(func() {
		e.forests = e.buildForests()
	})
	return e.forests
}
