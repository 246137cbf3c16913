package batch

import (
	"math/rand"
	"sort"
	"time"

	"github.com/katalvlaran/batchaug/imagery"
)

// Batch is an ordered collection of size items, each owning the declared
// named components. Components form an explicit name→Volume mapping fixed at
// construction: assigning or reading an undeclared name fails with
// ErrUnknownComponent instead of silently growing the set.
//
// A Batch is not safe for concurrent mutation; each action owns its private
// result list and writes a component at most once, after all per-item
// results are collected and validated.
type Batch struct {
	size       int
	components map[string]*imagery.Volume
}

// New returns a Batch of the given size with the declared component set.
// With no names, the single DefaultComponent ("images") is declared.
//
// Errors: ErrBadSize for size < 1, ErrDuplicateComponent for repeated names.
func New(size int, components ...string) (*Batch, error) {
	if size < 1 {
		return nil, ErrBadSize
	}
	if len(components) == 0 {
		components = []string{DefaultComponent}
	}

	declared := make(map[string]*imagery.Volume, len(components))
	for _, name := range components {
		if _, dup := declared[name]; dup {
			return nil, ErrDuplicateComponent
		}
		declared[name] = nil
	}

	return &Batch{size: size, components: declared}, nil
}

// Len returns the number of items in the batch.
func (b *Batch) Len() int { return b.size }

// Components returns the declared component names, sorted.
func (b *Batch) Components() []string {
	names := make([]string, 0, len(b.components))
	for name := range b.components {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// SetComponent installs a volume as the named component, replacing any
// previous value.
//
// Errors: ErrUnknownComponent for an undeclared name, ErrNilVolume for nil,
// ErrSizeMismatch when the volume's item count differs from the batch size.
func (b *Batch) SetComponent(name string, v *imagery.Volume) error {
	if _, ok := b.components[name]; !ok {
		return ErrUnknownComponent
	}
	if v == nil {
		return ErrNilVolume
	}
	if v.Len() != b.size {
		return ErrSizeMismatch
	}
	b.components[name] = v

	return nil
}

// Component returns the whole array of the named component.
//
// Errors: ErrUnknownComponent for an undeclared name, ErrEmptyComponent when
// nothing has been assigned yet.
func (b *Batch) Component(name string) (*imagery.Volume, error) {
	v, ok := b.components[name]
	if !ok {
		return nil, ErrUnknownComponent
	}
	if v == nil {
		return nil, ErrEmptyComponent
	}

	return v, nil
}

// Get returns a copy of item i of the named component.
//
// Errors: those of Component, plus ErrBadIndex for i outside [0, Len).
func (b *Batch) Get(i int, name string) (*imagery.Image, error) {
	v, err := b.Component(name)
	if err != nil {
		return nil, err
	}
	if i < 0 || i >= b.size {
		return nil, ErrBadIndex
	}

	return v.Item(i), nil
}

// componentOr maps the empty option value to DefaultComponent.
func componentOr(name string) string {
	if name == "" {
		return DefaultComponent
	}

	return name
}

// rngOr supplies a time-seeded source when the options carry none.
// Inject a seeded *rand.Rand for reproducible batches.
func rngOr(rng *rand.Rand) *rand.Rand {
	if rng != nil {
		return rng
	}

	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
