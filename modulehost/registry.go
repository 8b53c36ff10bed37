// Package modulehost implements the plugin resolution mechanism: a named,
// priority-ordered registry of module implementations and a loader that
// probes candidates until one of them opens successfully.
package modulehost

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/facebookincubator/go-belt"
	"github.com/xaionaro-go/decdev/logger"
)

// Candidate is one registered module implementation.
type Candidate[M any] struct {
	Name     string
	Priority int
	Impl     M
}

// Registry holds the candidates of one module capability (e.g. "decoder
// device"). The zero value is not usable; call NewRegistry.
type Registry[M any] struct {
	locker     sync.Mutex
	capability string
	candidates []Candidate[M]
}

func NewRegistry[M any](capability string) *Registry[M] {
	return &Registry[M]{
		capability: capability,
	}
}

// Register adds a candidate. Higher priority candidates are probed first;
// ties are probed in registration order. Registering the same name twice
// panics: module names are a global namespace.
func (r *Registry[M]) Register(name string, priority int, impl M) {
	r.locker.Lock()
	defer r.locker.Unlock()
	for _, c := range r.candidates {
		if c.Name == name {
			panic(fmt.Sprintf("modulehost: %s module '%s' is registered twice", r.capability, name))
		}
	}
	r.candidates = append(r.candidates, Candidate[M]{
		Name:     name,
		Priority: priority,
		Impl:     impl,
	})
}

// candidatesFor returns the probe list: only the preferred candidate when
// a preference is set, otherwise every candidate sorted by priority.
func (r *Registry[M]) candidatesFor(preferred string) []Candidate[M] {
	r.locker.Lock()
	defer r.locker.Unlock()

	if preferred != "" {
		for _, c := range r.candidates {
			if c.Name == preferred {
				return []Candidate[M]{c}
			}
		}
		return nil
	}

	result := make([]Candidate[M], len(r.candidates))
	copy(result, r.candidates)
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Priority > result[j].Priority
	})
	return result
}

// Load probes the candidates in priority order (or only the preferred one,
// when preferred is non-empty), invoking probe once per candidate until it
// returns nil. A non-nil result from probe means "try the next candidate".
// Load returns the winning candidate, or ErrNotFound when every candidate
// was probed without success.
func (r *Registry[M]) Load(
	ctx context.Context,
	preferred string,
	probe func(ctx context.Context, c Candidate[M]) error,
) (_ret *Candidate[M], _err error) {
	logger.Tracef(ctx, "Load(ctx, '%s')", preferred)
	defer func() { logger.Tracef(ctx, "/Load(ctx, '%s'): %v %v", preferred, _ret, _err) }()

	for _, c := range r.candidatesFor(preferred) {
		ctx := belt.WithField(ctx, "module", c.Name)
		err := probe(ctx, c)
		if err == nil {
			logger.Debugf(ctx, "loaded %s module '%s'", r.capability, c.Name)
			return &c, nil
		}
		logger.Debugf(ctx, "%s module '%s' refused to open: %v", r.capability, c.Name, err)
	}

	return nil, ErrNotFound{Capability: r.capability, Preferred: preferred}
}

// ErrNotFound is returned by Load when no candidate opened successfully.
type ErrNotFound struct {
	Capability string
	Preferred  string
}

func (e ErrNotFound) Error() string {
	if e.Preferred != "" {
		return fmt.Sprintf("no %s module named '%s' could be loaded", e.Capability, e.Preferred)
	}
	return fmt.Sprintf("no %s module could be loaded", e.Capability)
}
