package runtime

import (
	"iter"
	"sync"
	"sync/atomic"

	"webconsole/contract"
	"webconsole/domain"
)

// Registry is the canonical set of live connections of a console,
// keyed by connection ID.
//
// It is safe for concurrent use without external locking. Enumeration is
// weakly consistent: a connection added or removed while All is being
// ranged over may or may not be seen, but no entry is ever seen twice.
type Registry struct {
	sessions sync.Map // connection ID -> domain.Connection
	count    atomic.Int64
}

var _ contract.IConnectionRegistry = (*Registry)(nil)

func NewRegistry() *Registry {
	return &Registry{}
}

// Add registers conn. It returns false if a connection with the same ID
// is already present, in which case the registry is left untouched.
func (r *Registry) Add(conn domain.Connection) bool {
	if _, loaded := r.sessions.LoadOrStore(conn.ID(), conn); loaded {
		return false
	}
	r.count.Add(1)
	return true
}

// Remove unregisters conn and reports whether it was present.
func (r *Registry) Remove(conn domain.Connection) bool {
	if _, loaded := r.sessions.LoadAndDelete(conn.ID()); !loaded {
		return false
	}
	r.count.Add(-1)
	return true
}

func (r *Registry) Get(id string) (domain.Connection, bool) {
	v, ok := r.sessions.Load(id)
	if !ok {
		return nil, false
	}
	return v.(domain.Connection), true
}

func (r *Registry) Count() int {
	return int(r.count.Load())
}

func (r *Registry) All() iter.Seq[domain.Connection] {
	return func(yield func(domain.Connection) bool) {
		r.sessions.Range(func(_, v any) bool {
			return yield(v.(domain.Connection))
		})
	}
}
