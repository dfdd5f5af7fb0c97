package status

import "sync/atomic"

// Registry is the central session statistics facade
// Producers cache pointers during init and write directly to the atomics; the renderer reads them
type Registry struct {
	Ints *MetricMap[atomic.Int64]
}

// Session statistic keys
const (
	KeyGamesStarted = "game.started"
	KeyGamesWon     = "game.won"
	KeyGamesLost    = "game.lost"
	KeyBestPhase    = "game.best_phase"
)

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints: NewMetricMap[atomic.Int64](),
	}
}

// StoreMax raises the metric at key to v if v is larger
func (r *Registry) StoreMax(key string, v int64) {
	m := r.Ints.Get(key)
	for {
		cur := m.Load()
		if v <= cur || m.CompareAndSwap(cur, v) {
			return
		}
	}
}

// Values copies every statistic, for end-of-session logging
func (r *Registry) Values() map[string]int64 {
	out := make(map[string]int64, r.Ints.Count())
	r.Ints.Range(func(key string, v *atomic.Int64) {
		out[key] = v.Load()
	})
	return out
}

// TotalCount returns total metrics registered
func (r *Registry) TotalCount() int {
	return r.Ints.Count()
}
