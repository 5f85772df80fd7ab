package selector

import (
	"sync"
)

// weightedRoundRobin implements smooth weighted round-robin.
// Each endpoint accumulates its weight per selection, the highest current value
// is chosen, then reduced by the sum of all weights.
type weightedRoundRobin struct {
	mutex   sync.Mutex
	current map[string]float64
}

func NewWeightedRoundRobin() Selector {
	return &weightedRoundRobin{
		current: make(map[string]float64),
	}
}

func (w *weightedRoundRobin) Select(endpoints []Endpoint) (Endpoint, error) {
	total, err := TotalWeight(endpoints)
	if err != nil {
		return Endpoint{}, err
	}

	w.mutex.Lock()
	defer w.mutex.Unlock()

	w.cleanup(endpoints)

	chosen := -1
	for i, ep := range endpoints {
		w.current[ep.URL] += ep.Weight

		if chosen < 0 || w.current[ep.URL] > w.current[endpoints[chosen].URL] {
			chosen = i
		}
	}

	w.current[endpoints[chosen].URL] -= total
	return endpoints[chosen], nil
}

// cleanup forgets endpoints that are no longer in the list.
func (w *weightedRoundRobin) cleanup(endpoints []Endpoint) {
	alive := make(map[string]struct{}, len(endpoints))

	for _, ep := range endpoints {
		alive[ep.URL] = struct{}{}
	}

	for url := range w.current {
		if _, ok := alive[url]; !ok {
			delete(w.current, url)
		}
	}
}
