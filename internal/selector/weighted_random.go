package selector

import (
	"math/rand/v2"
	"sync"
)

type weightedRandom struct {
	mutex sync.Mutex
	rng   *rand.Rand
}

// NewWeightedRandom draws from src, or from the global generator when src is nil.
func NewWeightedRandom(src rand.Source) Selector {
	w := &weightedRandom{}
	if src != nil {
		w.rng = rand.New(src)
	}
	return w
}

func (w *weightedRandom) Select(endpoints []Endpoint) (Endpoint, error) {
	total, err := TotalWeight(endpoints)
	if err != nil {
		return Endpoint{}, err
	}

	return Pick(endpoints, w.draw()*total)
}

func (w *weightedRandom) draw() float64 {
	if w.rng == nil {
		return rand.Float64()
	}

	w.mutex.Lock()
	defer w.mutex.Unlock()
	return w.rng.Float64()
}
