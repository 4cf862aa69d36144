package recommend

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/kannangrocery/storefront/internal/model"
)

// DefaultDebounce is the quiescence delay before a refresh fires
const DefaultDebounce = 1000 * time.Millisecond

// Refresher debounces recommendation requests. Every trigger restarts the
// delay; when the delay elapses the current cart and view history are sent to
// the Recommender. Each trigger bumps a generation counter so a response that
// arrives after a newer trigger is discarded instead of overwriting fresher
// results.
type Refresher struct {
	mu         sync.Mutex
	client     Recommender
	delay      time.Duration
	timeout    time.Duration
	timer      *time.Timer
	generation uint64

	onResult func([]model.Recommendation)
}

// NewRefresher creates a refresher over the given suggestion source
func NewRefresher(client Recommender, delay, timeout time.Duration) *Refresher {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	if timeout <= 0 {
		timeout = DefaultHTTPTimeout
	}
	return &Refresher{
		client:  client,
		delay:   delay,
		timeout: timeout,
	}
}

// SetResultCallback sets the callback that receives refreshed suggestions.
// A nil or empty slice means "no suggestions available"; the callback may be
// invoked from a background goroutine.
func (r *Refresher) SetResultCallback(callback func([]model.Recommendation)) {
	r.mu.Lock()
	r.onResult = callback
	r.mu.Unlock()
}

// Refresh notes a trigger: cart, view history, or language changed. When both
// cart and view history are empty any pending refresh is cancelled and the
// displayed suggestions are cleared.
func (r *Refresher) Refresh(cart []model.CartItem, viewed []model.Product, lang model.Language) {
	r.mu.Lock()
	r.generation++
	generation := r.generation
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}

	if len(cart) == 0 && len(viewed) == 0 {
		callback := r.onResult
		r.mu.Unlock()
		if callback != nil {
			callback(nil)
		}
		return
	}

	r.timer = time.AfterFunc(r.delay, func() {
		r.fetch(generation, cart, viewed, lang)
	})
	r.mu.Unlock()
}

// Stop cancels any pending refresh and invalidates in-flight responses
func (r *Refresher) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.generation++
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
}

// fetch runs the recommendation call for one generation and delivers the
// result only if no newer trigger has superseded it.
func (r *Refresher) fetch(generation uint64, cart []model.CartItem, viewed []model.Product, lang model.Language) {
	if !r.isCurrent(generation) {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	recommendations, err := r.client.Recommend(ctx, cart, viewed, lang)
	if err != nil {
		// Failures degrade to "no suggestions"; the user never sees an error.
		log.Printf("Recommendation fetch failed: %v", err)
		recommendations = nil
	}

	r.mu.Lock()
	if generation != r.generation {
		r.mu.Unlock()
		log.Printf("Discarding stale recommendation response (generation %d, current %d)",
			generation, r.generation)
		return
	}
	callback := r.onResult
	r.mu.Unlock()

	if callback != nil {
		callback(recommendations)
	}
}

func (r *Refresher) isCurrent(generation uint64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return generation == r.generation
}
