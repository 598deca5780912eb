package toggle

import (
	"sync"

	"github.com/ethereum/go-ethereum/event"
)

// Source is a state provider that announces changes.
type Source interface {
	SubscribeChanges(ch chan<- struct{}) event.Subscription
}

// Watcher keeps a decision current by re-resolving whenever a source
// changes. All evaluations run on one goroutine, in order.
type Watcher struct {
	resolver *Resolver
	scope    event.SubscriptionScope
	changes  chan struct{}
	quit     chan struct{}
	done     chan struct{}

	mu        sync.RWMutex
	current   Decision
	evals     uint64
	listeners map[int]func(Decision)
	nextID    int

	closeOnce sync.Once
}

// NewWatcher subscribes to every source, resolves once and starts the
// re-evaluation loop. Call Close to unsubscribe.
func NewWatcher(r *Resolver, sources ...Source) *Watcher {
	w := &Watcher{
		resolver:  r,
		changes:   make(chan struct{}),
		quit:      make(chan struct{}),
		done:      make(chan struct{}),
		listeners: make(map[int]func(Decision)),
	}
	// Subscribe before the first read. A change that lands in between is
	// held by its sender until the loop starts, then re-evaluated.
	for _, s := range sources {
		w.scope.Track(s.SubscribeChanges(w.changes))
	}
	w.current = r.Resolve()
	w.evals = 1
	go w.loop()
	return w
}

// Current returns the latest decision.
func (w *Watcher) Current() Decision {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.current
}

// Evaluations returns how many times the resolver has run.
func (w *Watcher) Evaluations() uint64 {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.evals
}

// Subscriptions returns the number of live source subscriptions.
func (w *Watcher) Subscriptions() int {
	return w.scope.Count()
}

// OnChange registers fn to run after every re-evaluation. fn runs on the
// watcher goroutine: it must not write to a watched source, and it must not
// call Close, which waits for that goroutine to exit. Hand either off to
// another goroutine. The returned func removes the listener.
func (w *Watcher) OnChange(fn func(Decision)) (remove func()) {
	w.mu.Lock()
	id := w.nextID
	w.nextID++
	w.listeners[id] = fn
	w.mu.Unlock()

	return func() {
		w.mu.Lock()
		delete(w.listeners, id)
		w.mu.Unlock()
	}
}

// Close unsubscribes from every source and waits for the loop to stop.
// Calling it from an OnChange listener deadlocks.
func (w *Watcher) Close() {
	w.closeOnce.Do(func() {
		w.scope.Close()
		close(w.quit)
		<-w.done
	})
}

func (w *Watcher) loop() {
	defer close(w.done)
	for {
		select {
		case <-w.changes:
			w.refresh()
		case <-w.quit:
			return
		}
	}
}

func (w *Watcher) refresh() {
	d := w.resolver.Resolve()

	w.mu.Lock()
	w.current = d
	w.evals++
	fns := make([]func(Decision), 0, len(w.listeners))
	for _, fn := range w.listeners {
		fns = append(fns, fn)
	}
	w.mu.Unlock()

	for _, fn := range fns {
		fn(d)
	}
}
