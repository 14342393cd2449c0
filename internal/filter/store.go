package filter

import "sync"

// Store owns the committed filter spec shared by the news and payout
// views. Updates replace the whole spec atomically; partial edits are
// merged into a Draft by the caller before committing. Subscribers are
// notified synchronously, so no view can read a stale spec after
// another view's commit returns.
type Store struct {
	mu   sync.RWMutex
	spec Spec
	subs []func(Spec)
}

func NewStore() *Store {
	return &Store{spec: DefaultSpec()}
}

// Current returns the committed spec.
func (st *Store) Current() Spec {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.spec
}

// Update atomically replaces the committed spec and notifies
// subscribers before returning.
func (st *Store) Update(spec Spec) {
	st.mu.Lock()
	st.spec = spec
	subs := st.subs
	st.mu.Unlock()

	for _, fn := range subs {
		fn(spec)
	}
}

// Reset restores the default spec.
func (st *Store) Reset() {
	st.Update(DefaultSpec())
}

// Subscribe registers fn to run synchronously on every commit.
func (st *Store) Subscribe(fn func(Spec)) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.subs = append(st.subs, fn)
}

// Draft is a staged copy of the spec, edited locally by a filter
// editor. Edits never touch the committed store until Commit.
type Draft struct {
	Spec Spec
}

// NewDraft stages a copy of the given spec.
func NewDraft(spec Spec) *Draft {
	return &Draft{Spec: spec}
}

// Commit validates the staged spec and, if valid, replaces the
// committed spec in one step. On error the store is left untouched.
func (d *Draft) Commit(st *Store) error {
	if err := d.Spec.Validate(); err != nil {
		return err
	}
	st.Update(d.Spec)
	return nil
}
