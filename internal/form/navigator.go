package form

import "sync"

// Navigator is the step cursor of the application wizard. Moving forward is
// gated by ValidateStep; moving back never is.
type Navigator struct {
	mu    sync.Mutex
	store *Store
	step  int
}

func NewNavigator(store *Store) *Navigator {
	return &Navigator{store: store, step: FirstStep}
}

func (n *Navigator) Step() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.step
}

// Next validates the current step, replaces the store's error set with the
// result, and advances only when it is empty. It returns the resulting step.
func (n *Navigator) Next() (int, ValidationErrors) {
	n.mu.Lock()
	defer n.mu.Unlock()

	errs := ValidateStep(n.step, n.store.Draft())
	n.store.SetErrors(errs)
	if !errs.Empty() {
		return n.step, errs
	}
	if n.step < LastStep {
		n.step++
	}
	return n.step, errs
}

func (n *Navigator) Prev() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.step > FirstStep {
		n.step--
	}
	return n.step
}
