package queue

import (
	"sync"

	"github.com/ytget/amdl-client/internal/model"
)

// ViewState keeps which cards the user expanded. It outlives individual polls
// so a re-render with the same task ids keeps the cards as the user left them.
type ViewState struct {
	mu       sync.Mutex
	active   map[model.TaskID]bool
	finished map[model.TaskID]bool
}

// NewViewState creates an empty expand state
func NewViewState() *ViewState {
	return &ViewState{
		active:   make(map[model.TaskID]bool),
		finished: make(map[model.TaskID]bool),
	}
}

// ToggleActive flips the track list of an active batch card and returns the new state
func (vs *ViewState) ToggleActive(id model.TaskID) bool {
	vs.mu.Lock()
	defer vs.mu.Unlock()
	return toggle(vs.active, id)
}

// ActiveExpanded reports whether an active batch card shows its track list
func (vs *ViewState) ActiveExpanded(id model.TaskID) bool {
	vs.mu.Lock()
	defer vs.mu.Unlock()
	return vs.active[id]
}

// ToggleFinished flips the track list of a completed album card
func (vs *ViewState) ToggleFinished(id model.TaskID) bool {
	vs.mu.Lock()
	defer vs.mu.Unlock()
	return toggle(vs.finished, id)
}

// FinishedExpanded reports whether a completed album card is open
func (vs *ViewState) FinishedExpanded(id model.TaskID) bool {
	vs.mu.Lock()
	defer vs.mu.Unlock()
	return vs.finished[id]
}

func toggle(set map[model.TaskID]bool, id model.TaskID) bool {
	if set[id] {
		delete(set, id)
		return false
	}
	set[id] = true
	return true
}
