// Package appstate holds the live application state behind an observer
// abstraction: readers take snapshots, writers apply events, and subscribers
// are notified after every change. It replaces the view-model binding layer
// of a UI framework without being tied to one.
package appstate

import (
	"sync"

	"github.com/example/linguabot/pkg/models"
)

// State is the observable application state. Snapshots are value copies;
// mutating one never affects the holder.
type State struct {
	Challenges   []models.Challenge
	Progress     []models.UserProgress
	Achievements []models.Achievement
}

// Event mutates the state inside the holder's lock.
type Event func(*State)

// Holder owns the state and fans changes out to subscribers.
type Holder struct {
	mu    sync.RWMutex
	state State

	subMu sync.Mutex
	subs  map[int]chan State
	nextID int
}

// NewHolder creates an empty state holder.
func NewHolder() *Holder {
	return &Holder{subs: make(map[int]chan State)}
}

// Snapshot returns a copy of the current state.
func (h *Holder) Snapshot() State {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return copyState(h.state)
}

// Apply runs the event against the state and notifies subscribers. Slow
// subscribers drop notifications instead of blocking writers.
func (h *Holder) Apply(ev Event) {
	h.mu.Lock()
	ev(&h.state)
	snapshot := copyState(h.state)
	h.mu.Unlock()

	h.subMu.Lock()
	defer h.subMu.Unlock()
	for _, ch := range h.subs {
		select {
		case ch <- snapshot:
		default:
		}
	}
}

// Subscribe registers a listener. The returned cancel function must be called
// to release the channel.
func (h *Holder) Subscribe(buffer int) (<-chan State, func()) {
	h.subMu.Lock()
	defer h.subMu.Unlock()

	id := h.nextID
	h.nextID++
	ch := make(chan State, buffer)
	h.subs[id] = ch

	cancel := func() {
		h.subMu.Lock()
		defer h.subMu.Unlock()
		if c, ok := h.subs[id]; ok {
			delete(h.subs, id)
			close(c)
		}
	}
	return ch, cancel
}

// SetChallenges replaces the current challenge set.
func SetChallenges(challenges []models.Challenge) Event {
	return func(s *State) {
		s.Challenges = challenges
	}
}

// SetProgress replaces the progress list.
func SetProgress(progress []models.UserProgress) Event {
	return func(s *State) {
		s.Progress = progress
	}
}

// AddAchievements appends newly unlocked achievements.
func AddAchievements(achievements ...models.Achievement) Event {
	return func(s *State) {
		s.Achievements = append(s.Achievements, achievements...)
	}
}

func copyState(s State) State {
	out := State{
		Challenges:   make([]models.Challenge, len(s.Challenges)),
		Progress:     make([]models.UserProgress, len(s.Progress)),
		Achievements: make([]models.Achievement, len(s.Achievements)),
	}
	copy(out.Challenges, s.Challenges)
	copy(out.Progress, s.Progress)
	copy(out.Achievements, s.Achievements)
	return out
}
