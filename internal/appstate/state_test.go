package appstate_test

import (
	"testing"
	"time"

	"github.com/example/linguabot/internal/appstate"
	"github.com/example/linguabot/pkg/models"
)

func TestApplyAndSnapshot(t *testing.T) {
	h := appstate.NewHolder()

	h.Apply(appstate.SetChallenges([]models.Challenge{{ID: "c1"}, {ID: "c2"}}))
	h.Apply(appstate.AddAchievements(models.Achievement{ID: "a1", Title: "Language Explorer"}))
	h.Apply(appstate.AddAchievements(models.Achievement{ID: "a2", Title: "Challenge Master"}))

	s := h.Snapshot()
	if len(s.Challenges) != 2 {
		t.Errorf("challenges = %d, want 2", len(s.Challenges))
	}
	if len(s.Achievements) != 2 {
		t.Errorf("achievements = %d, want 2", len(s.Achievements))
	}
}

// Mutating a snapshot must not leak back into the holder.
func TestSnapshot_IsACopy(t *testing.T) {
	h := appstate.NewHolder()
	h.Apply(appstate.SetChallenges([]models.Challenge{{ID: "c1", Title: "original"}}))

	s := h.Snapshot()
	s.Challenges[0].Title = "mutated"

	if got := h.Snapshot().Challenges[0].Title; got != "original" {
		t.Errorf("holder state mutated through snapshot: %q", got)
	}
}

func TestSubscribe_ReceivesChanges(t *testing.T) {
	h := appstate.NewHolder()
	ch, cancel := h.Subscribe(1)
	defer cancel()

	h.Apply(appstate.SetChallenges([]models.Challenge{{ID: "c1"}}))

	select {
	case s := <-ch:
		if len(s.Challenges) != 1 || s.Challenges[0].ID != "c1" {
			t.Errorf("unexpected notification: %+v", s.Challenges)
		}
	case <-time.After(time.Second):
		t.Fatal("no notification received")
	}
}

// A subscriber with a full buffer must not block writers.
func TestApply_SlowSubscriberDoesNotBlock(t *testing.T) {
	h := appstate.NewHolder()
	_, cancel := h.Subscribe(0)
	defer cancel()

	done := make(chan struct{})
	go func() {
		h.Apply(appstate.SetChallenges(nil))
		h.Apply(appstate.SetChallenges(nil))
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Apply blocked on a slow subscriber")
	}
}

func TestSubscribe_CancelStopsNotifications(t *testing.T) {
	h := appstate.NewHolder()
	ch, cancel := h.Subscribe(1)
	cancel()

	// The channel is closed on cancel.
	if _, ok := <-ch; ok {
		t.Error("channel still open after cancel")
	}
}
