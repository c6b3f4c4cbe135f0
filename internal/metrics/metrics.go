// Package metrics registers the application's prometheus collectors and
// optionally serves them over HTTP.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// StudySessions counts recorded study sessions per language.
	StudySessions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "linguabot_study_sessions_total",
			Help: "Total study sessions recorded",
		},
		[]string{"language"},
	)

	// ChallengesCompleted counts completed challenges per difficulty.
	ChallengesCompleted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "linguabot_challenges_completed_total",
			Help: "Total challenges completed",
		},
		[]string{"difficulty"},
	)

	// Calculations counts financial impact calculations.
	Calculations = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "linguabot_financial_calculations_total",
			Help: "Total financial impact calculations performed",
		},
	)

	// AchievementsUnlocked counts awarded achievements per category.
	AchievementsUnlocked = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "linguabot_achievements_unlocked_total",
			Help: "Total achievements unlocked",
		},
		[]string{"category"},
	)
)

// Init registers all collectors with the default registry.
func Init() {
	prometheus.MustRegister(StudySessions, ChallengesCompleted, Calculations, AchievementsUnlocked)
}

// Serve exposes /metrics on the given address. Blocks; run in a goroutine.
func Serve(addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return http.ListenAndServe(addr, mux)
}
