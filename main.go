package main

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/example/linguabot/internal/ai"
	"github.com/example/linguabot/internal/appstate"
	"github.com/example/linguabot/internal/bot"
	"github.com/example/linguabot/internal/cache"
	"github.com/example/linguabot/internal/challenge"
	"github.com/example/linguabot/internal/database"
	"github.com/example/linguabot/internal/finance"
	"github.com/example/linguabot/internal/logger"
	"github.com/example/linguabot/internal/metrics"
	"github.com/example/linguabot/internal/progress"
	"github.com/example/linguabot/internal/refdata"
	"github.com/example/linguabot/internal/scheduler"
)

func main() {
	// .env is optional, environment variables win
	godotenv.Load()

	logger.Init()
	log := logger.L()
	defer log.Sync()

	metrics.Init()
	if addr := os.Getenv("METRICS_ADDR"); addr != "" {
		go func() {
			if err := metrics.Serve(addr); err != nil {
				log.Error("metrics server stopped", zap.Error(err))
			}
		}()
	}

	if err := database.Connect(); err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer database.Close()

	if err := database.EnsureSeedData(log); err != nil {
		log.Fatal("failed to seed reference data", zap.Error(err))
	}

	// DEMO_USER_ID pre-populates one sample progress record for demos.
	if v := os.Getenv("DEMO_USER_ID"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			log.Warn("invalid DEMO_USER_ID", zap.String("value", v))
		} else if err := database.SeedSampleProgress(id); err != nil {
			log.Warn("failed to seed sample progress", zap.Error(err))
		}
	}

	catalog := loadCatalog(log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calcCache *cache.Cache
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		c, err := cache.New(ctx, redisURL)
		if err != nil {
			log.Warn("redis unavailable, calculations will not be cached", zap.Error(err))
		} else {
			calcCache = c
			defer calcCache.Close()
		}
	}

	calculator := finance.NewCalculator(catalog, calcCache, log)
	tracker := progress.NewTracker(
		database.NewUserProgressRepository(),
		database.NewAchievementRepository(),
		nil,
		log,
	)

	bank := buildQuestionBank(catalog, log)
	engine := challenge.NewEngine(bank, log)
	state := appstate.NewHolder()

	sched := scheduler.New(engine, catalog, state, nil, log)

	b, err := bot.New(calculator, tracker, engine, catalog, state, log)
	if err != nil {
		log.Fatal("failed to create bot", zap.Error(err))
	}

	// The bot implements the reminder notifier, so rebuild the scheduler
	// around it before anything starts.
	sched = scheduler.New(engine, catalog, state, b, log)

	// Populate today's challenge set before the first midnight rotation.
	sched.RotateDailyChallenges()

	if os.Getenv("ENABLE_SCHEDULER") != "false" {
		sched.Start()
		defer sched.Stop()
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		log.Info("received signal, shutting down", zap.String("signal", sig.String()))
		cancel()
		b.Stop()
	}()

	log.Info("bot starting")
	if err := b.Start(); err != nil {
		log.Fatal("bot stopped with error", zap.Error(err))
	}
	log.Info("bot stopped")
}

// loadCatalog builds the reference catalog from the database, falling back to
// the built-in defaults when the languages table cannot be read.
func loadCatalog(log *zap.Logger) *refdata.Catalog {
	languages, err := database.NewLanguageRepository().GetAll()
	if err != nil || len(languages) == 0 {
		log.Warn("falling back to built-in language catalog", zap.Error(err))
		return refdata.Default()
	}
	return refdata.NewCatalog(languages, refdata.DefaultIndustries(), refdata.DefaultLocations())
}

// buildQuestionBank wires the generated bank over the static one when an
// OpenAI key is configured.
func buildQuestionBank(catalog *refdata.Catalog, log *zap.Logger) challenge.QuestionBank {
	static := challenge.NewStaticBank()

	if os.Getenv("OPENAI_API_KEY") == "" {
		return static
	}

	gen, err := ai.New()
	if err != nil {
		log.Warn("question generation disabled", zap.Error(err))
		return static
	}

	names := make(map[string]string)
	for _, lang := range catalog.Languages() {
		names[lang.Code] = lang.Name
	}
	return challenge.NewGeneratedBank(gen, names, static, log)
}
