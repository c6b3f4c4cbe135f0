package bot

import (
	"fmt"
	"os"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/example/linguabot/internal/appstate"
	"github.com/example/linguabot/internal/challenge"
	"github.com/example/linguabot/internal/database"
	"github.com/example/linguabot/internal/finance"
	"github.com/example/linguabot/internal/progress"
	"github.com/example/linguabot/internal/refdata"
	"github.com/example/linguabot/pkg/models"
)

// MenuButton represents a button in the menu
type MenuButton struct {
	Text         string
	CallbackData string
}

// createKeyboard creates a keyboard from menu buttons
func createKeyboard(buttons [][]MenuButton) tgbotapi.InlineKeyboardMarkup {
	var keyboard [][]tgbotapi.InlineKeyboardButton
	for _, row := range buttons {
		var keyboardRow []tgbotapi.InlineKeyboardButton
		for _, button := range row {
			keyboardRow = append(keyboardRow, tgbotapi.NewInlineKeyboardButtonData(button.Text, button.CallbackData))
		}
		keyboard = append(keyboard, keyboardRow)
	}
	return tgbotapi.NewInlineKeyboardMarkup(keyboard...)
}

// UserState represents the current state of a user in conversation with the bot
type UserState struct {
	State     string
	Timestamp time.Time
}

// quizSession is a user's in-flight quiz. Answers are collected one question
// at a time; a timed challenge is auto-submitted when the deadline passes.
type quizSession struct {
	Challenge  models.Challenge
	Answers    []int
	CurrentIdx int
	Deadline   time.Time // zero when the challenge is untimed
}

// calcSession collects calculator input across several messages.
type calcSession struct {
	Step    string
	Request models.FinancialCalculationRequest
}

// Bot represents the Telegram bot application
type Bot struct {
	api        *tgbotapi.BotAPI
	token      string
	config     *BotConfig
	calculator *finance.Calculator
	tracker    *progress.Tracker
	engine     *challenge.Engine
	catalog    *refdata.Catalog
	state      *appstate.Holder
	users      *database.UserRepository
	log        *zap.Logger

	mu                sync.Mutex
	userStates        map[int64]UserState
	quizSessions      map[int64]*quizSession
	calcSessions      map[int64]*calcSession
	pendingChallenges map[string]models.Challenge
}

// New creates a new bot instance
func New(calculator *finance.Calculator, tracker *progress.Tracker, engine *challenge.Engine, catalog *refdata.Catalog, state *appstate.Holder, log *zap.Logger) (*Bot, error) {
	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("TELEGRAM_BOT_TOKEN environment variable is not set")
	}

	if database.DB == nil {
		return nil, fmt.Errorf("database connection is not established")
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &Bot{
		token:        token,
		config:       DefaultConfig(),
		calculator:   calculator,
		tracker:      tracker,
		engine:       engine,
		catalog:      catalog,
		state:        state,
		users:        database.NewUserRepository(),
		log:          log,
		userStates:        make(map[int64]UserState),
		quizSessions:      make(map[int64]*quizSession),
		calcSessions:      make(map[int64]*calcSession),
		pendingChallenges: make(map[string]models.Challenge),
	}, nil
}

// Start initializes the Telegram connection and processes updates until the
// updates channel is closed.
func (b *Bot) Start() error {
	botAPI, err := tgbotapi.NewBotAPI(b.token)
	if err != nil {
		return fmt.Errorf("unable to create bot: %v", err)
	}

	b.api = botAPI
	b.log.Info("authorized on telegram", zap.String("account", botAPI.Self.UserName))

	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 60

	updates := b.api.GetUpdatesChan(updateConfig)

	for update := range updates {
		go b.handleUpdate(update)
	}

	return nil
}

// Stop gracefully stops the bot
func (b *Bot) Stop() {
	if b.api != nil {
		b.api.StopReceivingUpdates()
	}
	b.log.Info("bot stopped")
}

// SendStreakReminder implements the scheduler.Notifier interface
func (b *Bot) SendStreakReminder(userID int64, languageCode string, streak int) error {
	lang, ok := b.catalog.LanguageByCode(languageCode)
	name := languageCode
	if ok {
		name = lang.Name
	}

	text := fmt.Sprintf("🔥 Your %d-day %s streak ends today! A short session keeps it alive.", streak, name)
	msg := tgbotapi.NewMessage(userID, text)
	if _, err := b.api.Send(msg); err != nil {
		b.log.Error("failed to send streak reminder", zap.Int64("user_id", userID), zap.Error(err))
		return err
	}
	return nil
}

// handleUpdate handles incoming updates from Telegram
func (b *Bot) handleUpdate(update tgbotapi.Update) {
	if update.Message != nil {
		b.ensureUser(update.Message)

		if update.Message.IsCommand() {
			b.handleCommand(update.Message)
			return
		}

		b.handleText(update.Message)
		return
	}

	if update.CallbackQuery != nil {
		b.handleCallbackQuery(update.CallbackQuery)
	}
}

// ensureUser registers the sender on first contact
func (b *Bot) ensureUser(message *tgbotapi.Message) {
	if message.From == nil {
		return
	}
	if _, err := b.users.Ensure(message.From.ID, message.From.UserName, message.From.FirstName); err != nil {
		b.log.Error("failed to ensure user", zap.Int64("user_id", message.From.ID), zap.Error(err))
	}
}

// handleCommand dispatches bot commands
func (b *Bot) handleCommand(message *tgbotapi.Message) {
	switch message.Command() {
	case "start":
		b.handleStartCommand(message)
	case "help":
		b.handleHelpCommand(message)
	case "languages":
		b.handleLanguagesCommand(message)
	case "learn":
		b.handleLearnCommand(message)
	case "study":
		b.handleStudyCommand(message)
	case "quiz":
		b.handleQuizCommand(message)
	case "stats":
		b.handleStatsCommand(message)
	case "impact":
		b.handleImpactCommand(message)
	case "industries":
		b.handleIndustriesCommand(message)
	case "locations":
		b.handleLocationsCommand(message)
	case "city":
		b.handleCityCommand(message)
	case "reset":
		b.handleResetCommand(message)
	default:
		msg := tgbotapi.NewMessage(message.Chat.ID, "Unknown command. Use /help to see what I can do.")
		b.api.Send(msg)
	}
}

// handleText routes free-form text into the active conversation state
func (b *Bot) handleText(message *tgbotapi.Message) {
	userID := message.From.ID

	b.mu.Lock()
	state, exists := b.userStates[userID]
	if exists && time.Since(state.Timestamp) > b.config.StateTimeout {
		delete(b.userStates, userID)
		delete(b.calcSessions, userID)
		exists = false
	}
	b.mu.Unlock()

	if !exists {
		msg := tgbotapi.NewMessage(message.Chat.ID, "I don't understand. Use /help to see available commands.")
		b.api.Send(msg)
		return
	}

	switch state.State {
	case stateCalculator:
		b.handleCalculatorInput(message)
	case stateAwaitingCity:
		b.handleCityInput(message)
	default:
		msg := tgbotapi.NewMessage(message.Chat.ID, "I don't understand. Use /help to see available commands.")
		b.api.Send(msg)
	}
}

// setState records a conversation state for the user
func (b *Bot) setState(userID int64, state string) {
	b.mu.Lock()
	b.userStates[userID] = UserState{State: state, Timestamp: time.Now()}
	b.mu.Unlock()
}

// clearState drops the user's conversation state
func (b *Bot) clearState(userID int64) {
	b.mu.Lock()
	delete(b.userStates, userID)
	b.mu.Unlock()
}
