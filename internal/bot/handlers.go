package bot

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/example/linguabot/internal/challenge"
	"github.com/example/linguabot/internal/finance"
	"github.com/example/linguabot/internal/progress"
	"github.com/example/linguabot/pkg/models"
)

// Conversation states
const (
	stateCalculator   = "calculator"
	stateAwaitingCity = "awaiting_city"
)

// Calculator wizard steps
const (
	calcStepLanguage   = "language"
	calcStepSalary     = "salary"
	calcStepExperience = "experience"
	calcStepIndustry   = "industry"
	calcStepCity       = "city"
	calcStepLevel      = "level"
)

// MainMenuButtons returns the standard main menu
func (b *Bot) MainMenuButtons() [][]MenuButton {
	return [][]MenuButton{
		{
			{Text: "📚 Learn a Language", CallbackData: "menu:learn"},
			{Text: "🎯 Daily Quiz", CallbackData: "menu:quiz"},
		},
		{
			{Text: "📊 My Stats", CallbackData: "menu:stats"},
			{Text: "💰 Financial Impact", CallbackData: "menu:impact"},
		},
	}
}

// handleStartCommand handles the /start command
func (b *Bot) handleStartCommand(message *tgbotapi.Message) {
	welcomeText := `Welcome to LinguaQuest! 🌍

Learn a language and see what it's worth to your career.

/languages - Browse available languages
/learn - Start learning a language
/study - Log a study session
/quiz - Take today's challenges
/stats - Your progress and achievements
/impact - Calculate your financial impact
/help - Full command list`

	msg := tgbotapi.NewMessage(message.Chat.ID, welcomeText)
	msg.ReplyMarkup = createKeyboard(b.MainMenuButtons())
	b.api.Send(msg)
}

// handleHelpCommand handles the /help command
func (b *Bot) handleHelpCommand(message *tgbotapi.Message) {
	helpText := `Available commands:

/languages - Browse available languages
/learn - Start learning a new language
/study [code] - Log a study session
/quiz - Take one of today's challenges
/stats - Your progress, streaks and achievements
/impact - Calculate the financial impact of a language
/industries [code] - Industries that reward a language most
/locations [code] - Cities with the highest demand
/city - Tell me where you are (unlocks local challenges)
/reset - Erase all your data`

	msg := tgbotapi.NewMessage(message.Chat.ID, helpText)
	b.api.Send(msg)
}

// handleLanguagesCommand lists every language in the catalog
func (b *Bot) handleLanguagesCommand(message *tgbotapi.Message) {
	var sb strings.Builder
	sb.WriteString("Languages you can learn:\n\n")
	for _, lang := range b.catalog.Languages() {
		sb.WriteString(fmt.Sprintf("%s %s (%s)\n", lang.Flag, lang.Name, lang.Code))
		sb.WriteString(fmt.Sprintf("   Demand: %s | Difficulty: %s | Avg. salary boost: %s\n\n",
			lang.EconomicImpact.MarketDemand,
			lang.Difficulty,
			formatMoney(lang.EconomicImpact.AverageSalaryIncrease)))
	}
	sb.WriteString("Use /learn to start one.")

	msg := tgbotapi.NewMessage(message.Chat.ID, sb.String())
	b.api.Send(msg)
}

// handleLearnCommand shows a language picker
func (b *Bot) handleLearnCommand(message *tgbotapi.Message) {
	msg := tgbotapi.NewMessage(message.Chat.ID, "Which language would you like to learn?")
	msg.ReplyMarkup = createKeyboard(b.languageButtons("learn"))
	b.api.Send(msg)
}

// languageButtons builds one button per catalog language with the given action prefix
func (b *Bot) languageButtons(action string) [][]MenuButton {
	var rows [][]MenuButton
	var row []MenuButton
	for _, lang := range b.catalog.Languages() {
		row = append(row, MenuButton{
			Text:         fmt.Sprintf("%s %s", lang.Flag, lang.Name),
			CallbackData: action + ":" + lang.Code,
		})
		if len(row) == 2 {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	return rows
}

// handleStudyCommand logs a study session for a language
func (b *Bot) handleStudyCommand(message *tgbotapi.Message) {
	code := strings.ToLower(strings.TrimSpace(message.CommandArguments()))
	if code == "" {
		msg := tgbotapi.NewMessage(message.Chat.ID, "Which language did you study?")
		msg.ReplyMarkup = createKeyboard(b.languageButtons("study"))
		b.api.Send(msg)
		return
	}
	b.recordStudy(message.From.ID, message.Chat.ID, code)
}

// recordStudy applies a standard study session and reports the outcome
func (b *Bot) recordStudy(userID, chatID int64, code string) {
	if _, ok := b.catalog.LanguageByCode(code); !ok {
		msg := tgbotapi.NewMessage(chatID, fmt.Sprintf("I don't know the language %q. Use /languages to see the list.", code))
		b.api.Send(msg)
		return
	}

	result, err := b.tracker.RecordStudySession(userID, code, b.config.StudySessionXP, b.config.StudySessionLength)
	if err != nil {
		b.replyTrackerError(chatID, code, err)
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Nice work! +%d XP\n", b.config.StudySessionXP))
	sb.WriteString(b.progressLine(result.Progress))
	if result.StreakExtended {
		sb.WriteString(fmt.Sprintf("🔥 Streak extended to %d days!\n", result.Progress.Streak))
	}
	b.announceSession(&sb, result)

	msg := tgbotapi.NewMessage(chatID, sb.String())
	b.api.Send(msg)
}

// replyTrackerError turns tracker errors into user-facing messages
func (b *Bot) replyTrackerError(chatID int64, code string, err error) {
	if errors.Is(err, challenge.ErrNoQuestions) {
		b.api.Send(tgbotapi.NewMessage(chatID, "That challenge has no questions."))
		return
	}
	text := "Something went wrong, please try again."
	if errors.Is(err, progress.ErrNotFound) {
		text = "You're not learning " + code + " yet. Use /learn first."
	}
	b.log.Error("tracker operation failed", zap.String("language", code), zap.Error(err))
	b.api.Send(tgbotapi.NewMessage(chatID, text))
}

// announceSession appends level-up and achievement lines to the reply
func (b *Bot) announceSession(sb *strings.Builder, result *progress.SessionResult) {
	if result.LeveledUp {
		sb.WriteString("🎉 Level up!\n")
	}
	for _, a := range result.Unlocked {
		sb.WriteString(fmt.Sprintf("%s Achievement unlocked: %s (+%d XP)\n", a.Icon, a.Title, a.ExperienceReward))
	}
}

// progressLine renders a one-line summary of a progress record
func (b *Bot) progressLine(p *models.UserProgress) string {
	required := p.Level.RequiredXP()
	next := fmt.Sprintf("%d/%d XP", p.ExperiencePoints, required)
	if _, ok := p.Level.Next(); !ok {
		next = fmt.Sprintf("%d XP", p.ExperiencePoints)
	}
	return fmt.Sprintf("%s: %s (%s), %s\n", p.LanguageCode, p.Level, p.Level.Label(), next)
}

// handleQuizCommand offers today's challenges for the user's languages
func (b *Bot) handleQuizCommand(message *tgbotapi.Message) {
	userID := message.From.ID

	records, _, err := b.tracker.Overview(userID)
	if err != nil {
		b.log.Error("failed to load progress", zap.Int64("user_id", userID), zap.Error(err))
		b.api.Send(tgbotapi.NewMessage(message.Chat.ID, "Something went wrong, please try again."))
		return
	}
	if len(records) == 0 {
		b.api.Send(tgbotapi.NewMessage(message.Chat.ID, "Start a language first with /learn, then come back for a quiz."))
		return
	}

	city, err := b.users.GetCity(userID)
	if err != nil {
		b.log.Error("failed to get user city", zap.Int64("user_id", userID), zap.Error(err))
	}

	learning := make(map[string]bool, len(records))
	for _, p := range records {
		learning[p.LanguageCode] = true
	}

	daily := b.state.Snapshot().Challenges
	if len(daily) == 0 {
		// Rotation hasn't produced a set yet; generate one for this user.
		for code := range learning {
			set, err := b.engine.DailyChallenges(code)
			if err != nil {
				b.log.Error("failed to generate challenges", zap.String("language", code), zap.Error(err))
				continue
			}
			daily = append(daily, set...)
		}
	}

	var rows [][]MenuButton
	pending := make(map[string]models.Challenge)
	for _, ch := range daily {
		if !learning[ch.LanguageCode] {
			continue
		}
		if !challenge.AvailableAt(ch, city) {
			continue
		}
		pending[ch.ID] = ch
		rows = append(rows, []MenuButton{{
			Text:         fmt.Sprintf("%s (%s, +%d XP)", ch.Title, ch.Difficulty, ch.ExperienceReward),
			CallbackData: "quiz:" + ch.ID,
		}})
	}

	if len(rows) == 0 {
		b.api.Send(tgbotapi.NewMessage(message.Chat.ID, "No challenges available right now. Check back after the daily rotation."))
		return
	}

	b.mu.Lock()
	b.pendingChallenges = pending
	b.mu.Unlock()

	msg := tgbotapi.NewMessage(message.Chat.ID, "Today's challenges:")
	msg.ReplyMarkup = createKeyboard(rows)
	b.api.Send(msg)
}

// startQuiz begins a quiz session for the chosen challenge
func (b *Bot) startQuiz(userID, chatID int64, ch models.Challenge) {
	session := &quizSession{
		Challenge: ch,
		Answers:   make([]int, 0, len(ch.Questions)),
	}
	if ch.TimeLimit > 0 {
		session.Deadline = time.Now().Add(ch.TimeLimit)
		time.AfterFunc(ch.TimeLimit, func() {
			b.submitQuizIfRunning(userID, chatID, ch.ID)
		})
	}

	b.mu.Lock()
	b.quizSessions[userID] = session
	b.mu.Unlock()

	intro := fmt.Sprintf("%s\n%s\n\n%d questions", ch.Title, ch.Description, len(ch.Questions))
	if ch.TimeLimit > 0 {
		intro += fmt.Sprintf(", %d minutes", int(ch.TimeLimit.Minutes()))
	}
	b.api.Send(tgbotapi.NewMessage(chatID, intro))

	b.sendQuestion(chatID, session)
}

// sendQuestion sends the current question with its options as buttons
func (b *Bot) sendQuestion(chatID int64, session *quizSession) {
	q := session.Challenge.Questions[session.CurrentIdx]

	var rows [][]MenuButton
	for i, opt := range q.Options {
		rows = append(rows, []MenuButton{{
			Text:         opt,
			CallbackData: fmt.Sprintf("ans:%d", i),
		}})
	}

	text := fmt.Sprintf("Question %d/%d\n\n%s", session.CurrentIdx+1, len(session.Challenge.Questions), q.Prompt)
	if q.AudioRef != "" {
		text += "\n🔊 " + q.AudioRef
	}

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = createKeyboard(rows)
	b.api.Send(msg)
}

// recordAnswer stores an answer and advances or submits the quiz
func (b *Bot) recordAnswer(userID, chatID int64, answer int) {
	b.mu.Lock()
	session, ok := b.quizSessions[userID]
	if ok {
		session.Answers = append(session.Answers, answer)
		session.CurrentIdx++
	}
	b.mu.Unlock()

	if !ok {
		b.api.Send(tgbotapi.NewMessage(chatID, "No quiz in progress. Use /quiz to start one."))
		return
	}

	if session.CurrentIdx >= len(session.Challenge.Questions) {
		b.submitQuiz(userID, chatID, session)
		return
	}
	b.sendQuestion(chatID, session)
}

// submitQuizIfRunning submits a timed-out quiz with the answers given so far
func (b *Bot) submitQuizIfRunning(userID, chatID int64, challengeID string) {
	b.mu.Lock()
	session, ok := b.quizSessions[userID]
	if !ok || session.Challenge.ID != challengeID {
		b.mu.Unlock()
		return
	}
	b.mu.Unlock()

	b.api.Send(tgbotapi.NewMessage(chatID, "⏰ Time's up! Scoring the answers you gave."))
	b.submitQuiz(userID, chatID, session)
}

// submitQuiz scores the session and applies the result
func (b *Bot) submitQuiz(userID, chatID int64, session *quizSession) {
	b.mu.Lock()
	if b.quizSessions[userID] != session {
		b.mu.Unlock()
		return
	}
	delete(b.quizSessions, userID)
	b.mu.Unlock()

	score, err := challenge.Score(session.Challenge, session.Answers)
	if err != nil {
		b.log.Error("failed to score quiz", zap.Error(err))
		b.api.Send(tgbotapi.NewMessage(chatID, "Something went wrong scoring your quiz."))
		return
	}

	result, err := b.tracker.CompleteChallenge(userID, session.Challenge, score)
	if err != nil {
		b.replyTrackerError(chatID, session.Challenge.LanguageCode, err)
		return
	}

	correct := challenge.CorrectCount(session.Challenge, session.Answers)
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("You scored %d/%d (%.0f%%)\n", correct, len(session.Challenge.Questions), score*100))
	xp := int(float64(session.Challenge.ExperienceReward)*score + 0.5)
	sb.WriteString(fmt.Sprintf("+%d XP\n", xp))
	sb.WriteString(b.progressLine(result.Progress))
	b.announceSession(&sb, result)

	b.api.Send(tgbotapi.NewMessage(chatID, sb.String()))
}

// handleStatsCommand renders the user's dashboard
func (b *Bot) handleStatsCommand(message *tgbotapi.Message) {
	userID := message.From.ID

	records, achievements, err := b.tracker.Overview(userID)
	if err != nil {
		b.log.Error("failed to load overview", zap.Int64("user_id", userID), zap.Error(err))
		b.api.Send(tgbotapi.NewMessage(message.Chat.ID, "Something went wrong, please try again."))
		return
	}
	if len(records) == 0 {
		b.api.Send(tgbotapi.NewMessage(message.Chat.ID, "No progress yet. Use /learn to start a language!"))
		return
	}

	var sb strings.Builder
	sb.WriteString("Your progress:\n\n")
	for _, p := range records {
		lang, _ := b.catalog.LanguageByCode(p.LanguageCode)
		sb.WriteString(fmt.Sprintf("%s %s\n", lang.Flag, lang.Name))
		sb.WriteString(fmt.Sprintf("   Level %s (%s), %d XP, %.0f%% mastery\n",
			p.Level, p.Level.Label(), p.ExperiencePoints, p.Level.Progress()*100))
		sb.WriteString(fmt.Sprintf("   🔥 %d-day streak | %.1f h studied | %d words mastered\n\n",
			p.Streak, p.TotalStudyTime().Hours(), p.VocabularyMastered))
	}

	if len(achievements) > 0 {
		sb.WriteString(fmt.Sprintf("Achievements (%d):\n", len(achievements)))
		for _, a := range achievements {
			sb.WriteString(fmt.Sprintf("%s %s\n", a.Icon, a.Title))
		}
	}

	b.api.Send(tgbotapi.NewMessage(message.Chat.ID, sb.String()))
}

// handleImpactCommand starts the financial impact wizard
func (b *Bot) handleImpactCommand(message *tgbotapi.Message) {
	userID := message.From.ID

	b.mu.Lock()
	b.calcSessions[userID] = &calcSession{Step: calcStepLanguage}
	b.mu.Unlock()
	b.setState(userID, stateCalculator)

	msg := tgbotapi.NewMessage(message.Chat.ID, "Let's see what a language is worth to you.\n\nWhich language? (e.g. es, zh, de)")
	b.api.Send(msg)
}

// handleCalculatorInput advances the impact wizard one step per message
func (b *Bot) handleCalculatorInput(message *tgbotapi.Message) {
	userID := message.From.ID
	text := strings.TrimSpace(message.Text)

	b.mu.Lock()
	session, ok := b.calcSessions[userID]
	b.mu.Unlock()
	if !ok {
		b.clearState(userID)
		return
	}

	reply := func(s string) {
		b.api.Send(tgbotapi.NewMessage(message.Chat.ID, s))
	}

	switch session.Step {
	case calcStepLanguage:
		code := strings.ToLower(text)
		if _, ok := b.catalog.LanguageByCode(code); !ok {
			reply("I don't know that language. Try one of: " + b.languageCodes())
			return
		}
		session.Request.LanguageCode = code
		session.Step = calcStepSalary
		reply("What is your current annual salary? (a number, e.g. 75000)")

	case calcStepSalary:
		salary, err := strconv.ParseFloat(text, 64)
		if err != nil || salary <= 0 {
			reply("Please enter a positive number, e.g. 75000.")
			return
		}
		session.Request.CurrentSalary = salary
		session.Step = calcStepExperience
		reply("How many years of work experience do you have?")

	case calcStepExperience:
		years, err := strconv.Atoi(text)
		if err != nil || years < 0 {
			reply("Please enter a whole number of years, e.g. 5.")
			return
		}
		session.Request.YearsOfExperience = years
		session.Step = calcStepIndustry
		reply("Which industry do you work in? " + b.industryNames() + "\nOr type anything else to skip.")

	case calcStepIndustry:
		session.Request.Industry = text
		session.Step = calcStepCity
		reply("Which city are you based in? " + b.cityNames() + "\nOr type anything else to skip.")

	case calcStepCity:
		session.Request.City = text
		session.Step = calcStepLevel
		reply("What proficiency level are you aiming for? (A1, A2, B1, B2, C1 or C2)")

	case calcStepLevel:
		level, err := models.ParseProficiencyLevel(text)
		if err != nil {
			reply("Please enter one of A1, A2, B1, B2, C1 or C2.")
			return
		}
		session.Request.TargetLevel = level

		b.mu.Lock()
		delete(b.calcSessions, userID)
		b.mu.Unlock()
		b.clearState(userID)

		b.sendImpact(message.Chat.ID, session.Request)
	}
}

// sendImpact runs the calculator and renders the projection
func (b *Bot) sendImpact(chatID int64, req models.FinancialCalculationRequest) {
	calc, err := b.calculator.Calculate(context.Background(), req)
	if err != nil {
		b.log.Error("calculation failed", zap.Error(err))
		b.api.Send(tgbotapi.NewMessage(chatID, "I couldn't run that calculation, please try /impact again."))
		return
	}

	impact := calc.Impact
	lang, _ := b.catalog.LanguageByCode(req.LanguageCode)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("💰 Financial impact of %s at level %s\n\n", lang.Name, req.TargetLevel))
	sb.WriteString(fmt.Sprintf("Projected salary increase: %s/year\n", formatMoney(impact.ProjectedSalaryIncrease)))
	sb.WriteString(fmt.Sprintf("Projected annual salary: %s\n", formatMoney(impact.ProjectedAnnualSalary)))
	sb.WriteString(fmt.Sprintf("Lifetime earnings increase: %s\n", formatMoney(impact.LifetimeEarningsIncrease)))
	sb.WriteString(fmt.Sprintf("New job opportunities: %.0f\n\n", impact.JobOpportunityIncrease))

	adv := impact.MarketAdvantage
	sb.WriteString(fmt.Sprintf("Competitive edge: +%.0f%%\n", adv.CompetitiveEdge))
	sb.WriteString(fmt.Sprintf("Accessible positions: %d\n", adv.AccessiblePositions))
	sb.WriteString(fmt.Sprintf("Global opportunities: %d\n", adv.GlobalOpportunities))
	sb.WriteString(finance.MarketDemandDescription(adv) + "\n\n")

	roi := impact.ROI
	if roi.Defined {
		sb.WriteString(fmt.Sprintf("Study investment: %.0f hours (~%s)\n", roi.StudyHours, formatMoney(roi.EstimatedCost)))
		sb.WriteString(finance.BreakEvenDescription(roi.BreakEvenMonths) + "\n")
		sb.WriteString(fmt.Sprintf("5-year ROI: %.0f%% | 10-year ROI: %.0f%%\n\n", roi.FiveYearROI, roi.TenYearROI))
	}

	sb.WriteString(finance.ImpactDescription(impact))

	b.api.Send(tgbotapi.NewMessage(chatID, sb.String()))
}

// handleIndustriesCommand ranks industries for a language
func (b *Bot) handleIndustriesCommand(message *tgbotapi.Message) {
	code := b.argOrDefaultLanguage(message)
	ranked := b.calculator.RankIndustries(code)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Industries that reward %s most:\n\n", code))
	for i, ind := range ranked {
		sb.WriteString(fmt.Sprintf("%d. %s — ×%.2f salary multiplier (avg %s, %.0f%% growth)\n",
			i+1, ind.Name, ind.MultiplierFor(code), formatMoney(ind.AverageSalary), ind.GrowthRate*100))
	}
	b.api.Send(tgbotapi.NewMessage(message.Chat.ID, sb.String()))
}

// handleLocationsCommand ranks cities for a language
func (b *Bot) handleLocationsCommand(message *tgbotapi.Message) {
	code := b.argOrDefaultLanguage(message)
	ranked := b.calculator.RankLocations(code)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Cities with the highest demand for %s:\n\n", code))
	for i, loc := range ranked {
		sb.WriteString(fmt.Sprintf("%d. %s, %s — ×%.2f demand (avg income %s)\n",
			i+1, loc.City, loc.Country, loc.DemandFor(code), formatMoney(loc.AverageIncome)))
	}
	b.api.Send(tgbotapi.NewMessage(message.Chat.ID, sb.String()))
}

// argOrDefaultLanguage reads a language code argument, falling back to the
// user's first learning language and then to the first catalog entry
func (b *Bot) argOrDefaultLanguage(message *tgbotapi.Message) string {
	if arg := strings.ToLower(strings.TrimSpace(message.CommandArguments())); arg != "" {
		return arg
	}
	if records, _, err := b.tracker.Overview(message.From.ID); err == nil && len(records) > 0 {
		return records[0].LanguageCode
	}
	langs := b.catalog.Languages()
	if len(langs) > 0 {
		return langs[0].Code
	}
	return ""
}

// handleCityCommand asks for or sets the user's city
func (b *Bot) handleCityCommand(message *tgbotapi.Message) {
	if arg := strings.TrimSpace(message.CommandArguments()); arg != "" {
		b.saveCity(message.From.ID, message.Chat.ID, arg)
		return
	}
	b.setState(message.From.ID, stateAwaitingCity)
	b.api.Send(tgbotapi.NewMessage(message.Chat.ID, "Which city are you in? Known cities: "+b.cityNames()))
}

// handleCityInput consumes the free-form city reply
func (b *Bot) handleCityInput(message *tgbotapi.Message) {
	b.clearState(message.From.ID)
	b.saveCity(message.From.ID, message.Chat.ID, strings.TrimSpace(message.Text))
}

// saveCity persists the city and confirms
func (b *Bot) saveCity(userID, chatID int64, city string) {
	if err := b.users.SetCity(userID, city); err != nil {
		b.log.Error("failed to save city", zap.Int64("user_id", userID), zap.Error(err))
		b.api.Send(tgbotapi.NewMessage(chatID, "Couldn't save that, please try again."))
		return
	}
	b.api.Send(tgbotapi.NewMessage(chatID, fmt.Sprintf("Got it, you're in %s. Location challenges there are now available.", city)))
}

// handleResetCommand asks for confirmation before wiping data
func (b *Bot) handleResetCommand(message *tgbotapi.Message) {
	msg := tgbotapi.NewMessage(message.Chat.ID, "This erases ALL your progress and achievements. Are you sure?")
	msg.ReplyMarkup = createKeyboard([][]MenuButton{
		{
			{Text: "Yes, erase everything", CallbackData: "reset:confirm"},
			{Text: "Cancel", CallbackData: "reset:cancel"},
		},
	})
	b.api.Send(msg)
}

// handleCallbackQuery handles inline button presses
func (b *Bot) handleCallbackQuery(query *tgbotapi.CallbackQuery) {
	defer b.api.Request(tgbotapi.NewCallback(query.ID, ""))

	userID := query.From.ID
	chatID := query.Message.Chat.ID

	action, arg, _ := strings.Cut(query.Data, ":")
	switch action {
	case "menu":
		b.handleMenuCallback(query, arg)
	case "learn":
		b.startLanguage(userID, chatID, arg)
	case "study":
		b.recordStudy(userID, chatID, arg)
	case "quiz":
		b.mu.Lock()
		ch, ok := b.pendingChallenges[arg]
		b.mu.Unlock()
		if !ok {
			b.api.Send(tgbotapi.NewMessage(chatID, "That challenge has expired. Use /quiz to see today's set."))
			return
		}
		b.startQuiz(userID, chatID, ch)
	case "ans":
		idx, err := strconv.Atoi(arg)
		if err != nil {
			return
		}
		b.recordAnswer(userID, chatID, idx)
	case "reset":
		if arg != "confirm" {
			b.api.Send(tgbotapi.NewMessage(chatID, "Reset cancelled."))
			return
		}
		if err := b.tracker.Reset(userID); err != nil {
			b.log.Error("failed to reset user", zap.Int64("user_id", userID), zap.Error(err))
			b.api.Send(tgbotapi.NewMessage(chatID, "Something went wrong, please try again."))
			return
		}
		b.api.Send(tgbotapi.NewMessage(chatID, "All your data has been erased. Use /learn to start fresh."))
	}
}

// handleMenuCallback routes main menu buttons to their commands
func (b *Bot) handleMenuCallback(query *tgbotapi.CallbackQuery, arg string) {
	fake := &tgbotapi.Message{Chat: query.Message.Chat, From: query.From}
	switch arg {
	case "learn":
		b.handleLearnCommand(fake)
	case "quiz":
		b.handleQuizCommand(fake)
	case "stats":
		b.handleStatsCommand(fake)
	case "impact":
		b.handleImpactCommand(fake)
	}
}

// startLanguage begins tracking a language for the user
func (b *Bot) startLanguage(userID, chatID int64, code string) {
	lang, ok := b.catalog.LanguageByCode(code)
	if !ok {
		b.api.Send(tgbotapi.NewMessage(chatID, "I don't know that language."))
		return
	}

	p, unlocked, err := b.tracker.AddLanguage(userID, lang)
	if err != nil {
		b.log.Error("failed to add language", zap.Int64("user_id", userID), zap.Error(err))
		b.api.Send(tgbotapi.NewMessage(chatID, "Something went wrong, please try again."))
		return
	}

	var sb strings.Builder
	if p.ExperiencePoints > 0 || p.Streak > 0 {
		sb.WriteString(fmt.Sprintf("You're already learning %s %s!\n", lang.Flag, lang.Name))
	} else {
		sb.WriteString(fmt.Sprintf("%s %s it is! Starting at level A1.\n", lang.Flag, lang.Name))
		sb.WriteString("Log sessions with /study " + code + " and take a /quiz to earn XP.\n")
	}
	for _, a := range unlocked {
		sb.WriteString(fmt.Sprintf("%s Achievement unlocked: %s (+%d XP)\n", a.Icon, a.Title, a.ExperienceReward))
	}

	b.api.Send(tgbotapi.NewMessage(chatID, sb.String()))
}

// languageCodes lists the catalog language codes
func (b *Bot) languageCodes() string {
	var codes []string
	for _, lang := range b.catalog.Languages() {
		codes = append(codes, lang.Code)
	}
	return strings.Join(codes, ", ")
}

// industryNames lists the catalog industries
func (b *Bot) industryNames() string {
	var names []string
	for _, ind := range b.catalog.Industries() {
		names = append(names, ind.Name)
	}
	return strings.Join(names, ", ")
}

// cityNames lists the catalog cities
func (b *Bot) cityNames() string {
	var names []string
	for _, loc := range b.catalog.Locations() {
		names = append(names, loc.City)
	}
	return strings.Join(names, ", ")
}

// formatMoney renders a dollar amount with thousands separators
func formatMoney(v float64) string {
	n := int64(v + 0.5)
	if n < 0 {
		return fmt.Sprintf("-%s", formatMoney(-v))
	}
	s := strconv.FormatInt(n, 10)
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	return "$" + strings.Join(parts, ",")
}
