package challenge

import (
	"math/rand"
	"time"

	"github.com/example/linguabot/pkg/models"
)

// StaticBank is the built-in question bank. It currently carries Spanish
// content only; other languages fall through to an empty result, which makes
// the engine skip the archetype rather than present an empty quiz.
type StaticBank struct {
	rnd *rand.Rand
}

// NewStaticBank creates a bank with its own shuffle source.
func NewStaticBank() *StaticBank {
	return &StaticBank{rnd: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// Questions returns up to limit shuffled questions for the language/category.
func (b *StaticBank) Questions(languageCode, category string, limit int) ([]models.ChallengeQuestion, error) {
	pool := staticQuestions[languageCode][category]
	if len(pool) == 0 {
		return nil, nil
	}

	out := make([]models.ChallengeQuestion, len(pool))
	copy(out, pool)
	b.rnd.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

var staticQuestions = map[string]map[string][]models.ChallengeQuestion{
	"es": {
		"vocabulary": {
			{
				Prompt:       "What does 'Hola' mean in English?",
				Options:      []string{"Goodbye", "Hello", "Please", "Thank you"},
				CorrectIndex: 1,
				Explanation:  "Hola is the Spanish greeting meaning 'Hello'",
			},
			{
				Prompt:       "How do you say 'Water' in Spanish?",
				Options:      []string{"Agua", "Fuego", "Tierra", "Aire"},
				CorrectIndex: 0,
				Explanation:  "Agua is the Spanish word for water",
			},
			{
				Prompt:       "What does 'Gracias' mean?",
				Options:      []string{"Sorry", "Hello", "Thank you", "Goodbye"},
				CorrectIndex: 2,
				Explanation:  "Gracias is how you say 'Thank you' in Spanish",
			},
			{
				Prompt:       "How do you say 'Book' in Spanish?",
				Options:      []string{"Mesa", "Libro", "Silla", "Puerta"},
				CorrectIndex: 1,
				Explanation:  "Libro is the Spanish word for book",
			},
		},
		"grammar": {
			{
				Prompt:       "Choose the correct conjugation: 'Yo _____ español'",
				Options:      []string{"habla", "hablas", "hablo", "hablan"},
				CorrectIndex: 2,
				Explanation:  "For 'yo' (I), the correct conjugation is 'hablo'",
			},
			{
				Prompt:       "Choose the correct article: '_____ casa es grande'",
				Options:      []string{"El", "La", "Los", "Las"},
				CorrectIndex: 1,
				Explanation:  "Casa is feminine singular, so it takes 'la'",
			},
		},
		"listening": {
			{
				Prompt:       "Listen to the audio and select the correct translation:",
				Options:      []string{"Good morning", "Good afternoon", "Good evening", "Good night"},
				CorrectIndex: 0,
				Explanation:  "The audio says 'Buenos días' which means 'Good morning'",
				AudioRef:     "buenos_dias.mp3",
			},
		},
	},
}
