package models

import "time"

// Quality is a learner's self-reported recall grade for a single review.
type Quality int

const (
	QualityBlackout  Quality = 0 // complete blackout
	QualityIncorrect Quality = 1 // wrong answer
	QualityHard      Quality = 2 // correct with serious difficulty
	QualityGood      Quality = 3 // correct
	QualityEasy      Quality = 4 // correct with no hesitation
)

// IsValid reports whether q belongs to the defined grade set.
func (q Quality) IsValid() bool {
	return q >= QualityBlackout && q <= QualityEasy
}

func (q Quality) String() string {
	switch q {
	case QualityBlackout:
		return "blackout"
	case QualityIncorrect:
		return "incorrect"
	case QualityHard:
		return "hard"
	case QualityGood:
		return "good"
	case QualityEasy:
		return "easy"
	default:
		return "invalid"
	}
}

// CardStatus is the learning stage of a card, derived from its scheduling
// state rather than stored.
type CardStatus string

const (
	StatusNew      CardStatus = "new"
	StatusLearning CardStatus = "learning"
	StatusReview   CardStatus = "review"
)

type Card struct {
	ID             int64      `json:"id"`
	DeckID         int64      `json:"deck_id"`
	Front          string     `json:"front"`
	Back           string     `json:"back"`
	Tags           []string   `json:"tags,omitempty"`
	EaseFactor     float64    `json:"ease_factor"`
	IntervalDays   int        `json:"interval_days"`
	Repetitions    int        `json:"repetitions"`
	Lapses         int        `json:"lapses"`
	DueAt          time.Time  `json:"due_at"`
	LastReviewedAt *time.Time `json:"last_reviewed_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

// Status derives the card's learning stage. A card that has never earned an
// interval is new; a lapsed or young card is still learning; once the interval
// is driven by the ease factor the card has graduated to review.
func (c Card) Status() CardStatus {
	switch {
	case c.IntervalDays == 0 && c.Repetitions == 0:
		return StatusNew
	case c.Repetitions <= 2:
		return StatusLearning
	default:
		return StatusReview
	}
}

// HasTag reports whether the card carries the given tag.
func (c Card) HasTag(tag string) bool {
	for _, t := range c.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

type Deck struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// DeckSummary is a deck with the counts the deck list displays.
type DeckSummary struct {
	Deck
	CardCount      int `json:"card_count"`
	DueCount       int `json:"due_count"`
	DifficultCount int `json:"difficult_count"`
}

// ReviewOutcome records one graded answer. It is consumed by the session
// tracker and the review log, never persisted as-is.
type ReviewOutcome struct {
	CardID     int64     `json:"card_id"`
	Quality    Quality   `json:"quality"`
	ReviewedAt time.Time `json:"reviewed_at"`
}

// Statistics summarizes graded answers for a session or a lifetime.
type Statistics struct {
	ReviewedCount int     `json:"reviewed_count"`
	CorrectCount  int     `json:"correct_count"`
	SuccessRate   float64 `json:"success_rate"`
}

// CardFilter narrows card listing queries.
type CardFilter struct {
	DeckID    int64
	Tag       string
	DueBefore *time.Time
	Limit     int
	Offset    int
}

// DeckStats aggregates review performance for one deck.
type DeckStats struct {
	DeckID         int64          `json:"deck_id"`
	TotalCards     int            `json:"total_cards"`
	ReviewedCards  int            `json:"reviewed_cards"`
	DueCards       int            `json:"due_cards"`
	DifficultCards int            `json:"difficult_cards"`
	TotalReviews   int            `json:"total_reviews"`
	CorrectReviews int            `json:"correct_reviews"`
	Accuracy       float64        `json:"accuracy"`
	TagCounts      map[string]int `json:"tag_counts,omitempty"`
}

// SessionRecord is a finished study session as persisted for lifetime stats.
type SessionRecord struct {
	ID        int64     `json:"id"`
	DeckID    int64     `json:"deck_id"`
	Mode      string    `json:"mode"`
	Reviewed  int       `json:"reviewed"`
	Correct   int       `json:"correct"`
	StartedAt time.Time `json:"started_at"`
	EndedAt   time.Time `json:"ended_at"`
}
