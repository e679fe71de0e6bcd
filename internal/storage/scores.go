package storage

import "time"

// DefaultTopLimit is the number of scores returned when no limit is given.
const DefaultTopLimit = 10

// ScoreEntry is one finished game.
type ScoreEntry struct {
	ID        int64
	Player    string
	SessionID string
	Score     int
	CreatedAt time.Time
}

// Scores is a score backend. Implementations are safe for concurrent use
// so SSH sessions can share one.
type Scores interface {
	// SaveScore records a finished game and returns its ID.
	// A zero CreatedAt is replaced with the current time.
	SaveScore(e ScoreEntry) (int64, error)
	// TopScores returns the best scores, highest first.
	TopScores(limit int) ([]ScoreEntry, error)
	// HighScore returns the best score, or 0 when there are none.
	HighScore() (int, error)
	Close() error
}

var (
	_ Scores = (*Store)(nil)
	_ Scores = (*RedisStore)(nil)
)

const timeLayout = "2006-01-02 15:04:05"

// parseTime accepts the forms a DATETIME column comes back as.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse(timeLayout, v); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(time.RFC3339Nano, v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
