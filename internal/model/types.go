// Package model defines shared data structures.
package model

// Allowed session durations in seconds.
var Durations = []int{60, 120, 180}

// Config defines session settings after defaults, file, env and flags are merged.
type Config struct {
	Duration     int    `env:"TYPETEST_DURATION"`
	WordsPerLine int    `env:"TYPETEST_WORDS_PER_LINE"`
	TextsPath    string `env:"TYPETEST_TEXTS"`
	Seed         int64  `env:"TYPETEST_SEED"`
	LogFile      string `env:"TYPETEST_LOG_FILE"`
	LogLevel     string `env:"TYPETEST_LOG_LEVEL"`
}

// ValidDuration reports whether seconds is one of the allowed durations.
func ValidDuration(seconds int) bool {
	for _, d := range Durations {
		if d == seconds {
			return true
		}
	}
	return false
}

// Result captures the outcome of a finished session.
type Result struct {
	Duration        int
	Lines           int
	LinesCompleted  int
	WordsTyped      int
	TypedChars      int
	CorrectChars    int
	WordsPerSecond  float64
	AccuracyPercent int
}
