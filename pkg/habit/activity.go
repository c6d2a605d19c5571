package habit

// Level bins an intensity for display. Each band includes its upper bound.
type Level string

const (
	LevelNone   Level = "none"
	LevelLow    Level = "low"
	LevelMedium Level = "medium"
	LevelHigh   Level = "high"
	LevelFull   Level = "full"
)

// Day is the aggregate of all habits on one calendar day.
type Day struct {
	Date      string  `json:"date"`
	Completed int     `json:"completed"`
	Total     int     `json:"total"`
	Intensity float64 `json:"intensity"`
	Level     Level   `json:"level"`
}

type TrendPoint struct {
	Date       string `json:"date"`
	Completed  int    `json:"completed"`
	Percentage int    `json:"percentage"`
}

// Stage is a milestone on the habit journey.
type Stage struct {
	Title    string `json:"title"`
	Days     int    `json:"days"`
	Unlocked bool   `json:"unlocked"`
}
