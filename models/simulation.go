package models

import "time"

// PlayResult represents the outcome of a single craps play
type PlayResult struct {
	Won   bool
	Point int // 0 when the play was decided on the come-out roll
	Rolls int
}

// SimulationResult represents the aggregated outcome of a simulation run
type SimulationResult struct {
	Plays           int           `yaml:"plays" json:"plays"`
	Wins            int           `yaml:"wins" json:"wins"`
	Losses          int           `yaml:"losses" json:"losses"`
	WinRate         float64       `yaml:"win_rate" json:"win_rate"`
	LossRate        float64       `yaml:"loss_rate" json:"loss_rate"`
	ExpectedWinRate float64       `yaml:"expected_win_rate" json:"expected_win_rate"`
	Rolls           int           `yaml:"rolls" json:"rolls"`
	Dice            DiceConfig    `yaml:"dice" json:"dice"`
	Weighting       Weighting     `yaml:"weighting" json:"weighting"`
	Seed            int64         `yaml:"seed" json:"seed"`
	Workers         int           `yaml:"workers" json:"workers"`
	Duration        time.Duration `yaml:"duration" json:"duration"`
}

// Tally accumulates play results before rates are computed
type Tally struct {
	Plays  int
	Wins   int
	Losses int
	Rolls  int
}

// Add records one play
func (t *Tally) Add(r PlayResult) {
	t.Plays++
	t.Rolls += r.Rolls
	if r.Won {
		t.Wins++
	} else {
		t.Losses++
	}
}

// Merge folds another tally into this one
func (t *Tally) Merge(o Tally) {
	t.Plays += o.Plays
	t.Wins += o.Wins
	t.Losses += o.Losses
	t.Rolls += o.Rolls
}
