package statistics

import (
	"fmt"
	"math"
	"slices"
)

// Outcome is how a duel hand came to an end
type Outcome int

const (
	// Tricks means the hand was decided by playing tricks
	Tricks Outcome = iota
	// RaiseDeclined means a raise request was refused
	RaiseDeclined
	// ElevenDeclined means the player at eleven folded the mão de onze
	ElevenDeclined
	// AllDrawn means every trick was drawn and nobody scored
	AllDrawn
)

var outcomeNames = [...]string{"tricks", "raise-declined", "eleven-declined", "all-drawn"}

// String returns the string representation of an outcome
func (o Outcome) String() string {
	if o < 0 || int(o) >= len(outcomeNames) {
		return "unknown"
	}
	return outcomeNames[o]
}

// HandResult represents the outcome of a single duel hand
type HandResult struct {
	Points  int     // Points scored, positive for bot A and negative for bot B
	Stake   int     // Stake the hand was settled at
	Outcome Outcome // How the hand ended
	Tricks  int     // Tricks played
	Raises  int     // Raise requests made by either bot
	Eleven  bool    // Whether the hand was a mão de onze
	Seed    int64   // RNG seed of the deal (for replay)
	Swapped bool    // Bot A held the second hand of the deal
}

// Statistics tracks duel results from bot A's point of view
type Statistics struct {
	Hands      int
	SumPoints  float64
	SumPoints2 float64   // Sum of squares for variance calculation
	Values     []float64 // Store all values for median/percentile calculation

	WinsA int
	WinsB int
	Draws int // Hands where nobody scored

	PointsA int
	PointsB int
	Raises  int

	Outcomes [len(outcomeNames)]int
	// Stakes counts settled hands per stake.
	Stakes map[int]int
}

// Mean returns the arithmetic mean of bot A's points per hand
func (s *Statistics) Mean() float64 {
	if s.Hands == 0 {
		return 0
	}
	return s.SumPoints / float64(s.Hands)
}

// Variance returns the sample variance of all results
func (s *Statistics) Variance() float64 {
	if s.Hands < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumPoints2 - float64(s.Hands)*mean*mean) / float64(s.Hands-1)
}

// StdDev returns the sample standard deviation of all results
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(math.Max(s.Variance(), 0))
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Hands == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Hands))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// WinRateA returns the share of decided hands won by bot A
func (s *Statistics) WinRateA() float64 {
	decided := s.WinsA + s.WinsB
	if decided == 0 {
		return 0
	}
	return float64(s.WinsA) / float64(decided)
}

// Add incorporates a new hand result into the statistics
func (s *Statistics) Add(result HandResult) {
	points := float64(result.Points)
	s.Hands++
	s.SumPoints += points
	s.SumPoints2 += points * points
	s.Values = append(s.Values, points)
	s.Raises += result.Raises

	switch {
	case result.Points > 0:
		s.WinsA++
		s.PointsA += result.Points
	case result.Points < 0:
		s.WinsB++
		s.PointsB -= result.Points
	default:
		s.Draws++
	}

	if result.Outcome >= 0 && int(result.Outcome) < len(s.Outcomes) {
		s.Outcomes[result.Outcome]++
	}
	if s.Stakes == nil {
		s.Stakes = make(map[int]int)
	}
	s.Stakes[result.Stake]++
}

// Median returns the median value of all results
func (s *Statistics) Median() float64 {
	return s.Percentile(0.5)
}

// Percentile returns the value at the given percentile (0.0 to 1.0)
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := slices.Clone(s.Values)
	slices.Sort(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1

	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// Validate performs consistency checks on the accumulated data
func (s *Statistics) Validate() error {
	if s.Hands <= 0 {
		return fmt.Errorf("invalid hands count: %d", s.Hands)
	}
	if len(s.Values) != s.Hands {
		return fmt.Errorf("values array length (%d) does not match hands count (%d)",
			len(s.Values), s.Hands)
	}
	if total := s.WinsA + s.WinsB + s.Draws; total != s.Hands {
		return fmt.Errorf("wins and draws (%d) do not match hands count (%d)", total, s.Hands)
	}
	if net := float64(s.PointsA - s.PointsB); math.Abs(net-s.SumPoints) > 1e-6 {
		return fmt.Errorf("ledger mismatch: pointsA-pointsB=%.0f, sum=%.0f", net, s.SumPoints)
	}

	outcomes := 0
	for _, n := range s.Outcomes {
		outcomes += n
	}
	if outcomes != s.Hands {
		return fmt.Errorf("outcome total (%d) does not match hands count (%d)", outcomes, s.Hands)
	}
	return nil
}
