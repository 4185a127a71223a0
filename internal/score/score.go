// Package score aggregates a run's issues into a project health score.
package score

import "github.com/irenetello/react-doctor/internal/types"

// Deduction weights per severity.
const (
	errorWeight   = 10
	warningWeight = 3
	infoWeight    = 1
)

// Health is the aggregated health score for one analysis run.
type Health struct {
	Score    int    `json:"score"` // 0-100
	Tier     string `json:"tier"`  // A, B, C, D, F
	Errors   int    `json:"errors"`
	Warnings int    `json:"warnings"`
	Infos    int    `json:"infos"`
}

// Compute derives the health score from a run's issues: 100 minus weighted
// deductions, floored at zero.
func Compute(issues []types.Issue) Health {
	h := Health{}

	for _, issue := range issues {
		switch issue.Severity {
		case types.SeverityError:
			h.Errors++
		case types.SeverityWarning:
			h.Warnings++
		case types.SeverityInfo:
			h.Infos++
		}
	}

	deduction := h.Errors*errorWeight + h.Warnings*warningWeight + h.Infos*infoWeight
	h.Score = 100 - deduction
	if h.Score < 0 {
		h.Score = 0
	}
	h.Tier = TierFromScore(h.Score)

	return h
}

// TierFromScore returns the letter tier for a score.
func TierFromScore(score int) string {
	switch {
	case score >= 85:
		return "A"
	case score >= 70:
		return "B"
	case score >= 50:
		return "C"
	case score >= 30:
		return "D"
	default:
		return "F"
	}
}
