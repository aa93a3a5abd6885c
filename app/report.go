package app

import (
	"github.com/montanaflynn/stats"

	"hirescope/domain/interview"
)

// BuildReport aggregates per-answer evaluations into the final report.
// Totals are plain means; an empty item list yields a zero-score
// Reject report rather than dividing by zero.
func BuildReport(role string, items []interview.ReportItem) *interview.Report {
	scores := make([]float64, 0, len(items))
	dimValues := make(map[string][]float64, 4)
	for _, item := range items {
		scores = append(scores, item.Evaluation.Score)
		for _, dim := range interview.Dimensions() {
			dimValues[dim] = append(dimValues[dim], item.Evaluation.Breakdown[dim])
		}
	}

	total := mean(scores)
	breakdownAvg := make(map[string]float64, 4)
	for _, dim := range interview.Dimensions() {
		breakdownAvg[dim] = mean(dimValues[dim])
	}

	out := make([]interview.ReportItem, len(items))
	copy(out, items)

	return &interview.Report{
		Role:         role,
		TotalScore:   total,
		BreakdownAvg: breakdownAvg,
		Decision:     interview.Decide(total),
		Items:        out,
	}
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	m, err := stats.Mean(values)
	if err != nil {
		return 0
	}
	return m
}
