package app

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hirescope/domain/interview"
	"hirescope/internal/testkit"
)

func TestBuildReportEmpty(t *testing.T) {
	report := BuildReport("Software Engineer", nil)
	assert.Equal(t, 0.0, report.TotalScore)
	assert.Equal(t, interview.RecommendReject, report.Decision)
	assert.Empty(t, report.Items)
	for _, dim := range interview.Dimensions() {
		assert.Equal(t, 0.0, report.BreakdownAvg[dim])
	}
}

func TestBuildReportAverages(t *testing.T) {
	items := []interview.ReportItem{
		{Question: "q1", Answer: "a1", Evaluation: testkit.Eval(80, interview.RecommendHire)},
		{Question: "q2", Answer: "a2", Evaluation: testkit.Eval(40, interview.RecommendReject)},
	}
	report := BuildReport("Data Scientist", items)
	assert.InDelta(t, 60.0, report.TotalScore, 1e-9)
	assert.Equal(t, interview.RecommendConsider, report.Decision)
	assert.InDelta(t, 15.0, report.BreakdownAvg[interview.DimClarity], 1e-9)
}
