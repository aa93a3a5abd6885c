package ports

import "hirescope/domain/interview"

// ReportRenderer turns a final report into a downloadable document.
type ReportRenderer interface {
	Render(report *interview.Report) ([]byte, error)
}
