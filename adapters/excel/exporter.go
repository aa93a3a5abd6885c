// Package excel exports interview data to xlsx workbooks.
package excel

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/xuri/excelize/v2"
	"golang.org/x/sync/errgroup"

	"github.com/google/uuid"

	"hirescope/ports"
)

// answerFetchConcurrency bounds the parallel per-session answer
// queries during an export.
const answerFetchConcurrency = 4

var headers = []string{"session_id", "role", "persona", "question", "answer", "score"}

// Exporter implements ports.Exporter: every session's answers in one
// flat sheet.
type Exporter struct {
	store ports.InterviewStore
}

// NewExporter creates an xlsx exporter
func NewExporter(store ports.InterviewStore) *Exporter {
	return &Exporter{store: store}
}

// ExportAll builds the workbook. Sessions with no answers still emit
// one row so they remain visible in the export, with empty question
// and answer and the stored total score.
func (e *Exporter) ExportAll(ctx context.Context) ([]byte, error) {
	sessions, err := e.store.ListSessions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	var mu sync.Mutex
	answersBySession := make(map[uuid.UUID][]ports.AnswerRecord, len(sessions))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(answerFetchConcurrency)
	for _, session := range sessions {
		session := session
		g.Go(func() error {
			answers, err := e.store.GetAnswers(gctx, session.ID)
			if err != nil {
				return fmt.Errorf("failed to get answers for %s: %w", session.ID, err)
			}
			mu.Lock()
			answersBySession[session.ID] = answers
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for col, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
	}

	row := 2
	for _, session := range sessions {
		answers := answersBySession[session.ID]
		sort.Slice(answers, func(i, j int) bool { return answers[i].ID < answers[j].ID })

		if len(answers) == 0 {
			if err := writeRow(f, sheet, row, []interface{}{
				session.ID.String(), session.Role, session.Persona, "", "", session.TotalScore,
			}); err != nil {
				return nil, err
			}
			row++
			continue
		}

		for _, answer := range answers {
			if err := writeRow(f, sheet, row, []interface{}{
				session.ID.String(), session.Role, session.Persona, answer.Question, answer.Answer, answer.Score,
			}); err != nil {
				return nil, err
			}
			row++
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	for col, value := range values {
		cell, _ := excelize.CoordinatesToCellName(col+1, row)
		if err := f.SetCellValue(sheet, cell, value); err != nil {
			return fmt.Errorf("failed to write cell %s: %w", cell, err)
		}
	}
	return nil
}
