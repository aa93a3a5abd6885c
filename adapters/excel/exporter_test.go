package excel

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"hirescope/internal/testkit"
)

func TestExportAll(t *testing.T) {
	ctx := context.Background()
	store := testkit.NewInMemoryStore()

	withAnswers, err := store.CreateSession(ctx, "Software Engineer", "Formal HR")
	require.NoError(t, err)
	require.NoError(t, store.AppendAnswer(ctx, withAnswers, "Q1", "A1", 62, nil))
	require.NoError(t, store.AppendAnswer(ctx, withAnswers, "Q2", "A2", 80, nil))

	empty, err := store.CreateSession(ctx, "Product Manager", "")
	require.NoError(t, err)
	require.NoError(t, store.FinishSession(ctx, empty, 55))

	data, err := NewExporter(store).ExportAll(ctx)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	require.NoError(t, err)

	require.Len(t, rows, 4)
	assert.Equal(t, []string{"session_id", "role", "persona", "question", "answer", "score"}, rows[0])

	byRole := map[string][][]string{}
	for _, row := range rows[1:] {
		byRole[row[1]] = append(byRole[row[1]], row)
	}

	se := byRole["Software Engineer"]
	require.Len(t, se, 2)
	assert.Equal(t, "Q1", se[0][3])
	assert.Equal(t, "A2", se[1][4])

	pm := byRole["Product Manager"]
	require.Len(t, pm, 1)
	assert.Equal(t, "", pm[0][3])
	assert.Equal(t, "55", pm[0][5])
}

func TestExportAllEmptyStore(t *testing.T) {
	data, err := NewExporter(testkit.NewInMemoryStore()).ExportAll(context.Background())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	require.NoError(t, err)
	require.Len(t, rows, 1)
}
