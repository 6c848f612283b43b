package historystore

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contractreview/internal/history"
	"contractreview/internal/review"
)

func sampleRecords() []history.Record {
	doc := review.LoadedDocument{Kind: review.DocumentPlainText, Text: "正文", CharacterCount: 2, EstimatedTokenCount: 1}
	result := review.NewResult(doc, "采购合同.docx", review.Outputs{AuditSummary: "总结"})

	completed := history.NewDraft("采购合同.docx")
	completed.Result = &result
	completed.ContractText = "正文"
	completed.Status = history.StatusCompleted

	draft := history.NewDraft("新的审阅")
	draft.UpdatedAt = completed.UpdatedAt.Add(-time.Minute)
	return []history.Record{completed, draft}
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "history.json")
	store := NewFile(path)
	ctx := context.Background()

	want := sampleRecords()
	require.NoError(t, store.Save(ctx, want))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, want[0].ID, got[0].ID)
	assert.Equal(t, history.StatusCompleted, got[0].Status)
	require.NotNil(t, got[0].Result)
	assert.Equal(t, "总结", got[0].Result.Outputs.AuditSummary)
	assert.Nil(t, got[1].Result)

	// No stray temp file after a successful save.
	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestFileStoreMissingFileLoadsEmpty(t *testing.T) {
	store := NewFile(filepath.Join(t.TempDir(), "absent.json"))
	got, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFileStoreCorruptFileFailsLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewFile(path).Load(context.Background())
	assert.Error(t, err)
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	store, err := NewSQLite(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	defer store.Close()
	ctx := context.Background()

	want := sampleRecords()
	require.NoError(t, store.Save(ctx, want))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	// Newest first, per the updated_at ordering.
	assert.Equal(t, want[0].ID, got[0].ID)
	assert.Equal(t, want[1].ID, got[1].ID)

	// A save replaces the whole list.
	require.NoError(t, store.Save(ctx, want[:1]))
	got, err = store.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
