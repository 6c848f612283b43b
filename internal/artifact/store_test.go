package artifact

import (
	"context"
	"testing"

	"contractreview/internal/tester"
)

func TestMemoryStorePutGet(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	tester.NoErr(t, store.Put(ctx, "r1", "report.md", []byte("# 报告")))
	got, err := store.Get(ctx, "r1", "report.md")
	tester.NoErr(t, err)
	tester.Eq(t, string(got), "# 报告")

	// Stored bytes are isolated from the caller's buffer.
	buf := []byte("mutable")
	tester.NoErr(t, store.Put(ctx, "r1", "raw.md", buf))
	buf[0] = 'X'
	got, err = store.Get(ctx, "r1", "raw.md")
	tester.NoErr(t, err)
	tester.Eq(t, string(got), "mutable")
}

func TestMemoryStoreGetMissing(t *testing.T) {
	store := NewMemoryStore()
	_, err := store.Get(context.Background(), "r1", "absent.md")
	tester.Eq(t, err, ErrNotFound)
}

func TestMemoryStorePutValidation(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	tester.Err(t, store.Put(ctx, "  ", "report.md", nil))
	tester.Err(t, store.Put(ctx, "r1", "  ", nil))
}

func TestMemoryStoreListIsScopedAndSorted(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	tester.NoErr(t, store.Put(ctx, "r1", "transcript.md", nil))
	tester.NoErr(t, store.Put(ctx, "r1", "report.md", nil))
	tester.NoErr(t, store.Put(ctx, "r2", "report.md", nil))

	paths, err := store.List(ctx, "r1")
	tester.NoErr(t, err)
	tester.Eq(t, paths, []string{"report.md", "transcript.md"})

	empty, err := store.List(ctx, "r3")
	tester.NoErr(t, err)
	tester.Eq(t, len(empty), 0)
}
