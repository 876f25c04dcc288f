package store

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
)

type record struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func TestLoadNeverWrittenIsEmpty(t *testing.T) {
	col := NewCollection[record]("things", NewMemoryStore(), zap.NewNop())
	got := col.Load(context.Background())
	if got == nil {
		t.Fatal("Load must never return nil")
	}
	if len(got) != 0 {
		t.Errorf("expected empty collection, got %d records", len(got))
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	col := NewCollection[record]("things", NewMemoryStore(), zap.NewNop())
	ctx := context.Background()

	in := []record{{ID: "1", Name: "first"}, {ID: "2", Name: "second"}}
	if err := col.Save(ctx, in); err != nil {
		t.Fatalf("save: %v", err)
	}

	got := col.Load(ctx)
	if len(got) != 2 || got[0] != in[0] || got[1] != in[1] {
		t.Errorf("round trip mismatch: %+v", got)
	}
}

func TestLoadCorruptDocumentIsEmpty(t *testing.T) {
	docs := NewMemoryStore()
	docs.Seed("things", []byte(`{"this is": "not a list"`))

	col := NewCollection[record]("things", docs, zap.NewNop())
	got := col.Load(context.Background())
	if len(got) != 0 {
		t.Errorf("corrupt document must load as empty, got %d records", len(got))
	}
}

func TestLoadReadErrorIsEmpty(t *testing.T) {
	docs := NewMemoryStore()
	docs.ReadFunc = func(ctx context.Context, name string) ([]byte, error) {
		return nil, errors.New("connection refused")
	}

	col := NewCollection[record]("things", docs, zap.NewNop())
	got := col.Load(context.Background())
	if len(got) != 0 {
		t.Errorf("unreadable store must load as empty, got %d records", len(got))
	}
}

func TestSaveWriteErrorPropagates(t *testing.T) {
	docs := NewMemoryStore()
	wantErr := errors.New("disk full")
	docs.WriteFunc = func(ctx context.Context, name string, doc []byte) error {
		return wantErr
	}

	col := NewCollection[record]("things", docs, zap.NewNop())
	if err := col.Save(context.Background(), []record{{ID: "1"}}); !errors.Is(err, wantErr) {
		t.Errorf("expected the write error to propagate, got %v", err)
	}
}

func TestSaveReplacesPreviousDocument(t *testing.T) {
	col := NewCollection[record]("things", NewMemoryStore(), zap.NewNop())
	ctx := context.Background()

	col.Save(ctx, []record{{ID: "1"}, {ID: "2"}, {ID: "3"}})
	col.Save(ctx, []record{{ID: "2"}})

	got := col.Load(ctx)
	if len(got) != 1 || got[0].ID != "2" {
		t.Errorf("expected the last write to win, got %+v", got)
	}
}

func TestCollectionsAreIndependent(t *testing.T) {
	docs := NewMemoryStore()
	ctx := context.Background()

	jobs := NewCollection[record](JobCollection, docs, zap.NewNop())
	cands := NewCollection[record](CandidateCollection, docs, zap.NewNop())

	jobs.Save(ctx, []record{{ID: "job"}})
	cands.Save(ctx, []record{{ID: "cand-a"}, {ID: "cand-b"}})

	if got := jobs.Load(ctx); len(got) != 1 || got[0].ID != "job" {
		t.Errorf("job collection polluted: %+v", got)
	}
	if got := cands.Load(ctx); len(got) != 2 {
		t.Errorf("candidate collection polluted: %+v", got)
	}
}

func TestMemoryStoreCopiesDocuments(t *testing.T) {
	docs := NewMemoryStore()
	ctx := context.Background()

	doc := []byte(`[{"id":"1"}]`)
	docs.Write(ctx, "things", doc)
	doc[0] = 'X'

	got, err := docs.Read(ctx, "things")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got[0] != '[' {
		t.Error("stored document aliases the caller's buffer")
	}

	got[0] = 'Y'
	again, _ := docs.Read(ctx, "things")
	if again[0] != '[' {
		t.Error("returned document aliases the stored buffer")
	}
}
