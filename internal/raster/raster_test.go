package raster

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/dzadsearch/ads-ingest/internal/common"
)

// fakeRunner records the command and drops page images where pdftoppm would.
type fakeRunner struct {
	lastName string
	lastArgs []string
	pages    []int // page numbers to materialize
	err      error
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	f.lastName = name
	f.lastArgs = args
	if f.err != nil {
		return nil, []byte("boom"), f.err
	}
	prefix := args[len(args)-1]
	for _, n := range f.pages {
		path := fmt.Sprintf("%s-%02d.png", prefix, n)
		if err := os.WriteFile(path, []byte("png"), 0o644); err != nil {
			return nil, nil, err
		}
	}
	return nil, nil, nil
}

func TestRenderBuildsCommandAndOrdersPages(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	fr := &fakeRunner{pages: []int{3, 4, 5}}
	r := NewWithRunner(Config{Pdftoppm: "pdftoppm"}, fr, nil)

	pages, err := r.Render(context.Background(), "/data/issue_7012.pdf", dir, 3, 5, 150)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"-r", "150", "-png", "-f", "3", "-l", "5", "/data/issue_7012.pdf", filepath.Join(dir, "page")}
	if len(fr.lastArgs) != len(want) {
		t.Fatalf("args: got %v, want %v", fr.lastArgs, want)
	}
	for i := range want {
		if fr.lastArgs[i] != want[i] {
			t.Errorf("arg %d: got %q, want %q", i, fr.lastArgs[i], want[i])
		}
	}

	if len(pages) != 3 {
		t.Fatalf("expected 3 pages, got %d", len(pages))
	}
	for i, p := range pages {
		if p.Number != 3+i {
			t.Errorf("page %d: got number %d, want %d", i, p.Number, 3+i)
		}
		if _, err := os.Stat(p.Path); err != nil {
			t.Errorf("page %d: missing image %s", i, p.Path)
		}
	}
}

func TestRenderInvalidRange(t *testing.T) {
	t.Parallel()

	r := NewWithRunner(Config{}, &fakeRunner{}, nil)

	_, err := r.Render(context.Background(), "x.pdf", t.TempDir(), 5, 3, 150)
	if !errors.Is(err, common.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestRenderCommandFailure(t *testing.T) {
	t.Parallel()

	fr := &fakeRunner{err: errors.New("exit status 99")}
	r := NewWithRunner(Config{}, fr, nil)

	_, err := r.Render(context.Background(), "x.pdf", t.TempDir(), 1, 2, 150)
	if !errors.Is(err, common.ErrBackendUnavailable) {
		t.Fatalf("expected ErrBackendUnavailable, got %v", err)
	}
}

func TestRenderNoImagesProduced(t *testing.T) {
	t.Parallel()

	r := NewWithRunner(Config{}, &fakeRunner{}, nil)

	_, err := r.Render(context.Background(), "x.pdf", t.TempDir(), 1, 2, 150)
	if err == nil {
		t.Fatal("expected error when no images are produced")
	}
}
