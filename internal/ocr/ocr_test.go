package ocr

import (
	"context"
	"errors"
	"testing"

	"github.com/dzadsearch/ads-ingest/internal/common"
)

// fakeRunner records invocations and returns canned output.
type fakeRunner struct {
	lastName string
	lastArgs []string
	stdout   string
	err      error
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	f.lastName = name
	f.lastArgs = args
	return []byte(f.stdout), nil, f.err
}

func TestExtractTextBuildsTesseractCommand(t *testing.T) {
	t.Parallel()

	fr := &fakeRunner{stdout: "إشهار نص تجريبي"}
	// "true" exists on any PATH, so the availability probe passes.
	e := NewExtractorWithRunner(Config{Tesseract: "true", Languages: "ara+eng", TessdataDir: "/opt/tessdata"}, fr, nil)

	got, err := e.ExtractText(context.Background(), "/tmp/page-1.png")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "إشهار نص تجريبي" {
		t.Errorf("unexpected text: %q", got)
	}

	want := []string{"/tmp/page-1.png", "stdout", "-l", "ara+eng", "--tessdata-dir", "/opt/tessdata"}
	if len(fr.lastArgs) != len(want) {
		t.Fatalf("args: got %v, want %v", fr.lastArgs, want)
	}
	for i := range want {
		if fr.lastArgs[i] != want[i] {
			t.Errorf("arg %d: got %q, want %q", i, fr.lastArgs[i], want[i])
		}
	}
}

func TestExtractTextMissingBinary(t *testing.T) {
	t.Parallel()

	e := NewExtractor(Config{Tesseract: "definitely-not-a-real-binary-7f3a"}, nil)

	_, err := e.ExtractText(context.Background(), "/tmp/page-1.png")
	if !errors.Is(err, common.ErrBackendUnavailable) {
		t.Fatalf("expected ErrBackendUnavailable, got %v", err)
	}
}

func TestExtractTextCommandFailure(t *testing.T) {
	t.Parallel()

	fr := &fakeRunner{err: errors.New("exit status 1")}
	e := NewExtractorWithRunner(Config{Tesseract: "true"}, fr, nil)

	_, err := e.ExtractText(context.Background(), "/tmp/page-1.png")
	if !errors.Is(err, common.ErrBackendUnavailable) {
		t.Fatalf("expected ErrBackendUnavailable, got %v", err)
	}
}
