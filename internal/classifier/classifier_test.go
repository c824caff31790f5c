package classifier

import (
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/dzadsearch/ads-ingest/internal/vision"
)

type fakeText struct {
	text string
	err  error
}

func (f fakeText) ExtractText(context.Context, string) (string, error) {
	return f.text, f.err
}

type fakeVision struct {
	enabled bool
	verdict vision.PageVerdict
	err     error
}

func (f fakeVision) Enabled() bool { return f.enabled }

func (f fakeVision) ClassifyPage(context.Context, string) (vision.PageVerdict, error) {
	return f.verdict, f.err
}

func TestClassifyOCRKeywordHit(t *testing.T) {
	t.Parallel()

	c := New(fakeText{text: "نص عادي ثم إشهار في الأسفل"}, nil, nil)

	got := c.Classify(context.Background(), "missing.png", 5)
	if !got.ContainsAds {
		t.Fatal("expected ads")
	}
	if got.Source != SourceOCR {
		t.Errorf("source: got %s, want OCR", got.Source)
	}
	if got.Confidence != 20 {
		t.Errorf("confidence: got %d, want 20 for a single keyword", got.Confidence)
	}
	if len(got.Evidence) != 1 || got.Evidence[0] != "إشهار" {
		t.Errorf("evidence: got %v", got.Evidence)
	}
}

func TestClassifyOCRConfidenceScalesAndCaps(t *testing.T) {
	t.Parallel()

	two := New(fakeText{text: "مناقصة ثم مزايدة"}, nil, nil)
	if got := two.Classify(context.Background(), "missing.png", 5); got.Confidence != 40 {
		t.Errorf("two keywords: got %d, want 40", got.Confidence)
	}

	many := New(fakeText{text: "إشهار إعلان عروض مناقصة مزايدة بيع شراء"}, nil, nil)
	if got := many.Classify(context.Background(), "missing.png", 5); got.Confidence != 100 {
		t.Errorf("many keywords: got %d, want capped 100", got.Confidence)
	}
}

func TestClassifyVisionHit(t *testing.T) {
	t.Parallel()

	c := New(
		fakeText{text: "لا شيء هنا"},
		fakeVision{enabled: true, verdict: vision.PageVerdict{ContainsAds: true, Confidence: 85}},
		nil,
	)

	got := c.Classify(context.Background(), "missing.png", 5)
	if !got.ContainsAds || got.Source != SourceVision || got.Confidence != 85 {
		t.Errorf("got %+v", got)
	}
}

func TestClassifyCombinedRescuesWeakVision(t *testing.T) {
	t.Parallel()

	// 18 is below the vision threshold but clears the combined one.
	c := New(
		fakeText{text: ""},
		fakeVision{enabled: true, verdict: vision.PageVerdict{ContainsAds: true, Confidence: 18}},
		nil,
	)

	got := c.Classify(context.Background(), "missing.png", 5)
	if !got.ContainsAds || got.Source != SourceVision || got.Confidence != 18 {
		t.Errorf("got %+v", got)
	}
}

func TestClassifyVisionErrorFallsThrough(t *testing.T) {
	t.Parallel()

	c := New(
		fakeText{err: errors.New("tesseract exploded")},
		fakeVision{enabled: true, err: errors.New("api down")},
		nil,
	)

	got := c.Classify(context.Background(), "missing.png", 20)
	if !got.ContainsAds || got.Source != SourcePositional {
		t.Errorf("expected positional fallback, got %+v", got)
	}
	if got.Confidence != 0 {
		t.Errorf("positional confidence: got %d, want 0", got.Confidence)
	}
}

func TestClassifyFrontPageWithoutSignals(t *testing.T) {
	t.Parallel()

	c := New(fakeText{text: "أخبار فقط"}, fakeVision{enabled: false}, nil)

	got := c.Classify(context.Background(), "missing.png", 3)
	if got.ContainsAds {
		t.Errorf("front page without signals must not be an ad page, got %+v", got)
	}
}

func TestClassifyHeuristicGridLayout(t *testing.T) {
	t.Parallel()

	c := New(nil, nil, nil)

	grid := writePNG(t, "grid.png", true)
	got := c.Classify(context.Background(), grid, 5)
	if !got.ContainsAds || got.Source != SourceHeuristic {
		t.Errorf("ruled page: got %+v, want heuristic hit", got)
	}

	blank := writePNG(t, "blank.png", false)
	got = c.Classify(context.Background(), blank, 5)
	if got.ContainsAds {
		t.Errorf("blank page: got %+v, want no ads", got)
	}
}

// writePNG draws a white 100x100 page, optionally ruled with 15 full-width
// horizontal lines like a classifieds grid.
func writePNG(t *testing.T, name string, ruled bool) string {
	t.Helper()

	img := image.NewGray(image.Rect(0, 0, 100, 100))
	for y := 0; y < 100; y++ {
		for x := 0; x < 100; x++ {
			img.SetGray(x, y, color.Gray{Y: 255})
		}
	}
	if ruled {
		for i := 0; i < 15; i++ {
			y := 5 + i*6
			for x := 0; x < 100; x++ {
				img.SetGray(x, y, color.Gray{Y: 0})
			}
		}
	}

	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFallbackPages(t *testing.T) {
	t.Parallel()

	t.Run("big issue uses back pages", func(t *testing.T) {
		t.Parallel()

		got := FallbackPages(24)
		want := []int{24, 23, 22}
		if len(got) != len(want) {
			t.Fatalf("got %v, want %v", got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("page %d: got %d, want %d", i, got[i], want[i])
			}
		}
	})

	t.Run("never more than three pages", func(t *testing.T) {
		t.Parallel()

		if got := FallbackPages(40); len(got) > 3 {
			t.Errorf("got %v", got)
		}
	})

	t.Run("candidates are deduplicated", func(t *testing.T) {
		t.Parallel()

		// 11/2 = 5, candidates 11, 10, 9 already fill the quota.
		got := FallbackPages(11)
		seen := map[int]bool{}
		for _, p := range got {
			if seen[p] {
				t.Fatalf("duplicate page %d in %v", p, got)
			}
			seen[p] = true
			if p < 1 || p > 11 {
				t.Fatalf("page %d out of range in %v", p, got)
			}
		}
	})

	t.Run("small issue gets nothing", func(t *testing.T) {
		t.Parallel()

		if got := FallbackPages(10); got != nil {
			t.Errorf("got %v, want nil", got)
		}
	})
}
