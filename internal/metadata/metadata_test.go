package metadata

import (
	"testing"
	"time"
)

func TestExtract(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		path      string
		wantIssue *int
		wantDate  string
	}{
		{
			name:      "issue token and date",
			path:      "/data/echorouk_2025-03-14_issue_7012.pdf",
			wantIssue: intp(7012),
			wantDate:  "2025-03-14",
		},
		{
			name:      "trailing number fallback",
			path:      "/data/echorouk_2025-03-14_7012.pdf",
			wantIssue: intp(7012),
			wantDate:  "2025-03-14",
		},
		{
			name:      "issue with dash separator",
			path:      "issue-42.pdf",
			wantIssue: intp(42),
		},
		{
			name: "nothing extractable",
			path: "frontpage.pdf",
		},
		{
			name:     "date only",
			path:     "echorouk-2024-12-01.pdf",
			wantDate: "2024-12-01",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			issue, date := Extract(tt.path)

			if (issue == nil) != (tt.wantIssue == nil) {
				t.Fatalf("issue: got %v, want %v", issue, tt.wantIssue)
			}
			if issue != nil && *issue != *tt.wantIssue {
				t.Errorf("issue: got %d, want %d", *issue, *tt.wantIssue)
			}

			if tt.wantDate == "" {
				if date != nil {
					t.Errorf("date: got %v, want nil", date)
				}
			} else {
				want, _ := time.Parse("2006-01-02", tt.wantDate)
				if date == nil || !date.Equal(want) {
					t.Errorf("date: got %v, want %s", date, tt.wantDate)
				}
			}
		})
	}
}

func TestFilterApply(t *testing.T) {
	t.Parallel()

	paths := []string{
		"echorouk_2025-01-10_issue_100.pdf",
		"echorouk_2025-02-10_issue_110.pdf",
		"echorouk_2025-03-10_issue_120.pdf",
		"undated_999.pdf",
	}

	t.Run("date range is inclusive", func(t *testing.T) {
		t.Parallel()

		got := Filter{StartDate: "2025-02-10", EndDate: "2025-03-10"}.Apply(paths)
		if len(got) != 2 {
			t.Fatalf("expected 2 files, got %v", got)
		}
	})

	t.Run("date filter drops files without a date", func(t *testing.T) {
		t.Parallel()

		got := Filter{StartDate: "2000-01-01"}.Apply(paths)
		for _, p := range got {
			if p == "undated_999.pdf" {
				t.Fatal("file without a date must be dropped when date filtering")
			}
		}
	})

	t.Run("issue range is inclusive", func(t *testing.T) {
		t.Parallel()

		got := Filter{StartIssue: intp(110), EndIssue: intp(120)}.Apply(paths)
		if len(got) != 2 {
			t.Fatalf("expected 2 files, got %v", got)
		}
	})

	t.Run("limit caps the result", func(t *testing.T) {
		t.Parallel()

		got := Filter{Limit: 1}.Apply(paths)
		if len(got) != 1 || got[0] != paths[0] {
			t.Fatalf("expected first path only, got %v", got)
		}
	})

	t.Run("zero filter keeps everything", func(t *testing.T) {
		t.Parallel()

		got := Filter{}.Apply(paths)
		if len(got) != len(paths) {
			t.Fatalf("expected all %d paths, got %d", len(paths), len(got))
		}
	})
}

func TestAvailableRanges(t *testing.T) {
	t.Parallel()

	r := AvailableRanges([]string{
		"echorouk_2025-01-10_issue_100.pdf",
		"echorouk_2025-03-10_issue_120.pdf",
		"frontpage.pdf",
	})

	if r.MinDate != "2025-01-10" || r.MaxDate != "2025-03-10" {
		t.Errorf("date range: got %s..%s", r.MinDate, r.MaxDate)
	}
	if r.MinIssue == nil || *r.MinIssue != 100 || r.MaxIssue == nil || *r.MaxIssue != 120 {
		t.Errorf("issue range: got %v..%v", r.MinIssue, r.MaxIssue)
	}
}

func intp(n int) *int { return &n }
