package services

import (
	"net/url"
	"testing"
	"time"
)

func params(pairs ...string) url.Values {
	values := url.Values{}
	for i := 0; i+1 < len(pairs); i += 2 {
		values.Set(pairs[i], pairs[i+1])
	}
	return values
}

func TestParseListQueryDefaultsToUnbounded(t *testing.T) {
	q := ParseListQuery(params())

	if q.Paginated {
		t.Fatal("expected unbounded mode when neither page nor limit is given")
	}
	if q.SortKey != "applicationDate" {
		t.Fatalf("expected default sort key applicationDate, got %q", q.SortKey)
	}
	if !q.SortDesc {
		t.Fatal("expected default sort direction to be descending")
	}
	if got := q.OrderClause(); got != "application_date DESC" {
		t.Fatalf("unexpected order clause: %q", got)
	}
}

func TestParseListQueryPaginationClamps(t *testing.T) {
	cases := []struct {
		name      string
		page      string
		limit     string
		wantPage  int
		wantLimit int
	}{
		{"defaults", "1", "", 1, 10},
		{"zero page", "0", "10", 1, 10},
		{"negative page", "-3", "10", 1, 10},
		{"limit above cap", "1", "1000", 1, 100},
		{"zero limit", "2", "0", 2, 10},
		{"negative limit", "1", "-5", 1, 1},
		{"garbage limit", "1", "abc", 1, 10},
		{"only limit given", "", "25", 1, 25},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q := ParseListQuery(params("page", tc.page, "limit", tc.limit))
			if !q.Paginated {
				t.Fatal("expected paginated mode")
			}
			if q.Page != tc.wantPage {
				t.Fatalf("page: got %d want %d", q.Page, tc.wantPage)
			}
			if q.Limit != tc.wantLimit {
				t.Fatalf("limit: got %d want %d", q.Limit, tc.wantLimit)
			}
		})
	}
}

func TestParseListQuerySortAllowList(t *testing.T) {
	q := ParseListQuery(params("sortKey", "bogusField"))
	if q.SortKey != "applicationDate" {
		t.Fatalf("expected fallback to applicationDate, got %q", q.SortKey)
	}
	if got := q.OrderClause(); got != "application_date DESC" {
		t.Fatalf("unexpected order clause: %q", got)
	}

	q = ParseListQuery(params("sortKey", "percentage", "sortDir", "asc"))
	if got := q.OrderClause(); got != "percentage ASC" {
		t.Fatalf("unexpected order clause: %q", got)
	}

	// Any direction other than asc sorts descending.
	q = ParseListQuery(params("sortKey", "fullName", "sortDir", "sideways"))
	if got := q.OrderClause(); got != "full_name DESC" {
		t.Fatalf("unexpected order clause: %q", got)
	}
}

func TestParseListQueryStatusFilter(t *testing.T) {
	q := ParseListQuery(params("status", "Approved"))
	if q.Status != "Approved" {
		t.Fatalf("expected status filter Approved, got %q", q.Status)
	}

	// Unknown status values are dropped, not rejected.
	q = ParseListQuery(params("status", "Bogus"))
	if q.Status != "" {
		t.Fatalf("expected invalid status to be ignored, got %q", q.Status)
	}
}

func TestParseListQueryToDateCoversWholeDay(t *testing.T) {
	q := ParseListQuery(params("toDate", "2025-03-10"))
	if q.ToDate == nil {
		t.Fatal("expected toDate to be parsed")
	}

	want := time.Date(2025, 3, 10, 23, 59, 59, 999_000_000, time.Local)
	if !q.ToDate.Equal(want) {
		t.Fatalf("expected end-of-day bound %v, got %v", want, *q.ToDate)
	}

	// A record submitted at 23:00 the same day falls inside the bound.
	record := time.Date(2025, 3, 10, 23, 0, 0, 0, time.Local)
	if record.After(*q.ToDate) {
		t.Fatal("same-day record should be inside the toDate bound")
	}

	q = ParseListQuery(params("toDate", "2025-03-09"))
	if !record.After(*q.ToDate) {
		t.Fatal("record should fall outside an earlier toDate bound")
	}
}

func TestParseListQueryDates(t *testing.T) {
	q := ParseListQuery(params("fromDate", "2025-01-15"))
	if q.FromDate == nil {
		t.Fatal("expected fromDate to be parsed")
	}
	want := time.Date(2025, 1, 15, 0, 0, 0, 0, time.Local)
	if !q.FromDate.Equal(want) {
		t.Fatalf("fromDate: got %v want %v", *q.FromDate, want)
	}

	q = ParseListQuery(params("fromDate", "not-a-date"))
	if q.FromDate != nil {
		t.Fatal("expected unparseable fromDate to be ignored")
	}
}

func TestTotalPages(t *testing.T) {
	q := ParseListQuery(params("page", "1", "limit", "10"))

	if got := q.TotalPages(25); got != 3 {
		t.Fatalf("25 rows / limit 10: got %d pages, want 3", got)
	}
	if got := q.TotalPages(0); got != 1 {
		t.Fatalf("empty result: got %d pages, want 1", got)
	}
	if got := q.TotalPages(10); got != 1 {
		t.Fatalf("exact fit: got %d pages, want 1", got)
	}

	unbounded := ParseListQuery(params())
	if got := unbounded.TotalPages(500); got != 1 {
		t.Fatalf("unbounded mode: got %d pages, want 1", got)
	}
}

func TestOffset(t *testing.T) {
	q := ParseListQuery(params("page", "3", "limit", "10"))
	if got := q.Offset(); got != 20 {
		t.Fatalf("offset: got %d want 20", got)
	}
}
