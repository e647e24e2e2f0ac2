package services

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"admission-portal-api/models"

	"gorm.io/gorm"
)

const (
	defaultSortKey = "applicationDate"
	defaultLimit   = 10
	maxLimit       = 100
)

// sortColumns is the allow-list of sort keys and their column names. Keys
// outside this map fall back to applicationDate.
var sortColumns = map[string]string{
	"applicationDate": "application_date",
	"createdAt":       "created_at",
	"fullName":        "full_name",
	"academicCourse":  "academic_course",
	"percentage":      "percentage",
	"status":          "status",
}

// searchColumns are OR-ed together for the free-text q filter.
var searchColumns = []string{
	"full_name", "email", "phone", "academic_course", "city", "state", "status",
}

// ListQuery is the normalized form of the admission list parameters. Build it
// with ParseListQuery; the zero value means "everything, default order,
// unbounded".
type ListQuery struct {
	Status   string
	Course   string
	Search   string
	FromDate *time.Time
	ToDate   *time.Time

	SortKey  string
	SortDesc bool

	// Paginated is false when neither page nor limit was supplied; ListAll
	// is the matching operation then.
	Paginated bool
	Page      int
	Limit     int
}

// ListMeta is the pagination envelope returned by ListPage.
type ListMeta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

// ParseListQuery normalizes raw query parameters. Invalid status values are
// dropped rather than rejected, unknown sort keys fall back to
// applicationDate, page is clamped to >= 1 and limit to [1,100].
func ParseListQuery(values url.Values) ListQuery {
	q := ListQuery{
		Course: strings.TrimSpace(values.Get("course")),
		Search: strings.TrimSpace(values.Get("q")),
	}

	if status := values.Get("status"); models.ValidStatus(status) {
		q.Status = status
	}

	if from, ok := parseDate(values.Get("fromDate")); ok {
		q.FromDate = &from
	}
	if to, ok := parseDate(values.Get("toDate")); ok {
		// Inclusive bound: a same-day toDate covers the whole day.
		to = endOfDay(to)
		q.ToDate = &to
	}

	q.SortKey = values.Get("sortKey")
	if _, ok := sortColumns[q.SortKey]; !ok {
		q.SortKey = defaultSortKey
	}
	q.SortDesc = values.Get("sortDir") != "asc"

	pageRaw := values.Get("page")
	limitRaw := values.Get("limit")
	if pageRaw == "" && limitRaw == "" {
		return q
	}

	q.Paginated = true
	q.Page = 1
	if p, err := strconv.Atoi(pageRaw); err == nil && p > 1 {
		q.Page = p
	}
	q.Limit = defaultLimit
	if l, err := strconv.Atoi(limitRaw); err == nil && l != 0 {
		q.Limit = l
	}
	if q.Limit < 1 {
		q.Limit = 1
	}
	if q.Limit > maxLimit {
		q.Limit = maxLimit
	}

	return q
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999_000_000, t.Location())
}

// Apply adds the filter conditions to db. Sorting and pagination are applied
// separately so count queries can share the filtered query.
func (q ListQuery) Apply(db *gorm.DB) *gorm.DB {
	if q.Status != "" {
		db = db.Where("status = ?", q.Status)
	}
	if q.Course != "" {
		db = db.Where("academic_course = ?", q.Course)
	}

	if q.Search != "" {
		term := "%" + strings.ToLower(q.Search) + "%"
		var (
			clauses []string
			args    []interface{}
		)
		for _, col := range searchColumns {
			clauses = append(clauses, "LOWER("+col+") LIKE ?")
			args = append(args, term)
		}
		db = db.Where(strings.Join(clauses, " OR "), args...)
	}

	// A record matches the range if either its application date or its
	// created-at timestamp falls inside it.
	switch {
	case q.FromDate != nil && q.ToDate != nil:
		db = db.Where(
			"(application_date >= ? AND application_date <= ?) OR (created_at >= ? AND created_at <= ?)",
			*q.FromDate, *q.ToDate, *q.FromDate, *q.ToDate,
		)
	case q.FromDate != nil:
		db = db.Where("application_date >= ? OR created_at >= ?", *q.FromDate, *q.FromDate)
	case q.ToDate != nil:
		db = db.Where("application_date <= ? OR created_at <= ?", *q.ToDate, *q.ToDate)
	}

	return db
}

// OrderClause returns the ORDER BY expression for the query.
func (q ListQuery) OrderClause() string {
	col := sortColumns[q.SortKey]
	if col == "" {
		col = sortColumns[defaultSortKey]
	}
	dir := "ASC"
	if q.SortDesc {
		dir = "DESC"
	}
	return col + " " + dir
}

// Offset returns the row offset for paginated mode.
func (q ListQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

// TotalPages computes the page count for a result set size.
func (q ListQuery) TotalPages(total int64) int {
	if !q.Paginated || q.Limit == 0 {
		return 1
	}
	pages := (total + int64(q.Limit) - 1) / int64(q.Limit)
	if pages < 1 {
		pages = 1
	}
	return int(pages)
}
