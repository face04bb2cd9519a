// Package util holds small helpers shared across layers.
package util

import (
	"fmt"
	"time"
)

// GenerateReferenceNumber builds a timestamp-based reference such as
// RPT-20250901120000. Uniqueness holds at second granularity, which is enough
// for manually filed documents.
func GenerateReferenceNumber(prefix string, now time.Time) string {
	return fmt.Sprintf("%s-%s", prefix, now.Format("20060102150405"))
}

// FormatDate renders a timestamp the way barangay paperwork spells dates,
// e.g. "September 01, 2025 at 03:04 PM".
func FormatDate(t time.Time) string {
	return t.Format("January 02, 2006 at 03:04 PM")
}

// Pagination describes one page of an offset-paginated listing.
type Pagination struct {
	Skip    int  `json:"skip"`
	Limit   int  `json:"limit"`
	Count   int  `json:"count"`
	HasMore bool `json:"has_more"`
}

// NewPagination derives page metadata from the applied offset, limit and the
// number of records returned. HasMore is a heuristic: a full page suggests
// more records may follow.
func NewPagination(skip, limit, count int) Pagination {
	return Pagination{
		Skip:    skip,
		Limit:   limit,
		Count:   count,
		HasMore: count == limit,
	}
}
