package util

import (
	"testing"
	"time"
)

func TestGenerateReferenceNumber(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 9, 1, 12, 30, 45, 0, time.UTC)
	if got := GenerateReferenceNumber("RPT", now); got != "RPT-20250901123045" {
		t.Fatalf("GenerateReferenceNumber = %s, want RPT-20250901123045", got)
	}
}

func TestFormatDate(t *testing.T) {
	t.Parallel()

	ts := time.Date(2025, 9, 1, 15, 4, 0, 0, time.UTC)
	if got := FormatDate(ts); got != "September 01, 2025 at 03:04 PM" {
		t.Fatalf("FormatDate = %s", got)
	}
}

func TestNewPagination(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		skip    int
		limit   int
		count   int
		hasMore bool
	}{
		{name: "full page", skip: 0, limit: 100, count: 100, hasMore: true},
		{name: "short page", skip: 100, limit: 100, count: 50, hasMore: false},
		{name: "empty page", skip: 200, limit: 100, count: 0, hasMore: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := NewPagination(tt.skip, tt.limit, tt.count)
			if p.HasMore != tt.hasMore {
				t.Fatalf("HasMore = %v, want %v", p.HasMore, tt.hasMore)
			}
			if p.Skip != tt.skip || p.Limit != tt.limit || p.Count != tt.count {
				t.Fatalf("unexpected pagination: %+v", p)
			}
		})
	}
}
