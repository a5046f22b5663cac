package domain

import (
	"testing"
	"time"
)

func TestTimestamps_Touch(t *testing.T) {
	t.Parallel()

	first := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	second := first.Add(time.Hour)

	var ts Timestamps
	ts.Touch(first)

	if !ts.CreatedAt.Equal(first) || !ts.UpdatedAt.Equal(first) {
		t.Fatalf("after first Touch: %+v, want both %v", ts, first)
	}

	ts.Touch(second)

	if !ts.CreatedAt.Equal(first) {
		t.Errorf("CreatedAt = %v, want %v", ts.CreatedAt, first)
	}
	if !ts.UpdatedAt.Equal(second) {
		t.Errorf("UpdatedAt = %v, want %v", ts.UpdatedAt, second)
	}
}
