package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(d int) time.Time {
	return time.Date(2025, 6, d, 10, 0, 0, 0, time.UTC)
}

func TestRangesOverlap(t *testing.T) {
	testCases := []struct {
		name     string
		aOut     time.Time
		aDue     time.Time
		bOut     time.Time
		bDue     time.Time
		expected bool
	}{
		{"touching endpoints do not overlap", day(10), day(20), day(20), day(28), false},
		{"partial overlap", day(10), day(20), day(15), day(25), true},
		{"identical ranges overlap", day(10), day(20), day(10), day(20), true},
		{"contained range overlaps", day(10), day(20), day(12), day(14), true},
		{"disjoint ranges", day(1), day(5), day(6), day(9), false},
		{"reversed touching endpoints", day(20), day(28), day(10), day(20), false},
		{"one minute of overlap", day(10), day(20).Add(time.Minute), day(20), day(25), true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, RangesOverlap(tc.aOut, tc.aDue, tc.bOut, tc.bDue))
			// The predicate is symmetric.
			assert.Equal(t, tc.expected, RangesOverlap(tc.bOut, tc.bDue, tc.aOut, tc.aDue))
		})
	}
}
