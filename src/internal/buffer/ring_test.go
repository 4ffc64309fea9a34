// FILE: framelog/src/internal/buffer/ring_test.go
package buffer

import (
	"fmt"
	"testing"

	"framelog/src/internal/core"

	"github.com/stretchr/testify/assert"
)

func entryWithCode(code string) core.LogEntry {
	return core.LogEntry{Level: core.LevelInfo, Code: code, Message: code}
}

func TestNewRing(t *testing.T) {
	t.Run("ExplicitCapacity", func(t *testing.T) {
		r := NewRing(3)
		assert.Equal(t, 3, r.Cap())
		assert.Equal(t, 0, r.Len())
	})

	t.Run("NonPositiveCapacityUsesDefault", func(t *testing.T) {
		assert.Equal(t, DefaultCapacity, NewRing(0).Cap())
		assert.Equal(t, DefaultCapacity, NewRing(-5).Cap())
	})
}

func TestRing_Add(t *testing.T) {
	t.Run("SequenceStrictlyIncreases", func(t *testing.T) {
		r := NewRing(2)
		assert.Equal(t, uint64(1), r.Add(entryWithCode("A")))
		assert.Equal(t, uint64(2), r.Add(entryWithCode("B")))
		// Eviction does not disturb sequence assignment
		assert.Equal(t, uint64(3), r.Add(entryWithCode("C")))
	})

	t.Run("SizeIsMinOfWrittenAndCapacity", func(t *testing.T) {
		r := NewRing(3)
		for i := 0; i < 10; i++ {
			r.Add(entryWithCode(fmt.Sprintf("E%d", i)))
			want := i + 1
			if want > 3 {
				want = 3
			}
			assert.Equal(t, want, r.Len())
		}
	})

	t.Run("OverflowEvictsOldest", func(t *testing.T) {
		// Scenario: capacity 3, insert A..E, expect C,D,E and 2 overflows
		r := NewRing(3)
		for _, code := range []string{"A", "B", "C", "D", "E"} {
			r.Add(entryWithCode(code))
		}

		all := r.All()
		assert.Len(t, all, 3)
		assert.Equal(t, "C", all[0].Code)
		assert.Equal(t, "D", all[1].Code)
		assert.Equal(t, "E", all[2].Code)

		stats := r.GetStats()
		assert.Equal(t, uint64(2), stats["overflow_count"])
		assert.Equal(t, uint64(5), stats["total_written"])
	})
}

func TestRing_All(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		assert.Empty(t, NewRing(4).All())
	})

	t.Run("ChronologicalAfterManyWraps", func(t *testing.T) {
		r := NewRing(4)
		for i := 0; i < 25; i++ {
			r.Add(entryWithCode(fmt.Sprintf("E%d", i)))
		}
		all := r.All()
		assert.Len(t, all, 4)
		for i, e := range all {
			assert.Equal(t, fmt.Sprintf("E%d", 21+i), e.Code)
			assert.Equal(t, uint64(22+i), e.Sequence)
		}
	})
}

func TestRing_Last(t *testing.T) {
	r := NewRing(5)
	for _, code := range []string{"A", "B", "C", "D", "E", "F", "G"} {
		r.Add(entryWithCode(code))
	}

	t.Run("NewestFirst", func(t *testing.T) {
		last := r.Last(3)
		assert.Len(t, last, 3)
		assert.Equal(t, "G", last[0].Code)
		assert.Equal(t, "F", last[1].Code)
		assert.Equal(t, "E", last[2].Code)
	})

	t.Run("ClampsToSize", func(t *testing.T) {
		assert.Len(t, r.Last(50), 5)
	})

	t.Run("NonPositiveCount", func(t *testing.T) {
		assert.Nil(t, r.Last(0))
		assert.Nil(t, r.Last(-1))
	})

	t.Run("MatchesReversedTailOfAll", func(t *testing.T) {
		all := r.All()
		for k := 0; k <= r.Len(); k++ {
			last := r.Last(k)
			assert.Len(t, last, k)
			for i := 0; i < k; i++ {
				assert.Equal(t, all[len(all)-1-i].Code, last[i].Code,
					"k=%d i=%d", k, i)
			}
		}
	})
}

func TestRing_Filter(t *testing.T) {
	r := NewRing(10)
	for i := 0; i < 8; i++ {
		e := entryWithCode(fmt.Sprintf("E%d", i))
		if i%2 == 0 {
			e.Level = core.LevelError
		}
		r.Add(e)
	}

	t.Run("NewestFirstMatches", func(t *testing.T) {
		errs := r.Filter(func(e core.LogEntry) bool {
			return e.Level == core.LevelError
		}, 0)
		assert.Len(t, errs, 4)
		assert.Equal(t, "E6", errs[0].Code)
		assert.Equal(t, "E0", errs[3].Code)
	})

	t.Run("ShortCircuitsAtMax", func(t *testing.T) {
		errs := r.Filter(func(e core.LogEntry) bool {
			return e.Level == core.LevelError
		}, 2)
		assert.Len(t, errs, 2)
		assert.Equal(t, "E6", errs[0].Code)
		assert.Equal(t, "E4", errs[1].Code)
	})

	t.Run("NoMatches", func(t *testing.T) {
		assert.Empty(t, r.Filter(func(e core.LogEntry) bool {
			return e.Code == "missing"
		}, 0))
	})
}

func TestRing_Clear(t *testing.T) {
	r := NewRing(3)
	for _, code := range []string{"A", "B", "C", "D"} {
		r.Add(entryWithCode(code))
	}

	r.Clear()

	assert.Equal(t, 0, r.Len())
	assert.Equal(t, 3, r.Cap())
	assert.Empty(t, r.All())

	stats := r.GetStats()
	assert.Equal(t, uint64(0), stats["total_written"])
	assert.Equal(t, uint64(0), stats["overflow_count"])

	// Sequence numbers survive a clear: uniqueness holds for the ring's
	// lifetime.
	assert.Equal(t, uint64(5), r.Add(entryWithCode("E")))
}

func TestRing_GetStats(t *testing.T) {
	r := NewRing(4)
	r.Add(entryWithCode("A"))
	r.Add(entryWithCode("B"))

	stats := r.GetStats()
	assert.Equal(t, 2, stats["size"])
	assert.Equal(t, 4, stats["capacity"])
	assert.Equal(t, uint64(2), stats["total_written"])
	assert.Equal(t, uint64(0), stats["overflow_count"])
	assert.InDelta(t, 0.5, stats["utilization"], 1e-9)
}
