package grade

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(d int) time.Time {
	return time.Date(2024, time.September, d, 8, 0, 0, 0, time.UTC)
}

func TestPartition(t *testing.T) {
	records := []Record{
		{NormalizedGrade: 8, IsOptional: true, Date: day(2)},
		{NormalizedGrade: 12, Date: day(10)},
		{NormalizedGrade: 18, IsBonus: true, Date: day(1)},
		{NormalizedGrade: 9, Date: day(3)},
		{NormalizedGrade: 14, IsBonus: true, IsOptional: true, Date: day(20)},
		{NormalizedGrade: 11, Date: day(7)},
		{NormalizedGrade: 15, IsOptional: true}, // no date
	}
	orig := make([]Record, len(records))
	copy(orig, records)

	got := Partition(records)

	extraDate := day(11)
	want := []Record{
		{NormalizedGrade: 9, Date: day(3)},
		{NormalizedGrade: 11, Date: day(7)},
		{NormalizedGrade: 12, Date: day(10)},
		{NormalizedGrade: 18, IsBonus: true, Date: extraDate},
		{NormalizedGrade: 15, IsOptional: true},
		{NormalizedGrade: 14, IsBonus: true, IsOptional: true, Date: extraDate},
		{NormalizedGrade: 8, IsOptional: true, Date: extraDate},
	}
	assert.Equal(t, want, got)
	assert.Equal(t, orig, records, "input must not be modified")
}

func TestPartition_stable(t *testing.T) {
	records := []Record{
		{Subject: "a", NormalizedGrade: 10, Date: day(5)},
		{Subject: "b", NormalizedGrade: 12, Date: day(5)},
		{Subject: "c", NormalizedGrade: 16, IsBonus: true, Date: day(1)},
		{Subject: "d", NormalizedGrade: 16, IsOptional: true, Date: day(2)},
	}

	got := Partition(records)

	subjects := make([]string, 0, len(got))
	for _, rec := range got {
		subjects = append(subjects, rec.Subject)
	}
	assert.Equal(t, []string{"a", "b", "c", "d"}, subjects)
}

func TestPartition_noMandatory(t *testing.T) {
	now := time.Date(2024, time.December, 1, 15, 4, 5, 0, time.UTC)
	nowFunc = func() time.Time { return now }
	defer func() { nowFunc = time.Now }()

	got := Partition([]Record{
		{NormalizedGrade: 4, IsBonus: true, Date: day(3)},
		{NormalizedGrade: 17, IsOptional: true, Date: day(4)},
	})

	want := []Record{
		{NormalizedGrade: 17, IsOptional: true, Date: now.Add(24 * time.Hour)},
		{NormalizedGrade: 4, IsBonus: true, Date: now.Add(24 * time.Hour)},
	}
	assert.Equal(t, want, got)
}

func TestPartition_empty(t *testing.T) {
	assert.Empty(t, Partition(nil))
}
