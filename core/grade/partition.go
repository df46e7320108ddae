package grade

import (
	"sort"
	"time"
)

var nowFunc = time.Now // mockable

// extraDelay separates bonus & optional grades from the last mandatory one.
const extraDelay = 24 * time.Hour

// Partition orders records for folding:
// mandatory grades first, by ascending date, then bonus & optional grades by descending normalized grade.
// Bonus & optional grades are all re-dated to the day after the last mandatory grade (now if there is none).
// records is left untouched.
func Partition(records []Record) []Record {
	mandatory := make([]Record, 0, len(records))
	extras := make([]Record, 0)
	for _, rec := range records {
		if rec.IsMandatory() {
			mandatory = append(mandatory, rec)
		} else {
			extras = append(extras, rec)
		}
	}

	sort.SliceStable(mandatory, func(i, j int) bool { return mandatory[i].Date.Before(mandatory[j].Date) })
	sort.SliceStable(extras, func(i, j int) bool { return extras[i].NormalizedGrade > extras[j].NormalizedGrade })

	extraDate := lastDate(mandatory).Add(extraDelay)
	for i := range extras {
		if !extras[i].Date.IsZero() {
			extras[i].Date = extraDate
		}
	}

	return append(mandatory, extras...)
}

func lastDate(records []Record) time.Time {
	if len(records) == 0 {
		return nowFunc()
	}
	last := records[0].Date
	for _, rec := range records[1:] {
		if rec.Date.After(last) {
			last = rec.Date
		}
	}
	return last
}
