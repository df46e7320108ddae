package grade

import "sort"

// Assemble computes both the student & class running averages over already partitioned records.
func Assemble(records []Record) Chart {
	return Chart{
		Student:  RunningAverage(records, StudentSignal),
		Class:    RunningAverage(records, ClassSignal),
		Subjects: []string{},
		PassMark: PassMark,
	}
}

// FilterBySubject keeps grades of the given subject. An empty subject or AllSubjects keeps everything.
func FilterBySubject(raws []RawGrade, subject string) []RawGrade {
	if subject == "" || subject == AllSubjects {
		return raws
	}
	return filter(raws, func(raw RawGrade) bool { return raw.Subject == subject })
}

// FilterByPeriod keeps grades of the given period. An empty period keeps everything.
func FilterByPeriod(raws []RawGrade, period string) []RawGrade {
	if period == "" {
		return raws
	}
	return filter(raws, func(raw RawGrade) bool { return raw.Period == period })
}

func filter(raws []RawGrade, keep func(RawGrade) bool) []RawGrade {
	kept := make([]RawGrade, 0, len(raws))
	for _, raw := range raws {
		if keep(raw) {
			kept = append(kept, raw)
		}
	}
	return kept
}

// Subjects returns the sorted distinct subjects of raws.
func Subjects(raws []RawGrade) []string {
	seen := make(map[string]struct{})
	subjects := make([]string, 0)
	for _, raw := range raws {
		if raw.Subject == "" {
			continue
		}
		if _, ok := seen[raw.Subject]; !ok {
			seen[raw.Subject] = struct{}{}
			subjects = append(subjects, raw.Subject)
		}
	}
	sort.Strings(subjects)
	return subjects
}
