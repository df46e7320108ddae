package grade

import (
	"encoding/json"
	"time"
)

const (
	// AllSubjects disables subject filtering.
	AllSubjects = "all"

	// Scale every average is expressed on.
	Scale = 20.0

	// PassMark is the reference line drawn next to the averages.
	PassMark = Scale / 2
)

// Decimal is a number as reported by a grade source: "12,50", "12.5" or 12.5.
type Decimal string

// UnmarshalJSON accepts a JSON string, number or null.
func (d *Decimal) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*d = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*d = Decimal(s)
		return nil
	}
	*d = Decimal(b)
	return nil
}

// RawGrade is a graded assignment the way a grade source reports it.
type RawGrade struct {
	ID          string    `json:"id" yaml:"id"`
	Grade       Decimal   `json:"grade" yaml:"grade" validate:"required"` // may be a marker, eg. "NonNote"
	OutOf       Decimal   `json:"out_of" yaml:"out_of" validate:"required,decimal"`
	Average     Decimal   `json:"average" yaml:"average" validate:"required,decimal"`
	Coefficient Decimal   `json:"coefficient" yaml:"coefficient" validate:"required,decimal"`
	IsBonus     bool      `json:"is_bonus" yaml:"is_bonus"`
	IsOptional  bool      `json:"is_optional" yaml:"is_optional"`
	Subject     string    `json:"subject" yaml:"subject"`
	Period      string    `json:"period" yaml:"period"`
	Date        time.Time `json:"date" yaml:"date"`
}

// Record is a normalized RawGrade.
// Average is the class average; the Normalized* fields are expressed on Scale.
type Record struct {
	Grade             float64
	OutOf             float64
	Average           float64
	Coefficient       float64
	NormalizedGrade   float64
	NormalizedAverage float64
	IsBonus           bool
	IsOptional        bool
	Subject           string
	Period            string
	Date              time.Time
}

// IsMandatory reports whether the record is neither a bonus nor an optional grade.
func (rec Record) IsMandatory() bool {
	return !rec.IsBonus && !rec.IsOptional
}

// Signal selects which figure of a Record is averaged.
type Signal int

const (
	StudentSignal Signal = iota // the student's own grade
	ClassSignal                 // the class average
)

func (s Signal) String() string {
	if s == ClassSignal {
		return "class"
	}
	return "student"
}

// values returns the normalized and raw figures selected by s.
func (s Signal) values(rec Record) (normalized, raw float64) {
	if s == ClassSignal {
		return rec.NormalizedAverage, rec.Average
	}
	return rec.NormalizedGrade, rec.Grade
}

// Point is one average of a Series, as rendered in JSON.
type Point struct {
	Date    time.Time `json:"date"`
	Average float64   `json:"average"`
}

// Series holds a running average: Averages[i] was reached at Dates[i].
type Series struct {
	Averages []float64
	Dates    []time.Time
}

func newSeries(capacity int) Series {
	return Series{
		Averages: make([]float64, 0, capacity),
		Dates:    make([]time.Time, 0, capacity),
	}
}

func (s *Series) add(avg float64, date time.Time) {
	s.Averages = append(s.Averages, avg)
	s.Dates = append(s.Dates, date)
}

// Len returns the number of averages.
func (s Series) Len() int { return len(s.Averages) }

// Points pairs each average with its date.
func (s Series) Points() []Point {
	points := make([]Point, 0, len(s.Averages))
	for i, avg := range s.Averages {
		points = append(points, Point{Date: s.Dates[i], Average: avg})
	}
	return points
}

// MarshalJSON encodes the series as its Points.
func (s Series) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Points())
}

// Last returns the latest average, or false if the series is empty.
func (s Series) Last() (float64, bool) {
	if len(s.Averages) == 0 {
		return 0, false
	}
	return s.Averages[len(s.Averages)-1], true
}

// Chart is what gets handed over to a renderer.
type Chart struct {
	Student  Series   `json:"student"`
	Class    Series   `json:"class"`
	Subjects []string `json:"subjects"`
	PassMark float64  `json:"pass_mark"`
}
