package grade

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var raws = []RawGrade{
	{ID: "1", Subject: "PHYSIQUE-CHIMIE", Period: "Trimestre 1"},
	{ID: "2", Subject: "MATHEMATIQUES", Period: "Trimestre 1"},
	{ID: "3", Subject: "ANGLAIS LV1", Period: "Trimestre 2"},
	{ID: "4", Subject: "MATHEMATIQUES", Period: "Trimestre 2"},
	{ID: "5", Period: "Trimestre 2"},
}

func ids(raws []RawGrade) []string {
	got := make([]string, 0, len(raws))
	for _, raw := range raws {
		got = append(got, raw.ID)
	}
	return got
}

func TestFilterBySubject(t *testing.T) {
	tests := []struct {
		name    string
		subject string
		want    []string
	}{
		{name: "no filter", want: []string{"1", "2", "3", "4", "5"}},
		{name: "all", subject: AllSubjects, want: []string{"1", "2", "3", "4", "5"}},
		{name: "maths", subject: "MATHEMATIQUES", want: []string{"2", "4"}},
		{name: "unknown", subject: "LATIN", want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(FilterBySubject(raws, tt.subject)))
		})
	}
}

func TestFilterByPeriod(t *testing.T) {
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, ids(FilterByPeriod(raws, "")))
	assert.Equal(t, []string{"3", "4", "5"}, ids(FilterByPeriod(raws, "Trimestre 2")))
}

func TestSubjects(t *testing.T) {
	assert.Equal(t, []string{"ANGLAIS LV1", "MATHEMATIQUES", "PHYSIQUE-CHIMIE"}, Subjects(raws))
	assert.Equal(t, []string{}, Subjects(nil))
}

func TestAssemble(t *testing.T) {
	d1, d2 := day(1), day(2)
	records := []Record{record(12, 10, 20, 1, d1), optional(record(9, 14, 20, 1, d2))}

	chart := Assemble(records)

	// the student's optional grade is skipped, the class one is not
	assert.Equal(t, []float64{12}, chart.Student.Averages)
	assert.Equal(t, []time.Time{d1}, chart.Student.Dates)
	assert.Equal(t, []float64{10, 12}, chart.Class.Averages)
	assert.Equal(t, []time.Time{d1, d2}, chart.Class.Dates)
	assert.Equal(t, PassMark, chart.PassMark)
}

func TestChart_MarshalJSON(t *testing.T) {
	d1 := time.Date(2024, time.September, 1, 0, 0, 0, 0, time.UTC)
	chart := Chart{
		Student:  Series{Averages: []float64{12.5}, Dates: []time.Time{d1}},
		Class:    newSeries(0),
		Subjects: []string{"MATHEMATIQUES"},
		PassMark: PassMark,
	}

	data, err := json.Marshal(chart)
	require.NoError(t, err)
	assert.JSONEq(
		t,
		`{"student":[{"date":"2024-09-01T00:00:00Z","average":12.5}],"class":[],"subjects":["MATHEMATIQUES"],"pass_mark":10}`,
		string(data),
	)
}

func TestDecimal_UnmarshalJSON(t *testing.T) {
	var raw RawGrade
	err := json.Unmarshal([]byte(`{"grade":"12,50","out_of":20,"average":9.75,"coefficient":null}`), &raw)
	require.NoError(t, err)
	assert.Equal(t, Decimal("12,50"), raw.Grade)
	assert.Equal(t, Decimal("20"), raw.OutOf)
	assert.Equal(t, Decimal("9.75"), raw.Average)
	assert.Equal(t, Decimal(""), raw.Coefficient)
}
