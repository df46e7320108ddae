package grade

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/trezcool/gradetrend/core"
)

var ErrInvalidGrades = errors.New("invalid grades")

// Normalize converts raw grades into Records.
// Every malformed grade is reported in the returned *core.ValidationError, in which case no Record is returned.
func Normalize(raws []RawGrade) ([]Record, error) {
	records := make([]Record, 0, len(raws))
	var fldErrs []core.FieldError

	for i, raw := range raws {
		rec, errs := normalize(raw)
		for _, fe := range errs {
			fldErrs = append(fldErrs, core.FieldError{
				Field: fmt.Sprintf("grades[%d].%s", i, fe.Field),
				Error: fe.Error,
			})
		}
		if len(errs) == 0 {
			records = append(records, rec)
		}
	}

	if len(fldErrs) > 0 {
		return nil, core.NewValidationError(ErrInvalidGrades, fldErrs...)
	}
	return records, nil
}

func normalize(raw RawGrade) (Record, []core.FieldError) {
	var fldErrs []core.FieldError
	parse := func(field string, d Decimal) float64 {
		f, err := core.ParseDecimal(string(d))
		if err != nil {
			fldErrs = append(fldErrs, core.FieldError{Field: field, Error: "must be a number"})
		}
		return f
	}

	rec := Record{
		Grade:       parse("grade", raw.Grade),
		OutOf:       parse("out_of", raw.OutOf),
		Average:     parse("average", raw.Average),
		Coefficient: parse("coefficient", raw.Coefficient),
		IsBonus:     raw.IsBonus,
		IsOptional:  raw.IsOptional,
		Subject:     raw.Subject,
		Period:      raw.Period,
		Date:        raw.Date,
	}
	if len(fldErrs) > 0 {
		return Record{}, fldErrs
	}

	if rec.OutOf <= 0 {
		fldErrs = append(fldErrs, core.FieldError{Field: "out_of", Error: "must be greater than 0"})
	}
	if rec.Coefficient < 0 {
		fldErrs = append(fldErrs, core.FieldError{Field: "coefficient", Error: "must be 0 or greater"})
	}
	if len(fldErrs) > 0 {
		return Record{}, fldErrs
	}

	rec.NormalizedGrade = toScale(rec.Grade, rec.OutOf)
	rec.NormalizedAverage = toScale(rec.Average, rec.OutOf)
	return rec, nil
}

func toScale(value, outOf float64) float64 {
	if outOf == Scale {
		return value
	}
	return value * Scale / outOf
}
