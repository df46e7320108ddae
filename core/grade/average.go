package grade

// Accumulator is the state of a running average fold.
// ScaleWeight is the sum of OutOf*Coefficient and GradeWeight the sum of Coefficient*grade,
// over every grade incorporated so far.
type Accumulator struct {
	Average     float64
	ScaleWeight float64
	GradeWeight float64
}

// Step folds rec into acc and reports whether rec produced a new point.
// When it did not, the returned Accumulator equals acc.
//
//  - a bonus grade above half its scale raises the average without adding weight;
//    it is ignored until some weight exists
//  - an optional grade below the current average is ignored
//  - any other grade is weighted in
func (acc Accumulator) Step(rec Record, signal Signal) (Accumulator, bool) {
	normalized, raw := signal.values(rec)
	threshold := rec.OutOf / 2

	switch {
	case rec.IsBonus && raw > threshold:
		if acc.ScaleWeight == 0 {
			return acc, false
		}
		acc.Average += Scale * (raw - threshold) * rec.Coefficient / acc.ScaleWeight
		return acc, true

	case rec.IsOptional && normalized < acc.Average:
		return acc, false

	default:
		scaleWeight := acc.ScaleWeight + rec.OutOf*rec.Coefficient
		if scaleWeight == 0 { // zero coefficients only
			return acc, false
		}
		acc.ScaleWeight = scaleWeight
		acc.GradeWeight += rec.Coefficient * raw
		acc.Average = Scale * acc.GradeWeight / acc.ScaleWeight
		return acc, true
	}
}

// RunningAverage folds records, in order, into the series of averages they lead to.
func RunningAverage(records []Record, signal Signal) Series {
	series := newSeries(len(records))
	var acc Accumulator
	for _, rec := range records {
		var ok bool
		if acc, ok = acc.Step(rec, signal); ok {
			series.add(acc.Average, rec.Date)
		}
	}
	return series
}
