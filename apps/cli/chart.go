package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/pkg/errors"

	"github.com/trezcool/gradetrend/core"
	"github.com/trezcool/gradetrend/core/grade"
)

const dateLayout = "02-01-2006"

// chart prints both running averages, one point per line.
func (cli *commandLine) chart(path string, req grade.ChartRequest) error {
	svc, err := cli.service(path)
	if err != nil {
		return err
	}
	chart, err := svc.Chart(context.Background(), req)
	if err != nil {
		return describe(err)
	}

	w := tabwriter.NewWriter(cli.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SERIES\tDATE\tAVERAGE")
	for _, s := range []struct {
		name   string
		series grade.Series
	}{
		{name: grade.StudentSignal.String(), series: chart.Student},
		{name: grade.ClassSignal.String(), series: chart.Class},
	} {
		for _, p := range s.series.Points() {
			fmt.Fprintf(w, "%s\t%s\t%.2f\n", s.name, p.Date.Format(dateLayout), p.Average)
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "pass mark: %.2f\n", chart.PassMark)
	return nil
}

func (cli *commandLine) subjects(path string, creds grade.Credentials) error {
	svc, err := cli.service(path)
	if err != nil {
		return err
	}
	subjects, err := svc.Subjects(context.Background(), creds)
	if err != nil {
		return describe(err)
	}
	for _, subject := range subjects {
		fmt.Fprintln(cli.out, subject)
	}
	return nil
}

// describe flattens validation errors into a readable error.
func describe(err error) error {
	vErr, ok := errors.Cause(err).(*core.ValidationError)
	if !ok || len(vErr.Fields) == 0 {
		return err
	}
	msg := vErr.Error()
	for _, fe := range vErr.Fields {
		msg += fmt.Sprintf("\n  %s: %s", fe.Field, fe.Error)
	}
	return errors.New(msg)
}
