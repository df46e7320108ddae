package grade

import (
	"context"

	"github.com/pkg/errors"

	"github.com/trezcool/gradetrend/core"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type (
	// Source is any grade portal able to list a student's grades.
	Source interface {
		// Grades returns all the grades of the student identified by creds.
		// It fails with ErrInvalidCredentials if creds are rejected.
		Grades(ctx context.Context, creds Credentials) ([]RawGrade, error)
	}

	Credentials struct {
		Username string `json:"username" validate:"required,notblank_"`
		Password string `json:"password" validate:"required"`
	}

	// ChartRequest asks for the chart of the grades fetched from the Source.
	ChartRequest struct {
		Credentials
		Subject string `json:"subject"`
		Period  string `json:"period"`
	}

	// ComputeRequest asks for the chart of the provided grades.
	ComputeRequest struct {
		Grades  []RawGrade `json:"grades" validate:"dive"`
		Subject string     `json:"subject"`
		Period  string     `json:"period"`
	}

	Options struct {
		AllSubjectsLabel string   // alias of AllSubjects
		NotGradedMarkers []string // grades reported as such are dropped
		ZeroMarkers      []string // grades reported as such count as 0
	}

	Service struct {
		source    Source
		allLabel  string
		notGraded map[string]struct{}
		zero      map[string]struct{}
	}
)

func NewService(source Source, opts Options) *Service {
	return &Service{
		source:    source,
		allLabel:  core.CleanString(opts.AllSubjectsLabel),
		notGraded: toSet(opts.NotGradedMarkers),
		zero:      toSet(opts.ZeroMarkers),
	}
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[core.CleanString(v, true /* lower */)] = struct{}{}
	}
	return set
}

// Chart fetches the requester's grades and computes their chart.
func (svc *Service) Chart(ctx context.Context, req ChartRequest) (Chart, error) {
	raws, err := svc.source.Grades(ctx, req.Credentials)
	if err != nil {
		return Chart{}, errors.Wrap(err, "fetching grades")
	}
	return svc.chart(raws, req.Subject, req.Period)
}

// Compute computes the chart of the given grades.
func (svc *Service) Compute(req ComputeRequest) (Chart, error) {
	return svc.chart(req.Grades, req.Subject, req.Period)
}

// Subjects lists every subject the requester has grades in.
func (svc *Service) Subjects(ctx context.Context, creds Credentials) ([]string, error) {
	raws, err := svc.source.Grades(ctx, creds)
	if err != nil {
		return nil, errors.Wrap(err, "fetching grades")
	}
	return Subjects(svc.graded(raws)), nil
}

func (svc *Service) chart(raws []RawGrade, subject, period string) (Chart, error) {
	subject = core.CleanString(subject)
	if subject == svc.allLabel {
		subject = AllSubjects
	}

	raws = svc.graded(raws)
	raws = FilterByPeriod(raws, core.CleanString(period))
	raws = FilterBySubject(raws, subject)

	records, err := Normalize(raws)
	if err != nil {
		return Chart{}, errors.Wrap(err, "normalizing grades")
	}

	chart := Assemble(Partition(records))
	chart.Subjects = Subjects(raws)
	return chart, nil
}

// graded drops not-graded grades and zeroes zero-valued ones.
func (svc *Service) graded(raws []RawGrade) []RawGrade {
	graded := make([]RawGrade, 0, len(raws))
	for _, raw := range raws {
		marker := core.CleanString(string(raw.Grade), true /* lower */)
		if _, ok := svc.notGraded[marker]; ok {
			continue
		}
		if _, ok := svc.zero[marker]; ok {
			raw.Grade = "0"
		}
		graded = append(graded, raw)
	}
	return graded
}
