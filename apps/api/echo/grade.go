package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/gradetrend/core/grade"
)

var contextCredentialsKey = "credentials"

type gradeApi struct {
	svc      *grade.Service
	validate *validator.Validate
}

func registerGradeAPI(g *echo.Group, svc *grade.Service, validate *validator.Validate) {
	api := gradeApi{
		svc:      svc,
		validate: validate,
	}

	// credentials are forwarded to the grade source on every request; nothing is kept server side
	g.POST("/averages", api.chart)
	g.POST("/averages/compute", api.compute)
	g.POST("/subjects", api.subjects)
}

// Handlers

func (api *gradeApi) chart(ctx echo.Context) error {
	var data grade.ChartRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to ChartRequest")
	}
	if err := api.validate.Struct(data); err != nil {
		return err
	}
	ctx.Set(contextCredentialsKey, data.Credentials)

	chart, err := api.svc.Chart(ctx.Request().Context(), data)
	if err != nil {
		if errors.Cause(err) == grade.ErrInvalidCredentials {
			return errInvalidCredentials
		}
		return errors.Wrap(err, "computing chart")
	}
	return ctx.JSON(http.StatusOK, chart)
}

func (api *gradeApi) compute(ctx echo.Context) error {
	var data grade.ComputeRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to ComputeRequest")
	}
	if err := api.validate.Struct(data); err != nil {
		return err
	}

	chart, err := api.svc.Compute(data)
	if err != nil {
		return errors.Wrap(err, "computing chart")
	}
	return ctx.JSON(http.StatusOK, chart)
}

func (api *gradeApi) subjects(ctx echo.Context) error {
	var data grade.Credentials
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Credentials")
	}
	if err := api.validate.Struct(data); err != nil {
		return err
	}
	ctx.Set(contextCredentialsKey, data)

	subjects, err := api.svc.Subjects(ctx.Request().Context(), data)
	if err != nil {
		if errors.Cause(err) == grade.ErrInvalidCredentials {
			return errInvalidCredentials
		}
		return errors.Wrap(err, "querying subjects")
	}
	return ctx.JSON(http.StatusOK, subjects)
}
