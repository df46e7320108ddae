package main

import (
	"context"
	"expvar"
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"

	echoapi "github.com/trezcool/gradetrend/apps/api/echo"
	"github.com/trezcool/gradetrend/core"
	"github.com/trezcool/gradetrend/core/grade"
	logsvc "github.com/trezcool/gradetrend/services/logger"
	filedb "github.com/trezcool/gradetrend/storage/file"
	inmemdb "github.com/trezcool/gradetrend/storage/inmem"
)

// TODO: swap the fixtures portal for a client of the school's portal once its API is documented.
func main() {
	// =========================================================================
	// Set up Dependencies

	conf := core.NewConfig()

	// set up loggers
	logger := logsvc.NewRollbarLogger(
		log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)
	logger.Enable(!conf.Debug)

	// set up grade source
	repo := inmemdb.NewGradeRepository(inmemdb.Open())
	if err := filedb.Load(conf.Grades.SourceFile, repo); err != nil {
		logger.Fatal(fmt.Sprintf("loading grades: %v", err), err)
	}

	// set up services
	gradeSvc := grade.NewService(repo, grade.Options{
		AllSubjectsLabel: conf.Grades.AllSubjectsLabel,
		NotGradedMarkers: conf.Grades.NotGradedMarkers,
		ZeroMarkers:      conf.Grades.ZeroMarkers,
	})

	// =========================================================================
	// Initialize App

	logger.Info(fmt.Sprintf("Application initializing : version %q", conf.Build))
	defer logger.Info("Application stopped")

	validate, translator := core.NewValidator()

	// =========================================================================
	// Start Debug Service
	//
	// /debug/pprof - Added to the default mux by importing the net/http/pprof package.
	// /debug/vars - Added to the default mux by importing the expvar package.

	// Expose important info under /debug/vars.
	expvar.NewString("build").Set(conf.Build)
	expvar.NewString("env").Set(conf.Env)

	go func() {
		if err := http.ListenAndServe(conf.Server.DebugAddress, http.DefaultServeMux); err != nil {
			logger.Error(fmt.Sprintf("debug server closed: %v", err), err)
		}
	}()

	// =========================================================================
	// Start API Service

	server := echoapi.NewServer(
		echoapi.Options{
			Address:        conf.Server.Address,
			Debug:          conf.Debug,
			TestMode:       conf.TestMode,
			DisableReqLogs: conf.Server.DisableReqLogs,
			AppName:        conf.AppName,
		},
		echoapi.Deps{
			Logger:     logger,
			GradeSvc:   gradeSvc,
			Validate:   validate,
			Translator: translator,
		},
	)

	go func() {
		server.Start()
	}()

	// =========================================================================
	// Shutdown

	select {
	case err := <-server.Errors():
		logger.Fatal(fmt.Sprintf("server error: %v", err), err)

	case sig := <-server.ShutdownSignal():
		logger.Info(fmt.Sprintf("%v: Start shutdown...", sig))

		// give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
		defer cancel()

		// asking listener to shutdown and shed load
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)

			if err = server.Close(); err != nil {
				logger.Fatal(fmt.Sprintf("could not force stop server: %v", err), err)
			}
		}
	}
}
