package main

import (
	"log"
	"os"

	"github.com/trezcool/gradetrend/core"
	"github.com/trezcool/gradetrend/core/grade"
	filedb "github.com/trezcool/gradetrend/storage/file"
	inmemdb "github.com/trezcool/gradetrend/storage/inmem"
)

var logger *log.Logger

func main() {
	logger = log.New(os.Stderr, "CLI : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)
	conf := core.NewConfig()

	// start CLI
	cli := commandLine{
		out:         os.Stdout,
		defaultFile: conf.Grades.SourceFile,
		opts: grade.Options{
			AllSubjectsLabel: conf.Grades.AllSubjectsLabel,
			NotGradedMarkers: conf.Grades.NotGradedMarkers,
			ZeroMarkers:      conf.Grades.ZeroMarkers,
		},
		openSource: openFixtures,
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}

func openFixtures(path string) (grade.Source, error) {
	repo := inmemdb.NewGradeRepository(inmemdb.Open())
	if err := filedb.Load(path, repo); err != nil {
		return nil, err
	}
	return repo, nil
}
