package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"syscall"

	"golang.org/x/term"

	"github.com/trezcool/gradetrend/core/grade"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	out         io.Writer
	defaultFile string
	opts        grade.Options
	openSource  func(path string) (grade.Source, error)
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  chart -username USERNAME [-subject SUBJECT] [-period PERIOD] [-file FILE] - print the student & class running averages")
	fmt.Fprintln(cli.out, "  subjects -username USERNAME [-file FILE] - list the student's subjects")
	fmt.Fprintln(cli.out, "  hashpassword - print the bcrypt hash of a password, for grade fixtures")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	chartCmd := flag.NewFlagSet("chart", flag.ContinueOnError)
	chartCmd.SetOutput(cli.out)
	chartUname := chartCmd.String("username", "", "The student's username. The password will be prompted next.")
	chartSubject := chartCmd.String("subject", grade.AllSubjects, "Only average grades of this subject.")
	chartPeriod := chartCmd.String("period", "", "Only average grades of this period.")
	chartFile := chartCmd.String("file", cli.defaultFile, "The grade fixtures file.")

	subjectsCmd := flag.NewFlagSet("subjects", flag.ContinueOnError)
	subjectsCmd.SetOutput(cli.out)
	subjectsUname := subjectsCmd.String("username", "", "The student's username. The password will be prompted next.")
	subjectsFile := subjectsCmd.String("file", cli.defaultFile, "The grade fixtures file.")

	switch args[1] {
	case "chart":
		if err := chartCmd.Parse(args[2:]); err != nil {
			return errHelp
		}
		if *chartUname == "" {
			chartCmd.Usage()
			return errHelp
		}
		pwd, err := cli.readPassword()
		if err != nil {
			if err == errHelp {
				chartCmd.Usage()
			}
			return err
		}
		req := grade.ChartRequest{
			Credentials: grade.Credentials{Username: *chartUname, Password: pwd},
			Subject:     *chartSubject,
			Period:      *chartPeriod,
		}
		return cli.chart(*chartFile, req)
	case "subjects":
		if err := subjectsCmd.Parse(args[2:]); err != nil {
			return errHelp
		}
		if *subjectsUname == "" {
			subjectsCmd.Usage()
			return errHelp
		}
		pwd, err := cli.readPassword()
		if err != nil {
			if err == errHelp {
				subjectsCmd.Usage()
			}
			return err
		}
		return cli.subjects(*subjectsFile, grade.Credentials{Username: *subjectsUname, Password: pwd})
	case "hashpassword":
		pwd, err := cli.readPassword()
		if err != nil {
			return err
		}
		return cli.hashPassword(pwd)
	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) readPassword() (string, error) {
	fmt.Fprint(cli.out, "Enter password:")
	pwd, err := readPasswordFunc(int(syscall.Stdin))
	fmt.Fprintln(cli.out)
	if err != nil {
		return "", err
	}
	if len(pwd) == 0 {
		return "", errHelp
	}
	return string(pwd), nil
}

func (cli *commandLine) service(path string) (*grade.Service, error) {
	src, err := cli.openSource(path)
	if err != nil {
		return nil, err
	}
	return grade.NewService(src, cli.opts), nil
}
