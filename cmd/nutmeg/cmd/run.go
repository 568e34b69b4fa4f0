package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/nutmeg-lang/nutmeg/internal/diagnostic"
	"github.com/nutmeg-lang/nutmeg/pkg/nutmeg"
	"github.com/spf13/cobra"
)

var showTime bool

func init() {
	rootCmd.Flags().BoolVarP(&showTime, "time", "t", false, "print a timing report to stderr")
	rootCmd.Args = cobra.ExactArgs(1)
	rootCmd.RunE = runFile
}

func runFile(cmd *cobra.Command, args []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")

	filename := args[0]
	source, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "nutmeg: cannot read %s: %v\n", filename, err)
		os.Exit(2)
	}

	start := time.Now()

	program, errs := nutmeg.Parse(string(source), filename)
	if len(errs) > 0 {
		if verbose {
			fmt.Fprint(os.Stderr, diagnostic.FormatAllVerbose(errs, string(source), filename))
		} else {
			fmt.Fprint(os.Stderr, diagnostic.FormatAll(errs, string(source), filename))
		}
		os.Exit(1)
	}

	runErr := nutmeg.Run(program,
		nutmeg.WithStdout(os.Stdout),
		nutmeg.WithExit(func(code int32) {
			if showTime {
				reportTiming(start)
			}
			os.Exit(int(code))
		}),
	)

	if showTime {
		reportTiming(start)
	}

	if runErr != nil {
		if verbose {
			fmt.Fprint(os.Stderr, diagnostic.FormatVerbose(runErr, string(source), filename))
		} else {
			fmt.Fprint(os.Stderr, diagnostic.Format(runErr, string(source), filename))
		}
		os.Exit(1)
	}
	return nil
}

func reportTiming(start time.Time) {
	fmt.Fprintf(os.Stderr, "elapsed: %s\n", time.Since(start))
}
