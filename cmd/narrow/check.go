package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vito/narrow/pkg/analyzer"
	"github.com/vito/narrow/pkg/ioctx"
	"github.com/vito/narrow/pkg/report"
)

var errCheckFailed = errors.New("check failed")

func checkCmd(flags *Flags) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "check [flags] FILE...",
		Short: "Analyze program files and report diagnostics",
		Long: `Analyze every function body of each program file. The command fails
when a file has an error diagnostic or an internal error, or in strict
mode any warning.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}

			stdout := ioctx.StdoutFromContext(ctx)
			opts := report.Options{Color: !flags.NoColor && ioctx.IsTerminal(stdout)}
			a := analyzer.New(cfg)

			failed := 0
			for _, path := range args {
				rep, err := a.Check(ctx, path)
				if err != nil {
					return err
				}
				if asJSON {
					err = report.JSON(stdout, rep)
				} else {
					err = report.Text(stdout, rep, opts)
				}
				if err != nil {
					return fmt.Errorf("write report: %w", err)
				}
				if rep.Failed() {
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%w: %d of %d files", errCheckFailed, failed, len(args))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Write one JSON document per file")
	cmd.Flags().BoolVar(&flags.Strict, "strict", false, "Fail on warnings too")
	return cmd
}
