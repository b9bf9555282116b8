package main

import (
	"fmt"

	"github.com/kr/pretty"
	"github.com/spf13/cobra"

	"github.com/vito/narrow/pkg/analyzer"
	"github.com/vito/narrow/pkg/ioctx"
	"github.com/vito/narrow/pkg/report"
)

func dumpCmd(flags *Flags) *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "dump [flags] FILE [FUNCTION...]",
		Short: "Print the control-flow graph and narrowed environments",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}

			stdout := ioctx.StdoutFromContext(ctx)
			a := analyzer.New(cfg)
			rep, err := a.Check(ctx, args[0])
			if err != nil {
				return err
			}

			fns := rep.Functions
			if len(args) > 1 {
				fns = nil
				for _, name := range args[1:] {
					fn, ok := rep.Function(name)
					if !ok {
						return fmt.Errorf("%s has no function %q", args[0], name)
					}
					fns = append(fns, fn)
				}
			}

			opts := report.Options{Color: !flags.NoColor && ioctx.IsTerminal(stdout)}
			for _, fn := range fns {
				if raw {
					if fn.Result == nil {
						pretty.Fprintf(stdout, "%s: %v\n", fn.Name, fn.Err)
						continue
					}
					pretty.Fprintf(stdout, "%# v\n", fn.Result.Graph)
					continue
				}
				if err := report.Dump(stdout, fn, opts); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Print the graph structures as Go values")
	return cmd
}
