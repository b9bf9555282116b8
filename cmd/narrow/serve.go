package main

import (
	"fmt"
	"os"

	"github.com/creachadair/jrpc2/channel"
	"github.com/spf13/cobra"

	"github.com/vito/narrow/pkg/analyzer"
	"github.com/vito/narrow/pkg/rpc"
)

func serveCmd(flags *Flags) *cobra.Command {
	var (
		framing string
		retain  int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve narrow/analyze, narrow/typeAt and narrow/dump over JSON-RPC on stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}

			var ch channel.Channel
			switch framing {
			case "line":
				ch = channel.Line(os.Stdin, os.Stdout)
			case "header":
				ch = channel.LSP(os.Stdin, os.Stdout)
			default:
				return fmt.Errorf("unknown framing %q (want line or header)", framing)
			}

			srv, err := rpc.NewServer(analyzer.New(cfg), retain)
			if err != nil {
				return err
			}
			return srv.Serve(ctx, ch)
		},
	}

	cmd.Flags().StringVar(&framing, "framing", "line", "Message framing: line (newline-delimited) or header (Content-Length)")
	cmd.Flags().IntVar(&retain, "retain", rpc.DefaultRetainedReports, "Number of reports kept for typeAt and dump queries")
	return cmd
}
