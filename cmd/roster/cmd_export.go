package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ajitpratap0/roster/internal/export"
)

func exportCmd(seed seedFunc) *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all persons to JSON, CSV or YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, closer := newLogger(cmd)
			defer func() { _ = closer.Close() }()

			st, err := openStore(seed, logger)
			if err != nil {
				return err
			}
			persons := st.All()

			var w io.Writer = cmd.OutOrStdout()
			if output != "" && output != "-" {
				f, createErr := os.Create(output)
				if createErr != nil {
					return fmt.Errorf("export: creating output file: %w", createErr)
				}
				defer func() { _ = f.Close() }()
				w = f
			}

			if err := export.Write(w, persons, format); err != nil {
				return err
			}

			if output != "" && output != "-" {
				fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d persons to %s\n", len(persons), output)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "json", "output format: json, csv or yaml")
	cmd.Flags().StringVarP(&output, "output", "o", "-", "output file path (- for stdout)")
	return cmd
}
