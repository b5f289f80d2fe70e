package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bookstrack/contracts/internal/generator"
)

func (a *app) generateCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Export BendV3 schemas to the JSON fixture",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if output == "" {
				output = a.cfg.Output
			}
			res, err := generator.New(a.src, a.options(output), a.logger).Generate(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), res)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (overrides SCHEMAGEN_OUTPUT)")
	return cmd
}
