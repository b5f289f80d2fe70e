package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bookstrack/contracts/internal/validation"
)

func (a *app) validateCmd() *cobra.Command {
	var (
		fixture string
		entity  string
	)

	cmd := &cobra.Command{
		Use:   "validate --entity NAME [FILE...]",
		Short: "Compile the fixture schemas and validate JSON files against one of them",
		RunE: func(cmd *cobra.Command, args []string) error {
			if fixture == "" {
				fixture = a.cfg.Output
			}
			data, err := os.ReadFile(fixture)
			if err != nil {
				return fmt.Errorf("failed to read fixture: %w", err)
			}
			set, err := validation.CompileEnvelope(data)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Compiled %d schemas: %v\n", len(set.Names()), set.Names())
			if len(args) == 0 {
				return nil
			}
			if entity == "" {
				return errors.New("--entity is required when validating files")
			}

			failed := 0
			for _, path := range args {
				data, err := os.ReadFile(path)
				if err == nil {
					err = set.ValidateJSON(entity, data)
				}
				if err != nil {
					failed++
					fmt.Fprintf(out, "  ❌ %s: %v\n", path, err)
					a.logger.Debug("validation failed", zap.String("path", path), zap.Error(err))
					continue
				}
				fmt.Fprintf(out, "  ✅ %s\n", path)
			}

			if failed > 0 {
				return fmt.Errorf("validation failed: %d of %d files are not valid %s", failed, len(args), entity)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&fixture, "fixture", "", "Fixture envelope (default SCHEMAGEN_OUTPUT)")
	cmd.Flags().StringVarP(&entity, "entity", "e", "", "Schema name to validate against")
	return cmd
}
