package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bookstrack/contracts/internal/drift"
	"github.com/bookstrack/contracts/internal/generator"
)

var errDrift = errors.New("mirror has drifted from upstream")

func (a *app) driftCmd() *cobra.Command {
	var (
		snapshot string
		live     bool
		strict   bool
	)

	cmd := &cobra.Command{
		Use:   "drift",
		Short: "Compare the Go mirror against upstream schemas",
		Long: `Compares field paths, types, required flags, nullability and enum sets of
the mirrored types against the upstream schemas. Upstream is read from the
generated fixture (--snapshot) or loaded live from BENDV3_PATH (--live).

Entities present on one side only are reported; with --strict they fail the
check.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			local, err := drift.MirrorShapes()
			if err != nil {
				return err
			}

			var upstream map[string]drift.Shape
			if live {
				doc, err := generator.New(a.src, a.options(""), a.logger).Build(cmd.Context())
				if err != nil {
					return err
				}
				raw, err := doc.RawSchemas()
				if err != nil {
					return err
				}
				if upstream, err = drift.ShapesFromJSON(raw); err != nil {
					return err
				}
			} else {
				if snapshot == "" {
					snapshot = a.cfg.Output
				}
				if upstream, err = drift.SnapshotShapes(snapshot); err != nil {
					return err
				}
			}

			report := drift.Compare(local, upstream)
			fmt.Fprint(cmd.OutOrStdout(), report)
			a.logger.Debug("drift check finished",
				zap.Strings("compared", report.Compared),
				zap.Int("findings", len(report.Findings)),
			)
			if report.HasDrift(strict) {
				return errDrift
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&snapshot, "snapshot", "", "Fixture envelope to compare against (default SCHEMAGEN_OUTPUT)")
	cmd.Flags().BoolVar(&live, "live", false, "Load upstream schemas from BENDV3_PATH instead of the fixture")
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail when an entity exists on only one side")
	cmd.MarkFlagsMutuallyExclusive("snapshot", "live")
	return cmd
}
