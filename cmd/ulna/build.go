package main

import (
	"fmt"
	"os"

	j "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	ulna "github.com/reoring/ulna"
	"github.com/reoring/ulna/config"
	"github.com/reoring/ulna/internal/build"
	"github.com/reoring/ulna/internal/cli"
)

func newBuildCmd() *cobra.Command {
	var (
		modeFlag   string
		verbose    bool
		configPath string
		binaryDir  string
		diagFormat string
	)
	cmd := &cobra.Command{
		Use:   "build",
		Short: "build the C project described by the configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := cli.NewLogger(cmd.OutOrStdout(), cmd.ErrOrStderr(), verbose)

			mode, ok := build.ParseMode(modeFlag)
			if !ok {
				return fmt.Errorf("invalid --mode %q (choose development or release)", modeFlag)
			}
			if diagFormat != "text" && diagFormat != "json" {
				return fmt.Errorf("invalid --diagnostics %q (choose text or json)", diagFormat)
			}

			cfg, err := config.Load(configPath)
			if err != nil {
				reportConfigError(cmd, log, diagFormat, err)
				return errReported
			}

			if err := os.MkdirAll(binaryDir, 0o755); err != nil {
				log.Error("cannot create binary directory: " + err.Error())
				return errReported
			}
			if err := build.New(log, cfg, binaryDir).Run(cmd.Context(), mode); err != nil {
				return errReported
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&modeFlag, "mode", string(build.ModeDevelopment), "optimizes for performance or for debugging")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "shows more detailed output")
	cmd.Flags().StringVar(&configPath, "config", "ulna-project.toml", "path of the project configuration file")
	cmd.Flags().StringVar(&binaryDir, "bin-dir", "bin", "directory receiving the produced binary")
	cmd.Flags().StringVar(&diagFormat, "diagnostics", "text", "how configuration failures are reported (text, json)")
	return cmd
}

// reportConfigError renders acquisition and schema failures. The two tiers
// are mutually exclusive: a document that fails to load is never validated.
func reportConfigError(cmd *cobra.Command, log *cli.Logger, format string, err error) {
	if format == "json" {
		writeDiagnosticsJSON(cmd, err)
		return
	}
	if le, ok := ulna.AsLoadError(err); ok {
		log.Error(ulna.RenderLoadError(le))
		return
	}
	if ds, ok := ulna.AsDiagnostics(err); ok {
		for _, d := range ds {
			log.Error(ulna.RenderDiagnostic(d))
		}
		return
	}
	log.Error(err.Error())
}

// diagnosticJSON is the stable wire shape of one reported failure. Path is
// the tree path for schema diagnostics and the file path for load errors.
type diagnosticJSON struct {
	Code     string `json:"code"`
	Path     string `json:"path,omitempty"`
	Field    string `json:"field,omitempty"`
	Section  string `json:"section,omitempty"`
	Expected string `json:"expected,omitempty"`
	Message  string `json:"message"`
}

func writeDiagnosticsJSON(cmd *cobra.Command, err error) {
	var out []diagnosticJSON
	if le, ok := ulna.AsLoadError(err); ok {
		out = append(out, diagnosticJSON{
			Code:    le.Kind.String(),
			Path:    le.Path,
			Message: ulna.RenderLoadError(le),
		})
	} else if ds, ok := ulna.AsDiagnostics(err); ok {
		for _, d := range ds {
			out = append(out, diagnosticJSON{
				Code:     d.Code,
				Path:     d.Path,
				Field:    d.Field,
				Section:  d.Section,
				Expected: d.Expected,
				Message:  ulna.RenderDiagnostic(d),
			})
		}
	} else {
		out = append(out, diagnosticJSON{Code: "error", Message: err.Error()})
	}
	enc := j.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	_ = enc.Encode(out)
}
