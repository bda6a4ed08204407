// Copyright 2026 The PlotProof Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/lmendieta/plotproof/audit"
	"github.com/lmendieta/plotproof/utils"
)

var (
	auditOutDir    string
	auditEndpoint  string
	auditOperator  string
	auditCommodity string
)

var auditCmd = &cobra.Command{
	Use:   "audit <survey.xlsx> [more surveys...]",
	Short: "Audit survey workbooks without the dashboard",
	Long: `Runs the audit pipeline headless: each workbook is parsed, its centroid is
checked against the territory index, and a GeoJSON evidence file is written
next to the input (or into --out).`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		if !audit.ValidCommodity(auditCommodity) {
			return fmt.Errorf("unknown commodity %q", auditCommodity)
		}

		auditor := audit.NewAuditor(audit.NewNativeLandClient(auditEndpoint))

		var bar *progressbar.ProgressBar
		if isatty.IsTerminal(os.Stderr.Fd()) && len(args) > 1 {
			bar = progressbar.NewOptions(len(args),
				progressbar.OptionSetDescription("Auditing surveys"),
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionShowCount(),
				progressbar.OptionClearOnFinish(),
			)
		}

		var errs []error

		for _, path := range args {
			if err := auditWorkbook(auditor, path); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", path, err))
				log.Printf("Auditing %s: %v", path, err)
			}

			if bar != nil {
				_ = bar.Add(1)
			}
		}

		return errors.Join(errs...)
	},
}

func auditWorkbook(auditor *audit.Auditor, path string) error {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("opening survey: %w", err)
	}
	defer f.Close()

	points, err := audit.ParseWorkbook(f)
	if err != nil {
		return fmt.Errorf("parsing survey: %w", err)
	}

	result, err := auditor.Run(context.Background(), points)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(audit.Export(points, result), "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling evidence: %w", err)
	}

	out := evidencePath(path)
	if err := os.WriteFile(out, data, 0o600); err != nil {
		return fmt.Errorf("writing evidence file: %w", err)
	}

	notice := ""
	if result.Unavailable {
		notice = " (unverified - territory service unreachable)"
	}

	fmt.Printf("✅ %s: %s vertices, %s for %s / %s%s -> %s\n",
		path,
		utils.FormatInt(int64(len(points))),
		result.Risk,
		auditOperator,
		auditCommodity,
		notice,
		out)

	return nil
}

// evidencePath derives the output path for a survey: same base name with a
// .geojson extension, in --out when set.
func evidencePath(survey string) string {
	base := filepath.Base(survey)
	base = strings.TrimSuffix(base, filepath.Ext(base)) + ".geojson"

	dir := auditOutDir
	if dir == "" {
		dir = filepath.Dir(survey)
	}

	return filepath.Join(dir, base)
}

func init() {
	auditCmd.Flags().StringVar(&auditOutDir, "out", "", "directory to write evidence files into")
	auditCmd.Flags().StringVar(&auditEndpoint, "endpoint", "", "territory index endpoint override")
	auditCmd.Flags().StringVar(&auditOperator, "operator", "Global Trade Corp", "operator/entity under audit")
	auditCmd.Flags().StringVar(&auditCommodity, "commodity", "Wood", "commodity under audit")

	rootCmd.AddCommand(auditCmd)
}
