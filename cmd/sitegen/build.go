package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/purh/sitegen/pkg/sitegen"
	"github.com/purh/sitegen/pkg/sitegen/diag"
	"github.com/purh/sitegen/pkg/sitegen/publish"
	"github.com/spf13/cobra"
)

type buildFlags struct {
	output    string
	covers    string
	mode      string
	onix      bool
	noCovers  bool
	publish   bool
	topFields int
}

func newBuildCmd() *cobra.Command {
	var f buildFlags
	cmd := &cobra.Command{
		Use:   "build [workbook.xlsx]",
		Short: "Build the site from a workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, args[0], f)
		},
	}

	cmd.Flags().StringVarP(&f.output, "output", "o", getEnv("SITEGEN_OUTPUT", "site"), "Output directory")
	cmd.Flags().StringVar(&f.covers, "covers", getEnv("SITEGEN_COVERS", "covers"), "Directory of cover images")
	cmd.Flags().StringVar(&f.mode, "mode", string(sitegen.ModeSite), "Build mode: site, validate")
	cmd.Flags().BoolVar(&f.onix, "onix", true, "Write the ONIX feed (site mode)")
	cmd.Flags().BoolVar(&f.noCovers, "no-covers", false, "Do not copy cover images")
	cmd.Flags().BoolVar(&f.publish, "publish", false, "Upload the output directory over FTP after the build")
	cmd.Flags().IntVar(&f.topFields, "top-fields", 5, "Fields listed in the anomaly summary")
	return cmd
}

func runBuild(cmd *cobra.Command, path string, f buildFlags) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", path)
	}

	mode := sitegen.Mode(f.mode)
	if !mode.Valid() {
		return fmt.Errorf("invalid mode: %s (must be site or validate)", f.mode)
	}
	if f.publish && mode == sitegen.ModeValidate {
		return fmt.Errorf("--publish needs site mode")
	}

	opts := sitegen.DefaultOptions()
	opts.Mode = mode
	opts.OutputDir = f.output
	opts.CoversDir = f.covers
	opts.ExportONIX = sitegen.BoolPtr(f.onix)
	opts.CopyCovers = sitegen.BoolPtr(!f.noCovers)

	res, err := sitegen.Build(path, opts)
	if err != nil {
		return err
	}
	printSummary(cmd.OutOrStdout(), res, f.topFields)

	if !f.publish {
		return nil
	}
	cfg := res.Catalog.Site.FTP
	if cfg.Password == "" {
		cfg.Password = os.Getenv("SITEGEN_FTP_PASSWORD")
	}
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	return publishSite(ctx, publish.NewFTP(cfg), res.OutputDir)
}

func publishSite(ctx context.Context, p publish.Publisher, dir string) error {
	if err := p.Publish(ctx, dir); err != nil {
		return fmt.Errorf("publish failed: %w", err)
	}
	return nil
}

// printSummary writes the soft-anomaly summary of a successful build.
func printSummary(w io.Writer, res *sitegen.Result, top int) {
	s := res.Report.Summary()
	fmt.Fprintf(w, "Built %d titles, %d collections, %d journals, %d pages into %s\n",
		len(res.Catalog.Titles), len(res.Catalog.Collections), len(res.Catalog.Journals),
		len(res.Catalog.Pages), res.OutputDir)
	fmt.Fprintf(w, "Anomalies: %d warnings, %d infos, %d titles excluded (see %s)\n",
		s.Warnings, s.Infos, s.Excluded, sitegen.ValidationFile)

	printTopFields(w, res.Report.CountByField(), top)
	if n := len(res.ONIXIssues); n > 0 {
		fmt.Fprintf(w, "ONIX: %d QA issues (see onix/onix_QA.csv)\n", n)
	}
}

func printTopFields(w io.Writer, counts []diag.FieldCount, top int) {
	if len(counts) == 0 || top <= 0 {
		return
	}
	if len(counts) > top {
		counts = counts[:top]
	}
	fmt.Fprintln(w, "Most frequent warnings:")
	for _, c := range counts {
		fmt.Fprintf(w, "  %-24s %d\n", c.Field, c.Count)
	}
}
