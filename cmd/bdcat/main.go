package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/blang/semver"
	"github.com/creativeprojects/go-selfupdate"
	"github.com/spf13/cobra"

	"github.com/mbakke/go-bdcat/internal/bdmv"
	"github.com/mbakke/go-bdcat/internal/report"
)

var version = "dev"

type rootOptions struct {
	output         string
	skipDuplicates bool
	verifyClips    bool
	mainOnly       bool
	jsonOut        bool
	quiet          bool
	selfUpdate     bool
}

var opts rootOptions

var rootCmd = &cobra.Command{
	Use:           "bdcat <path>",
	Short:         "Catalogue the playable titles of a Blu-ray disc folder.",
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update bdcat",
	Long:  "Update bdcat to latest version (release builds only).",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSelfUpdate(cmd.Context())
	},
	DisableFlagsInUseLine: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintf(cmd.OutOrStdout(), "bdcat version: %s\n", version)
		return nil
	},
	DisableFlagsInUseLine: true,
}

func init() {
	rootCmd.SetOut(os.Stdout)
	rootCmd.SetErr(os.Stderr)

	rootCmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write the catalogue to a file instead of stdout")
	rootCmd.Flags().BoolVarP(&opts.skipDuplicates, "skip-duplicate-titles", "d", false, "Drop playlists structurally identical to an already catalogued one")
	rootCmd.Flags().BoolVarP(&opts.verifyClips, "verify-clip-files", "c", true, "Reject playlists whose media segments are missing from STREAM")
	rootCmd.Flags().BoolVar(&opts.mainOnly, "main", false, "Print only the longest title (likely what you want)")
	rootCmd.Flags().BoolVarP(&opts.jsonOut, "json", "j", false, "Print the catalogue as JSON")
	rootCmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "Suppress rejected-playlist notices")
	rootCmd.Flags().BoolVar(&opts.selfUpdate, "self-update", false, "Update bdcat to latest version (release builds only)")

	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "bdcat: %s\n", err.Error())
		os.Exit(1)
	}
}

func runRoot(cmd *cobra.Command, args []string) error {
	if opts.selfUpdate {
		return runSelfUpdate(cmd.Context())
	}

	catalog, err := bdmv.Parse(args[0], bdmv.Options{
		SkipDuplicateTitles: opts.skipDuplicates,
		VerifyClipFiles:     opts.verifyClips,
	})
	if err != nil {
		return err
	}

	if !opts.quiet {
		printRejections(cmd.ErrOrStderr(), catalog)
	}

	out := cmd.OutOrStdout()
	if opts.output != "" {
		f, err := os.Create(opts.output)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	if err := render(out, catalog); err != nil {
		return err
	}
	if opts.output != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "Catalogue written: %s\n", opts.output)
	}
	return nil
}

func render(w io.Writer, catalog *bdmv.Catalog) error {
	switch {
	case opts.jsonOut:
		return report.RenderJSON(w, catalog)
	case opts.mainOnly:
		return report.RenderMain(w, catalog)
	default:
		return report.Render(w, catalog)
	}
}

func printRejections(w io.Writer, catalog *bdmv.Catalog) {
	names := make([]string, 0, len(catalog.FileErrors))
	for name := range catalog.FileErrors {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "bdcat: skipped %s: %s\n", name, catalog.FileErrors[name])
	}
}

func runSelfUpdate(ctx context.Context) error {
	if version == "" || version == "dev" {
		return errors.New("self-update is only available in release builds")
	}

	if _, err := semver.ParseTolerant(version); err != nil {
		return fmt.Errorf("could not parse version: %w", err)
	}

	latest, found, err := selfupdate.DetectLatest(ctx, selfupdate.ParseSlug("mbakke/go-bdcat"))
	if err != nil {
		return fmt.Errorf("error occurred while detecting version: %w", err)
	}
	if !found {
		return fmt.Errorf("latest version for %s/%s could not be found from github repository", "mbakke/go-bdcat", version)
	}

	if latest.LessOrEqual(version) {
		fmt.Printf("Current binary is the latest version: %s\n", version)
		return nil
	}

	exe, err := selfupdate.ExecutablePath()
	if err != nil {
		return fmt.Errorf("could not locate executable path: %w", err)
	}

	if err := selfupdate.UpdateTo(ctx, latest.AssetURL, latest.AssetName, exe); err != nil {
		return fmt.Errorf("error occurred while updating binary: %w", err)
	}

	fmt.Printf("Successfully updated to version: %s\n", latest.Version())
	return nil
}
