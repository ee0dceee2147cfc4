package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"shiftrota/internal/loader"
	"shiftrota/internal/render"
	"shiftrota/internal/rotation"
	"shiftrota/internal/scheduler"
	"shiftrota/internal/util"
	"shiftrota/internal/watch"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	seed      uint64
	format    string
	outDir    string
	keepGoing bool
	watchMode bool
	color     bool
)

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for candidate shuffling (overrides the session seed)")
	generateCmd.Flags().StringVar(&format, "format", "text", "Output format: text, yaml or json")
	generateCmd.Flags().StringVar(&outDir, "out", "", "Write run-<id>/ with log.txt, output and run.yaml under this directory")
	generateCmd.Flags().BoolVar(&keepGoing, "keep-going", false, "Continue past failing blocks")
	generateCmd.Flags().BoolVar(&watchMode, "watch", false, "Regenerate whenever the session file changes")
	generateCmd.Flags().BoolVar(&color, "color", false, "Style text output for a terminal")
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Assign people to roles for every block of the session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		seedSet := cmd.Flags().Changed("seed")
		if !watchMode {
			return generate(cmd.OutOrStdout(), seedSet)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return watchAndGenerate(ctx, cmd.OutOrStdout(), seedSet)
	},
}

func generate(w io.Writer, seedSet bool) error {
	session, err := loader.LoadSession(sessionFile)
	if err != nil {
		return err
	}
	renderer, err := render.New(format, render.Options{Color: color})
	if err != nil {
		return err
	}
	util.Info("%s: %d blocks", sessionFile, len(session.Blocks))

	runID := util.NewUUID()
	opts := []scheduler.Option{
		scheduler.WithRunID(runID),
		scheduler.WithKeepGoing(keepGoing),
	}
	switch {
	case seedSet:
		opts = append(opts, scheduler.WithSeed(seed))
	case session.Seed != nil:
		opts = append(opts, scheduler.WithSeed(*session.Seed))
	}

	out := w
	var runDir string
	if outDir != "" {
		runDir = filepath.Join(outDir, "run-"+runID)
		if err := os.MkdirAll(runDir, 0755); err != nil {
			return err
		}
		if err := util.SetLogFile(filepath.Join(runDir, "log.txt")); err != nil {
			return err
		}
		defer util.CloseLogFile()
		util.Info("run directory: %s", runDir)

		f, err := os.Create(filepath.Join(runDir, "output."+extension(format)))
		if err != nil {
			return err
		}
		defer f.Close()
		out = io.MultiWriter(w, f)
	}

	run, runErr := scheduler.New(opts...).Run(session.Blocks, rotation.Empty())
	if err := renderer.Render(out, run); err != nil {
		return err
	}
	if runDir != "" {
		if err := run.WriteSummary(filepath.Join(runDir, "run.yaml")); err != nil {
			return err
		}
	}

	if runErr != nil {
		for _, f := range run.Failures() {
			util.Fail("%v", f)
		}
		return fmt.Errorf("%d of %d blocks failed", len(run.Failures()), len(session.Blocks))
	}
	util.Success("%d blocks assigned", len(run.Results))
	return nil
}

func watchAndGenerate(ctx context.Context, w io.Writer, seedSet bool) error {
	f, err := watch.NewFile(sessionFile, watch.DefaultDebounce)
	if err != nil {
		return err
	}
	rerun := func() {
		if err := generate(w, seedSet); err != nil {
			util.Fail("%v", err)
		}
	}
	rerun()
	return f.Run(ctx, rerun)
}

func extension(format string) string {
	switch format {
	case "", "text":
		return "txt"
	}
	return format
}
