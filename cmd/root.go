package cmd

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"shiftrota/internal/util"

	"github.com/spf13/cobra"
)

var (
	sessionFile string
	verbose     bool
	initForce   bool
)

//go:embed sample/session.yaml
var sampleSession []byte

var rootCmd = &cobra.Command{
	Use:   "shiftrota",
	Short: "Rotate people through work roles across the blocks of a shift",
	Long: `shiftrota reads a session file (blocks of a shift, who is on the floor in
each block and which roles are open) and assigns one person to every role
slot, so that nobody repeats the role they just had and nobody works an
outside role two blocks in a row.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		util.SetVerbose(verbose)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		util.Sync()
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a sample session file to edit",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := os.Stat(sessionFile); err == nil && !initForce {
			return fmt.Errorf("%s already exists (use --force to overwrite)", sessionFile)
		} else if err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}
		if err := os.WriteFile(sessionFile, sampleSession, 0644); err != nil {
			return err
		}
		util.Success("wrote %s", sessionFile)
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&sessionFile, "file", "f", "session.yaml", "Session YAML file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Debug logging")
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing file")
	rootCmd.AddCommand(initCmd)
}
