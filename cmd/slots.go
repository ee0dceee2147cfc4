package cmd

import (
	"fmt"
	"shiftrota/internal"
	"shiftrota/internal/loader"
	"shiftrota/internal/slots"
	"shiftrota/internal/util"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(slotsCmd)
}

// slotsCmd runs only the role checks, which is handy while editing rosters.
var slotsCmd = &cobra.Command{
	Use:   "slots",
	Short: "Show the role slots each block needs, without assigning anyone",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := loader.LoadSession(sessionFile)
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		failed := 0
		for i, b := range session.Blocks {
			fmt.Fprintf(w, "block %d (%s - %s), %d people: ", i+1, b.Start, b.End, len(b.People))
			units, err := slots.ForBlock(b)
			if len(b.People) == 0 {
				err = internal.ErrNoPeople
			}
			if err != nil {
				failed++
				fmt.Fprintf(w, "error: %v\n", err)
				continue
			}
			parts := make([]string, len(units))
			for j, u := range units {
				parts[j] = string(u.Role)
				if u.Overflow {
					parts[j] += "+"
				}
			}
			fmt.Fprintln(w, strings.Join(parts, ", "))
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d blocks have invalid roles or headcount", failed, len(session.Blocks))
		}
		util.Success("all %d blocks are valid", len(session.Blocks))
		return nil
	},
}
