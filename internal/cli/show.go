package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/santanusen/pocketcube"
)

var showCmd = &cobra.Command{
	Use:   "show [notation]",
	Short: "Display a cube state",
	Long: `Apply a move sequence to a solved cube and display the resulting
state as labeled slot assignments. With no arguments, shows the solved
cube.

Example:
  pocketcube show F D "L'"`,
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	c := pocketcube.New()

	if len(args) > 0 {
		moves, err := pocketcube.ParseMoves(strings.Join(args, " "))
		if err != nil {
			return fmt.Errorf("invalid notation: %w", err)
		}
		c = c.ApplyMoves(moves)
	}

	fmt.Print(renderCube(c))
	return nil
}
