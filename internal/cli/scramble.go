package cli

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/santanusen/pocketcube"
)

var (
	scrambleMovesN int
	scrambleSeed   int64
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Generate a random scramble",
	Long: `Generate a random scramble sequence and display the resulting cube
state. Feed the printed notation back into 'pocketcube solve'.`,
	RunE: runScramble,
}

func init() {
	rootCmd.AddCommand(scrambleCmd)

	scrambleCmd.Flags().IntVar(&scrambleMovesN, "moves", 10, "Number of random moves")
	scrambleCmd.Flags().Int64Var(&scrambleSeed, "seed", 0, "Random seed (default: current time)")
}

func runScramble(cmd *cobra.Command, args []string) error {
	if scrambleMovesN <= 0 {
		return fmt.Errorf("--moves must be positive, got %d", scrambleMovesN)
	}

	seed := scrambleSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	moves := pocketcube.Scramble(rand.New(rand.NewSource(seed)), scrambleMovesN)
	c := pocketcube.New().ApplyMoves(moves)

	fmt.Printf("Scramble: %s\n", pocketcube.FormatMoves(moves))
	fmt.Println()
	fmt.Print(renderCube(c))

	return nil
}
