package cli

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/santanusen/pocketcube"
	"github.com/santanusen/pocketcube/internal/storage"
)

var (
	solveRandom int
	solveSeed   int64
	solveRecord bool
	solveShow   bool
)

var solveCmd = &cobra.Command{
	Use:   "solve [scramble notation]",
	Short: "Find a shortest solution for a scramble",
	Long: `Apply a scramble to a solved cube and search for a minimum-length
solution by breadth-first search.

The scramble is given as space-separated notation arguments (F F' L L' D D')
or generated randomly with --random.

Examples:
  pocketcube solve F D "L'" F
  pocketcube solve --random 15 --record`,
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)

	solveCmd.Flags().IntVar(&solveRandom, "random", 0, "Scramble with N random moves instead of notation arguments")
	solveCmd.Flags().Int64Var(&solveSeed, "seed", 0, "Random seed for --random (default: current time)")
	solveCmd.Flags().BoolVar(&solveRecord, "record", false, "Record the solve to the history database")
	solveCmd.Flags().BoolVar(&solveShow, "show", false, "Display the scrambled cube before solving")
}

func runSolve(cmd *cobra.Command, args []string) error {
	scramble, err := scrambleMoves(args)
	if err != nil {
		return err
	}

	c := pocketcube.New().ApplyMoves(scramble)

	fmt.Printf("Scramble: %s\n", pocketcube.FormatMoves(scramble))
	if solveShow {
		fmt.Println()
		fmt.Print(renderCube(c))
		fmt.Println()
	}

	start := time.Now()
	solution, stats, err := pocketcube.SolveWithStats(cmd.Context(), c)
	if err != nil {
		return fmt.Errorf("solve failed: %w", err)
	}
	elapsed := time.Since(start)

	if len(solution) == 0 {
		fmt.Println("Already solved")
	} else {
		fmt.Printf("Solution: %s\n", pocketcube.FormatMoves(solution))
	}
	fmt.Printf("Moves:    %d\n", len(solution))
	fmt.Printf("States:   %d\n", stats.StatesExplored)
	fmt.Printf("Search:   %s\n", formatDuration(elapsed))

	if solveRecord {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		repo := storage.NewSolveRepository(db)
		id, err := repo.Create(
			pocketcube.FormatMoves(scramble),
			pocketcube.FormatMoves(solution),
			len(solution),
			stats.StatesExplored,
			elapsed.Milliseconds(),
		)
		if err != nil {
			return fmt.Errorf("failed to record solve: %w", err)
		}
		fmt.Printf("Recorded: %s\n", id)
	}

	return nil
}

// scrambleMoves builds the scramble from --random or notation arguments.
func scrambleMoves(args []string) ([]pocketcube.Move, error) {
	if solveRandom > 0 {
		seed := solveSeed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		return pocketcube.Scramble(rand.New(rand.NewSource(seed)), solveRandom), nil
	}

	if len(args) == 0 {
		return nil, fmt.Errorf("provide a scramble in notation or use --random N")
	}

	moves, err := pocketcube.ParseMoves(strings.Join(args, " "))
	if err != nil {
		return nil, fmt.Errorf("invalid scramble: %w", err)
	}
	return moves, nil
}

func formatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%.3fs", d.Seconds())
	}
	mins := int(d.Minutes())
	secs := d.Seconds() - float64(mins*60)
	return fmt.Sprintf("%dm%.1fs", mins, secs)
}
