package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/santanusen/pocketcube/internal/storage"
)

var (
	historyLimit    int
	historyShowLast bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse recorded solves",
	Long:  `Commands for listing and inspecting solver runs recorded with 'solve --record'.`,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent solves",
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show [solve-id]",
	Short: "Show details of a recorded solve",
	Long: `Display a recorded solve: scramble, optimal solution, length, and
search time. Use --last to show the most recent record.`,
	RunE: runHistoryShow,
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.AddCommand(historyListCmd)
	historyListCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of solves to display")

	historyCmd.AddCommand(historyShowCmd)
	historyShowCmd.Flags().BoolVar(&historyShowLast, "last", false, "Show the most recent solve")
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewSolveRepository(db)
	solves, err := repo.List(historyLimit)
	if err != nil {
		return fmt.Errorf("failed to list solves: %w", err)
	}

	if len(solves) == 0 {
		fmt.Println("No solves recorded yet")
		fmt.Println("Record one with: pocketcube solve --random 10 --record")
		return nil
	}

	fmt.Printf("Recent solves (showing %d):\n", len(solves))
	fmt.Println()
	fmt.Printf("%-36s  %-20s  %-6s  %-10s  %s\n", "ID", "Recorded", "Moves", "Search", "Scramble")
	fmt.Println("------------------------------------  --------------------  ------  ----------  --------")

	for _, s := range solves {
		scramble := s.Scramble
		if len(scramble) > 30 {
			scramble = scramble[:27] + "..."
		}

		fmt.Printf("%-36s  %-20s  %-6d  %-10s  %s\n",
			s.SolveID,
			s.CreatedAt.Format("2006-01-02 15:04:05"),
			s.SolutionLen,
			fmt.Sprintf("%dms", s.SearchMs),
			scramble,
		)
	}

	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewSolveRepository(db)

	var solve *storage.Solve
	switch {
	case historyShowLast:
		solve, err = repo.GetLast()
	case len(args) > 0:
		solve, err = repo.Get(args[0])
	default:
		return fmt.Errorf("please provide a solve ID or use --last")
	}

	if err != nil {
		return fmt.Errorf("failed to get solve: %w", err)
	}
	if solve == nil {
		return fmt.Errorf("solve not found")
	}

	fmt.Println("Solve Details")
	fmt.Println("=============")
	fmt.Println()
	fmt.Printf("ID:       %s\n", solve.SolveID)
	fmt.Printf("Recorded: %s\n", solve.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("Scramble: %s\n", solve.Scramble)
	fmt.Printf("Solution: %s\n", solve.Solution)
	fmt.Printf("Moves:    %d\n", solve.SolutionLen)
	fmt.Printf("States:   %d\n", solve.StatesExplored)
	fmt.Printf("Search:   %dms\n", solve.SearchMs)

	return nil
}
