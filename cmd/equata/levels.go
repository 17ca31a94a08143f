package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/equata/internal/games/equata/level"
	"github.com/vovakirdan/equata/internal/games/equata/levels"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the level catalog",
	Long: `Shows every level in the catalog with its degree and time budget.
Levels you have cleared are marked with *.

Examples:
  equata levels
  equata levels --levels ./my-levels`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

var validateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Check level files",
	Long: `Parses and validates level files, reporting every problem found.
A level is valid when it has an id, finite coefficients, a positive
time budget and at least two real roots in [-10, 10].

Examples:
  equata validate my-levels/*.yaml`,
	Args: cobra.MinimumNArgs(1),
	Run:  runValidate,
}

func runLevels(_ *cobra.Command, _ []string) {
	logger := newLogger("equata")
	defs := loadCatalog(logger)

	if len(defs) == 0 {
		fmt.Println("No levels found.")
		return
	}

	cleared := map[string]bool{}
	if store := openStore(logger); store != nil {
		if c, err := store.ClearedLevels(); err == nil {
			cleared = c
		}
		store.Close()
	}

	fmt.Printf("  %-6s  %-20s  %-6s  %-8s  %s\n", "ID", "Name", "Degree", "Time", "Equation")
	fmt.Printf("  %-6s  %-20s  %-6s  %-8s  %s\n", "--", "----", "------", "----", "--------")
	for _, d := range defs {
		mark := " "
		if cleared[d.ID] {
			mark = "*"
		}
		fmt.Printf("%s %-6s  %-20s  %-6d  %-8s  y = %s\n",
			mark, d.ID, d.Name, d.Degree(), fmt.Sprintf("%.0fs", d.MaxTime), level.Template(d.Degree()))
	}
}

func runValidate(_ *cobra.Command, args []string) {
	failed := 0
	for _, path := range args {
		def, err := levels.ReadFile(path)
		if err == nil {
			err = levels.Validate(def)
		}
		if err != nil {
			failed++
			fmt.Printf("FAIL  %s: %v\n", path, err)
			continue
		}

		lvl, err := def.NewLevel(1)
		if err != nil {
			failed++
			fmt.Printf("FAIL  %s: %v\n", path, err)
			continue
		}
		start, end := lvl.Domain()
		lim := lvl.Limits()
		fmt.Printf("ok    %s: %s, y = %s, path x in [%.3g, %.3g], plot y in [%.3g, %.3g]\n",
			path, def.Label(), level.Polynomial(def.Coefficients).String(), start, end, lim.Min.Y, lim.Max.Y)
	}

	if failed > 0 {
		fmt.Fprintf(os.Stderr, "%d of %d level file(s) invalid\n", failed, len(args))
		os.Exit(1)
	}
}
