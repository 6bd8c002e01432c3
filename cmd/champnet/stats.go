package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/champlab/champnet/builder"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show graph size and the most-decorated players",
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().Int("top", 10, "number of top players to list")
	statsCmd.Flags().String("csv", "", "inspect a one-off CSV instead of the database")
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	top, _ := cmd.Flags().GetInt("top")
	csvPath, _ := cmd.Flags().GetString("csv")

	records, err := loadRecords(cmd.Context(), csvPath)
	if err != nil {
		return err
	}

	g, err := builder.Build(records)
	if err != nil {
		return err
	}

	fmt.Printf("players:  %d\n", g.NodeCount())
	fmt.Printf("pairings: %d\n", g.EdgeCount())

	type entry struct {
		id string
		w  int64
	}
	nodes := g.Nodes()
	entries := make([]entry, 0, len(nodes))
	for _, id := range nodes {
		w, err := g.NodeWeight(id)
		if err != nil {
			return err
		}
		entries = append(entries, entry{id: id, w: w})
	}
	// Stable keeps insertion order among equally decorated players.
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].w > entries[j].w })

	if top > len(entries) {
		top = len(entries)
	}
	fmt.Printf("top %d by titles:\n", top)
	for _, e := range entries[:top] {
		fmt.Printf("  %-28s %d\n", e.id, e.w)
	}

	return nil
}
