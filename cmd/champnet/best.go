package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/champlab/champnet/builder"
	"github.com/champlab/champnet/lineup"
	"github.com/champlab/champnet/pathenum"
)

var bestCmd = &cobra.Command{
	Use:   "best",
	Short: "Find the maximum-scoring connected lineup",
	Long: "best enumerates every distinct connected lineup of the requested size\n" +
		"and prints the one with the highest combined node+edge score. With\n" +
		"--with, only lineups containing that player are considered.",
	RunE: runBest,
}

func init() {
	bestCmd.Flags().IntP("size", "k", 5, "lineup size")
	bestCmd.Flags().String("with", "", "required player (empty = unconstrained)")
	bestCmd.Flags().Int("workers", 1, "parallel enumeration workers")
	bestCmd.Flags().String("csv", "", "query a one-off CSV instead of the database")
	rootCmd.AddCommand(bestCmd)
}

func runBest(cmd *cobra.Command, args []string) error {
	size, _ := cmd.Flags().GetInt("size")
	withMember, _ := cmd.Flags().GetString("with")
	workers, _ := cmd.Flags().GetInt("workers")
	csvPath, _ := cmd.Flags().GetString("csv")

	records, err := loadRecords(cmd.Context(), csvPath)
	if err != nil {
		return err
	}

	g, err := builder.Build(records)
	if err != nil {
		return err
	}
	log.Info("graph ready", "players", g.NodeCount(), "pairings", g.EdgeCount())

	opts := []pathenum.Option{pathenum.WithContext(cmd.Context())}
	if workers > 1 {
		opts = append(opts, pathenum.WithWorkers(workers))
	}

	log.Info("enumerating lineups", "size", size, "workers", workers)
	a, err := lineup.NewAnalyzer(g, size, opts...)
	if err != nil {
		return err
	}
	log.Info("enumeration complete", "lineups", a.Library().Len())

	var res *lineup.Result
	if withMember != "" {
		res, err = a.BestTeamWith(withMember)
	} else {
		res, err = a.BestTeam()
	}
	if err != nil {
		return err
	}
	if res == nil {
		fmt.Println("no lineup found")
		return nil
	}

	fmt.Printf("best lineup (score %d):\n", res.Score)
	for _, m := range res.Lineup.Canonical() {
		titles, err := g.NodeWeight(m)
		if err != nil {
			return err
		}
		fmt.Printf("  %-28s titles=%d\n", m, titles)
	}

	return nil
}
