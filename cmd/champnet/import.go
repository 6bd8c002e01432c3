package main

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/champlab/champnet/rosterdb"
)

var importCmd = &cobra.Command{
	Use:   "import <rosters.csv>",
	Short: "Ingest a cleaned roster CSV into the roster database",
	Long: "import reads a Season,Team,Player CSV (already cleaned and normalized\n" +
		"upstream) and appends any rows not yet present to the roster database.",
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	store, err := rosterdb.Open(viper.GetString("db"))
	if err != nil {
		return err
	}
	defer store.Close()

	added, err := store.ImportCSV(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	total, err := store.Count(cmd.Context())
	if err != nil {
		return err
	}

	log.Info("import complete", "file", args[0], "added", added, "total", total)

	return nil
}
