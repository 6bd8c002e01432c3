// Command champnet answers "best k-member lineup" queries over championship
// roster data: it ingests cleaned roster CSVs into a local SQLite database,
// builds the weighted co-occurrence graph, and searches every connected
// k-node group for the maximum-scoring one.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/champlab/champnet/builder"
	"github.com/champlab/champnet/rosterdb"
)

var rootCmd = &cobra.Command{
	Use:   "champnet",
	Short: "Championship roster co-occurrence graph and best-lineup search",
	Long: "champnet builds a weighted co-occurrence graph from championship rosters\n" +
		"(node weight = titles won, edge weight = titles won together) and finds\n" +
		"the highest-scoring connected lineup of a fixed size, optionally pinned\n" +
		"to a required player.",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default .champnet.yaml)")
	rootCmd.PersistentFlags().String("db", "champnet.db", "roster database path")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")

	_ = viper.BindPFlag("db", rootCmd.PersistentFlags().Lookup("db"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".champnet")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("CHAMPNET")
	viper.AutomaticEnv()

	// Missing config file is fine; defaults apply.
	_ = viper.ReadInConfig()

	if viper.GetBool("verbose") {
		log.SetLevel(log.DebugLevel)
	}
}

// loadRecords resolves the roster source: an explicit one-off CSV when given,
// otherwise the configured database.
func loadRecords(ctx context.Context, csvPath string) ([]builder.Record, error) {
	if csvPath != "" {
		rows, err := rosterdb.ReadCSV(csvPath)
		if err != nil {
			return nil, err
		}
		log.Debug("loaded rosters from CSV", "file", csvPath, "rows", len(rows))

		return rosterdb.RecordsFromRows(rows), nil
	}

	store, err := rosterdb.Open(viper.GetString("db"))
	if err != nil {
		return nil, err
	}
	defer store.Close()

	recs, err := store.Records(ctx)
	if err != nil {
		return nil, err
	}
	log.Debug("loaded rosters from database", "db", viper.GetString("db"), "rows", len(recs))

	return recs, nil
}
