// ecoloopadmin is the out-of-band maintenance tool. It opens the same
// SQLite file as the API and operates on it directly; it provides no
// locking coordination with a running server.
package main

import (
	"log"
	"os"

	"ecoloop/database"

	"github.com/spf13/cobra"
)

var dbPath string

var rootCmd = &cobra.Command{
	Use:   "ecoloopadmin",
	Short: "Maintenance tool for the EcoLoop database",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if _, err := os.Stat(dbPath); err != nil {
			log.Fatalf("Database not found at %s", dbPath)
		}
		database.Connect(dbPath)
	},
}

func main() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "ecoloop.db", "path to the SQLite database")
	rootCmd.AddCommand(usersCmd)
	rootCmd.AddCommand(challengesCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
