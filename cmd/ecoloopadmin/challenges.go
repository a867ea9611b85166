package main

import (
	"fmt"
	"log"

	"ecoloop/database"
	"ecoloop/models"

	"github.com/spf13/cobra"
)

var (
	challengeType string
	coinReward    int
)

var challengesCmd = &cobra.Command{
	Use:   "challenges",
	Short: "Inspect and bulk-edit challenge rewards",
}

var challengesListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print all challenges with their rewards",
	Run: func(cmd *cobra.Command, args []string) {
		printChallenges()
	},
}

var challengesSetRewardCmd = &cobra.Command{
	Use:   "set-reward",
	Short: "Bulk-update the coin reward for a challenge type",
	Run: func(cmd *cobra.Command, args []string) {
		if challengeType != string(models.ChallengeDaily) && challengeType != string(models.ChallengeWeekly) {
			log.Fatalf("Invalid --type %q (daily/weekly)", challengeType)
		}
		result := database.DB.Model(&models.Challenge{}).
			Where("type = ?", challengeType).
			Update("coin_reward", coinReward)
		if result.Error != nil {
			log.Fatalf("Update failed: %v", result.Error)
		}
		fmt.Printf("Updated %d %s challenges to %d coins.\n", result.RowsAffected, challengeType, coinReward)
		printChallenges()
	},
}

func printChallenges() {
	var challenges []models.Challenge
	if err := database.DB.Order("id").Find(&challenges).Error; err != nil {
		log.Fatalf("Query failed: %v", err)
	}
	for _, ch := range challenges {
		fmt.Printf("%s (%s): %d\n", ch.Title, ch.Type, ch.CoinReward)
	}
}

func init() {
	challengesSetRewardCmd.Flags().StringVar(&challengeType, "type", "", "challenge type to update (daily/weekly)")
	challengesSetRewardCmd.Flags().IntVar(&coinReward, "coins", 20, "new coin reward")
	challengesSetRewardCmd.MarkFlagRequired("type")
	challengesCmd.AddCommand(challengesListCmd, challengesSetRewardCmd)
}
