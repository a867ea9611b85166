package controllers

import (
	"ecoloop/database"
	"ecoloop/models"
	"ecoloop/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

var defaultLevels = []models.Level{
	{LevelNumber: 1, Title: "Recycling Basics", Description: "Learn how to sort household waste and start your recycling habit.", Difficulty: models.DifficultyEasy, VideoID: "J1Gg3A9hVl0", XPReward: 50, CoinReward: 20},
	{LevelNumber: 2, Title: "Save Every Drop", Description: "Simple changes that cut your daily water footprint.", Difficulty: models.DifficultyEasy, VideoID: "nTcFXJT0Fsc", XPReward: 50, CoinReward: 20},
	{LevelNumber: 3, Title: "Energy at Home", Description: "Spot the hidden energy drains in your home and switch them off.", Difficulty: models.DifficultyMedium, VideoID: "1-g73ty9v04", XPReward: 75, CoinReward: 30},
	{LevelNumber: 4, Title: "Plant a Tree", Description: "Why trees matter and how to plant one that survives.", Difficulty: models.DifficultyMedium, VideoID: "witBHBW1Jh4", XPReward: 75, CoinReward: 30},
	{LevelNumber: 5, Title: "Greener Commutes", Description: "Rethink the daily trip: walking, cycling and public transport.", Difficulty: models.DifficultyHard, VideoID: "MbrE2vLLsLU", XPReward: 100, CoinReward: 40},
	{LevelNumber: 6, Title: "Zero-Waste Week", Description: "Take on a full week of producing as little waste as possible.", Difficulty: models.DifficultyHard, VideoID: "pF72px2R3Hg", XPReward: 100, CoinReward: 40},
}

func GetLevels(c *gin.Context) {
	var levels []models.Level
	if err := database.DB.Order("level_number asc").Find(&levels).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Could not load levels")
		return
	}
	c.JSON(http.StatusOK, levels)
}

// SeedLevels populates the static level table once; calling it again is a
// no-op.
func SeedLevels(c *gin.Context) {
	var count int64
	if err := database.DB.Model(&models.Level{}).Count(&count).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Could not inspect levels")
		return
	}
	if count > 0 {
		c.JSON(http.StatusOK, gin.H{"message": "Data already seeded"})
		return
	}

	if err := database.DB.Create(&defaultLevels).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Could not seed levels")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Levels seeded successfully!"})
}
