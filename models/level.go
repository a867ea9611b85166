package models

type LevelDifficulty string

const (
	DifficultyEasy   LevelDifficulty = "easy"
	DifficultyMedium LevelDifficulty = "medium"
	DifficultyHard   LevelDifficulty = "hard"
)

// Level is static reference data seeded once via POST /seed.
type Level struct {
	ID          uint32          `gorm:"primarykey" json:"id"`
	LevelNumber int             `gorm:"not null" json:"level_number"`
	Title       string          `gorm:"size:100;not null" json:"title"`
	Description string          `gorm:"size:500" json:"description"`
	Difficulty  LevelDifficulty `gorm:"size:10;not null;default:'easy'" json:"difficulty"`
	VideoID     string          `gorm:"size:20" json:"video_id"`
	XPReward    int             `gorm:"not null;default:0" json:"xp_reward"`
	CoinReward  int             `gorm:"not null;default:0" json:"coin_reward"`
}

func (Level) TableName() string {
	return "levels"
}
