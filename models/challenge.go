package models

import "time"

type ChallengeType string

const (
	ChallengeDaily  ChallengeType = "daily"
	ChallengeWeekly ChallengeType = "weekly"
)

// Challenge and the two join tables below are maintained by the admin CLI
// only; the API never writes them. They share the store so that deleting a
// user can cascade over everything the user owns.
type Challenge struct {
	ID         uint32        `gorm:"primarykey" json:"id"`
	Title      string        `gorm:"size:100;not null" json:"title"`
	Type       ChallengeType `gorm:"size:10;not null" json:"type"`
	CoinReward int           `gorm:"not null;default:0" json:"coin_reward"`
}

func (Challenge) TableName() string {
	return "challenges"
}

type UserChallengeCompletion struct {
	ID          uint32    `gorm:"primarykey" json:"id"`
	UserID      uint32    `gorm:"index;not null" json:"user_id"`
	ChallengeID uint32    `gorm:"index;not null" json:"challenge_id"`
	CompletedAt time.Time `json:"completed_at"`
}

func (UserChallengeCompletion) TableName() string {
	return "user_challenge_completions"
}

type UserItem struct {
	ID       uint32 `gorm:"primarykey" json:"id"`
	UserID   uint32 `gorm:"index;not null" json:"user_id"`
	ItemName string `gorm:"size:100;not null" json:"item_name"`
	Quantity int    `gorm:"not null;default:1" json:"quantity"`
}

func (UserItem) TableName() string {
	return "user_items"
}
