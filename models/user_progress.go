package models

import "time"

type ProgressStatus string

const (
	ProgressNotStarted ProgressStatus = "NOT_STARTED"
	ProgressCompleted  ProgressStatus = "COMPLETED"
)

// UserProgress tracks per-user, per-level completion. Only COMPLETED rows
// are ever persisted; absence of a row means NOT_STARTED.
type UserProgress struct {
	UserID    uint32         `gorm:"primarykey;autoIncrement:false" json:"user_id"`
	LevelID   uint32         `gorm:"primarykey;autoIncrement:false" json:"level_id"`
	Status    ProgressStatus `gorm:"size:20;not null;default:'NOT_STARTED'" json:"status"`
	Score     int            `gorm:"not null;default:0" json:"score"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func (UserProgress) TableName() string {
	return "user_progress"
}

// ApplyCompletion marks the level completed and max-merges the score, so
// a lower resubmission can never downgrade an earlier score and a higher
// one always wins.
func (p *UserProgress) ApplyCompletion(xpEarned int) {
	p.Status = ProgressCompleted
	if xpEarned > p.Score {
		p.Score = xpEarned
	}
}
