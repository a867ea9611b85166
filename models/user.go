package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

type User struct {
	ID        uint32     `gorm:"primarykey" json:"id"`
	Username  string     `gorm:"size:50;unique;not null" json:"username"`
	Email     string     `gorm:"size:100;unique;not null" json:"email"`
	Password  string     `gorm:"size:255;not null" json:"-"`
	Coins     int        `gorm:"not null;default:0" json:"coins"`
	Streak    int        `gorm:"not null;default:1" json:"streak"`
	LastLogin *time.Time `gorm:"type:date" json:"last_login,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// BeforeSave hashes the password on create and whenever it changes.
func (u *User) BeforeSave(tx *gorm.DB) (err error) {
	if u.ID == 0 || tx.Statement.Changed("Password") {
		hashed, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		u.Password = string(hashed)
	}
	return
}

func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

// TouchLoginStreak applies the daily streak rules for a login at now.
// Consecutive-day logins extend the streak, anything else resets it to 1,
// and repeat logins within the same day change nothing. Returns true when
// the user needs to be persisted, i.e. the login day actually changed.
func (u *User) TouchLoginStreak(now time.Time) bool {
	today := now.Format(dateLayout)
	if u.LastLogin != nil && u.LastLogin.Format(dateLayout) == today {
		return false
	}
	yesterday := now.AddDate(0, 0, -1).Format(dateLayout)
	if u.LastLogin != nil && u.LastLogin.Format(dateLayout) == yesterday {
		u.Streak++
	} else {
		u.Streak = 1
	}
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	u.LastLogin = &day
	return true
}
