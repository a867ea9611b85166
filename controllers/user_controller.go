package controllers

import (
	"ecoloop/database"
	"ecoloop/dto"
	"ecoloop/middlewares"
	"ecoloop/models"
	"ecoloop/utils"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}
	req.Username = strings.ToLower(req.Username)

	var existing models.User
	if err := database.DB.Where("username = ?", req.Username).First(&existing).Error; err == nil {
		utils.Error(c, http.StatusBadRequest, "Username already registered")
		return
	}
	if err := database.DB.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		utils.Error(c, http.StatusBadRequest, "Email already registered")
		return
	}

	newUser := models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Coins:    0,
		Streak:   1,
	}
	if err := database.DB.Create(&newUser).Error; err != nil {
		utils.Error(c, http.StatusBadRequest, "Could not create user: "+err.Error())
		return
	}

	token, err := utils.GenerateToken(newUser)
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "Could not generate token")
		return
	}
	c.JSON(http.StatusOK, dto.TokenResp{AccessToken: token, TokenType: "bearer"})
}

func Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}
	req.Username = strings.ToLower(req.Username)

	var user models.User
	if err := database.DB.Where("username = ?", req.Username).First(&user).Error; err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid credentials")
		return
	}
	if !user.CheckPassword(req.Password) {
		utils.Error(c, http.StatusBadRequest, "Invalid credentials")
		return
	}

	// Repeat logins within the same day leave the row untouched.
	if user.TouchLoginStreak(time.Now()) {
		if err := database.DB.Model(&user).Updates(map[string]interface{}{
			"streak":     user.Streak,
			"last_login": user.LastLogin,
		}).Error; err != nil {
			utils.Error(c, http.StatusInternalServerError, "Could not update login streak")
			return
		}
	}

	token, err := utils.GenerateToken(user)
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "Could not generate token")
		return
	}
	c.JSON(http.StatusOK, dto.TokenResp{AccessToken: token, TokenType: "bearer"})
}

func GetMe(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	c.JSON(http.StatusOK, user)
}

// UpdateProgress credits the submitted coin delta and max-merges the
// per-level score. The coin grant is applied on every call even when the
// level was already COMPLETED; only status and score are guarded against
// re-submission.
func UpdateProgress(c *gin.Context) {
	var req dto.ProgressUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	user := middlewares.CurrentUser(c)

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		user.Coins += req.CoinsEarned
		if err := tx.Model(&models.User{}).Where("id = ?", user.ID).
			Update("coins", user.Coins).Error; err != nil {
			return err
		}

		var progress models.UserProgress
		err := tx.Where("user_id = ? AND level_id = ?", user.ID, req.LevelID).
			First(&progress).Error
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			progress = models.UserProgress{
				UserID:  user.ID,
				LevelID: req.LevelID,
				Status:  models.ProgressCompleted,
				Score:   req.XPEarned,
			}
			return tx.Create(&progress).Error
		}

		progress.ApplyCompletion(req.XPEarned)
		return tx.Save(&progress).Error
	})
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "Could not update progress: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, dto.ProgressUpdateResp{
		Message:    "Progress Updated",
		NewBalance: user.Coins,
	})
}
