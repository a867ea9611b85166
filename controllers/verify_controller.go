package controllers

import (
	"ecoloop/services"
	"ecoloop/utils"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

// VerifyTask accepts a multipart photo/video upload plus a task label and
// returns the AI validator's verdict. AI-side failures still produce a
// 200 with a degraded result body; only a missing or unreadable upload is
// a client error.
func VerifyTask(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "Missing file upload")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "Could not read file upload")
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "Could not read file upload")
		return
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	taskLabel := c.DefaultQuery("task_label", "nature conservation")
	taskType := c.DefaultQuery("task_type", "Daily Task")

	result := services.Verifier.Verify(c.Request.Context(), content, mimeType, taskLabel, taskType)
	c.JSON(http.StatusOK, result)
}
