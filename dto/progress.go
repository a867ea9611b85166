package dto

type ProgressUpdateReq struct {
	LevelID     uint32 `json:"level_id" binding:"required"`
	CoinsEarned int    `json:"coins_earned"`
	XPEarned    int    `json:"xp_earned"`
}

type ProgressUpdateResp struct {
	Message    string `json:"message"`
	NewBalance int    `json:"new_balance"`
}
