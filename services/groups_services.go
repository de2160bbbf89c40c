package services

import (
	"fmt"

	"workshophub/config"
	"workshophub/database"
	"workshophub/models"
	"workshophub/utils"
)

// UniqueGroupCode generates a join code no existing group uses. Collisions are
// statistically rare; on one, a fresh code is drawn up to the configured
// number of attempts.
func UniqueGroupCode() (string, error) {
	cfg := config.DefaultGroupCodeConfig
	for attempt := 0; attempt < cfg.MaxAttempts; attempt++ {
		code := utils.GenerateGroupCode(cfg.Length)
		var count int64
		if err := database.DB.Model(&models.Group{}).
			Where("group_code = ?", code).
			Count(&count).Error; err != nil {
			return "", fmt.Errorf("failed to check group code uniqueness: %w", err)
		}
		if count == 0 {
			return code, nil
		}
	}
	return "", fmt.Errorf("could not generate an unused group code after %d attempts", cfg.MaxAttempts)
}
