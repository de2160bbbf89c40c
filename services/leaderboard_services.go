package services

import (
	"context"
	"fmt"
	"log"
	"sort"

	"workshophub/database"
	"workshophub/models"
)

// RefreshRanks recomputes ranks from a stable sort by total score descending.
// Ties keep their prior order in the slice; rank is position + 1.
func RefreshRanks(entries []*models.LeaderboardEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].TotalScore > entries[j].TotalScore
	})
	for i, entry := range entries {
		entry.Rank = i + 1
	}
}

// AdjustScore adds delta to an entry's total. Negative totals are permitted.
// Rank is deliberately left untouched: it stays stale until the next refresh.
func AdjustScore(entry *models.LeaderboardEntry, delta int) {
	entry.TotalScore += delta
}

// RefreshLeaderboard recomputes and persists ranks for a workshop. Entries are
// loaded in creation order so tie-breaks are deterministic, and each new rank
// is written individually.
func RefreshLeaderboard(ctx context.Context, workshopID string) ([]*models.LeaderboardEntry, error) {
	var entries []*models.LeaderboardEntry
	if err := database.DB.WithContext(ctx).
		Where("workshop_id = ?", workshopID).
		Order("created_at ASC").
		Preload("Group").
		Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch leaderboard entries: %w", err)
	}

	RefreshRanks(entries)

	for _, entry := range entries {
		if err := database.DB.WithContext(ctx).Model(entry).Update("rank", entry.Rank).Error; err != nil {
			return nil, fmt.Errorf("failed to persist rank for entry %s: %w", entry.ID, err)
		}
	}

	InvalidateLeaderboardCache(ctx, workshopID)
	return entries, nil
}

// AdjustEntryScore adds delta to a single entry's total score without
// recomputing any rank
func AdjustEntryScore(ctx context.Context, entryID string, delta int) (models.LeaderboardEntry, error) {
	var entry models.LeaderboardEntry
	if err := database.DB.WithContext(ctx).First(&entry, "id = ?", entryID).Error; err != nil {
		return entry, fmt.Errorf("leaderboard entry not found: %w", err)
	}
	AdjustScore(&entry, delta)
	if err := database.DB.WithContext(ctx).Model(&entry).Update("total_score", entry.TotalScore).Error; err != nil {
		return entry, fmt.Errorf("failed to update score: %w", err)
	}
	InvalidateLeaderboardCache(ctx, entry.WorkshopID)
	return entry, nil
}

// InvalidateLeaderboardCache drops the cached standings for a workshop
func InvalidateLeaderboardCache(ctx context.Context, workshopID string) {
	if database.REDIS == nil {
		return
	}
	if err := database.REDIS.Del(ctx, LeaderboardCacheKey(workshopID)).Err(); err != nil {
		log.Printf("Failed to invalidate leaderboard cache for workshop %s: %v", workshopID, err)
	}
}

// LeaderboardCacheKey builds the redis key holding a workshop's standings
func LeaderboardCacheKey(workshopID string) string {
	return "leaderboard:" + workshopID
}
