package services

import (
	"testing"

	"workshophub/models"

	"github.com/stretchr/testify/assert"
)

func makeEntries(scores ...int) []*models.LeaderboardEntry {
	entries := make([]*models.LeaderboardEntry, 0, len(scores))
	for i, score := range scores {
		entries = append(entries, &models.LeaderboardEntry{
			ID:         string(rune('A' + i)),
			TotalScore: score,
		})
	}
	return entries
}

func TestRefreshRanks_SortsByScoreDescending(t *testing.T) {
	entries := makeEntries(10, 40, 25)
	byID := map[string]*models.LeaderboardEntry{"A": entries[0], "B": entries[1], "C": entries[2]}

	RefreshRanks(entries)

	assert.Equal(t, 1, byID["B"].Rank)
	assert.Equal(t, 2, byID["C"].Rank)
	assert.Equal(t, 3, byID["A"].Rank)
}

func TestRefreshRanks_TiesKeepPriorOrder(t *testing.T) {
	// A=30, B=50, C=50, D=10: the sort is stable, so B stays ahead of C
	entries := makeEntries(30, 50, 50, 10)
	byID := map[string]*models.LeaderboardEntry{
		"A": entries[0], "B": entries[1], "C": entries[2], "D": entries[3],
	}

	RefreshRanks(entries)

	assert.Equal(t, 1, byID["B"].Rank)
	assert.Equal(t, 2, byID["C"].Rank)
	assert.Equal(t, 3, byID["A"].Rank)
	assert.Equal(t, 4, byID["D"].Rank)
}

func TestRefreshRanks_EmptyLeaderboard(t *testing.T) {
	assert.NotPanics(t, func() { RefreshRanks(nil) })
}

func TestAdjustScore_NeverTouchesRank(t *testing.T) {
	entries := makeEntries(20, 35)
	RefreshRanks(entries)
	ranksBefore := []int{entries[0].Rank, entries[1].Rank}

	AdjustScore(entries[0], 100)
	AdjustScore(entries[1], -5)

	assert.Equal(t, ranksBefore[0], entries[0].Rank)
	assert.Equal(t, ranksBefore[1], entries[1].Rank)
}

func TestAdjustScore_NegativeTotalsPermitted(t *testing.T) {
	entry := &models.LeaderboardEntry{TotalScore: 5}

	AdjustScore(entry, -20)
	assert.Equal(t, -15, entry.TotalScore)
}
