package services

import (
	"sort"
	"strings"
	"sync"

	"connectfour/internal/models"
)

// LeaderboardService keeps per-player standings from completed games.
// Players are matched case-insensitively, like seat names.
type LeaderboardService struct {
	mu      sync.RWMutex
	players map[string]*models.LeaderboardEntry
}

func NewLeaderboardService() *LeaderboardService {
	return &LeaderboardService{players: make(map[string]*models.LeaderboardEntry)}
}

func (ls *LeaderboardService) RecordGame(event models.GameCompletedEvent) {
	ls.mu.Lock()
	defer ls.mu.Unlock()

	for _, p := range []models.PlayerInfo{event.Player1, event.Player2} {
		key := strings.ToLower(p.Name)
		entry, ok := ls.players[key]
		if !ok {
			entry = &models.LeaderboardEntry{Username: p.Name, IsBot: p.IsBot}
			ls.players[key] = entry
		}
		entry.GamesPlayed++
		switch {
		case event.Status == models.GameStatusDraw:
			entry.GamesDrawn++
		case event.Winner != nil && strings.EqualFold(*event.Winner, p.Name):
			entry.GamesWon++
		}
		entry.WinRate = float64(entry.GamesWon) / float64(entry.GamesPlayed) * 100
	}
}

// GetLeaderboard orders players by wins, then win rate, then name.
func (ls *LeaderboardService) GetLeaderboard(limit int) []models.LeaderboardEntry {
	ls.mu.RLock()
	entries := make([]models.LeaderboardEntry, 0, len(ls.players))
	for _, e := range ls.players {
		entries = append(entries, *e)
	}
	ls.mu.RUnlock()

	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.GamesWon != b.GamesWon {
			return a.GamesWon > b.GamesWon
		}
		if a.WinRate != b.WinRate {
			return a.WinRate > b.WinRate
		}
		return a.Username < b.Username
	})
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

// GetPlayerStats returns nil for an unknown player.
func (ls *LeaderboardService) GetPlayerStats(username string) *models.LeaderboardEntry {
	ls.mu.RLock()
	defer ls.mu.RUnlock()
	e, ok := ls.players[strings.ToLower(username)]
	if !ok {
		return nil
	}
	out := *e
	return &out
}
