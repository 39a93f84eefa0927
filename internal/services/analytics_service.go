package services

import (
	"sort"
	"sync"

	"connectfour/internal/board"
	"connectfour/internal/models"
	"connectfour/pkg/logger"

	"go.uber.org/zap"
)

// AnalyticsService aggregates game events in memory. Completed games are
// also recorded on the leaderboard.
type AnalyticsService struct {
	leaderboard *LeaderboardService

	mu sync.RWMutex

	started      int
	completed    int
	draws        int
	resignations int
	totalMoves   int
	totalSeconds float64
	winsBy       map[string]int
	columnCounts [board.Columns]int
}

type GameAnalytics struct {
	GamesStarted    int             `json:"games_started"`
	GamesCompleted  int             `json:"games_completed"`
	Draws           int             `json:"draws"`
	Resignations    int             `json:"resignations"`
	DrawRate        float64         `json:"draw_rate"`
	AvgMovesPerGame float64         `json:"avg_moves_per_game"`
	AvgGameDuration float64         `json:"avg_game_duration"`
	WinsBy          map[string]int  `json:"wins_by"`
	PopularColumns  []PopularColumn `json:"popular_columns"`
}

type PopularColumn struct {
	Column     int     `json:"column"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

func NewAnalyticsService(leaderboard *LeaderboardService) *AnalyticsService {
	if leaderboard == nil {
		leaderboard = NewLeaderboardService()
	}
	return &AnalyticsService{leaderboard: leaderboard, winsBy: make(map[string]int)}
}

func (as *AnalyticsService) Leaderboard() *LeaderboardService {
	return as.leaderboard
}

func (as *AnalyticsService) ProcessGameStarted(event models.GameStartedEvent) {
	as.mu.Lock()
	as.started++
	as.mu.Unlock()
	logger.Log.Info("Processed GAME_STARTED event", zap.String("game_id", event.GameID.String()))
}

func (as *AnalyticsService) ProcessMoveMade(event models.MoveMadeEvent) {
	if event.Column < 0 || event.Column >= board.Columns {
		logger.Log.Warn("Ignoring move with invalid column",
			zap.String("game_id", event.GameID.String()),
			zap.Int("column", event.Column),
		)
		return
	}
	as.mu.Lock()
	as.columnCounts[event.Column]++
	as.mu.Unlock()
	logger.Log.Debug("Processed MOVE_MADE event", zap.String("game_id", event.GameID.String()))
}

func (as *AnalyticsService) ProcessGameCompleted(event models.GameCompletedEvent) {
	as.mu.Lock()
	as.completed++
	as.totalMoves += event.TotalMoves
	as.totalSeconds += event.DurationSeconds
	switch event.Status {
	case models.GameStatusDraw:
		as.draws++
	case models.GameStatusResigned:
		as.resignations++
	}
	if event.Winner != nil {
		as.winsBy[winnerKind(event)]++
	}
	as.mu.Unlock()
	as.leaderboard.RecordGame(event)

	logger.Log.Info("Processed GAME_COMPLETED event",
		zap.String("game_id", event.GameID.String()),
		zap.String("status", string(event.Status)),
	)
}

// winnerKind labels the winner "human" or by the bot's difficulty.
func winnerKind(event models.GameCompletedEvent) string {
	for _, p := range []models.PlayerInfo{event.Player1, event.Player2} {
		if p.Name != *event.Winner {
			continue
		}
		if !p.IsBot {
			return "human"
		}
		if p.Difficulty != "" {
			return p.Difficulty
		}
		return "bot"
	}
	return "unknown"
}

func (as *AnalyticsService) Snapshot() GameAnalytics {
	as.mu.RLock()
	defer as.mu.RUnlock()

	out := GameAnalytics{
		GamesStarted:   as.started,
		GamesCompleted: as.completed,
		Draws:          as.draws,
		Resignations:   as.resignations,
		WinsBy:         make(map[string]int, len(as.winsBy)),
	}
	for k, v := range as.winsBy {
		out.WinsBy[k] = v
	}
	if as.completed > 0 {
		out.DrawRate = float64(as.draws) / float64(as.completed) * 100
		out.AvgMovesPerGame = float64(as.totalMoves) / float64(as.completed)
		out.AvgGameDuration = as.totalSeconds / float64(as.completed)
	}

	total := 0
	for _, n := range as.columnCounts {
		total += n
	}
	for col, n := range as.columnCounts {
		if n == 0 {
			continue
		}
		out.PopularColumns = append(out.PopularColumns, PopularColumn{
			Column:     col,
			Count:      n,
			Percentage: float64(n) / float64(total) * 100,
		})
	}
	sort.SliceStable(out.PopularColumns, func(i, j int) bool {
		return out.PopularColumns[i].Count > out.PopularColumns[j].Count
	})
	return out
}
