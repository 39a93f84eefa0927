package console

import (
	"context"
	"errors"
	"fmt"

	"connectfour/internal/board"
	"connectfour/internal/bot"
	"connectfour/internal/services"
	"connectfour/pkg/logger"

	"go.uber.org/zap"
)

// SetupSeats asks for player one's name, then for a second human or a
// computer difficulty. Player one always holds X.
func (c *Console) SetupSeats(engine *bot.Bot) (services.Seat, services.Seat, error) {
	fmt.Fprintln(c.out)
	name, err := c.AskName("Player 1", "")
	if err != nil {
		return services.Seat{}, services.Seat{}, err
	}
	first := services.Seat{Name: name, Token: board.PlayerA, Provider: c.Human(name), Human: true}
	fmt.Fprintln(c.out)

	human, err := c.AskOpponent(first)
	if err != nil {
		return services.Seat{}, services.Seat{}, err
	}
	fmt.Fprintln(c.out)

	if human {
		name, err := c.AskName("Player 2", first.Name)
		if err != nil {
			return services.Seat{}, services.Seat{}, err
		}
		second := services.Seat{Name: name, Token: board.PlayerB, Provider: c.Human(name), Human: true}
		return first, second, nil
	}

	level, err := c.AskDifficulty()
	if err != nil {
		return services.Seat{}, services.Seat{}, err
	}
	second := services.Seat{
		Name:       "Computer(" + level.String() + ")",
		Token:      board.PlayerB,
		Provider:   bot.NewComputer(engine, level),
		Difficulty: level.String(),
	}
	return first, second, nil
}

// Run plays games until the players decline another one or input ends.
// Seats that cannot play each other are set up again.
func (c *Console) Run(ctx context.Context, games *services.GameService, engine *bot.Bot) error {
	c.Banner()
	for {
		a, b, err := c.SetupSeats(engine)
		if errors.Is(err, ErrInputClosed) {
			return nil
		}
		if err != nil {
			return err
		}

		g, err := games.NewGame(a, b, games.RandomFirstSeat())
		if err != nil {
			fmt.Fprintf(c.out, "Sorry, %v!\n", err)
			continue
		}
		if err := games.Play(ctx, g, c); err != nil {
			return fmt.Errorf("failed to play game: %w", err)
		}
		logger.Log.Debug("Console game finished",
			zap.String("game_id", g.ID.String()),
			zap.String("status", string(g.Status)),
		)

		if !c.AskPlayAgain() {
			return nil
		}
	}
}
