package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/ultimate-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/entity"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/repository"
)

var errBotCrashed = errors.New("bot crashed")

type mockBot struct {
	mock.Mock
}

func (that *mockBot) MakeTurn(game *entity.Game) (entity.Move, error) {
	args := that.Called(game)

	move, _ := args.Get(0).(entity.Move)
	if err := args.Error(1); err != nil {
		return move, err
	}

	if err := game.MakeTurn(game.Turn, move.Board, move.Cell); err != nil {
		return move, err
	}

	return move, nil
}

func newManager(t *testing.T) (*GameManager, *mockBot) {
	t.Helper()

	bot := &mockBot{}
	t.Cleanup(func() { bot.AssertExpectations(t) })

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	return NewGameManager(logger, repository.NewGameRepository(), bot), bot
}

func TestGameManager_CreateGame(t *testing.T) {
	ctx := context.Background()

	t.Run("Creates an ongoing game between two humans", func(t *testing.T) {
		manager, _ := newManager(t)

		// When: creating a human game with the first player as O
		game, err := manager.CreateGame(ctx, entity.OpponentHuman, entity.MarkO)

		// Then: both players exist, X opens and the game is stored
		require.NoError(t, err)
		require.Len(t, game.Players, 2)
		assert.Equal(t, entity.MarkO, game.Players[0].Mark)
		assert.Equal(t, entity.MarkX, game.Players[1].Mark)
		assert.False(t, game.Players[1].IsBot())
		assert.Equal(t, entity.MarkX, game.Turn)
		assert.True(t, game.IsOngoing())

		stored, err := manager.GetGame(ctx, game.ID)
		require.NoError(t, err)
		assert.Equal(t, game.ID, stored.ID)
	})

	t.Run("Bot opens when the human plays O", func(t *testing.T) {
		manager, bot := newManager(t)
		bot.On("MakeTurn", mock.AnythingOfType("*entity.Game")).Return(entity.Move{Board: 5, Cell: 5}, nil).Once()

		// When: creating a bot game with the human as O
		game, err := manager.CreateGame(ctx, entity.OpponentBot, entity.MarkO)

		// Then: the bot already played and O is to move
		require.NoError(t, err)
		assert.Equal(t, entity.MarkO, game.Turn)
		assert.Equal(t, 1, game.Moves)
		assert.Equal(t, entity.MarkX, game.Board.At(1, 1).At(1, 1))
	})

	t.Run("Rejects an unknown opponent", func(t *testing.T) {
		manager, _ := newManager(t)

		_, err := manager.CreateGame(ctx, "alien", entity.MarkX)

		require.ErrorIs(t, err, ErrUnknownOpponent)
	})

	t.Run("Rejects an empty mark", func(t *testing.T) {
		manager, _ := newManager(t)

		_, err := manager.CreateGame(ctx, entity.OpponentHuman, entity.MarkEmpty)

		require.ErrorIs(t, err, apperror.ErrUnknownMark)
	})
}

func TestGameManager_MakeTurn(t *testing.T) {
	ctx := context.Background()

	t.Run("Stores the move of a human", func(t *testing.T) {
		// Given: a human game
		manager, _ := newManager(t)
		game, err := manager.CreateGame(ctx, entity.OpponentHuman, entity.MarkX)
		require.NoError(t, err)

		// When: X plays
		updated, err := manager.MakeTurn(ctx, game.ID, game.Players[0].ID, 3, 7)

		// Then: the stored game has the move
		require.NoError(t, err)
		assert.Equal(t, entity.MarkO, updated.Turn)

		stored, err := manager.GetGame(ctx, game.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, stored.Moves)
		assert.Equal(t, entity.MarkX, stored.Board.At(0, 2).At(2, 0))
	})

	t.Run("Bot answers a human move", func(t *testing.T) {
		// Given: a bot game with the human as X
		manager, bot := newManager(t)
		game, err := manager.CreateGame(ctx, entity.OpponentBot, entity.MarkX)
		require.NoError(t, err)
		bot.On("MakeTurn", mock.AnythingOfType("*entity.Game")).Return(entity.Move{Board: 1, Cell: 1}, nil).Once()

		// When: the human plays
		updated, err := manager.MakeTurn(ctx, game.ID, game.Players[0].ID, 5, 1)

		// Then: both moves are stored and the human is to play again
		require.NoError(t, err)
		assert.Equal(t, 2, updated.Moves)
		assert.Equal(t, entity.MarkX, updated.Turn)
		assert.Equal(t, entity.MarkO, updated.Board.At(0, 0).At(0, 0))
	})

	t.Run("Rejected move changes nothing", func(t *testing.T) {
		// Given: a human game with one move
		manager, _ := newManager(t)
		game, err := manager.CreateGame(ctx, entity.OpponentHuman, entity.MarkX)
		require.NoError(t, err)
		_, err = manager.MakeTurn(ctx, game.ID, game.Players[0].ID, 1, 1)
		require.NoError(t, err)

		// When: O plays the occupied cell and X plays out of turn
		_, errOccupied := manager.MakeTurn(ctx, game.ID, game.Players[1].ID, 1, 1)
		_, errTurn := manager.MakeTurn(ctx, game.ID, game.Players[0].ID, 2, 2)

		// Then: errors are returned and the stored game keeps one move
		require.ErrorIs(t, errOccupied, apperror.ErrCellOccupied)
		require.ErrorIs(t, errTurn, apperror.ErrNotYourTurn)

		stored, err := manager.GetGame(ctx, game.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, stored.Moves)
	})

	t.Run("Returns bot failures", func(t *testing.T) {
		manager, bot := newManager(t)
		game, err := manager.CreateGame(ctx, entity.OpponentBot, entity.MarkX)
		require.NoError(t, err)
		bot.On("MakeTurn", mock.AnythingOfType("*entity.Game")).Return(entity.Move{}, errBotCrashed).Once()

		_, err = manager.MakeTurn(ctx, game.ID, game.Players[0].ID, 5, 5)

		require.ErrorIs(t, err, errBotCrashed)
	})

	t.Run("Unknown player", func(t *testing.T) {
		manager, _ := newManager(t)
		game, err := manager.CreateGame(ctx, entity.OpponentHuman, entity.MarkX)
		require.NoError(t, err)

		_, err = manager.MakeTurn(ctx, game.ID, "nobody", 1, 1)

		require.ErrorIs(t, err, ErrPlayerNotFound)
	})

	t.Run("Unknown game", func(t *testing.T) {
		manager, _ := newManager(t)

		_, err := manager.MakeTurn(ctx, "missing", "p1", 1, 1)

		require.ErrorIs(t, err, apperror.ErrGameNotFound)
	})
}

func TestGameManager_EndGame(t *testing.T) {
	ctx := context.Background()
	manager, _ := newManager(t)

	game, err := manager.CreateGame(ctx, entity.OpponentHuman, entity.MarkX)
	require.NoError(t, err)

	manager.EndGame(ctx, game.ID)

	_, err = manager.GetGame(ctx, game.ID)
	require.ErrorIs(t, err, apperror.ErrGameNotFound)
}
