package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/ultimate-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/entity"
)

var (
	ErrPlayerNotFound  = errors.New("player not found")
	ErrUnknownOpponent = errors.New("unknown opponent")
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

type botService interface {
	MakeTurn(game *entity.Game) (entity.Move, error)
}

type GameManager struct {
	logger *slog.Logger

	gameRepo   gameRepo
	botService botService
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepo, botService botService) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		gameRepo:   gameRepo,
		botService: botService,
	}
}

// CreateGame - starts a new game. X always opens; humanMark is the mark of the first human
// player, the opponent (human or bot) gets the other one.
func (that *GameManager) CreateGame(ctx context.Context, opponent string, humanMark entity.Mark) (*entity.Game, error) {
	log := that.logger.With("method", "CreateGame")

	if opponent != entity.OpponentHuman && opponent != entity.OpponentBot {
		return nil, fmt.Errorf("%w: %s", ErrUnknownOpponent, opponent)
	}

	if humanMark != entity.MarkX && humanMark != entity.MarkO {
		return nil, fmt.Errorf("%w: %d", apperror.ErrUnknownMark, humanMark)
	}

	game := entity.NewGame(uuid.NewString(), opponent, entity.MarkX)
	game.Players = []*entity.Player{
		{ID: uuid.NewString(), Mark: humanMark},
		{ID: uuid.NewString(), Mark: humanMark.Opponent(), Bot: opponent == entity.OpponentBot},
	}
	game.Start()

	if err := that.playBot(game); err != nil {
		return nil, err
	}

	if err := that.updateGame(ctx, game); err != nil {
		return nil, err
	}

	log.Info("game created", "game_id", game.ID, "opponent", opponent, "human_mark", humanMark.String())

	return game, nil
}

// MakeTurn - plays a move for playerID, then lets the bot answer in bot games.
func (that *GameManager) MakeTurn(ctx context.Context, gameID, playerID string, board, cell int) (*entity.Game, error) {
	log := that.logger.With("method", "MakeTurn", "game_id", gameID)

	game, err := that.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	player := game.PlayerByID(playerID)
	if player == nil {
		return nil, fmt.Errorf("%w: %s", ErrPlayerNotFound, playerID)
	}

	if err = game.MakeTurn(player.Mark, board, cell); err != nil {
		return nil, fmt.Errorf("failed make turn: %w", err)
	}

	log.Debug("turn played", "mark", player.Mark.String(), "board", board, "cell", cell)

	if err = that.playBot(game); err != nil {
		return nil, err
	}

	if err = that.updateGame(ctx, game); err != nil {
		return nil, err
	}

	if game.IsFinished() {
		log.Info("game finished", "winner", game.Winner.String(), "tie", game.IsTie(), "moves", game.Moves)
	}

	return game, nil
}

func (that *GameManager) GetGame(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

// EndGame - forgets a game, finished or not.
func (that *GameManager) EndGame(ctx context.Context, id string) {
	log := that.logger.With("method", "EndGame", "game_id", id)

	if err := that.gameRepo.DeleteByID(ctx, id); err != nil {
		log.Error("failed to delete game", "error", err)
		return
	}

	log.Info("game deleted")
}

// playBot - plays for the bot while it holds the turn.
func (that *GameManager) playBot(game *entity.Game) error {
	if !game.IsWithBot() || !game.IsOngoing() {
		return nil
	}

	player := game.PlayerByMark(game.Turn)
	if player == nil || !player.IsBot() {
		return nil
	}

	move, err := that.botService.MakeTurn(game)
	if err != nil {
		if errors.Is(err, apperror.ErrNoAvailableMoves) {
			return nil
		}

		return fmt.Errorf("bot failed to make turn: %w", err)
	}

	that.logger.Debug("bot played", "game_id", game.ID, "board", move.Board, "cell", move.Cell)

	return nil
}

func (that *GameManager) updateGame(ctx context.Context, game *entity.Game) error {
	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}

	return nil
}
