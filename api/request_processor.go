package api

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/saeidalz13/battleship-sim/internal/config"
	cerr "github.com/saeidalz13/battleship-sim/internal/error"
	mb "github.com/saeidalz13/battleship-sim/models/battleship"
)

type RequestProcessor struct {
	stage               string
	maxPlacementRetries int
	repeatAttackRule    mb.RepeatAttackRule
	gameManager         mb.GameManager
	logger              *log.Logger
}

type Option func(*RequestProcessor) error

func NewRequestProcessor(optFuncs ...Option) (*RequestProcessor, error) {
	rp := RequestProcessor{stage: config.StageDev}
	for _, opt := range optFuncs {
		if err := opt(&rp); err != nil {
			return nil, err
		}
	}

	if rp.gameManager == nil {
		rp.gameManager = mb.NewBattleshipGameManager()
	}
	if rp.logger == nil {
		rp.logger = NewLogger(os.Stderr, rp.stage)
	}
	return &rp, nil
}

func WithStage(stage string) Option {
	return func(rp *RequestProcessor) error {
		if stage != config.StageProd && stage != config.StageDev {
			return fmt.Errorf("invalid type of development stage: %s", stage)
		}
		rp.stage = stage
		return nil
	}
}

// WithMaxPlacementRetries bounds the rejected placements tolerated per ship.
// Zero means unbounded.
func WithMaxPlacementRetries(retries int) Option {
	return func(rp *RequestProcessor) error {
		if retries < 0 {
			return fmt.Errorf("max placement retries must not be negative: %d", retries)
		}
		rp.maxPlacementRetries = retries
		return nil
	}
}

func WithRepeatAttackRule(rule mb.RepeatAttackRule) Option {
	return func(rp *RequestProcessor) error {
		rp.repeatAttackRule = rule
		return nil
	}
}

func WithGameManager(gameManager mb.GameManager) Option {
	return func(rp *RequestProcessor) error {
		rp.gameManager = gameManager
		return nil
	}
}

func WithLogger(logger *log.Logger) Option {
	return func(rp *RequestProcessor) error {
		rp.logger = logger
		return nil
	}
}

// Run plays every game described by r and writes the transcript to w.
func (rp *RequestProcessor) Run(ctx context.Context, r io.Reader, w io.Writer) error {
	req := NewRequest(r)
	resp := NewResponse(w)

	gameCount, err := req.ReadGameCount()
	if err != nil {
		return err
	}

	for i := 0; i < gameCount; i++ {
		if err := rp.processGame(ctx, req, resp); err != nil {
			_ = resp.Flush()
			return fmt.Errorf("game %d: %w", i+1, err)
		}
		if i < gameCount-1 {
			resp.WriteSeparator()
		}
		if err := resp.Flush(); err != nil {
			return err
		}
	}

	rp.logger.Info("all games processed", "games", gameCount)
	return nil
}

func (rp *RequestProcessor) processGame(ctx context.Context, req *Request, resp *Response) error {
	reqGame, err := req.ReadGame()
	if err != nil {
		return err
	}

	game, err := rp.gameManager.CreateGame(
		reqGame.Rows,
		reqGame.Cols,
		mb.WithRepeatAttackRule(rp.repeatAttackRule),
		mb.WithHitNotifier(resp.WriteHit),
	)
	if err != nil {
		return err
	}
	defer rp.gameManager.TerminateGame(game.Uuid())

	logger := rp.logger.With("game", game.Uuid())
	logger.Info("game created",
		"rows", reqGame.Rows,
		"cols", reqGame.Cols,
		"ships", game.Fleet().Total(),
		"repeatAttackRule", rp.repeatAttackRule,
	)

	for _, player := range game.Players() {
		if err := rp.placeFleet(ctx, req, resp, game, player, logger); err != nil {
			return err
		}
	}

	resp.WriteBoard(game.FetchPlayer(true).Board())
	resp.WriteSeparator()
	resp.WriteBoard(game.FetchPlayer(false).Board())
	if err := resp.Err(); err != nil {
		return err
	}

	return rp.playGame(ctx, req, resp, game, logger)
}

// placeFleet reads placements for player until every slot of the fleet is
// filled. A rejected placement is reported and the next one is read.
func (rp *RequestProcessor) placeFleet(
	ctx context.Context,
	req *Request,
	resp *Response,
	game *mb.Game,
	player *mb.Player,
	logger *log.Logger,
) error {
	board := player.Board()

	for slot, expected := range game.Fleet().Order() {
		retries := 0
		for {
			if err := ctx.Err(); err != nil {
				return err
			}

			reqPlacement, err := req.ReadPlacement()
			if err != nil {
				return err
			}

			err = board.PlaceShip(reqPlacement.Type, reqPlacement.Orientation, reqPlacement.Row, reqPlacement.Col, slot)
			if err == nil {
				break
			}

			logger.Debug("placement rejected",
				"player", player.Number(),
				"slot", slot,
				"expected", expected.Name(),
				"err", err,
			)
			resp.WriteInvalidPlacement()
			if err := resp.Err(); err != nil {
				return err
			}

			retries++
			if rp.maxPlacementRetries > 0 && retries > rp.maxPlacementRetries {
				return cerr.ErrRetriesExceeded(player.Number(), retries)
			}
		}
	}

	logger.Debug("fleet placed", "player", player.Number(), "ships", board.ShipsPlaced())
	return nil
}

func (rp *RequestProcessor) playGame(ctx context.Context, req *Request, resp *Response, game *mb.Game, logger *log.Logger) error {
	for !game.IsFinished() {
		if err := ctx.Err(); err != nil {
			return err
		}

		reqAttack, err := req.ReadAttack()
		if err != nil {
			return err
		}

		result, err := game.Attack(reqAttack.Row, reqAttack.Col)
		if err != nil {
			return err
		}
		if err := resp.Err(); err != nil {
			return err
		}

		if result.Outcome == mb.OutcomeRepeatMiss {
			logger.Debug("repeated attack, turn lost", "player", result.Attacker, "row", reqAttack.Row, "col", reqAttack.Col)
		}

		if result.GameOver {
			resp.WriteWinner(result.Attacker)
			logger.Info("game finished", "winner", result.Attacker)
		}
	}
	return resp.Err()
}
