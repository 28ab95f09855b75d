package battleship

import (
	"github.com/google/uuid"
	cerr "github.com/saeidalz13/battleship-sim/internal/error"
)

type GameManager interface {
	CreateGame(rows, cols int, opts ...BoardOption) (*Game, error)
	FetchGame(gameUuid string) (*Game, error)
	TerminateGame(gameUuid string)
	Len() int
}

// BattleshipGameManager is not safe for concurrent use; games are played
// one after another by a single driver.
type BattleshipGameManager struct {
	games map[string]*Game
}

var _ GameManager = (*BattleshipGameManager)(nil)

func NewBattleshipGameManager() *BattleshipGameManager {
	return &BattleshipGameManager{
		games: make(map[string]*Game, 10),
	}
}

func (bgm *BattleshipGameManager) CreateGame(rows, cols int, opts ...BoardOption) (*Game, error) {
	gameUuid := uuid.NewString()[:6]
	for _, prs := bgm.games[gameUuid]; prs; _, prs = bgm.games[gameUuid] {
		gameUuid = uuid.NewString()[:6]
	}

	game, err := newGame(gameUuid, rows, cols, opts...)
	if err != nil {
		return nil, err
	}

	bgm.games[gameUuid] = game
	return game, nil
}

func (bgm *BattleshipGameManager) FetchGame(gameUuid string) (*Game, error) {
	game, prs := bgm.games[gameUuid]
	if !prs {
		return nil, cerr.ErrGameNotExist(gameUuid)
	}
	return game, nil
}

func (bgm *BattleshipGameManager) TerminateGame(gameUuid string) {
	delete(bgm.games, gameUuid)
}

func (bgm *BattleshipGameManager) Len() int {
	return len(bgm.games)
}
