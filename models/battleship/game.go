package battleship

import (
	cerr "github.com/saeidalz13/battleship-sim/internal/error"
)

const (
	PlayerNumberHost = 1
	PlayerNumberJoin = 2
)

type AttackResult struct {
	Attacker       int
	Defender       int
	Coordinates    Coordinates
	Outcome        Outcome
	ShipsRemaining int
	GameOver       bool
}

// Game pairs two players on equally sized boards. The host attacks first.
type Game struct {
	uuid       string
	fleet      Fleet
	hostPlayer *Player
	joinPlayer *Player
	current    *Player
	winner     *Player
	isFinished bool
}

func newGame(gameUuid string, rows, cols int, opts ...BoardOption) (*Game, error) {
	fleet := NewFleet(rows, cols)

	hostBoard, err := NewBoard(rows, cols, fleet.Total(), opts...)
	if err != nil {
		return nil, err
	}
	joinBoard, err := NewBoard(rows, cols, fleet.Total(), opts...)
	if err != nil {
		return nil, err
	}

	game := &Game{
		uuid:       gameUuid,
		fleet:      fleet,
		hostPlayer: NewPlayer(PlayerNumberHost, hostBoard),
		joinPlayer: NewPlayer(PlayerNumberJoin, joinBoard),
	}
	game.current = game.hostPlayer
	return game, nil
}

func (g *Game) Uuid() string {
	return g.uuid
}

func (g *Game) Fleet() Fleet {
	return g.fleet
}

func (g *Game) FetchPlayer(isHost bool) *Player {
	if isHost {
		return g.hostPlayer
	}
	return g.joinPlayer
}

// returns a slice of players in the order of host then join.
func (g *Game) Players() []*Player {
	return []*Player{g.hostPlayer, g.joinPlayer}
}

func (g *Game) CurrentPlayer() *Player {
	return g.current
}

func (g *Game) opponentOf(p *Player) *Player {
	if p == g.hostPlayer {
		return g.joinPlayer
	}
	return g.hostPlayer
}

func (g *Game) IsFinished() bool {
	return g.isFinished
}

// Winner is nil until the game is finished.
func (g *Game) Winner() *Player {
	return g.winner
}

// Attack fires the current player's shot at the opponent's board and hands
// the turn over. A repeat miss forfeits the shot the same way.
func (g *Game) Attack(row, col int) (AttackResult, error) {
	if g.isFinished {
		return AttackResult{}, cerr.ErrGameAlreadyFinished(g.uuid)
	}

	attacker := g.current
	defender := g.opponentOf(attacker)

	outcome := defender.board.Attack(attacker.number, row, col)
	result := AttackResult{
		Attacker:       attacker.number,
		Defender:       defender.number,
		Coordinates:    NewCoordinates(row, col),
		Outcome:        outcome,
		ShipsRemaining: defender.board.ShipsRemaining(),
	}

	if outcome != OutcomeRepeatMiss && defender.IsLoser() {
		g.finish(attacker, defender)
		result.GameOver = true
		return result, nil
	}

	g.current = defender
	return result, nil
}

func (g *Game) finish(winner, loser *Player) {
	g.isFinished = true
	g.winner = winner
	winner.setMatchStatus(PlayerMatchStatusWon)
	loser.setMatchStatus(PlayerMatchStatusLost)
}
