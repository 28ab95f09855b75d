package battleship

const (
	PlayerMatchStatusLost      = -1
	PlayerMatchStatusUndefined = 0
	PlayerMatchStatusWon       = 1
)

type Player struct {
	number      int
	matchStatus int
	board       *Board
}

func NewPlayer(number int, board *Board) *Player {
	return &Player{
		number:      number,
		matchStatus: PlayerMatchStatusUndefined,
		board:       board,
	}
}

func (p *Player) Number() int {
	return p.number
}

func (p *Player) Board() *Board {
	return p.board
}

func (p *Player) MatchStatus() int {
	return p.matchStatus
}

// IsLoser is only meaningful once the fleet has been placed.
func (p *Player) IsLoser() bool {
	return p.board.ShipsRemaining() == 0
}

func (p *Player) setMatchStatus(status int) {
	p.matchStatus = status
}
