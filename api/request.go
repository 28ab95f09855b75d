package api

import (
	"bufio"
	"io"
	"strconv"

	cerr "github.com/saeidalz13/battleship-sim/internal/error"
)

type ReqGame struct {
	Rows int
	Cols int
}

type ReqPlacement struct {
	Type        byte
	Orientation byte
	Row         int
	Col         int
}

type ReqAttack struct {
	Row int
	Col int
}

// Request reads whitespace separated tokens; line breaks carry no meaning.
type Request struct {
	scanner *bufio.Scanner
}

func NewRequest(r io.Reader) *Request {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	return &Request{scanner: scanner}
}

func (req *Request) next(expected string) (string, error) {
	if !req.scanner.Scan() {
		if err := req.scanner.Err(); err != nil {
			return "", err
		}
		return "", cerr.ErrMissingToken(expected)
	}
	return req.scanner.Text(), nil
}

func (req *Request) nextInt(expected string) (int, error) {
	token, err := req.next(expected)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(token)
	if err != nil {
		return 0, cerr.ErrInvalidToken(expected, token)
	}
	return n, nil
}

func (req *Request) nextChar(expected string) (byte, error) {
	token, err := req.next(expected)
	if err != nil {
		return 0, err
	}
	if len(token) != 1 {
		return 0, cerr.ErrInvalidToken(expected, token)
	}
	return token[0], nil
}

func (req *Request) ReadGameCount() (int, error) {
	count, err := req.nextInt("game count")
	if err != nil {
		return 0, err
	}
	if count < 0 {
		return 0, cerr.ErrInvalidToken("non-negative game count", strconv.Itoa(count))
	}
	return count, nil
}

func (req *Request) ReadGame() (ReqGame, error) {
	rows, err := req.nextInt("board rows")
	if err != nil {
		return ReqGame{}, err
	}
	cols, err := req.nextInt("board cols")
	if err != nil {
		return ReqGame{}, err
	}
	return ReqGame{Rows: rows, Cols: cols}, nil
}

func (req *Request) ReadPlacement() (ReqPlacement, error) {
	var (
		p   ReqPlacement
		err error
	)
	if p.Type, err = req.nextChar("ship type"); err != nil {
		return ReqPlacement{}, err
	}
	if p.Orientation, err = req.nextChar("orientation"); err != nil {
		return ReqPlacement{}, err
	}
	if p.Row, err = req.nextInt("row"); err != nil {
		return ReqPlacement{}, err
	}
	if p.Col, err = req.nextInt("col"); err != nil {
		return ReqPlacement{}, err
	}
	return p, nil
}

func (req *Request) ReadAttack() (ReqAttack, error) {
	row, err := req.nextInt("attack row")
	if err != nil {
		return ReqAttack{}, err
	}
	col, err := req.nextInt("attack col")
	if err != nil {
		return ReqAttack{}, err
	}
	return ReqAttack{Row: row, Col: col}, nil
}
