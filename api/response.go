package api

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	mb "github.com/saeidalz13/battleship-sim/models/battleship"
)

const (
	RespInvalidPlacement = "Error: invalid ship. Try again."
	respHitFormat        = "Player %d hit a %s ship at (%d, %d).\n"
	respWinnerFormat     = "Player %d won!\n"
)

// Response buffers output and keeps the first write error so callers can
// check it once per request.
type Response struct {
	w   *bufio.Writer
	err error
}

func NewResponse(w io.Writer) *Response {
	return &Response{w: bufio.NewWriter(w)}
}

func (resp *Response) printf(format string, args ...any) {
	if resp.err != nil {
		return
	}
	_, resp.err = fmt.Fprintf(resp.w, format, args...)
}

func (resp *Response) WriteHit(report mb.HitReport) {
	resp.printf(respHitFormat, report.Attacker, report.Ship.Name(), report.Coordinates.Row, report.Coordinates.Col)
}

func (resp *Response) WriteInvalidPlacement() {
	resp.printf("%s\n", RespInvalidPlacement)
}

func (resp *Response) WriteWinner(player int) {
	resp.printf(respWinnerFormat, player)
}

func (resp *Response) WriteSeparator() {
	resp.printf("\n")
}

// WriteBoard prints the board one row per line, each cell being 0 or the
// length of the ship on it.
func (resp *Response) WriteBoard(board *mb.Board) {
	for _, row := range board.Snapshot() {
		line := make([]byte, 0, 2*len(row))
		for j, cell := range row {
			if j > 0 {
				line = append(line, ' ')
			}
			line = strconv.AppendInt(line, int64(cell), 10)
		}
		resp.printf("%s\n", line)
	}
}

func (resp *Response) Flush() error {
	if resp.err != nil {
		return resp.err
	}
	resp.err = resp.w.Flush()
	return resp.err
}

func (resp *Response) Err() error {
	return resp.err
}
