package api

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cerr "github.com/saeidalz13/battleship-sim/internal/error"
	mb "github.com/saeidalz13/battleship-sim/models/battleship"
)

func newTestProcessor(t *testing.T, opts ...Option) (*RequestProcessor, *mb.BattleshipGameManager) {
	t.Helper()
	bgm := mb.NewBattleshipGameManager()
	opts = append([]Option{WithLogger(log.New(io.Discard)), WithGameManager(bgm)}, opts...)
	rp, err := NewRequestProcessor(opts...)
	require.NoError(t, err)
	return rp, bgm
}

func TestRunFullGame(t *testing.T) {
	// 4x10 boards carry one cruiser, one destroyer and two submarines
	input := `1
4 10
B H 1 1
L V 4 1
A H 4 10
A H 2 10
X H 1 1
B H 1 1
L V 4 1
A H 4 10
A H 2 10
1 2
3 3
1 1
3 3
4 1
3 3
4 10
3 3
2 10
`
	expected := `Error: invalid ship. Try again.
3 3 3 0 0 0 0 0 0 0
0 0 0 0 0 0 0 0 0 1
2 0 0 0 0 0 0 0 0 0
2 0 0 0 0 0 0 0 0 1

3 3 3 0 0 0 0 0 0 0
0 0 0 0 0 0 0 0 0 1
2 0 0 0 0 0 0 0 0 0
2 0 0 0 0 0 0 0 0 1
Player 1 hit a Belfast ship at (1, 2).
Player 1 hit a Belfast ship at (1, 1).
Player 1 hit a Laffey ship at (4, 1).
Player 1 hit a Albacore ship at (4, 10).
Player 1 hit a Albacore ship at (2, 10).
Player 1 won!
`

	rp, bgm := newTestProcessor(t)
	var out bytes.Buffer
	require.NoError(t, rp.Run(context.Background(), strings.NewReader(input), &out))
	assert.Equal(t, expected, out.String())
	assert.Equal(t, 0, bgm.Len())
}

func TestRunSeveralGames(t *testing.T) {
	// 1x5 boards carry no ships, so the first attack wins
	input := "2\n1 5\n1 1\n1 5\n0 0\n"
	game := "0 0 0 0 0\n\n0 0 0 0 0\nPlayer 1 won!\n"

	rp, _ := newTestProcessor(t)
	var out bytes.Buffer
	require.NoError(t, rp.Run(context.Background(), strings.NewReader(input), &out))
	assert.Equal(t, game+"\n"+game, out.String())
}

func TestRunRepeatAttackForfeitsTurn(t *testing.T) {
	// 5x5 boards carry a single submarine
	input := `1
5 5
A H 1 1
A H 2 2
5 5
5 5
5 5
1 1
`
	expected := `1 0 0 0 0
0 0 0 0 0
0 0 0 0 0
0 0 0 0 0
0 0 0 0 0

0 0 0 0 0
0 1 0 0 0
0 0 0 0 0
0 0 0 0 0
0 0 0 0 0
Player 2 hit a Albacore ship at (1, 1).
Player 2 won!
`

	rp, _ := newTestProcessor(t, WithRepeatAttackRule(mb.RepeatAttackLosesTurn))
	var out bytes.Buffer
	require.NoError(t, rp.Run(context.Background(), strings.NewReader(input), &out))
	assert.Equal(t, expected, out.String())
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		opts        []Option
		expectedErr error
	}{
		{
			name:        "missing game count",
			input:       "",
			expectedErr: cerr.ErrUnexpectedEndOfInput,
		},
		{
			name:        "malformed board size",
			input:       "1\n5 five\n",
			expectedErr: cerr.ErrMalformedInput,
		},
		{
			name:        "invalid board size",
			input:       "1\n0 5\n",
			expectedErr: cerr.ErrInvalidBoardSize,
		},
		{
			name:        "board too large",
			input:       "1\n100000 100000\n",
			expectedErr: cerr.ErrInvalidBoardSize,
		},
		{
			name:        "placement token too long",
			input:       "1\n5 5\nAB H 1 1\n",
			expectedErr: cerr.ErrMalformedInput,
		},
		{
			name:        "input ends during placement",
			input:       "1\n5 5\nA H 1 1\n",
			expectedErr: cerr.ErrUnexpectedEndOfInput,
		},
		{
			name:        "input ends during attacks",
			input:       "1\n5 5\nA H 1 1\nA H 1 1\n3 3\n",
			expectedErr: cerr.ErrUnexpectedEndOfInput,
		},
		{
			name:        "placement retries exceeded",
			input:       "1\n5 5\nA H 9 9\nA D 1 1\nA H 0 1\nA H 1 1\n",
			opts:        []Option{WithMaxPlacementRetries(2)},
			expectedErr: cerr.ErrPlacementRetriesExceeded,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			rp, bgm := newTestProcessor(t, test.opts...)
			err := rp.Run(context.Background(), strings.NewReader(test.input), io.Discard)
			assert.ErrorIs(t, err, test.expectedErr)
			assert.Equal(t, 0, bgm.Len())
		})
	}
}

func TestRunUnboundedRetries(t *testing.T) {
	input := "1\n5 5\n" + strings.Repeat("A H 9 9\n", 50) + "A H 1 1\nA H 1 1\n1 1\n"

	rp, _ := newTestProcessor(t)
	var out bytes.Buffer
	require.NoError(t, rp.Run(context.Background(), strings.NewReader(input), &out))
	assert.Equal(t, 50, strings.Count(out.String(), RespInvalidPlacement))
	assert.True(t, strings.HasSuffix(out.String(), "Player 1 won!\n"))
}

func TestRunBoundedRetries(t *testing.T) {
	tests := []struct {
		name       string
		maxRetries int
		rejected   int
	}{
		{name: "single retry allowed", maxRetries: 1, rejected: 1},
		{name: "every retry used", maxRetries: 3, rejected: 3},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			input := "1\n5 5\n" + strings.Repeat("A H 9 9\n", test.rejected) + "A H 1 1\nA H 1 1\n1 1\n"

			rp, _ := newTestProcessor(t, WithMaxPlacementRetries(test.maxRetries))
			var out bytes.Buffer
			require.NoError(t, rp.Run(context.Background(), strings.NewReader(input), &out))
			assert.Equal(t, test.rejected, strings.Count(out.String(), RespInvalidPlacement))
			assert.True(t, strings.HasSuffix(out.String(), "Player 1 won!\n"))
		})
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rp, _ := newTestProcessor(t)
	err := rp.Run(ctx, strings.NewReader("1\n5 5\nA H 1 1\nA H 1 1\n1 1\n"), io.Discard)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewRequestProcessorInvalidOptions(t *testing.T) {
	_, err := NewRequestProcessor(WithStage("staging"))
	assert.Error(t, err)

	_, err = NewRequestProcessor(WithMaxPlacementRetries(-1))
	assert.Error(t, err)
}
