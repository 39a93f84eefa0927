package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"connectfour/internal/board"
	"connectfour/internal/bot"
	"connectfour/internal/models"
	"connectfour/internal/services"
)

// ErrInputClosed is returned by prompts when input ends before an answer.
var ErrInputClosed = errors.New("input closed")

var (
	_ services.Observer     = (*Console)(nil)
	_ services.MoveProvider = (*Human)(nil)
)

// Console is the text frontend. It reads answers line by line from one
// reader and writes prompts, boards and results to one writer.
type Console struct {
	in    *bufio.Reader
	out   io.Writer
	style Style
	// ClearScreen wipes the terminal before each board is drawn.
	ClearScreen bool
}

func New(in io.Reader, out io.Writer, style Style) *Console {
	return &Console{in: bufio.NewReader(in), out: out, style: style}
}

// readLine returns the next trimmed line. A last line without a newline is
// still returned; after that io.EOF.
func (c *Console) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (c *Console) playerName(s services.Seat) string {
	text := "Player " + s.Name
	switch s.Token {
	case board.PlayerA:
		return c.style.paint("\033[31m", text)
	case board.PlayerB:
		return c.style.paint("\033[33m", text)
	}
	return text
}

func (c *Console) Banner() {
	fmt.Fprintln(c.out, "==============")
	fmt.Fprintln(c.out, " Connect Four ")
	fmt.Fprintln(c.out, "==============")
}

// AskName prompts until a non-empty name different from taken is entered.
func (c *Console) AskName(label, taken string) (string, error) {
	for {
		fmt.Fprintf(c.out, "Enter name of %s: ", label)
		name, err := c.readLine()
		if err != nil {
			return "", ErrInputClosed
		}
		if name == "" {
			continue
		}
		if taken != "" && strings.EqualFold(name, taken) {
			fmt.Fprintf(c.out, "Sorry, but %s is already taken!\n", name)
			continue
		}
		return name, nil
	}
}

// AskOpponent asks whether the opponent is a human (H) or the computer (C).
func (c *Console) AskOpponent(player services.Seat) (human bool, err error) {
	for {
		fmt.Fprintf(c.out, "Hello %s! Please select your opponent... \n", c.playerName(player))
		fmt.Fprintln(c.out, " [H] Human")
		fmt.Fprintln(c.out, " [C] Computer")
		fmt.Fprint(c.out, "Choice : ")
		answer, err := c.readLine()
		if err != nil {
			return false, ErrInputClosed
		}
		switch firstUpper(answer) {
		case 'H':
			return true, nil
		case 'C':
			return false, nil
		}
	}
}

func (c *Console) AskDifficulty() (bot.Difficulty, error) {
	for {
		fmt.Fprintln(c.out, "Please select Computer difficulty...")
		fmt.Fprintln(c.out, " [0] Very Easy (Moves randomly.)")
		fmt.Fprintln(c.out, " [1] Easy (Will try to ConnectFour and block a little.)")
		fmt.Fprintln(c.out, " [2] Normal (Will try to ConnectFour and block defensively.)")
		fmt.Fprintln(c.out, " [3] Advanced (Will try to ConnectFour, block and plan a little.)")
		fmt.Fprint(c.out, "Choice : ")
		answer, err := c.readLine()
		if err != nil {
			return 0, ErrInputClosed
		}
		if ch := firstUpper(answer); ch >= '0' && ch <= '3' {
			return bot.Difficulty(ch - '0'), nil
		}
	}
}

// AskPlayAgain returns false on N or when input ends.
func (c *Console) AskPlayAgain() bool {
	for {
		fmt.Fprint(c.out, "Play Again [Y/N]? ")
		answer, err := c.readLine()
		if err != nil {
			return false
		}
		switch firstUpper(answer) {
		case 'Y':
			return true
		case 'N':
			return false
		}
	}
}

func firstUpper(s string) byte {
	if s == "" {
		return 0
	}
	ch := s[0]
	if ch >= 'a' && ch <= 'z' {
		ch -= 'a' - 'A'
	}
	return ch
}

// Human reads a player's moves from the console.
type Human struct {
	console *Console
	seat    string
}

func (c *Console) Human(name string) *Human {
	return &Human{console: c, seat: name}
}

// ChooseMove accepts 1-7 for a playable column or Q to resign. Anything else
// asks again. End of input resigns.
func (h *Human) ChooseMove(ctx context.Context, b board.Board, token board.Token) (int, error) {
	c := h.console
	fmt.Fprintln(c.out)
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		fmt.Fprintf(c.out, "Your move %s : ", c.playerName(services.Seat{Name: h.seat, Token: token}))
		answer, err := c.readLine()
		if err != nil {
			return 0, models.ErrResigned
		}
		ch := firstUpper(answer)
		if ch == 'Q' {
			return 0, models.ErrResigned
		}
		if ch >= '1' && ch <= '7' {
			col := int(ch - '1')
			if b.Playable(col) {
				return col, nil
			}
		}
	}
}

func (c *Console) drawBoard(b board.Board, withOptions bool) {
	if c.ClearScreen {
		fmt.Fprint(c.out, ansiClear)
	}
	c.style.Render(c.out, b, withOptions)
}

// BeforeMove shows the board with column options before a human moves.
func (c *Console) BeforeMove(g *services.Game) {
	if g.Current().Human {
		c.drawBoard(g.Board, true)
	}
}

// MoveMade reports computer moves, which are not otherwise visible until the
// next board is drawn.
func (c *Console) MoveMade(g *services.Game, column, cell int) {
	for _, s := range g.Seats {
		if s.Token == g.Board[cell] && !s.Human {
			fmt.Fprintf(c.out, "%s plays column %d\n", c.playerName(s), column+1)
		}
	}
}

func (c *Console) GameOver(g *services.Game) {
	switch g.Status {
	case models.GameStatusWon:
		c.drawBoard(g.Board, false)
		fmt.Fprintln(c.out, c.style.paint(ansiCyan, "      ================="))
		fmt.Fprintln(c.out, c.style.paint(ansiCyan, "       CONNECT FOUR!!! "))
		fmt.Fprintln(c.out, c.style.paint(ansiCyan, "      ================="))
		fmt.Fprintln(c.out)
		fmt.Fprintf(c.out, "%s wins!\n", c.playerName(*g.Winner))
	case models.GameStatusDraw:
		c.drawBoard(g.Board, false)
		fmt.Fprintf(c.out, "Game between %s and %s ends in a Draw!\n",
			c.playerName(g.Seats[0]), c.playerName(g.Seats[1]))
	case models.GameStatusResigned:
		fmt.Fprintln(c.out)
		fmt.Fprintf(c.out, "%s quits...%s wins!\n", c.playerName(*g.Current()), c.playerName(*g.Winner))
	}
	fmt.Fprintln(c.out)
}
