package processing

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/game"
)

// command is a driver command taking a fixed number of arguments.
type command struct {
	args  int
	usage string
	run   func(r *Runner, args []string) error
}

var commands = map[string]command{
	"select":  {2, "select <col> <row>", (*Runner).doSelect},
	"move":    {2, "move <col> <row>", (*Runner).doMove},
	"play":    {4, "play <col> <row> <col> <row>", (*Runner).doPlay},
	"down":    {2, "down <x> <y>", (*Runner).doDown},
	"drag":    {2, "drag <x> <y>", (*Runner).doDrag},
	"up":      {2, "up <x> <y>", (*Runner).doUp},
	"promote": {1, "promote <0-3|Q|R|B|N>", (*Runner).doPromote},
	"moves":   {2, "moves <col> <row>", (*Runner).doMoves},
	"board":   {0, "board", (*Runner).doBoard},
	"history": {0, "history", (*Runner).doHistory},
	"status":  {0, "status", (*Runner).doStatus},
	"reset":   {0, "reset", (*Runner).doReset},
	"load":    {1, "load <white|black>, then 8 layout rows", (*Runner).doLoad},
}

// Runner executes text commands against a controller, one per line.
// Lines that print write to the runner's output.
type Runner struct {
	c   *game.Controller
	out io.Writer

	// A load collects layout rows until the board is full.
	loading bool
	toMove  chess.Colour
	rows    []string
}

// NewRunner creates a runner driving the controller. A nil output
// discards printed lines.
func NewRunner(c *game.Controller, out io.Writer) *Runner {
	if out == nil {
		out = io.Discard
	}
	return &Runner{c: c, out: out}
}

// Controller returns the controller the runner drives.
func (r *Runner) Controller() *game.Controller {
	return r.c
}

// Run executes every line read from rd, stopping at the first command that
// fails.
func (r *Runner) Run(rd io.Reader) error {
	sc := bufio.NewScanner(rd)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		if err := r.Execute(sc.Text()); err != nil {
			return errors.Wrapf(err, "line %d", lineNo)
		}
	}
	if err := sc.Err(); err != nil {
		return err
	}
	if r.loading {
		return errors.Wrapf(errors.ErrBadArgument, "load: got %d of %d rows", len(r.rows), chess.BoardSize)
	}
	return nil
}

// Execute runs a single command line. Blank lines and lines starting
// with '#' are ignored.
func (r *Runner) Execute(line string) error {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}
	if r.loading {
		return r.addRow(line)
	}

	fields := strings.Fields(line)
	name, args := strings.ToLower(fields[0]), fields[1:]
	cmd, ok := commands[name]
	if !ok {
		return errors.Wrapf(errors.ErrUnknownCommand, "%q", fields[0])
	}
	if len(args) != cmd.args {
		return errors.Wrapf(errors.ErrBadArgument, "usage: %s", cmd.usage)
	}
	return cmd.run(r, args)
}

// ints parses every argument as an integer.
func ints(args []string) ([]int, error) {
	vals := make([]int, len(args))
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, errors.Wrapf(errors.ErrBadArgument, "%q is not a number", a)
		}
		vals[i] = v
	}
	return vals, nil
}

func (r *Runner) doSelect(args []string) error {
	v, err := ints(args)
	if err != nil {
		return err
	}
	r.c.SelectSquare(v[0], v[1])
	return nil
}

func (r *Runner) doMove(args []string) error {
	v, err := ints(args)
	if err != nil {
		return err
	}
	r.c.MoveSelectedTo(v[0], v[1])
	return nil
}

// doPlay makes a whole move and fails if the controller does not commit it.
func (r *Runner) doPlay(args []string) error {
	v, err := ints(args)
	if err != nil {
		return err
	}
	before := len(r.c.History())
	r.c.SelectSquare(v[0], v[1])
	r.c.MoveSelectedTo(v[2], v[3])
	if len(r.c.History()) == before {
		return errors.Wrapf(errors.ErrMoveRejected, "%v to %v", chess.Sq(v[0], v[1]), chess.Sq(v[2], v[3]))
	}
	return nil
}

func (r *Runner) doDown(args []string) error {
	v, err := ints(args)
	if err != nil {
		return err
	}
	r.c.PointerDown(v[0], v[1])
	return nil
}

func (r *Runner) doDrag(args []string) error {
	v, err := ints(args)
	if err != nil {
		return err
	}
	r.c.PointerMove(v[0], v[1])
	return nil
}

func (r *Runner) doUp(args []string) error {
	v, err := ints(args)
	if err != nil {
		return err
	}
	r.c.PointerUp(v[0], v[1])
	return nil
}

// doPromote accepts a choice index or a piece letter.
func (r *Runner) doPromote(args []string) error {
	choices := r.c.PromotionChoices()
	if choices == nil {
		return errors.Wrap(errors.ErrMoveRejected, "no promotion pending")
	}
	arg := strings.ToUpper(args[0])
	if n, err := strconv.Atoi(arg); err == nil {
		if n < 0 || n >= len(choices) {
			return errors.Wrapf(errors.ErrBadArgument, "choice %d out of range", n)
		}
		r.c.PromoteTo(n)
		return nil
	}
	if len(arg) == 1 {
		if kind, ok := chess.KindFromLetter(arg[0]); ok {
			for i, choice := range choices {
				if choice.Kind == kind {
					r.c.PromoteTo(i)
					return nil
				}
			}
		}
	}
	return errors.Wrapf(errors.ErrBadArgument, "cannot promote to %q", args[0])
}

func (r *Runner) doMoves(args []string) error {
	v, err := ints(args)
	if err != nil {
		return err
	}
	squares := r.c.LegalDestinations(v[0], v[1])
	parts := make([]string, len(squares))
	for i, sq := range squares {
		parts[i] = sq.String()
	}
	fmt.Fprintln(r.out, strings.Join(parts, " "))
	return nil
}

func (r *Runner) doBoard([]string) error {
	fmt.Fprint(r.out, r.c.CurrentLayout())
	return nil
}

func (r *Runner) doHistory([]string) error {
	for i, m := range r.c.History() {
		fmt.Fprintf(r.out, "%d. %s\n", i+1, m)
	}
	return nil
}

func (r *Runner) doStatus([]string) error {
	fmt.Fprintf(r.out, "phase=%s turn=%s check=%t result=%s\n",
		r.c.Phase(), r.c.CurrentColour(), r.c.InCheck(), Result(r.c))
	return nil
}

func (r *Runner) doReset([]string) error {
	r.c.Reset()
	return nil
}

func (r *Runner) doLoad(args []string) error {
	switch strings.ToLower(args[0]) {
	case "white":
		r.toMove = chess.White
	case "black":
		r.toMove = chess.Black
	default:
		return errors.Wrapf(errors.ErrBadArgument, "side to move %q", args[0])
	}
	r.loading = true
	r.rows = r.rows[:0]
	return nil
}

// addRow takes the next layout row of a load and loads the position once
// all rows are in.
func (r *Runner) addRow(line string) error {
	r.rows = append(r.rows, line)
	if len(r.rows) < chess.BoardSize {
		return nil
	}
	r.loading = false

	layout, err := chess.ParseLayout(strings.Join(r.rows, "\n"))
	if err != nil {
		return err
	}
	pos, err := chess.NewPositionFromLayout(layout)
	if err != nil {
		return err
	}
	return r.c.Load(pos, r.toMove)
}
