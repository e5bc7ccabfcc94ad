package game

import "fmt"

// Violation is the panic value raised when a caller breaks the board contract,
// for example by playing on a finished board. It is a programming error and is never recovered here.
type Violation struct {
	Message string
	Board   string
}

func (v *Violation) Error() string {
	return fmt.Sprintf("%s\n%s", v.Message, v.Board)
}

// Assert panics with a *Violation describing board when cond is false.
func Assert(cond bool, board fmt.Stringer, format string, args ...any) {
	if !cond {
		panic(&Violation{Message: fmt.Sprintf(format, args...), Board: board.String()})
	}
}

type finisher interface {
	fmt.Stringer
	Outcome() (Outcome, bool)
}

// AssertNotDone panics if board is already finished.
func AssertNotDone(board finisher, op string) {
	Assert(!IsDone(board), board, "cannot %s on done board", op)
}
