package emulator

// Outcome classifies a coordinate by how the two branch hypotheses of a
// pair compare.
type Outcome int

//go:generate go tool stringer -linecomment -type=Outcome
const (
	OUTCOME_INCOMPLETE = Outcome(0) // incomplete
	OUTCOME_NO_BRANCH  = Outcome(1) // no-branch
	OUTCOME_SAME       = Outcome(2) // same
	OUTCOME_SET        = Outcome(3) // set
	OUTCOME_CLEAR      = Outcome(4) // clear
)

// Outcomes lists every Outcome, in report order.
var Outcomes = []Outcome{
	OUTCOME_INCOMPLETE,
	OUTCOME_NO_BRANCH,
	OUTCOME_SAME,
	OUTCOME_SET,
	OUTCOME_CLEAR,
}

func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// MoveKind classifies a coordinate change made by a single run.
type MoveKind int

//go:generate go tool stringer -linecomment -type=MoveKind
const (
	MOVE_MAYBE = MoveKind(0) // maybe
	MOVE_BAD   = MoveKind(1) // bad
	MOVE_SET   = MoveKind(2) // set
	MOVE_CLEAR = MoveKind(3) // clear
)

func (k MoveKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Move is a coordinate change.
type Move struct {
	Kind  MoveKind `json:"kind"`
	FromX int      `json:"from_x"`
	FromY int      `json:"from_y"`
	ToX   int      `json:"to_x"`
	ToY   int      `json:"to_y"`
}

// Cell is the comparison of both hypotheses of a pair at one coordinate.
type Cell struct {
	X, Y    int
	Outcome Outcome
	Set     Result // Run with the set-flag branch.
	Clear   Result // Run with the clear-flag branch.
}

// Compare runs both hypotheses of a pair from (x, y).
func (emu *Emulator) Compare(x, y int, pair Pair) (cell Cell, err error) {
	cell = Cell{X: x, Y: y}

	cell.Set, err = emu.Run(x, y, pair.Set)
	if err != nil {
		return
	}

	cell.Clear, err = emu.Run(x, y, pair.Clear)
	if err != nil {
		return
	}

	cell.Outcome = classify(cell.Set, cell.Clear)

	return
}

func classify(set, clear Result) Outcome {
	switch {
	case !set.Done || !clear.Done:
		return OUTCOME_INCOMPLETE
	case !set.HitSet || !clear.HitSet:
		return OUTCOME_NO_BRANCH
	case set.Hit == clear.Hit:
		return OUTCOME_SAME
	case set.Hit:
		return OUTCOME_SET
	}
	return OUTCOME_CLEAR
}

// move classifies the coordinate change of a run. A taken branch gets
// the taken kind.
func (res Result) move(taken MoveKind) (mv Move, ok bool) {
	if !res.Moved() {
		return
	}

	mv = Move{
		FromX: res.StartX,
		FromY: res.StartY,
		ToX:   res.X,
		ToY:   res.Y,
	}

	switch {
	case !res.Done || !res.HitSet:
		mv.Kind = MOVE_MAYBE
	case !res.Hit:
		mv.Kind = MOVE_BAD
	default:
		mv.Kind = taken
	}

	ok = true
	return
}

// Moves returns the coordinate changes of the set run, then the clear run.
func (cell *Cell) Moves() (moves []Move) {
	if mv, ok := cell.Set.move(MOVE_SET); ok {
		moves = append(moves, mv)
	}
	if mv, ok := cell.Clear.move(MOVE_CLEAR); ok {
		moves = append(moves, mv)
	}
	return
}
