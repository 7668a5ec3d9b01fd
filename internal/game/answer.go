package game

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Answer is a gradable value. The set of implementations is closed to this
// package.
type Answer interface {
	fmt.Stringer
	isAnswer()
}

// Number is an integer answer.
type Number int

// Text is a word or label answer.
type Text string

// Truth is a true/false answer.
type Truth bool

// Decimal is a fixed-scale decimal answer.
type Decimal struct {
	Value decimal.Decimal
}

// Grid is a row-major grid of cell values.
type Grid [][]int

// Cell addresses a grid cell.
type Cell struct {
	Row int
	Col int
}

// Path is an ordered walk across grid cells.
type Path []Cell

// Clock is a time on a 12-hour analog clock.
type Clock struct {
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
}

// Point is a position on a coordinate plane.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Match pairs an item with a color in a logic grid.
type Match struct {
	Item  string `json:"item"`
	Color string `json:"color"`
}

// Pairing is the ordered set of matches solving a logic grid.
type Pairing []Match

func (Number) isAnswer()  {}
func (Text) isAnswer()    {}
func (Truth) isAnswer()   {}
func (Decimal) isAnswer() {}
func (Grid) isAnswer()    {}
func (Path) isAnswer()    {}
func (Clock) isAnswer()   {}
func (Point) isAnswer()   {}
func (Pairing) isAnswer() {}

func (n Number) String() string { return strconv.Itoa(int(n)) }
func (t Text) String() string   { return string(t) }

func (t Truth) String() string {
	if t {
		return "True"
	}
	return "False"
}

// Tenths returns a decimal of n tenths, e.g. Tenths(7) is 0.7.
func Tenths(n int) Decimal {
	return Decimal{Value: decimal.New(int64(n), -1)}
}

func (d Decimal) String() string { return d.Value.StringFixed(1) }

// MarshalJSON encodes the decimal as a bare JSON number.
func (d Decimal) MarshalJSON() ([]byte, error) {
	return []byte(d.Value.String()), nil
}

// UnmarshalJSON accepts a JSON number or a quoted decimal string.
func (d *Decimal) UnmarshalJSON(data []byte) error {
	return d.Value.UnmarshalJSON(data)
}

func (g Grid) String() string {
	rows := make([]string, len(g))
	for i, row := range g {
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = strconv.Itoa(v)
		}
		rows[i] = strings.Join(cells, " ")
	}
	return strings.Join(rows, "/")
}

// Clone returns a deep copy of the grid.
func (g Grid) Clone() Grid {
	out := make(Grid, len(g))
	for i, row := range g {
		out[i] = append([]int(nil), row...)
	}
	return out
}

// MarshalJSON encodes the cell as a [row, col] pair.
func (c Cell) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{c.Row, c.Col})
}

// UnmarshalJSON decodes a [row, col] pair.
func (c *Cell) UnmarshalJSON(data []byte) error {
	var pair [2]int
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("decode cell: %w", err)
	}
	c.Row, c.Col = pair[0], pair[1]
	return nil
}

func (p Path) String() string {
	steps := make([]string, len(p))
	for i, c := range p {
		steps[i] = fmt.Sprintf("(%d,%d)", c.Row, c.Col)
	}
	return strings.Join(steps, " ")
}

func (c Clock) String() string { return fmt.Sprintf("%d:%02d", c.Hours, c.Minutes) }
func (p Point) String() string { return fmt.Sprintf("(%d, %d)", p.X, p.Y) }

func (p Pairing) String() string {
	parts := make([]string, len(p))
	for i, m := range p {
		parts[i] = m.Item + "=" + m.Color
	}
	return strings.Join(parts, ", ")
}

// Kind describes the shape of the answer a game type expects.
type Kind int

const (
	KindNumber Kind = iota
	KindText
	KindTruth
	KindDecimal
	KindGrid
	KindPath
	KindClock
	KindPoint
	KindPairing
)

var kindNames = map[Kind]string{
	KindNumber:  "number",
	KindText:    "text",
	KindTruth:   "truth",
	KindDecimal: "decimal",
	KindGrid:    "grid",
	KindPath:    "path",
	KindClock:   "clock",
	KindPoint:   "point",
	KindPairing: "pairing",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// DecodeAnswer decodes a JSON answer of the given kind.
func DecodeAnswer(k Kind, data []byte) (Answer, error) {
	var (
		a   Answer
		err error
	)
	switch k {
	case KindNumber:
		var v Number
		err = json.Unmarshal(data, &v)
		a = v
	case KindText:
		var v Text
		err = json.Unmarshal(data, &v)
		a = v
	case KindTruth:
		var v Truth
		err = json.Unmarshal(data, &v)
		a = v
	case KindDecimal:
		var v Decimal
		err = json.Unmarshal(data, &v)
		a = v
	case KindGrid:
		var v Grid
		err = json.Unmarshal(data, &v)
		a = v
	case KindPath:
		var v Path
		err = json.Unmarshal(data, &v)
		a = v
	case KindClock:
		var v Clock
		err = json.Unmarshal(data, &v)
		a = v
	case KindPoint:
		var v Point
		err = json.Unmarshal(data, &v)
		a = v
	case KindPairing:
		var v Pairing
		err = json.Unmarshal(data, &v)
		a = v
	default:
		return nil, fmt.Errorf("decode answer: unknown kind %v", k)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %v answer: %w", k, err)
	}
	return a, nil
}
