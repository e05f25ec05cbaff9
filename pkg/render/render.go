package render

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/logrusorgru/aurora"

	"github.com/HuXin0817/dots-and-boxes-console/pkg/models/chess"
	"github.com/HuXin0817/dots-and-boxes-console/pkg/models/model"
)

// Renderer draws a Game onto a console.
type Renderer struct {
	out   io.Writer
	au    aurora.Aurora
	bar   *model.Bar
	boxes int
}

func New(out io.Writer, color model.Config) *Renderer {
	return &Renderer{
		out: out,
		au:  aurora.NewAurora(bool(color)),
	}
}

func (r *Renderer) Writer() io.Writer { return r.out }

func (r *Renderer) paint(id chess.PlayerID, s string) string {
	if id == chess.Nobody {
		return s
	}
	palette := []func(any) aurora.Value{r.au.Red, r.au.Blue, r.au.Green, r.au.Magenta, r.au.Cyan, r.au.Yellow}
	return palette[(int(id)-1)%len(palette)](s).String()
}

func (r *Renderer) cell(c chess.Cell) string {
	switch c.Kind {
	case chess.KindDot:
		return c.Token()
	case chess.KindHEdge:
		return r.paint(c.Owner, strings.Repeat(c.Token(), 3))
	case chess.KindBox:
		return r.paint(c.Owner, " "+c.Token()+" ")
	}
	return r.paint(c.Owner, c.Token())
}

// Board prints the lattice with dot indices along both axes.
func (r *Renderer) Board(b *chess.Board) {
	var sb strings.Builder

	sb.WriteString("    ")
	for col := 0; col < b.Cols(); col += 2 {
		fmt.Fprintf(&sb, "%-4d", col/2)
	}
	sb.WriteString("\n")

	for row, rows := 0, b.Rows(); row < rows; row++ {
		if row%2 == 0 {
			fmt.Fprintf(&sb, "%3d ", row/2)
		} else {
			sb.WriteString("    ")
		}
		for col, cols := 0, b.Cols(); col < cols; col++ {
			c, err := b.Cell(row, col)
			if err != nil {
				panic(err)
			}
			sb.WriteString(r.cell(c))
		}
		sb.WriteString("\n")
	}

	fmt.Fprint(r.out, sb.String())
}

// Scores prints every player's score and marks whose turn it is.
func (r *Renderer) Scores(g *chess.Game) {
	current := g.Current().ID
	parts := make([]string, 0, g.Roster.Len())
	for _, p := range g.Roster.Players() {
		mark := " "
		if p.ID == current && !g.Finished() {
			mark = ">"
		}
		parts = append(parts, fmt.Sprintf("%s%s: %d", mark, r.paint(p.ID, p.String()), g.Score(p.ID)))
	}
	fmt.Fprintln(r.out, strings.Join(parts, "  "))

	if g.Roster.TeamMode() {
		parts = parts[:0]
		for _, t := range g.Roster.Teams() {
			parts = append(parts, fmt.Sprintf("[%s] %d", t.Name, g.TeamScore(t.ID)))
		}
		fmt.Fprintln(r.out, strings.Join(parts, "  "))
	}
}

// Progress shows how many boxes have been claimed so far.
func (r *Renderer) Progress(b *chess.Board) {
	if r.bar == nil || r.boxes != b.TotalBoxes() {
		if r.bar != nil {
			r.bar.Close()
		}
		r.boxes = b.TotalBoxes()
		r.bar = model.NewBar(r.boxes, "boxes", r.out)
	}
	r.bar.Goto(b.ClaimedBoxes())
	fmt.Fprintln(r.out)
}

// Game renders a whole turn screen.
func (r *Renderer) Game(g *chess.Game) {
	fmt.Fprintln(r.out)
	r.Board(g.Board())
	r.Scores(g)
	r.Progress(g.Board())
}

func (r *Renderer) Outcome(g *chess.Game, thinking func(chess.PlayerID) time.Duration) {
	o := g.Outcome()
	fmt.Fprintln(r.out, r.au.Bold(o.String()))
	for _, s := range o.Standings {
		fmt.Fprintf(r.out, "  %-12s %d\n", s.Name, s.Score)
	}

	if thinking == nil {
		return
	}
	fmt.Fprintln(r.out, "Thinking time:")
	for _, p := range g.Roster.Players() {
		fmt.Fprintf(r.out, "  %-12s %v\n", p.String(), thinking(p.ID).Round(time.Millisecond))
	}
}

func (r *Renderer) Close() {
	if r.bar != nil {
		r.bar.Close()
		r.bar = nil
	}
}
