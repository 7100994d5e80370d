package game

// Mobility classifies how far a cluster may slide. A cluster whose center
// cell holds a stone slides without a distance cap; otherwise it is capped
// at three steps.
type Mobility int

const (
	Limited Mobility = iota
	Unlimited
)

// maxLimitedSteps caps the slide distance of a Limited cluster.
const maxLimitedSteps = 3

// directions enumerates the 8 non-center offsets of the 3x3 footprint.
// The occupied bitmask on Cluster is indexed by this order.
var directions = [8]Coord{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Cluster is a read-only view of the 3x3 footprint around an anchor, taken
// against the board at construction time. It borrows the board for the
// inspection and owns none of it; build one per move attempt and discard it.
type Cluster struct {
	anchor    Coord
	footprint [9]Coord
	occupied  uint8 // bitmask over directions
	mobility  Mobility
	hasBlack  bool
	hasWhite  bool
}

// NewCluster derives the cluster view at anchor. The anchor must lie
// strictly inside the border ring so that all 9 footprint cells are
// addressable; otherwise ErrInvalidAnchor is returned.
func NewCluster(b *Board, anchor Coord) (*Cluster, error) {
	if !interior(anchor) {
		return nil, ErrInvalidAnchor
	}
	cl := &Cluster{anchor: anchor}
	i := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			c := Coord{anchor.Row + dr, anchor.Col + dc}
			cl.footprint[i] = c
			i++
			switch b.Get(c) {
			case Black:
				cl.hasBlack = true
			case White:
				cl.hasWhite = true
			default:
				continue
			}
			if dr == 0 && dc == 0 {
				cl.mobility = Unlimited
				continue
			}
			cl.occupied |= 1 << directionIndex(dr, dc)
		}
	}
	return cl, nil
}

func directionIndex(dr, dc int) uint {
	for i, d := range directions {
		if d.Row == dr && d.Col == dc {
			return uint(i)
		}
	}
	panic("not a unit offset")
}

func (cl *Cluster) Anchor() Coord { return cl.anchor }

func (cl *Cluster) Footprint() [9]Coord { return cl.footprint }

func (cl *Cluster) Mobility() Mobility { return cl.mobility }

// Mixed reports whether the footprint holds stones of both colors.
// A mixed cluster is never a legal selection.
func (cl *Cluster) Mixed() bool { return cl.hasBlack && cl.hasWhite }

// Holds reports whether the footprint holds at least one stone of color c.
func (cl *Cluster) Holds(c Cell) bool {
	switch c {
	case Black:
		return cl.hasBlack
	case White:
		return cl.hasWhite
	default:
		return false
	}
}

// contains reports whether c is one of the cluster's own 9 cells.
func (cl *Cluster) contains(c Coord) bool {
	return c.Row >= cl.anchor.Row-1 && c.Row <= cl.anchor.Row+1 &&
		c.Col >= cl.anchor.Col-1 && c.Col <= cl.anchor.Col+1
}
