package game

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// pathClear reports whether sliding the cluster to the target anchor is free
// of obstructions. Every one of the 9 footprint cells walks unit steps toward
// its own destination; a foreign stone strictly before that destination and
// outside the cluster's own footprint blocks the slide. The destination cell
// itself is exempt: whatever sits there is captured by arrival, not an
// obstacle.
//
// The target is assumed to come from Targets, so the displacement is a
// multiple of a single compass direction.
func pathClear(b *Board, cl *Cluster, to Coord) bool {
	dRow := to.Row - cl.anchor.Row
	dCol := to.Col - cl.anchor.Col
	sRow, sCol := sign(dRow), sign(dCol)

	steps := dRow * sRow
	if n := dCol * sCol; n > steps {
		steps = n
	}

	for _, src := range cl.footprint {
		for k := 1; k < steps; k++ {
			pos := Coord{src.Row + k*sRow, src.Col + k*sCol}
			if !cl.contains(pos) && b.Get(pos) != Empty {
				return false
			}
		}
	}
	return true
}
