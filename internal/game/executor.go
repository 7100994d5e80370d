package game

// relocate moves the cluster's 9 cells to the target anchor as one block
// transfer and returns the 9 destination coordinates after the border sweep.
//
// All 9 source values are staged before any cell is written, so the transfer
// stays correct when source and destination footprints overlap (a one-step
// slide shares 6 of 9 cells). Stones that land on the border ring are erased:
// they were pushed off the playable area.
func relocate(b *Board, cl *Cluster, to Coord) [9]Coord {
	dRow := to.Row - cl.anchor.Row
	dCol := to.Col - cl.anchor.Col

	var staged [9]Cell
	var dests [9]Coord
	for i, src := range cl.footprint {
		staged[i] = b.Get(src)
		dests[i] = Coord{src.Row + dRow, src.Col + dCol}
	}

	for _, src := range cl.footprint {
		b.Set(src, Empty)
	}
	for i, dst := range dests {
		b.Set(dst, staged[i])
	}

	for _, dst := range dests {
		if b.OnBorder(dst) {
			b.Set(dst, Empty)
		}
	}
	return dests
}
