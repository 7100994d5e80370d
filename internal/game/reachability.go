package game

// Targets returns the set of candidate target anchors for the cluster.
// Obstruction is not considered here; pathClear rules on that separately.
//
// Each occupied offset of the footprint contributes one compass direction.
// An Unlimited cluster walks a direction until it leaves the open interior;
// a Limited cluster contributes at most three steps per direction, each
// candidate filtered independently so a blocked magnitude does not discard
// the shorter ones.
func (cl *Cluster) Targets() map[Coord]struct{} {
	out := make(map[Coord]struct{})
	for i, d := range directions {
		if cl.occupied&(1<<uint(i)) == 0 {
			continue
		}
		if cl.mobility == Unlimited {
			pos := cl.anchor
			for {
				pos = Coord{pos.Row + d.Row, pos.Col + d.Col}
				if !interior(pos) {
					break
				}
				out[pos] = struct{}{}
			}
			continue
		}
		for k := 1; k <= maxLimitedSteps; k++ {
			pos := Coord{cl.anchor.Row + k*d.Row, cl.anchor.Col + k*d.Col}
			if interior(pos) {
				out[pos] = struct{}{}
			}
		}
	}
	return out
}
