package game

import "errors"

// Every error here is an expected legality verdict, not a fault. A rejected
// move leaves the board untouched.
var (
	ErrGameOver      = errors.New("game already decided")
	ErrInvalidAnchor = errors.New("anchor outside the playable interior")
	ErrWrongCluster  = errors.New("cluster is mixed or not owned by the mover")
	ErrUnreachable   = errors.New("target not reachable for this cluster")
	ErrObstructed    = errors.New("sliding path is obstructed")
)
