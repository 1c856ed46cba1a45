package engine

// System is a per-tick update step over the match
type System interface {
	Update(m *Match)
	Priority() int // Lower values run first
}
