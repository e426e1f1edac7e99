package chess

// Snapshot is a full copy of the pre-move state needed to undo one move.
type Snapshot struct {
	Board     Board
	Castling  CastlingRights
	EnPassant bool
	EPSquare  Square
}

// History is the stack of snapshots taken before each applied move.
// The zero value is an empty history.
type History struct {
	entries []Snapshot
}

// Push appends a snapshot.
func (h *History) Push(s Snapshot) {
	h.entries = append(h.entries, s)
}

// Pop removes and returns the most recent snapshot.
// ok is false if the history is empty.
func (h *History) Pop() (s Snapshot, ok bool) {
	if len(h.entries) == 0 {
		return Snapshot{}, false
	}
	last := len(h.entries) - 1
	s = h.entries[last]
	if last == 0 {
		h.entries = nil
	} else {
		h.entries = h.entries[:last]
	}
	return s, true
}

// Len returns the number of snapshots.
func (h *History) Len() int {
	return len(h.entries)
}

// Snapshots returns a copy of the snapshots, oldest first.
func (h *History) Snapshots() []Snapshot {
	out := make([]Snapshot, len(h.entries))
	copy(out, h.entries)
	return out
}

// Clone returns an independent copy of the history.
func (h History) Clone() History {
	if len(h.entries) == 0 {
		return History{}
	}
	return History{entries: h.Snapshots()}
}

// NewHistory builds a history from snapshots, oldest first.
func NewHistory(snapshots []Snapshot) History {
	if len(snapshots) == 0 {
		return History{}
	}
	entries := make([]Snapshot, len(snapshots))
	copy(entries, snapshots)
	return History{entries: entries}
}
