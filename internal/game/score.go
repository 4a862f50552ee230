package game

// Score counts the rows gained during a session. It only ever grows until
// the next reset.
type Score struct {
	value     int
	maxRow    int
	listeners observers[int]
}

// NewScore returns a zero score.
func NewScore() *Score {
	return &Score{}
}

// Value returns the current score.
func (s *Score) Value() int { return s.value }

// MaxRow returns the furthest row reached.
func (s *Score) MaxRow() int { return s.maxRow }

// Increment adds points and notifies listeners.
func (s *Score) Increment(points int) {
	s.value += points
	s.listeners.notify(s.value)
}

// UpdateMaxRow awards one point when row beats the high-water mark.
func (s *Score) UpdateMaxRow(row int) {
	if row > s.maxRow {
		s.maxRow = row
		s.Increment(1)
	}
}

// Reset zeroes the score and notifies listeners.
func (s *Score) Reset() {
	s.value = 0
	s.maxRow = 0
	s.listeners.notify(s.value)
}

// Subscribe registers fn to receive the score after every change.
func (s *Score) Subscribe(fn func(value int)) (unsubscribe func()) {
	return s.listeners.subscribe(fn)
}
