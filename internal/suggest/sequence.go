package suggest

// Sequencer tags issued queries so that only the most recently issued one may
// update displayed state. It is owned by the update loop and not safe for
// concurrent use.
type Sequencer struct {
	latest uint64
}

// Next returns the tag for a newly issued query.
func (s *Sequencer) Next() uint64 {
	s.latest++
	return s.latest
}

// Latest returns the tag of the most recently issued query.
func (s *Sequencer) Latest() uint64 {
	return s.latest
}

// Check returns ErrStale unless seq is the latest issued tag.
func (s *Sequencer) Check(seq uint64) error {
	if seq != s.latest {
		return ErrStale
	}
	return nil
}
