package stack

// Dup duplicates the top cell: ( a -- a a ).
func (s *Stack) Dup() error {
	if err := s.need(1); err != nil {
		return err
	}
	return s.Push(s.cells[len(s.cells)-1])
}

// Drop discards the top cell: ( a -- ).
func (s *Stack) Drop() error {
	_, err := s.Pop()
	return err
}

// Swap exchanges the top two cells: ( a b -- b a ).
func (s *Stack) Swap() error {
	if err := s.need(2); err != nil {
		return err
	}
	a, b := s.pop2()
	s.cells = append(s.cells, b, a)
	return nil
}

// Over copies the second cell to the top: ( a b -- a b a ).
func (s *Stack) Over() error {
	if err := s.need(2); err != nil {
		return err
	}
	return s.Push(s.cells[len(s.cells)-2])
}

// Rot rotates the third cell to the top: ( a b c -- b c a ).
func (s *Stack) Rot() error {
	if err := s.need(3); err != nil {
		return err
	}
	c, _ := s.Pop()
	a, b := s.pop2()
	s.cells = append(s.cells, b, c, a)
	return nil
}

// Tuck copies the top cell beneath the second: ( a b -- b a b ).
func (s *Stack) Tuck() error {
	if err := s.need(2); err != nil {
		return err
	}
	if len(s.cells) >= s.limit() {
		return ErrOverflow
	}
	a, b := s.pop2()
	s.cells = append(s.cells, b, a, b)
	return nil
}

// Pick pops n then copies the n-th cell below the top onto the top:
// ( xn ... x0 n -- xn ... x0 xn ). A negative n is treated as 0.
func (s *Stack) Pick() error {
	n, err := s.PopInt()
	if err != nil {
		return err
	}
	if n < 0 {
		n = 0
	}
	if err := s.need(int(n) + 1); err != nil {
		return err
	}
	return s.Push(s.cells[len(s.cells)-1-int(n)])
}

// Roll pops n then moves the n-th cell below the top onto the top:
// ( xn ... x0 n -- xn-1 ... x0 xn ). A negative n is treated as 0.
func (s *Stack) Roll() error {
	n, err := s.PopInt()
	if err != nil {
		return err
	}
	if n < 0 {
		n = 0
	}
	if err := s.need(int(n) + 1); err != nil {
		return err
	}
	i := len(s.cells) - 1 - int(n)
	c := s.cells[i]
	copy(s.cells[i:], s.cells[i+1:])
	s.cells[len(s.cells)-1] = c
	return nil
}
