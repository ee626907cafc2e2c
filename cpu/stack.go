package cpu

// Stack is a growable byte stack. Pops from an empty stack yield 0.
type Stack struct {
	Data []uint8
}

// Push folds the value to a byte and pushes it.
func (s *Stack) Push(value int) {
	s.Data = append(s.Data, Fold(value))
}

// Pop pops the top byte, or 0 if empty.
func (s *Stack) Pop() (value uint8) {
	value, ok := s.Peek()
	if ok {
		s.Data = s.Data[:len(s.Data)-1]
	}
	return
}

func (s *Stack) Empty() bool {
	return len(s.Data) == 0
}

func (s *Stack) Len() int {
	return len(s.Data)
}

func (s *Stack) Peek() (value uint8, ok bool) {
	if s.Empty() {
		return
	}

	return s.Data[len(s.Data)-1], true
}

// Resize grows the stack with zeros, or truncates it, to exactly depth entries.
func (s *Stack) Resize(depth int) {
	for len(s.Data) < depth {
		s.Data = append(s.Data, 0)
	}
	if len(s.Data) > depth {
		s.Data = s.Data[:depth]
	}
}

func (s *Stack) Reset() {
	if len(s.Data) > 0 {
		s.Data = s.Data[:0]
	}
}
