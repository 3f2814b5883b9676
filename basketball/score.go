package basketball

import (
	"errors"
)

var (
	ErrNegativePoints = errors.New("negative points")
	ErrEqualPoints    = errors.New("a basketball game cannot end in a draw")

	ErrUndetermined = errors.New("the winner is undeterminable from the score")
)

type score struct {
	a, b int
}

func (s *score) Points1() int {
	return s.a
}

func (s *score) Points2() int {
	return s.b
}

func (s *score) GetWinner() (int, error) {
	switch {
	case s.a > s.b:
		return 0, nil
	case s.b > s.a:
		return 1, nil
	default:
		return -1, ErrUndetermined
	}
}

func NewScore(a, b int) (*score, error) {
	switch {
	case a < 0 || b < 0:
		return nil, ErrNegativePoints
	case a == b:
		return nil, ErrEqualPoints
	}

	return &score{a, b}, nil
}
