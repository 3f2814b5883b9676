package basketball

import "testing"

func TestNewScore(t *testing.T) {
	_, err := NewScore(-1, 70)
	if err != ErrNegativePoints {
		t.Fatal("negative points did not error")
	}

	_, err = NewScore(70, 70)
	if err != ErrEqualPoints {
		t.Fatal("a draw did not error")
	}

	score, err := NewScore(81, 79)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if score.Points1() != 81 || score.Points2() != 79 {
		t.Fatal("score interface did not reproduce the given points")
	}

	winner, err := score.GetWinner()
	if err != nil || winner != 0 {
		t.Fatal("the team with more points is not the winner")
	}

	score, _ = NewScore(79, 81)
	winner, err = score.GetWinner()
	if err != nil || winner != 1 {
		t.Fatal("the second team did not win with more points")
	}
}

func TestUndeterminedScore(t *testing.T) {
	s := &score{70, 70}
	_, err := s.GetWinner()
	if err != ErrUndetermined {
		t.Fatal("an equal score returned a winner")
	}
}
