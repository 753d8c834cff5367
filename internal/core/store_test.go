package core

import "testing"

func TestSwapExchangesGridsWithoutCopy(t *testing.T) {
	s := NewStore(16, 16, 1)
	cur, next := s.Current(), s.Next()
	if cur == next {
		t.Fatal("current and next share storage")
	}
	next.Set(3, 4, true)

	s.Swap()

	if s.Current() != next || s.Next() != cur {
		t.Fatal("Swap did not exchange grid references")
	}
	if !s.Current().Get(3, 4) {
		t.Fatal("promoted grid lost its contents")
	}
	if cur.Get(3, 4) {
		t.Fatal("old current grid was written during swap")
	}
}

func TestStoreEditsTouchOnlyCurrent(t *testing.T) {
	s := NewStore(16, 16, 9)
	s.Randomize(0.5)
	if s.Current().Population() == 0 {
		t.Fatal("Randomize left current grid empty")
	}
	if s.Next().Population() != 0 {
		t.Fatal("Randomize wrote to next grid")
	}

	s.Next().Set(0, 0, true)
	s.ClearAll()
	if s.Current().Population() != 0 {
		t.Fatal("ClearAll left live cells in current grid")
	}
	if !s.Next().Get(0, 0) {
		t.Fatal("ClearAll wrote to next grid")
	}
}

func TestStoreSeedIsDeterministic(t *testing.T) {
	a := NewStore(32, 32, 42)
	b := NewStore(32, 32, 42)
	a.Randomize(0.5)
	b.Randomize(0.5)
	if !a.Current().Equal(b.Current()) {
		t.Fatal("equal seeds produced different boards")
	}
}
