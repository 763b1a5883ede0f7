package sensor

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/mat"
)

// sumCombiner returns (sum(glimpse), sum(loc)) and records input lengths.
type sumCombiner struct {
	glimpseLen, locLen int
	err                error
}

func (s *sumCombiner) Combine(glimpse, loc *mat.VecDense) (*mat.VecDense, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.glimpseLen, s.locLen = glimpse.Len(), loc.Len()
	return mat.NewVecDense(2, []float64{mat.Sum(glimpse), mat.Sum(loc)}), nil
}

func TestNetwork_Forward(t *testing.T) {
	comb := &sumCombiner{}
	n := Network{Config: Config{Size: 4, Scale: 2, Depth: 3}, Combiner: comb}

	img := ones(64, 64)
	out, err := n.Forward(img, Location{0.25, -0.5})
	if err != nil {
		t.Fatalf("Forward: %v", err)
	}
	if comb.glimpseLen != 3*4*4 || comb.locLen != 2 {
		t.Errorf("combiner inputs: glimpse %d, loc %d; want 48, 2", comb.glimpseLen, comb.locLen)
	}

	// Every level lies inside a constant image.
	if out.AtVec(0) != 48 {
		t.Errorf("glimpse sum = %v, want 48", out.AtVec(0))
	}
	if out.AtVec(1) != -0.25 {
		t.Errorf("location sum = %v, want -0.25", out.AtVec(1))
	}
}

func TestNetwork_Glimpse(t *testing.T) {
	n := Network{Config: Config{Size: 5, Scale: 1.5, Depth: 2}}
	g, err := n.Glimpse(ones(30, 30), Location{})
	if err != nil {
		t.Fatalf("Glimpse: %v", err)
	}
	if d, r, c := g.Shape(); d != 2 || r != 5 || c != 5 {
		t.Errorf("shape (%d, %d, %d), want (2, 5, 5)", d, r, c)
	}
}

func TestNetwork_Errors(t *testing.T) {
	img := ones(10, 10)

	t.Run("no combiner", func(t *testing.T) {
		n := Network{Config: DefaultConfig()}
		if _, err := n.Forward(img, Location{}); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("error = %v, want ErrInvalidArgument", err)
		}
	})

	t.Run("invalid config", func(t *testing.T) {
		n := Network{Config: Config{Size: 4, Scale: 0.5, Depth: 2}, Combiner: &sumCombiner{}}
		if _, err := n.Forward(img, Location{}); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("error = %v, want ErrInvalidArgument", err)
		}
	})

	t.Run("combiner failure", func(t *testing.T) {
		boom := errors.New("boom")
		n := Network{Config: DefaultConfig(), Combiner: &sumCombiner{err: boom}}
		if _, err := n.Forward(img, Location{}); !errors.Is(err, boom) {
			t.Errorf("error = %v, want wrapped boom", err)
		}
	})
}
