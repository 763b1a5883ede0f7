package sensor

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Combiner is the trainable stage fed by the sensor. It receives the
// flattened glimpse (length depth*size*size) and the raw location
// (length 2) and returns a fixed-length output vector.
type Combiner interface {
	Combine(glimpse, loc *mat.VecDense) (*mat.VecDense, error)
}

// Network pairs a sensor configuration with the combiner that consumes its
// glimpses. Data flows one way, from the sensor into the combiner.
type Network struct {
	Config   Config
	Combiner Combiner
}

// Glimpse extracts the glimpse the network would see at loc.
func (n Network) Glimpse(img mat.Matrix, loc Location) (*Glimpse, error) {
	return n.Config.Glimpse(img, loc)
}

// Forward extracts a glimpse of img at loc and passes it, together with
// loc, to the combiner.
func (n Network) Forward(img mat.Matrix, loc Location) (*mat.VecDense, error) {
	if n.Combiner == nil {
		return nil, fmt.Errorf("%w: network has no combiner", ErrInvalidArgument)
	}
	g, err := n.Glimpse(img, loc)
	if err != nil {
		return nil, err
	}
	out, err := n.Combiner.Combine(g.Vector(), loc.Vector())
	if err != nil {
		return nil, fmt.Errorf("combine glimpse: %w", err)
	}
	return out, nil
}
