package sensor

import "errors"

// ErrInvalidArgument is returned, wrapped with details, when a glimpse is
// requested with parameters the sensor cannot honour. It is the only error
// the sensor produces: locations and bounds outside the image are valid and
// are zero-padded instead.
var ErrInvalidArgument = errors.New("invalid argument")
