package simplify

import "errors"

// ErrUndefined is the single arithmetic-indeterminacy sentinel the engine
// ever produces: 0/0, 0^0, 0^(-n), or a literal with a zero denominator. It
// carries no payload and is always compared with errors.Is.
var ErrUndefined = errors.New("undefined")
