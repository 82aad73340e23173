package hysteresis

import "errors"

// ErrNegativeHysteresis indicates NewFilter was asked for a negative
// hysteresis band; zero is valid (every reversal confirms immediately).
var ErrNegativeHysteresis = errors.New("hysteresis: band must be >= 0")
