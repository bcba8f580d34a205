package tuning

import "errors"

var ErrInvalidConfig = errors.New("tuning: invalid config file")
