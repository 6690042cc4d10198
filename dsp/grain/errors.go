package grain

import "errors"

// ErrConfig is matched by every *ConfigError.
var ErrConfig = errors.New("noisegen: invalid configuration")

// ConfigError reports a rejected parameter. Param names the parameter the
// way the command line tool spells it ("str", "limit", "type", ...).
type ConfigError struct {
	Param  string
	Reason string
}

func (e *ConfigError) Error() string {
	return "noisegen: " + e.Reason
}

// Is makes errors.Is(err, ErrConfig) hold for every ConfigError.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

func configError(param, reason string) error {
	return &ConfigError{Param: param, Reason: reason}
}
