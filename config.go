package ctrlstyle

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Config holds the process-wide presentation constants of a Composer.
type Config struct {
	// ScaleFactor multiplies base typography sizes (web points) into platform sizes.
	ScaleFactor float64 `koanf:"scale-factor" validate:"gt=0"`
	// DisabledOpacity is the overall opacity applied on top of disabled color tokens.
	DisabledOpacity float64 `koanf:"disabled-opacity" validate:"gte=0,lte=1"`
}

// DefaultConfig returns the iOS defaults: labels 25% larger than web, disabled at 60%.
func DefaultConfig() Config {
	return Config{ScaleFactor: 1.25, DisabledOpacity: 0.6}
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New()
	})
	return validateInst
}

// Validate checks field constraints and returns a *ConfigError for the
// first violation.
func (c Config) Validate() error {
	err := validatorInstance().Struct(c)
	if err == nil {
		if math.IsInf(c.ScaleFactor, 0) {
			return &ConfigError{Field: "ScaleFactor", Message: fmt.Sprintf("must be finite (value %v)", c.ScaleFactor)}
		}
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return &ConfigError{
			Field:   fe.Field(),
			Message: fmt.Sprintf("failed %q constraint (value %v)", fe.Tag()+optionalParam(fe.Param()), fe.Value()),
			Err:     err,
		}
	}
	return &ConfigError{Message: err.Error(), Err: err}
}

func optionalParam(p string) string {
	if p == "" {
		return ""
	}
	return "=" + p
}
