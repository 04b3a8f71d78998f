package regression

import (
	"fmt"

	"github.com/sartorproj/golinfit/errs"
)

// DefaultAlpha is the significance level used when WithAlpha is not given.
const DefaultAlpha = 0.05

// config collects the settings a fit is computed with.
type config struct {
	alpha float64
	newX  []float64
}

func defaultConfig() *config {
	return &config{alpha: DefaultAlpha}
}

// Option configures FitLine.
type Option interface {
	apply(*config) error
}

type optionFunc func(*config) error

func (f optionFunc) apply(c *config) error {
	return f(c)
}

func applyOptions(c *config, opts []Option) error {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.apply(c); err != nil {
			return err
		}
	}

	return nil
}

// WithAlpha sets the significance level of all confidence and prediction
// intervals. alpha must lie in (0, 1); 0.05 gives 95% intervals.
func WithAlpha(alpha float64) Option {
	return optionFunc(func(c *config) error {
		if !(alpha > 0 && alpha < 1) {
			return fmt.Errorf("%w: alpha %v outside (0, 1)", errs.ErrInvalidInput, alpha)
		}
		c.alpha = alpha

		return nil
	})
}

// WithNewX requests predictions at the given x-values. The values are copied.
// Repeated use appends.
func WithNewX(newX ...float64) Option {
	values := append([]float64(nil), newX...)

	return optionFunc(func(c *config) error {
		c.newX = append(c.newX, values...)
		return nil
	})
}
