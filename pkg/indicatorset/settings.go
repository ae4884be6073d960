package indicatorset

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/c9s/streamta/pkg/indicator"
)

const DefaultBandWidth = 2.0

// Settings describes a single indicator of a set.
type Settings struct {
	ID   string `json:"id" yaml:"id" mapstructure:"id"`
	Type string `json:"type" yaml:"type" mapstructure:"type"`

	// Window is used by every single-window indicator
	Window int `json:"window,omitempty" yaml:"window,omitempty" mapstructure:"window"`

	// Fast, Slow and Signal are the MACD windows, Signal is optional
	Fast   int `json:"fast,omitempty" yaml:"fast,omitempty" mapstructure:"fast"`
	Slow   int `json:"slow,omitempty" yaml:"slow,omitempty" mapstructure:"slow"`
	Signal int `json:"signal,omitempty" yaml:"signal,omitempty" mapstructure:"signal"`

	// Smoothing chains an EMA over the stochastic %K when set
	Smoothing int `json:"smoothing,omitempty" yaml:"smoothing,omitempty" mapstructure:"smoothing"`

	// BandWidth is the bollinger standard deviation multiplier
	BandWidth *float64 `json:"bandWidth,omitempty" yaml:"bandWidth,omitempty" mapstructure:"bandWidth"`
}

// Indicator builds the indicator described by the settings.
func (settings Settings) Indicator() (inc indicator.Indicator, err error) {
	switch strings.ToLower(settings.Type) {
	case "sma":
		return indicator.NewSMA(settings.Window)

	case "ema", "ewma":
		return indicator.NewEMA(settings.Window)

	case "wilders", "rma", "smma":
		return indicator.NewWilders(settings.Window)

	case "max", "highest":
		return indicator.NewMax(settings.Window)

	case "min", "lowest":
		return indicator.NewMin(settings.Window)

	case "rsi":
		return indicator.NewRSI(settings.Window)

	case "macd":
		return settings.macd()

	case "stoch":
		return settings.stoch()

	case "boll", "bollinger":
		k := DefaultBandWidth
		if settings.BandWidth != nil {
			k = *settings.BandWidth
		}
		return indicator.NewBollinger(settings.Window, k)

	default:
		return nil, errors.Wrapf(indicator.ErrInvalidConfiguration, "unsupported indicator type: %q", settings.Type)
	}
}

func (settings Settings) stoch() (indicator.Indicator, error) {
	if settings.Smoothing == 0 {
		return indicator.NewStoch(settings.Window)
	}

	return indicator.NewSmoothedStoch(settings.Window, settings.Smoothing)
}

func (settings Settings) macd() (indicator.Indicator, error) {
	macd, err := indicator.NewMACD(settings.Fast, settings.Slow)
	if err != nil {
		return nil, err
	}

	if settings.Signal == 0 {
		return macd, nil
	}

	signal, err := indicator.NewEMA(settings.Signal)
	if err != nil {
		return nil, errors.Wrap(err, "macd signal window")
	}

	return indicator.NewChain(macd, signal)
}
