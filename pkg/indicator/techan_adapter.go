package indicator

import (
	"fmt"
	"time"

	"github.com/sdcoffey/big"
	"github.com/sdcoffey/techan"
)

// TechanCalculator wraps a Techan indicator as a Calculator. It exists as
// an independently implemented reference: tests compare the movavg-backed
// SMA against it, and callers who already depend on techan can mix both
// behind the same interface.
type TechanCalculator struct {
	name      string
	period    int
	series    *techan.TimeSeries
	indicator techan.Indicator
	build     func(*techan.TimeSeries) techan.Indicator
	ready     bool
}

// NewTechanCalculator creates a Techan-backed calculator. The builder
// receives the series the calculator will append samples to, so the
// indicator is bound to the same series it is evaluated against.
func NewTechanCalculator(
	name string,
	period int,
	build func(*techan.TimeSeries) techan.Indicator,
) *TechanCalculator {
	series := techan.NewTimeSeries()

	return &TechanCalculator{
		name:      name,
		period:    period,
		series:    series,
		indicator: build(series),
		build:     build,
	}
}

// NewTechanSMA creates a techan-backed Simple Moving Average reference
// calculator with the given period.
func NewTechanSMA(period int) *TechanCalculator {
	return NewTechanCalculator(
		fmt.Sprintf("techan_sma_%d", period),
		period,
		func(series *techan.TimeSeries) techan.Indicator {
			return techan.NewSimpleMovingAverage(techan.NewClosePriceIndicator(series), period)
		},
	)
}

func (t *TechanCalculator) Name() string {
	return t.name
}

// Update converts the sample into a one-second candle and appends it.
// Sample timestamps must be strictly increasing; techan rejects candles
// that do not advance the series.
func (t *TechanCalculator) Update(sample Sample) (float64, error) {
	timePeriod := techan.NewTimePeriod(sample.Timestamp, time.Second)
	candle := techan.NewCandle(timePeriod)

	value := big.NewDecimal(sample.Value)
	candle.OpenPrice = value
	candle.MaxPrice = value
	candle.MinPrice = value
	candle.ClosePrice = value

	if !t.series.AddCandle(candle) {
		return 0, fmt.Errorf("sample at %s does not advance the series", sample.Timestamp)
	}

	lastIndex := t.series.LastIndex()
	if lastIndex+1 < t.period {
		return 0, nil
	}

	t.ready = true
	return t.indicator.Calculate(lastIndex).Float(), nil
}

func (t *TechanCalculator) Value() (float64, error) {
	if !t.ready {
		return 0, fmt.Errorf("indicator not ready: need at least %d samples", t.period)
	}
	return t.indicator.Calculate(t.series.LastIndex()).Float(), nil
}

func (t *TechanCalculator) Reset() {
	// techan series cannot be truncated in place; rebuild the indicator
	// against a fresh series instead.
	t.series = techan.NewTimeSeries()
	t.indicator = t.build(t.series)
	t.ready = false
}

func (t *TechanCalculator) IsReady() bool {
	return t.ready
}

// WindowSize returns the number of samples required for this calculator
func (t *TechanCalculator) WindowSize() int {
	return t.period
}

// SamplesProcessed returns the number of samples processed so far
func (t *TechanCalculator) SamplesProcessed() int {
	return t.series.LastIndex() + 1
}
