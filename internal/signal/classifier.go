// Package signal stands in for the out-of-scope ML inference step: a
// pre-trained classifier that turns a feature vector into a {BUY, SELL,
// HOLD} trading signal. spec.md excludes the model itself from this
// repo's scope and no ML runtime appears anywhere in the retrieval
// pack, so this package only commits to the interface boundary the spec
// names, plus one deterministic stand-in implementation.
package signal

// Signal is the three-way decision spec.md's feeder consumes. The
// numeric values match the signal CSV encoding in
// spec.md §6 (0=BUY, 1=SELL, 2=HOLD).
type Signal int

const (
	SignalBuy Signal = iota
	SignalSell
	SignalHold
)

func (s Signal) String() string {
	switch s {
	case SignalBuy:
		return "BUY"
	case SignalSell:
		return "SELL"
	case SignalHold:
		return "HOLD"
	default:
		return "UNKNOWN"
	}
}

// Classifier produces a trading signal from a feature vector. A real
// deployment swaps ThresholdClassifier for a pre-trained model behind
// this same interface.
type Classifier interface {
	Classify(features []float64) Signal
}

// ThresholdClassifier is a momentum-sign heuristic standing in for a
// trained model: features are interpreted as {price, qty}, and it signals
// BUY/SELL when the price has moved more than Threshold away from its
// running mean, HOLD otherwise. This mirrors the shape of the original
// prototype's argmax-over-scores decision without requiring a trained
// model to produce the scores.
type ThresholdClassifier struct {
	Threshold float64

	meanPrice float64
	seen      int
}

// NewThresholdClassifier builds a classifier that fires once price
// diverges from its running mean by more than threshold.
func NewThresholdClassifier(threshold float64) *ThresholdClassifier {
	return &ThresholdClassifier{Threshold: threshold}
}

func (c *ThresholdClassifier) Classify(features []float64) Signal {
	if len(features) == 0 {
		return SignalHold
	}
	price := features[0]

	c.seen++
	delta := price - c.meanPrice
	// Incremental mean update (Welford-style running average).
	c.meanPrice += delta / float64(c.seen)

	if c.seen == 1 {
		return SignalHold
	}
	switch {
	case delta > c.Threshold:
		return SignalBuy
	case delta < -c.Threshold:
		return SignalSell
	default:
		return SignalHold
	}
}
