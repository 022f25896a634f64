// Package sentiment maps message text to a sentiment label.
package sentiment

import (
	"strings"
	"unicode"
)

// Label is the classified sentiment of a message.
type Label string

const (
	LabelPositive Label = "Positive"
	LabelNegative Label = "Negative"
	LabelNeutral  Label = "Neutral"
)

// Classifier maps a message to a sentiment label. Implementations must
// be deterministic and side-effect free.
type Classifier interface {
	Classify(text string) Label
}

// Polarity thresholds. The boundaries themselves classify as neutral:
// exactly 0.2 is not positive and exactly -0.2 is not negative.
const (
	positiveThreshold = 0.2
	negativeThreshold = -0.2
)

// lexicon assigns polarity scores in [-1, 1] to sentiment-bearing
// words. The overall polarity of a message is the mean score of the
// matched words.
var lexicon = map[string]float64{
	"amazing":    0.9,
	"awesome":    0.9,
	"excellent":  0.9,
	"perfect":    1.0,
	"great":      0.8,
	"love":       0.8,
	"fantastic":  0.9,
	"good":       0.7,
	"happy":      0.8,
	"helpful":    0.6,
	"thanks":     0.5,
	"thank":      0.5,
	"works":      0.4,
	"working":    0.4,
	"fine":       0.2,
	"okay":       0.1,
	"ok":         0.1,
	"slow":       -0.3,
	"issue":      -0.3,
	"problem":    -0.4,
	"stuck":      -0.4,
	"poor":       -0.2,
	"bad":        -0.7,
	"broken":     -0.7,
	"broke":      -0.7,
	"useless":    -0.8,
	"terrible":   -0.9,
	"horrible":   -0.9,
	"awful":      -0.9,
	"hate":       -0.8,
	"worst":      -1.0,
	"angry":      -0.7,
	"defective":  -0.7,
	"refund":     -0.3,
	"frustrated": -0.6,
}

// negations flip the sign of the word that follows them.
var negations = map[string]bool{
	"not":   true,
	"no":    true,
	"never": true,
	"isnt":  true,
	"dont":  true,
	"wont":  true,
	"cant":  true,
}

// PolarityClassifier scores messages against the built-in lexicon.
type PolarityClassifier struct{}

// NewPolarityClassifier creates the default classifier.
func NewPolarityClassifier() *PolarityClassifier {
	return &PolarityClassifier{}
}

// Polarity returns the mean lexicon score of the message in [-1, 1].
// Messages with no sentiment-bearing words score 0.
func (c *PolarityClassifier) Polarity(text string) float64 {
	words := tokenize(text)

	var sum float64
	var matched int
	negate := false
	for _, w := range words {
		if negations[w] {
			negate = true
			continue
		}
		score, ok := lexicon[w]
		if !ok {
			negate = false
			continue
		}
		if negate {
			score = -score
			negate = false
		}
		sum += score
		matched++
	}

	if matched == 0 {
		return 0
	}
	return sum / float64(matched)
}

// Classify maps the message polarity onto a label.
func (c *PolarityClassifier) Classify(text string) Label {
	p := c.Polarity(text)
	switch {
	case p > positiveThreshold:
		return LabelPositive
	case p < negativeThreshold:
		return LabelNegative
	default:
		return LabelNeutral
	}
}

// tokenize lowercases the text and strips everything but letters,
// so "doesn't" and "Broken!" match lexicon entries.
func tokenize(text string) []string {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case unicode.IsLetter(r):
			return unicode.ToLower(r)
		case unicode.IsSpace(r):
			return r
		default:
			return -1
		}
	}, text)
	return strings.Fields(cleaned)
}
