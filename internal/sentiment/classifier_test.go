package sentiment

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassifyLabels(t *testing.T) {
	c := NewPolarityClassifier()

	tests := []struct {
		name string
		text string
		want Label
	}{
		{"positive", "this is great, thanks!", LabelPositive},
		{"strong positive", "amazing, works perfect now", LabelPositive},
		{"negative", "my mouse is broken", LabelNegative},
		{"strong negative", "terrible, the worst support ever", LabelNegative},
		{"neutral no lexicon words", "when did you purchase it", LabelNeutral},
		{"empty message", "", LabelNeutral},
		{"mixed leans neutral", "good but slow and a problem", LabelNeutral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, c.Classify(tt.text))
		})
	}
}

func TestThresholdBoundariesAreNeutral(t *testing.T) {
	c := NewPolarityClassifier()

	// "fine" scores exactly 0.2 and "poor" exactly -0.2; the boundary
	// values classify as neutral, not positive or negative.
	require.Equal(t, 0.2, c.Polarity("fine"))
	require.Equal(t, LabelNeutral, c.Classify("fine"))

	require.Equal(t, -0.2, c.Polarity("poor"))
	require.Equal(t, LabelNeutral, c.Classify("poor"))
}

func TestPolarityJustPastThreshold(t *testing.T) {
	c := NewPolarityClassifier()

	require.Greater(t, c.Polarity("works"), 0.2)
	require.Equal(t, LabelPositive, c.Classify("works"))

	require.Less(t, c.Polarity("slow"), -0.2)
	require.Equal(t, LabelNegative, c.Classify("slow"))
}

func TestNegationFlipsPolarity(t *testing.T) {
	c := NewPolarityClassifier()

	require.Equal(t, LabelPositive, c.Classify("it is working"))
	require.Equal(t, LabelNegative, c.Classify("it is not working"))
}

func TestPunctuationAndCaseIgnored(t *testing.T) {
	c := NewPolarityClassifier()

	require.Equal(t, c.Polarity("broken"), c.Polarity("BROKEN!!!"))
}

func TestClassifyIsDeterministic(t *testing.T) {
	c := NewPolarityClassifier()

	const text = "the keyboard broke and support was helpful"
	first := c.Classify(text)
	for i := 0; i < 10; i++ {
		require.Equal(t, first, c.Classify(text))
	}
}
