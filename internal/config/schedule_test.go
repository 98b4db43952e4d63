package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseScheduleText(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []float64
	}{
		{"empty", "", nil},
		{"single decimal", "0.025", []float64{0.025}},
		{"comma separated", "0.02, 0.03, 0.04", []float64{0.02, 0.03, 0.04}},
		{"semicolons and newlines", "0.02;0.03\n0.04", []float64{0.02, 0.03, 0.04}},
		{"percent suffix", "2.5% 3%", []float64{0.025, 0.03}},
		{"decimal comma", "2,8%", []float64{0.028}},
		{"decimal comma without percent", "2,8", []float64{2.8}},
		{"comma as separator when dots present", "1.5,2.5", []float64{1.5, 2.5}},
		{"junk tokens dropped", "abc 0.02 --- 0.03%% n/a", []float64{0.02}},
		{"negative floored", "-5 -0.5", []float64{-0.99, -0.5}},
		{"negative percent", "-2%", []float64{-0.02}},
		{"mixed separators", "2%;3%\t2,5%\n0.01", []float64{0.02, 0.03, 0.025, 0.01}},
		{"whitespace only", "  \n\t ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseScheduleText(tt.text)
			if tt.expected == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, len(tt.expected), len(got))
			for i := range tt.expected {
				assert.InDelta(t, tt.expected[i], got[i], 1e-12)
			}
		})
	}
}
