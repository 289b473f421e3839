package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultRules_Valid(t *testing.T) {
	assert.NoError(t, DefaultRules().Validate())
}

func TestRules_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Rules)
	}{
		{"rsi extreme too high", func(r *Rules) { r.RSIExtreme = 0.9 }},
		{"rsi neutral too high", func(r *Rules) { r.RSINeutral = 0.7 }},
		{"ma short too low", func(r *Rules) { r.MAShort = 0.5 }},
		{"ma long fixed", func(r *Rules) { r.MALong = 0.65 }},
		{"bollinger fixed", func(r *Rules) { r.Bollinger = 0.75 }},
		{"momentum too high", func(r *Rules) { r.Momentum = 0.7 }},
		{"threshold one", func(r *Rules) { r.Threshold = 1 }},
		{"threshold zero", func(r *Rules) { r.Threshold = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := DefaultRules()
			tt.mutate(&r)
			assert.Error(t, r.Validate())
		})
	}
}

func TestRules_Merge(t *testing.T) {
	r := Rules{RSIExtreme: 0.75, Momentum: 0.5}.Merge(DefaultRules())
	want := DefaultRules()
	want.RSIExtreme = 0.75
	want.Momentum = 0.5
	assert.Equal(t, want, r)
	assert.NoError(t, r.Validate())
}
