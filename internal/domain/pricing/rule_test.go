//go:build unit

package pricing_test

import (
	"testing"

	"evcharge/internal/domain/pricing"
	"evcharge/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRule(t *testing.T) {
	t.Run("valid rule", func(t *testing.T) {
		rule, err := builder.NewDiscountRuleBuilder().BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, 1, rule.DayOfWeek())
		assert.Equal(t, 14, rule.StartHour())
		assert.Equal(t, 18, rule.EndHour())
		assert.Equal(t, 15.0, rule.Percent())
		assert.True(t, rule.Active())
	})

	tests := []struct {
		name   string
		mutate func(*builder.DiscountRuleBuilder)
		errIs  error
	}{
		{
			name:   "day below range",
			mutate: func(b *builder.DiscountRuleBuilder) { b.DayOfWeek = -1 },
			errIs:  pricing.ErrInvalidDayOfWeek,
		},
		{
			name:   "day above range",
			mutate: func(b *builder.DiscountRuleBuilder) { b.DayOfWeek = 7 },
			errIs:  pricing.ErrInvalidDayOfWeek,
		},
		{
			name:   "start hour above 23",
			mutate: func(b *builder.DiscountRuleBuilder) { b.StartHour = 24 },
			errIs:  pricing.ErrInvalidHourRange,
		},
		{
			name:   "start after end",
			mutate: func(b *builder.DiscountRuleBuilder) { b.StartHour = 19; b.EndHour = 14 },
			errIs:  pricing.ErrInvalidHourRange,
		},
		{
			name:   "negative percent",
			mutate: func(b *builder.DiscountRuleBuilder) { b.Percent = -5 },
			errIs:  pricing.ErrInvalidPercent,
		},
		{
			name:   "percent above 100",
			mutate: func(b *builder.DiscountRuleBuilder) { b.Percent = 101 },
			errIs:  pricing.ErrInvalidPercent,
		},
		{
			name:   "single hour window is allowed",
			mutate: func(b *builder.DiscountRuleBuilder) { b.StartHour = 14; b.EndHour = 14 },
		},
		{
			name:   "sunday is day zero",
			mutate: func(b *builder.DiscountRuleBuilder) { b.DayOfWeek = 0 },
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := builder.NewDiscountRuleBuilder().With(tt.mutate).BuildDomain()
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			assert.NoError(t, err)
		})
	}
}
