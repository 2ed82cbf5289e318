package category_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"esg-platform/internal/domain"
	"esg-platform/internal/service/category"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		scope    domain.EmissionScope
		raw      string
		expected domain.EmissionCategory
	}{
		{
			name:     "Exact Code",
			scope:    domain.ScopeOne,
			raw:      "STATIONARY_COMBUSTION",
			expected: domain.CategoryStationaryCombustion,
		},
		{
			name:     "Lowercase With Spaces",
			scope:    domain.ScopeOne,
			raw:      "stationary combustion",
			expected: domain.CategoryStationaryCombustion,
		},
		{
			name:     "Keyword Inside Free Text",
			scope:    domain.ScopeOne,
			raw:      "Diesel for mobile fleet",
			expected: domain.CategoryMobileCombustion,
		},
		{
			name:     "Scope 2 Electricity",
			scope:    domain.ScopeTwo,
			raw:      "Purchased grid electricity",
			expected: domain.CategoryPurchasedElectricity,
		},
		{
			name:     "Scope 3 Specific Wins Over Generic",
			scope:    domain.ScopeThree,
			raw:      "downstream transportation of goods",
			expected: domain.CategoryDownstreamTransportation,
		},
		{
			name:     "Scope 3 Commuting",
			scope:    domain.ScopeThree,
			raw:      "Employee commuting survey",
			expected: domain.CategoryEmployeeCommuting,
		},
		{
			name:     "Solvent Recovery",
			scope:    domain.ScopeSolvent,
			raw:      "solvent recovered from process",
			expected: domain.CategorySolventRecovery,
		},
		{
			name:     "Unknown Falls Back To Scope 1 Default",
			scope:    domain.ScopeOne,
			raw:      "bogus",
			expected: domain.CategoryStationaryCombustion,
		},
		{
			name:     "Unknown Falls Back To Scope 2 Default",
			scope:    domain.ScopeTwo,
			raw:      "bogus",
			expected: domain.CategoryPurchasedElectricity,
		},
		{
			name:     "Unknown Falls Back To Scope 3 Default",
			scope:    domain.ScopeThree,
			raw:      "bogus",
			expected: domain.CategoryTransportationDistribution,
		},
		{
			name:     "Unknown Falls Back To Solvent Default",
			scope:    domain.ScopeSolvent,
			raw:      "bogus",
			expected: domain.CategorySolventConsumption,
		},
		{
			name:     "Unknown Falls Back To Sink Default",
			scope:    domain.ScopeSink,
			raw:      "bogus",
			expected: domain.CategoryReforestation,
		},
		{
			name:     "Empty Falls Back To Default",
			scope:    domain.ScopeSink,
			raw:      "",
			expected: domain.CategoryReforestation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, category.Normalize(tt.scope, tt.raw))
		})
	}
}
