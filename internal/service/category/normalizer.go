package category

import (
	"log"
	"strings"

	"esg-platform/internal/domain"
)

type keywordRule struct {
	keyword  string
	category domain.EmissionCategory
}

// Keyword tables are ordered: the first matching keyword wins, so the more
// specific entries come first within each scope.
var scopeKeywords = map[domain.EmissionScope][]keywordRule{
	domain.ScopeOne: {
		{"STATIONARY", domain.CategoryStationaryCombustion},
		{"MOBILE", domain.CategoryMobileCombustion},
		{"PROCESS", domain.CategoryProcessEmissions},
		{"FUGITIVE", domain.CategoryFugitiveEmissions},
	},
	domain.ScopeTwo: {
		{"ELECTRICITY", domain.CategoryPurchasedElectricity},
		{"STEAM", domain.CategoryPurchasedSteam},
		{"HEAT", domain.CategoryPurchasedHeating},
		{"COOL", domain.CategoryPurchasedCooling},
	},
	domain.ScopeThree: {
		{"DOWNSTREAM", domain.CategoryDownstreamTransportation},
		{"END_OF_LIFE", domain.CategoryEndOfLifeProducts},
		{"USE_OF_SOLD", domain.CategoryUseOfSoldProducts},
		{"PROCESSING", domain.CategoryProcessingSoldProducts},
		{"TRANSPORT", domain.CategoryTransportationDistribution},
		{"TRAVEL", domain.CategoryBusinessTravel},
		{"COMMUT", domain.CategoryEmployeeCommuting},
		{"WASTE", domain.CategoryWasteGenerated},
		{"CAPITAL", domain.CategoryCapitalGoods},
		{"GOODS", domain.CategoryPurchasedGoodsServices},
		{"FUEL", domain.CategoryFuelEnergyActivities},
		{"LEASED", domain.CategoryLeasedAssets},
		{"INVEST", domain.CategoryInvestments},
		{"FRANCHIS", domain.CategoryFranchises},
	},
	domain.ScopeSolvent: {
		{"RECOVER", domain.CategorySolventRecovery},
		{"LOSS", domain.CategorySolventLoss},
		{"CONSUM", domain.CategorySolventConsumption},
	},
	domain.ScopeSink: {
		{"AFFOREST", domain.CategoryAfforestation},
		{"SOIL", domain.CategorySoilCarbonSequestration},
		{"REFOREST", domain.CategoryReforestation},
	},
}

var scopeDefaults = map[domain.EmissionScope]domain.EmissionCategory{
	domain.ScopeOne:     domain.CategoryStationaryCombustion,
	domain.ScopeTwo:     domain.CategoryPurchasedElectricity,
	domain.ScopeThree:   domain.CategoryTransportationDistribution,
	domain.ScopeSolvent: domain.CategorySolventConsumption,
	domain.ScopeSink:    domain.CategoryReforestation,
}

// Normalize maps a free-form category label, as typed in a form or a CSV
// cell, onto the canonical category for the scope. Unrecognized labels fall
// back to the scope default so one odd cell never sinks an import.
func Normalize(scope domain.EmissionScope, raw string) domain.EmissionCategory {
	label := strings.ToUpper(strings.TrimSpace(raw))
	label = strings.ReplaceAll(label, " ", "_")

	for _, rule := range scopeKeywords[scope] {
		if string(rule.category) == label {
			return rule.category
		}
	}

	for _, rule := range scopeKeywords[scope] {
		if strings.Contains(label, rule.keyword) {
			return rule.category
		}
	}

	def := scopeDefaults[scope]
	log.Printf("Unrecognized %s category %q, defaulting to %s", scope, raw, def)
	return def
}
