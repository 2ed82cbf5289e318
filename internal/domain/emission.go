package domain

import (
	"strings"
	"time"
)

type EmissionScope string

const (
	ScopeOne     EmissionScope = "SCOPE_1" // direct emissions from owned or controlled sources
	ScopeTwo     EmissionScope = "SCOPE_2" // indirect emissions from purchased energy
	ScopeThree   EmissionScope = "SCOPE_3" // all other value-chain emissions
	ScopeSolvent EmissionScope = "SOLVENT" // solvent consumption and emissions
	ScopeSink    EmissionScope = "SINK"    // carbon sink data, e.g. reforestation
)

func (s EmissionScope) IsValid() bool {
	switch s {
	case ScopeOne, ScopeTwo, ScopeThree, ScopeSolvent, ScopeSink:
		return true
	default:
		return false
	}
}

// Display renders "SCOPE_1" as "Scope 1", "SOLVENT" as "Solvent", for
// notification and email text.
func (s EmissionScope) Display() string {
	str := string(s)
	if rest, ok := strings.CutPrefix(str, "SCOPE_"); ok {
		return "Scope " + rest
	}
	return strings.ToUpper(str[:1]) + strings.ToLower(str[1:])
}

type EmissionCategory string

const (
	// Scope 1
	CategoryStationaryCombustion EmissionCategory = "STATIONARY_COMBUSTION"
	CategoryMobileCombustion     EmissionCategory = "MOBILE_COMBUSTION"
	CategoryProcessEmissions     EmissionCategory = "PROCESS_EMISSIONS"
	CategoryFugitiveEmissions    EmissionCategory = "FUGITIVE_EMISSIONS"

	// Scope 2
	CategoryPurchasedElectricity EmissionCategory = "PURCHASED_ELECTRICITY"
	CategoryPurchasedHeating     EmissionCategory = "PURCHASED_HEATING"
	CategoryPurchasedCooling     EmissionCategory = "PURCHASED_COOLING"
	CategoryPurchasedSteam       EmissionCategory = "PURCHASED_STEAM"

	// Scope 3
	CategoryPurchasedGoodsServices      EmissionCategory = "PURCHASED_GOODS_SERVICES"
	CategoryCapitalGoods                EmissionCategory = "CAPITAL_GOODS"
	CategoryFuelEnergyActivities        EmissionCategory = "FUEL_ENERGY_ACTIVITIES"
	CategoryTransportationDistribution  EmissionCategory = "TRANSPORTATION_DISTRIBUTION"
	CategoryWasteGenerated              EmissionCategory = "WASTE_GENERATED"
	CategoryBusinessTravel              EmissionCategory = "BUSINESS_TRAVEL"
	CategoryEmployeeCommuting           EmissionCategory = "EMPLOYEE_COMMUTING"
	CategoryLeasedAssets                EmissionCategory = "LEASED_ASSETS"
	CategoryInvestments                 EmissionCategory = "INVESTMENTS"
	CategoryDownstreamTransportation    EmissionCategory = "DOWNSTREAM_TRANSPORTATION"
	CategoryProcessingSoldProducts      EmissionCategory = "PROCESSING_SOLD_PRODUCTS"
	CategoryUseOfSoldProducts           EmissionCategory = "USE_OF_SOLD_PRODUCTS"
	CategoryEndOfLifeProducts           EmissionCategory = "END_OF_LIFE_PRODUCTS"
	CategoryFranchises                  EmissionCategory = "FRANCHISES"

	// Solvent
	CategorySolventConsumption EmissionCategory = "SOLVENT_CONSUMPTION"
	CategorySolventRecovery    EmissionCategory = "SOLVENT_RECOVERY"
	CategorySolventLoss        EmissionCategory = "SOLVENT_LOSS"

	// Sink
	CategoryReforestation          EmissionCategory = "REFORESTATION"
	CategoryAfforestation          EmissionCategory = "AFFORESTATION"
	CategorySoilCarbonSequestration EmissionCategory = "SOIL_CARBON_SEQUESTRATION"
)

type TimeFrame string

const (
	TimeFrameMonthly   TimeFrame = "MONTHLY"
	TimeFrameQuarterly TimeFrame = "QUARTERLY"
	TimeFrameAnnual    TimeFrame = "ANNUAL"
	TimeFrameCustom    TimeFrame = "CUSTOM"
)

type GHGEmission struct {
	SubmissionBase

	Scope              EmissionScope    `json:"scope" db:"scope"`
	Category           EmissionCategory `json:"category" db:"category"`
	TimeFrame          TimeFrame        `json:"time_frame" db:"time_frame"`
	StartDate          *time.Time       `json:"start_date" db:"start_date"`
	EndDate            *time.Time       `json:"end_date" db:"end_date"`
	Quantity           float64          `json:"quantity" db:"quantity"`
	Unit               string           `json:"unit" db:"unit"`
	Source             *string          `json:"source,omitempty" db:"source"`
	Activity           *string          `json:"activity,omitempty" db:"activity"`
	CalculationMethod  *string          `json:"calculation_method,omitempty" db:"calculation_method"`
	EmissionFactor     *float64         `json:"emission_factor,omitempty" db:"emission_factor"`
	EmissionFactorUnit *string          `json:"emission_factor_unit,omitempty" db:"emission_factor_unit"`
	SubmissionDate     *time.Time       `json:"submission_date,omitempty" db:"submission_date"`
	Notes              *string          `json:"notes,omitempty" db:"notes"`
}

type CreateEmissionInput struct {
	Scope              EmissionScope `json:"scope" validate:"required"`
	Category           string        `json:"category" validate:"required"`
	TimeFrame          TimeFrame     `json:"time_frame"`
	StartDate          *time.Time    `json:"start_date" validate:"required"`
	EndDate            *time.Time    `json:"end_date" validate:"required"`
	Quantity           float64       `json:"quantity"`
	Unit               string        `json:"unit" validate:"required"`
	Source             *string       `json:"source,omitempty"`
	Activity           *string       `json:"activity,omitempty"`
	CalculationMethod  *string       `json:"calculation_method,omitempty"`
	EmissionFactor     *float64      `json:"emission_factor,omitempty"`
	EmissionFactorUnit *string       `json:"emission_factor_unit,omitempty"`
	Notes              *string       `json:"notes,omitempty"`
}

func (e *GHGEmission) Kind() SubmissionKind { return KindGHGEmission }

func (e *GHGEmission) Summary() string {
	return e.Scope.Display() + " emissions data"
}
