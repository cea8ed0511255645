package sia262

// LoadCombination represents a SIA 260 load combination for a retaining wall
// Based on SIA 260 Section 4.4.3 (ULS type 2) and 4.4.4 (SLS)
type LoadCombination struct {
	ID          string
	Description string
	// Load factors for each load type
	Dead      float64 // G - self weight of wall and backfill
	Earth     float64 // E - earth pressure
	Surcharge float64 // Q - variable surcharge on the backfill
}

// ULS type 2 combinations (structural resistance)
var ULSCombinations = []LoadCombination{
	{
		ID:          "ULS-1",
		Description: "1.35G + 1.35E + 1.5Q",
		Dead:        1.35,
		Earth:       1.35,
		Surcharge:   1.5,
	},
	{
		ID:          "ULS-2",
		Description: "0.8G + 1.35E + 1.5Q",
		Dead:        0.8,
		Earth:       1.35,
		Surcharge:   1.5,
	},
}

// SLS combinations
var SLSCombinations = []LoadCombination{
	{
		ID:          "SLS-QP",
		Description: "1.0G + 1.0E + 0.3Q (quasi-permanent)",
		Dead:        1.0,
		Earth:       1.0,
		Surcharge:   0.3,
	},
	{
		ID:          "SLS-F",
		Description: "1.0G + 1.0E + 0.6Q (frequent)",
		Dead:        1.0,
		Earth:       1.0,
		Surcharge:   0.6,
	},
}

// LoadMoments holds unfactored (characteristic) internal forces by load type
type LoadMoments struct {
	Dead      float64 `json:"dead" yaml:"dead"`
	Earth     float64 `json:"earth" yaml:"earth"`
	Surcharge float64 `json:"surcharge" yaml:"surcharge"`
}

// CalculateFactoredMoment calculates the factored moment for a given load combination
func (lc LoadCombination) CalculateFactoredMoment(moments LoadMoments) float64 {
	return lc.Dead*moments.Dead +
		lc.Earth*moments.Earth +
		lc.Surcharge*moments.Surcharge
}

// CalculateGoverningMoment finds the maximum factored moment from all combinations
func CalculateGoverningMoment(moments LoadMoments, combinations []LoadCombination) (float64, LoadCombination) {
	var maxMoment float64
	var governingCombo LoadCombination

	for _, combo := range combinations {
		mu := combo.CalculateFactoredMoment(moments)
		if mu > maxMoment {
			maxMoment = mu
			governingCombo = combo
		}
	}

	return maxMoment, governingCombo
}

// SLSFromULSFactor returns the ratio between the governing quasi-permanent
// moment and the governing ULS moment. It scales a ULS envelope into an
// approximate SLS one when no SLS envelope is available.
func SLSFromULSFactor(moments LoadMoments) float64 {
	mULS, _ := CalculateGoverningMoment(moments, ULSCombinations)
	if mULS == 0 {
		return 0
	}
	mSLS := SLSCombinations[0].CalculateFactoredMoment(moments)
	return mSLS / mULS
}
