package listing

import "math"

// Wire names of the listing fields. The model artifact refers to columns by these names.
const (
	FieldBHK          = "bhk"
	FieldBath         = "bath"
	FieldBalcony      = "balcony"
	FieldTotalSqft    = "total_sqft_int"
	FieldPricePerSqft = "price_per_sqft"
)

const (
	// MaxExtraBaths is how many bathrooms a listing may have beyond its bedroom count
	MaxExtraBaths = 2
	// MinSqftPerBHK is the smallest admissible area per bedroom, in sqft
	MinSqftPerBHK = 350.0
)

// Bound is the admissible range of one field together with the hints a form needs to
// render a bounded numeric input for it.
type Bound struct {
	Field        string
	Label        string
	Integer      bool
	Min          float64
	MinExclusive bool
	Max          float64
	HasMax       bool
	Message      string

	// form hints
	InputMin float64
	Default  float64
	Step     float64
}

// Admits reports whether v lies inside the bound. NaN and infinities never do.
func (b Bound) Admits(v float64) bool {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return false
	}
	if b.MinExclusive {
		if v <= b.Min {
			return false
		}
	} else if v < b.Min {
		return false
	}
	if b.HasMax && v > b.Max {
		return false
	}
	return true
}

// InputAdmits is the tighter check a bounded form input applies
func (b Bound) InputAdmits(v float64) bool {
	return b.Admits(v) && v >= b.InputMin
}

// CrossRule relates two fields. Applies reports whether the inputs the rule reads are
// usable at all, which only matters for the advisory check.
type CrossRule struct {
	Name    string
	Message string
	Applies func(Fields) bool
	Holds   func(Fields) bool
}

// FieldRules is the single range table used by the service and mirrored by the form.
var FieldRules = []Bound{
	{
		Field: FieldBHK, Label: "BHK", Integer: true,
		Min: 1, Max: 12, HasMax: true,
		Message:  "bhk must be between 1 and 12",
		InputMin: 1, Default: 2, Step: 1,
	},
	{
		Field: FieldBath, Label: "Bathrooms", Integer: true,
		Min: 1, Max: 12, HasMax: true,
		Message:  "bath must be between 1 and 12",
		InputMin: 1, Default: 2, Step: 1,
	},
	{
		Field: FieldBalcony, Label: "Balconies", Integer: true,
		Min: 0, Max: 6, HasMax: true,
		Message:  "balcony must be between 0 and 6",
		InputMin: 0, Default: 1, Step: 1,
	},
	{
		Field: FieldTotalSqft, Label: "Total Area (sqft)",
		Min: 200, MinExclusive: true,
		Message:  "total_sqft_int must be greater than 200",
		InputMin: 250, Default: 1000, Step: 50,
	},
	{
		Field: FieldPricePerSqft, Label: "Price per Sqft (₹)",
		Min: 0, MinExclusive: true,
		Message:  "price_per_sqft must be greater than 0",
		InputMin: 1, Default: 6000, Step: 100,
	},
}

var CrossFieldRules = []CrossRule{
	{
		Name:    "bath_per_bhk",
		Message: "bath should typically be <= (bhk + 2)",
		Applies: func(Fields) bool { return true },
		Holds:   func(f Fields) bool { return f.Bath <= f.BHK+MaxExtraBaths },
	},
	{
		Name:    "sqft_per_bhk",
		Message: "sqft per BHK must be >= 350 (data cleaning rule)",
		Applies: func(f Fields) bool { return f.BHK >= 1 },
		Holds:   func(f Fields) bool { return f.TotalSqft/float64(f.BHK) >= MinSqftPerBHK },
	},
}

// BoundFor returns the rule for the named field
func BoundFor(field string) (Bound, bool) {
	for _, b := range FieldRules {
		if b.Field == field {
			return b, true
		}
	}
	return Bound{}, false
}
