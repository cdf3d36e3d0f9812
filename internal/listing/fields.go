package listing

// Fields are the raw values of one inbound listing, before any rule has been applied
type Fields struct {
	BHK          int
	Bath         int
	Balcony      int
	TotalSqft    float64
	PricePerSqft float64
}

// DefaultFields returns the documented defaults of the path/query entry point and the form
func DefaultFields() Fields {
	return Fields{BHK: 2, Bath: 2, Balcony: 1, TotalSqft: 1000.0, PricePerSqft: 6000.0}
}

// Value looks a field up by its wire name
func (f Fields) Value(name string) (float64, bool) {
	switch name {
	case FieldBHK:
		return float64(f.BHK), true
	case FieldBath:
		return float64(f.Bath), true
	case FieldBalcony:
		return float64(f.Balcony), true
	case FieldTotalSqft:
		return f.TotalSqft, true
	case FieldPricePerSqft:
		return f.PricePerSqft, true
	default:
		return 0, false
	}
}

// PredictionRequest is a listing that passed Validate. The zero value is not valid.
type PredictionRequest struct {
	fields Fields
}

func (r PredictionRequest) Fields() Fields {
	return r.fields
}

func (r PredictionRequest) Value(name string) (float64, bool) {
	return r.fields.Value(name)
}
