// Package validation provides input validation for statkit request handlers.
//
// It supports both struct tag validation (using the validator library) and
// programmatic validation with error collection. Struct tag validation is
// the usual choice for API request bodies; the fluent collector covers
// cross-field rules that tags cannot express.
//
// # Struct Tag Validation
//
//	type EstimateRequest struct {
//	    Sample      []float64 `json:"sample" validate:"required,min=1"`
//	    Repetitions int       `json:"repetitions" validate:"omitempty,gt=0"`
//	}
//	err := validation.Validate(req)
//
// # Programmatic Validation
//
//	v := validation.New()
//	v.NonEmptySlice("sample", len(sample))
//	v.FloatRangeExclusive("confidence_level", level, 0, 100)
//	err := v.Validate()
package validation
