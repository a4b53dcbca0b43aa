package classify

import "fmt"

var requiredFields = []string{
	"NKD_4",
	"NKD_naziv",
	"KPD_6",
	"Naziv_proizvoda",
	"Razlog_odabira",
	"Poruka",
	"alternativne",
}

// Validate asserts that a decoded JSON value conforms to the Result shape.
// It is a pure function with no side effects, usable both before trusting a
// provider's output and by any client before rendering. Checks run in a
// fixed order and fail fast, naming the first offending field; there is no
// partial acceptance.
func Validate(v any) error {
	obj, ok := v.(map[string]any)
	if !ok {
		return fmt.Errorf("%w: value is not an object", ErrValidation)
	}

	for _, field := range requiredFields {
		if _, present := obj[field]; !present {
			return fmt.Errorf("%w: missing field: %s", ErrValidation, field)
		}
	}

	nkd, ok := obj["NKD_4"].(string)
	if !ok || !ReActivityCode.MatchString(nkd) {
		return fmt.Errorf("%w: NKD_4 must match dd.dd or dd.dd.d", ErrValidation)
	}

	if err := stringOrNull(obj, "NKD_naziv"); err != nil {
		return err
	}

	if kpd, present := obj["KPD_6"]; present && kpd != nil {
		s, ok := kpd.(string)
		if !ok || !ReProductCode.MatchString(s) {
			return fmt.Errorf("%w: KPD_6 must be null or match dd.dd.dd", ErrValidation)
		}
	}

	for _, field := range []string{"Naziv_proizvoda", "Razlog_odabira", "Poruka"} {
		if err := stringOrNull(obj, field); err != nil {
			return err
		}
	}

	alts, ok := obj["alternativne"].([]any)
	if !ok {
		return fmt.Errorf("%w: alternativne must be an array", ErrValidation)
	}

	for i, item := range alts {
		alt, ok := item.(map[string]any)
		if !ok {
			return fmt.Errorf("%w: alternativne[%d] must be an object", ErrValidation, i)
		}

		code, ok := alt["KPD_6"].(string)
		if !ok || !ReProductCode.MatchString(code) {
			return fmt.Errorf("%w: alternativne[%d].KPD_6 must match dd.dd.dd", ErrValidation, i)
		}
		if _, ok := alt["Naziv"].(string); !ok {
			return fmt.Errorf("%w: alternativne[%d].Naziv must be a string", ErrValidation, i)
		}
		if _, ok := alt["kratko_zašto"].(string); !ok {
			return fmt.Errorf("%w: alternativne[%d].kratko_zašto must be a string", ErrValidation, i)
		}
	}

	return nil
}

func stringOrNull(obj map[string]any, field string) error {
	v := obj[field]
	if v == nil {
		return nil
	}
	if _, ok := v.(string); !ok {
		return fmt.Errorf("%w: %s must be a string or null", ErrValidation, field)
	}
	return nil
}
