// Package classify implements the NKD/KPD classification domain. It builds
// the instruction prompt and output schema, delegates to the completion
// provider, and extracts, coerces, and validates the structured result.
package classify

import (
	"encoding/json"
	"regexp"
)

// Code patterns from the NKD 2025 / KPD 2025 classifications.
// An activity code is dd.dd with an optional trailing digit; a
// product/service code is always six digits as dd.dd.dd.
var (
	ReActivityCode = regexp.MustCompile(`^\d{2}\.\d{2}(\.\d)?$`)
	ReProductCode  = regexp.MustCompile(`^\d{2}\.\d{2}\.\d{2}$`)
)

// Result is the classification returned to clients. The Croatian JSON keys
// are the wire contract shared with the front-end and must not change.
type Result struct {
	NKD4           *string       `json:"NKD_4"`
	NKDNaziv       *string       `json:"NKD_naziv"`
	KPD6           *string       `json:"KPD_6"`
	NazivProizvoda *string       `json:"Naziv_proizvoda"`
	RazlogOdabira  *string       `json:"Razlog_odabira"`
	Poruka         *string       `json:"Poruka"`
	Alternativne   []Alternative `json:"alternativne"`
}

// Alternative is one related candidate code sharing the primary's prefix.
type Alternative struct {
	KPD6   string `json:"KPD_6"`
	Naziv  string `json:"Naziv"`
	Kratko string `json:"kratko_zašto"`
}

// ActivityPrefix returns the dd.dd prefix of the primary activity code,
// or an empty string when the code is absent.
func (r *Result) ActivityPrefix() string {
	if r.NKD4 == nil {
		return ""
	}
	return codePrefix(*r.NKD4)
}

// PrefixViolations returns the alternatives whose code prefix does not match
// the primary activity code's prefix. The rule is an instruction to the
// external model, so violations are surfaced for logging rather than
// silently accepted or dropped.
func (r *Result) PrefixViolations() []Alternative {
	prefix := r.ActivityPrefix()
	if prefix == "" {
		return nil
	}

	var violations []Alternative
	for _, alt := range r.Alternativne {
		if codePrefix(alt.KPD6) != prefix {
			violations = append(violations, alt)
		}
	}
	return violations
}

// codePrefix returns the leading dd.dd portion of a classification code.
func codePrefix(code string) string {
	if len(code) < 5 {
		return code
	}
	return code[:5]
}

// rawResult mirrors Result with fully optional fields for coercion.
// kratko_zasto is an alternate spelling some provider responses use for
// kratko_zašto; both are accepted and normalized to the canonical key.
type rawResult struct {
	NKD4           *string          `json:"NKD_4"`
	NKDNaziv       *string          `json:"NKD_naziv"`
	KPD6           *string          `json:"KPD_6"`
	NazivProizvoda *string          `json:"Naziv_proizvoda"`
	RazlogOdabira  *string          `json:"Razlog_odabira"`
	Poruka         *string          `json:"Poruka"`
	Alternativne   []rawAlternative `json:"alternativne"`
}

type rawAlternative struct {
	KPD6        *string `json:"KPD_6"`
	Naziv       *string `json:"Naziv"`
	Kratko      *string `json:"kratko_zašto"`
	KratkoASCII *string `json:"kratko_zasto"`
}

// Coerce normalizes a decoded provider payload into the fixed Result shape:
// absent optional fields become null, absent alternative labels become empty
// strings, the alternate rationale key is folded into the canonical one,
// alternatives without a usable code are discarded, an alternative repeating
// the primary product code is dropped, and the list is capped at three
// entries. Coercion never fails on shape; pattern conformance is the
// validator's concern.
func Coerce(raw json.RawMessage) (*Result, error) {
	var decoded rawResult
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, err
	}

	result := &Result{
		NKD4:           decoded.NKD4,
		NKDNaziv:       decoded.NKDNaziv,
		KPD6:           decoded.KPD6,
		NazivProizvoda: decoded.NazivProizvoda,
		RazlogOdabira:  decoded.RazlogOdabira,
		Poruka:         decoded.Poruka,
		Alternativne:   make([]Alternative, 0, len(decoded.Alternativne)),
	}

	for _, alt := range decoded.Alternativne {
		if alt.KPD6 == nil || *alt.KPD6 == "" {
			continue
		}
		if decoded.KPD6 != nil && *alt.KPD6 == *decoded.KPD6 {
			continue
		}

		coerced := Alternative{KPD6: *alt.KPD6}
		if alt.Naziv != nil {
			coerced.Naziv = *alt.Naziv
		}
		switch {
		case alt.Kratko != nil:
			coerced.Kratko = *alt.Kratko
		case alt.KratkoASCII != nil:
			coerced.Kratko = *alt.KratkoASCII
		}

		result.Alternativne = append(result.Alternativne, coerced)
		if len(result.Alternativne) == maxAlternatives {
			break
		}
	}

	return result, nil
}

const maxAlternatives = 3
