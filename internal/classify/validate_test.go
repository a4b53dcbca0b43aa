package classify

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func decode(t *testing.T, raw string) any {
	t.Helper()

	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		t.Fatalf("decode test payload: %v", err)
	}
	return v
}

const validPayload = `{
	"NKD_4": "62.10.9",
	"NKD_naziv": "Ostalo računalno programiranje",
	"KPD_6": "62.10.11",
	"Naziv_proizvoda": "Usluge IT dizajna i razvoja aplikacija",
	"Razlog_odabira": "Izrada web stranice razvrstava se u NKD 62.10.9.",
	"Poruka": null,
	"alternativne": [
		{"KPD_6": "62.10.12", "Naziv": "Usluge IT dizajna i razvoja mreža i sustava", "kratko_zašto": "Ako uključuje infrastrukturu."}
	]
}`

func TestValidateAccepts(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"full result", validPayload},
		{"four digit activity code", `{
			"NKD_4": "47.55",
			"NKD_naziv": null,
			"KPD_6": null,
			"Naziv_proizvoda": null,
			"Razlog_odabira": null,
			"Poruka": "Treba više konteksta.",
			"alternativne": []
		}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := Validate(decode(t, tc.payload)); err != nil {
				t.Fatalf("Validate() = %v, want nil", err)
			}
		})
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name    string
		value   any
		wantMsg string
	}{
		{"not an object", "plain string", "not an object"},
		{"missing field", decodeHelper(`{"NKD_4": "62.10.9"}`), "missing field: NKD_naziv"},
		{"null activity code", decodeHelper(`{
			"NKD_4": null, "NKD_naziv": null, "KPD_6": null,
			"Naziv_proizvoda": null, "Razlog_odabira": null, "Poruka": null,
			"alternativne": []
		}`), "NKD_4"},
		{"malformed activity code", replaceField(`"62.10.9"`, `"6210"`), "NKD_4"},
		{"malformed product code", replaceField(`"62.10.11"`, `"62.10"`), "KPD_6"},
		{"numeric name", replaceField(`"Ostalo računalno programiranje"`, `42`), "NKD_naziv"},
		{"alternatives not array", replaceField(`[
		{"KPD_6": "62.10.12", "Naziv": "Usluge IT dizajna i razvoja mreža i sustava", "kratko_zašto": "Ako uključuje infrastrukturu."}
	]`, `"none"`), "alternativne"},
		{"alternative missing rationale", replaceField(`"kratko_zašto": "Ako uključuje infrastrukturu."`, `"kratko_zašto": null`), "kratko_zašto"},
		{"alternative bad code", replaceField(`"KPD_6": "62.10.12"`, `"KPD_6": "62.10.1"`), "alternativne[0].KPD_6"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.value)
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("Validate() = %v, want ErrValidation", err)
			}
			if !strings.Contains(err.Error(), tc.wantMsg) {
				t.Fatalf("Validate() = %q, want mention of %q", err, tc.wantMsg)
			}
		})
	}
}

// TestValidateMissingFieldOrder asserts the validator reports the first
// missing field in declaration order rather than map iteration order.
func TestValidateMissingFieldOrder(t *testing.T) {
	err := Validate(decodeHelper(`{"Poruka": null}`))
	if err == nil || !strings.Contains(err.Error(), "missing field: NKD_4") {
		t.Fatalf("Validate() = %v, want missing NKD_4 first", err)
	}
}

func decodeHelper(raw string) any {
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		panic(err)
	}
	return v
}

func replaceField(old, new string) any {
	return decodeHelper(strings.Replace(validPayload, old, new, 1))
}
