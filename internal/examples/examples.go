// Package examples serves the canned classification examples the front-end
// shows on its examples page. The entries are static, verified results for
// two representative queries.
package examples

import "github.com/kpdinfo/kpdinfo/internal/classify"

// Example pairs a sample query with its verified classification.
type Example struct {
	Upit   string          `json:"upit"`
	Result classify.Result `json:"result"`
}

// All returns the static example set.
func All() []Example {
	return []Example{
		{
			Upit: "Prodaja stolica u salonu",
			Result: classify.Result{
				NKD4:           ptr("47.55.0"),
				NKDNaziv:       ptr("trgovina na malo namještajem"),
				KPD6:           ptr("47.55.01"),
				NazivProizvoda: ptr("Usluge trgovine na malo namještajem"),
				RazlogOdabira:  ptr("Prodaja namještaja spada u NKD 47.55.0; u KPD 2025 odgovara 47.55.01."),
				Poruka:         nil,
				Alternativne: []classify.Alternative{
					{
						KPD6:   "47.55.02",
						Naziv:  "Usluge trgovine na malo opremom za rasvjetu",
						Kratko: "Ako asortiman uključuje rasvjetu.",
					},
					{
						KPD6:   "47.55.03",
						Naziv:  "Usluge trgovine na malo drvenim, plutenim i pletarskim proizvodima",
						Kratko: "Ako je fokus na tim artiklima.",
					},
				},
			},
		},
		{
			Upit: "Izrada web stranice",
			Result: classify.Result{
				NKD4:           ptr("62.10.9"),
				NKDNaziv:       ptr("Ostalo računalno programiranje"),
				KPD6:           ptr("62.10.11"),
				NazivProizvoda: ptr("Usluge IT dizajna i razvoja aplikacija"),
				RazlogOdabira:  ptr("Izrada web stranice razvrstava se u NKD 62.10.9; u KPD 2025 odgovara 62.10.11."),
				Poruka:         nil,
				Alternativne: []classify.Alternative{
					{
						KPD6:   "62.10.12",
						Naziv:  "Usluge IT dizajna i razvoja mreža i sustava",
						Kratko: "Ako uključuje mrežnu/sustavsku infrastrukturu.",
					},
					{
						KPD6:   "62.10.22",
						Naziv:  "Ostali originalni softver",
						Kratko: "Ako isporučuješ gotov softver kao proizvod.",
					},
				},
			},
		},
	}
}

func ptr(s string) *string {
	return &s
}
