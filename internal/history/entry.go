// Package history implements the server-side query history: a lightweight
// snapshot of each successful classification, capped to a fixed number of
// retained entries. It mirrors the history the front-end keeps client-side.
package history

import (
	"time"

	"github.com/google/uuid"

	"github.com/kpdinfo/kpdinfo/internal/classify"
)

// Entry is one retained classification snapshot.
type Entry struct {
	ID        uuid.UUID `json:"id"`
	Query     string    `json:"query"`
	NKD4      *string   `json:"NKD_4"`
	NKDNaziv  *string   `json:"NKD_naziv"`
	KPD6      *string   `json:"KPD_6"`
	Naziv     *string   `json:"Naziv_proizvoda"`
	Razlog    *string   `json:"Razlog_odabira"`
	CreatedAt time.Time `json:"created_at"`
}

// Snapshot extracts the history fields from a classification result.
func Snapshot(query string, result *classify.Result) Entry {
	return Entry{
		Query:    query,
		NKD4:     result.NKD4,
		NKDNaziv: result.NKDNaziv,
		KPD6:     result.KPD6,
		Naziv:    result.NazivProizvoda,
		Razlog:   result.RazlogOdabira,
	}
}
