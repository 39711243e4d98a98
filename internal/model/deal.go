package model

import "time"

// Deal is a CRM opportunity record as delivered by the deal-fetch collaborator.
// Deals are read-only snapshots scoped to one query session: a re-fetch
// replaces the entire in-memory set and nothing here is ever mutated locally.
type Deal struct {
	ID         string `json:"id"`
	DisplayID  string `json:"displayId"`
	Name       string `json:"name"`
	RawStage   string `json:"stage"`
	Pipeline   string `json:"pipeline"`
	CreatedAt  string `json:"createdAt"` // ISO 8601, empty when the CRM has no creation date
	Company    string `json:"company"`
	CNPJ       string `json:"cnpj"`
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	PlaceID    string `json:"placeId"`
}

// dateLayouts are tried in order when parsing CreatedAt. The CRM emits full
// RFC 3339 timestamps; older records carry bare dates.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// CreatedTime parses the deal's creation timestamp. ok is false when the field
// is empty or unparseable; callers with an active date constraint must treat
// that as "excluded", never as an error.
func (d Deal) CreatedTime() (time.Time, bool) {
	if d.CreatedAt == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, d.CreatedAt, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// GroupedDeals is the payload of the deal-fetch collaborator: the full deal
// set pre-grouped by raw (pipeline-specific) stage code.
type GroupedDeals struct {
	OK      bool              `json:"ok"`
	Total   int               `json:"total"`
	Counts  map[string]int    `json:"counts"`
	Grouped map[string][]Deal `json:"grouped"`
}
