package types

import "github.com/google/uuid"

// AttractionDetail is the in-memory attraction record produced by the
// generator. Instances are built fresh per request and never persisted;
// the ID is minted at construction time and does not travel on the wire.
type AttractionDetail struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Latitude      float64   `json:"latitude"`
	Longitude     float64   `json:"longitude"`
	Category      string    `json:"category"`
	Rating        float64   `json:"rating"`
	VisitDuration string    `json:"visit_duration"`
	BestTime      string    `json:"best_time"`
}

// AttractionWire is the wire form served by /api/v1/attractions.
// Field names match the mobile client's decoder (snake_case, lat/lng).
type AttractionWire struct {
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Lat           float64 `json:"lat"`
	Lng           float64 `json:"lng"`
	Category      string  `json:"category"`
	Rating        float64 `json:"rating"`
	VisitDuration string  `json:"visit_duration"`
	BestTime      string  `json:"best_time"`
}

// Wire converts the record to its wire form.
func (a AttractionDetail) Wire() AttractionWire {
	return AttractionWire{
		Name:          a.Name,
		Description:   a.Description,
		Lat:           a.Latitude,
		Lng:           a.Longitude,
		Category:      a.Category,
		Rating:        a.Rating,
		VisitDuration: a.VisitDuration,
		BestTime:      a.BestTime,
	}
}

// Detail rebuilds an in-memory record from the wire form, minting a fresh ID.
func (w AttractionWire) Detail() AttractionDetail {
	return AttractionDetail{
		ID:            uuid.New(),
		Name:          w.Name,
		Description:   w.Description,
		Latitude:      w.Lat,
		Longitude:     w.Lng,
		Category:      w.Category,
		Rating:        w.Rating,
		VisitDuration: w.VisitDuration,
		BestTime:      w.BestTime,
	}
}
