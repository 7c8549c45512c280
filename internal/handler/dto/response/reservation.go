package response

import (
	"time"

	"resort-engine/internal/usecase/commands"

	"github.com/google/uuid"
)

type QuoteResponse struct {
	Kind       string    `json:"kind"`
	ResourceID uuid.UUID `json:"resource_id"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
	Occupancy  int       `json:"occupancy"`
	Price      string    `json:"price"`
}

func FromQuote(q *commands.Quote) *QuoteResponse {
	return &QuoteResponse{
		Kind:       q.Kind.String(),
		ResourceID: q.ResourceID,
		Start:      q.Start,
		End:        q.End,
		Occupancy:  q.Occupancy,
		Price:      q.Price.String(),
	}
}
