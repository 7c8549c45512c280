package reservation

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const MaxNoteLength = 1000

type Note struct {
	value string
}

func NewNote(value string) Note {
	v := strings.TrimSpace(value)
	if r := []rune(v); len(r) > MaxNoteLength {
		v = string(r[:MaxNoteLength])
	}
	return Note{value: v}
}

func (n Note) String() string {
	return n.value
}

func (n Note) IsEmpty() bool {
	return n.value == ""
}

// Draft is a reservation request before a resource has been selected and
// priced.
type Draft struct {
	Kind       Kind
	CustomerID uuid.UUID
	Start      time.Time
	End        *time.Time
	Occupancy  int
	Note       Note
	WalkIn     bool
}
