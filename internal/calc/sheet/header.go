package sheet

import (
	"time"

	"github.com/google/uuid"
)

// Header identifies one rendered process sheet.
type Header struct {
	Company string
	Number  string
	Issued  time.Time
}

func NewHeader(company string) Header {
	return Header{
		Company: company,
		Number:  uuid.NewString(),
		Issued:  time.Now(),
	}
}

// Title is the heading used on printed sheets, e.g. "Shenbian standard - Full-parameter calculation".
func (s Sheet) Title() string {
	return s.Standard.Label() + " - " + s.Mode.Label()
}
