package types

import "time"

// DateTime embeds time.Time so wire timestamps carry the RFC3339 form the
// central system expects on both encode and decode.
type DateTime struct {
	time.Time
}

func NewDateTime(t time.Time) *DateTime {
	return &DateTime{Time: t}
}
