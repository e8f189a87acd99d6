package models

// Period is one time slot of the teaching day ("1st class", "2nd class").
// StartTime and EndTime are zero-padded 24h clock strings ("08:20"), so
// lexicographic order matches chronological order.
type Period struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// Before reports whether p starts earlier than other.
func (p *Period) Before(other *Period) bool {
	if p.StartTime != other.StartTime {
		return p.StartTime < other.StartTime
	}
	return p.ID < other.ID
}
