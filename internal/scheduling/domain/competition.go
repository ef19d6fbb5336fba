package scheduling

// Competition is a swim meet a club attends.
type Competition struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Location  string `json:"location,omitempty"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// TimeBlock is a single contiguous coaching interval on one calendar day
// within a competition assignment.
type TimeBlock struct {
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// CoachAssignment binds one coach to a competition with an ordered list of
// time blocks. A multi-day competition carries one block per coached day.
type CoachAssignment struct {
	ID              string      `json:"id"`
	CompetitionID   string      `json:"competition_id"`
	CompetitionName string      `json:"competition_name,omitempty"`
	CoachID         string      `json:"coach_id"`
	Blocks          []TimeBlock `json:"blocks"`
}
