package scheduling

// Session is a scheduled squad session. Dates are date-only ISO strings and
// times are wall-clock "HH:MM" strings; both stay strings all the way through
// so month membership never depends on timezone conversion.
type Session struct {
	ID            string `json:"id"`
	Date          string `json:"date"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	SquadID       string `json:"squad_id"`
	Title         string `json:"title,omitempty"`
	LeadCoachID   string `json:"lead_coach_id"`
	SecondCoachID string `json:"second_coach_id,omitempty"`
	HelperID      string `json:"helper_id,omitempty"`
	SetWriterID   string `json:"set_writer_id,omitempty"`
}
