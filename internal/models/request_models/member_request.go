package request_models

// MemberRequest carries the enrollment/update form fields. Presence and
// format are checked by the ordered validation pipeline rather than
// binding tags, so the first violated rule is always the one reported.
type MemberRequest struct {
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Email          string `json:"email"`
	CountryCode    string `json:"country_code"`
	PhoneNumber    string `json:"phone_number"`
	Gender         string `json:"gender"`
	MembershipType string `json:"membership_type"`
	RemainingDays  int    `json:"remaining_days"`
	NextPayment    int64  `json:"next_payment"`
}
