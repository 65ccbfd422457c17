package response_models

import (
	"gymgate/internal/models/db_models"
	"gymgate/pkg/utils"
)

type MemberResponse struct {
	ID             string `json:"id"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Email          string `json:"email"`
	CountryCode    string `json:"country_code"`
	PhoneNumber    string `json:"phone_number"`
	Gender         string `json:"gender"`
	MembershipType string `json:"membership_type"`
	LastCheckIn    string `json:"last_check_in"`
	RemainingDays  int    `json:"remaining_days"`
	NextPayment    string `json:"next_payment"`
	CreatedAt      string `json:"created_at"`
	UpdatedAt      string `json:"updated_at"`
}

func FromMember(member *db_models.Member) MemberResponse {
	return MemberResponse{
		ID:             member.ID.String(),
		FirstName:      member.FirstName,
		LastName:       member.LastName,
		Email:          member.Email,
		CountryCode:    member.CountryCode,
		PhoneNumber:    member.PhoneNumber,
		Gender:         member.Gender,
		MembershipType: string(member.MembershipType),
		LastCheckIn:    utils.FormatRFC3339(member.LastCheckIn),
		RemainingDays:  member.RemainingDays,
		NextPayment:    utils.FormatRFC3339(member.NextPayment),
		CreatedAt:      utils.FormatRFC3339(member.CreatedAt),
		UpdatedAt:      utils.FormatRFC3339(member.UpdatedAt),
	}
}

func FromMembers(members []db_models.Member) []MemberResponse {
	out := make([]MemberResponse, 0, len(members))
	for i := range members {
		out = append(out, FromMember(&members[i]))
	}
	return out
}
