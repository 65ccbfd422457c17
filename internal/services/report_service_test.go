package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gymgate/internal/models/db_models"
	"gymgate/internal/repositories"
)

func TestReportService_GenerateMemberReport(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := repositories.NewMemberRepository(db)
	svc := NewReportService(repo)

	now := time.Now().Unix()
	require.NoError(t, repo.Insert(ctx, &db_models.Member{
		FirstName:      "Alice",
		LastName:       "Morgan",
		Email:          "alice.morgan@example.com",
		CountryCode:    "+1",
		PhoneNumber:    "2025550143",
		Gender:         "Female",
		MembershipType: db_models.MembershipMember,
		LastCheckIn:    now,
		RemainingDays:  30,
		NextPayment:    now,
	}))
	require.NoError(t, repo.Insert(ctx, &db_models.Member{
		FirstName:      "Brian",
		LastName:       "Keller",
		Email:          "brian.keller@example.com",
		CountryCode:    "+1",
		PhoneNumber:    "2025550167",
		Gender:         "Male",
		MembershipType: db_models.MembershipNotMember,
		LastCheckIn:    now,
		RemainingDays:  0,
		NextPayment:    now,
	}))

	buf, err := svc.GenerateMemberReport(ctx)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Members")
	require.NoError(t, err)
	require.Len(t, rows, 3) // header plus two members

	assert.Equal(t, "First Name", rows[0][1])
	assert.Equal(t, "Remaining Days", rows[0][9])

	// Both members were inserted in the same second, so don't rely on
	// the report's row order.
	byName := map[string][]string{}
	for _, row := range rows[1:] {
		byName[row[1]] = row
	}
	require.Contains(t, byName, "Alice")
	require.Contains(t, byName, "Brian")
	assert.Equal(t, "Morgan", byName["Alice"][2])
	assert.Equal(t, "30", byName["Alice"][9])
	assert.Equal(t, "0", byName["Brian"][9])
}
