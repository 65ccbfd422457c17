package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gymgate/internal/models/db_models"
	"gymgate/internal/repositories"
	mem "gymgate/pkg/memcache"
	"gymgate/pkg/utils"
)

type stubDevice struct {
	mu        sync.Mutex
	enrollErr error
	deleteErr error
	enrolled  []string
	deleted   []string
}

func (s *stubDevice) EnrollUser(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.enrolled = append(s.enrolled, userID)
	return s.enrollErr
}

func (s *stubDevice) DeleteUser(ctx context.Context, userID, firstName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleted = append(s.deleted, userID)
	return s.deleteErr
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&db_models.Member{}, &db_models.Admin{}))
	return db
}

func newMemberService(t *testing.T) (MemberServiceInterface, repositories.MemberRepository, *stubDevice) {
	t.Helper()
	db := newTestDB(t)
	repo := repositories.NewMemberRepository(db)
	dev := &stubDevice{}
	svc := NewMemberService(repo, dev, mem.NewMemberLocks())
	return svc, repo, dev
}

func TestMemberService_Enroll(t *testing.T) {
	ctx := context.Background()

	t.Run("round-trip with normalized names", func(t *testing.T) {
		svc, _, dev := newMemberService(t)

		req := validMemberRequest()
		req.FirstName = "john"
		req.LastName = "doe"

		member, err := svc.Enroll(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, "John", member.FirstName)
		assert.Equal(t, "Doe", member.LastName)
		assert.Len(t, dev.enrolled, 1)

		fetched, err := svc.GetByPhone(ctx, req.CountryCode, req.PhoneNumber)
		require.NoError(t, err)
		assert.Equal(t, member.ID, fetched.ID)
		assert.Equal(t, req.Email, fetched.Email)
		assert.Equal(t, "+1", fetched.CountryCode)
		assert.Equal(t, req.PhoneNumber, fetched.PhoneNumber)
		assert.Equal(t, req.RemainingDays, fetched.RemainingDays)
	})

	t.Run("duplicate phone number rejected", func(t *testing.T) {
		svc, _, _ := newMemberService(t)

		_, err := svc.Enroll(ctx, validMemberRequest())
		require.NoError(t, err)

		dup := validMemberRequest()
		dup.Email = "other@example.com"
		_, err = svc.Enroll(ctx, dup)

		var validationErr *utils.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, MsgPhoneExists, validationErr.Message)
	})

	t.Run("validation failure performs no device call", func(t *testing.T) {
		svc, repo, dev := newMemberService(t)

		req := validMemberRequest()
		req.Email = "bad-email"
		_, err := svc.Enroll(ctx, req)

		var validationErr *utils.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Empty(t, dev.enrolled)

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("device failure leaves no local record", func(t *testing.T) {
		svc, repo, dev := newMemberService(t)
		dev.enrollErr = utils.ErrDeviceFailure

		_, err := svc.Enroll(ctx, validMemberRequest())
		require.ErrorIs(t, err, utils.ErrDeviceFailure)

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, count)
	})
}

func seedMember(t *testing.T, repo repositories.MemberRepository, lastCheckIn int64, remainingDays int) *db_models.Member {
	t.Helper()
	member := &db_models.Member{
		FirstName:      "Alice",
		LastName:       "Morgan",
		Email:          "alice.morgan@example.com",
		CountryCode:    "+1",
		PhoneNumber:    "2025550143",
		Gender:         "Female",
		MembershipType: db_models.MembershipMember,
		LastCheckIn:    lastCheckIn,
		RemainingDays:  remainingDays,
	}
	require.NoError(t, repo.Insert(context.Background(), member))
	return member
}

func TestMemberService_CheckIn(t *testing.T) {
	ctx := context.Background()
	yesterday := time.Now().Add(-25 * time.Hour).Unix()

	t.Run("new day consumes a remaining day", func(t *testing.T) {
		svc, repo, _ := newMemberService(t)
		member := seedMember(t, repo, yesterday, 1)

		updated, outcome, err := svc.CheckIn(ctx, member.ID.String())
		require.NoError(t, err)
		assert.Equal(t, CheckInConsumed, outcome)
		assert.Equal(t, 0, updated.RemainingDays)
		assert.True(t, utils.SameUTCDay(updated.LastCheckIn, time.Now().Unix()))
	})

	t.Run("same-day check-in is idempotent", func(t *testing.T) {
		svc, repo, _ := newMemberService(t)
		member := seedMember(t, repo, yesterday, 5)

		first, outcome, err := svc.CheckIn(ctx, member.ID.String())
		require.NoError(t, err)
		require.Equal(t, CheckInConsumed, outcome)

		second, outcome, err := svc.CheckIn(ctx, member.ID.String())
		require.NoError(t, err)
		assert.Equal(t, CheckInAlreadyToday, outcome)
		assert.Equal(t, first.RemainingDays, second.RemainingDays)
		assert.Equal(t, first.LastCheckIn, second.LastCheckIn)
	})

	t.Run("expired membership never goes negative", func(t *testing.T) {
		svc, repo, _ := newMemberService(t)
		member := seedMember(t, repo, yesterday, 0)

		stale, outcome, err := svc.CheckIn(ctx, member.ID.String())
		require.NoError(t, err)
		assert.Equal(t, CheckInExpired, outcome)
		assert.Equal(t, 0, stale.RemainingDays)
		assert.Equal(t, yesterday, stale.LastCheckIn)

		// The stored record is untouched.
		fresh, err := repo.FindByID(ctx, member.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, fresh.RemainingDays)
		assert.Equal(t, yesterday, fresh.LastCheckIn)
	})

	t.Run("unknown member", func(t *testing.T) {
		svc, _, _ := newMemberService(t)

		_, _, err := svc.CheckIn(ctx, "2c7f1f94-2f6e-4d33-9c0b-0d6f6a3b2a11")
		assert.ErrorIs(t, err, utils.ErrMemberNotFound)
	})

	t.Run("malformed id maps to not found", func(t *testing.T) {
		svc, _, _ := newMemberService(t)

		_, _, err := svc.CheckIn(ctx, "42")
		assert.ErrorIs(t, err, utils.ErrMemberNotFound)
	})

	t.Run("concurrent check-ins decrement exactly once", func(t *testing.T) {
		svc, repo, _ := newMemberService(t)
		member := seedMember(t, repo, yesterday, 5)

		var wg sync.WaitGroup
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, _, err := svc.CheckIn(ctx, member.ID.String())
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		fresh, err := repo.FindByID(ctx, member.ID)
		require.NoError(t, err)
		assert.Equal(t, 4, fresh.RemainingDays)
	})

	t.Run("expiry sequence over three days", func(t *testing.T) {
		svc, repo, _ := newMemberService(t)
		member := seedMember(t, repo, yesterday, 1)

		_, outcome, err := svc.CheckIn(ctx, member.ID.String())
		require.NoError(t, err)
		require.Equal(t, CheckInConsumed, outcome)

		_, outcome, err = svc.CheckIn(ctx, member.ID.String())
		require.NoError(t, err)
		require.Equal(t, CheckInAlreadyToday, outcome)

		// Simulate the day rolling over while the balance is empty.
		require.NoError(t, repo.UpdateFields(ctx, member.ID, map[string]interface{}{
			"last_check_in": yesterday,
		}))

		stale, outcome, err := svc.CheckIn(ctx, member.ID.String())
		require.NoError(t, err)
		assert.Equal(t, CheckInExpired, outcome)
		assert.Equal(t, 0, stale.RemainingDays)
	})
}

func TestMemberService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("updates whitelisted fields", func(t *testing.T) {
		svc, _, _ := newMemberService(t)
		member, err := svc.Enroll(ctx, validMemberRequest())
		require.NoError(t, err)

		req := validMemberRequest()
		req.FirstName = "johnny"
		req.RemainingDays = 12

		updated, err := svc.Update(ctx, member.ID.String(), req)
		require.NoError(t, err)
		assert.Equal(t, "Johnny", updated.FirstName)
		assert.Equal(t, 12, updated.RemainingDays)
	})

	t.Run("rejects phone already used by another member", func(t *testing.T) {
		svc, _, _ := newMemberService(t)

		first, err := svc.Enroll(ctx, validMemberRequest())
		require.NoError(t, err)

		other := validMemberRequest()
		other.Email = "other@example.com"
		other.PhoneNumber = "2125550180"
		second, err := svc.Enroll(ctx, other)
		require.NoError(t, err)

		steal := validMemberRequest()
		steal.PhoneNumber = first.PhoneNumber
		_, err = svc.Update(ctx, second.ID.String(), steal)

		var validationErr *utils.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, MsgPhoneExists, validationErr.Message)
	})

	t.Run("keeping own phone is allowed", func(t *testing.T) {
		svc, _, _ := newMemberService(t)
		member, err := svc.Enroll(ctx, validMemberRequest())
		require.NoError(t, err)

		req := validMemberRequest()
		req.Gender = "Female"
		updated, err := svc.Update(ctx, member.ID.String(), req)
		require.NoError(t, err)
		assert.Equal(t, "Female", updated.Gender)
	})
}

func TestMemberService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("device confirms before local delete", func(t *testing.T) {
		svc, repo, dev := newMemberService(t)
		member, err := svc.Enroll(ctx, validMemberRequest())
		require.NoError(t, err)

		require.NoError(t, svc.Delete(ctx, member.ID.String()))
		assert.Equal(t, []string{member.ID.String()}, dev.deleted)

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("device failure keeps the local record", func(t *testing.T) {
		svc, repo, dev := newMemberService(t)
		member, err := svc.Enroll(ctx, validMemberRequest())
		require.NoError(t, err)

		dev.deleteErr = errors.New("scanner offline")
		err = svc.Delete(ctx, member.ID.String())
		require.Error(t, err)

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.EqualValues(t, 1, count)
	})
}
