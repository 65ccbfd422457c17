package services

import (
	"context"
	"log"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gymgate/internal/device"
	"gymgate/internal/models/db_models"
	"gymgate/internal/models/request_models"
	"gymgate/internal/repositories"
	mem "gymgate/pkg/memcache"
	"gymgate/pkg/utils"
)

// CheckInOutcome tells the caller what a check-in attempt did.
type CheckInOutcome string

const (
	// CheckInConsumed: a new calendar day, one remaining day consumed.
	CheckInConsumed CheckInOutcome = "checked_in"
	// CheckInAlreadyToday: second check-in on the same UTC date, no-op.
	CheckInAlreadyToday CheckInOutcome = "already_checked_in"
	// CheckInExpired: new calendar day but no remaining days left.
	CheckInExpired CheckInOutcome = "expired"
)

type MemberServiceInterface interface {
	Enroll(ctx context.Context, req request_models.MemberRequest) (*db_models.Member, error)
	GetAll(ctx context.Context) ([]db_models.Member, error)
	GetByID(ctx context.Context, id string) (*db_models.Member, error)
	GetByPhone(ctx context.Context, countryCode, phoneNumber string) (*db_models.Member, error)
	Update(ctx context.Context, id string, req request_models.MemberRequest) (*db_models.Member, error)
	Delete(ctx context.Context, id string) error
	CheckIn(ctx context.Context, id string) (*db_models.Member, CheckInOutcome, error)
}

type MemberService struct {
	memberRepo repositories.MemberRepository
	device     device.Client
	locks      mem.MemberLockStore
}

func NewMemberService(memberRepo repositories.MemberRepository, deviceClient device.Client, locks mem.MemberLockStore) MemberServiceInterface {
	return &MemberService{
		memberRepo: memberRepo,
		device:     deviceClient,
		locks:      locks,
	}
}

var titleCaser = cases.Title(language.English)

// Enroll validates the form, asks the scanner to enroll the fingerprint
// and only then persists the member. Ordering the device call first
// means a device failure never leaves a local record to roll back.
func (s *MemberService) Enroll(ctx context.Context, req request_models.MemberRequest) (*db_models.Member, error) {
	if msg := ValidateMemberInput(req); msg != "" {
		return nil, utils.NewValidationError(msg)
	}

	existing, err := s.memberRepo.FindByPhone(ctx, normalizeCountryCode(req.CountryCode), req.PhoneNumber)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.NewValidationError(MsgPhoneExists)
	}

	now := utils.NowUnixSeconds()
	member := &db_models.Member{
		BaseModel:      db_models.BaseModel{ID: uuid.New()},
		FirstName:      titleCaser.String(req.FirstName),
		LastName:       titleCaser.String(req.LastName),
		Email:          req.Email,
		CountryCode:    normalizeCountryCode(req.CountryCode),
		PhoneNumber:    req.PhoneNumber,
		Gender:         req.Gender,
		MembershipType: db_models.MembershipType(req.MembershipType),
		LastCheckIn:    now,
		RemainingDays:  req.RemainingDays,
		NextPayment:    req.NextPayment,
	}
	if member.NextPayment == 0 {
		member.NextPayment = now
	}

	if err := s.device.EnrollUser(ctx, member.ID.String()); err != nil {
		return nil, err
	}

	if err := s.memberRepo.Insert(ctx, member); err != nil {
		// The scanner already holds the fingerprint; undo it so the two
		// stores cannot drift apart.
		if delErr := s.device.DeleteUser(ctx, member.ID.String(), member.FirstName); delErr != nil {
			log.Printf("Failed to undo device enrollment for %s: %v", member.ID, delErr)
		}
		return nil, utils.ErrDatabaseError
	}

	return member, nil
}

func (s *MemberService) GetAll(ctx context.Context) ([]db_models.Member, error) {
	members, err := s.memberRepo.List(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return members, nil
}

func (s *MemberService) GetByID(ctx context.Context, id string) (*db_models.Member, error) {
	memberID, err := uuid.Parse(id)
	if err != nil {
		return nil, utils.ErrMemberNotFound
	}

	member, err := s.memberRepo.FindByID(ctx, memberID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if member == nil {
		return nil, utils.ErrMemberNotFound
	}
	return member, nil
}

func (s *MemberService) GetByPhone(ctx context.Context, countryCode, phoneNumber string) (*db_models.Member, error) {
	member, err := s.memberRepo.FindByPhone(ctx, normalizeCountryCode(countryCode), phoneNumber)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if member == nil {
		return nil, utils.ErrMemberNotFound
	}
	return member, nil
}

func (s *MemberService) Update(ctx context.Context, id string, req request_models.MemberRequest) (*db_models.Member, error) {
	member, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if msg := ValidateMemberInput(req); msg != "" {
		return nil, utils.NewValidationError(msg)
	}

	countryCode := normalizeCountryCode(req.CountryCode)
	existing, err := s.memberRepo.FindByPhone(ctx, countryCode, req.PhoneNumber)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil && existing.ID != member.ID {
		return nil, utils.NewValidationError(MsgPhoneExists)
	}

	// Explicit field whitelist; unknown keys never reach the database.
	updates := map[string]interface{}{
		"first_name":      titleCaser.String(req.FirstName),
		"last_name":       titleCaser.String(req.LastName),
		"email":           req.Email,
		"country_code":    countryCode,
		"phone_number":    req.PhoneNumber,
		"gender":          req.Gender,
		"membership_type": req.MembershipType,
		"remaining_days":  req.RemainingDays,
		"updated_at":      utils.NowUnixSeconds(),
	}
	if req.NextPayment > 0 {
		updates["next_payment"] = req.NextPayment
	}

	if err := s.memberRepo.UpdateFields(ctx, member.ID, updates); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return s.GetByID(ctx, id)
}

// Delete removes the fingerprint from the scanner first and the local
// record only after the device confirms, keeping both stores in sync.
func (s *MemberService) Delete(ctx context.Context, id string) error {
	member, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.device.DeleteUser(ctx, member.ID.String(), member.FirstName); err != nil {
		return err
	}

	if err := s.memberRepo.Delete(ctx, member); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

// CheckIn decides whether today's check-in consumes a remaining day.
// The per-member lock serializes concurrent attempts for the same
// member so the read-then-write cannot double-decrement.
func (s *MemberService) CheckIn(ctx context.Context, id string) (*db_models.Member, CheckInOutcome, error) {
	memberID, err := uuid.Parse(id)
	if err != nil {
		return nil, "", utils.ErrMemberNotFound
	}

	s.locks.Lock(memberID)
	defer s.locks.Unlock(memberID)

	member, err := s.memberRepo.FindByID(ctx, memberID)
	if err != nil {
		return nil, "", utils.ErrDatabaseError
	}
	if member == nil {
		return nil, "", utils.ErrMemberNotFound
	}

	now := utils.NowUnixSeconds()
	if utils.SameUTCDay(member.LastCheckIn, now) {
		return member, CheckInAlreadyToday, nil
	}
	if member.RemainingDays == 0 {
		return member, CheckInExpired, nil
	}

	consumed, err := s.memberRepo.ApplyCheckIn(ctx, memberID, now)
	if err != nil {
		return nil, "", utils.ErrDatabaseError
	}
	if !consumed {
		return member, CheckInExpired, nil
	}

	member.LastCheckIn = now
	member.RemainingDays--
	return member, CheckInConsumed, nil
}

func normalizeCountryCode(countryCode string) string {
	if countryCode == "" {
		return countryCode
	}
	if countryCode[0] == '+' {
		return countryCode
	}
	return "+" + countryCode
}
