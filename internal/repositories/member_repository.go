package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gymgate/internal/models/db_models"
)

type MemberRepository interface {
	Insert(ctx context.Context, member *db_models.Member) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Member, error)
	FindByPhone(ctx context.Context, countryCode, phoneNumber string) (*db_models.Member, error)
	List(ctx context.Context) ([]db_models.Member, error)
	Count(ctx context.Context) (int64, error)
	UpdateFields(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, member *db_models.Member) error

	// ApplyCheckIn consumes one remaining day inside a transaction.
	// The conditional WHERE keeps remaining_days from ever going below
	// zero even if callers race; it reports whether a day was consumed.
	ApplyCheckIn(ctx context.Context, id uuid.UUID, now int64) (bool, error)
}

type memberRepository struct {
	db *gorm.DB
}

func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &memberRepository{
		db: db,
	}
}

func (m *memberRepository) Insert(ctx context.Context, member *db_models.Member) error {
	return m.db.WithContext(ctx).Create(member).Error
}

func (m *memberRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Member, error) {
	var member db_models.Member
	err := m.db.WithContext(ctx).First(&member, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &member, nil
}

func (m *memberRepository) FindByPhone(ctx context.Context, countryCode, phoneNumber string) (*db_models.Member, error) {
	var member db_models.Member
	err := m.db.WithContext(ctx).
		Where("country_code = ? AND phone_number = ?", countryCode, phoneNumber).
		First(&member).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &member, nil
}

func (m *memberRepository) List(ctx context.Context) ([]db_models.Member, error) {
	var members []db_models.Member
	err := m.db.WithContext(ctx).Order("created_at").Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

func (m *memberRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := m.db.WithContext(ctx).Model(&db_models.Member{}).Count(&count).Error
	return count, err
}

func (m *memberRepository) UpdateFields(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	return m.db.WithContext(ctx).
		Model(&db_models.Member{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (m *memberRepository) Delete(ctx context.Context, member *db_models.Member) error {
	return m.db.WithContext(ctx).Delete(member).Error
}

func (m *memberRepository) ApplyCheckIn(ctx context.Context, id uuid.UUID, now int64) (bool, error) {
	consumed := false
	err := m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&db_models.Member{}).
			Where("id = ? AND remaining_days > 0", id).
			Updates(map[string]interface{}{
				"last_check_in":  now,
				"remaining_days": gorm.Expr("remaining_days - 1"),
			})
		if res.Error != nil {
			return res.Error
		}
		consumed = res.RowsAffected > 0
		return nil
	})
	return consumed, err
}
