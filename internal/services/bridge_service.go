package services

import (
	"context"
	"fmt"

	"gymgate/internal/device"
	"gymgate/internal/models/db_models"
)

// Bridge operations accepted on /api/user.
const (
	OperationEnroll  = "enroll"
	OperationCheckIn = "checkin"
	OperationDelete  = "delete"
)

// BridgeServiceInterface is the device-facing half of the check-in
// flow: enroll and delete are forwarded to the scanner, checkin runs
// the local membership transition.
type BridgeServiceInterface interface {
	Enroll(ctx context.Context, userID string) error
	CheckIn(ctx context.Context, userID string) (*db_models.Member, CheckInOutcome, error)
	Delete(ctx context.Context, userID, firstName string) error
}

type BridgeService struct {
	device        device.Client
	memberService MemberServiceInterface
}

func NewBridgeService(deviceClient device.Client, memberService MemberServiceInterface) BridgeServiceInterface {
	return &BridgeService{
		device:        deviceClient,
		memberService: memberService,
	}
}

func (b *BridgeService) Enroll(ctx context.Context, userID string) error {
	if err := b.device.EnrollUser(ctx, userID); err != nil {
		return fmt.Errorf("enroll user %s: %w", userID, err)
	}
	return nil
}

func (b *BridgeService) CheckIn(ctx context.Context, userID string) (*db_models.Member, CheckInOutcome, error) {
	return b.memberService.CheckIn(ctx, userID)
}

func (b *BridgeService) Delete(ctx context.Context, userID, firstName string) error {
	if err := b.device.DeleteUser(ctx, userID, firstName); err != nil {
		return fmt.Errorf("delete user %s: %w", userID, err)
	}
	return nil
}
