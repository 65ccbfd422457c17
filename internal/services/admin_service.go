package services

import (
	"context"

	"gymgate/internal/config"
	"gymgate/internal/models/db_models"
	"gymgate/internal/models/request_models"
	"gymgate/internal/repositories"
	"gymgate/pkg/utils"
)

type AdminServiceInterface interface {
	Login(ctx context.Context, req request_models.AdminLoginRequest) (string, error)
	Logout(ctx context.Context) error
	AddAdmin(ctx context.Context, req request_models.AddAdminRequest) (*db_models.Admin, error)
}

type AdminService struct {
	adminRepo repositories.AdminRepository
	session   *config.Session
}

func NewAdminService(adminRepo repositories.AdminRepository, session *config.Session) AdminServiceInterface {
	return &AdminService{
		adminRepo: adminRepo,
		session:   session,
	}
}

// Login checks the credential pipeline, verifies the password and
// promotes the persisted session to admin before issuing a token.
func (a *AdminService) Login(ctx context.Context, req request_models.AdminLoginRequest) (string, error) {
	if msg := ValidateAdminInput(AdminOptionLogin, "", "", req.Email, req.Password); msg != "" {
		return "", utils.NewValidationError(msg)
	}

	admin, err := a.adminRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if admin == nil {
		return "", utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(admin.PasswordHash, req.Password); err != nil {
		return "", utils.ErrInvalidCredentials
	}

	if err := a.session.Promote(admin.Email, req.Password); err != nil {
		return "", utils.ErrDatabaseError
	}

	token, err := utils.CreateToken(admin.ID, config.RoleAdmin)
	if err != nil {
		return "", utils.ErrInvalidCredentials
	}

	return token, nil
}

func (a *AdminService) Logout(ctx context.Context) error {
	if err := a.session.Reset(); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (a *AdminService) AddAdmin(ctx context.Context, req request_models.AddAdminRequest) (*db_models.Admin, error) {
	if msg := ValidateAdminInput(AdminOptionAdd, req.FirstName, req.LastName, req.Email, req.Password); msg != "" {
		return nil, utils.NewValidationError(msg)
	}

	existing, err := a.adminRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	admin := &db_models.Admin{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: hashed,
	}

	if err := a.adminRepo.Insert(ctx, admin); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return admin, nil
}
