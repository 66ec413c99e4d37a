package services

import (
	"errors"
	"strings"

	"coursecraft/dto"
	"coursecraft/models"

	"gorm.io/gorm"
)

// AuthResult is what register/login/refresh hand back to the request layer
type AuthResult struct {
	Token string
	User  models.User
}

// UserService implements account registration, authentication and profile
// management on top of the users table.
type UserService struct {
	db   *gorm.DB
	cred *CredentialService
}

func NewUserService(db *gorm.DB, cred *CredentialService) *UserService {
	return &UserService{db: db, cred: cred}
}

// Register creates an account, enforcing username/email uniqueness with a
// single OR lookup. An email collision is reported before a username one.
func (s *UserService) Register(req *dto.RegisterRequest) (*AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	var existing models.User
	err := s.db.Where("email = ? OR username = ?", email, req.Username).First(&existing).Error
	if err == nil {
		if existing.Email == email {
			return nil, duplicate("Email is already registered")
		}
		return nil, duplicate("Username is already taken")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashedPassword, err := s.cred.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Username: req.Username,
		Email:    email,
		Password: hashedPassword,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}

	token, err := s.cred.IssueToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &AuthResult{Token: token, User: user}, nil
}

// Login authenticates by email and password. Unknown email and wrong
// password produce the same failure so accounts cannot be enumerated.
func (s *UserService) Login(req *dto.LoginRequest) (*AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, credentials("Invalid email or password")
		}
		return nil, err
	}

	if !s.cred.VerifyPassword(req.Password, user.Password) {
		return nil, credentials("Invalid email or password")
	}

	token, err := s.cred.IssueToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &AuthResult{Token: token, User: user}, nil
}

// GetProfile returns the account record for a user id
func (s *UserService) GetProfile(userID uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("User not found")
		}
		return nil, err
	}
	return &user, nil
}

// UpdateProfile applies a partial patch. The request type cannot carry a
// password, so this path can never overwrite the stored hash.
func (s *UserService) UpdateProfile(userID uint, req *dto.UpdateProfileRequest) (*models.User, error) {
	user, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}

	if req.Username != nil {
		user.Username = *req.Username
	}
	if req.Email != nil {
		user.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}

	if err := s.db.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// ChangePassword verifies the current password before storing a new hash
func (s *UserService) ChangePassword(userID uint, req *dto.ChangePasswordRequest) error {
	user, err := s.GetProfile(userID)
	if err != nil {
		return err
	}

	if !s.cred.VerifyPassword(req.CurrentPassword, user.Password) {
		return credentials("Current password is incorrect")
	}

	hashedPassword, err := s.cred.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}

	user.Password = hashedPassword
	return s.db.Save(user).Error
}

// DeleteAccount removes the account record for good. The delete bypasses
// soft deletion: a kept row would still occupy the unique username/email
// indexes and block re-registration. Courses authored by the user are left
// untouched: ownership is not modeled, any user can edit any course.
func (s *UserService) DeleteAccount(userID uint) error {
	result := s.db.Unscoped().Delete(&models.User{}, userID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return notFound("User not found")
	}
	return nil
}

// RefreshToken issues a fresh token for an existing account
func (s *UserService) RefreshToken(userID uint) (*AuthResult, error) {
	user, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}

	token, err := s.cred.IssueToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &AuthResult{Token: token, User: *user}, nil
}
