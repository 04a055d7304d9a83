package services

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
)

const (
	minHandleLen   = 3
	minPasswordLen = 6
)

// emailRegex accepts the basic local@domain.tld shape.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// directoryService owns user and admin records. User and admin handles are
// separate namespaces, so the same handle may exist in both.
type directoryService struct {
	db *gorm.DB
}

// NewDirectoryService creates a new DirectoryServicer.
func NewDirectoryService(db *gorm.DB) DirectoryServicer {
	return &directoryService{db: db}
}

// RegisterUser validates and inserts a new user. Validation is fail-fast:
// the first failing check is returned and nothing is written.
func (s *directoryService) RegisterUser(fullName, email, handle, password, confirmPassword string) (*models.User, error) {
	fullName = strings.TrimSpace(fullName)
	email = strings.TrimSpace(email)
	handle = strings.TrimSpace(handle)
	password = strings.TrimSpace(password)
	confirmPassword = strings.TrimSpace(confirmPassword)

	if fullName == "" || email == "" || handle == "" || password == "" || confirmPassword == "" {
		return nil, apperrors.ErrMissingField
	}
	if len(handle) < minHandleLen {
		return nil, apperrors.ErrHandleTooShort
	}
	if len(password) < minPasswordLen {
		return nil, apperrors.ErrPasswordTooShort
	}
	if password != confirmPassword {
		return nil, apperrors.ErrPasswordMismatch
	}

	var count int64
	if err := s.db.Model(&models.User{}).Where("handle = ?", handle).Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil, apperrors.ErrDuplicateHandle
	}

	// Emails are matched case-sensitively, exactly as stored.
	if err := s.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil, apperrors.ErrDuplicateEmail
	}

	if !emailRegex.MatchString(email) {
		return nil, apperrors.ErrInvalidEmail
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	user := &models.User{
		Handle:       handle,
		PasswordHash: string(hash),
		FullName:     fullName,
		Email:        email,
		JoinDate:     today(),
	}
	if err := s.db.Create(user).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return user, nil
}

// LoginUser authenticates against the user directory. It never creates
// accounts.
func (s *directoryService) LoginUser(handle, password string) (*models.User, error) {
	handle = strings.TrimSpace(handle)
	password = strings.TrimSpace(password)
	if handle == "" || password == "" {
		return nil, apperrors.ErrMissingField
	}

	user, err := s.FindUserByHandle(handle)
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	return user, nil
}

// LoginAdmin authenticates against the admin directory. An unseen handle
// creates the admin on the spot (create-on-first-use); a known handle must
// present the password it was created with.
func (s *directoryService) LoginAdmin(handle, password string) (*models.Admin, error) {
	handle = strings.TrimSpace(handle)
	password = strings.TrimSpace(password)
	if handle == "" || password == "" {
		return nil, apperrors.ErrMissingField
	}

	admin, err := s.FindAdminByHandle(handle)
	switch {
	case err == nil:
		if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) != nil {
			return nil, apperrors.ErrInvalidCredentials
		}
		return admin, nil
	case errors.Is(err, apperrors.ErrAdminNotFound):
		hash, hashErr := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if hashErr != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, hashErr)
		}
		admin = &models.Admin{
			Handle:       handle,
			PasswordHash: string(hash),
			DisplayName:  capitalize(handle) + " (Admin)",
		}
		if createErr := s.db.Create(admin).Error; createErr != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, createErr)
		}
		return admin, nil
	default:
		return nil, err
	}
}

// FindUserByHandle retrieves a user by handle.
func (s *directoryService) FindUserByHandle(handle string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("handle = ?", handle).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &user, nil
}

// FindAdminByHandle retrieves an admin by handle.
func (s *directoryService) FindAdminByHandle(handle string) (*models.Admin, error) {
	var admin models.Admin
	if err := s.db.Where("handle = ?", handle).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAdminNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &admin, nil
}

// ListUsers returns all users ordered by handle.
func (s *directoryService) ListUsers() ([]models.User, error) {
	var users []models.User
	if err := s.db.Order("handle ASC").Find(&users).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return users, nil
}

// CountUsers returns the number of registered users.
func (s *directoryService) CountUsers() (int64, error) {
	var count int64
	if err := s.db.Model(&models.User{}).Count(&count).Error; err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return count, nil
}

// today returns the current calendar date at midnight UTC.
func today() time.Time {
	y, m, d := time.Now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// capitalize upper-cases the first rune of s.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	return strings.ToUpper(string(r[0])) + string(r[1:])
}
