package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common user validation errors.
var (
	ErrEmptyUserID         = errors.New("user ID cannot be empty")
	ErrEmptyEmail          = errors.New("email cannot be empty")
	ErrInvalidEmail        = errors.New("invalid email format")
	ErrEmptyPassword       = errors.New("password cannot be empty")
	ErrEmptyHashedPassword = errors.New("hashed password cannot be empty")
	ErrFieldLength         = errors.New("field must be between 2 and 30 characters")
)

// Default profile values applied when signup omits the optional fields.
// They mirror the stock Mesto profile.
const (
	DefaultName   = "Jacques-Yves Cousteau"
	DefaultAbout  = "Explorer"
	DefaultAvatar = "https://pictures.s3.yandex.net/resources/jacques-cousteau_1604399756.png"
)

// User represents a registered user of the Mesto application.
type User struct {
	ID             uuid.UUID `json:"id"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"` // Never expose the password hash in JSON
	Name           string    `json:"name"`
	About          string    `json:"about"`
	Avatar         string    `json:"avatar"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewUser creates a new User with the given email and bcrypt-hashed
// password. Optional profile fields fall back to the stock defaults.
// Returns an error if validation fails.
func NewUser(email, hashedPassword, name, about, avatar string) (*User, error) {
	if name == "" {
		name = DefaultName
	}
	if about == "" {
		about = DefaultAbout
	}
	if avatar == "" {
		avatar = DefaultAvatar
	}

	now := time.Now().UTC()
	user := &User{
		ID:             uuid.New(),
		Email:          email,
		HashedPassword: hashedPassword,
		Name:           name,
		About:          about,
		Avatar:         avatar,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return ErrEmptyUserID
	}

	if u.Email == "" {
		return ErrEmptyEmail
	}
	if !validEmailFormat(u.Email) {
		return ErrInvalidEmail
	}

	if u.HashedPassword == "" {
		return ErrEmptyHashedPassword
	}

	if !validFieldLength(u.Name) || !validFieldLength(u.About) {
		return ErrFieldLength
	}

	return nil
}

// validEmailFormat performs a basic structural check of an email address.
// Request payloads are additionally validated with the validator package;
// this is a last line of defense for users constructed in code.
func validEmailFormat(email string) bool {
	atIndex := -1
	for i, char := range email {
		if char == '@' {
			atIndex = i
			break
		}
	}
	if atIndex <= 0 || atIndex == len(email)-1 {
		return false
	}

	domainPart := email[atIndex+1:]
	dotIndex := -1
	for i, char := range domainPart {
		if char == '.' {
			dotIndex = i
			break
		}
	}
	return dotIndex > 0 && dotIndex < len(domainPart)-1
}

// validFieldLength checks the 2..30 rune bound shared by the name and
// about fields.
func validFieldLength(s string) bool {
	n := len([]rune(s))
	return n >= 2 && n <= 30
}
