package validator

import (
	"net/mail"
	"regexp"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/JoseAcuna0/insightflow-users-service/internal/interface/api/rest/dto/auth"
	"github.com/JoseAcuna0/insightflow-users-service/internal/interface/api/rest/dto/user"
)

const (
	minPasswordLen = 4
	maxPasswordLen = 72
)

var (
	usernameRe = regexp.MustCompile(`^[A-Za-z0-9_.]{3,32}$`)
	phoneRe    = regexp.MustCompile(`^\+?\d{7,15}$`)
)

func IsUUID(s string) (bool, uuid.UUID) {
	id, err := uuid.Parse(s)
	return err == nil, id
}

func ValidateCreate(r user.CreateRequest) map[string]string {
	errs := make(map[string]string)

	// Normalize
	email := strings.TrimSpace(r.Email)
	fullName := strings.TrimSpace(r.FullName)
	username := strings.TrimSpace(r.Username)
	bdate := strings.TrimSpace(r.DateOfBirth)
	phone := strings.TrimSpace(r.Phone)

	// email (required + format)
	if email == "" {
		errs["email"] = "email is required"
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs["email"] = "invalid email format"
	}

	validateFullName(errs, fullName)
	validateUsername(errs, username)

	// password (required + length; stored as-is, so only length is checked)
	if r.Password == "" {
		errs["password"] = "password is required"
	} else if l := utf8.RuneCountInString(r.Password); l < minPasswordLen || l > maxPasswordLen {
		errs["password"] = "password length must be 4–72 characters"
	}

	// date_of_birth (required + format + not in the future)
	if bdate == "" {
		errs["date_of_birth"] = "date_of_birth is required"
	} else if dob, err := time.Parse("2006-01-02", bdate); err != nil {
		errs["date_of_birth"] = "must be YYYY-MM-DD"
	} else if dob.After(time.Now().UTC()) {
		errs["date_of_birth"] = "must not be in the future"
	}

	// phone (optional, digits only)
	if phone != "" && !phoneRe.MatchString(phone) {
		errs["phone"] = "must be 7–15 digits, optionally prefixed with '+'"
	}

	if len(errs) == 0 {
		return nil
	}

	return errs
}

func ValidateUpdate(r user.UpdateRequest) map[string]string {
	errs := make(map[string]string)

	validateFullName(errs, strings.TrimSpace(r.FullName))
	validateUsername(errs, strings.TrimSpace(r.Username))

	if len(errs) == 0 {
		return nil
	}

	return errs
}

// ValidateLogin only checks presence; every other login failure must stay a
// single generic credentials error.
func ValidateLogin(r auth.LoginRequest) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(r.Identifier) == "" {
		errs["identifier"] = "identifier is required"
	}
	if r.Password == "" {
		errs["password"] = "password is required"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func validateFullName(errs map[string]string, fullName string) {
	if fullName == "" {
		errs["full_name"] = "full_name is required"
	} else if l := utf8.RuneCountInString(fullName); l < 2 || l > 64 {
		errs["full_name"] = "full_name length must be 2–64 characters"
	} else if !isHumanName(fullName) {
		errs["full_name"] = "allowed characters: letters, space, '-', '''"
	}
}

func validateUsername(errs map[string]string, username string) {
	if username == "" {
		errs["username"] = "username is required"
	} else if !usernameRe.MatchString(username) {
		errs["username"] = "must be 3–32 characters: letters, digits, '_', '.'"
	}
}

func isHumanName(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || r == ' ' || r == '-' || r == '\'' {
			continue
		}
		return false
	}
	return true
}
