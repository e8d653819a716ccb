package model

import "time"

type User struct {
	ID            int64      `json:"id"`
	Email         string     `json:"email"`
	PasswordHash  string     `json:"-"`
	FirstName     string     `json:"first_name"`
	LastName      string     `json:"last_name"`
	Phone         *string    `json:"phone,omitempty"`
	Country       *string    `json:"country,omitempty"`
	ZipCode       *string    `json:"zip_code,omitempty"`
	Timezone      *string    `json:"timezone,omitempty"`
	AvatarURL     *string    `json:"avatar_url,omitempty"`
	WorkOSID      *string    `json:"-"`
	IsActive      bool       `json:"is_active"`
	IsStaff       bool       `json:"is_staff"`
	IsSuperuser   bool       `json:"is_superuser"`
	VerifiedEmail bool       `json:"verified_email"`
	LastLogin     *time.Time `json:"last_login,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func (u *User) FullName() string {
	switch {
	case u.FirstName != "" && u.LastName != "":
		return u.FirstName + " " + u.LastName
	case u.FirstName != "":
		return u.FirstName
	case u.LastName != "":
		return u.LastName
	}
	return u.Email
}

// HasUsablePassword is false for accounts created through federated sign-in
// without a password.
func (u *User) HasUsablePassword() bool {
	return u.PasswordHash != ""
}
