package accounts

import "time"

// Role classifies an account. It only controls which welcome text a
// client renders after authentication.
type Role string

const (
	RoleStudent    Role = "student"
	RoleInstructor Role = "instructor"
)

// LoginName derives the unique account identifier from the submitted
// identity fields.
func LoginName(studentName, studentID string) string {
	return studentName + "@" + studentID
}

// Account is a persistent credential record. The login name is derived
// as "student_name@student_id" at registration time and is unique across
// all accounts. The password hash is opaque; the clear password exists
// only in the single registration response that created it.
type Account struct {
	ID           string
	StudentName  string
	StudentID    string
	LoginName    string
	PasswordHash []byte
	Role         Role
	CreatedAt    time.Time
}
