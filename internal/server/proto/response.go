package proto

import "fmt"

// Fixed response frames. These strings are the wire contract with the
// desktop clients, which match on them verbatim.
const (
	MsgInvalid       = "Invalid command or arguments."
	MsgUserNotFound  = "Authentication failed. User not found."
	MsgWrongPassword = "Authentication failed. Wrong password."
	MsgBlocked       = "You have been blocked due to too many failed attempts. Please try again later."
)

// RegistrationSuccess formats the one response that ever carries the
// generated password in clear.
func RegistrationSuccess(loginName, password string) string {
	return fmt.Sprintf("Registration successful. Login Name: %s, Password: %s", loginName, password)
}

// DuplicateCredentials reports a rejected duplicate registration.
func DuplicateCredentials(loginName string) string {
	return fmt.Sprintf("Credentials for %s already exist.", loginName)
}

// AuthSuccess formats the role-qualified success frame. Clients reword
// it into a role-specific welcome message.
func AuthSuccess(role string) string {
	return fmt.Sprintf("Authentication successful. Role: %s", role)
}

// FailedTimes reports that this attempt tripped the lockout threshold.
func FailedTimes(n int) string {
	return fmt.Sprintf("You have failed %d times. Please try again later.", n)
}
