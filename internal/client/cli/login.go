package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/dmitrijs2005/labkeeper/internal/common"
)

const (
	authSuccessPrefix = "Authentication successful. Role: "

	welcomeInstructor = "Welcome, instructor!"
	welcomeStudent    = "Welcome! You are logged in as a student."
)

// Login prompts for a login name and password, submits the
// authentication command and prints the outcome. The password is wiped
// from memory as soon as the command has been sent.
func (a *App) Login(ctx context.Context) error {
	loginName, err := getSimpleText(a.reader, "Enter login name", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	defer common.WipeByteArray(password)

	response, err := a.sendCommand(fmt.Sprintf("authenticate,%s,%s", loginName, string(password)))
	if err != nil {
		return err
	}

	printlnFn(rewordWelcome(response))
	return nil
}

// rewordWelcome replaces a successful authentication frame with a
// role-specific greeting. Any other frame is passed through unchanged.
func rewordWelcome(response string) string {
	role, ok := strings.CutPrefix(response, authSuccessPrefix)
	if !ok {
		return response
	}
	if role == "instructor" {
		return welcomeInstructor
	}
	return welcomeStudent
}
