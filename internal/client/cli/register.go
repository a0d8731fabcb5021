package cli

import (
	"context"
	"fmt"
	"os"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for the student's name and ID, submits the
// registration command and prints the server response. On success the
// response carries the generated one-time password: it is shown to the
// user exactly once and cannot be recovered later.
func (a *App) Register(ctx context.Context) error {
	studentName, err := getSimpleText(a.reader, "Enter student name", os.Stdout)
	if err != nil {
		return err
	}

	studentID, err := getSimpleText(a.reader, "Enter student ID", os.Stdout)
	if err != nil {
		return err
	}

	response, err := a.sendCommand(fmt.Sprintf("register,%s,%s", studentName, studentID))
	if err != nil {
		return err
	}

	printlnFn(response)
	return nil
}
