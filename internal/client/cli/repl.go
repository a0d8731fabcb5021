package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Register(ctx context.Context) error
	Login(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the lab-access client.
//
// It reads a line from the provided reader, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on reader EOF or when the user types
// "exit" or "quit".
//
// Commands:
//
//   - help           — show available commands
//   - register       — register a student and receive a one-time password
//   - login          — authenticate with a login name and password
//   - exit | quit    — leave the program
func runREPL(ctx context.Context, a execIface, reader *bufio.Reader) {
	for {
		printlnFn("lab> ")
		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			if err == io.EOF {
				return
			}
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			printlnFn("Available commands: register, login, exit")

		case "register":
			if cmdErr := a.Register(ctx); cmdErr != nil {
				printlnFn("Error:", cmdErr)
			}

		case "login":
			if cmdErr := a.Login(ctx); cmdErr != nil {
				printlnFn("Error:", cmdErr)
			}

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err == io.EOF {
			return
		}
	}
}
