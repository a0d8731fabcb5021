// Package proto decodes the line protocol spoken by lab clients and
// formats the server's response frames.
//
// A request is a single text frame of comma-separated fields:
//
//	command,arg1,arg2
//
// There is no escaping: values must not contain commas. Decoding happens
// once at the connection boundary; the rest of the server works with the
// typed requests defined here.
package proto

import "strings"

// Request is one decoded client command.
type Request interface {
	request()
}

// Register asks for a new student account.
type Register struct {
	StudentName string
	StudentID   string
}

// Authenticate presents credentials for an existing account.
type Authenticate struct {
	LoginName string
	Password  string
}

// Invalid covers unknown commands and wrong argument counts. It is
// answered with MsgInvalid without consulting any store.
type Invalid struct{}

func (Register) request()     {}
func (Authenticate) request() {}
func (Invalid) request()      {}

// Decode parses one request frame into a typed Request.
func Decode(frame string) Request {
	fields := strings.Split(strings.TrimSpace(frame), ",")

	switch fields[0] {
	case "register":
		if len(fields) != 3 {
			return Invalid{}
		}
		return Register{StudentName: fields[1], StudentID: fields[2]}
	case "authenticate":
		if len(fields) != 3 {
			return Invalid{}
		}
		return Authenticate{LoginName: fields[1], Password: fields[2]}
	default:
		return Invalid{}
	}
}
