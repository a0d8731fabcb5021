package tcp

import (
	"context"
	"errors"
	"net"

	"github.com/dmitrijs2005/labkeeper/internal/common"
	"github.com/dmitrijs2005/labkeeper/internal/server/accounts"
	"github.com/dmitrijs2005/labkeeper/internal/server/proto"
)

// handleConn owns one connection end-to-end: it reads one request frame
// at a time, dispatches it and writes exactly one response before the
// next read. The loop ends on client disconnect, and any error raised
// during dispatch closes the connection without recovery.
func (s *Server) handleConn(ctx context.Context, conn net.Conn) {
	defer conn.Close()

	peer := peerHost(conn.RemoteAddr())
	log := s.logger.With("client", conn.RemoteAddr().String())
	log.Info(ctx, "connection established")

	buf := make([]byte, maxFrameSize)

	for {
		n, err := conn.Read(buf)
		if err != nil || n == 0 {
			log.Info(ctx, "connection closed")
			return
		}

		response, err := s.dispatch(ctx, string(buf[:n]), peer)
		if err != nil {
			log.Error(ctx, "error handling command", "error", err.Error())
			return
		}

		if _, err := conn.Write([]byte(response)); err != nil {
			log.Warn(ctx, "write error", "error", err.Error())
			return
		}
	}
}

// dispatch decodes one frame and runs the matching flow. Protocol errors
// detected before dispatch produce the invalid-input response and keep
// the connection open; flow errors propagate and terminate it.
func (s *Server) dispatch(ctx context.Context, frame, peer string) (string, error) {

	switch req := proto.Decode(frame).(type) {

	case proto.Register:
		account, password, err := s.service.Register(ctx, req.StudentName, req.StudentID)
		if err != nil {
			if errors.Is(err, common.ErrorDuplicateLogin) {
				return proto.DuplicateCredentials(accounts.LoginName(req.StudentName, req.StudentID)), nil
			}
			return "", err
		}
		return proto.RegistrationSuccess(account.LoginName, password), nil

	case proto.Authenticate:
		result, err := s.service.Authenticate(ctx, req.LoginName, req.Password, peer)
		if err != nil {
			return "", err
		}
		return s.formatAuthResult(result), nil

	default:
		return proto.MsgInvalid, nil
	}
}

func (s *Server) formatAuthResult(result accounts.AuthResult) string {
	switch result.Status {
	case accounts.AuthOK:
		return proto.AuthSuccess(string(result.Role))
	case accounts.AuthUserNotFound:
		return proto.MsgUserNotFound
	case accounts.AuthWrongPassword:
		return proto.MsgWrongPassword
	case accounts.AuthThresholdReached:
		return proto.FailedTimes(s.maxFailedAttempts)
	case accounts.AuthBlocked:
		return proto.MsgBlocked
	default:
		return proto.MsgInvalid
	}
}
