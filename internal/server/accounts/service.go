package accounts

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/labkeeper/internal/common"
	"github.com/dmitrijs2005/labkeeper/internal/filex"
	"github.com/dmitrijs2005/labkeeper/internal/logging"
	"github.com/dmitrijs2005/labkeeper/internal/server/config"
	"github.com/dmitrijs2005/labkeeper/internal/server/lockout"
)

// passwordCharset is the alphabet for generated one-time passwords.
const passwordCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// ensureSubDir is a test seam for student-directory provisioning.
var ensureSubDir = filex.EnsureSubDir

// AuthStatus is the outcome of one authentication attempt.
type AuthStatus int

const (
	// AuthOK: credentials verified, counter reset.
	AuthOK AuthStatus = iota
	// AuthUserNotFound: no account with that login name.
	AuthUserNotFound
	// AuthWrongPassword: account exists, secret does not verify.
	AuthWrongPassword
	// AuthThresholdReached: this failure was the one that tripped the
	// lockout; the window starts now.
	AuthThresholdReached
	// AuthBlocked: the address is locked out; the store was not consulted.
	AuthBlocked
)

// AuthResult carries the attempt outcome. Role is set only for AuthOK.
type AuthResult struct {
	Status AuthStatus
	Role   Role
}

// Service implements the registration and authentication flows on top of
// a credential store and a lockout tracker.
type Service struct {
	repo           Repository
	tracker        *lockout.Tracker
	logger         logging.Logger
	studentDirRoot string
	passwordLength int
}

func NewService(repo Repository, tracker *lockout.Tracker, cfg *config.Config, logger logging.Logger) *Service {
	return &Service{
		repo:           repo,
		tracker:        tracker,
		logger:         logger.With("module", "accounts"),
		studentDirRoot: cfg.StudentDirRoot,
		passwordLength: cfg.PasswordLength,
	}
}

// generatePassword draws length characters from passwordCharset using a
// cryptographically secure source.
func generatePassword(length int) (string, error) {
	max := big.NewInt(int64(len(passwordCharset)))

	b := make([]byte, length)
	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("rand error: %w", err)
		}
		b[i] = passwordCharset[n.Int64()]
	}

	return string(b), nil
}

// Register creates an account for the submitted identity fields and
// returns it together with the generated one-time password. The clear
// password is returned exactly once and is never retrievable again.
//
// If the derived login name already exists, common.ErrorDuplicateLogin is
// returned and no directory is provisioned. Any other error means the
// account state is unknown to the caller and should abort the connection.
func (s *Service) Register(ctx context.Context, studentName, studentID string) (*Account, string, error) {

	loginName := LoginName(studentName, studentID)

	password, err := generatePassword(s.passwordLength)
	if err != nil {
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash error: %w", err)
	}

	account := &Account{
		ID:           uuid.NewString(),
		StudentName:  studentName,
		StudentID:    studentID,
		LoginName:    loginName,
		PasswordHash: hash,
		Role:         RoleStudent,
	}

	if err := s.repo.Create(ctx, account); err != nil {
		if errors.Is(err, common.ErrorDuplicateLogin) {
			return nil, "", common.ErrorDuplicateLogin
		}
		return nil, "", fmt.Errorf("error creating account: %w", err)
	}

	if _, err := ensureSubDir(s.studentDirRoot, loginName); err != nil {
		return nil, "", fmt.Errorf("error provisioning student directory: %w", err)
	}

	s.logger.Info(ctx, "account registered", "login_name", loginName)

	return account, password, nil
}

// Authenticate verifies the submitted credentials against the store,
// gated by the lockout tracker for clientAddr.
//
// While the address is blocked the store is not consulted at all. Both
// unknown-login and wrong-password failures increment the counter
// identically but are reported with distinguishable statuses.
func (s *Service) Authenticate(ctx context.Context, loginName, password, clientAddr string) (AuthResult, error) {

	if s.tracker.Blocked(clientAddr) {
		s.logger.Warn(ctx, "authentication refused, address blocked", "addr", clientAddr)
		return AuthResult{Status: AuthBlocked}, nil
	}

	account, err := s.repo.GetByLogin(ctx, loginName)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return s.recordFailure(ctx, clientAddr, AuthUserNotFound), nil
		}
		return AuthResult{}, fmt.Errorf("error looking up account: %w", err)
	}

	if bcrypt.CompareHashAndPassword(account.PasswordHash, []byte(password)) != nil {
		return s.recordFailure(ctx, clientAddr, AuthWrongPassword), nil
	}

	s.tracker.Reset(clientAddr)
	s.logger.Info(ctx, "authentication successful", "login_name", loginName, "role", account.Role)

	return AuthResult{Status: AuthOK, Role: account.Role}, nil
}

func (s *Service) recordFailure(ctx context.Context, clientAddr string, status AuthStatus) AuthResult {
	n := s.tracker.RecordFailure(clientAddr)
	s.logger.Warn(ctx, "authentication failed", "addr", clientAddr, "failures", n)

	if n == s.tracker.Threshold() {
		return AuthResult{Status: AuthThresholdReached}
	}
	return AuthResult{Status: status}
}

// SeedInstructors provisions the fixed instructor accounts listed in the
// configuration. Entries whose login name already exists are skipped, so
// the seeding step is safe to run on every startup.
func (s *Service) SeedInstructors(ctx context.Context, seeds []config.InstructorSeed) error {

	for _, seed := range seeds {
		hash, err := bcrypt.GenerateFromPassword([]byte(seed.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash error: %w", err)
		}

		account := &Account{
			ID:           uuid.NewString(),
			StudentName:  seed.Name,
			StudentID:    seed.StudentID,
			LoginName:    seed.LoginName,
			PasswordHash: hash,
			Role:         RoleInstructor,
		}

		if err := s.repo.Create(ctx, account); err != nil {
			if errors.Is(err, common.ErrorDuplicateLogin) {
				s.logger.Info(ctx, "instructor account already exists", "login_name", seed.LoginName)
				continue
			}
			return fmt.Errorf("error seeding instructor %s: %w", seed.LoginName, err)
		}

		s.logger.Info(ctx, "created instructor account", "login_name", seed.LoginName)
	}

	return nil
}
