// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package publish

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"math/big"
	"strings"
	"time"

	uuid "github.com/gofrs/uuid"

	creatorErrors "github.com/ankitsaini000/rwew-sub002/creators/errors"
	"github.com/ankitsaini000/rwew-sub002/creators/models"
	"github.com/ankitsaini000/rwew-sub002/creators/services"
	"github.com/ankitsaini000/rwew-sub002/creators/validation"
	"github.com/ankitsaini000/rwew-sub002/internal/cache"
	"github.com/ankitsaini000/rwew-sub002/internal/pkg/log"
	"github.com/ankitsaini000/rwew-sub002/internal/platform/email"
	"github.com/ankitsaini000/rwew-sub002/internal/platform/sms"
)

// Verification states. A session walks forward only; restarting the flow
// replaces the session.
const (
	StatePhoneEntry = "phone_entry"
	StatePhoneCode  = "phone_code"
	StateEmailCode  = "email_code"
	StateVerified   = "verified"
)

const (
	codeLength     = 6
	sessionKeyFmt  = "publish:session:%s"
	defaultCodeTTL = 10 * time.Minute
	sessionTTL     = time.Hour
)

// Session is the server-side verification record. Codes never leave the
// service; clients only see the View.
type Session struct {
	UserID        uuid.UUID `json:"userId"`
	State         string    `json:"state"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	PhoneCode     string    `json:"phoneCode"`
	EmailCode     string    `json:"emailCode"`
	CodeExpiresAt int64     `json:"codeExpiresAt"`
	CreatedAt     int64     `json:"createdAt"`
	UpdatedAt     int64     `json:"updatedAt"`
}

// View is the client-visible projection of a session.
type View struct {
	State         string `json:"state"`
	Email         string `json:"email,omitempty"`
	Phone         string `json:"phone,omitempty"`
	CodeExpiresAt int64  `json:"codeExpiresAt,omitempty"`
}

func (s *Session) view() *View {
	return &View{
		State:         s.State,
		Email:         s.Email,
		Phone:         maskPhone(s.Phone),
		CodeExpiresAt: s.CodeExpiresAt,
	}
}

// Config bounds the verification flow
type Config struct {
	CodeTTL time.Duration
	// Bypass skips phone and email verification entirely. Dev only.
	Bypass bool
	// OrgName labels outbound messages
	OrgName string
	// FromEmail is the sender address on verification emails
	FromEmail string
}

// Service drives the publish verification state machine. Sessions live in the
// cache under a TTL; losing one simply restarts the flow.
type Service struct {
	backend  cache.Cache
	creators services.CreatorService
	sms      sms.Sender
	email    email.Sender
	limiter  *RateLimiter
	config   Config
}

// NewService constructs a publish verification service
func NewService(backend cache.Cache, creators services.CreatorService, smsSender sms.Sender, emailSender email.Sender, limiter *RateLimiter, cfg Config) *Service {
	if cfg.CodeTTL <= 0 {
		cfg.CodeTTL = defaultCodeTTL
	}
	if limiter == nil {
		limiter = DefaultRateLimiter()
	}
	return &Service{
		backend:  backend,
		creators: creators,
		sms:      smsSender,
		email:    emailSender,
		limiter:  limiter,
		config:   cfg,
	}
}

// Start opens a verification session. The profile must already satisfy the
// required-section gate; incomplete profiles are rejected before any code is
// sent.
func (s *Service) Start(ctx context.Context, userID uuid.UUID, emailAddr string) (*View, error) {
	emailAddr = strings.TrimSpace(strings.ToLower(emailAddr))
	if emailAddr == "" || !strings.Contains(emailAddr, "@") {
		return nil, fmt.Errorf("%w: a valid email address is required", creatorErrors.ErrValidationFailed)
	}

	status, err := s.creators.GetCompletionStatus(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !status.ReadyToPublish {
		return nil, creatorErrors.ErrNotPublishable
	}

	now := time.Now().Unix()
	session := &Session{
		UserID:    userID,
		State:     StatePhoneEntry,
		Email:     emailAddr,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return session.view(), nil
}

// SubmitPhone records the phone number and sends the SMS code. Resubmitting
// from the phone_code state resends a fresh code.
func (s *Service) SubmitPhone(ctx context.Context, userID uuid.UUID, phone string) (*View, error) {
	if err := validation.ValidatePhone(phone); err != nil {
		return nil, fmt.Errorf("%w: %v", creatorErrors.ErrValidationFailed, err)
	}

	session, err := s.loadSession(ctx, userID)
	if err != nil {
		return nil, err
	}
	if session.State != StatePhoneEntry && session.State != StatePhoneCode {
		return nil, creatorErrors.ErrInvalidState
	}

	code, err := generateCode()
	if err != nil {
		return nil, fmt.Errorf("failed to generate verification code: %w", err)
	}

	session.Phone = phone
	session.PhoneCode = code
	session.State = StatePhoneCode
	session.CodeExpiresAt = time.Now().Add(s.config.CodeTTL).Unix()
	session.UpdatedAt = time.Now().Unix()

	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}

	if err := s.sms.Send(ctx, sms.Message{
		To:   phone,
		Text: fmt.Sprintf("%s verification code: %s", s.config.OrgName, code),
	}); err != nil {
		log.ErrorWithContext(ctx, "publish: sms delivery to %s failed: %v", maskPhone(phone), err)
		return nil, fmt.Errorf("failed to deliver verification code: %w", err)
	}

	return session.view(), nil
}

// VerifyPhone checks the SMS code. Success advances to the email step and
// sends the email code immediately.
func (s *Service) VerifyPhone(ctx context.Context, userID uuid.UUID, code, remoteIP string) (*View, error) {
	session, err := s.loadSession(ctx, userID)
	if err != nil {
		return nil, err
	}
	if session.State != StatePhoneCode {
		return nil, creatorErrors.ErrInvalidState
	}

	if err := s.checkCode(ctx, session, session.PhoneCode, code, remoteIP); err != nil {
		return nil, err
	}

	emailCode, err := generateCode()
	if err != nil {
		return nil, fmt.Errorf("failed to generate verification code: %w", err)
	}

	session.State = StateEmailCode
	session.EmailCode = emailCode
	session.PhoneCode = ""
	session.CodeExpiresAt = time.Now().Add(s.config.CodeTTL).Unix()
	session.UpdatedAt = time.Now().Unix()
	s.limiter.Reset(userID)

	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}

	if err := s.email.Send(ctx, email.Message{
		From:    s.config.FromEmail,
		To:      []string{session.Email},
		Subject: fmt.Sprintf("%s verification code", s.config.OrgName),
		Body:    fmt.Sprintf("<p>Your verification code is <strong>%s</strong>. It expires in %d minutes.</p>", emailCode, int(s.config.CodeTTL.Minutes())),
	}); err != nil {
		log.ErrorWithContext(ctx, "publish: email delivery to %s failed: %v", session.Email, err)
		return nil, fmt.Errorf("failed to deliver verification code: %w", err)
	}

	return session.view(), nil
}

// VerifyEmail checks the email code. Success marks the session verified; the
// profile still flips to published only on Finalize.
func (s *Service) VerifyEmail(ctx context.Context, userID uuid.UUID, code, remoteIP string) (*View, error) {
	session, err := s.loadSession(ctx, userID)
	if err != nil {
		return nil, err
	}
	if session.State != StateEmailCode {
		return nil, creatorErrors.ErrInvalidState
	}

	if err := s.checkCode(ctx, session, session.EmailCode, code, remoteIP); err != nil {
		return nil, err
	}

	session.State = StateVerified
	session.EmailCode = ""
	session.CodeExpiresAt = 0
	session.UpdatedAt = time.Now().Unix()
	s.limiter.Reset(userID)

	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return session.view(), nil
}

// Finalize publishes the profile. Requires a verified session unless the
// bypass switch is on.
func (s *Service) Finalize(ctx context.Context, userID uuid.UUID) (*models.Creator, error) {
	if !s.config.Bypass {
		session, err := s.loadSession(ctx, userID)
		if err != nil {
			return nil, err
		}
		if session.State != StateVerified {
			return nil, creatorErrors.ErrVerificationRequired
		}
	}

	creator, err := s.creators.PublishProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	s.dropSession(ctx, userID)
	return creator, nil
}

// Status returns the current session view for flow resumption.
func (s *Service) Status(ctx context.Context, userID uuid.UUID) (*View, error) {
	session, err := s.loadSession(ctx, userID)
	if err != nil {
		return nil, err
	}
	return session.view(), nil
}

func (s *Service) checkCode(ctx context.Context, session *Session, expected, got, remoteIP string) error {
	if err := s.limiter.IsAllowed(remoteIP, session.UserID); err != nil {
		return fmt.Errorf("%w: %v", creatorErrors.ErrTooManyAttempts, err)
	}

	if session.CodeExpiresAt > 0 && time.Now().Unix() > session.CodeExpiresAt {
		return creatorErrors.ErrCodeExpired
	}

	if expected == "" || got != expected {
		s.limiter.RecordAttempt(remoteIP, session.UserID)
		return creatorErrors.ErrWrongCode
	}
	return nil
}

func (s *Service) saveSession(ctx context.Context, session *Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to serialize session: %w", err)
	}
	if err := s.backend.Set(ctx, sessionKey(session.UserID), data, sessionTTL); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

func (s *Service) loadSession(ctx context.Context, userID uuid.UUID) (*Session, error) {
	data, err := s.backend.Get(ctx, sessionKey(userID))
	if err != nil {
		if err == cache.ErrKeyNotFound {
			return nil, creatorErrors.ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		// A corrupt session cannot be resumed; force a restart.
		s.dropSession(ctx, userID)
		return nil, creatorErrors.ErrSessionNotFound
	}
	return &session, nil
}

func (s *Service) dropSession(ctx context.Context, userID uuid.UUID) {
	if err := s.backend.Delete(ctx, sessionKey(userID)); err != nil && err != cache.ErrKeyNotFound {
		log.WarnWithContext(ctx, "publish: session cleanup for %s failed: %v", userID, err)
	}
}

func sessionKey(userID uuid.UUID) string {
	return fmt.Sprintf(sessionKeyFmt, userID)
}

// generateCode produces a zero-padded numeric code from a CSPRNG.
func generateCode() (string, error) {
	max := big.NewInt(1)
	for i := 0; i < codeLength; i++ {
		max.Mul(max, big.NewInt(10))
	}
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", codeLength, n), nil
}

func maskPhone(phone string) string {
	if len(phone) <= 4 {
		return phone
	}
	return strings.Repeat("*", len(phone)-4) + phone[len(phone)-4:]
}
