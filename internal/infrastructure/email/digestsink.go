package email

import (
	"fmt"
	"strings"
	"sync"

	"gopkg.in/gomail.v2"

	"aircast/internal/domain/notification"
	"aircast/internal/shared/config"
	"aircast/internal/shared/logger"
)

// Dialer sends a composed message. Satisfied by *gomail.Dialer.
type Dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// DigestSink buffers delivered notifications and sends them as a single
// digest email on Flush. Deliveries while disabled are dropped.
type DigestSink struct {
	cfg       *config.EmailConfig
	dialer    Dialer
	logger    logger.Interface
	recipient string

	mu      sync.Mutex
	pending []notification.Display
}

func NewDigestSink(cfg *config.EmailConfig, recipientAddress string, log logger.Interface) *DigestSink {
	var dialer Dialer
	if cfg.Enabled {
		dialer = gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword)
	}
	return &DigestSink{
		cfg:       cfg,
		dialer:    dialer,
		logger:    log,
		recipient: recipientAddress,
	}
}

// NewDigestSinkWithDialer injects the dialer. Used by tests.
func NewDigestSinkWithDialer(cfg *config.EmailConfig, dialer Dialer, recipientAddress string, log logger.Interface) *DigestSink {
	return &DigestSink{
		cfg:       cfg,
		dialer:    dialer,
		logger:    log,
		recipient: recipientAddress,
	}
}

func (s *DigestSink) Deliver(n notification.Display) {
	if !s.cfg.Enabled {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Sinks can see redeliveries; keep the digest free of duplicates.
	for _, p := range s.pending {
		if p.ID == n.ID {
			return
		}
	}
	s.pending = append(s.pending, n)
}

// Pending reports the number of buffered notifications.
func (s *DigestSink) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Flush sends the buffered notifications as one digest email and clears
// the buffer. A send failure keeps the buffer intact for retry.
func (s *DigestSink) Flush() error {
	if !s.cfg.Enabled || s.dialer == nil {
		return nil
	}

	s.mu.Lock()
	batch := s.pending
	s.mu.Unlock()

	if len(batch) == 0 {
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", s.cfg.FromAddress, s.cfg.FromName)
	msg.SetHeader("To", s.recipient)
	msg.SetHeader("Subject", fmt.Sprintf("You have %d new notifications", len(batch)))
	msg.SetBody("text/plain", renderDigest(batch))

	if err := s.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send notification digest: %w", err)
	}

	s.mu.Lock()
	s.pending = s.pending[len(batch):]
	s.mu.Unlock()

	s.logger.Infow("notification digest sent",
		"recipient", s.recipient,
		"count", len(batch),
	)
	return nil
}

func renderDigest(batch []notification.Display) string {
	var b strings.Builder
	for _, n := range batch {
		b.WriteString("- ")
		b.WriteString(n.Content)
		if n.Link != "" {
			b.WriteString(" (")
			b.WriteString(n.Link)
			b.WriteString(")")
		}
		b.WriteString("\n")
	}
	return b.String()
}
