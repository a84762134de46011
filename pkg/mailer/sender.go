package mailer

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/renameio/v2"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

// Sender delivers one raw RFC 5322 message and returns its identifier.
type Sender interface {
	Send(ctx context.Context, raw []byte) (string, error)
}

// GmailSender sends through the Gmail API as the authorized user.
type GmailSender struct {
	svc *gmail.Service
}

// NewGmailSender creates a Gmail API client. Callers pass option.WithTokenSource
// (or another credential option) to authorize it.
func NewGmailSender(ctx context.Context, opts ...option.ClientOption) (*GmailSender, error) {
	svc, err := gmail.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create gmail service: %w", err)
	}
	return &GmailSender{svc: svc}, nil
}

// Send posts raw as base64url to users/me/messages/send.
func (s *GmailSender) Send(ctx context.Context, raw []byte) (string, error) {
	msg := &gmail.Message{Raw: base64.URLEncoding.EncodeToString(raw)}
	res, err := s.svc.Users.Messages.Send("me", msg).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("gmail send: %w", err)
	}
	return res.Id, nil
}

// FileSender writes each message to a numbered .eml file in Dir instead of
// sending it. The file path is returned as the identifier.
type FileSender struct {
	Dir string

	mu sync.Mutex
	n  int
}

func (s *FileSender) Send(ctx context.Context, raw []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create %s: %w", s.Dir, err)
	}

	s.mu.Lock()
	s.n++
	path := filepath.Join(s.Dir, fmt.Sprintf("message-%03d.eml", s.n))
	s.mu.Unlock()

	if err := renameio.WriteFile(path, raw, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
