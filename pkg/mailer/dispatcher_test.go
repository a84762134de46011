package mailer

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/xob0t/GoInvite/pkg/config"
)

type mockSender struct {
	mock.Mock
}

func (m *mockSender) Send(ctx context.Context, raw []byte) (string, error) {
	args := m.Called(ctx, raw)
	return args.String(0), args.Error(1)
}

// rawTo matches a raw message addressed to addr.
func rawTo(addr string) any {
	return mock.MatchedBy(func(raw []byte) bool {
		return bytes.Contains(raw, []byte("To: "+addr+"\r\n"))
	})
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		variants []config.Variant
		want     error
	}{
		{"no recipients", []config.Variant{{Label: "CHURCH"}, {Label: "HOME"}}, ErrNoRecipients},
		{"image missing", []config.Variant{{Label: "CHURCH", Recipients: config.Recipients{"a@example.com"}}}, ErrImageRequired},
		{"image only needed with recipients", []config.Variant{
			{Label: "CHURCH", Recipients: config.Recipients{"a@example.com"}, ImagePath: "church.png"},
			{Label: "HOME"},
		}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := Validate(tt.variants)
			if tt.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDispatcher_SendAll(t *testing.T) {
	t.Parallel()

	church := writeImage(t, "church.png")
	home := writeImage(t, "home.png")

	m := config.Mail{
		Subject:  "Invitation",
		Name:     "Fie",
		ToChurch: config.Recipients{"a@example.com", "b@example.com"},
		Time1:    "Kl. 14.00",
		Image1:   church,
		ToHome:   config.Recipients{"c@example.com"},
		Time2:    "Kl. 16.00",
		Image2:   home,
	}

	sender := &mockSender{}
	sender.On("Send", mock.Anything, rawTo("a@example.com")).Return("id-a", nil).Once()
	sender.On("Send", mock.Anything, rawTo("b@example.com")).Return("", errors.New("quota exceeded")).Once()
	sender.On("Send", mock.Anything, rawTo("c@example.com")).Return("id-c", nil).Once()

	sent, err := NewDispatcher(sender, quietLogger(), false).SendAll(context.Background(), m)
	assert.Equal(t, 2, sent)
	require.ErrorIs(t, err, ErrSendFailed)
	assert.Contains(t, err.Error(), "b@example.com")
	sender.AssertExpectations(t)
}

func TestDispatcher_SendAllValidatesFirst(t *testing.T) {
	t.Parallel()

	sender := &mockSender{}
	_, err := NewDispatcher(sender, quietLogger(), false).SendAll(context.Background(), config.Mail{})
	require.ErrorIs(t, err, ErrNoRecipients)
	sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestDispatcher_SendVariant_MissingImage(t *testing.T) {
	t.Parallel()

	sender := &mockSender{}
	v := config.Variant{
		Label:      "HOME",
		Recipients: config.Recipients{"a@example.com"},
		ImagePath:  filepath.Join(t.TempDir(), "missing.png"),
	}

	n, err := NewDispatcher(sender, quietLogger(), false).SendVariant(context.Background(), Invitation{}, v)
	assert.Zero(t, n)
	require.ErrorIs(t, err, ErrMissingImage)
	sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestDispatcher_FileSender(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "out")
	v := config.Variant{
		Label:      "CHURCH",
		Recipients: config.Recipients{"a@example.com", "b@example.com"},
		ImagePath:  writeImage(t, "church.png"),
	}

	n, err := NewDispatcher(&FileSender{Dir: dir}, quietLogger(), true).SendVariant(context.Background(), Invitation{Subject: "Hi"}, v)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "message-001.eml", entries[0].Name())

	raw, err := os.ReadFile(filepath.Join(dir, entries[1].Name()))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "To: b@example.com")
}

func TestNewInvitation_Trims(t *testing.T) {
	t.Parallel()

	m := config.Mail{Subject: " Hi ", Name: " Fie ", Deadline: "24/3 "}
	v := config.Variant{Preheader: "  pre ", Time: " Kl. 14.00", Address: "Vej 1 "}

	inv := NewInvitation(m, v)
	assert.Equal(t, "Hi", inv.Subject)
	assert.Equal(t, "Fie", inv.Name)
	assert.Equal(t, "pre", inv.Preheader)
	assert.Equal(t, "Kl. 14.00", inv.Time)
	assert.Equal(t, "Vej 1", inv.Address)
	assert.Equal(t, "24/3", inv.Deadline)
}
