package mailer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/xob0t/GoInvite/pkg/config"
)

// Dispatcher sends the invitation variants one recipient at a time.
type Dispatcher struct {
	sender    Sender
	log       *slog.Logger
	imageOnly bool
}

// NewDispatcher creates a dispatcher. With imageOnly every message carries
// only the image.
func NewDispatcher(sender Sender, log *slog.Logger, imageOnly bool) *Dispatcher {
	return &Dispatcher{sender: sender, log: log, imageOnly: imageOnly}
}

// NewInvitation builds the mail text for variant v from the shared settings.
// Values are trimmed.
func NewInvitation(m config.Mail, v config.Variant) Invitation {
	return Invitation{
		Sender:    strings.TrimSpace(m.Sender),
		Subject:   strings.TrimSpace(m.Subject),
		HTMLTitle: strings.TrimSpace(m.HTMLTitle),
		Preheader: strings.TrimSpace(v.Preheader),
		Name:      strings.TrimSpace(m.Name),
		Date:      strings.TrimSpace(m.Date),
		Time:      strings.TrimSpace(v.Time),
		Address:   strings.TrimSpace(v.Address),
		Deadline:  strings.TrimSpace(m.Deadline),
		Signoff:   strings.TrimSpace(m.Signoff),
	}
}

// Validate checks the variants before anything is sent: at least one
// recipient overall, and an image path for every variant that has recipients.
func Validate(variants []config.Variant) error {
	var total int
	for _, v := range variants {
		total += len(v.Recipients)
		if len(v.Recipients) > 0 && strings.TrimSpace(v.ImagePath) == "" {
			return fmt.Errorf("%w: %s", ErrImageRequired, v.Label)
		}
	}
	if total == 0 {
		return ErrNoRecipients
	}
	return nil
}

// SendAll validates and sends every variant of m. Returns the number of
// messages sent. Failed recipients do not stop the run; their errors are
// joined with ErrSendFailed.
func (d *Dispatcher) SendAll(ctx context.Context, m config.Mail) (int, error) {
	variants := m.Variants()
	if err := Validate(variants); err != nil {
		return 0, err
	}

	var (
		sent int
		errs []error
	)
	for _, v := range variants {
		n, err := d.SendVariant(ctx, NewInvitation(m, v), v)
		sent += n
		if err != nil {
			errs = append(errs, err)
		}
		if ctx.Err() != nil {
			break
		}
	}
	return sent, errors.Join(errs...)
}

// SendVariant sends inv with the variant's image to each of its recipients.
// A variant without recipients sends nothing.
func (d *Dispatcher) SendVariant(ctx context.Context, inv Invitation, v config.Variant) (int, error) {
	if len(v.Recipients) == 0 {
		return 0, nil
	}

	img, err := ReadInlineImage(strings.TrimSpace(v.ImagePath))
	if err != nil {
		return 0, fmt.Errorf("[%s] %w", v.Label, err)
	}

	var (
		sent int
		errs []error
	)
	for _, to := range v.Recipients {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		raw, err := BuildMessage(to, inv, img, d.imageOnly)
		if err != nil {
			return sent, fmt.Errorf("[%s] %w", v.Label, err)
		}

		id, err := d.sender.Send(ctx, raw)
		if err != nil {
			d.log.Error("send failed",
				slog.String("variant", v.Label),
				slog.String("to", to),
				slog.String("error", err.Error()))
			errs = append(errs, fmt.Errorf("[%s] %s: %w", v.Label, to, err))
			continue
		}

		sent++
		d.log.Info("sent",
			slog.String("variant", v.Label),
			slog.String("to", to),
			slog.String("id", id))
	}

	if len(errs) > 0 {
		return sent, errors.Join(append([]error{ErrSendFailed}, errs...)...)
	}
	return sent, nil
}
