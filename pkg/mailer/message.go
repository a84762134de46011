// Package mailer sends rendered invitations by e-mail through the Gmail API.
//
// Each message is a multipart/related body holding a plain-text and HTML
// alternative plus exactly one inline image, referenced from the HTML by
// Content-ID. The image carries no file name, so mail clients show it inline
// instead of as an attachment.
package mailer

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/gomail.v2"
)

// ContentID identifies the inline invitation image.
const ContentID = "invite"

const defaultImageType = "image/png"

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// Invitation is the text of one invitation mail.
type Invitation struct {
	Sender    string
	Subject   string
	HTMLTitle string
	Preheader string

	Name     string
	Date     string
	Time     string
	Address  string
	Deadline string
	Signoff  string
}

// InlineImage is the image embedded in a message.
type InlineImage struct {
	Data     []byte
	MIMEType string
}

// ReadInlineImage reads the image at path. Its type comes from the file
// extension, image/png when the extension is unknown, and must be image/*.
func ReadInlineImage(path string) (*InlineImage, error) {
	mediaType := defaultImageType
	if t := mime.TypeByExtension(filepath.Ext(path)); t != "" {
		if mt, _, err := mime.ParseMediaType(t); err == nil {
			mediaType = mt
		}
	}
	if !strings.HasPrefix(mediaType, "image/") {
		return nil, fmt.Errorf("%w: %s (type=%s)", ErrNotImage, path, mediaType)
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrMissingImage, path)
	}
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}

	return &InlineImage{Data: data, MIMEType: mediaType}, nil
}

// BuildMessage renders the complete RFC 5322 message for one recipient.
// With imageOnly the plain part is blank and the HTML holds only the image.
func BuildMessage(to string, inv Invitation, img *InlineImage, imageOnly bool) ([]byte, error) {
	m := gomail.NewMessage()
	m.SetHeader("To", to)
	if inv.Sender != "" {
		m.SetHeader("From", inv.Sender)
	}
	m.SetHeader("Subject", inv.Subject)

	var (
		plain string
		html  bytes.Buffer
		err   error
	)
	if imageOnly {
		plain = " "
		err = templates.ExecuteTemplate(&html, "image_only.html", htmlData{ContentID: ContentID})
	} else {
		plain = PlainText(inv)
		preheader := strings.TrimSpace(inv.Preheader)
		if preheader == "" {
			preheader = " "
		}
		err = templates.ExecuteTemplate(&html, "invitation.html", htmlData{
			Title:     inv.HTMLTitle,
			Preheader: preheader,
			ContentID: ContentID,
		})
	}
	if err != nil {
		return nil, fmt.Errorf("render HTML body: %w", err)
	}

	m.SetBody("text/plain", plain)
	m.AddAlternative("text/html", html.String())

	m.Embed(ContentID,
		gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(img.Data)
			return err
		}),
		gomail.SetHeader(map[string][]string{
			"Content-Type":        {img.MIMEType},
			"Content-ID":          {"<" + ContentID + ">"},
			"Content-Disposition": {"inline"},
		}),
	)

	var buf bytes.Buffer
	if _, err := m.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("write message: %w", err)
	}
	return buf.Bytes(), nil
}

type htmlData struct {
	Title     string
	Preheader string
	ContentID string
}

// PlainText is the text/plain body of a full invitation.
func PlainText(inv Invitation) string {
	var parts []string
	if p := strings.TrimSpace(inv.Preheader); p != "" {
		parts = append(parts, p, "")
	}

	parts = append(parts,
		"Invitation til konfirmation",
		"",
		inv.Name+"s konfirmation",
		inv.Date,
		inv.Time,
		"",
		"Vi håber, at I vil være med til at fejre dagen sammen med os med god mad, hyggeligt samvær og festlig stemning.",
		"",
		"Adresse: "+inv.Address,
		"Tilmelding senest: "+inv.Deadline,
		"",
		"Kærlig hilsen",
		inv.Signoff,
	)

	return strings.TrimSpace(strings.Join(parts, "\n")) + "\n"
}
