// invite — Personalized invitation images and their mail-out.
//
// Usage:
//
//	invite render <document.json> [output.png]
//	invite legacy [output.png]
//	invite send [--dry-run <dir>] [--image-only]
//	invite init
//	invite keys
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/pflag"
	"google.golang.org/api/option"

	"github.com/xob0t/GoInvite/pkg/config"
	"github.com/xob0t/GoInvite/pkg/generator"
	"github.com/xob0t/GoInvite/pkg/invite"
	"github.com/xob0t/GoInvite/pkg/logger"
	"github.com/xob0t/GoInvite/pkg/mailer"
)

// errUsage marks a missing argument or required input; it exits with status 2.
var errUsage = errors.New("usage")

// authTimeout bounds the wait for the user to finish the consent page.
const authTimeout = 5 * time.Minute

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one subcommand and returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		printUsage(stderr)
		return 2
	}

	var err error
	switch args[0] {
	case "render":
		err = runRender(args[1:], stdout, stderr)
	case "legacy":
		err = runLegacy(args[1:], stdout, stderr)
	case "send":
		err = runSend(args[1:], stdout, stderr)
	case "init":
		err = runInit(args[1:], stdout, stderr)
	case "keys":
		err = runKeys(args[1:], stdout, stderr)
	case "help", "-h", "--help":
		printUsage(stdout)
		return 0
	default:
		printUsage(stderr)
		err = usageError("unknown command %q", args[0])
	}

	return exitCode(err, stderr)
}

func exitCode(err error, stderr io.Writer) int {
	switch {
	case err == nil, errors.Is(err, pflag.ErrHelp):
		return 0
	case errors.Is(err, errUsage):
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	default:
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
}

// usageError formats a message that matches errUsage without repeating it.
func usageError(format string, a ...any) error {
	return &usageErr{msg: fmt.Sprintf(format, a...)}
}

type usageErr struct{ msg string }

func (e *usageErr) Error() string { return e.msg }
func (e *usageErr) Unwrap() error { return errUsage }

// newFlagSet creates a subcommand flag set with the shared --env flag.
func newFlagSet(name string, stderr io.Writer) (*pflag.FlagSet, *string) {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage of invite %s:\n", name)
		fs.PrintDefaults()
	}
	envPath := fs.String("env", ".env", "Path to the .env file (missing is fine)")
	return fs, envPath
}

func parseFlags(fs *pflag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return err
		}
		return usageError("%v", err)
	}
	return nil
}

// setup resolves the configuration and builds the logger.
func setup(environ map[string]string, stderr io.Writer) (*config.Config, *slog.Logger, func(), error) {
	cfg, err := config.Parse(environ)
	if err != nil {
		return nil, nil, nil, err
	}
	log, flush := logger.NewWithSentry(cfg.Logging, stderr)
	return cfg, log, flush, nil
}

func runRender(args []string, stdout, stderr io.Writer) error {
	fs, envPath := newFlagSet("render", stderr)
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	rest := fs.Args()
	if len(rest) < 1 {
		printUsage(stderr)
		return usageError("missing invitation document: invite render <document.json> [output.png]")
	}

	environ, err := config.Environ(*envPath)
	if err != nil {
		return err
	}

	doc, err := invite.LoadDocument(rest[0])
	if err != nil {
		return fmt.Errorf("load document: %w", err)
	}

	cfg, log, flush, err := setup(config.Merge(environ, doc.Overrides()), stderr)
	if err != nil {
		return err
	}
	defer flush()

	for _, w := range invite.ValidateDocument(doc) {
		log.Warn(w)
	}

	output := cfg.OutputImage
	if len(rest) >= 2 {
		output = rest[1]
	}
	return render(cfg, doc.Content, invite.SuppressEmpty, output, log, stdout)
}

func runLegacy(args []string, stdout, stderr io.Writer) error {
	fs, envPath := newFlagSet("legacy", stderr)
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	environ, err := config.Environ(*envPath)
	if err != nil {
		return err
	}

	cfg, log, flush, err := setup(environ, stderr)
	if err != nil {
		return err
	}
	defer flush()

	var content invite.Content
	if err := config.Decode(environ, &content); err != nil {
		return err
	}

	output := cfg.OutputImage
	if rest := fs.Args(); len(rest) >= 1 {
		output = rest[0]
	}
	return render(cfg, content, invite.KeepBlank, output, log, stdout)
}

// render composes content onto the configured template and writes output.
func render(cfg *config.Config, content invite.Content, policy invite.Policy, output string, log *slog.Logger, stdout io.Writer) error {
	path := cfg.TemplateImage
	if path == "" {
		return usageError("TEMPLATE_IMAGE not set or not found: %q", path)
	}

	tmpl, err := invite.LoadTemplate(path)
	if errors.Is(err, os.ErrNotExist) {
		return usageError("TEMPLATE_IMAGE not set or not found: %q", path)
	}
	if err != nil {
		return err
	}

	fonts, err := invite.LoadFontSet(cfg.Fonts, log)
	if err != nil {
		return fmt.Errorf("load fonts: %w", err)
	}

	log.Debug("rendering",
		slog.String("template", path),
		slog.String("policy", policy.String()),
		slog.Int("dpi", cfg.Layout.DPI))

	img := invite.NewRenderer(cfg.Layout, fonts).Render(tmpl, content, policy)
	if err := generator.Generate(output, img); err != nil {
		return err
	}

	b := img.Bounds()
	fmt.Fprintf(stdout, "Wrote %s (%dx%d px @ ~%ddpi)\n", output, b.Dx(), b.Dy(), cfg.Layout.DPI)
	return nil
}

func runSend(args []string, stdout, stderr io.Writer) error {
	fs, envPath := newFlagSet("send", stderr)
	dryRun := fs.String("dry-run", "", "Write .eml files to this directory instead of sending")
	imageOnly := fs.Bool("image-only", false, "Send only the image, without the text body")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	environ, err := config.Environ(*envPath)
	if err != nil {
		return err
	}

	cfg, log, flush, err := setup(environ, stderr)
	if err != nil {
		return err
	}
	defer flush()

	if err := mailer.Validate(cfg.Mail.Variants()); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var sender mailer.Sender
	if *dryRun != "" {
		sender = &mailer.FileSender{Dir: *dryRun}
	} else {
		auth := &mailer.LoopbackAuthorizer{
			Open: func(u string) error {
				_, err := fmt.Fprintf(stderr, "Open this URL in your browser to allow sending mail:\n\n    %s\n\n", u)
				return err
			},
			Timeout: authTimeout,
		}
		ts, err := mailer.TokenSource(ctx, cfg.Mail.Credentials, cfg.Mail.TokenFile, auth.Authorize, log)
		if err != nil {
			return err
		}
		if sender, err = mailer.NewGmailSender(ctx, option.WithTokenSource(ts)); err != nil {
			return err
		}
	}

	n, err := mailer.NewDispatcher(sender, log, *imageOnly).SendAll(ctx, cfg.Mail)
	fmt.Fprintf(stdout, "Sent %d message(s)\n", n)
	return err
}

func runInit(args []string, stdout, stderr io.Writer) error {
	fs, envPath := newFlagSet("init", stderr)
	docOut := fs.String("document", "invitation.json", "Output path for the sample document")
	tmplOut := fs.String("template", invite.SampleTemplateName, "Output path for the blank template image")
	force := fs.Bool("force", false, "Overwrite existing files")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	if !*force {
		for _, p := range []string{*envPath, *docOut, *tmplOut} {
			if _, err := os.Stat(p); err == nil {
				return fmt.Errorf("%s already exists (use --force to overwrite)", p)
			}
		}
	}

	envFile, doc := invite.GetExampleFiles()
	envFile = strings.Replace(envFile,
		"TEMPLATE_IMAGE="+invite.SampleTemplateName,
		"TEMPLATE_IMAGE="+*tmplOut, 1)

	if err := os.WriteFile(*envPath, []byte(envFile), 0644); err != nil {
		return fmt.Errorf("write env: %w", err)
	}
	if err := os.WriteFile(*docOut, []byte(doc), 0644); err != nil {
		return fmt.Errorf("write document: %w", err)
	}

	w, h := invite.PageSize(invite.DefaultDPI)
	paper := config.MustRGB("255,253,248").RGBA()
	frame := config.MustRGB("200,185,160").RGBA()
	if err := generator.Generate(*tmplOut, generator.NewFramedImage(w, h, paper, frame, 120, 6)); err != nil {
		return fmt.Errorf("write template: %w", err)
	}

	fmt.Fprintf(stdout, "Created: %s, %s, %s\n", *envPath, *docOut, *tmplOut)
	fmt.Fprintf(stdout, "Run: invite render --env %s %s invite.png\n", *envPath, *docOut)
	return nil
}

func runKeys(args []string, stdout, stderr io.Writer) error {
	fs, _ := newFlagSet("keys", stderr)
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	if err := config.FormatKeys(stdout, "Configuration (.env, environment, document LAYOUT)", &config.Config{}); err != nil {
		return err
	}
	return config.FormatKeys(stdout, "Invitation text (invite legacy)", &invite.Content{})
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, `invite — Personalized invitation images

USAGE:
    invite render [--env .env] <document.json> [output.png]
    invite legacy [--env .env] [output.png]
    invite send   [--env .env] [--dry-run <dir>] [--image-only]
    invite init   [--env .env] [--document invitation.json] [--template template.png] [--force]
    invite keys

RENDER:
    Draws the text of a JSON document onto TEMPLATE_IMAGE. Empty blocks are
    skipped. The document may carry a LAYOUT object overriding layout keys.
    Output defaults to OUTPUT_IMAGE (invite.png).

LEGACY:
    Same, with the text read from the .env file. Empty lines keep their space.

SEND:
    Mails IMAGE_PATH_1 to TO_CHURCH and IMAGE_PATH_2 to TO_HOME through Gmail.
    --dry-run <dir>     Write .eml files instead of sending
    --image-only        Image without the text body

EXIT STATUS:
    0 success, 2 missing argument or template, 1 any other failure

EXAMPLES:
    invite init
    invite render invitation-home.json invitation-home.png
    invite send --dry-run out/
`)
}
