package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"

	"github.com/antares2881/outlook-email-sender/pkg/config"
	"github.com/antares2881/outlook-email-sender/pkg/logger"
	"github.com/antares2881/outlook-email-sender/pkg/mailer"
	"github.com/antares2881/outlook-email-sender/pkg/mailer/smtp"
	"github.com/antares2881/outlook-email-sender/pkg/pdf"
	"github.com/antares2881/outlook-email-sender/pkg/pipeline"
	"github.com/antares2881/outlook-email-sender/pkg/recipients"
	"github.com/antares2881/outlook-email-sender/pkg/report"
)

// app wires the configuration, input data, and delivery stack for one
// program invocation.
type app struct {
	cfg      *config.Config
	creds    config.Credentials
	template string
	loaded   *recipients.Result

	log     *slog.Logger
	logFile *os.File
}

func newApp(cfg *config.Config, creds config.Credentials) (*app, error) {
	if err := os.MkdirAll(cfg.Files.ReportDir, 0o755); err != nil {
		return nil, fmt.Errorf("create report directory: %w", err)
	}

	logFile, err := os.OpenFile(
		filepath.Join(cfg.Files.ReportDir, "email_sender.log"),
		os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644,
	)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	a := &app{
		cfg:     cfg,
		creds:   creds,
		log:     logger.New(os.Stderr, logFile, logLevel()),
		logFile: logFile,
	}

	a.template, err = loadTemplate(cfg.Files.Template)
	if err != nil {
		logFile.Close()
		return nil, err
	}

	if err := a.reload(); err != nil {
		logFile.Close()
		return nil, err
	}
	return a, nil
}

func (a *app) close() {
	if a.logFile != nil {
		a.logFile.Close()
	}
}

// loadTemplate reads the HTML body template, falling back to the built-in
// one when no path is configured or the file is missing.
func loadTemplate(path string) (string, error) {
	if path == "" {
		return defaultTemplate, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return defaultTemplate, nil
	}
	if err != nil {
		return "", fmt.Errorf("read template %s: %w", path, err)
	}
	return string(data), nil
}

func (a *app) reload() error {
	res, err := recipients.Load(a.cfg.Files.Recipients)
	if err != nil {
		return err
	}
	a.loaded = res
	a.log.Info("recipients loaded",
		slog.String("source", res.SourcePath),
		slog.Int("valid", len(res.Records)),
		slog.Int("rejected", len(res.Rejected)),
	)
	return nil
}

// sendAll runs the full pipeline over every loaded recipient. In preview
// mode only the first recipient is processed. Delivery failures are
// reported, not returned; only preconditions that abort the run before
// the first attempt surface as errors.
func (a *app) sendAll(ctx context.Context, preview bool) error {
	recs := a.loaded.Records
	if len(recs) == 0 {
		color.Yellow("No valid recipients found in %s.", a.loaded.SourcePath)
		return nil
	}

	cfg := *a.cfg
	cfg.Settings.PreviewMode = cfg.Settings.PreviewMode || preview
	total := len(recs)
	if cfg.Settings.PreviewMode {
		total = 1
	}

	started := time.Now()
	reportPath := filepath.Join(cfg.Files.ReportDir, report.Filename(started))
	out, err := os.Create(reportPath)
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}
	defer out.Close()
	writer := report.NewWriter(out)

	bar := progressbar.Default(int64(total), "sending")
	observe := func(o report.Outcome) {
		_ = bar.Add(1)
		if err := writer.Append(o); err != nil {
			a.log.Error("append report row", slog.Any("error", err))
		}
	}

	p := pipeline.New(
		smtp.New(smtp.Config{
			Server:   cfg.SMTP.Server,
			Port:     cfg.SMTP.Port,
			UseTLS:   cfg.TLS(),
			Username: a.creds.Email,
			Password: a.creds.Password,
			FromName: cfg.Email.FromName,
		}),
		mailer.NewRenderer(),
		pdf.New(pdf.Config{LogoPath: cfg.Files.Logo}),
		&cfg,
		a.template,
		pipeline.WithLogger(a.log),
		pipeline.WithObserver(observe),
	)

	rep, runErr := p.Run(ctx, recs)
	_ = bar.Finish()
	fmt.Println()

	if runErr != nil && rep.Total == 0 {
		return runErr
	}

	color.New(color.Bold).Println("Run complete.")
	color.Green("  Sent:   %d", rep.Succeeded)
	if rep.Failed > 0 {
		color.Red("  Failed: %d", rep.Failed)
	} else {
		fmt.Printf("  Failed: %d\n", rep.Failed)
	}
	fmt.Printf("  Report: %s\n", reportPath)

	if runErr != nil {
		// Interrupted mid-run; the partial report above still stands.
		color.Yellow("Run stopped early: %v", runErr)
	}
	return nil
}

// previewTo sends one test email to addr using the first recipient's
// data shape but the given address.
func (a *app) previewTo(ctx context.Context, addr string) error {
	rec := recipients.Record{
		Email:         addr,
		Name:          "Preview Recipient",
		Company:       "Example Corp",
		City:          "Springfield",
		CustomMessage: "This is a preview of the personalized message body.",
	}
	if len(a.loaded.Records) > 0 {
		rec = a.loaded.Records[0]
		rec.Email = addr
	}
	if err := rec.Validate(); err != nil {
		return fmt.Errorf("preview address: %w", err)
	}

	saved := a.loaded
	defer func() { a.loaded = saved }()
	a.loaded = &recipients.Result{
		Records:    []recipients.Record{rec},
		SourcePath: saved.SourcePath,
	}
	return a.sendAll(ctx, true)
}
