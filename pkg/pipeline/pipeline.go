package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/antares2881/outlook-email-sender/pkg/config"
	"github.com/antares2881/outlook-email-sender/pkg/logger"
	"github.com/antares2881/outlook-email-sender/pkg/mailer"
	"github.com/antares2881/outlook-email-sender/pkg/recipients"
	"github.com/antares2881/outlook-email-sender/pkg/report"
)

// AttachmentGenerator builds the personalized attachment for a recipient.
// It carries no retry policy: a failure here fails the recipient.
type AttachmentGenerator interface {
	Generate(rec recipients.Record) (mailer.Attachment, error)
}

// Pipeline orchestrates rendering, attachment generation, delivery with
// bounded retry, rate limiting, and outcome accumulation for one run.
type Pipeline struct {
	transport mailer.Transport
	renderer  *mailer.Renderer
	generator AttachmentGenerator
	cfg       *config.Config
	template  string

	log     *slog.Logger
	observe func(report.Outcome)
	now     func() time.Time
}

// New assembles a pipeline. template is the HTML body template shared by
// every recipient in the run.
func New(transport mailer.Transport, renderer *mailer.Renderer, generator AttachmentGenerator, cfg *config.Config, template string, opts ...Option) *Pipeline {
	p := &Pipeline{
		transport: transport,
		renderer:  renderer,
		generator: generator,
		cfg:       cfg,
		template:  template,
		log:       logger.NewNope(),
		observe:   func(report.Outcome) {},
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run processes every recipient in input order and returns the report.
//
// An empty input yields an empty report without touching the transport.
// A broken template or an unopenable transport session aborts the run with
// zero outcomes; every other failure is captured into that recipient's
// outcome and the run continues. On context cancellation Run returns the
// partial report together with the context's error.
func (p *Pipeline) Run(ctx context.Context, recs []recipients.Record) (*report.Report, error) {
	rep := report.New(p.now())
	if len(recs) == 0 {
		p.log.Info("no recipients to process", slog.String("run_id", rep.RunID))
		return rep, nil
	}

	if err := p.renderer.Validate(p.template); err != nil {
		return rep, err
	}

	session, err := p.transport.Connect(ctx)
	if err != nil {
		return rep, errors.Join(ErrTransportUnavailable, err)
	}
	defer session.Close()

	if p.cfg.Settings.PreviewMode && len(recs) > 1 {
		p.log.Warn("preview mode: processing only the first recipient",
			slog.Int("skipped", len(recs)-1))
		recs = recs[:1]
	}

	p.log.Info("starting run",
		slog.String("run_id", rep.RunID),
		slog.Int("recipients", len(recs)),
		slog.Int("max_retries", p.cfg.Settings.MaxRetries))

	for i, rec := range recs {
		outcome := p.process(ctx, session, rec)
		rep.Add(outcome)
		p.observe(outcome)

		if i < len(recs)-1 {
			if err := sleepCtx(ctx, p.cfg.Delay()); err != nil {
				return rep, err
			}
		}
	}

	p.log.Info("run complete",
		slog.String("run_id", rep.RunID),
		slog.Int("total", rep.Total),
		slog.Int("succeeded", rep.Succeeded),
		slog.Int("failed", rep.Failed))
	return rep, nil
}

// process takes one recipient through Rendering -> Sending -> outcome.
func (p *Pipeline) process(ctx context.Context, session mailer.Session, rec recipients.Record) report.Outcome {
	log := p.log.With(slog.String("email", rec.Email))
	log.Debug("rendering")

	values := rec.Fields()
	values["from_name"] = p.cfg.Email.FromName
	body := p.renderer.Render(p.template, values)

	attachment, err := p.generator.Generate(rec)
	if err != nil {
		err = fmt.Errorf("%w: %v", ErrAttachment, err)
		log.Error("attachment generation failed", slog.Any("error", err))
		return p.outcome(rec, err)
	}

	email := &mailer.Email{
		To:          rec.Email,
		ToName:      rec.Name,
		Subject:     p.cfg.Email.Subject,
		HTML:        body,
		Attachments: []mailer.Attachment{attachment},
	}

	attempts := p.cfg.Settings.MaxRetries + 1
	attempt := 0
	err = retry(ctx, attempts, func(context.Context) error {
		attempt++
		log.Debug("sending", slog.Int("attempt", attempt))
		return session.Send(email)
	})
	if err != nil {
		log.Error("delivery failed", slog.Int("attempts", attempt), slog.Any("error", err))
	} else {
		log.Info("delivered", slog.Int("attempts", attempt))
	}
	return p.outcome(rec, err)
}

func (p *Pipeline) outcome(rec recipients.Record, err error) report.Outcome {
	o := report.Outcome{
		Email:     rec.Email,
		Name:      rec.Name,
		Status:    report.StatusSuccess,
		Timestamp: p.now(),
	}
	if err != nil {
		o.Status = report.StatusError
		o.Error = err.Error()
	}
	return o
}

// sleepCtx pauses for d, returning early when ctx is done.
func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
