package report

import (
	"fmt"
	"io"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
)

// Config encapsulates the settings for configuring a Reporter.
type Config struct {
	// The name of the output format. Defaults to FormatText.
	Format string

	// Anonymize replaces vertex keys and ids with opaque references.
	Anonymize bool

	// Optional destination for the formatted reports. When not set, reports
	// are emitted through the logger.
	Output io.Writer

	// The logger to use. If not defined an output-discarding logger will
	// be used instead.
	Logger *logrus.Entry
}

func (cfg *Config) validate() error {
	var err error

	if cfg.Format == "" {
		cfg.Format = FormatText
	}

	if _, fErr := NewFormatter(cfg.Format); fErr != nil {
		err = multierror.Append(err, fErr)
	}

	if cfg.Logger == nil {
		cfg.Logger = logrus.NewEntry(&logrus.Logger{Out: io.Discard})
	}

	return err
}

// Reporter formats partitioning results and publishes them.
type Reporter struct {
	cfg       Config
	formatter Formatter
}

// NewReporter returns a Reporter configured according to cfg. The output
// format is resolved once.
func NewReporter(cfg Config) (*Reporter, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("reporter config validation failed: %w", err)
	}

	formatter, _ := NewFormatter(cfg.Format)

	return &Reporter{cfg: cfg, formatter: formatter}, nil
}

// Report formats the provided assignments, anonymizing them if configured
// to, and publishes the output.
func (r *Reporter) Report(a Assignments) error {
	var res Result = a
	if r.cfg.Anonymize {
		res = Anonymize(a)
	}

	out, err := r.formatter.Format(res)
	if err != nil {
		return fmt.Errorf("format report: %w", err)
	}

	if r.cfg.Output != nil {
		if _, err = r.cfg.Output.Write(out); err != nil {
			return fmt.Errorf("write report: %w", err)
		}

		return nil
	}

	s := res.RunSummary()
	r.cfg.Logger.WithFields(logrus.Fields{
		"format":      r.cfg.Format,
		"super_steps": s.SuperSteps,
		"converged":   s.Converged,
		"vertices":    len(a.Entries),
	}).Info(string(out))

	return nil
}
