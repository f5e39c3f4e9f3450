package llm

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// LoggingProvider is a decorator that logs every LLM request.
type LoggingProvider struct {
	inner Provider
	log   logrus.FieldLogger
}

// WithLogging wraps a Provider with request logging. A nil logger uses
// the logrus standard logger.
func WithLogging(p Provider, log logrus.FieldLogger) Provider {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &LoggingProvider{inner: p, log: log}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := l.inner.Generate(ctx, req)

	fields := logrus.Fields{
		"purpose":    PurposeFrom(ctx),
		"model":      l.inner.ModelID(),
		"latency_ms": time.Since(start).Milliseconds(),
		"messages":   len(req.Messages),
	}
	if req.Schema != nil {
		fields["schema"] = req.Schema.Name
	}
	if resp != nil {
		fields["model"] = resp.Model
		fields["input_tokens"] = resp.Usage.InputTokens
		fields["output_tokens"] = resp.Usage.OutputTokens
		fields["total_tokens"] = resp.Usage.Total()
		fields["stop_reason"] = resp.StopReason
		if cost := LookupCost(resp.Model); cost != nil {
			fields["cost_usd"] = cost.Cost(resp.Usage.InputTokens, resp.Usage.OutputTokens)
		}
	}

	entry := l.log.WithFields(fields)
	if err != nil {
		entry.WithError(err).Warn("llm request failed")
	} else {
		entry.Info("llm request")
	}
	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
