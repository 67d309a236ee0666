package opinions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"debateservice/lib/scrapers/debateorg"
	"debateservice/lib/serviceutil"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const maxRequestBytes = 1 << 20

// Fetcher retrieves the raw markup of an opinion page.
//
// note: fault injection point
type Fetcher interface {
	Fetch(ctx context.Context, link string) ([]byte, error)
}

// Extractor turns the markup of an opinion page into an Opinion.
//
// note: fault injection point
type Extractor interface {
	Extract(ctx context.Context, markup []byte) (debateorg.Opinion, error)
}

// ExtractorFunc adapts a plain function to Extractor.
type ExtractorFunc func(ctx context.Context, markup []byte) (debateorg.Opinion, error)

func (f ExtractorFunc) Extract(ctx context.Context, markup []byte) (debateorg.Opinion, error) {
	return f(ctx, markup)
}

type Options struct {
	// AllowedDomain is the domain (and its subdomains) requests may point at,
	// defaults to debate.org.
	AllowedDomain string
}

type Service struct {
	fetcher   Fetcher
	extractor Extractor
	domain    string
}

func NewService(fetcher Fetcher, extractor Extractor, opts Options) Service {
	domain := opts.AllowedDomain
	if domain == "" {
		domain = debateorg.Domain
	}
	return Service{
		fetcher:   fetcher,
		extractor: extractor,
		domain:    domain,
	}
}

// Register mounts the service on mux.
func (s Service) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /opinions", s.ServeOpinion)
}

// ServeOpinion handles POST /opinions.
func (s Service) ServeOpinion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	defer func() {
		recovered := recover()
		if recovered == nil {
			return
		}
		slog.ErrorContext(ctx, "panic while handling opinion request", "panic", recovered)
		s.writeError(ctx, w, kindInternal)
	}()

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxRequestBytes))
	if err != nil {
		slog.WarnContext(ctx, "failed to read request body", "err", err)
		s.writeError(ctx, w, kindNotUnderstood)
		return
	}

	status, payload := s.Handle(ctx, body)
	serviceutil.WriteJSON(w, status, payload)
}

func (s Service) writeError(ctx context.Context, w http.ResponseWriter, kind errorKind) {
	res := s.fail(ctx, kind)
	serviceutil.WriteJSON(w, res.status, res.body)
}

func (s Service) fail(ctx context.Context, kind errorKind) errorResponse {
	res := kind.response()
	requestCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", res.name)))
	return res
}

// Handle runs one opinion request from its raw JSON body to a response
// status and the payload to serialize.
func (s Service) Handle(ctx context.Context, body []byte) (int, any) {
	ctx, span := tracer.Start(ctx, "Handle")
	defer span.End()

	opinion, kind, err := s.handle(ctx, body)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		res := s.fail(ctx, kind)
		slog.WarnContext(
			ctx, "opinion request failed",
			"request_id", serviceutil.RequestId(ctx),
			"outcome", res.name,
			"err", err,
		)
		return res.status, res.body
	}

	requestCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", "ok")))
	span.SetAttributes(attribute.Int("arguments", len(opinion.Arguments)))
	return http.StatusOK, opinion
}

func (s Service) handle(ctx context.Context, body []byte) (debateorg.Opinion, errorKind, error) {
	link, err := parseRequestUrl(body)
	if err != nil {
		return debateorg.Opinion{}, kindOf(err), err
	}

	target, err := url.Parse(link)
	if err != nil {
		return debateorg.Opinion{}, kindUnsupportedHost, fmt.Errorf("parse url: %w", err)
	}
	if !debateorg.IsHttpScheme(target) || !debateorg.InDomain(target.Hostname(), s.domain) {
		return debateorg.Opinion{}, kindUnsupportedHost, fmt.Errorf("url %q is not on %s", link, s.domain)
	}
	trace.SpanFromContext(ctx).SetAttributes(attribute.String("url", link))

	markup, err := s.fetcher.Fetch(ctx, link)
	if errors.Is(err, debateorg.ErrNotFound) {
		return debateorg.Opinion{}, kindUpstreamNotFound, err
	}
	if err != nil {
		return debateorg.Opinion{}, kindUpstreamFailure, err
	}

	opinion, err := s.extractor.Extract(ctx, markup)
	if err != nil {
		return debateorg.Opinion{}, kindExtractionFailure, err
	}
	return opinion, 0, nil
}

type requestError struct {
	kind errorKind
	err  error
}

func (e requestError) Error() string {
	return e.err.Error()
}

func (e requestError) Unwrap() error {
	return e.err
}

func kindOf(err error) errorKind {
	var reqErr requestError
	if errors.As(err, &reqErr) {
		return reqErr.kind
	}
	return kindInternal
}

// parseRequestUrl pulls the `url` string out of a request body of the form
// {"url": "..."}.
func parseRequestUrl(body []byte) (string, error) {
	var fields map[string]json.RawMessage
	err := json.Unmarshal(body, &fields)
	if err != nil {
		return "", requestError{kind: kindMalformedJson, err: fmt.Errorf("decode body: %w", err)}
	}

	raw, ok := fields["url"]
	if !ok {
		return "", requestError{kind: kindMissingUrl, err: errors.New("body has no url")}
	}
	var link *string
	err = json.Unmarshal(raw, &link)
	if err != nil {
		return "", requestError{kind: kindMissingUrl, err: fmt.Errorf("decode url: %w", err)}
	}
	if link == nil {
		return "", requestError{kind: kindMissingUrl, err: errors.New("url is null")}
	}
	return *link, nil
}
