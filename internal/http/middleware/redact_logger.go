// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file implements RedactingLogger, the access logger of the gateway. It
// attaches the request-scoped logger and scrubs credentials from request
// metadata before emitting one structured line per request.
//
// Auction dump URLs handed out by the Blizzard API carry an access_token query
// parameter, and those URLs travel through this service both as query values
// (GET /auction-files/exists?url=...) and in bodies. Query credentials are
// therefore masked, including the ones nested inside URL-valued parameters.
//
// Usage:
//
//	r := gin.New()
//	r.Use(middleware.RedactingLogger(middleware.RedactOptions{
//	    MaskHeaders: []string{"X-Api-Key"},
//	}))
package middleware

import (
	"net/url"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

const redacted = "[REDACTED]"

// RedactOptions configures additional scrub behavior for RedactingLogger.
//
// MaskHeaders specifies extra HTTP header names whose values will be fully
// replaced with "[REDACTED]". Matching is case-insensitive and merged with
// built-in sensitive headers ("Authorization", "Cookie", "Set-Cookie").
//
// MaskParams lists extra query parameter names to mask, merged with the
// built-in credential names (access_token, token, api_key, apikey,
// client_secret).
type RedactOptions struct {
	MaskHeaders []string
	MaskParams  []string
}

var (
	uuidRE  = regexp.MustCompile(`(?i)\b[0-9a-f]{8}\-[0-9a-f]{4}\-[1-5][0-9a-f]{3}\-[89ab][0-9a-f]{3}\-[0-9a-f]{12}\b`)
	emailRE = regexp.MustCompile(`(?i)\b[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}\b`)
)

// redactText replaces UUIDs and e-mail addresses in free text.
func redactText(s string) string {
	if s == "" {
		return s
	}
	s = uuidRE.ReplaceAllString(s, "[REDACTED:id]")
	return emailRE.ReplaceAllString(s, "[REDACTED:email]")
}

func lowerSet(base []string, extra []string) map[string]struct{} {
	set := make(map[string]struct{}, len(base)+len(extra))
	for _, v := range append(append([]string{}, base...), extra...) {
		if v = strings.ToLower(strings.TrimSpace(v)); v != "" {
			set[v] = struct{}{}
		}
	}
	return set
}

// redactQuery masks sensitive parameters of a raw query string. Values that
// are themselves URLs get their own query masked. Keys are emitted sorted.
// An unparsable query falls back to free-text redaction.
func redactQuery(raw string, params map[string]struct{}) string {
	if raw == "" {
		return ""
	}
	vals, err := url.ParseQuery(raw)
	if err != nil {
		return redactText(raw)
	}
	keys := make([]string, 0, len(vals))
	for k := range vals {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		for _, v := range vals[k] {
			if b.Len() > 0 {
				b.WriteByte('&')
			}
			b.WriteString(k)
			b.WriteByte('=')
			if _, ok := params[strings.ToLower(k)]; ok {
				b.WriteString(redacted)
				continue
			}
			b.WriteString(redactText(redactURL(v, params)))
		}
	}
	return b.String()
}

// redactURL masks credential parameters of an absolute URL value; any other
// value is returned unchanged.
func redactURL(v string, params map[string]struct{}) string {
	u, err := url.Parse(v)
	if err != nil || u.Scheme == "" || u.Host == "" || u.RawQuery == "" {
		return v
	}
	q := u.Query()
	changed := false
	for k := range q {
		if _, ok := params[strings.ToLower(k)]; ok {
			q.Set(k, redacted)
			changed = true
		}
	}
	if !changed {
		return v
	}
	u.RawQuery = q.Encode()
	return u.String()
}

// RedactingLogger returns a Gin middleware that attaches the request-scoped
// logger and logs every request with sensitive values scrubbed.
//
// Behavior:
//   - Logs method, route, query string, status, response size, latency,
//     client IP and request headers (with scrubbing applied).
//   - Masks credential query parameters, also inside URL-valued parameters.
//   - Redacts e-mail addresses and UUID-like identifiers from the remaining
//     query values and header values.
//   - Fully masks built-in sensitive headers and opts.MaskHeaders.
//   - Logs at INFO by default, WARN for 4xx and ERROR for 5xx responses or
//     when handlers recorded errors on the context.
func RedactingLogger(opts RedactOptions) gin.HandlerFunc {
	maskHeaders := lowerSet([]string{"authorization", "cookie", "set-cookie"}, opts.MaskHeaders)
	maskParams := lowerSet([]string{"access_token", "token", "api_key", "apikey", "client_secret"}, opts.MaskParams)

	return func(c *gin.Context) {
		start := time.Now()

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		lg := attachLogger(c, path)

		safeQuery := truncate(redactQuery(c.Request.URL.RawQuery, maskParams), maxQueryLogLength)

		safeHeaders := make(map[string]string, len(c.Request.Header))
		for k, vv := range c.Request.Header {
			if _, ok := maskHeaders[strings.ToLower(k)]; ok {
				safeHeaders[k] = redacted
				continue
			}
			safeHeaders[k] = redactText(strings.Join(vv, ", "))
		}

		c.Next()

		status := c.Writer.Status()
		ev := lg.Info()
		switch {
		case status >= 500:
			ev = lg.Error()
		case status >= 400:
			ev = lg.Warn()
		case len(c.Errors) > 0:
			ev = lg.Error()
		}
		if len(c.Errors) > 0 {
			ev = ev.Str("errors", c.Errors.String())
		}

		ev.
			Str("query", safeQuery).
			Int("status", status).
			Int("bytes", c.Writer.Size()).
			Dur("latency", time.Since(start)).
			Str("client_ip", c.ClientIP()).
			Interface("headers", safeHeaders).
			Msg("http_request")
	}
}
