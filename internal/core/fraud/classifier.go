// Package fraud classifies incoming clicks as clean or filtered. The
// classifier is pure: no I/O, no errors, deterministic for a given rule set.
package fraud

import (
	"net/netip"
	"net/url"
	"strings"

	"affiliate-ledger/internal/core/domain"
)

// Audit flags attached to accepted clicks whose signals look odd but are not
// conclusive.
const (
	FlagMissingUserAgent = "missing_user_agent"
	FlagInvalidIP        = "invalid_ip"
	FlagPrivateIP        = "private_ip"
	FlagMalformedReferer = "malformed_referrer"
)

// DefaultBotPatterns are lower-case user-agent fragments of crawlers and
// scripted clients. "bot" is anchored to a following delimiter so handset
// names such as CUBOT stay clean.
var DefaultBotPatterns = []string{
	"bot/", "bot;", "bot)", "bot-", "bot (", "bot+",
	"crawler", "spider", "slurp", "headless", "phantomjs", "selenium",
	"puppeteer", "curl/", "wget/", "python-requests", "python-urllib",
	"go-http-client", "java/", "okhttp", "scrapy", "httpclient",
	"facebookexternalhit", "preview",
}

// DefaultSpamReferrers are well known referrer-spam domains.
var DefaultSpamReferrers = []string{
	"semalt.com", "buttons-for-website.com", "darodar.com", "ilovevitaly.com",
	"best-seo-offer.com", "priceg.com", "hulfingtonpost.com", "o-o-6-o-o.com",
}

// Rules extends the built-in signatures. Blank entries are ignored.
type Rules struct {
	BotPatterns     []string
	SpamReferrers   []string
	BlockedNetworks []string
}

// Verdict is the classification of one click.
type Verdict struct {
	Filtered bool
	Reason   domain.FilterReason
	Flags    []string
}

// Classifier applies the configured signatures.
type Classifier struct {
	botPatterns   []string
	spamReferrers []string
	blocked       []netip.Prefix
}

// NewClassifier builds a classifier from the defaults plus r. A blocked
// network entry may be a CIDR or a single address; a malformed entry is a
// configuration error.
func NewClassifier(r Rules) (*Classifier, error) {
	c := &Classifier{
		botPatterns:   normalize(append(append([]string{}, DefaultBotPatterns...), r.BotPatterns...)),
		spamReferrers: normalize(append(append([]string{}, DefaultSpamReferrers...), r.SpamReferrers...)),
	}
	for _, raw := range r.BlockedNetworks {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		if !strings.Contains(raw, "/") {
			addr, err := netip.ParseAddr(raw)
			if err != nil {
				return nil, domain.NewValidationError("blocked_networks", raw)
			}
			c.blocked = append(c.blocked, netip.PrefixFrom(addr, addr.BitLen()))
			continue
		}
		prefix, err := netip.ParsePrefix(raw)
		if err != nil {
			return nil, domain.NewValidationError("blocked_networks", raw)
		}
		c.blocked = append(c.blocked, prefix.Masked())
	}
	return c, nil
}

// Classify never fails: anything it cannot judge is accepted, possibly with
// audit flags.
func (c *Classifier) Classify(s domain.RequestSignals) Verdict {
	var v Verdict

	addr, err := netip.ParseAddr(strings.TrimSpace(s.IPAddress))
	switch {
	case err != nil:
		v.Flags = append(v.Flags, FlagInvalidIP)
	case c.isBlocked(addr):
		return Verdict{Filtered: true, Reason: domain.FilterReasonBlockedIP}
	case addr.IsLoopback() || addr.IsPrivate():
		v.Flags = append(v.Flags, FlagPrivateIP)
	}

	ua := strings.ToLower(strings.TrimSpace(s.UserAgent))
	if ua == "" {
		v.Flags = append(v.Flags, FlagMissingUserAgent)
	} else if matchesAny(ua, c.botPatterns) {
		return Verdict{Filtered: true, Reason: domain.FilterReasonBotUserAgent}
	}

	if ref := strings.TrimSpace(s.Referrer); ref != "" {
		host, ok := referrerHost(ref)
		if !ok {
			v.Flags = append(v.Flags, FlagMalformedReferer)
		} else if c.isSpamHost(host) {
			return Verdict{Filtered: true, Reason: domain.FilterReasonSpamReferrer}
		}
	}
	return v
}

func (c *Classifier) isBlocked(addr netip.Addr) bool {
	addr = addr.Unmap()
	for _, p := range c.blocked {
		if p.Contains(addr) {
			return true
		}
	}
	return false
}

func (c *Classifier) isSpamHost(host string) bool {
	for _, d := range c.spamReferrers {
		if host == d || strings.HasSuffix(host, "."+d) {
			return true
		}
	}
	return false
}

func referrerHost(raw string) (string, bool) {
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil || u.Hostname() == "" {
		return "", false
	}
	return strings.ToLower(strings.TrimSuffix(u.Hostname(), ".")), true
}

func matchesAny(s string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}

func normalize(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, v := range in {
		v = strings.ToLower(strings.TrimSpace(v))
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
