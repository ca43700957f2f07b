package configs

import "affiliate-ledger/internal/core/fraud"

// Fraud extends the built-in click filter signatures. Lists are comma
// separated.
type Fraud struct {
	BotPatterns     []string `env:"BOT_PATTERNS" envSeparator:","`
	SpamReferrers   []string `env:"SPAM_REFERRERS" envSeparator:","`
	BlockedNetworks []string `env:"BLOCKED_NETWORKS" envSeparator:","`
}

// Rules converts the section into classifier rules appended to the
// built-in signatures.
func (c Fraud) Rules() fraud.Rules {
	return fraud.Rules{
		BotPatterns:     c.BotPatterns,
		SpamReferrers:   c.SpamReferrers,
		BlockedNetworks: c.BlockedNetworks,
	}
}
