package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/rotisserie/eris"
	"github.com/shopspring/decimal"

	"affiliate-ledger/internal/core/domain"
	"affiliate-ledger/internal/core/port"
)

// DemoAffiliates are the identities created by Seed.
var DemoAffiliates = []domain.AffiliateID{
	"6f1c2b7e-7d36-4a57-9d8e-0c4f1b5a9e01",
	"0b9d8e55-3c1a-4f7e-8a2b-94d1c6e7f302",
	"c4e7a1b9-2f3d-4e6a-9b8c-1d2e3f4a5b03",
}

var demoUserAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0 Safari/537.36",
	"Mozilla/5.0 (iPhone; CPU iPhone OS 17_5 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.5 Mobile/15E148 Safari/604.1",
	"Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)",
}

// Seed creates demo affiliates with tiered commission, records clicks for
// them and converts a share of those clicks. It goes through the use case so
// demo data obeys the same rules as live traffic. Running it twice adds more
// clicks; commission configuration is simply replaced.
func Seed(ctx context.Context, uc port.AffiliateUseCase) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	tiers := []domain.CommissionTier{
		{MinRevenue: 0, Rate: decimal.RequireFromString("0.10")},
		{MinRevenue: 1000000, Rate: decimal.RequireFromString("0.12")},
		{MinRevenue: 5000000, Rate: decimal.RequireFromString("0.15")},
	}
	for _, id := range DemoAffiliates {
		_, err := uc.ConfigureCommission(ctx, port.CommissionConfigInput{AffiliateID: id, Tiers: tiers})
		if err != nil {
			return eris.Wrapf(err, "db: seed affiliate %s", id)
		}
	}

	for i := 0; i < 30; i++ {
		aff := DemoAffiliates[r.Intn(len(DemoAffiliates))]
		click, err := uc.RecordClick(ctx, port.ClickInput{
			AffiliateID: aff,
			CampaignID:  fmt.Sprintf("campaign-%d", r.Intn(3)+1),
			Signals: domain.RequestSignals{
				IPAddress: fmt.Sprintf("203.0.113.%d", r.Intn(250)+1),
				UserAgent: demoUserAgents[r.Intn(len(demoUserAgents))],
				Referrer:  "https://blog.example.com/review",
				VisitorID: fmt.Sprintf("demo-visitor-%d", i),
			},
		})
		if err != nil {
			return eris.Wrap(err, "db: seed click")
		}
		if click.Filtered || i%3 != 0 {
			continue
		}
		_, err = uc.RecordConversion(ctx, port.ConversionInput{
			ClickID:       click.ClickID,
			RevenueAmount: domain.Amount(r.Intn(50000) + 1000),
			TransactionID: fmt.Sprintf("demo-order-%s", click.ClickID),
		})
		if err != nil {
			return eris.Wrap(err, "db: seed conversion")
		}
	}
	return nil
}
