package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAffiliateIDNormalises(t *testing.T) {
	id, err := ParseAffiliateID("  6F9619FF-8B86-D011-B42D-00CF4FC964FF ")
	require.NoError(t, err)
	assert.Equal(t, AffiliateID("6f9619ff-8b86-d011-b42d-00cf4fc964ff"), id)

	_, err = ParseAffiliateID("507f1f77bcf86cd799439011")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestAmount(t *testing.T) {
	tests := []struct {
		in   string
		want Amount
		str  string
	}{
		{"1000", 100000, "1000.00"},
		{"120.5", 12050, "120.50"},
		{"0.005", 1, "0.01"},
		{"-3.20", -320, "-3.20"},
	}
	for _, tt := range tests {
		got, err := ParseAmount(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		assert.Equal(t, tt.str, got.String(), tt.in)
	}

	_, err := ParseAmount("ten")
	assert.ErrorIs(t, err, ErrValidation)

	for _, in := range []string{"184467440737095516.17", "92233720368547758.08", "-92233720368547758.09"} {
		_, err = ParseAmount(in)
		assert.ErrorIs(t, err, ErrValidation, in)
	}
	largest, err := ParseAmount("92233720368547758.07")
	require.NoError(t, err)
	assert.Equal(t, Amount(math.MaxInt64), largest)

	var huge struct {
		A Amount `json:"a"`
	}
	assert.ErrorIs(t, json.Unmarshal([]byte(`{"a":1e30}`), &huge), ErrValidation)

	var v struct {
		A Amount `json:"a"`
		B Amount `json:"b"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a":12.34,"b":"5"}`), &v))
	assert.Equal(t, Amount(1234), v.A)
	assert.Equal(t, Amount(500), v.B)
	out, err := json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":12.34,"b":5.00}`, string(out))
}

func TestParseStatusHint(t *testing.T) {
	tests := map[string]RevenueStatus{
		"":           RevenueSucceeded,
		"Approved":   RevenueSucceeded,
		"pending":    RevenuePending,
		"rejected":   RevenueFailed,
		"CHARGEBACK": RevenueRefunded,
	}
	for hint, want := range tests {
		got, err := ParseStatusHint(hint)
		require.NoError(t, err, hint)
		assert.Equal(t, want, got, hint)
	}
	_, err := ParseStatusHint("maybe")
	assert.ErrorIs(t, err, ErrValidation)

	assert.True(t, RevenuePending.CreditsBalance())
	assert.True(t, RevenueSucceeded.CreditsBalance())
	assert.False(t, RevenueFailed.CreditsBalance())
	assert.False(t, RevenueRefunded.CreditsBalance())
}

func TestPayoutStateTransitions(t *testing.T) {
	s, err := PayoutRequested.Transition(PayoutVerifying)
	require.NoError(t, err)
	s, err = s.Transition(PayoutDone)
	require.NoError(t, err)
	assert.Equal(t, PayoutDone, s)

	_, err = PayoutRequested.Transition(PayoutDone)
	assert.Error(t, err)
	_, err = PayoutDone.Transition(PayoutRejected)
	assert.Error(t, err)
	_, err = PayoutVerifying.Transition(PayoutRejected)
	assert.NoError(t, err)
}

func TestAttributionSettingsValidate(t *testing.T) {
	ok := AttributionSettings{Model: Linear, Window: AttributionWindow{Value: 30, Unit: UnitDays}, CookieExpiry: time.Hour}
	assert.NoError(t, ok.Validate())

	bad := ok
	bad.Model = "u_shaped"
	assert.ErrorIs(t, bad.Validate(), ErrValidation)

	bad = ok
	bad.Window.Value = 0
	assert.ErrorIs(t, bad.Validate(), ErrValidation)

	bad = ok
	bad.Window.Unit = "weeks"
	assert.ErrorIs(t, bad.Validate(), ErrValidation)
}

func TestErrorTaxonomy(t *testing.T) {
	wrapped := fmt.Errorf("store: %w", &PersistenceError{Op: "commit", Err: errors.New("conn reset")})
	assert.ErrorIs(t, wrapped, ErrPersistence)
	var pe *PersistenceError
	require.ErrorAs(t, wrapped, &pe)
	assert.Equal(t, "commit", pe.Op)

	assert.ErrorIs(t, NewNotFoundError("click", "x"), ErrNotFound)
	assert.NotErrorIs(t, NewNotFoundError("click", "x"), ErrValidation)
}

func TestPageNormalize(t *testing.T) {
	assert.Equal(t, Page{Number: 1, Size: DefaultPageSize}, Page{}.Normalize())
	assert.Equal(t, Page{Number: 3, Size: MaxPageSize}, Page{Number: 3, Size: 1000}.Normalize())
	assert.Equal(t, 40, Page{Number: 3, Size: 20}.Offset())

	huge := Page{Number: 1e17, Size: MaxPageSize}.Normalize()
	assert.Equal(t, MaxPageNumber, huge.Number)
	assert.Positive(t, huge.Offset())
}
