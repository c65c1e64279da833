package token

import (
	"net/url"
	"strconv"
	"time"
)

// Verdict is the outcome of authorizing a single request.
type Verdict int

const (
	Valid Verdict = iota
	Expired
	Forbidden
	MissingParameters
)

func (v Verdict) String() string {
	switch v {
	case Valid:
		return "valid"
	case Expired:
		return "expired"
	case Forbidden:
		return "forbidden"
	case MissingParameters:
		return "missing_parameters"
	}
	return "unknown"
}

// Authorizer decides whether a single request may proceed to file serving.
// It holds no mutable state and is safe for concurrent use without
// synchronization.
type Authorizer struct {
	signer *Signer
	now    func() int64
}

// Option configures an Authorizer.
type Option func(*Authorizer)

// WithClock replaces the time source used for expiry checks. Tests use it to
// pin the clock to exact boundary values.
func WithClock(now func() int64) Option {
	return func(a *Authorizer) { a.now = now }
}

// NewAuthorizer creates an Authorizer keyed by the shared secret. The time
// source defaults to the system clock.
func NewAuthorizer(key []byte, opts ...Option) *Authorizer {
	a := &Authorizer{
		signer: NewSigner(key),
		now:    func() int64 { return time.Now().Unix() },
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Authorize validates the exp and sig query parameters against path.
//
// path must be the undecoded route path as transmitted on the wire
// (URL.EscapedPath), protected prefix included. The signature scheme applies
// no percent-decoding, so a path decoded upstream will not match a signature
// minted over the raw form.
//
// The signature is verified before expiry: a caller that cannot present a
// valid signature learns nothing about the token's expiry state and is
// always answered Forbidden.
func (a *Authorizer) Authorize(path string, query url.Values) Verdict {
	expRaw := query.Get("exp")
	sig := query.Get("sig")
	if expRaw == "" || sig == "" {
		return MissingParameters
	}
	exp, err := strconv.ParseInt(expRaw, 10, 64)
	if err != nil || exp < 0 {
		return MissingParameters
	}

	expected := a.signer.Sign(path, exp)
	if !Equal(expected, sig) {
		return Forbidden
	}

	// The boundary second is still valid.
	if a.now() > exp {
		return Expired
	}
	return Valid
}
