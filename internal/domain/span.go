package domain

import (
	"context"
	"encoding/json"
	"time"
)

const ContextProfileKey = "performanceProfile"

// Profile is an ordered list of timed spans covering one analysis request.
type Profile struct {
	Spans   []*Span `json:"spans"`
	TotalMs *int64  `json:"totalMs"`
	startTs time.Time
}

type Span struct {
	Name    string `json:"name"`
	Elapsed *int64 `json:"elapsed"`
	startTs time.Time
}

func NewProfile() (*Profile, func()) {
	p := &Profile{
		Spans:   []*Span{},
		startTs: time.Now(),
	}
	return p, p.End
}

func NewCtxWithProfile(ctx context.Context) (context.Context, *Profile, func()) {
	profile, end := NewProfile()
	return context.WithValue(ctx, ContextProfileKey, profile), profile, end
}

// GetProfile returns the profile embedded in ctx, or nil when none was
// installed. All Profile methods tolerate a nil receiver so callers can
// record spans unconditionally.
func GetProfile(ctx context.Context) *Profile {
	profile, ok := ctx.Value(ContextProfileKey).(*Profile)
	if !ok {
		return nil
	}
	return profile
}

func (p *Profile) End() {
	if p == nil {
		return
	}
	if len(p.Spans) > 0 {
		p.Spans[len(p.Spans)-1].End()
	}
	if p.TotalMs == nil {
		t := time.Since(p.startTs).Milliseconds()
		p.TotalMs = &t
	}
}

// StartNewSpan ends the previous span and begins a new one. Not thread
// safe; a profile belongs to a single request.
func (p *Profile) StartNewSpan(name string) (*Span, func()) {
	s := &Span{
		Name:    name,
		startTs: time.Now(),
	}
	if p == nil {
		return s, s.End
	}
	if len(p.Spans) > 0 {
		p.Spans[len(p.Spans)-1].End()
	}
	p.Spans = append(p.Spans, s)
	return s, s.End
}

func (s *Span) End() {
	if s.Elapsed == nil {
		t := time.Since(s.startTs).Milliseconds()
		s.Elapsed = &t
	}
}

func (p *Profile) ToJsonBytes() ([]byte, error) {
	return json.Marshal(p.Spans)
}
