package worker

import (
	"context"
	"testing"
	"time"
)

func TestNewLimiter(t *testing.T) {
	if l := NewLimiter(10, 5); l.defaultBurst != 5 {
		t.Errorf("expected burst 5, got %d", l.defaultBurst)
	}
	if l := NewLimiter(10, -1); l.defaultBurst != 1 {
		t.Errorf("expected burst 1 for negative input, got %d", l.defaultBurst)
	}
}

func TestLimiter_Wait(t *testing.T) {
	limiter := NewLimiter(100, 1)
	ctx := context.Background()

	if err := limiter.Wait(ctx, "https://www.ssp.am.gov.br/anuario.pdf"); err != nil {
		t.Errorf("wait failed: %v", err)
	}
	if err := limiter.Wait(ctx, "https://dados.am.gov.br/boletim.html"); err != nil {
		t.Errorf("wait failed: %v", err)
	}
	if err := limiter.Wait(ctx, "anuario.pdf"); err == nil {
		t.Error("expected an error for a URL without host")
	}
}

func TestLimiter_PerHost(t *testing.T) {
	limiter := NewLimiter(1, 1)

	if !limiter.Allow("https://www.ssp.am.gov.br/a.pdf") {
		t.Error("first request should pass")
	}
	if limiter.Allow("https://WWW.SSP.AM.GOV.BR/b.pdf") {
		t.Error("second request to the same host should be throttled")
	}
	if !limiter.Allow("https://dados.am.gov.br/c.pdf") {
		t.Error("other hosts keep their own budget")
	}
}

func TestLimiter_WaitHonorsContext(t *testing.T) {
	limiter := NewLimiter(0.01, 1)
	url := "https://www.ssp.am.gov.br/a.pdf"
	_ = limiter.Wait(context.Background(), url)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if err := limiter.Wait(ctx, url); err == nil {
		t.Error("expected wait to fail once the context deadline is too short")
	}
}

func TestLimiter_SlowDown(t *testing.T) {
	limiter := NewLimiter(10, 10)
	url := "https://slow.example.org/anuario.pdf"

	limiter.SlowDown(url, 10*time.Second)
	lim := limiter.forHost("slow.example.org")
	if lim.Limit() != 0.1 {
		t.Errorf("expected 0.1 rps after crawl delay, got %v", lim.Limit())
	}
	if lim.Burst() != 1 {
		t.Errorf("expected burst 1 after crawl delay, got %d", lim.Burst())
	}

	// A shorter delay never speeds a host back up
	limiter.SlowDown(url, time.Second)
	if lim.Limit() != 0.1 {
		t.Errorf("rate was raised to %v", lim.Limit())
	}

	if fast := limiter.forHost("fast.example.org"); fast.Limit() != 10 {
		t.Errorf("other hosts should keep the default rate, got %v", fast.Limit())
	}
}
