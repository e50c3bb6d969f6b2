package auth

import (
	"context"
	"testing"
)

func TestSession_IsGuest(t *testing.T) {
	s := Session{Role: RoleGuest}
	if !s.IsGuest() {
		t.Fatalf("expected guest")
	}
	if (Session{Role: RoleCustomer}).IsGuest() {
		t.Fatalf("did not expect guest")
	}
}

func TestRole_Satisfies(t *testing.T) {
	tests := []struct {
		have, need Role
		want       bool
	}{
		{RoleAdmin, RoleAdmin, true},
		{RoleAdmin, RoleCustomer, true},
		{RoleCustomer, RoleCustomer, true},
		{RoleCustomer, RoleAdmin, false},
		{RoleGuest, RoleCustomer, false},
		{RoleGuest, RoleGuest, true},
		{Role("root"), RoleGuest, false},
		{RoleAdmin, Role("root"), false},
	}
	for _, tt := range tests {
		if got := tt.have.Satisfies(tt.need); got != tt.want {
			t.Errorf("%q.Satisfies(%q) = %v, want %v", tt.have, tt.need, got, tt.want)
		}
	}
}

func TestParseRole(t *testing.T) {
	if r, ok := ParseRole("  Admin "); !ok || r != RoleAdmin {
		t.Fatalf("expected admin, got %q ok=%v", r, ok)
	}
	if _, ok := ParseRole("superuser"); ok {
		t.Fatalf("did not expect superuser to parse")
	}
}

func TestCredential_Present(t *testing.T) {
	if (Credential{}).Present() {
		t.Fatalf("empty credential must not be present")
	}
	if (Credential{Token: "   "}).Present() {
		t.Fatalf("blank credential must not be present")
	}
	if !(Credential{Token: "abc"}).Present() {
		t.Fatalf("expected present credential")
	}
}

func TestSessionContext_RoundTrip(t *testing.T) {
	ctx := context.Background()
	if _, ok := SessionFromContext(ctx); ok {
		t.Fatalf("expected no session")
	}
	if TokenFromContext(ctx) != "" {
		t.Fatalf("expected empty token")
	}

	s := &Session{Token: "tok", Role: RoleCustomer}
	ctx = WithSession(ctx, s)
	got, ok := SessionFromContext(ctx)
	if !ok || got != s {
		t.Fatalf("expected stored session, got %+v", got)
	}
	if TokenFromContext(ctx) != "tok" {
		t.Fatalf("expected token from context")
	}
	if WithSession(ctx, nil) != ctx {
		t.Fatalf("nil session must leave ctx unchanged")
	}
}

func TestSession_DisplayName(t *testing.T) {
	if got := (Session{Subject: "42"}).DisplayName(); got != "42" {
		t.Fatalf("got %q", got)
	}
	if got := (Session{Subject: "42", Email: "a@b.c"}).DisplayName(); got != "a@b.c" {
		t.Fatalf("got %q", got)
	}
	if got := (Session{Subject: "42", Email: "a@b.c", Name: "Ann"}).DisplayName(); got != "Ann" {
		t.Fatalf("got %q", got)
	}
}
