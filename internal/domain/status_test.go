package domain

import "testing"

func TestUserTransitions(t *testing.T) {
	tests := []struct {
		status     string
		canApprove bool
		canReject  bool
	}{
		{UserPending, true, true},
		{UserApproved, false, false},
		{UserRejected, false, false},
		{"", false, false},
	}

	for _, tt := range tests {
		u := User{Status: tt.status}
		if got := u.CanApprove(); got != tt.canApprove {
			t.Errorf("CanApprove with status %q: got %v, want %v", tt.status, got, tt.canApprove)
		}
		if got := u.CanReject(); got != tt.canReject {
			t.Errorf("CanReject with status %q: got %v, want %v", tt.status, got, tt.canReject)
		}
	}
}

func TestPaymentTransitions(t *testing.T) {
	tests := []struct {
		status    string
		canVerify bool
		canReject bool
	}{
		{PaymentPendingVerification, true, true},
		{PaymentVerified, false, false},
		{PaymentRejected, false, false},
		{"", false, false},
	}

	for _, tt := range tests {
		p := Payment{Status: tt.status}
		if got := p.CanVerify(); got != tt.canVerify {
			t.Errorf("CanVerify with status %q: got %v, want %v", tt.status, got, tt.canVerify)
		}
		if got := p.CanReject(); got != tt.canReject {
			t.Errorf("CanReject with status %q: got %v, want %v", tt.status, got, tt.canReject)
		}
	}
}

func TestBlogStatusLabel(t *testing.T) {
	if got := (Blog{IsActive: true}).StatusLabel(); got != "active" {
		t.Errorf("active blog: got %q", got)
	}
	if got := (Blog{IsActive: false}).StatusLabel(); got != "inactive" {
		t.Errorf("inactive blog: got %q", got)
	}
}
