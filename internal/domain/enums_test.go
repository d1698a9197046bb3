package domain

import "testing"

func TestBookStatus_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status BookStatus
		want   bool
	}{
		{BookStatusPlanning, true},
		{BookStatusActive, true},
		{BookStatusOnHold, true},
		{BookStatusCompleted, true},
		{BookStatusCancelled, true},
		{BookStatus("ARCHIVED"), false},
		{BookStatus(""), false},
	}
	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			t.Parallel()
			if got := tt.status.IsValid(); got != tt.want {
				t.Errorf("BookStatus(%q).IsValid() = %v, want %v", tt.status, got, tt.want)
			}
		})
	}
}

func TestBookPriority_IsValid(t *testing.T) {
	t.Parallel()

	for _, p := range []BookPriority{BookPriorityLow, BookPriorityMedium, BookPriorityHigh} {
		if !p.IsValid() {
			t.Errorf("BookPriority(%q).IsValid() = false, want true", p)
		}
	}
	if BookPriority("low").IsValid() {
		t.Error("priorities are case-sensitive")
	}
}

func TestTaskStatus_IsValid(t *testing.T) {
	t.Parallel()

	if !TaskStatusInProgress.IsValid() {
		t.Error("IN_PROGRESS should be valid")
	}
	if TaskStatus("BLOCKED").IsValid() {
		t.Error("BLOCKED should be invalid")
	}
}

func TestOrgRole(t *testing.T) {
	t.Parallel()

	tests := []struct {
		role string
		want string
	}{
		{"admin", OrgRoleAdmin},
		{"member", OrgRoleMember},
		{"editor", OrgRoleMember},
		{"author", OrgRoleMember},
		{"Admin", OrgRoleMember},
		{"", OrgRoleMember},
	}
	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			t.Parallel()
			if got := OrgRole(tt.role); got != tt.want {
				t.Errorf("OrgRole(%q) = %q, want %q", tt.role, got, tt.want)
			}
		})
	}
}
