package validate

import "testing"

func TestEmail(t *testing.T) {
	if err := Email("alice@example.com"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, bad := range []string{"", "no-at-sign", "a@b", "spaces in@example.com"} {
		if err := Email(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestCreateUser(t *testing.T) {
	if err := CreateUser("alice_1", "Alice", "alice@example.com"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := CreateUser("", "Alice", "alice@example.com"); err == nil {
		t.Fatalf("expected error for empty userId")
	}
	if err := CreateUser("UPPER", "Alice", "alice@example.com"); err == nil {
		t.Fatalf("expected error for uppercase userId")
	}
	if err := CreateUser("alice", "", "alice@example.com"); err == nil {
		t.Fatalf("expected error for empty name")
	}
}

func TestMaxLen(t *testing.T) {
	if err := MaxLen("bio", "short", 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := MaxLen("bio", "this is too long", 5); err == nil {
		t.Fatalf("expected error for over-limit value")
	}
}
