package types

import "testing"

func TestValidateIDPresent(t *testing.T) {
	t.Parallel()
	if err := ValidateIDPresent("p-1", "propertyId"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ValidateIDPresent("  ", "propertyId"); err == nil {
		t.Fatal("blank id accepted")
	}
}

func TestValidateEmail(t *testing.T) {
	t.Parallel()
	for _, ok := range []string{"a@b.com", "user@example.org"} {
		if err := ValidateEmail(ok); err != nil {
			t.Errorf("ValidateEmail(%q) = %v", ok, err)
		}
	}
	for _, bad := range []string{"", "nodomain@", "@nouser", "plain"} {
		if err := ValidateEmail(bad); err == nil {
			t.Errorf("ValidateEmail(%q) accepted", bad)
		}
	}
}

func TestValidateLogin(t *testing.T) {
	t.Parallel()
	if err := ValidateLogin(LoginRequest{Email: "a@b.com", Password: "x"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ValidateLogin(LoginRequest{Email: "a@b.com"}); err == nil {
		t.Fatal("empty password accepted")
	}
}

func TestValidateRegister(t *testing.T) {
	t.Parallel()
	if err := ValidateRegister(RegisterRequest{Email: "a@b.com", Password: "secret1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ValidateRegister(RegisterRequest{Email: "a@b.com", Password: "short"}); err == nil {
		t.Fatal("short password accepted")
	}
}
