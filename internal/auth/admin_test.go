package auth

import "testing"

func TestAdminCheck(t *testing.T) {
	admin, err := NewAdmin("admin", "hunter2secret")
	if err != nil {
		t.Fatalf("NewAdmin: %v", err)
	}

	if !admin.Check("admin", "hunter2secret") {
		t.Error("expected valid credentials to pass")
	}
	if admin.Check("admin", "wrong-password") {
		t.Error("expected wrong password to fail")
	}
	if admin.Check("nobody", "hunter2secret") {
		t.Error("expected wrong username to fail")
	}
	if admin.Check("nobody", "wrong-password") {
		t.Error("expected wrong username and password to fail")
	}
}

func TestAdminCheckEmptyPassword(t *testing.T) {
	admin, err := NewAdmin("admin", "hunter2secret")
	if err != nil {
		t.Fatalf("NewAdmin: %v", err)
	}

	if admin.Check("admin", "") {
		t.Error("expected empty password to fail")
	}
}
