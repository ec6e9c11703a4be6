package service

import (
	"errors"
	"testing"
)

func TestAuthLoginAndValidate(t *testing.T) {
	svc := NewAuthService()

	resp, err := svc.Login("admin", "password123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if resp.Token == "" || resp.CounselorID == "" {
		t.Fatalf("login response = %+v", resp)
	}

	claims, err := svc.ValidateToken(resp.Token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.CounselorID != resp.CounselorID {
		t.Errorf("claims counselor = %q, want %q", claims.CounselorID, resp.CounselorID)
	}
}

func TestAuthLoginRejectsBadCredentials(t *testing.T) {
	svc := NewAuthService()

	if _, err := svc.Login("admin", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("err = %v, want ErrInvalidCredentials", err)
	}
	if _, err := svc.Login("nobody", "password123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestAuthValidateRejectsGarbage(t *testing.T) {
	svc := NewAuthService()

	if _, err := svc.ValidateToken("not.a.token"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("err = %v, want ErrInvalidToken", err)
	}
}
