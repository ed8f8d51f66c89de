package auth

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/starford/doctrail/internal/apperr"
	"github.com/starford/doctrail/internal/testutil"
)

func testAuth(t *testing.T) *Service {
	t.Helper()
	db := testutil.TestStore(t)
	return NewService(db, NewTokenManager("test-secret", time.Hour))
}

func TestSignUpCreatesAdministrator(t *testing.T) {
	svc := testAuth(t)
	ctx := context.Background()

	exists, err := svc.AdminExists(ctx)
	if err != nil || exists {
		t.Fatalf("AdminExists = (%v, %v), want (false, nil)", exists, err)
	}

	user, token, err := svc.SignUp(ctx, "admin@example.com", "s3cret")
	if err != nil {
		t.Fatalf("SignUp: %v", err)
	}
	if user.ID == "" || token == "" {
		t.Fatal("missing user id or token")
	}

	claims, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.Subject != user.ID || claims.Email != "admin@example.com" {
		t.Errorf("claims = %+v", claims)
	}

	exists, err = svc.AdminExists(ctx)
	if err != nil || !exists {
		t.Errorf("AdminExists = (%v, %v) after sign-up, want (true, nil)", exists, err)
	}
}

func TestSignUpValidation(t *testing.T) {
	svc := testAuth(t)
	ctx := context.Background()

	for _, creds := range [][2]string{{"", "pw"}, {"a@b.c", ""}, {"  ", "pw"}} {
		if _, _, err := svc.SignUp(ctx, creds[0], creds[1]); !errors.Is(err, apperr.ErrValidation) {
			t.Errorf("SignUp(%q, %q): err = %v, want ErrValidation", creds[0], creds[1], err)
		}
	}
}

func TestSignUpSecondAccountDenied(t *testing.T) {
	svc := testAuth(t)
	ctx := context.Background()

	if _, _, err := svc.SignUp(ctx, "admin@example.com", "pw"); err != nil {
		t.Fatal(err)
	}
	if _, _, err := svc.SignUp(ctx, "other@example.com", "pw"); !errors.Is(err, apperr.ErrDenied) {
		t.Errorf("second sign-up: err = %v, want ErrDenied", err)
	}
}

func TestSignUpRaceAllowsExactlyOne(t *testing.T) {
	svc := testAuth(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, email := range []string{"a@example.com", "b@example.com"} {
		wg.Add(1)
		go func(i int, email string) {
			defer wg.Done()
			_, _, errs[i] = svc.SignUp(ctx, email, "pw")
		}(i, email)
	}
	wg.Wait()

	wins := 0
	for _, err := range errs {
		if err == nil {
			wins++
		} else if !errors.Is(err, apperr.ErrDenied) {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if wins != 1 {
		t.Errorf("wins = %d, want exactly 1", wins)
	}

	exists, err := svc.AdminExists(ctx)
	if err != nil || !exists {
		t.Errorf("AdminExists = (%v, %v) after race, want (true, nil)", exists, err)
	}

	// The losing account must have been rolled back: its credentials are gone.
	losses := 0
	for i, email := range []string{"a@example.com", "b@example.com"} {
		if errs[i] != nil {
			if _, _, err := svc.Login(ctx, email, "pw"); !errors.Is(err, apperr.ErrDenied) {
				t.Errorf("loser %q can still log in: %v", email, err)
			}
			losses++
		}
	}
	if losses != 1 {
		t.Errorf("losses = %d, want exactly 1", losses)
	}
}

func TestLogin(t *testing.T) {
	svc := testAuth(t)
	ctx := context.Background()

	user, _, err := svc.SignUp(ctx, "admin@example.com", "s3cret")
	if err != nil {
		t.Fatal(err)
	}

	got, token, err := svc.Login(ctx, "admin@example.com", "s3cret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if got.ID != user.ID || token == "" {
		t.Errorf("login = (%+v, %q)", got, token)
	}

	if _, _, err := svc.Login(ctx, "admin@example.com", "wrong"); !errors.Is(err, apperr.ErrDenied) {
		t.Errorf("wrong password: err = %v, want ErrDenied", err)
	}
	if _, _, err := svc.Login(ctx, "nobody@example.com", "s3cret"); !errors.Is(err, apperr.ErrDenied) {
		t.Errorf("unknown email: err = %v, want ErrDenied", err)
	}
	if _, _, err := svc.Login(ctx, "", ""); !errors.Is(err, apperr.ErrValidation) {
		t.Errorf("empty credentials: err = %v, want ErrValidation", err)
	}
}
