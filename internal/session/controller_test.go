package session

import (
	"context"
	"testing"

	"github.com/thanvish21/systemx/internal/profile"
	"github.com/thanvish21/systemx/internal/store"
)

func openRepo(t *testing.T) store.ProfileRepo {
	t.Helper()
	s, err := store.Open(":memory:")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s.ProfileRepo()
}

func completedProfile(codename string) profile.Profile {
	p := profile.Defaults()
	p.Codename = codename
	p.DailyStudyTime = 5
	p.TargetPercentile = "99+"
	return p
}

func TestInitialPhaseUnauthenticated(t *testing.T) {
	c := NewController(openRepo(t))
	if err := c.Boot(context.Background()); err != nil {
		t.Fatalf("boot: %v", err)
	}
	if c.Phase() != Unauthenticated {
		t.Errorf("phase = %v, want unauthenticated", c.Phase())
	}
}

func TestLoginThenDiagnosticReachesActive(t *testing.T) {
	ctx := context.Background()
	repo := openRepo(t)
	c := NewController(repo)

	phase, err := c.Login(ctx, "AIR_ONE_2025")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if phase != Onboarding {
		t.Errorf("phase after login = %v, want onboarding", phase)
	}

	phase, err = c.CompleteDiagnostic(ctx, completedProfile(""))
	if err != nil {
		t.Fatalf("complete diagnostic: %v", err)
	}
	if phase != Active {
		t.Errorf("phase after diagnostic = %v, want active", phase)
	}

	// Entering Active must have persisted the record.
	stored, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if stored == nil || stored.Codename != "AIR_ONE_2025" {
		t.Fatalf("stored profile = %+v, want codename AIR_ONE_2025", stored)
	}
}

func TestRestartWithSameIdentityResumesActive(t *testing.T) {
	ctx := context.Background()
	repo := openRepo(t)

	c := NewController(repo)
	if _, err := c.Login(ctx, "A"); err != nil {
		t.Fatal(err)
	}
	if _, err := c.CompleteDiagnostic(ctx, completedProfile("")); err != nil {
		t.Fatal(err)
	}
	want := c.Snapshot().Profile

	// Simulated restart: fresh controller over the same store.
	c2 := NewController(repo)
	if err := c2.Boot(ctx); err != nil {
		t.Fatalf("boot: %v", err)
	}
	phase, err := c2.Login(ctx, "A")
	if err != nil {
		t.Fatal(err)
	}
	if phase != Active {
		t.Errorf("phase after returning login = %v, want active", phase)
	}
	got := c2.Snapshot().Profile
	if got == nil || *got != *want {
		t.Errorf("reloaded profile = %+v, want %+v", got, want)
	}
}

func TestIdentityMismatchDropsStaleProfile(t *testing.T) {
	ctx := context.Background()
	repo := openRepo(t)

	c := NewController(repo)
	if _, err := c.Login(ctx, "A"); err != nil {
		t.Fatal(err)
	}
	if _, err := c.CompleteDiagnostic(ctx, completedProfile("")); err != nil {
		t.Fatal(err)
	}

	c2 := NewController(repo)
	if err := c2.Boot(ctx); err != nil {
		t.Fatal(err)
	}
	phase, err := c2.Login(ctx, "B")
	if err != nil {
		t.Fatal(err)
	}
	if phase != Onboarding {
		t.Errorf("phase after mismatched login = %v, want onboarding", phase)
	}
	if c2.Snapshot().Profile != nil {
		t.Error("stale profile retained in memory")
	}
	stored, err := repo.Load(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if stored != nil {
		t.Errorf("stale profile retained in storage: %+v", stored)
	}
}

func TestLogoutClearsEverything(t *testing.T) {
	ctx := context.Background()
	repo := openRepo(t)

	c := NewController(repo)
	if _, err := c.Login(ctx, "A"); err != nil {
		t.Fatal(err)
	}
	if _, err := c.CompleteDiagnostic(ctx, completedProfile("")); err != nil {
		t.Fatal(err)
	}

	phase, err := c.Logout(ctx)
	if err != nil {
		t.Fatalf("logout: %v", err)
	}
	if phase != Unauthenticated {
		t.Errorf("phase after logout = %v, want unauthenticated", phase)
	}
	snap := c.Snapshot()
	if snap.Identity != "" || snap.Profile != nil {
		t.Errorf("session not cleared: %+v", snap)
	}
	stored, err := repo.Load(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if stored != nil {
		t.Errorf("persisted record survived logout: %+v", stored)
	}
}

func TestIncompleteProfileNeverPersisted(t *testing.T) {
	ctx := context.Background()
	repo := openRepo(t)

	c := NewController(repo)
	if _, err := c.Login(ctx, "A"); err != nil {
		t.Fatal(err)
	}

	bad := completedProfile("")
	bad.DailyStudyTime = 0
	if _, err := c.CompleteDiagnostic(ctx, bad); err == nil {
		t.Fatal("expected error persisting incomplete profile")
	}
	stored, err := repo.Load(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if stored != nil {
		t.Errorf("incomplete profile persisted: %+v", stored)
	}
}

func TestDiagnosticWithoutIdentityRejected(t *testing.T) {
	c := NewController(openRepo(t))
	if _, err := c.CompleteDiagnostic(context.Background(), completedProfile("")); err == nil {
		t.Fatal("expected error completing diagnostic without identity")
	}
}
