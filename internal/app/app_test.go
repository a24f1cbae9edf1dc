package app

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/thanvish21/systemx/internal/mentor"
	"github.com/thanvish21/systemx/internal/profile"
	"github.com/thanvish21/systemx/internal/screens/dashboard"
	"github.com/thanvish21/systemx/internal/screens/diagnostic"
	"github.com/thanvish21/systemx/internal/screens/login"
	"github.com/thanvish21/systemx/internal/session"
	"github.com/thanvish21/systemx/internal/store"
)

// testModel boots a model over an in-memory store, optionally seeded with
// a persisted profile from an earlier run.
func testModel(t *testing.T, seed *profile.Profile) (AppModel, store.ProfileRepo) {
	t.Helper()
	s, err := store.Open(":memory:")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	repo := s.ProfileRepo()
	if seed != nil {
		if err := repo.Save(context.Background(), *seed); err != nil {
			t.Fatalf("seed profile: %v", err)
		}
	}

	ctrl := session.NewController(repo)
	if err := ctrl.Boot(context.Background()); err != nil {
		t.Fatalf("boot: %v", err)
	}
	return newAppModel(ctrl, mentor.New(nil)), repo
}

func update(t *testing.T, m AppModel, msg tea.Msg) AppModel {
	t.Helper()
	updated, _ := m.Update(msg)
	return updated.(AppModel)
}

func completedProfile(codename string) profile.Profile {
	p := profile.Defaults()
	p.Codename = codename
	return p
}

func TestAppStartsAtLogin(t *testing.T) {
	m, _ := testModel(t, nil)
	if _, ok := m.router.Active().(*login.LoginScreen); !ok {
		t.Fatalf("initial screen = %T, want login", m.router.Active())
	}
}

func TestFirstLoginEntersDiagnostic(t *testing.T) {
	m, _ := testModel(t, nil)
	m = update(t, m, login.SubmittedMsg{Codename: "RAGHAV"})

	if _, ok := m.router.Active().(*diagnostic.DiagnosticScreen); !ok {
		t.Fatalf("screen after first login = %T, want diagnostic", m.router.Active())
	}
}

func TestDiagnosticCompletionEntersDashboard(t *testing.T) {
	m, repo := testModel(t, nil)
	m = update(t, m, login.SubmittedMsg{Codename: "RAGHAV"})
	m = update(t, m, diagnostic.CompletedMsg{Profile: completedProfile("")})

	if _, ok := m.router.Active().(*dashboard.DashboardScreen); !ok {
		t.Fatalf("screen after calibration = %T, want dashboard", m.router.Active())
	}

	saved, err := repo.Load(context.Background())
	if err != nil || saved == nil {
		t.Fatalf("expected persisted profile, got %v, %v", saved, err)
	}
	if saved.Codename != "RAGHAV" {
		t.Errorf("persisted codename = %q", saved.Codename)
	}
}

func TestReturningLoginSkipsDiagnostic(t *testing.T) {
	seed := completedProfile("RAGHAV")
	m, _ := testModel(t, &seed)

	m = update(t, m, login.SubmittedMsg{Codename: "RAGHAV"})
	if _, ok := m.router.Active().(*dashboard.DashboardScreen); !ok {
		t.Fatalf("screen for returning codename = %T, want dashboard", m.router.Active())
	}
}

func TestMismatchedLoginRunsDiagnosticAgain(t *testing.T) {
	seed := completedProfile("OLD_USER")
	m, repo := testModel(t, &seed)

	m = update(t, m, login.SubmittedMsg{Codename: "NEW_USER"})
	if _, ok := m.router.Active().(*diagnostic.DiagnosticScreen); !ok {
		t.Fatalf("screen for mismatched codename = %T, want diagnostic", m.router.Active())
	}

	stale, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if stale != nil {
		t.Error("expected stale record dropped on mismatched login")
	}
}

func TestLogoutReturnsToLogin(t *testing.T) {
	m, repo := testModel(t, nil)
	m = update(t, m, login.SubmittedMsg{Codename: "RAGHAV"})
	m = update(t, m, diagnostic.CompletedMsg{Profile: completedProfile("")})
	m = update(t, m, dashboard.LogoutMsg{})

	if _, ok := m.router.Active().(*login.LoginScreen); !ok {
		t.Fatalf("screen after logout = %T, want login", m.router.Active())
	}
	if rec, _ := repo.Load(context.Background()); rec != nil {
		t.Error("expected profile deleted on logout")
	}
}

func TestDiagnosticAbortLogsOut(t *testing.T) {
	m, _ := testModel(t, nil)
	m = update(t, m, login.SubmittedMsg{Codename: "RAGHAV"})
	m = update(t, m, diagnostic.AbortedMsg{})

	if _, ok := m.router.Active().(*login.LoginScreen); !ok {
		t.Fatalf("screen after abort = %T, want login", m.router.Active())
	}
	if m.ctrl.Phase() != session.Unauthenticated {
		t.Errorf("phase after abort = %v", m.ctrl.Phase())
	}
}
