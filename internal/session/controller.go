// Package session owns the top-level lifecycle: who is logged in, whether a
// matching profile exists, and the only writes to durable storage.
package session

import (
	"context"
	"fmt"

	"github.com/thanvish21/systemx/internal/profile"
	"github.com/thanvish21/systemx/internal/store"
)

// Phase is the controller's current lifecycle phase.
type Phase int

const (
	// Unauthenticated: no identity. Shows the login screen.
	Unauthenticated Phase = iota
	// Onboarding: identity set, profile absent or mismatched. Shows the
	// diagnostic.
	Onboarding
	// Active: identity and matching profile present. Shows the dashboard.
	Active
)

func (p Phase) String() string {
	switch p {
	case Unauthenticated:
		return "unauthenticated"
	case Onboarding:
		return "onboarding"
	case Active:
		return "active"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// State is an immutable snapshot of the session handed to consumers.
type State struct {
	Phase    Phase
	Identity string
	Profile  *profile.Profile
}

// Controller drives the login → diagnostic → dashboard state machine.
// It is the single writer to the profile store.
type Controller struct {
	repo     store.ProfileRepo
	identity string
	profile  *profile.Profile
}

// NewController creates a Controller over the given profile repository.
func NewController(repo store.ProfileRepo) *Controller {
	return &Controller{repo: repo}
}

// Boot loads any persisted profile. A corrupt record is treated as absent
// by the store, so Boot never fails on bad data.
func (c *Controller) Boot(ctx context.Context) error {
	p, err := c.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("load persisted profile: %w", err)
	}
	c.profile = p
	return nil
}

// Phase derives the current phase from identity and profile.
func (c *Controller) Phase() Phase {
	switch {
	case c.identity == "":
		return Unauthenticated
	case c.profile == nil || c.profile.Codename != c.identity:
		return Onboarding
	default:
		return Active
	}
}

// Snapshot returns the current session state. The profile is copied so
// consumers cannot mutate controller state.
func (c *Controller) Snapshot() State {
	s := State{Phase: c.Phase(), Identity: c.identity}
	if c.profile != nil {
		p := *c.profile
		s.Profile = &p
	}
	return s
}

// Login sets the session identity. If a stored profile exists under a
// different codename it is stale: it is dropped from memory and storage,
// and the candidate redoes the diagnostic.
func (c *Controller) Login(ctx context.Context, identity string) (Phase, error) {
	if identity == "" {
		return c.Phase(), fmt.Errorf("identity must not be empty")
	}
	c.identity = identity

	if c.profile != nil && c.profile.Codename != identity {
		c.profile = nil
		if err := c.repo.Delete(ctx); err != nil {
			return c.Phase(), fmt.Errorf("drop stale profile: %w", err)
		}
	}
	return c.Phase(), nil
}

// CompleteDiagnostic attaches the session identity to the diagnostic result
// and persists it. This is the only write that creates the durable record.
func (c *Controller) CompleteDiagnostic(ctx context.Context, p profile.Profile) (Phase, error) {
	if c.identity == "" {
		return c.Phase(), fmt.Errorf("no identity: cannot complete diagnostic")
	}
	p.Codename = c.identity
	if err := p.Validate(); err != nil {
		return c.Phase(), fmt.Errorf("incomplete profile: %w", err)
	}
	if err := c.repo.Save(ctx, p); err != nil {
		return c.Phase(), fmt.Errorf("persist profile: %w", err)
	}
	c.profile = &p
	return c.Phase(), nil
}

// Logout clears identity and profile and deletes the persisted record.
func (c *Controller) Logout(ctx context.Context) (Phase, error) {
	c.identity = ""
	c.profile = nil
	if err := c.repo.Delete(ctx); err != nil {
		return c.Phase(), fmt.Errorf("delete persisted profile: %w", err)
	}
	return c.Phase(), nil
}
