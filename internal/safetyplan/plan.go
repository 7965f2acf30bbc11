// Package safetyplan stores and versions the user's crisis safety plan in
// the secure store.
package safetyplan

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/havenline/crisiscore/internal/model"
	"github.com/havenline/crisiscore/internal/storage"
)

const planKey = "safety_plan"

// fallbackContacts are injected when a plan is created with no emergency
// contacts: a plan with an empty contact list is a plan that fails exactly
// when it is needed.
var fallbackContacts = []model.EmergencyContact{
	{Name: "988 Suicide & Crisis Lifeline", Phone: "988", Relationship: "24/7 crisis line"},
	{Name: "Emergency Services", Phone: "911", Relationship: "emergency"},
}

// Manager provides safety plan CRUD over the secure store.
type Manager struct {
	store storage.Store
	now   func() time.Time
}

// NewManager creates a manager. A nil clock uses wall time.
func NewManager(store storage.Store, now func() time.Time) *Manager {
	if now == nil {
		now = time.Now
	}
	return &Manager{store: store, now: now}
}

// Create stores a new plan at version 1, injecting the fallback contacts if
// the input has none. An existing plan is an error; use Update.
func (m *Manager) Create(ctx context.Context, plan model.SafetyPlan) (model.SafetyPlan, error) {
	existing, err := m.Get(ctx)
	if err != nil {
		return model.SafetyPlan{}, err
	}
	if existing != nil {
		return model.SafetyPlan{}, fmt.Errorf("safetyplan: plan already exists (version %d)", existing.Version)
	}

	if len(plan.EmergencyContacts) == 0 {
		plan.EmergencyContacts = append([]model.EmergencyContact(nil), fallbackContacts...)
	}
	plan.Version = 1
	plan.LastUpdated = m.now().UTC()

	if err := m.write(ctx, plan); err != nil {
		return model.SafetyPlan{}, err
	}
	return plan, nil
}

// Get returns the stored plan, or nil when none exists.
func (m *Manager) Get(ctx context.Context) (*model.SafetyPlan, error) {
	data, err := m.store.Get(ctx, planKey)
	if err != nil {
		return nil, fmt.Errorf("safetyplan: read plan: %w", err)
	}
	if data == nil {
		return nil, nil
	}
	var plan model.SafetyPlan
	if err := json.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("safetyplan: decode plan: %w", err)
	}
	return &plan, nil
}

// Update applies updates over the stored plan, bumping the version and
// timestamp. Nil slices in updates keep the stored sections; non-nil slices
// replace them.
func (m *Manager) Update(ctx context.Context, updates model.SafetyPlan) (model.SafetyPlan, error) {
	existing, err := m.Get(ctx)
	if err != nil {
		return model.SafetyPlan{}, err
	}
	if existing == nil {
		return model.SafetyPlan{}, fmt.Errorf("safetyplan: no plan to update")
	}

	merged := *existing
	if updates.WarningSigns != nil {
		merged.WarningSigns = updates.WarningSigns
	}
	if updates.CopingStrategies != nil {
		merged.CopingStrategies = updates.CopingStrategies
	}
	if updates.SocialSupports != nil {
		merged.SocialSupports = updates.SocialSupports
	}
	if updates.ProfessionalContacts != nil {
		merged.ProfessionalContacts = updates.ProfessionalContacts
	}
	if updates.SafeEnvironmentSteps != nil {
		merged.SafeEnvironmentSteps = updates.SafeEnvironmentSteps
	}
	if updates.EmergencyContacts != nil {
		merged.EmergencyContacts = updates.EmergencyContacts
	}
	merged.Version = existing.Version + 1
	merged.LastUpdated = m.now().UTC()

	if err := m.write(ctx, merged); err != nil {
		return model.SafetyPlan{}, err
	}
	return merged, nil
}

func (m *Manager) write(ctx context.Context, plan model.SafetyPlan) error {
	data, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("safetyplan: encode plan: %w", err)
	}
	if err := m.store.Set(ctx, planKey, data); err != nil {
		return fmt.Errorf("safetyplan: write plan: %w", err)
	}
	return nil
}
