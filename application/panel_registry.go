package application

import (
	"context"
	"fmt"
	"sync"

	"ticketbot/domain/entities"
	"ticketbot/domain/interfaces"
	"ticketbot/domain/services"

	log "github.com/sirupsen/logrus"
)

// Binding is what a panel button resolves to
type Binding struct {
	PanelID int64
	GuildID int64
	Index   int
	Label   string
}

// PanelRegistry keeps every panel definition in memory so panel buttons keep working
// across restarts. Lookups that miss fall back to the store.
type PanelRegistry struct {
	panelRepo interfaces.PanelRepository

	mu     sync.RWMutex
	panels map[int64]*entities.Panel
}

// NewPanelRegistry creates an empty registry backed by the given repository
func NewPanelRegistry(panelRepo interfaces.PanelRepository) *PanelRegistry {
	return &PanelRegistry{
		panelRepo: panelRepo,
		panels:    make(map[int64]*entities.Panel),
	}
}

// RestoreAll loads every stored panel. Call before the gateway connection opens.
func (r *PanelRegistry) RestoreAll(ctx context.Context) (int, error) {
	panels, err := r.panelRepo.ListAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to restore panels: %w", err)
	}

	r.mu.Lock()
	for _, panel := range panels {
		r.panels[panel.ID] = panel
	}
	r.mu.Unlock()

	log.WithField("panelCount", len(panels)).Info("Restored ticket panels")
	return len(panels), nil
}

// Register makes a newly created panel resolvable
func (r *PanelRegistry) Register(panel *entities.Panel) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.panels[panel.ID] = panel
}

// Unregister drops a panel whose creation did not complete
func (r *PanelRegistry) Unregister(panelID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.panels, panelID)
}

// Len returns the number of registered panels
func (r *PanelRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.panels)
}

// Resolve maps a clicked panel button to its binding
func (r *PanelRegistry) Resolve(ctx context.Context, guildID, panelID int64, index int) (Binding, error) {
	panel, err := r.lookup(ctx, panelID)
	if err != nil {
		return Binding{}, err
	}
	if panel == nil || panel.GuildID != guildID {
		return Binding{}, services.NewValidationError("this ticket panel no longer exists")
	}

	label, ok := panel.Option(index)
	if !ok {
		return Binding{}, services.NewValidationError("this ticket option no longer exists")
	}

	return Binding{
		PanelID: panel.ID,
		GuildID: panel.GuildID,
		Index:   index,
		Label:   label,
	}, nil
}

func (r *PanelRegistry) lookup(ctx context.Context, panelID int64) (*entities.Panel, error) {
	r.mu.RLock()
	panel, ok := r.panels[panelID]
	r.mu.RUnlock()
	if ok {
		return panel, nil
	}

	panel, err := r.panelRepo.GetByID(ctx, panelID)
	if err != nil {
		return nil, &services.PersistenceError{Op: "load panel", Err: err}
	}
	if panel != nil {
		log.WithField("panelID", panelID).Debug("Panel loaded from store on demand")
		r.Register(panel)
	}
	return panel, nil
}
