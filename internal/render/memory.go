// Package render provides in-memory implementations of the UI surface
// interfaces. They back both the HTTP delivery layer, which replays a
// sync against a recording surface to produce a patch, and the tests,
// which assert on recorded state instead of a real rendering
// environment.
package render

import (
	"github.com/driftline/storefront/internal/domain"
)

type hookState struct {
	text    string
	value   string
	hidden  bool
	enabled bool
}

type mediaState struct {
	active bool
	hidden bool
}

// SurfaceConfig describes the hook points a MemorySurface exposes.
// Hooks not listed are absent: writes to them are dropped, mirroring a
// page that does not render that element.
type SurfaceConfig struct {
	Hooks             []string
	OptionInputs      []domain.OptionInput
	ExplicitVariantID string
	MediaIDs          []string
	ExclusiveMedia    bool
	DisableURLUpdates bool
}

// MemorySurface is a recording implementation of domain.ProductSurface.
type MemorySurface struct {
	hooks             map[string]*hookState
	inputs            []domain.OptionInput
	explicitVariantID string
	mediaOrder        []string
	media             map[string]*mediaState
	exclusiveMedia    bool
	urlParams         map[string]string
	urlUpdatesOff     bool
	mutations         int
}

// NewMemorySurface creates a surface exposing the configured hooks.
func NewMemorySurface(cfg SurfaceConfig) *MemorySurface {
	s := &MemorySurface{
		hooks:             make(map[string]*hookState, len(cfg.Hooks)),
		inputs:            append([]domain.OptionInput(nil), cfg.OptionInputs...),
		explicitVariantID: cfg.ExplicitVariantID,
		media:             make(map[string]*mediaState, len(cfg.MediaIDs)),
		exclusiveMedia:    cfg.ExclusiveMedia,
		urlParams:         make(map[string]string),
		urlUpdatesOff:     cfg.DisableURLUpdates,
	}
	for _, hook := range cfg.Hooks {
		s.hooks[hook] = &hookState{enabled: true}
	}
	for _, id := range cfg.MediaIDs {
		s.mediaOrder = append(s.mediaOrder, id)
		s.media[id] = &mediaState{}
	}
	return s
}

func (s *MemorySurface) HasHook(hook string) bool {
	_, ok := s.hooks[hook]
	return ok
}

func (s *MemorySurface) SetText(hook, text string) {
	if h, ok := s.hooks[hook]; ok {
		h.text = text
		s.mutations++
	}
}

func (s *MemorySurface) SetValue(hook, value string) {
	if h, ok := s.hooks[hook]; ok {
		h.value = value
		s.mutations++
	}
}

func (s *MemorySurface) SetHidden(hook string, hidden bool) {
	if h, ok := s.hooks[hook]; ok {
		h.hidden = hidden
		s.mutations++
	}
}

func (s *MemorySurface) SetEnabled(hook string, enabled bool) {
	if h, ok := s.hooks[hook]; ok {
		h.enabled = enabled
		s.mutations++
	}
}

func (s *MemorySurface) OptionInputs() []domain.OptionInput {
	return append([]domain.OptionInput(nil), s.inputs...)
}

func (s *MemorySurface) ExplicitVariantID() string { return s.explicitVariantID }

func (s *MemorySurface) MediaIDs() []string {
	return append([]string(nil), s.mediaOrder...)
}

func (s *MemorySurface) SetMediaActive(id string, active bool) {
	if m, ok := s.media[id]; ok {
		m.active = active
		s.mutations++
	}
}

func (s *MemorySurface) SetMediaHidden(id string, hidden bool) {
	if m, ok := s.media[id]; ok {
		m.hidden = hidden
		s.mutations++
	}
}

func (s *MemorySurface) ExclusiveMedia() bool { return s.exclusiveMedia }

func (s *MemorySurface) ReplaceURLParam(key, value string) error {
	if s.urlUpdatesOff {
		return domain.ErrURLUpdateUnsupported
	}
	s.urlParams[key] = value
	s.mutations++
	return nil
}

// Event-source mutators, used to simulate user interaction between
// controller events.

func (s *MemorySurface) SetOptionInputs(inputs []domain.OptionInput) {
	s.inputs = append([]domain.OptionInput(nil), inputs...)
}

func (s *MemorySurface) SetExplicitVariantID(id string) { s.explicitVariantID = id }

// Recorded-state accessors.

func (s *MemorySurface) Text(hook string) string {
	if h, ok := s.hooks[hook]; ok {
		return h.text
	}
	return ""
}

func (s *MemorySurface) Value(hook string) string {
	if h, ok := s.hooks[hook]; ok {
		return h.value
	}
	return ""
}

func (s *MemorySurface) Hidden(hook string) bool {
	if h, ok := s.hooks[hook]; ok {
		return h.hidden
	}
	return false
}

func (s *MemorySurface) Enabled(hook string) bool {
	if h, ok := s.hooks[hook]; ok {
		return h.enabled
	}
	return false
}

func (s *MemorySurface) MediaActive(id string) bool {
	if m, ok := s.media[id]; ok {
		return m.active
	}
	return false
}

func (s *MemorySurface) MediaHidden(id string) bool {
	if m, ok := s.media[id]; ok {
		return m.hidden
	}
	return false
}

// ActiveMediaID returns the id of the active media item, or "" when
// none is active.
func (s *MemorySurface) ActiveMediaID() string {
	for _, id := range s.mediaOrder {
		if s.media[id].active {
			return id
		}
	}
	return ""
}

func (s *MemorySurface) URLParam(key string) (string, bool) {
	v, ok := s.urlParams[key]
	return v, ok
}

// Mutations returns how many writes the surface has absorbed. Useful
// for asserting that a no-match resolution performed no partial update.
func (s *MemorySurface) Mutations() int { return s.mutations }
