// Package router maps the session's active screen to the view it shows.
package router

import (
	"hearth/internal/model"
	"hearth/internal/screens"
	"hearth/internal/state"
)

type options struct {
	memoryOrder model.MemoryOrder
}

type Option func(*options)

// WithMemoryOrder sets the display order of the memories screen.
func WithMemoryOrder(order model.MemoryOrder) Option {
	return func(o *options) { o.memoryOrder = order }
}

// Route returns the view for session.Screen. It has no side effects and is
// defined for every input: unknown screens and a nil aggregate fall back to
// the dashboard and an empty dataset.
func Route(session state.Session, data *model.AppData, opts ...Option) screens.View {
	o := options{memoryOrder: model.NewestFirst}
	for _, opt := range opts {
		opt(&o)
	}
	if data == nil {
		data = &model.AppData{}
	}

	switch session.Screen {
	case model.ScreenCareCircle:
		return screens.CareCircle(data)
	case model.ScreenProjects:
		return screens.Projects(data)
	case model.ScreenPetBabyLog:
		return screens.PetBabyLog(data)
	case model.ScreenVault:
		return screens.Vault(session.VaultUnlocked, data)
	case model.ScreenMemories:
		return screens.Memories(o.memoryOrder, data)
	default:
		return screens.Dashboard(session.CurrentUser, data)
	}
}
