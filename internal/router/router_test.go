package router

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hearth/internal/model"
	"hearth/internal/screens"
	"hearth/internal/state"
)

var fixedNow = time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC)

func TestRoute(t *testing.T) {
	data := model.Default(fixedNow)
	user := &model.User{ID: "stacey", Name: "Stacey"}

	tests := []struct {
		name   string
		screen model.Screen
		want   model.Screen
	}{
		{name: "dashboard", screen: model.ScreenDashboard, want: model.ScreenDashboard},
		{name: "care circle", screen: model.ScreenCareCircle, want: model.ScreenCareCircle},
		{name: "projects", screen: model.ScreenProjects, want: model.ScreenProjects},
		{name: "pet and baby", screen: model.ScreenPetBabyLog, want: model.ScreenPetBabyLog},
		{name: "vault", screen: model.ScreenVault, want: model.ScreenVault},
		{name: "memories", screen: model.ScreenMemories, want: model.ScreenMemories},
		{name: "unknown falls back", screen: model.Screen("Settings"), want: model.ScreenDashboard},
		{name: "empty falls back", screen: "", want: model.ScreenDashboard},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := Route(state.Session{CurrentUser: user, Screen: tt.screen}, data)
			require.NotNil(t, view)
			assert.Equal(t, tt.want, view.Screen())
		})
	}
}

func TestRouteIsPure(t *testing.T) {
	data := model.Default(fixedNow)
	before := data.Clone()
	session := state.Session{Screen: model.ScreenMemories}

	first := Route(session, data, WithMemoryOrder(model.OldestFirst))
	second := Route(session, data, WithMemoryOrder(model.OldestFirst))

	assert.Equal(t, first, second)
	assert.Equal(t, before, data)
}

func TestRouteNilData(t *testing.T) {
	view := Route(state.Session{Screen: model.ScreenCareCircle}, nil)
	cc, ok := view.(screens.CareCircleView)
	require.True(t, ok)
	assert.Empty(t, cc.ChatMessages)
}

func TestRouteVault(t *testing.T) {
	data := model.Default(fixedNow)

	locked := Route(state.Session{Screen: model.ScreenVault}, data).(screens.VaultView)
	assert.True(t, locked.Locked)
	assert.Empty(t, locked.Logins)

	open := Route(state.Session{Screen: model.ScreenVault, VaultUnlocked: true}, data).(screens.VaultView)
	assert.False(t, open.Locked)
	assert.Len(t, open.Logins, len(data.VaultLogins))
	assert.Len(t, open.Documents, len(data.Documents))
}

func TestRouteMemoriesOrder(t *testing.T) {
	data := model.Default(fixedNow)
	session := state.Session{Screen: model.ScreenMemories}

	newest := Route(session, data).(screens.MemoriesView)
	oldest := Route(session, data, WithMemoryOrder(model.OldestFirst)).(screens.MemoriesView)

	require.Len(t, newest.Memories, len(data.Memories))
	assert.Equal(t, data.Memories[0].ID, newest.Memories[0].ID)
	assert.Equal(t, data.Memories[0].ID, oldest.Memories[len(oldest.Memories)-1].ID)
	assert.Equal(t, model.OldestFirst, oldest.Order)
}

func TestRouteDashboardUser(t *testing.T) {
	data := model.Default(fixedNow)
	user := &model.User{ID: "john", Name: "John"}
	view := Route(state.Session{CurrentUser: user}, data).(screens.DashboardView)
	assert.Equal(t, user, view.User)
	assert.Len(t, view.CalendarEvents, len(data.CalendarEvents))
}
