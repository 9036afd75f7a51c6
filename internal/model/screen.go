package model

import (
	"fmt"
	"strings"
)

// Screen identifies one full-page view. The set is closed.
type Screen string

const (
	ScreenDashboard  Screen = "Dashboard"
	ScreenCareCircle Screen = "Care Circle"
	ScreenProjects   Screen = "To-Do & Projects"
	ScreenPetBabyLog Screen = "Pet & Baby Log"
	ScreenVault      Screen = "Shared Secure Vault"
	ScreenMemories   Screen = "Memories"
)

var screens = []struct {
	screen Screen
	slug   string
}{
	{ScreenDashboard, "dashboard"},
	{ScreenCareCircle, "care-circle"},
	{ScreenProjects, "projects"},
	{ScreenPetBabyLog, "pet-baby-log"},
	{ScreenVault, "vault"},
	{ScreenMemories, "memories"},
}

// Screens lists every screen in navigation order.
func Screens() []Screen {
	out := make([]Screen, 0, len(screens))
	for _, s := range screens {
		out = append(out, s.screen)
	}
	return out
}

func (s Screen) Valid() bool {
	for _, known := range screens {
		if known.screen == s {
			return true
		}
	}
	return false
}

// Slug is the short command-line name of the screen.
func (s Screen) Slug() string {
	for _, known := range screens {
		if known.screen == s {
			return known.slug
		}
	}
	return ""
}

// ParseScreen accepts a slug or a display name, case-insensitively.
func ParseScreen(value string) (Screen, error) {
	v := strings.TrimSpace(value)
	for _, known := range screens {
		if strings.EqualFold(v, known.slug) || strings.EqualFold(v, string(known.screen)) {
			return known.screen, nil
		}
	}
	return "", fmt.Errorf("unknown screen %q", value)
}

// MemoryOrder is a display-only ordering of the memories collection.
type MemoryOrder string

const (
	NewestFirst MemoryOrder = "newest"
	OldestFirst MemoryOrder = "oldest"
)

func ParseMemoryOrder(value string) (MemoryOrder, error) {
	switch MemoryOrder(strings.ToLower(strings.TrimSpace(value))) {
	case "", NewestFirst:
		return NewestFirst, nil
	case OldestFirst:
		return OldestFirst, nil
	}
	return "", fmt.Errorf("unknown memory order %q", value)
}

// OrderMemories returns the memories in display order. Memories are stored
// newest first, so OldestFirst is the reverse. items is never modified.
func OrderMemories(items []MemoryItem, order MemoryOrder) []MemoryItem {
	out := make([]MemoryItem, len(items))
	if order == OldestFirst {
		for i, item := range items {
			out[len(items)-1-i] = item
		}
		return out
	}
	copy(out, items)
	return out
}
