package alchemy

import (
	"github.com/KirkDiggler/rpg-alchemy/internal/errors"
)

// GrantMode controls how level-up formula grants are applied
type GrantMode string

// Grant modes
const (
	GrantModeDisabled GrantMode = "disabled"
	GrantModeAskEach  GrantMode = "ask_each"
	GrantModeAskAll   GrantMode = "ask_all"
	GrantModeAuto     GrantMode = "auto"
)

// GrantModes lists the accepted grant modes
var GrantModes = []string{
	string(GrantModeDisabled),
	string(GrantModeAskEach),
	string(GrantModeAskAll),
	string(GrantModeAuto),
}

// Asks reports whether the mode needs a confirmer
func (m GrantMode) Asks() bool {
	return m == GrantModeAskEach || m == GrantModeAskAll
}

// GrantSettings is read once per level change
type GrantSettings struct {
	Mode            GrantMode
	PruneLowerTiers bool
	// RequiredRarity limits the candidate pool; empty accepts every rarity
	RequiredRarity Rarity
}

// DefaultGrantSettings asks for each grant and keeps lower tiers
func DefaultGrantSettings() GrantSettings {
	return GrantSettings{
		Mode:           GrantModeAskEach,
		RequiredRarity: RarityCommon,
	}
}

// Validate checks the mode and rarity
func (s *GrantSettings) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateEnum("grant_mode", string(s.Mode), GrantModes, vb)
	if s.RequiredRarity != "" {
		if _, err := ParseRarity(string(s.RequiredRarity)); err != nil {
			vb.Field("required_rarity", errors.GetMessage(err))
		}
	}

	return vb.Build()
}

// Normalize validates the settings and returns a copy with RequiredRarity in
// its stored lower-case form, so "Common" filters like "common".
func (s GrantSettings) Normalize() (GrantSettings, error) {
	if err := s.Validate(); err != nil {
		return GrantSettings{}, err
	}
	if s.RequiredRarity != "" {
		rarity, err := ParseRarity(string(s.RequiredRarity))
		if err != nil {
			return GrantSettings{}, err
		}
		s.RequiredRarity = rarity
	}
	return s, nil
}
