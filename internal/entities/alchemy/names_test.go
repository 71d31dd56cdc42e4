package alchemy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/rpg-alchemy/internal/entities/alchemy"
)

func TestBaseName(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "plain name", input: "Tanglefoot Bag", expected: "tanglefoot bag"},
		{name: "parenthetical tier", input: "Tanglefoot Bag (Greater)", expected: "tanglefoot bag"},
		{name: "comma suffix", input: "Elixir of Life, Minor", expected: "elixir of life"},
		{name: "comma and parenthetical", input: "Bomb, Acid Flask (Major)", expected: "bomb"},
		{name: "extra whitespace", input: "  Alchemist's   Fire  (Lesser) ", expected: "alchemist's fire"},
		{name: "inner parenthetical kept", input: "Bottled (Storm) Lightning", expected: "bottled (storm) lightning"},
		{name: "case folded", input: "ANTIDOTE (MODERATE)", expected: "antidote"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, alchemy.BaseName(tc.input))
		})
	}
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "alchemists-fire-greater", alchemy.Slugify("Alchemist's Fire (Greater)"))
	assert.Equal(t, "elixir-of-life-minor", alchemy.Slugify("Elixir of Life, Minor"))
	assert.Equal(t, "", alchemy.Slugify("  "))
}
