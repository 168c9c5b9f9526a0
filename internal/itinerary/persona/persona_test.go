package persona

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var activityTypes = []string{typeDining, typeNightlife, typeSightseeing, typeEducational, typeOther}

func TestNarrativeCoversEveryPersonaAndType(t *testing.T) {
	seen := make(map[string]Persona)
	for _, p := range append(All(), Default) {
		for _, at := range activityTypes {
			got := Narrative(at, "Food", p)
			assert.NotEmpty(t, got, "%s/%s", p, at)
			assert.NotContains(t, got, interestPlaceholder)

			if other, dup := seen[got]; dup {
				t.Errorf("%s/%s repeats the %s narrative", p, at, other)
			}
			seen[got] = p
		}
	}
}

func TestNarrativeIsDeterministic(t *testing.T) {
	first := Narrative(typeDining, "Food", RickSteves)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Narrative(typeDining, "Food", RickSteves))
	}
}

func TestNarrativeOtherUsesLowercaseInterest(t *testing.T) {
	assert.Equal(t, "Enjoy some relaxation time at your own pace.", Narrative(typeOther, "Relaxation", Default))
	assert.Contains(t, Narrative(typeOther, "Shopping", LonelyPlanet), "shopping")
}

func TestNarrativeFallbacks(t *testing.T) {
	assert.Equal(t, Narrative(typeDining, "Food", Default), Narrative(typeDining, "Food", Persona("unknown")))
	assert.Equal(t, Narrative(typeOther, "Culture", Monocle), Narrative("mystery", "Culture", Monocle))
}

func TestDescribe(t *testing.T) {
	t.Run("single line uses narrative", func(t *testing.T) {
		got := Describe("Dinner at Le Comptoir", typeDining, "Food", Timeout)
		assert.Equal(t, Narrative(typeDining, "Food", Timeout), got)
	})

	t.Run("multi-line keeps model text", func(t *testing.T) {
		got := Describe("Louvre Museum\nSee the Mona Lisa early.\nBook ahead.", typeSightseeing, "Culture", RickSteves)
		assert.Equal(t, "Louvre Museum\nSee the Mona Lisa early.\nBook ahead.", got)
	})

	t.Run("blank second line is still single line", func(t *testing.T) {
		got := Describe("  Beach day\n   ", typeOther, "Relaxation", Default)
		assert.Equal(t, "Enjoy some relaxation time at your own pace.", got)
	})
}

func TestParse(t *testing.T) {
	assert.Equal(t, RickSteves, Parse(" Rick-Steves "))
	assert.Equal(t, TigerWoods, Parse("tiger-woods"))
	assert.Equal(t, Default, Parse("nobody"))
	assert.Equal(t, Default, Parse(""))
}

func TestDescribeTrimsVerbatimText(t *testing.T) {
	got := Describe("\n  Louvre Museum\nSee the Mona Lisa early.  \n", typeSightseeing, "Culture", Monocle)
	assert.Equal(t, "Louvre Museum\nSee the Mona Lisa early.", got)
}
