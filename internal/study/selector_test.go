package study_test

import (
	"testing"
	"time"

	"github.com/mfreitas/flashdeck/internal/models"
	"github.com/mfreitas/flashdeck/internal/study"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

func card(id int64, opts func(*models.Card)) models.Card {
	c := models.Card{
		ID:         id,
		EaseFactor: 2.5,
		DueAt:      today,
	}
	if opts != nil {
		opts(&c)
	}
	return c
}

func difficultParams() study.Params {
	return study.Params{Today: today, MaxLapses: 3, MinEase: 1.5}
}

func TestSelect_DueFiltersAndOrders(t *testing.T) {
	cards := []models.Card{
		card(1, func(c *models.Card) { c.DueAt = today.AddDate(0, 0, 2) }),
		card(2, func(c *models.Card) { c.DueAt = today.AddDate(0, 0, -1) }),
		card(3, func(c *models.Card) { c.DueAt = today }),
		card(4, func(c *models.Card) { c.DueAt = today.AddDate(0, 0, -3) }),
		card(5, func(c *models.Card) { c.DueAt = today.AddDate(0, 0, -1) }),
	}

	out := study.Select(cards, study.ModeDue, study.Params{Today: today})

	ids := make([]int64, 0, len(out))
	for _, c := range out {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []int64{4, 2, 5, 3}, ids, "ascending due date, id breaks ties")
}

func TestSelect_DueIncludesCardsDueLaterToday(t *testing.T) {
	cards := []models.Card{
		card(1, func(c *models.Card) { c.DueAt = today.Add(18 * time.Hour) }),
	}

	out := study.Select(cards, study.ModeDue, study.Params{Today: today})
	require.Len(t, out, 1)
}

func TestSelect_DifficultDualCondition(t *testing.T) {
	cards := []models.Card{
		card(1, func(c *models.Card) { c.Lapses = 5 }),                 // lapse condition
		card(2, func(c *models.Card) { c.EaseFactor = 1.3 }),           // ease condition
		card(3, nil),                                                   // neither
		card(4, func(c *models.Card) { c.Lapses = 3; c.EaseFactor = 1.4 }), // both
	}

	out := study.Select(cards, study.ModeDifficult, difficultParams())

	ids := make([]int64, 0, len(out))
	for _, c := range out {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []int64{1, 4, 2}, ids, "lapses descending, then ease ascending")
}

func TestSelect_ByTags(t *testing.T) {
	cards := []models.Card{
		card(1, func(c *models.Card) { c.Tags = []string{"verb"} }),
		card(2, func(c *models.Card) { c.Tags = []string{"noun", "basic"} }),
		card(3, nil),
		card(4, func(c *models.Card) { c.Tags = []string{"basic"} }),
	}

	out := study.Select(cards, study.ModeByTags, study.Params{Tags: []string{"basic", "verb"}})

	ids := make([]int64, 0, len(out))
	for _, c := range out {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []int64{1, 2, 4}, ids, "input order preserved")
}

func TestSelect_ByTagsEmptyRequestMatchesNothing(t *testing.T) {
	cards := []models.Card{
		card(1, func(c *models.Card) { c.Tags = []string{"verb"} }),
	}

	out := study.Select(cards, study.ModeByTags, study.Params{})
	assert.Empty(t, out)

	out = study.Select(cards, study.ModeByTags, study.Params{Tags: []string{}})
	assert.Empty(t, out)
}

func TestSelect_AllPreservesOrder(t *testing.T) {
	cards := []models.Card{card(3, nil), card(1, nil), card(2, nil)}

	out := study.Select(cards, study.ModeAll, study.Params{})

	require.Len(t, out, 3)
	assert.Equal(t, int64(3), out[0].ID)
	assert.Equal(t, int64(1), out[1].ID)
	assert.Equal(t, int64(2), out[2].ID)
}

func TestSelect_EmptyInput(t *testing.T) {
	for _, mode := range []study.Mode{study.ModeDue, study.ModeDifficult, study.ModeByTags, study.ModeAll} {
		out := study.Select(nil, mode, difficultParams())
		assert.Empty(t, out, "mode %s", mode)
	}
}

func TestSelect_DoesNotMutateInput(t *testing.T) {
	cards := []models.Card{
		card(2, func(c *models.Card) { c.DueAt = today.AddDate(0, 0, -1) }),
		card(1, func(c *models.Card) { c.DueAt = today.AddDate(0, 0, -2) }),
	}

	_ = study.Select(cards, study.ModeDue, study.Params{Today: today})

	assert.Equal(t, int64(2), cards[0].ID)
	assert.Equal(t, int64(1), cards[1].ID)
}

func TestModeIsValid(t *testing.T) {
	assert.True(t, study.ModeDue.IsValid())
	assert.True(t, study.ModeByTags.IsValid())
	assert.False(t, study.Mode("cram").IsValid())
}
