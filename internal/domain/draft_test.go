package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDraft() *Draft {
	maxLen := 40
	return &Draft{
		Metadata: Metadata{Title: "T", Name: "N", Version: "1"},
		Items: map[string]Item{
			"g1": {LinkID: "g1", Type: ItemGroup, Text: "Group"},
			"q1": {LinkID: "q1", Type: ItemString, Text: "Name?", MaxLength: &maxLen},
			"q2": {LinkID: "q2", Type: ItemChoice, AnswerOptions: []AnswerOption{{Code: "y", Display: "Yes"}}},
		},
		Order: []OrderItem{
			{LinkID: "g1", Items: []OrderItem{{LinkID: "q1", Items: []OrderItem{}}}},
			{LinkID: "q2", Items: []OrderItem{}},
		},
	}
}

func TestNewDraft_IsEmptyAndNotInProgress(t *testing.T) {
	d := NewDraft()
	assert.Empty(t, d.Items)
	assert.NotNil(t, d.Items)
	assert.NotNil(t, d.Order)
	assert.False(t, d.InProgress())
	assert.Equal(t, "draft", d.Metadata.Status)
}

func TestDraft_InProgress(t *testing.T) {
	var nilDraft *Draft
	assert.False(t, nilDraft.InProgress())
	assert.True(t, sampleDraft().InProgress())
}

func TestDraft_CloneIsDeep(t *testing.T) {
	orig := sampleDraft()
	c := orig.Clone()
	require.Equal(t, orig, c)

	*c.Items["q1"].MaxLength = 5
	c.Items["q2"].AnswerOptions[0].Display = "changed"
	c.Order[0].Items[0].LinkID = "other"
	c.Metadata.Title = "changed"

	assert.Equal(t, 40, *orig.Items["q1"].MaxLength)
	assert.Equal(t, "Yes", orig.Items["q2"].AnswerOptions[0].Display)
	assert.Equal(t, "q1", orig.Order[0].Items[0].LinkID)
	assert.Equal(t, "T", orig.Metadata.Title)
}

func TestDraft_Walk(t *testing.T) {
	d := sampleDraft()
	d.Order = append(d.Order, OrderItem{LinkID: "missing"})

	var visited []string
	var depths []int
	d.Walk(func(it Item, depth int) {
		visited = append(visited, it.LinkID)
		depths = append(depths, depth)
	})
	assert.Equal(t, []string{"g1", "q1", "q2"}, visited)
	assert.Equal(t, []int{0, 1, 0}, depths)
}

func TestDraft_Normalize(t *testing.T) {
	d := &Draft{Order: []OrderItem{{LinkID: "a"}}}
	d.Normalize()
	assert.NotNil(t, d.Items)
	assert.NotNil(t, d.Order[0].Items)
}

func TestMetadata_Field(t *testing.T) {
	m := Metadata{Title: "T", Name: "N", Version: "2", URL: "http://x.org/q"}
	assert.Equal(t, "T", m.Field(MetaTitle))
	assert.Equal(t, "N", m.Field(MetaName))
	assert.Equal(t, "2", m.Field(MetaVersion))
	assert.Equal(t, "http://x.org/q", m.Field(MetaURL))
	assert.Equal(t, "", m.Field(MetadataField("bogus")))
}

func TestItemType_Known(t *testing.T) {
	assert.True(t, ItemChoice.Known())
	assert.True(t, ItemOpenChoice.Known())
	assert.False(t, ItemType("slider").Known())
}
