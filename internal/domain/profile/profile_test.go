package profile

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_PopulatesNonEmptyFields(t *testing.T) {
	now := time.Now().UTC()
	p := Default(now)

	assert.Equal(t, "Chilly", p.Alias)
	assert.Equal(t, "Software Engineer", p.Designation)
	assert.Equal(t, StatusOpen, p.StatusMode)
	assert.Equal(t, "SYSTEM ONLINE", p.StatusMsg)
	assert.Equal(t, "System Protocols", p.Protocols.Title)
	assert.Equal(t, "3.0.0 (Live)", p.Protocols.Version)
	assert.Len(t, p.ExperienceLog, 3)
	assert.Equal(t, now, p.LastSync)

	// every list field must be a sequence, never nil
	assert.NotNil(t, p.Pricing)
	assert.NotNil(t, p.WorkQueue)
	assert.NotNil(t, p.SkillStats)
	assert.NotNil(t, p.SocialLinks)
	assert.NotNil(t, p.Protocols.Sections)
}

func TestNormalize_ReplacesNilLists(t *testing.T) {
	p := &Profile{
		Pricing: []PricingPlan{{Name: "Scout"}},
	}
	p.Normalize()

	assert.NotNil(t, p.ExperienceLog)
	assert.NotNil(t, p.WorkQueue)
	assert.NotNil(t, p.SkillStats)
	assert.NotNil(t, p.SocialLinks)
	assert.NotNil(t, p.Protocols.Sections)
	assert.NotNil(t, p.Pricing[0].Features)
}

func TestProgress_CoercesInput(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want Progress
	}{
		{"integer", `57`, 57},
		{"float truncates", `57.9`, 57},
		{"numeric string", `"64"`, 64},
		{"garbage string", `"abc"`, 0},
		{"null", `null`, 0},
		{"object", `{"x":1}`, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var item WorkQueueItem
			err := json.Unmarshal([]byte(`{"id":"W-01","progress":`+tc.in+`}`), &item)
			require.NoError(t, err)
			assert.Equal(t, tc.want, item.Progress)
		})
	}
}

func TestProgress_MarshalsAsNumber(t *testing.T) {
	raw, err := json.Marshal(WorkQueueItem{ID: "W-01", Progress: 42})
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"progress":42`)
}

func TestMerge_KeepsAbsentFields(t *testing.T) {
	base := Default(time.Now().UTC())
	base.Pricing = []PricingPlan{{Name: "Scout", Price: "$100", Level: "Tier1", Features: []string{"a", "b"}}}

	patch := Patch{
		"alias":   json.RawMessage(`"Ghost"`),
		"tagline": json.RawMessage(`"New tagline"`),
	}

	merged, err := Merge(base, patch)
	require.NoError(t, err)

	assert.Equal(t, "Ghost", merged.Alias)
	assert.Equal(t, "New tagline", merged.Tagline)

	// siblings untouched
	assert.Equal(t, base.Designation, merged.Designation)
	assert.Equal(t, base.BioLong, merged.BioLong)
	assert.Equal(t, base.Pricing, merged.Pricing)
	assert.Equal(t, base.ExperienceLog, merged.ExperienceLog)

	// base itself not mutated
	assert.Equal(t, "Chilly", base.Alias)
}

func TestMerge_ListFieldsReplaceWholesale(t *testing.T) {
	base := Default(time.Now().UTC())
	base.SocialLinks = []SocialLink{
		{Platform: "GitHub", URL: "https://github.com/x"},
		{Platform: "Twitter", URL: "https://twitter.com/x"},
	}

	patch := Patch{
		"socialLinks": json.RawMessage(`[{"platform":"Discord","url":"https://discord.gg/x"}]`),
	}

	merged, err := Merge(base, patch)
	require.NoError(t, err)

	require.Len(t, merged.SocialLinks, 1)
	assert.Equal(t, "Discord", merged.SocialLinks[0].Platform)
	// everything else stays
	assert.Equal(t, base.Alias, merged.Alias)
	assert.Len(t, merged.ExperienceLog, 3)
}

func TestMerge_IgnoresReservedAndUnknownKeys(t *testing.T) {
	base := Default(time.Now().UTC())
	stamp := base.LastSync

	patch := Patch{
		"lastSync": json.RawMessage(`"1999-01-01T00:00:00Z"`),
		"_id":      json.RawMessage(`"abc"`),
		"whatever": json.RawMessage(`123`),
	}

	merged, err := Merge(base, patch)
	require.NoError(t, err)
	assert.Equal(t, stamp.Unix(), merged.LastSync.Unix())
}

func TestMerge_RejectsWrongShape(t *testing.T) {
	base := Default(time.Now().UTC())
	_, err := Merge(base, Patch{"pricing": json.RawMessage(`"not a list"`)})
	assert.Error(t, err)
}

func TestPricing_RoundTrip(t *testing.T) {
	in := PricingPlan{Name: "Scout", Price: "$100", Level: "Tier1", Features: []string{"a", "b"}}

	raw, err := json.Marshal(in)
	require.NoError(t, err)

	var out PricingPlan
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, in, out)
}
