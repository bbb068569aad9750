package profile

import (
	"bytes"
	"context"
	"encoding/json"
	"strconv"
	"time"
)

const (
	StatusOpen   = "OPEN"
	StatusClosed = "CLOSED"
)

type ExperienceCard struct {
	Title string `json:"title"`
	Type  string `json:"type"`
	Desc  string `json:"desc"`
}

type ProtocolSection struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type Protocols struct {
	Title    string            `json:"title"`
	Version  string            `json:"version"`
	Sections []ProtocolSection `json:"sections"`
}

type PricingPlan struct {
	Name     string   `json:"name"`
	Price    string   `json:"price"`
	Level    string   `json:"level"`
	Features []string `json:"features"`
}

// Progress is a 0-100 percentage that tolerates sloppy JSON input: numbers,
// numeric strings, and anything else, which decodes to 0.
type Progress int

func (p *Progress) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*p = Progress(int(n))
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			*p = Progress(int(v))
			return nil
		}
	}

	*p = 0
	return nil
}

type WorkQueueItem struct {
	ID       string   `json:"id"`
	Project  string   `json:"project"`
	Status   string   `json:"status"`
	Progress Progress `json:"progress"`
	Type     string   `json:"type"`
}

type SkillStat struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Color string `json:"color"`
}

type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// Profile is the singleton document behind every public page and every
// dashboard tab. List fields are display-ordered and are replaced wholesale
// on write; they are never nil after Normalize.
type Profile struct {
	Alias           string           `json:"alias"`
	Designation     string           `json:"designation"`
	Tagline         string           `json:"tagline"`
	BioLong         string           `json:"bioLong"`
	Avatar          string           `json:"avatar"`
	AboutImage      string           `json:"aboutImage"`
	MissionBriefing string           `json:"missionBriefing"`
	ExperienceLog   []ExperienceCard `json:"experienceLog"`
	StatusMode      string           `json:"statusMode"`
	StatusMsg       string           `json:"statusMsg"`
	Protocols       Protocols        `json:"protocols"`
	Pricing         []PricingPlan    `json:"pricing"`
	WorkQueue       []WorkQueueItem  `json:"workQueue"`
	SkillStats      []SkillStat      `json:"skillStats"`
	SocialLinks     []SocialLink     `json:"socialLinks"`
	LastSync        time.Time        `json:"lastSync"`
}

// Normalize replaces nil list fields with empty slices so consumers never
// see null where a sequence belongs.
func (p *Profile) Normalize() {
	if p.ExperienceLog == nil {
		p.ExperienceLog = []ExperienceCard{}
	}
	if p.Protocols.Sections == nil {
		p.Protocols.Sections = []ProtocolSection{}
	}
	if p.Pricing == nil {
		p.Pricing = []PricingPlan{}
	}
	for i := range p.Pricing {
		if p.Pricing[i].Features == nil {
			p.Pricing[i].Features = []string{}
		}
	}
	if p.WorkQueue == nil {
		p.WorkQueue = []WorkQueueItem{}
	}
	if p.SkillStats == nil {
		p.SkillStats = []SkillStat{}
	}
	if p.SocialLinks == nil {
		p.SocialLinks = []SocialLink{}
	}
}

// Repository persists the one live Profile document.
type Repository interface {
	// Get returns the singleton, creating it from defaults when absent.
	Get(ctx context.Context) (*Profile, error)
	// ApplyPatch merges patch onto the singleton (upserting it), stamps
	// lastSync and returns the full resulting document.
	ApplyPatch(ctx context.Context, patch Patch) (*Profile, error)
}
