package project

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sharafhazem/portfolio-ops/pkg/apperror"
)

// Known categories. The set is advisory, not enforced: new categories can be
// introduced from the dashboard without a code change.
const (
	CategoryWebDev = "Web Dev"
	CategoryMobile = "Mobile"
	CategoryDesign = "Design"
)

type Links struct {
	Github string `json:"github"`
	Demo   string `json:"demo"`
}

// Project is one portfolio entry. Images carries the display gallery;
// LegacyImage is the retired single-image field still present on old records
// and folded into Images at read time.
type Project struct {
	ID                uuid.UUID `json:"_id"`
	Title             string    `json:"title"`
	Category          string    `json:"category"`
	Images            []string  `json:"images"`
	LegacyImage       string    `json:"image,omitempty"`
	Desc              string    `json:"desc"`
	Tech              []string  `json:"tech"`
	ClientName        string    `json:"clientName,omitempty"`
	Timeline          string    `json:"timeline,omitempty"`
	RoleStack         string    `json:"roleStack,omitempty"`
	CoreChallenge     string    `json:"coreChallenge,omitempty"`
	TechnicalSolution string    `json:"technicalSolution,omitempty"`
	Links             Links     `json:"links"`
	CreatedAt         time.Time `json:"createdAt"`
}

func (p *Project) Validate() error {
	if p.Title == "" {
		return apperror.NewInvalidInput("project title is required", nil)
	}
	if p.Category == "" {
		return apperror.NewInvalidInput("project category is required", nil)
	}
	return nil
}

// Normalize performs the read-time migration: a populated Images list wins
// outright; otherwise a non-empty legacy image becomes a one-element list.
// It also guarantees non-nil slices.
func (p *Project) Normalize() {
	if len(p.Images) == 0 && p.LegacyImage != "" {
		p.Images = []string{p.LegacyImage}
	}
	if p.Images == nil {
		p.Images = []string{}
	}
	if p.Tech == nil {
		p.Tech = []string{}
	}
}

// Patch carries the fields supplied in an update request; absent fields keep
// their stored values.
type Patch map[string]json.RawMessage

// ApplyPatch overlays patch onto base and returns the updated record. The
// identifier and creation timestamp cannot be patched.
func ApplyPatch(base *Project, patch Patch) (*Project, error) {
	raw, err := json.Marshal(base)
	if err != nil {
		return nil, fmt.Errorf("marshal base project: %w", err)
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode base project: %w", err)
	}

	for key, value := range patch {
		if key == "_id" || key == "createdAt" {
			continue
		}
		doc[key] = value
	}

	mergedRaw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal merged project: %w", err)
	}

	merged := &Project{}
	if err := json.Unmarshal(mergedRaw, merged); err != nil {
		return nil, fmt.Errorf("patch does not fit project shape: %w", err)
	}
	merged.Normalize()
	return merged, nil
}

type Repository interface {
	Save(ctx context.Context, project *Project) error
	Update(ctx context.Context, project *Project) error
	// Delete removes the record; a missing id is not an error at this layer.
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*Project, error)
	// List returns all projects, newest first, normalized.
	List(ctx context.Context) ([]*Project, error)
}
