package editor

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/sharafhazem/portfolio-ops/internal/domain/profile"
	"github.com/sharafhazem/portfolio-ops/internal/domain/project"
)

var (
	ErrNotLoaded    = errors.New("workspace not loaded")
	ErrUnknownField = errors.New("unknown field")
)

// Workspace is the dashboard's working copy. Mutations touch memory only;
// nothing reaches the API until an explicit save.
type Workspace struct {
	client *Client

	Profile  *profile.Profile
	Projects []*project.Project

	// editingID holds the id of the project being edited; empty means the
	// form submits as a create.
	editingID string
	Form      ProjectForm
}

type ProjectForm struct {
	ID                string        `json:"_id,omitempty"`
	Title             string        `json:"title"`
	Category          string        `json:"category"`
	Images            []string      `json:"images"`
	Desc              string        `json:"desc"`
	Tech              []string      `json:"tech"`
	ClientName        string        `json:"clientName"`
	Timeline          string        `json:"timeline"`
	RoleStack         string        `json:"roleStack"`
	CoreChallenge     string        `json:"coreChallenge"`
	TechnicalSolution string        `json:"technicalSolution"`
	Links             project.Links `json:"links"`
}

func NewWorkspace(client *Client) *Workspace {
	return &Workspace{client: client}
}

func (w *Workspace) Load(ctx context.Context) error {
	p, err := w.client.FetchProfile(ctx)
	if err != nil {
		return fmt.Errorf("load profile: %w", err)
	}
	projects, err := w.client.FetchProjects(ctx)
	if err != nil {
		return fmt.Errorf("load projects: %w", err)
	}
	w.Profile = p
	w.Projects = projects
	return nil
}

func (w *Workspace) loaded() error {
	if w.Profile == nil {
		return ErrNotLoaded
	}
	return nil
}

// Experience log

func (w *Workspace) AddExperience() error {
	if err := w.loaded(); err != nil {
		return err
	}
	w.Profile.ExperienceLog = Append(w.Profile.ExperienceLog, profile.ExperienceCard{
		Title: "New Role", Type: "Work", Desc: "Description...",
	})
	return nil
}

func (w *Workspace) UpdateExperience(index int, field, value string) error {
	if err := w.loaded(); err != nil {
		return err
	}
	if index < 0 || index >= len(w.Profile.ExperienceLog) {
		return ErrIndexOutOfRange
	}
	card := w.Profile.ExperienceLog[index]
	switch field {
	case "title":
		card.Title = value
	case "type":
		card.Type = value
	case "desc":
		card.Desc = value
	default:
		return fmt.Errorf("%w: experience.%s", ErrUnknownField, field)
	}
	w.Profile.ExperienceLog, _ = ReplaceAt(w.Profile.ExperienceLog, index, card)
	return nil
}

func (w *Workspace) RemoveExperience(index int) error {
	if err := w.loaded(); err != nil {
		return err
	}
	out, err := RemoveAt(w.Profile.ExperienceLog, index)
	if err != nil {
		return err
	}
	w.Profile.ExperienceLog = out
	return nil
}

// Protocol sections

func (w *Workspace) AddProtocolSection() error {
	if err := w.loaded(); err != nil {
		return err
	}
	w.Profile.Protocols.Sections = Append(w.Profile.Protocols.Sections, profile.ProtocolSection{
		Title: "New Section", Content: "Section content...",
	})
	return nil
}

func (w *Workspace) UpdateProtocolSection(index int, field, value string) error {
	if err := w.loaded(); err != nil {
		return err
	}
	if index < 0 || index >= len(w.Profile.Protocols.Sections) {
		return ErrIndexOutOfRange
	}
	section := w.Profile.Protocols.Sections[index]
	switch field {
	case "title":
		section.Title = value
	case "content":
		section.Content = value
	default:
		return fmt.Errorf("%w: protocols.sections.%s", ErrUnknownField, field)
	}
	w.Profile.Protocols.Sections, _ = ReplaceAt(w.Profile.Protocols.Sections, index, section)
	return nil
}

func (w *Workspace) RemoveProtocolSection(index int) error {
	if err := w.loaded(); err != nil {
		return err
	}
	out, err := RemoveAt(w.Profile.Protocols.Sections, index)
	if err != nil {
		return err
	}
	w.Profile.Protocols.Sections = out
	return nil
}

// Pricing plans, including the nested feature lists.

func (w *Workspace) AddPricingPlan() error {
	if err := w.loaded(); err != nil {
		return err
	}
	w.Profile.Pricing = Append(w.Profile.Pricing, profile.PricingPlan{
		Name: "New Plan", Price: "$0", Level: "Tier", Features: []string{"Feature 1"},
	})
	return nil
}

func (w *Workspace) UpdatePricingPlan(index int, field, value string) error {
	if err := w.loaded(); err != nil {
		return err
	}
	if index < 0 || index >= len(w.Profile.Pricing) {
		return ErrIndexOutOfRange
	}
	plan := w.Profile.Pricing[index]
	switch field {
	case "name":
		plan.Name = value
	case "price":
		plan.Price = value
	case "level":
		plan.Level = value
	default:
		return fmt.Errorf("%w: pricing.%s", ErrUnknownField, field)
	}
	w.Profile.Pricing, _ = ReplaceAt(w.Profile.Pricing, index, plan)
	return nil
}

func (w *Workspace) RemovePricingPlan(index int) error {
	if err := w.loaded(); err != nil {
		return err
	}
	out, err := RemoveAt(w.Profile.Pricing, index)
	if err != nil {
		return err
	}
	w.Profile.Pricing = out
	return nil
}

func (w *Workspace) AddPricingFeature(planIndex int) error {
	if err := w.loaded(); err != nil {
		return err
	}
	if planIndex < 0 || planIndex >= len(w.Profile.Pricing) {
		return ErrIndexOutOfRange
	}
	plan := w.Profile.Pricing[planIndex]
	plan.Features = Append(plan.Features, "New Feature")
	w.Profile.Pricing, _ = ReplaceAt(w.Profile.Pricing, planIndex, plan)
	return nil
}

func (w *Workspace) UpdatePricingFeature(planIndex, featureIndex int, value string) error {
	if err := w.loaded(); err != nil {
		return err
	}
	if planIndex < 0 || planIndex >= len(w.Profile.Pricing) {
		return ErrIndexOutOfRange
	}
	plan := w.Profile.Pricing[planIndex]
	features, err := ReplaceAt(plan.Features, featureIndex, value)
	if err != nil {
		return err
	}
	plan.Features = features
	w.Profile.Pricing, _ = ReplaceAt(w.Profile.Pricing, planIndex, plan)
	return nil
}

func (w *Workspace) RemovePricingFeature(planIndex, featureIndex int) error {
	if err := w.loaded(); err != nil {
		return err
	}
	if planIndex < 0 || planIndex >= len(w.Profile.Pricing) {
		return ErrIndexOutOfRange
	}
	plan := w.Profile.Pricing[planIndex]
	features, err := RemoveAt(plan.Features, featureIndex)
	if err != nil {
		return err
	}
	plan.Features = features
	w.Profile.Pricing, _ = ReplaceAt(w.Profile.Pricing, planIndex, plan)
	return nil
}

// Work queue

func (w *Workspace) AddWorkQueueItem() error {
	if err := w.loaded(); err != nil {
		return err
	}
	w.Profile.WorkQueue = Append(w.Profile.WorkQueue, profile.WorkQueueItem{
		ID:       fmt.Sprintf("W-0%d", len(w.Profile.WorkQueue)+1),
		Project:  "New Project",
		Status:   "Queued",
		Progress: 0,
		Type:     "New Type",
	})
	return nil
}

func (w *Workspace) UpdateWorkQueueItem(index int, field, value string) error {
	if err := w.loaded(); err != nil {
		return err
	}
	if index < 0 || index >= len(w.Profile.WorkQueue) {
		return ErrIndexOutOfRange
	}
	item := w.Profile.WorkQueue[index]
	switch field {
	case "id":
		item.ID = value
	case "project":
		item.Project = value
	case "status":
		item.Status = value
	case "progress":
		// Same tolerance as the wire format: junk input reads as 0.
		n, err := strconv.ParseFloat(value, 64)
		if err != nil {
			n = 0
		}
		item.Progress = profile.Progress(int(n))
	case "type":
		item.Type = value
	default:
		return fmt.Errorf("%w: workQueue.%s", ErrUnknownField, field)
	}
	w.Profile.WorkQueue, _ = ReplaceAt(w.Profile.WorkQueue, index, item)
	return nil
}

func (w *Workspace) RemoveWorkQueueItem(index int) error {
	if err := w.loaded(); err != nil {
		return err
	}
	out, err := RemoveAt(w.Profile.WorkQueue, index)
	if err != nil {
		return err
	}
	w.Profile.WorkQueue = out
	return nil
}

// Skill stats

func (w *Workspace) AddSkillStat() error {
	if err := w.loaded(); err != nil {
		return err
	}
	w.Profile.SkillStats = Append(w.Profile.SkillStats, profile.SkillStat{
		Label: "NEW PARAMETER", Value: "50%", Color: "bg-cyan-400",
	})
	return nil
}

func (w *Workspace) UpdateSkillStat(index int, field, value string) error {
	if err := w.loaded(); err != nil {
		return err
	}
	if index < 0 || index >= len(w.Profile.SkillStats) {
		return ErrIndexOutOfRange
	}
	stat := w.Profile.SkillStats[index]
	switch field {
	case "label":
		stat.Label = value
	case "value":
		stat.Value = value
	case "color":
		stat.Color = value
	default:
		return fmt.Errorf("%w: skillStats.%s", ErrUnknownField, field)
	}
	w.Profile.SkillStats, _ = ReplaceAt(w.Profile.SkillStats, index, stat)
	return nil
}

func (w *Workspace) RemoveSkillStat(index int) error {
	if err := w.loaded(); err != nil {
		return err
	}
	out, err := RemoveAt(w.Profile.SkillStats, index)
	if err != nil {
		return err
	}
	w.Profile.SkillStats = out
	return nil
}

// Social links

func (w *Workspace) AddSocialLink() error {
	if err := w.loaded(); err != nil {
		return err
	}
	w.Profile.SocialLinks = Append(w.Profile.SocialLinks, profile.SocialLink{
		Platform: "New Platform", URL: "https://",
	})
	return nil
}

func (w *Workspace) UpdateSocialLink(index int, field, value string) error {
	if err := w.loaded(); err != nil {
		return err
	}
	if index < 0 || index >= len(w.Profile.SocialLinks) {
		return ErrIndexOutOfRange
	}
	link := w.Profile.SocialLinks[index]
	switch field {
	case "platform":
		link.Platform = value
	case "url":
		link.URL = value
	default:
		return fmt.Errorf("%w: socialLinks.%s", ErrUnknownField, field)
	}
	w.Profile.SocialLinks, _ = ReplaceAt(w.Profile.SocialLinks, index, link)
	return nil
}

func (w *Workspace) RemoveSocialLink(index int) error {
	if err := w.loaded(); err != nil {
		return err
	}
	out, err := RemoveAt(w.Profile.SocialLinks, index)
	if err != nil {
		return err
	}
	w.Profile.SocialLinks = out
	return nil
}

// Saving

// SaveProfile writes the whole working copy. On failure the copy is kept
// untouched; on success it is replaced with the server echo so the working
// copy picks up the new sync timestamp.
func (w *Workspace) SaveProfile(ctx context.Context) error {
	if err := w.loaded(); err != nil {
		return err
	}
	echoed, err := w.client.SaveProfile(ctx, w.Profile)
	if err != nil {
		return err
	}
	w.Profile = echoed
	return nil
}

// SaveSocialLinks is the narrow save used by the social-links sub-editor. It
// sends only that field; everything else on the server document is left
// alone by the merge.
func (w *Workspace) SaveSocialLinks(ctx context.Context) error {
	if err := w.loaded(); err != nil {
		return err
	}
	echoed, err := w.client.SaveProfile(ctx, map[string]any{
		"socialLinks": w.Profile.SocialLinks,
	})
	if err != nil {
		return err
	}
	w.Profile = echoed
	return nil
}

// Project form

func (w *Workspace) EditingID() string {
	return w.editingID
}

// BeginEdit pre-populates the form from an already-loaded record and flips
// the form into edit mode.
func (w *Workspace) BeginEdit(id string) error {
	for _, p := range w.Projects {
		if p.ID.String() == id {
			w.editingID = id
			w.Form = ProjectForm{
				ID:                id,
				Title:             p.Title,
				Category:          p.Category,
				Images:            append([]string{}, p.Images...),
				Desc:              p.Desc,
				Tech:              append([]string{}, p.Tech...),
				ClientName:        p.ClientName,
				Timeline:          p.Timeline,
				RoleStack:         p.RoleStack,
				CoreChallenge:     p.CoreChallenge,
				TechnicalSolution: p.TechnicalSolution,
				Links:             p.Links,
			}
			return nil
		}
	}
	return fmt.Errorf("project %s not loaded", id)
}

func (w *Workspace) CancelEdit() {
	w.editingID = ""
	w.Form = ProjectForm{}
}

// SubmitProject creates or updates depending on whether an id is held. A
// successful edit clears edit mode; a failure leaves the form as-is for
// another attempt.
func (w *Workspace) SubmitProject(ctx context.Context) (*project.Project, error) {
	if w.editingID == "" {
		created, err := w.client.CreateProject(ctx, w.Form)
		if err != nil {
			return nil, err
		}
		w.Projects = append([]*project.Project{created}, w.Projects...)
		w.Form = ProjectForm{}
		return created, nil
	}

	w.Form.ID = w.editingID
	updated, err := w.client.UpdateProject(ctx, w.Form)
	if err != nil {
		return nil, err
	}
	for i, p := range w.Projects {
		if p.ID == updated.ID {
			w.Projects[i] = updated
			break
		}
	}
	w.CancelEdit()
	return updated, nil
}

func (w *Workspace) DeleteProject(ctx context.Context, id string) error {
	if err := w.client.DeleteProject(ctx, id); err != nil {
		return err
	}
	kept := w.Projects[:0]
	for _, p := range w.Projects {
		if p.ID.String() != id {
			kept = append(kept, p)
		}
	}
	w.Projects = kept
	if w.editingID == id {
		w.CancelEdit()
	}
	return nil
}
