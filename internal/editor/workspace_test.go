package editor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sharafhazem/portfolio-ops/internal/domain/profile"
	"github.com/sharafhazem/portfolio-ops/internal/domain/project"
)

// fakeAPI is an in-memory stand-in for the content API, speaking the same
// envelope the real handlers do.
type fakeAPI struct {
	mu       sync.Mutex
	profile  *profile.Profile
	projects map[uuid.UUID]*project.Project

	failProfileSave bool
	lastProfileBody map[string]json.RawMessage
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		profile:  profile.Default(time.Now().UTC()),
		projects: make(map[uuid.UUID]*project.Project),
	}
}

func (f *fakeAPI) writeEnvelope(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{"success": true, "data": data})
}

func (f *fakeAPI) writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{"success": false, "error": msg})
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/api/profile":
		f.writeEnvelope(w, http.StatusOK, f.profile)

	case r.Method == http.MethodPut && r.URL.Path == "/api/admin/profile":
		if f.failProfileSave {
			f.writeError(w, http.StatusInternalServerError, "store down")
			return
		}
		var patch profile.Patch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			f.writeError(w, http.StatusBadRequest, "bad body")
			return
		}
		f.lastProfileBody = patch
		merged, err := profile.Merge(f.profile, patch)
		if err != nil {
			f.writeError(w, http.StatusBadRequest, "patch rejected")
			return
		}
		merged.LastSync = time.Now().UTC()
		f.profile = merged
		f.writeEnvelope(w, http.StatusOK, f.profile)

	case r.Method == http.MethodGet && r.URL.Path == "/api/projects":
		out := make([]*project.Project, 0, len(f.projects))
		for _, p := range f.projects {
			out = append(out, p)
		}
		f.writeEnvelope(w, http.StatusOK, out)

	case r.Method == http.MethodPost && r.URL.Path == "/api/admin/projects":
		var p project.Project
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			f.writeError(w, http.StatusBadRequest, "bad body")
			return
		}
		if p.Title == "" || p.Category == "" {
			f.writeError(w, http.StatusBadRequest, "title and category are required")
			return
		}
		p.ID = uuid.New()
		p.CreatedAt = time.Now().UTC()
		p.Normalize()
		f.projects[p.ID] = &p
		f.writeEnvelope(w, http.StatusCreated, &p)

	case r.Method == http.MethodPut && r.URL.Path == "/api/admin/projects":
		var patch project.Patch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			f.writeError(w, http.StatusBadRequest, "bad body")
			return
		}
		var idStr string
		if err := json.Unmarshal(patch["_id"], &idStr); err != nil {
			f.writeError(w, http.StatusBadRequest, "_id required")
			return
		}
		id, err := uuid.Parse(idStr)
		if err != nil {
			f.writeError(w, http.StatusBadRequest, "bad _id")
			return
		}
		current, ok := f.projects[id]
		if !ok {
			f.writeError(w, http.StatusNotFound, "project not found")
			return
		}
		updated, err := project.ApplyPatch(current, patch)
		if err != nil {
			f.writeError(w, http.StatusBadRequest, "patch rejected")
			return
		}
		f.projects[id] = updated
		f.writeEnvelope(w, http.StatusOK, updated)

	case r.Method == http.MethodDelete && r.URL.Path == "/api/admin/projects":
		id, err := uuid.Parse(r.URL.Query().Get("id"))
		if err != nil {
			f.writeError(w, http.StatusBadRequest, "bad id")
			return
		}
		delete(f.projects, id)
		f.writeEnvelope(w, http.StatusOK, map[string]string{"deleted": id.String()})

	case r.Method == http.MethodPost && r.URL.Path == "/api/admin/sign-upload":
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"success": true, "signature": "sig-for-test"})

	default:
		f.writeError(w, http.StatusNotFound, "no route")
	}
}

func newWorkspaceEnv(t *testing.T) (*Workspace, *fakeAPI) {
	t.Helper()
	api := newFakeAPI()
	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)

	ws := NewWorkspace(NewClient(srv.URL, "test-token"))
	require.NoError(t, ws.Load(context.Background()))
	return ws, api
}

func TestWorkspace_LoadPullsProfileAndProjects(t *testing.T) {
	ws, _ := newWorkspaceEnv(t)

	assert.Equal(t, "Chilly", ws.Profile.Alias)
	assert.Empty(t, ws.Projects)
}

func TestWorkspace_ListOpsBeforeLoadRejected(t *testing.T) {
	ws := NewWorkspace(NewClient("http://127.0.0.1:0", ""))

	assert.ErrorIs(t, ws.AddExperience(), ErrNotLoaded)
	assert.ErrorIs(t, ws.AddSocialLink(), ErrNotLoaded)
}

func TestWorkspace_ExperienceAddUpdateRemove(t *testing.T) {
	ws, _ := newWorkspaceEnv(t)

	start := len(ws.Profile.ExperienceLog)
	require.NoError(t, ws.AddExperience())
	added := ws.Profile.ExperienceLog[start]
	assert.Equal(t, "New Role", added.Title)
	assert.Equal(t, "Work", added.Type)
	assert.Equal(t, "Description...", added.Desc)

	require.NoError(t, ws.UpdateExperience(start, "title", "Staff Engineer"))
	assert.Equal(t, "Staff Engineer", ws.Profile.ExperienceLog[start].Title)
	assert.Equal(t, "Work", ws.Profile.ExperienceLog[start].Type)

	err := ws.UpdateExperience(start, "salary", "1")
	assert.ErrorIs(t, err, ErrUnknownField)

	require.NoError(t, ws.RemoveExperience(start))
	assert.Len(t, ws.Profile.ExperienceLog, start)
}

func TestWorkspace_RemoveMiddleShiftsIndices(t *testing.T) {
	ws, _ := newWorkspaceEnv(t)

	ws.Profile.SkillStats = []profile.SkillStat{
		{Label: "GO"}, {Label: "SQL"}, {Label: "K8S"},
	}
	require.NoError(t, ws.RemoveSkillStat(1))
	require.Len(t, ws.Profile.SkillStats, 2)
	assert.Equal(t, "GO", ws.Profile.SkillStats[0].Label)
	assert.Equal(t, "K8S", ws.Profile.SkillStats[1].Label)
}

func TestWorkspace_PricingNestedFeatures(t *testing.T) {
	ws, _ := newWorkspaceEnv(t)

	require.NoError(t, ws.AddPricingPlan())
	plan := ws.Profile.Pricing[len(ws.Profile.Pricing)-1]
	assert.Equal(t, "New Plan", plan.Name)
	assert.Equal(t, []string{"Feature 1"}, plan.Features)

	idx := len(ws.Profile.Pricing) - 1
	require.NoError(t, ws.AddPricingFeature(idx))
	require.NoError(t, ws.UpdatePricingFeature(idx, 1, "24/7 support"))
	assert.Equal(t, []string{"Feature 1", "24/7 support"}, ws.Profile.Pricing[idx].Features)

	require.NoError(t, ws.RemovePricingFeature(idx, 0))
	assert.Equal(t, []string{"24/7 support"}, ws.Profile.Pricing[idx].Features)

	assert.ErrorIs(t, ws.UpdatePricingFeature(idx, 9, "x"), ErrIndexOutOfRange)
}

func TestWorkspace_WorkQueuePlaceholderAndProgressCoercion(t *testing.T) {
	ws, _ := newWorkspaceEnv(t)

	ws.Profile.WorkQueue = nil
	require.NoError(t, ws.AddWorkQueueItem())
	require.NoError(t, ws.AddWorkQueueItem())
	assert.Equal(t, "W-01", ws.Profile.WorkQueue[0].ID)
	assert.Equal(t, "W-02", ws.Profile.WorkQueue[1].ID)

	require.NoError(t, ws.UpdateWorkQueueItem(0, "progress", "62"))
	assert.Equal(t, profile.Progress(62), ws.Profile.WorkQueue[0].Progress)

	require.NoError(t, ws.UpdateWorkQueueItem(0, "progress", "not-a-number"))
	assert.Equal(t, profile.Progress(0), ws.Profile.WorkQueue[0].Progress)
}

func TestWorkspace_SaveFailureKeepsWorkingCopy(t *testing.T) {
	ws, api := newWorkspaceEnv(t)

	require.NoError(t, ws.AddSocialLink())
	require.NoError(t, ws.UpdateSocialLink(len(ws.Profile.SocialLinks)-1, "platform", "GitHub"))

	api.failProfileSave = true
	err := ws.SaveProfile(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "store down")

	last := ws.Profile.SocialLinks[len(ws.Profile.SocialLinks)-1]
	assert.Equal(t, "GitHub", last.Platform)
}

func TestWorkspace_SaveAdoptsServerEcho(t *testing.T) {
	ws, _ := newWorkspaceEnv(t)

	ws.Profile.Tagline = "rebuilt in the open"
	before := ws.Profile.LastSync
	require.NoError(t, ws.SaveProfile(context.Background()))

	assert.Equal(t, "rebuilt in the open", ws.Profile.Tagline)
	assert.True(t, ws.Profile.LastSync.After(before))
}

func TestWorkspace_SaveSocialLinksSendsSubsetOnly(t *testing.T) {
	ws, api := newWorkspaceEnv(t)

	require.NoError(t, ws.AddSocialLink())
	require.NoError(t, ws.SaveSocialLinks(context.Background()))

	require.Len(t, api.lastProfileBody, 1)
	_, ok := api.lastProfileBody["socialLinks"]
	assert.True(t, ok)

	// The merge on the server leaves everything else alone.
	assert.Equal(t, "Chilly", ws.Profile.Alias)
	assert.NotEmpty(t, ws.Profile.SocialLinks)
}

func TestWorkspace_ProjectCreateAndEditModes(t *testing.T) {
	ws, _ := newWorkspaceEnv(t)

	ws.Form = ProjectForm{Title: "Orbital Tracker", Category: "web-dev"}
	created, err := ws.SubmitProject(context.Background())
	require.NoError(t, err)
	require.Len(t, ws.Projects, 1)
	assert.Empty(t, ws.EditingID())

	require.NoError(t, ws.BeginEdit(created.ID.String()))
	assert.Equal(t, created.ID.String(), ws.EditingID())
	assert.Equal(t, "Orbital Tracker", ws.Form.Title)

	ws.Form.Title = "Orbital Tracker v2"
	updated, err := ws.SubmitProject(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Orbital Tracker v2", updated.Title)
	assert.Equal(t, created.ID, updated.ID)
	assert.Empty(t, ws.EditingID(), "edit mode clears on success")
	assert.Equal(t, "Orbital Tracker v2", ws.Projects[0].Title)
}

func TestWorkspace_DeleteProjectRemovesFromWorkingCopy(t *testing.T) {
	ws, _ := newWorkspaceEnv(t)

	ws.Form = ProjectForm{Title: "Short Lived", Category: "design"}
	created, err := ws.SubmitProject(context.Background())
	require.NoError(t, err)

	require.NoError(t, ws.DeleteProject(context.Background(), created.ID.String()))
	assert.Empty(t, ws.Projects)
}

func TestUploader_TwoPhaseFlow(t *testing.T) {
	api := newFakeAPI()
	apiSrv := httptest.NewServer(api)
	t.Cleanup(apiSrv.Close)

	var gotFields map[string]string
	storeSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		gotFields = map[string]string{
			"api_key":   r.FormValue("api_key"),
			"timestamp": r.FormValue("timestamp"),
			"signature": r.FormValue("signature"),
		}
		_, header, err := r.FormFile("file")
		require.NoError(t, err)
		assert.Equal(t, "avatar.png", header.Filename)

		json.NewEncoder(w).Encode(map[string]string{
			"secure_url": "https://cdn.example.com/avatar.png",
		})
	}))
	t.Cleanup(storeSrv.Close)

	uploader := NewUploader(NewClient(apiSrv.URL, "tok"), "demo-cloud", "key-123")
	uploader.uploadURL = storeSrv.URL
	uploader.now = func() time.Time { return time.Unix(1700000000, 0) }

	url, err := uploader.Upload(context.Background(), "avatar.png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/avatar.png", url)

	assert.Equal(t, "key-123", gotFields["api_key"])
	assert.Equal(t, "1700000000", gotFields["timestamp"])
	assert.Equal(t, "sig-for-test", gotFields["signature"])
}

func TestUploader_RejectedUploadSurfacesError(t *testing.T) {
	api := newFakeAPI()
	apiSrv := httptest.NewServer(api)
	t.Cleanup(apiSrv.Close)

	storeSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]string{"message": "Invalid signature"},
		})
	}))
	t.Cleanup(storeSrv.Close)

	uploader := NewUploader(NewClient(apiSrv.URL, "tok"), "demo-cloud", "key-123")
	uploader.uploadURL = storeSrv.URL

	_, err := uploader.Upload(context.Background(), "avatar.png", strings.NewReader("png-bytes"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid signature")
}
