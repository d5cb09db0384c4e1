package syncing

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/draft"
	"github.com/jonathan/resume-builder/internal/remote"
	"github.com/jonathan/resume-builder/internal/types"
)

// fakeService records calls and plays back configured responses.
type fakeService struct {
	mu          sync.Mutex
	createCalls []types.SectionPayload
	updateCalls []types.SectionPayload
	createErr   error
	updateErr   error
	canonical   func(types.SectionPayload) types.SectionPayload
	getDoc      *types.Document
	getErr      error
	created     uuid.UUID
	gate        chan struct{} // when set, update blocks until closed
}

func (f *fakeService) CreateResume(_ context.Context, payload types.SectionPayload) (*remote.CreateResult, error) {
	f.mu.Lock()
	f.createCalls = append(f.createCalls, payload)
	f.mu.Unlock()
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.created == uuid.Nil {
		f.created = uuid.New()
	}
	canonical := payload
	if f.canonical != nil {
		canonical = f.canonical(payload)
	}
	return &remote.CreateResult{
		ID:        f.created,
		CreatedAt: time.Date(2026, 4, 2, 9, 0, 0, 0, time.UTC),
		Canonical: canonical,
	}, nil
}

func (f *fakeService) GetResume(_ context.Context, _ uuid.UUID) (*types.Document, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getDoc.Clone(), nil
}

func (f *fakeService) UpdateSection(_ context.Context, _ uuid.UUID, payload types.SectionPayload) (*types.SectionPayload, error) {
	if f.gate != nil {
		<-f.gate
	}
	f.mu.Lock()
	f.updateCalls = append(f.updateCalls, payload)
	f.mu.Unlock()
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	canonical := payload
	if f.canonical != nil {
		canonical = f.canonical(payload)
	}
	return &canonical, nil
}

func (f *fakeService) DeleteResume(context.Context, uuid.UUID) error { return nil }

func (f *fakeService) ListResumes(context.Context) ([]remote.ResumeSummary, error) {
	return nil, nil
}

func validPersonalInfo() types.PersonalInfoPatch {
	return types.PersonalInfoPatch{
		FullName:    types.Str("Ada Lovelace"),
		Email:       types.Str("ada@example.com"),
		PhoneNumber: types.Str("0123456789"),
		Location:    types.Str("London"),
	}
}

func TestSaveSection_FirstSaveCreatesRecord(t *testing.T) {
	store := draft.NewStore(nil)
	service := &fakeService{}
	ctrl := NewController(store, service)

	require.NoError(t, store.Apply(0, validPersonalInfo()))
	require.NoError(t, ctrl.SaveSection(context.Background(), types.SectionPersonalInfo))

	// One record created, identity assigned, exactly one section sent.
	require.Len(t, service.createCalls, 1)
	assert.Empty(t, service.updateCalls)
	assert.Equal(t, service.created, store.ID())
	assert.NotNil(t, store.Document().CreatedAt)

	// Subsequent saves reuse the identity instead of forking a record.
	require.NoError(t, store.Apply(0, types.AboutMePatch{
		AboutMe: types.Str("A summary that is comfortably longer than the fifty character floor."),
	}))
	require.NoError(t, ctrl.SaveSection(context.Background(), types.SectionAboutMe))
	require.Len(t, service.createCalls, 1)
	require.Len(t, service.updateCalls, 1)
}

func TestSaveSection_ExperienceOptOutSendsEmptyList(t *testing.T) {
	store := draft.NewStore(nil)
	service := &fakeService{}
	ctrl := NewController(store, service)

	// Discriminator never set; other fields touched then cleared.
	require.NoError(t, store.Apply(0, types.ExperiencePatch{JobTitle: types.Str("x")}))
	require.NoError(t, store.Apply(0, types.ExperiencePatch{JobTitle: types.Str("")}))

	require.NoError(t, ctrl.SaveSection(context.Background(), types.SectionExperience))

	require.Len(t, service.createCalls, 1)
	assert.Empty(t, service.createCalls[0].Experience)

	// The canonical response is an empty list; the session keeps one
	// addressable instance so editing can resume immediately.
	doc := store.Document()
	require.GreaterOrEqual(t, len(doc.Experience), 1)
	require.NoError(t, store.Apply(0, types.ExperiencePatch{JobTitle: types.Str("Engineer")}))
}

func TestSaveSection_InvalidInstanceAbortsBeforeNetwork(t *testing.T) {
	store := draft.NewStore(nil)
	service := &fakeService{}
	ctrl := NewController(store, service)

	require.NoError(t, store.Apply(0, types.EducationPatch{
		Degree:      types.Str("BSc Computer Science"),
		Institution: types.Str("MIT"),
		Location:    types.Str("Cambridge"),
		StartDate:   types.Str("2019-09"),
		EndDate:     types.Str("2023-06"),
		CGPA:        types.Str("3.8"),
	}))
	require.NoError(t, store.Apply(types.AppendInstance, types.EducationPatch{Degree: types.Str("MSc")}))

	err := ctrl.SaveSection(context.Background(), types.SectionEducation)

	var vferr *ValidationFailedError
	require.ErrorAs(t, err, &vferr)
	assert.Equal(t, types.SectionEducation, vferr.Section)
	for _, fe := range vferr.Err.Fields {
		assert.Equal(t, 1, fe.Index)
	}
	// All-or-nothing at save-call granularity: the valid first instance
	// was not persisted either.
	assert.Empty(t, service.createCalls)
	assert.Empty(t, service.updateCalls)
}

func TestSaveSection_NetworkFailureLeavesStoreUnchanged(t *testing.T) {
	store := draft.NewStore(nil)
	service := &fakeService{createErr: errors.New("connection refused")}
	ctrl := NewController(store, service)

	require.NoError(t, store.Apply(0, validPersonalInfo()))
	before := store.Document()

	err := ctrl.SaveSection(context.Background(), types.SectionPersonalInfo)
	var serr *SaveError
	require.ErrorAs(t, err, &serr)

	assert.Equal(t, before, store.Document())
	assert.Equal(t, uuid.Nil, store.ID())

	// Retry after the failure clears succeeds.
	service.createErr = nil
	require.NoError(t, ctrl.SaveSection(context.Background(), types.SectionPersonalInfo))
	assert.Equal(t, service.created, store.ID())
}

func TestSaveSection_CanonicalResponseWins(t *testing.T) {
	store := draft.NewStore(nil)
	service := &fakeService{
		canonical: func(p types.SectionPayload) types.SectionPayload {
			// Server normalizes the tag list.
			p.Skills = []string{"Go", "PostgreSQL"}
			return p
		},
	}
	ctrl := NewController(store, service)

	require.NoError(t, store.Apply(0, types.SkillsPatch{Skills: []string{"  go ", "postgres"}}))
	require.NoError(t, ctrl.SaveSection(context.Background(), types.SectionSkills))

	assert.Equal(t, []string{"Go", "PostgreSQL"}, store.Document().Skills)
}

func TestSaveSection_DropsEmptyInstancesFromPayload(t *testing.T) {
	store := draft.NewStore(nil)
	service := &fakeService{}
	ctrl := NewController(store, service)

	require.NoError(t, store.Apply(0, types.ProjectPatch{
		ProjectTitle: types.Str("CLI tool"),
		Description:  types.Str("A resume CLI"),
	}))
	require.NoError(t, store.Apply(types.AppendInstance, types.ProjectPatch{}))

	require.NoError(t, ctrl.SaveSection(context.Background(), types.SectionProjects))
	require.Len(t, service.createCalls, 1)
	assert.Len(t, service.createCalls[0].Projects, 1)
}

func TestSaveSection_ConcurrentSavesShareOneCall(t *testing.T) {
	doc := types.NewDocument()
	doc.ID = uuid.New()
	doc.Skills = []string{"Go"}
	store := draft.NewStore(doc)

	gate := make(chan struct{})
	service := &fakeService{gate: gate}
	ctrl := NewController(store, service)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = ctrl.SaveSection(context.Background(), types.SectionSkills)
		}(i)
	}

	// Let both goroutines reach the controller before releasing.
	time.Sleep(50 * time.Millisecond)
	close(gate)
	wg.Wait()

	require.NoError(t, errs[0])
	require.NoError(t, errs[1])
	assert.Len(t, service.updateCalls, 1, "second save must wait for the in-flight one, not re-issue")
}

func TestSaveSection_StaleResponseDiscarded(t *testing.T) {
	doc := types.NewDocument()
	doc.ID = uuid.New()
	doc.Skills = []string{"Go"}
	store := draft.NewStore(doc)

	gate := make(chan struct{})
	service := &fakeService{gate: gate}
	ctrl := NewController(store, service)

	done := make(chan error, 1)
	go func() {
		done <- ctrl.SaveSection(context.Background(), types.SectionSkills)
	}()

	// While the save is in flight the session loads a different resume.
	time.Sleep(20 * time.Millisecond)
	other := types.NewDocument()
	other.ID = uuid.New()
	store.Replace(other)
	close(gate)

	err := <-done
	var stale *StaleResponseError
	require.ErrorAs(t, err, &stale)
	assert.Empty(t, store.Document().Skills, "stale canonical data must not reach the new session")
}

func TestSaveSection_UnknownSection(t *testing.T) {
	ctrl := NewController(draft.NewStore(nil), &fakeService{})
	err := ctrl.SaveSection(context.Background(), types.SectionType("hobbies"))
	var unknown *types.UnknownSectionError
	require.ErrorAs(t, err, &unknown)
}

func TestLoad_BackfillsMissingSections(t *testing.T) {
	id := uuid.New()
	fetched := &types.Document{ID: id}
	fetched.PersonalInfo.FullName = "Ada Lovelace"

	store := draft.NewStore(nil)
	ctrl := NewController(store, &fakeService{getDoc: fetched})

	require.NoError(t, ctrl.Load(context.Background(), id))

	doc := store.Document()
	assert.Equal(t, id, doc.ID)
	assert.Equal(t, "Ada Lovelace", doc.PersonalInfo.FullName)
	// Absent sections come back as editable empty defaults.
	assert.Len(t, doc.Education, 1)
	assert.Len(t, doc.Languages, 1)
	assert.NotNil(t, doc.Skills)
	assert.NotNil(t, doc.Interests)
}

func TestLoad_FailureLeavesStore(t *testing.T) {
	store := draft.NewStore(nil)
	ctrl := NewController(store, &fakeService{getErr: errors.New("boom")})

	err := ctrl.Load(context.Background(), uuid.New())
	var lerr *LoadError
	require.ErrorAs(t, err, &lerr)
	assert.Equal(t, uuid.Nil, store.ID())
}
