package ops

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/GuilhermeCostaProenca/arkode-dev-toolkit/internal/config"
	"github.com/GuilhermeCostaProenca/arkode-dev-toolkit/internal/errors"
	"github.com/GuilhermeCostaProenca/arkode-dev-toolkit/internal/kv"
	"github.com/GuilhermeCostaProenca/arkode-dev-toolkit/internal/mock"
	"github.com/GuilhermeCostaProenca/arkode-dev-toolkit/internal/model"
	"github.com/GuilhermeCostaProenca/arkode-dev-toolkit/internal/source"
	"github.com/GuilhermeCostaProenca/arkode-dev-toolkit/internal/store"
)

type recorder struct {
	mu  sync.Mutex
	got []Notification
}

func (r *recorder) Notify(n Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.got = append(r.got, n)
}

func (r *recorder) last() Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.got) == 0 {
		return Notification{}
	}
	return r.got[len(r.got)-1]
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.got)
}

// countingSource counts calls and can fail every call.
type countingSource struct {
	source.DataSource
	mu    sync.Mutex
	calls int
	err   error
}

func (c *countingSource) hit() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	return c.err
}

func (c *countingSource) Login(ctx context.Context, email, password string) (model.AuthResponse, error) {
	if err := c.hit(); err != nil {
		return model.AuthResponse{}, err
	}
	return c.DataSource.Login(ctx, email, password)
}

func (c *countingSource) ListProjects(ctx context.Context, id string) ([]model.Project, error) {
	if err := c.hit(); err != nil {
		return nil, err
	}
	return c.DataSource.ListProjects(ctx, id)
}

func (c *countingSource) ListLeads(ctx context.Context) ([]model.Lead, error) {
	if err := c.hit(); err != nil {
		return nil, err
	}
	return c.DataSource.ListLeads(ctx)
}

func (c *countingSource) CreateWorkspace(ctx context.Context, in model.NewWorkspace) (model.Workspace, error) {
	if err := c.hit(); err != nil {
		return model.Workspace{}, err
	}
	return c.DataSource.CreateWorkspace(ctx, in)
}

func newTestApp(t *testing.T) (*App, *recorder, *countingSource) {
	t.Helper()
	stores, err := store.Open(context.Background(), kv.NewMemory())
	if err != nil {
		t.Fatalf("store.Open failed: %v", err)
	}
	src := &countingSource{DataSource: mock.New(mock.Options{StableStats: true, Seed: 7})}
	rec := &recorder{}
	app := New(src, stores, rec, zerolog.Nop())
	app.ReplyDelay = 0
	return app, rec, src
}

func TestLogin_Success(t *testing.T) {
	app, rec, _ := newTestApp(t)
	ctx := context.Background()

	user, err := app.Login(ctx, mock.DemoEmail, mock.DemoPassword)
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if user.Name != "John Developer" {
		t.Errorf("user.Name = %q, want %q", user.Name, "John Developer")
	}
	st := app.Stores.Auth.State()
	if !st.IsAuthenticated {
		t.Error("expected authenticated state")
	}
	if !strings.HasPrefix(st.Token, "mock_jwt_token_") {
		t.Errorf("token = %q, want mock_jwt_token_ prefix", st.Token)
	}
	if got := rec.last().Description; got != "Welcome back, John" {
		t.Errorf("notification = %q, want %q", got, "Welcome back, John")
	}
}

func TestLogin_BadCredentialsLeavesStateUntouched(t *testing.T) {
	app, rec, _ := newTestApp(t)
	ctx := context.Background()

	_, err := app.Login(ctx, mock.DemoEmail, "nope")
	if !errors.Is(err, errors.ErrInvalidCredentials) {
		t.Fatalf("err = %v, want INVALID_CREDENTIALS", err)
	}
	if app.Stores.Auth.IsAuthenticated() {
		t.Error("auth state changed on failed login")
	}
	n := rec.last()
	if n.Variant != VariantDestructive || n.Title != "Authentication failed" {
		t.Errorf("notification = %+v", n)
	}
}

func TestGuards_NoSourceCall(t *testing.T) {
	app, _, src := newTestApp(t)
	ctx := context.Background()

	checks := []struct {
		name string
		err  error
	}{
		{"login", func() error { _, err := app.Login(ctx, "", "x"); return err }()},
		{"workspace", func() error { _, err := app.CreateWorkspace(ctx, "  "); return err }()},
		{"project", func() error { _, err := app.CreateProject(ctx, ""); return err }()},
		{"lead", func() error { _, err := app.CreateLead(ctx, model.NewLead{Name: "A"}); return err }()},
		{"calendar", func() error {
			_, err := app.CreateCalendarItem(ctx, model.NewCalendarItem{Title: "T"})
			return err
		}()},
		{"article", func() error { _, err := app.CreateArticle(ctx, "", "a,b", ""); return err }()},
		{"generate", func() error { _, err := app.GenerateArtifact(ctx, model.GenerateRequest{}); return err }()},
		{"message", func() error { _, err := app.SendMessage(ctx, " "); return err }()},
	}
	for _, c := range checks {
		if !errors.Is(c.err, errors.ErrInvalidRequest) {
			t.Errorf("%s: err = %v, want INVALID_REQUEST", c.name, c.err)
		}
	}
	if src.calls != 0 {
		t.Errorf("source calls = %d, want 0", src.calls)
	}
}

func TestCreateProject_RequiresActiveWorkspace(t *testing.T) {
	app, _, _ := newTestApp(t)

	_, err := app.CreateProject(context.Background(), "Site")
	if !errors.Is(err, errors.ErrInvalidRequest) {
		t.Fatalf("err = %v, want INVALID_REQUEST", err)
	}
}

func TestWorkspaces_LoadSelectsFirstAndCreateAppends(t *testing.T) {
	app, rec, _ := newTestApp(t)
	ctx := context.Background()

	list, err := app.LoadWorkspaces(ctx)
	if err != nil {
		t.Fatalf("LoadWorkspaces failed: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("len = %d, want 3", len(list))
	}
	if active := app.Stores.Workspace.Active(); active == nil || active.ID != "1" {
		t.Fatalf("active = %+v, want workspace 1", active)
	}

	w, err := app.CreateWorkspace(ctx, "New Team")
	if err != nil {
		t.Fatalf("CreateWorkspace failed: %v", err)
	}
	if w.Slug != "new-team" {
		t.Errorf("slug = %q, want %q", w.Slug, "new-team")
	}
	if got := len(app.Stores.Workspace.Workspaces()); got != 4 {
		t.Errorf("len = %d, want 4", got)
	}
	if app.Stores.Workspace.Active().ID != "1" {
		t.Error("create must not change the active workspace")
	}
	if rec.last().Title != "Workspace created" {
		t.Errorf("title = %q", rec.last().Title)
	}
}

func TestSelectWorkspace_ClearsProjects(t *testing.T) {
	app, _, _ := newTestApp(t)
	ctx := context.Background()

	if _, err := app.LoadWorkspaces(ctx); err != nil {
		t.Fatal(err)
	}
	if _, err := app.LoadProjects(ctx); err != nil {
		t.Fatal(err)
	}
	if app.Stores.Project.Projects.Len() != 2 {
		t.Fatalf("projects = %d, want 2", app.Stores.Project.Projects.Len())
	}

	if _, err := app.SelectWorkspace(ctx, "2"); err != nil {
		t.Fatalf("SelectWorkspace failed: %v", err)
	}
	if app.Stores.Project.Projects.Len() != 0 {
		t.Error("projects should be cleared on workspace switch")
	}

	projects, err := app.LoadProjects(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(projects) != 1 || projects[0].Name != "Client Portal" {
		t.Errorf("projects = %+v", projects)
	}

	if _, err := app.SelectWorkspace(ctx, "missing"); !errors.Is(err, errors.ErrNotFound) {
		t.Errorf("err = %v, want NOT_FOUND", err)
	}
}

func TestOpenProject_NotFoundKeepsCurrent(t *testing.T) {
	app, rec, _ := newTestApp(t)
	ctx := context.Background()

	d, err := app.OpenProject(ctx, "1")
	if err != nil {
		t.Fatalf("OpenProject failed: %v", err)
	}
	if d.Stats.Stories < 10 || d.Stats.Stories >= 60 {
		t.Errorf("stories = %d, want in [10,60)", d.Stats.Stories)
	}

	_, err = app.OpenProject(ctx, "999")
	if !errors.Is(err, errors.ErrNotFound) {
		t.Fatalf("err = %v, want NOT_FOUND", err)
	}
	if cur := app.Stores.Project.Current(); cur == nil || cur.ID != "1" {
		t.Errorf("current = %+v, want project 1", cur)
	}
	if rec.last().Title != "Failed to load project" {
		t.Errorf("title = %q", rec.last().Title)
	}
}

func TestLoad_FailureKeepsStaleState(t *testing.T) {
	app, rec, src := newTestApp(t)
	ctx := context.Background()

	if _, err := app.LoadLeads(ctx); err != nil {
		t.Fatal(err)
	}
	before := app.Stores.Agency.Leads.Items()

	src.err = errors.NewTransport("GET", "/agency/leads", fmt.Errorf("connection refused"))
	_, err := app.LoadLeads(ctx)
	if !errors.Is(err, errors.ErrTransport) {
		t.Fatalf("err = %v, want TRANSPORT", err)
	}
	if got := app.Stores.Agency.Leads.Items(); len(got) != len(before) {
		t.Errorf("leads = %d, want %d", len(got), len(before))
	}
	if n := rec.last(); n.Title != "Load Failed" || n.Variant != VariantDestructive {
		t.Errorf("notification = %+v", n)
	}
}

func TestCreate_FailureNotifies(t *testing.T) {
	app, rec, src := newTestApp(t)
	src.err = errors.NewHTTP(500, "POST", "/workspaces", "boom")

	_, err := app.CreateWorkspace(context.Background(), "X")
	if !errors.Is(err, errors.ErrHTTP) {
		t.Fatalf("err = %v, want HTTP_ERROR", err)
	}
	if rec.last().Title != "Failed to create workspace" {
		t.Errorf("title = %q", rec.last().Title)
	}
	if len(app.Stores.Workspace.Workspaces()) != 0 {
		t.Error("store changed on failed create")
	}
}

func TestCreateThenLoad_Policies(t *testing.T) {
	for _, policy := range []string{config.PolicyOptimistic, config.PolicyLatest} {
		t.Run(policy, func(t *testing.T) {
			app, _, _ := newTestApp(t)
			app.Policy = policy
			ctx := context.Background()

			if _, err := app.LoadLeads(ctx); err != nil {
				t.Fatal(err)
			}
			lead, err := app.CreateLead(ctx, model.NewLead{Name: "Rita", Email: "rita@example.com"})
			if err != nil {
				t.Fatal(err)
			}
			if lead.Status != model.LeadNew {
				t.Errorf("status = %q, want new", lead.Status)
			}
			if got := app.Stores.Agency.Leads.Len(); got != 4 {
				t.Fatalf("len = %d, want 4", got)
			}

			// The mock keeps created records, so a reload agrees under both policies.
			list, err := app.LoadLeads(ctx)
			if err != nil {
				t.Fatal(err)
			}
			if len(list) != 4 || list[3].ID != lead.ID {
				t.Errorf("list = %+v", list)
			}
		})
	}
}

func TestLoadAgency(t *testing.T) {
	app, _, _ := newTestApp(t)

	if err := app.LoadAgency(context.Background()); err != nil {
		t.Fatalf("LoadAgency failed: %v", err)
	}
	a := app.Stores.Agency
	if a.Leads.Len() != 3 || a.Clients.Len() != 3 || a.Proposals.Len() != 2 || a.Calendar.Len() != 3 {
		t.Errorf("lens = %d %d %d %d", a.Leads.Len(), a.Clients.Len(), a.Proposals.Len(), a.Calendar.Len())
	}
	if a.NewLeads() != 1 {
		t.Errorf("NewLeads = %d, want 1", a.NewLeads())
	}
}

func TestOpenProposal_HasMarkdown(t *testing.T) {
	app, _, _ := newTestApp(t)

	p, err := app.OpenProposal(context.Background(), "2")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(p.Markdown, "# Nimbus Analytics MVP") {
		t.Errorf("markdown = %q", p.Markdown)
	}
	if cur := app.Stores.Agency.CurrentProposal(); cur == nil || cur.ID != "2" {
		t.Errorf("current = %+v", cur)
	}
}

func TestCreateArticle_ParsesTags(t *testing.T) {
	app, _, _ := newTestApp(t)
	ctx := context.Background()

	art, err := app.CreateArticle(ctx, "Testing Guide", " go, testing ,go,, ", "# Testing")
	if err != nil {
		t.Fatal(err)
	}
	if strings.Join(art.Tags, "|") != "go|testing" {
		t.Errorf("tags = %v, want [go testing]", art.Tags)
	}

	art, err = app.CreateArticle(ctx, "Untagged", "", "")
	if err != nil {
		t.Fatal(err)
	}
	if art.Tags == nil || len(art.Tags) != 0 {
		t.Errorf("tags = %#v, want empty slice", art.Tags)
	}
}

func TestSearchArticles(t *testing.T) {
	app, _, _ := newTestApp(t)
	ctx := context.Background()
	if _, err := app.LoadArticles(ctx); err != nil {
		t.Fatal(err)
	}

	got := app.SearchArticles("GUIDE", nil)
	if len(got) != 2 {
		t.Errorf("search guide = %d, want 2", len(got))
	}
	got = app.SearchArticles("", []string{"react"})
	if len(got) != 1 || got[0].ID != "2" {
		t.Errorf("tag react = %+v", got)
	}
	got = app.SearchArticles("", nil)
	if len(got) != 3 {
		t.Errorf("unfiltered = %d, want 3", len(got))
	}
}

func TestGenerateArtifact_AppendsMessage(t *testing.T) {
	app, rec, _ := newTestApp(t)
	ctx := context.Background()

	art, err := app.GenerateArtifact(ctx, model.GenerateRequest{Type: model.ArtifactBacklog, Prompt: "MVP"})
	if err != nil {
		t.Fatal(err)
	}
	if len(app.Stores.Orion.Artifacts()) != 1 || app.Stores.Orion.Artifacts()[0].ID != art.ID {
		t.Error("artifact not stored")
	}
	sess := app.Stores.Orion.CurrentSession()
	if sess == nil || len(sess.Messages) != 1 {
		t.Fatalf("session = %+v", sess)
	}
	if sess.Messages[0].Content != "Generated backlog artifact" || sess.Messages[0].Role != model.RoleAssistant {
		t.Errorf("message = %+v", sess.Messages[0])
	}
	if rec.last().Title != "Artifact Generated" {
		t.Errorf("title = %q", rec.last().Title)
	}
}

func TestSendMessage(t *testing.T) {
	app, _, _ := newTestApp(t)

	reply, err := app.SendMessage(context.Background(), "hello")
	if err != nil {
		t.Fatal(err)
	}
	if reply.Content != AssistantReply {
		t.Errorf("reply = %q", reply.Content)
	}
	msgs := app.Stores.Orion.CurrentSession().Messages
	if len(msgs) != 2 || msgs[0].Role != model.RoleUser || msgs[0].Content != "hello" {
		t.Errorf("messages = %+v", msgs)
	}
}

func TestSendMessage_CanceledDuringReply(t *testing.T) {
	app, _, _ := newTestApp(t)
	app.ReplyDelay = time.Hour
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := app.SendMessage(ctx, "hello")
	if err == nil {
		t.Fatal("expected context error")
	}
	if n := len(app.Stores.Orion.CurrentSession().Messages); n != 1 {
		t.Errorf("messages = %d, want 1", n)
	}
}

func TestGitHub(t *testing.T) {
	app, _, _ := newTestApp(t)
	ctx := context.Background()

	ok, err := app.ConnectGitHub(ctx)
	if err != nil || !ok {
		t.Fatalf("ConnectGitHub = %v, %v", ok, err)
	}
	repos, err := app.ListGitHubRepos(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(repos) != 3 || repos[0].FullName != "arkode-dev/arkode-web" {
		t.Errorf("repos = %+v", repos)
	}
}

func TestLoadDashboard(t *testing.T) {
	app, _, _ := newTestApp(t)
	ctx := context.Background()
	if _, err := app.Login(ctx, mock.DemoEmail, mock.DemoPassword); err != nil {
		t.Fatal(err)
	}

	d, err := app.LoadDashboard(ctx)
	if err != nil {
		t.Fatalf("LoadDashboard failed: %v", err)
	}
	if !d.Online {
		t.Error("expected online")
	}
	if d.Greeting != "Welcome back, John" {
		t.Errorf("greeting = %q", d.Greeting)
	}
	if d.Mode != source.ModeMock {
		t.Errorf("mode = %q", d.Mode)
	}
	if d.ActiveWorkspace == nil || d.ActiveWorkspace.ID != "1" {
		t.Errorf("active = %+v", d.ActiveWorkspace)
	}
	if len(d.Projects) != 2 {
		t.Errorf("projects = %d, want 2", len(d.Projects))
	}
}

func TestLogout(t *testing.T) {
	app, rec, _ := newTestApp(t)
	ctx := context.Background()
	if _, err := app.Login(ctx, mock.DemoEmail, mock.DemoPassword); err != nil {
		t.Fatal(err)
	}
	before := rec.count()

	if err := app.Logout(ctx); err != nil {
		t.Fatal(err)
	}
	if app.Stores.Auth.IsAuthenticated() {
		t.Error("still authenticated")
	}
	if rec.count() != before+1 || rec.last().Title != "Signed out" {
		t.Errorf("notification = %+v", rec.last())
	}
}

func TestSetDataMode(t *testing.T) {
	app, rec, _ := newTestApp(t)
	ctx := context.Background()
	persist := kv.NewMemory()
	cfg := config.DefaultConfig()

	changed, err := app.SetDataMode(ctx, persist, cfg, source.ModeLive)
	if err != nil {
		t.Fatal(err)
	}
	if !changed {
		t.Error("expected change from mock to live")
	}
	if rec.last().Title != "Data mode updated" {
		t.Errorf("notification = %+v", rec.last())
	}
	mode, err := source.ResolveMode(ctx, cfg, persist)
	if err != nil || mode != source.ModeLive {
		t.Errorf("ResolveMode = %q, %v", mode, err)
	}

	changed, err = app.SetDataMode(ctx, persist, cfg, source.ModeLive)
	if err != nil || changed {
		t.Errorf("second set = %v, %v; want unchanged", changed, err)
	}
}

func TestClearCache(t *testing.T) {
	app, rec, _ := newTestApp(t)
	ctx := context.Background()
	if _, err := app.Login(ctx, mock.DemoEmail, mock.DemoPassword); err != nil {
		t.Fatal(err)
	}
	if _, err := app.LoadWorkspaces(ctx); err != nil {
		t.Fatal(err)
	}
	app.Stores.Orion.AddMessage("hi", model.RoleUser)

	if err := app.ClearCache(ctx); err != nil {
		t.Fatal(err)
	}
	if app.Stores.Auth.IsAuthenticated() {
		t.Error("still authenticated")
	}
	if len(app.Stores.Workspace.Workspaces()) != 0 || app.Stores.Workspace.Active() != nil {
		t.Error("workspace state not cleared")
	}
	if app.Stores.Orion.CurrentSession() != nil {
		t.Error("session not cleared")
	}
	if rec.last().Title != "Cache cleared" {
		t.Errorf("notification = %+v", rec.last())
	}
}

// slowLeads snapshots the lead list when ListLeads starts and returns it
// only after release is closed.
type slowLeads struct {
	source.DataSource
	started chan struct{}
	release chan struct{}
}

func (s *slowLeads) ListLeads(ctx context.Context) ([]model.Lead, error) {
	list, err := s.DataSource.ListLeads(ctx)
	close(s.started)
	<-s.release
	return list, err
}

func TestCreateDuringLoad_Policies(t *testing.T) {
	for _, tc := range []struct {
		policy  string
		wantLen int
	}{
		{config.PolicyOptimistic, 4},
		{config.PolicyLatest, 3},
	} {
		t.Run(tc.policy, func(t *testing.T) {
			app, _, _ := newTestApp(t)
			app.Policy = tc.policy
			slow := &slowLeads{
				DataSource: app.Source,
				started:    make(chan struct{}),
				release:    make(chan struct{}),
			}
			app.Source = slow
			ctx := context.Background()

			done := make(chan error, 1)
			go func() {
				_, err := app.LoadLeads(ctx)
				done <- err
			}()
			<-slow.started

			lead, err := app.CreateLead(ctx, model.NewLead{Name: "Rita", Email: "rita@example.com"})
			if err != nil {
				t.Fatal(err)
			}
			close(slow.release)
			if err := <-done; err != nil {
				t.Fatal(err)
			}

			items := app.Stores.Agency.Leads.Items()
			if len(items) != tc.wantLen {
				t.Fatalf("len = %d, want %d: %+v", len(items), tc.wantLen, items)
			}
			if tc.policy == config.PolicyOptimistic && items[3].ID != lead.ID {
				t.Errorf("created lead not kept at the end: %+v", items)
			}
		})
	}
}

// brokenKV fails every write once failing is set.
type brokenKV struct {
	kv.Store
	mu      sync.Mutex
	failing bool
}

func (b *brokenKV) fail(on bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failing = on
}

func (b *brokenKV) check() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.failing {
		return fmt.Errorf("disk full")
	}
	return nil
}

func (b *brokenKV) Set(ctx context.Context, key, value string) error {
	if err := b.check(); err != nil {
		return err
	}
	return b.Store.Set(ctx, key, value)
}

func (b *brokenKV) Delete(ctx context.Context, key string) error {
	if err := b.check(); err != nil {
		return err
	}
	return b.Store.Delete(ctx, key)
}

func newBrokenApp(t *testing.T) (*App, *recorder, *brokenKV) {
	t.Helper()
	persist := &brokenKV{Store: kv.NewMemory()}
	stores, err := store.Open(context.Background(), persist)
	if err != nil {
		t.Fatalf("store.Open failed: %v", err)
	}
	rec := &recorder{}
	app := New(mock.New(mock.Options{StableStats: true, Seed: 7}), stores, rec, zerolog.Nop())
	app.ReplyDelay = 0
	return app, rec, persist
}

func TestLogin_PersistFailure(t *testing.T) {
	app, rec, persist := newBrokenApp(t)
	persist.fail(true)

	if _, err := app.Login(context.Background(), mock.DemoEmail, mock.DemoPassword); err == nil {
		t.Fatal("expected error")
	}
	if app.Stores.Auth.IsAuthenticated() {
		t.Error("store authenticated after failed login")
	}
	if rec.last().Variant != VariantDestructive {
		t.Errorf("last toast = %+v, want destructive", rec.last())
	}
}

func TestCreateWorkspace_PersistFailure(t *testing.T) {
	app, _, persist := newBrokenApp(t)
	ctx := context.Background()
	if _, err := app.LoadWorkspaces(ctx); err != nil {
		t.Fatal(err)
	}
	persist.fail(true)

	if _, err := app.CreateWorkspace(ctx, "Design Lab"); err == nil {
		t.Fatal("expected error")
	}
	if got := len(app.Stores.Workspace.Workspaces()); got != 3 {
		t.Errorf("len = %d, want 3", got)
	}

	if _, err := app.SelectWorkspace(ctx, "2"); err == nil {
		t.Fatal("expected error")
	}
	if got := app.Stores.Workspace.Active().ID; got != "1" {
		t.Errorf("active = %q, want 1", got)
	}
}

func TestClearCache_PersistFailure(t *testing.T) {
	app, _, persist := newBrokenApp(t)
	ctx := context.Background()
	if _, err := app.Login(ctx, mock.DemoEmail, mock.DemoPassword); err != nil {
		t.Fatal(err)
	}
	persist.fail(true)

	if err := app.ClearCache(ctx); err == nil {
		t.Fatal("expected error")
	}
	if !app.Stores.Auth.IsAuthenticated() {
		t.Error("session dropped although the reset failed")
	}
}
