package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GuilhermeCostaProenca/arkode-dev-toolkit/internal/api"
	"github.com/GuilhermeCostaProenca/arkode-dev-toolkit/internal/errors"
	"github.com/GuilhermeCostaProenca/arkode-dev-toolkit/internal/kv"
	"github.com/GuilhermeCostaProenca/arkode-dev-toolkit/internal/mock"
	"github.com/GuilhermeCostaProenca/arkode-dev-toolkit/internal/model"
)

func newTestServer(t *testing.T, secret string) (*httptest.Server, *api.Client, kv.Store) {
	t.Helper()
	h := New(Config{
		Source: mock.New(mock.Options{StableStats: true, Seed: 3}),
		Secret: secret,
		Logger: zerolog.Nop(),
	})
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	tokens := kv.NewMemory()
	c := api.New(api.Options{BaseURL: srv.URL, Tokens: api.KVTokens{Store: tokens}, Timeout: 5 * time.Second})
	return srv, c, tokens
}

func login(t *testing.T, c *api.Client, tokens kv.Store) model.AuthResponse {
	t.Helper()
	ctx := context.Background()
	res, err := c.Login(ctx, mock.DemoEmail, mock.DemoPassword)
	require.NoError(t, err)
	require.NoError(t, tokens.Set(ctx, kv.KeyToken, res.Token))
	return res
}

func TestLogin_IssuesJWT(t *testing.T) {
	_, c, tokens := newTestServer(t, "s3cret")

	res := login(t, c, tokens)
	assert.Equal(t, mock.DemoUser, res.User)
	assert.Equal(t, 3, len(strings.Split(res.Token, ".")))

	sub, err := authenticateJWT(res.Token, []byte("s3cret"), time.Now)
	require.NoError(t, err)
	assert.Equal(t, "1", sub)
}

func TestLogin_BadCredentials(t *testing.T) {
	srv, _, _ := newTestServer(t, "s3cret")

	resp, err := http.Post(srv.URL+"/auth/login", "application/json",
		strings.NewReader(`{"email":"john@arkode.dev","password":"wrong"}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Incorrect email or password", body["detail"])
}

func TestAuth_RequiredWhenSecretSet(t *testing.T) {
	_, c, tokens := newTestServer(t, "s3cret")
	ctx := context.Background()

	h, err := c.Health(ctx)
	require.NoError(t, err)
	assert.True(t, h.OK)

	_, err = c.ListWorkspaces(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrHTTP))
	assert.Equal(t, http.StatusUnauthorized, errors.StatusOf(err))

	require.NoError(t, tokens.Set(ctx, kv.KeyToken, "garbage"))
	_, err = c.ListWorkspaces(ctx)
	assert.Equal(t, http.StatusUnauthorized, errors.StatusOf(err))

	login(t, c, tokens)
	ws, err := c.ListWorkspaces(ctx)
	require.NoError(t, err)
	assert.Len(t, ws, 3)
}

func TestAuth_ExpiredToken(t *testing.T) {
	secret := []byte("s3cret")
	past := time.Now().Add(-2 * time.Hour)
	tok, err := signToken(secret, "1", past, 30*time.Minute)
	require.NoError(t, err)

	_, err = authenticateJWT(tok, secret, time.Now)
	assert.Error(t, err)
}

func TestAuth_OpenWithoutSecret(t *testing.T) {
	_, c, _ := newTestServer(t, "")

	ws, err := c.ListWorkspaces(context.Background())
	require.NoError(t, err)
	assert.Len(t, ws, 3)
}

func TestRoundTrip_Resources(t *testing.T) {
	_, c, tokens := newTestServer(t, "s3cret")
	login(t, c, tokens)
	ctx := context.Background()

	w, err := c.CreateWorkspace(ctx, model.NewWorkspace{Name: "Labs"})
	require.NoError(t, err)
	assert.Equal(t, "labs", w.Slug)

	p, err := c.CreateProject(ctx, model.NewProject{WorkspaceID: w.ID, Name: "Prototype"})
	require.NoError(t, err)

	projects, err := c.ListProjects(ctx, w.ID)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, p.ID, projects[0].ID)

	d, err := c.GetProject(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Prototype", d.Name)
	assert.GreaterOrEqual(t, d.Stats.Tasks, 20)

	_, err = c.GetProject(ctx, "nope")
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, errors.StatusOf(err))

	prop, err := c.GetProposal(ctx, "1")
	require.NoError(t, err)
	assert.Contains(t, prop.Markdown, "Acme Corp Portal Redesign")

	lead, err := c.CreateLead(ctx, model.NewLead{Name: "Rita", Email: "rita@example.com"})
	require.NoError(t, err)
	assert.Equal(t, model.LeadNew, lead.Status)

	_, err = c.CreateCalendarItem(ctx, model.NewCalendarItem{Title: "Post", Date: "not-a-date"})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, errors.StatusOf(err))

	art, err := c.GenerateArtifact(ctx, model.GenerateRequest{Type: model.ArtifactProposal, Prompt: "site"})
	require.NoError(t, err)
	assert.Equal(t, model.ArtifactProposal, art.Type)
	assert.NotEmpty(t, art.Data)

	a, err := c.CreateArticle(ctx, model.NewArticle{Title: "Notes", Tags: []string{"go"}})
	require.NoError(t, err)
	got, err := c.GetArticle(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "Notes", got.Title)

	conn, err := c.ConnectGitHub(ctx)
	require.NoError(t, err)
	assert.True(t, conn.OK)

	repos, err := c.ListGitHubRepos(ctx)
	require.NoError(t, err)
	assert.Len(t, repos, 3)
}

func TestListProjects_RequiresWorkspace(t *testing.T) {
	srv, _, _ := newTestServer(t, "")

	resp, err := http.Get(srv.URL + "/projects")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRequestID_Echoed(t *testing.T) {
	srv, _, _ := newTestServer(t, "")

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/health", nil)
	require.NoError(t, err)
	req.Header.Set("X-Request-ID", "abc-123")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "abc-123", resp.Header.Get("X-Request-ID"))

	resp2, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp2.Body.Close()
	assert.NotEmpty(t, resp2.Header.Get("X-Request-ID"))
}

func TestBadJSON(t *testing.T) {
	srv, _, _ := newTestServer(t, "")

	resp, err := http.Post(srv.URL+"/workspaces", "application/json", strings.NewReader("{"))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
