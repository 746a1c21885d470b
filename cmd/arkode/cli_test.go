package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/GuilhermeCostaProenca/arkode-dev-toolkit/internal/model"
	"github.com/GuilhermeCostaProenca/arkode-dev-toolkit/internal/ops"
)

// runCLI runs one invocation against the sqlite store under home.
func runCLI(t *testing.T, home string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	app := newCLIApp(&out, &errOut)
	argv := append([]string{"arkode", "--home", home, "--no-delay", "--quiet"}, args...)
	err := app.Run(argv)
	return out.String(), errOut.String(), err
}

func mustRun(t *testing.T, home string, args ...string) (string, string) {
	t.Helper()
	out, errOut, err := runCLI(t, home, args...)
	if err != nil {
		t.Fatalf("arkode %s: %v\nstderr: %s", strings.Join(args, " "), err, errOut)
	}
	return out, errOut
}

func TestLogin_ThenWhoami(t *testing.T) {
	home := t.TempDir()

	out, errOut := mustRun(t, home, "login", "--email", "john@arkode.dev", "--password", "password")
	if !strings.Contains(out, "John Developer") {
		t.Errorf("login output missing user: %q", out)
	}
	if !strings.Contains(errOut, "[ok] Welcome back!") {
		t.Errorf("expected success toast on stderr, got %q", errOut)
	}

	// The session survives across processes via the sqlite store.
	out, _ = mustRun(t, home, "--json", "whoami")
	var u model.User
	if err := json.Unmarshal([]byte(out), &u); err != nil {
		t.Fatalf("whoami json: %v (%q)", err, out)
	}
	if u.Email != "john@arkode.dev" || u.ID != "1" {
		t.Errorf("unexpected user: %+v", u)
	}

	mustRun(t, home, "logout")
	if _, _, err := runCLI(t, home, "whoami"); err == nil {
		t.Error("expected whoami to fail after logout")
	}
}

func TestLogin_BadCredentials(t *testing.T) {
	home := t.TempDir()
	_, errOut, err := runCLI(t, home, "login", "--email", "john@arkode.dev", "--password", "nope")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "INVALID_CREDENTIALS") {
		t.Errorf("error = %v, want INVALID_CREDENTIALS", err)
	}
	if !strings.Contains(errOut, "[!!]") {
		t.Errorf("expected destructive toast, got %q", errOut)
	}
}

func TestWhoami_Unauthenticated(t *testing.T) {
	_, _, err := runCLI(t, t.TempDir(), "whoami")
	if err == nil || !strings.Contains(err.Error(), "UNAUTHORIZED") {
		t.Fatalf("error = %v, want UNAUTHORIZED", err)
	}
}

func TestWorkspaces_ListJSON(t *testing.T) {
	out, _ := mustRun(t, t.TempDir(), "--json", "workspaces", "list")
	var ws []model.Workspace
	if err := json.Unmarshal([]byte(out), &ws); err != nil {
		t.Fatalf("decode: %v (%q)", err, out)
	}
	if len(ws) != 3 {
		t.Fatalf("got %d workspaces, want 3", len(ws))
	}
	if ws[0].Slug != "arkode-studio" {
		t.Errorf("first slug = %q", ws[0].Slug)
	}
}

func TestWorkspaces_UseThenProjects(t *testing.T) {
	home := t.TempDir()
	mustRun(t, home, "workspaces", "use", "2")

	out, _ := mustRun(t, home, "--json", "projects", "list")
	var ps []model.Project
	if err := json.Unmarshal([]byte(out), &ps); err != nil {
		t.Fatalf("decode: %v (%q)", err, out)
	}
	if len(ps) != 1 || ps[0].Name != "Client Portal" {
		t.Errorf("projects = %+v, want only Client Portal", ps)
	}
}

func TestProjects_DefaultWorkspaceTable(t *testing.T) {
	out, _ := mustRun(t, t.TempDir(), "projects", "list")
	for _, want := range []string{"ARKODE Web App", "Dashboard UI"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Client Portal") {
		t.Errorf("table leaked another workspace's project:\n%s", out)
	}
}

func TestProjects_ShowNotFound(t *testing.T) {
	_, _, err := runCLI(t, t.TempDir(), "projects", "show", "999")
	if err == nil || !strings.Contains(err.Error(), "NOT_FOUND") {
		t.Fatalf("error = %v, want NOT_FOUND", err)
	}
}

func TestKB_Search(t *testing.T) {
	out, _ := mustRun(t, t.TempDir(), "--json", "kb", "search", "--tag", "guide")
	var as []model.Article
	if err := json.Unmarshal([]byte(out), &as); err != nil {
		t.Fatalf("decode: %v (%q)", err, out)
	}
	if len(as) != 2 {
		t.Fatalf("got %d articles tagged guide, want 2", len(as))
	}

	out, _ = mustRun(t, t.TempDir(), "kb", "search", "react")
	if !strings.Contains(out, "React Component Patterns") || strings.Contains(out, "API Design Guidelines") {
		t.Errorf("unexpected search table:\n%s", out)
	}
}

func TestProposals_ShowPrintsMarkdown(t *testing.T) {
	out, _ := mustRun(t, t.TempDir(), "proposals", "show", "1")
	for _, want := range []string{"## Overview", "## Scope", "## Investment"} {
		if !strings.Contains(out, want) {
			t.Errorf("markdown missing %q:\n%s", want, out)
		}
	}
}

func TestLeads_CreateValidation(t *testing.T) {
	_, _, err := runCLI(t, t.TempDir(), "leads", "create", "--name", "Paula")
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "INVALID_REQUEST") || !strings.Contains(err.Error(), "email is required") {
		t.Errorf("error = %v", err)
	}
}

func TestLeads_Create(t *testing.T) {
	out, errOut := mustRun(t, t.TempDir(), "leads", "create", "--name", "Paula", "--email", "paula@example.com")
	if !strings.Contains(out, "Paula") {
		t.Errorf("output missing lead: %q", out)
	}
	if !strings.Contains(errOut, "Lead Created") {
		t.Errorf("expected toast, got %q", errOut)
	}
}

func TestMode_SetThenGet(t *testing.T) {
	home := t.TempDir()

	out, _ := mustRun(t, home, "mode", "get")
	if strings.TrimSpace(out) != "mock" {
		t.Fatalf("default mode = %q, want mock", out)
	}

	_, errOut := mustRun(t, home, "mode", "set", "live")
	if !strings.Contains(errOut, "Data mode updated") {
		t.Errorf("expected toast, got %q", errOut)
	}

	out, _ = mustRun(t, home, "mode", "get")
	if strings.TrimSpace(out) != "live" {
		t.Errorf("mode after set = %q, want live", out)
	}

	if _, _, err := runCLI(t, home, "mode", "set", "sideways"); err == nil {
		t.Error("expected error for unknown mode")
	}
}

func TestOrion_Chat(t *testing.T) {
	out, _ := mustRun(t, t.TempDir(), "orion", "chat", "plan", "the", "sprint")
	if !strings.Contains(out, "user: plan the sprint") {
		t.Errorf("missing user message:\n%s", out)
	}
	if !strings.Contains(out, "assistant: "+ops.AssistantReply) {
		t.Errorf("missing assistant reply:\n%s", out)
	}
}

func TestOrion_GenerateRequiresType(t *testing.T) {
	_, _, err := runCLI(t, t.TempDir(), "orion", "generate", "--prompt", "x")
	if err == nil || !strings.Contains(err.Error(), "INVALID_REQUEST") {
		t.Fatalf("error = %v, want INVALID_REQUEST", err)
	}
}

func TestReset_ClearsSession(t *testing.T) {
	home := t.TempDir()
	mustRun(t, home, "login", "--email", "john@arkode.dev", "--password", "password")
	mustRun(t, home, "workspaces", "use", "3")

	_, errOut := mustRun(t, home, "reset")
	if !strings.Contains(errOut, "Cache cleared") {
		t.Errorf("expected toast, got %q", errOut)
	}
	if _, _, err := runCLI(t, home, "whoami"); err == nil {
		t.Error("expected whoami to fail after reset")
	}
}

func TestInvalidStorage(t *testing.T) {
	_, _, err := runCLI(t, t.TempDir(), "--storage", "floppy", "health")
	if err == nil || !strings.Contains(err.Error(), "unknown storage") {
		t.Fatalf("error = %v, want unknown storage", err)
	}
}

func TestMemoryStorage_DoesNotPersist(t *testing.T) {
	home := t.TempDir()
	mustRun(t, home, "--storage", "memory", "login", "--email", "john@arkode.dev", "--password", "password")
	if _, _, err := runCLI(t, home, "--storage", "memory", "whoami"); err == nil {
		t.Error("expected memory storage to forget the session")
	}
}

func TestHealth(t *testing.T) {
	out, _ := mustRun(t, t.TempDir(), "health")
	if !strings.Contains(out, "online (mock)") {
		t.Errorf("health = %q", out)
	}
}

func TestTextNotifier(t *testing.T) {
	var buf bytes.Buffer
	n := &textNotifier{w: &buf}
	n.Notify(ops.Notification{Title: "Saved"})
	n.Notify(ops.Notification{Title: "Failed", Description: "boom", Variant: ops.VariantDestructive})

	want := "[ok] Saved\n[!!] Failed: boom\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}
