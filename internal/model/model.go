// Package model defines the records exchanged with the ARKODE backend and
// cached in the client-side stores.
package model

import (
	"encoding/json"
	"time"
)

// TimeFormat is the text format of every timestamp field.
const TimeFormat = time.RFC3339

// Timestamp formats t the way all records carry times.
func Timestamp(t time.Time) string {
	return t.UTC().Format(TimeFormat)
}

type Health struct {
	OK bool `json:"ok"`
}

type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type Workspace struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type Project struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Status      ProjectStatus `json:"status"`
	Client      string        `json:"client,omitempty"`
	WorkspaceID string        `json:"workspace_id"`
}

type ProjectStats struct {
	Stories int `json:"stories"`
	Tasks   int `json:"tasks"`
}

// ProjectDetails is a Project with its stats. It is fetched per project and
// never cached in the project collection.
type ProjectDetails struct {
	Project
	Stats ProjectStats `json:"stats"`
}

type Lead struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Email    string     `json:"email"`
	Status   LeadStatus `json:"status"`
	NextStep string     `json:"next_step"`
}

type Client struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Segment string `json:"segment"`
}

type Proposal struct {
	ID       string         `json:"id"`
	Title    string         `json:"title"`
	Status   ProposalStatus `json:"status"`
	Markdown string         `json:"markdown,omitempty"`
}

type CalendarItem struct {
	ID     string         `json:"id"`
	Title  string         `json:"title"`
	Date   string         `json:"date"`
	Status CalendarStatus `json:"status"`
}

type Article struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Tags      []string `json:"tags"`
	UpdatedAt string   `json:"updatedAt"`
	Markdown  string   `json:"markdown,omitempty"`
}

// Artifact is an AI-generated document. Data is opaque to the client.
type Artifact struct {
	ID   string          `json:"id"`
	Type ArtifactType    `json:"type"`
	Data json.RawMessage `json:"data"`
}

type Message struct {
	Role      Role   `json:"role"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
}

// OrionSession is the single client-local AI conversation.
type OrionSession struct {
	ID        string     `json:"id"`
	Messages  []Message  `json:"messages"`
	Artifacts []Artifact `json:"artifacts"`
	CreatedAt string     `json:"createdAt"`
}

type Repo struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	FullName string `json:"full_name"`
}

type GitHubConnection struct {
	OK bool `json:"ok"`
}

// Create payloads. Ids are assigned by the data source.

type NewWorkspace struct {
	Name string `json:"name"`
}

type NewProject struct {
	WorkspaceID string `json:"workspace_id"`
	Name        string `json:"name"`
}

type NewLead struct {
	Name     string     `json:"name"`
	Email    string     `json:"email"`
	Status   LeadStatus `json:"status,omitempty"`
	NextStep string     `json:"next_step,omitempty"`
}

type NewClient struct {
	Name    string `json:"name"`
	Segment string `json:"segment,omitempty"`
}

type NewProposal struct {
	Title    string         `json:"title"`
	Status   ProposalStatus `json:"status,omitempty"`
	Markdown string         `json:"markdown,omitempty"`
}

type NewCalendarItem struct {
	Title  string         `json:"title"`
	Date   string         `json:"date"`
	Status CalendarStatus `json:"status,omitempty"`
}

type NewArticle struct {
	Title    string   `json:"title"`
	Tags     []string `json:"tags"`
	Markdown string   `json:"markdown,omitempty"`
}

// GenerateRequest asks the AI backend for an artifact. Context is passed
// through untouched.
type GenerateRequest struct {
	Type    ArtifactType   `json:"type"`
	Prompt  string         `json:"prompt,omitempty"`
	Context map[string]any `json:"context,omitempty"`
}
