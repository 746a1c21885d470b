package mock

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/GuilhermeCostaProenca/arkode-dev-toolkit/internal/errors"
	"github.com/GuilhermeCostaProenca/arkode-dev-toolkit/internal/model"
)

// cannedArtifacts holds a payload per known artifact type.
var cannedArtifacts = map[model.ArtifactType]func() map[string]any{
	model.ArtifactBacklog: func() map[string]any {
		return map[string]any{
			"title": "Product Backlog",
			"stories": []map[string]any{
				{"id": "US-1", "title": "As a user I can sign in with email and password", "points": 3, "priority": "high"},
				{"id": "US-2", "title": "As a user I can switch between workspaces", "points": 2, "priority": "medium"},
				{"id": "US-3", "title": "As a manager I can see project progress", "points": 5, "priority": "medium"},
				{"id": "US-4", "title": "As an admin I can invite team members", "points": 3, "priority": "low"},
			},
		}
	},
	model.ArtifactProposal: func() map[string]any {
		return map[string]any{
			"title": "Project Proposal",
			"sections": []map[string]any{
				{"heading": "Overview", "body": "A focused engagement to ship the first production release."},
				{"heading": "Scope", "body": "Discovery, UI design, frontend and API development, launch support."},
				{"heading": "Timeline", "body": "Six weeks split into three two-week milestones."},
			},
			"estimate": map[string]any{"weeks": 6, "currency": "USD", "amount": 24000},
		}
	},
	model.ArtifactContentPlan: func() map[string]any {
		return map[string]any{
			"title": "Content Plan",
			"posts": []map[string]any{
				{"week": 1, "channel": "LinkedIn", "topic": "Behind the scenes of our design system"},
				{"week": 2, "channel": "Instagram", "topic": "Before and after: client portal redesign"},
				{"week": 3, "channel": "Blog", "topic": "Five API design rules we never break"},
				{"week": 4, "channel": "LinkedIn", "topic": "Case study: shipping an MVP in six weeks"},
			},
		}
	},
}

// GenerateArtifact returns a canned payload for the requested type. Unknown
// types get a generic placeholder. Every call yields a fresh id.
func (m *Mock) GenerateArtifact(ctx context.Context, in model.GenerateRequest) (model.Artifact, error) {
	if err := wait(ctx, m.delays.Generate); err != nil {
		return model.Artifact{}, err
	}
	if strings.TrimSpace(string(in.Type)) == "" {
		return model.Artifact{}, errors.NewInvalidRequest("type is required")
	}

	var payload map[string]any
	if build, ok := cannedArtifacts[in.Type]; ok {
		payload = build()
	} else {
		payload = map[string]any{
			"title": "Generated Artifact",
			"type":  string(in.Type),
			"note":  "No template is available for this artifact type.",
		}
	}
	if in.Prompt != "" {
		payload["prompt"] = in.Prompt
	}
	if len(in.Context) > 0 {
		payload["context"] = in.Context
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return model.Artifact{}, errors.NewInternal(err)
	}

	m.mu.Lock()
	id := m.newID()
	m.mu.Unlock()

	return model.Artifact{ID: id, Type: in.Type, Data: data}, nil
}
