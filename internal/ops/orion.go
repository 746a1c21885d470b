package ops

import (
	"context"
	"strings"
	"time"

	"github.com/GuilhermeCostaProenca/arkode-dev-toolkit/internal/model"
)

// AssistantReply is the canned answer to every chat message.
const AssistantReply = "I understand. How can I help you with your project?"

func (a *App) GenerateArtifact(ctx context.Context, in model.GenerateRequest) (model.Artifact, error) {
	if err := required("type", string(in.Type)); err != nil {
		return model.Artifact{}, err
	}
	art, err := a.Source.GenerateArtifact(ctx, in)
	if err != nil {
		return model.Artifact{}, a.fail("generate_artifact", "Generation Failed", err)
	}
	a.Stores.Orion.AddArtifact(art)
	a.Stores.Orion.AddMessage("Generated "+string(art.Type)+" artifact", model.RoleAssistant)
	a.success("Artifact Generated", string(art.Type))
	return art, nil
}

// SendMessage records the user message, waits ReplyDelay, then records the
// assistant reply. If ctx ends during the wait only the user message stays.
func (a *App) SendMessage(ctx context.Context, content string) (model.Message, error) {
	if err := required("content", content); err != nil {
		return model.Message{}, err
	}
	a.Stores.Orion.AddMessage(strings.TrimSpace(content), model.RoleUser)

	if a.ReplyDelay > 0 {
		t := time.NewTimer(a.ReplyDelay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return model.Message{}, ctx.Err()
		case <-t.C:
		}
	}
	return a.Stores.Orion.AddMessage(AssistantReply, model.RoleAssistant), nil
}
