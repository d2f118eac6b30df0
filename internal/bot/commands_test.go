package bot

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/condyl/ruby/internal/api"
	"github.com/condyl/ruby/internal/domain"
	"github.com/condyl/ruby/internal/service"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
)

type fakeResponder struct {
	responses  []*discordgo.InteractionResponse
	edits      []*discordgo.WebhookEdit
	respondErr error
}

func (f *fakeResponder) InteractionRespond(_ *discordgo.Interaction, r *discordgo.InteractionResponse, _ ...discordgo.RequestOption) error {
	f.responses = append(f.responses, r)
	return f.respondErr
}

func (f *fakeResponder) InteractionResponseEdit(_ *discordgo.Interaction, e *discordgo.WebhookEdit, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.edits = append(f.edits, e)
	return nil, nil
}

type fakeAccountWriter struct {
	deleteErr error
}

func (f *fakeAccountWriter) Upsert(ctx context.Context, account *domain.Account) error { return nil }

func (f *fakeAccountWriter) Delete(ctx context.Context, discordUserID string) error {
	return f.deleteErr
}

type fakeAccountProvider struct{}

func (fakeAccountProvider) GetAccount(ctx context.Context, name, tag string) (*api.AccountResponse, error) {
	return nil, errors.New("unexpected call")
}

func logoutBot(deleteErr error) *Bot {
	return &Bot{
		accountSvc: service.NewAccountService(fakeAccountProvider{}, &fakeAccountWriter{deleteErr: deleteErr}, zerolog.Nop()),
		logger:     zerolog.Nop(),
	}
}

func dmInteraction() *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type: discordgo.InteractionApplicationCommand,
			User: &discordgo.User{ID: "1000"},
		},
	}
}

func TestReplyForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"not logged in", domain.ErrAccountNotFound, msgNotLoggedIn},
		{"wrapped not logged in", fmt.Errorf("lookup: %w", domain.ErrAccountNotFound), msgNotLoggedIn},
		{"provider unavailable", domain.ErrProviderUnavailable, msgAPIDown},
		{"wrapped provider unavailable", fmt.Errorf("%w: status 500", domain.ErrProviderUnavailable), msgAPIDown},
		{"store failure", domain.ErrAccountStore, msgUnexpected},
		{"map missing", domain.ErrMapNotFound, msgUnexpected},
		{"arbitrary error", errors.New("boom"), msgUnexpected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := replyForError(tt.err); got != tt.want {
				t.Fatalf("replyForError(%v)=%q, want %q", tt.err, got, tt.want)
			}
		})
	}
}

func TestLogoutReply(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"success", nil, "You have been logged out."},
		{"not logged in", domain.ErrAccountNotFound, msgNotLoggedIn},
		{"store failure", domain.ErrAccountStore, msgUnexpected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := logoutReply(tt.err); got != tt.want {
				t.Fatalf("logoutReply(%v)=%q, want %q", tt.err, got, tt.want)
			}
		})
	}
}

func TestHandleLogout_DefersThenEdits(t *testing.T) {
	responder := &fakeResponder{}

	logoutBot(nil).handleLogout(responder, dmInteraction())

	if len(responder.responses) != 1 {
		t.Fatalf("responses=%d, want 1", len(responder.responses))
	}
	if responder.responses[0].Type != discordgo.InteractionResponseDeferredChannelMessageWithSource {
		t.Fatalf("response type=%d, want deferred", responder.responses[0].Type)
	}
	if len(responder.edits) != 1 {
		t.Fatalf("edits=%d, want 1", len(responder.edits))
	}
	if got := *responder.edits[0].Content; got != "You have been logged out." {
		t.Fatalf("edit content=%q", got)
	}
}

func TestHandleLogout_NotLoggedIn(t *testing.T) {
	responder := &fakeResponder{}

	logoutBot(domain.ErrAccountNotFound).handleLogout(responder, dmInteraction())

	if len(responder.edits) != 1 {
		t.Fatalf("edits=%d, want 1", len(responder.edits))
	}
	if got := *responder.edits[0].Content; got != msgNotLoggedIn {
		t.Fatalf("edit content=%q, want %q", got, msgNotLoggedIn)
	}
}

func TestHandleLogout_DeferFailureStops(t *testing.T) {
	responder := &fakeResponder{respondErr: errors.New("interaction expired")}

	logoutBot(nil).handleLogout(responder, dmInteraction())

	if len(responder.edits) != 0 {
		t.Fatalf("edits=%d, want 0 after failed defer", len(responder.edits))
	}
}
