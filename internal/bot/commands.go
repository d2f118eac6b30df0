package bot

import (
	"context"
	"errors"

	"github.com/condyl/ruby/internal/domain"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	msgNotLoggedIn        = "You are not logged in.  Please use the /login command to log in."
	msgAPIDown            = "**ERROR:** API is down, please try again later."
	msgUnexpected         = "An unexpected error occurred, please try again."
	msgRiotAccountMissing = "Could not find that Riot account.  Double-check your name and tag."
)

// interactionResponder is the slice of discordgo.Session the handlers need
// to answer an interaction.
type interactionResponder interface {
	InteractionRespond(i *discordgo.Interaction, r *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
	InteractionResponseEdit(i *discordgo.Interaction, e *discordgo.WebhookEdit, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

func (b *Bot) handleRecent(s interactionResponder, i *discordgo.InteractionCreate) {
	logger := b.invocationLogger("recent", i)
	userID := interactionUserID(i)

	if err := deferReply(s, i); err != nil {
		logger.Error().Err(err).Msg("failed to defer reply")
		return
	}

	ctx := logger.WithContext(context.Background())
	view, err := b.recentSvc.RecentMatch(ctx, userID)
	if err != nil {
		editReplyText(s, i, replyForError(err))
		return
	}

	embed := BuildRecentEmbed(view)
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Embeds: &[]*discordgo.MessageEmbed{embed},
	}); err != nil {
		logger.Error().Err(err).Msg("failed to edit reply")
	}
}

func (b *Bot) handleLogin(s interactionResponder, i *discordgo.InteractionCreate) {
	logger := b.invocationLogger("login", i)
	userID := interactionUserID(i)

	var name, tag string
	for _, opt := range i.ApplicationCommandData().Options {
		switch opt.Name {
		case "name":
			name = opt.StringValue()
		case "tag":
			tag = opt.StringValue()
		}
	}

	if err := deferReply(s, i); err != nil {
		logger.Error().Err(err).Msg("failed to defer reply")
		return
	}

	ctx := logger.WithContext(context.Background())
	account, err := b.accountSvc.Login(ctx, userID, name, tag)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRiotAccountNotFound):
			editReplyText(s, i, msgRiotAccountMissing)
		case errors.Is(err, domain.ErrProviderUnavailable):
			editReplyText(s, i, msgAPIDown)
		default:
			editReplyText(s, i, msgUnexpected)
		}
		return
	}

	editReplyText(s, i, "Logged in as **"+account.RiotID()+"**.")
}

func (b *Bot) handleLogout(s interactionResponder, i *discordgo.InteractionCreate) {
	logger := b.invocationLogger("logout", i)
	userID := interactionUserID(i)

	if err := deferReply(s, i); err != nil {
		logger.Error().Err(err).Msg("failed to defer reply")
		return
	}

	ctx := logger.WithContext(context.Background())
	editReplyText(s, i, logoutReply(b.accountSvc.Logout(ctx, userID)))
}

func logoutReply(err error) string {
	switch {
	case err == nil:
		return "You have been logged out."
	case errors.Is(err, domain.ErrAccountNotFound):
		return msgNotLoggedIn
	default:
		return msgUnexpected
	}
}

// replyForError maps pipeline failures to their user-facing remediation:
// log in, retry later, or a generic apology for everything else.
func replyForError(err error) string {
	switch {
	case errors.Is(err, domain.ErrAccountNotFound):
		return msgNotLoggedIn
	case errors.Is(err, domain.ErrProviderUnavailable):
		return msgAPIDown
	default:
		return msgUnexpected
	}
}

func deferReply(s interactionResponder, i *discordgo.InteractionCreate) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	})
}

func editReplyText(s interactionResponder, i *discordgo.InteractionCreate, content string) {
	_, _ = s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Content: &content,
	})
}

func (b *Bot) invocationLogger(command string, i *discordgo.InteractionCreate) zerolog.Logger {
	logger := b.logger.With().
		Str("command", command).
		Str("invocation_id", uuid.New().String()).
		Str("discord_user_id", interactionUserID(i)).
		Logger()

	logger.Info().Msg("command invoked")
	return logger
}
