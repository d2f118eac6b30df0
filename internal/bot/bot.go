package bot

import (
	"context"
	"fmt"

	"github.com/condyl/ruby/internal/config"
	"github.com/condyl/ruby/internal/service"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
)

// Bot owns the Discord session and routes slash-command interactions to
// their handlers.
type Bot struct {
	session    *discordgo.Session
	cfg        *config.Config
	recentSvc  *service.RecentMatchService
	accountSvc *service.AccountService
	logger     zerolog.Logger

	commands        []*discordgo.ApplicationCommand
	commandHandlers map[string]func(s interactionResponder, i *discordgo.InteractionCreate)
}

func New(cfg *config.Config, recentSvc *service.RecentMatchService, accountSvc *service.AccountService, logger zerolog.Logger) (*Bot, error) {
	session, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}

	b := &Bot{
		session:    session,
		cfg:        cfg,
		recentSvc:  recentSvc,
		accountSvc: accountSvc,
		logger:     logger,
	}

	b.commands = []*discordgo.ApplicationCommand{
		{
			Name:        "recent",
			Description: "Get the statistics of your most recent match.",
		},
		{
			Name:        "login",
			Description: "Link your Riot account.",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "name",
					Description: "Your Riot name",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "tag",
					Description: "Your Riot tag (without the #)",
					Required:    true,
				},
			},
		},
		{
			Name:        "logout",
			Description: "Unlink your Riot account.",
		},
	}

	b.commandHandlers = map[string]func(s interactionResponder, i *discordgo.InteractionCreate){
		"recent": b.handleRecent,
		"login":  b.handleLogin,
		"logout": b.handleLogout,
	}

	session.AddHandler(func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		if i.Type != discordgo.InteractionApplicationCommand {
			return
		}
		name := i.ApplicationCommandData().Name
		handler, ok := b.commandHandlers[name]
		if !ok {
			b.logger.Warn().Str("command", name).Msg("no handler for command")
			return
		}
		handler(s, i)
	})

	session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		b.logger.Info().
			Str("username", r.User.Username).
			Int("guilds", len(r.Guilds)).
			Msg("bot ready")
	})

	return b, nil
}

// Start opens the gateway connection and registers the slash commands.
func (b *Bot) Start(ctx context.Context) error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open discord session: %w", err)
	}

	appID := b.session.State.User.ID
	registered, err := b.session.ApplicationCommandBulkOverwrite(appID, b.cfg.GuildID, b.commands)
	if err != nil {
		return fmt.Errorf("failed to register commands: %w", err)
	}

	b.logger.Info().Int("count", len(registered)).Msg("slash commands registered")
	return nil
}

func (b *Bot) Stop(ctx context.Context) error {
	b.logger.Info().Msg("closing discord session")
	return b.session.Close()
}

// interactionUserID works for both guild and DM invocations.
func interactionUserID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}
