package bot

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/notjagan/dexview/pkg/command"
	"github.com/notjagan/dexview/pkg/dex"
)

var ErrNoToken = errors.New("no discord token configured")

type Bot struct {
	token    string
	logger   *zap.Logger
	session  *discordgo.Session
	commands map[string]command.Command
}

func New(token string, catalog *dex.Catalog, logger *zap.Logger) (*Bot, error) {
	if token == "" {
		return nil, ErrNoToken
	}

	cmds := make(map[string]command.Command)
	for _, cmd := range command.All(catalog) {
		cmds[cmd.Name()] = cmd
	}

	return &Bot{
		token:    token,
		logger:   logger,
		commands: cmds,
	}, nil
}

func (bot *Bot) Close() {
	bot.logger.Info("shutting down")
	err := bot.session.Close()
	if err != nil {
		bot.logger.Error("error while closing discord session", zap.Error(err))
	}
}

func (bot *Bot) initialize(ctx context.Context) error {
	sess, err := discordgo.New("Bot " + bot.token)
	if err != nil {
		return fmt.Errorf("failed to instantiate discord bot: %w", err)
	}
	bot.session = sess

	bot.session.AddHandler(func(sess *discordgo.Session, interaction *discordgo.InteractionCreate) {
		bot.dispatch(ctx, sess, interaction)
	})

	err = bot.session.Open()
	if err != nil {
		return fmt.Errorf("failed to start discord session: %w", err)
	}

	err = bot.registerCommands()
	if err != nil {
		bot.session.Close()
		return fmt.Errorf("error while registering commands: %w", err)
	}

	return nil
}

// Run serves commands until ctx is cancelled.
func (bot *Bot) Run(ctx context.Context) error {
	err := bot.initialize(ctx)
	if err != nil {
		return fmt.Errorf("error while initializing bot: %w", err)
	}

	bot.logger.Info("hosting pokedex bot", zap.Int("commands", len(bot.commands)))
	defer bot.Close()
	<-ctx.Done()

	return nil
}

func (bot *Bot) dispatch(ctx context.Context, sess *discordgo.Session, interaction *discordgo.InteractionCreate) {
	if interaction.Type != discordgo.InteractionApplicationCommand &&
		interaction.Type != discordgo.InteractionApplicationCommandAutocomplete {
		return
	}

	name := interaction.ApplicationCommandData().Name
	cmd, ok := bot.commands[name]
	if !ok {
		bot.logger.Warn("unknown command", zap.String("command", name))
		return
	}

	handle, kind := cmd.Handle, "command"
	if interaction.Type == discordgo.InteractionApplicationCommandAutocomplete {
		handle, kind = cmd.Autocomplete, "autocomplete"
	}

	logger := bot.logger.With(
		zap.String("command", name),
		zap.String("kind", kind),
		zap.String("guild", interaction.GuildID),
	)
	logger.Debug("interaction received")

	err := handle(ctx, sess, interaction)
	if err != nil {
		logger.Error("error while handling interaction", zap.Error(err))
	}
}

func (bot *Bot) registerCommands() error {
	for _, cmd := range bot.commands {
		_, err := bot.session.ApplicationCommandCreate(bot.session.State.User.ID, "", cmd.ApplicationCommand())
		if err != nil {
			return fmt.Errorf("failed to create command %q: %w", cmd.Name(), err)
		}
	}

	return nil
}
