// Package command implements the Discord slash commands served by the bot.
package command

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"github.com/bwmarrin/discordgo"
)

type (
	Command interface {
		ApplicationCommand() *discordgo.ApplicationCommand
		Name() string
		Handle(context.Context, *discordgo.Session, *discordgo.InteractionCreate) error
		Autocomplete(context.Context, *discordgo.Session, *discordgo.InteractionCreate) error
	}

	handler[T any] interface {
		Handle(context.Context, *T) (*discordgo.InteractionResponseData, error)
	}

	autocompleter[T any] interface {
		Autocomplete(context.Context, *T) ([]*discordgo.ApplicationCommandOptionChoice, error)
	}

	command[T any] struct {
		handler       handler[T]
		autocompleter autocompleter[T]
		command       discordgo.ApplicationCommand
	}
)

var (
	ErrCommandFormat           = errors.New("invalid command format")
	ErrUnrecognizedInteraction = errors.New("could not handle interaction")
)

func (cmd command[T]) ApplicationCommand() *discordgo.ApplicationCommand {
	return &cmd.command
}

func (cmd command[T]) Name() string {
	return cmd.command.Name
}

// respond decodes the interaction options and runs the handler without
// talking to Discord.
func (cmd command[T]) respond(ctx context.Context, interaction *discordgo.InteractionCreate) (*discordgo.InteractionResponseData, error) {
	if cmd.handler == nil {
		return nil, fmt.Errorf("no handler for command %q: %w", cmd.Name(), ErrUnrecognizedInteraction)
	}

	var opt T
	err := decodeOptions(interaction.ApplicationCommandData().Options, &opt)
	if err != nil {
		return nil, fmt.Errorf("error while decoding options for command %q: %w", cmd.Name(), err)
	}

	body, err := cmd.handler.Handle(ctx, &opt)
	if err != nil {
		return nil, fmt.Errorf("error while calling handler: %w", err)
	}

	return body, nil
}

func (cmd command[T]) Handle(ctx context.Context, sess *discordgo.Session, interaction *discordgo.InteractionCreate) error {
	body, err := cmd.respond(ctx, interaction)
	if err != nil {
		return fmt.Errorf("could not handle command %q: %w", cmd.Name(), err)
	}

	err = sess.InteractionRespond(interaction.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: body,
	})
	if err != nil {
		return fmt.Errorf("error while responding to command %q: %w", cmd.Name(), err)
	}

	return nil
}

func (cmd command[T]) choices(ctx context.Context, interaction *discordgo.InteractionCreate) ([]*discordgo.ApplicationCommandOptionChoice, error) {
	if cmd.autocompleter == nil {
		return nil, fmt.Errorf("no autocompletion for command %q: %w", cmd.Name(), ErrUnrecognizedInteraction)
	}

	var opt T
	err := decodeOptions(interaction.ApplicationCommandData().Options, &opt)
	if err != nil {
		return nil, fmt.Errorf("error while decoding options for autocomplete: %w", err)
	}

	choices, err := cmd.autocompleter.Autocomplete(ctx, &opt)
	if err != nil {
		return nil, fmt.Errorf("error while calling autocompletion handler: %w", err)
	}

	return choices, nil
}

func (cmd command[T]) Autocomplete(ctx context.Context, sess *discordgo.Session, interaction *discordgo.InteractionCreate) error {
	choices, err := cmd.choices(ctx, interaction)
	if err != nil {
		return err
	}

	err = sess.InteractionRespond(interaction.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionApplicationCommandAutocompleteResult,
		Data: &discordgo.InteractionResponseData{
			Choices: choices,
		},
	})
	if err != nil {
		return fmt.Errorf("error while sending autocompletions: %w", err)
	}

	return nil
}

var ErrDecodeOption = errors.New("error while decoding options")

type discordValue interface {
	string | int | bool
}

// discordField carries an option value along with whether the user is
// currently typing into it.
type discordField[T discordValue] struct {
	Value   T
	Focused bool
}

var fieldTypes = map[reflect.Type]bool{
	reflect.TypeOf(discordField[string]{}): true,
	reflect.TypeOf(discordField[int]{}):    true,
	reflect.TypeOf(discordField[bool]{}):   true,
}

// decodeOptions fills the `option`-tagged fields of structure from the
// interaction options. Pointer fields are allocated only when the option is
// present; subcommands decode into nested structs.
func decodeOptions(options []*discordgo.ApplicationCommandInteractionDataOption, structure any) (ret error) {
	defer func() {
		r := recover()
		if err, ok := r.(*reflect.ValueError); ok {
			ret = fmt.Errorf("reflection error while decoding options: %v: %w", err.Error(), ErrDecodeOption)
		} else if r != nil {
			panic(r)
		}
	}()

	value := reflect.Indirect(reflect.ValueOf(structure))
	if value.Kind() != reflect.Struct || !value.CanAddr() {
		return fmt.Errorf("value is not an addressable struct: %w", ErrDecodeOption)
	}

	fields, err := optionFields(value)
	if err != nil {
		return err
	}

	for _, option := range options {
		field, ok := fields[option.Name]
		if !ok {
			return fmt.Errorf("unexpected option name %q: %w", option.Name, ErrDecodeOption)
		}

		err := setOption(field, option)
		if err != nil {
			return err
		}
	}

	return nil
}

func optionFields(value reflect.Value) (map[string]reflect.Value, error) {
	fields := make(map[string]reflect.Value, value.NumField())
	for i := range value.NumField() {
		tfield := value.Type().Field(i)
		name := tfield.Tag.Get("option")
		if name == "" {
			continue
		}

		field := value.Field(i)
		if !field.CanSet() {
			return nil, fmt.Errorf("field %q cannot be set: %w", tfield.Name, ErrDecodeOption)
		}
		fields[name] = field
	}

	return fields, nil
}

func setOption(field reflect.Value, option *discordgo.ApplicationCommandInteractionDataOption) error {
	if field.Kind() == reflect.Pointer {
		ptr := reflect.New(field.Type().Elem())
		field.Set(ptr)
		field = ptr.Elem()
	}

	if field.Kind() == reflect.Struct && fieldTypes[field.Type()] {
		field.FieldByName("Focused").SetBool(option.Focused)
		field = field.FieldByName("Value")
	}

	switch option.Type {
	case discordgo.ApplicationCommandOptionString:
		if field.Kind() == reflect.String {
			field.SetString(option.StringValue())
			return nil
		}
	case discordgo.ApplicationCommandOptionInteger:
		if field.Kind() == reflect.Int {
			field.SetInt(option.IntValue())
			return nil
		}
	case discordgo.ApplicationCommandOptionBoolean:
		if field.Kind() == reflect.Bool {
			field.SetBool(option.BoolValue())
			return nil
		}
	case discordgo.ApplicationCommandOptionSubCommand:
		if field.Kind() == reflect.Struct {
			err := decodeOptions(option.Options, field.Addr().Interface())
			if err != nil {
				return fmt.Errorf("error while decoding options for subcommand %q: %w", option.Name, err)
			}
			return nil
		}
	default:
		return fmt.Errorf("unsupported type %q for option %q: %w", option.Type, option.Name, ErrDecodeOption)
	}

	return fmt.Errorf("unexpected type %q for option %q: %w", option.Type, option.Name, ErrDecodeOption)
}
