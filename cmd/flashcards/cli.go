package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/pflag"

	"github.com/heartmarshall/flashcards-backend/internal/app"
	"github.com/heartmarshall/flashcards-backend/internal/config"
	"github.com/heartmarshall/flashcards-backend/internal/domain"
)

const tokenEnv = "FLASHCARDS_TOKEN"

type usageError struct{ msg string }

func (e usageError) Error() string { return e.msg }

func usagef(format string, args ...any) error {
	return usageError{msg: fmt.Sprintf(format, args...)}
}

type command struct {
	summary string
	run     func(ctx context.Context, c *cli, args []string) error
}

var commands = map[string]command{
	"token":    {"issue an access token for an owner", runToken},
	"add":      {"create a card", runAdd},
	"list":     {"list cards", runList},
	"edit":     {"edit a card", runEdit},
	"delete":   {"delete a card", runDelete},
	"move":     {"move cards to a group", runMove},
	"rate":     {"rate a single card outside a session", runRate},
	"generate": {"preview cards generated from text", runGenerate},
	"import":   {"generate cards from text and store them", runImport},
	"study":    {"run an interactive study session", runStudy},
	"serve":    {"serve the REST API", runServe},
	"version":  {"print the build version", runVersion},
}

type cli struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer
}

func (c *cli) run(ctx context.Context, args []string) error {
	if len(args) == 0 || args[0] == "-h" || args[0] == "--help" || args[0] == "help" {
		c.printUsage()
		return nil
	}

	cmd, ok := commands[args[0]]
	if !ok {
		c.printUsage()
		return usagef("unknown command %q", args[0])
	}
	if err := cmd.run(ctx, c, args[1:]); !errors.Is(err, pflag.ErrHelp) {
		return err
	}
	return nil
}

func (c *cli) printUsage() {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(c.errOut, "Usage: flashcards <command> [flags]")
	fmt.Fprintln(c.errOut)
	fmt.Fprintln(c.errOut, "Commands:")
	for _, name := range names {
		fmt.Fprintf(c.errOut, "  %-10s %s\n", name, commands[name].summary)
	}
}

// globalFlags are accepted by every command that opens the store.
type globalFlags struct {
	configPath string
	token      string
}

func (c *cli) newFlagSet(name string, g *globalFlags) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(c.errOut)
	fs.StringVarP(&g.configPath, "config", "c", "", "path to YAML config (default $CONFIG_PATH or ./config.yaml)")
	fs.StringVar(&g.token, "token", "", "access token (default $"+tokenEnv+")")
	return fs
}

func parseFlags(fs *pflag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return err
		}
		return usageError{msg: err.Error()}
	}
	if rest := fs.Args(); len(rest) > 0 {
		return usagef("unexpected argument %q", rest[0])
	}
	return nil
}

// open loads config, wires the application and authenticates the token.
func (c *cli) open(ctx context.Context, g globalFlags) (*app.App, context.Context, error) {
	cfg, err := config.Load(g.configPath)
	if err != nil {
		return nil, nil, err
	}
	log := app.NewLogger(cfg.Log, c.errOut)

	a, err := app.New(ctx, cfg, log, nil)
	if err != nil {
		return nil, nil, err
	}

	token := g.token
	if token == "" {
		token = os.Getenv(tokenEnv)
	}
	if token == "" {
		a.Close()
		return nil, nil, usagef("no access token: pass --token or set %s", tokenEnv)
	}

	authCtx, err := a.Auth.Authenticate(ctx, token)
	if err != nil {
		a.Close()
		return nil, nil, err
	}

	log.DebugContext(authCtx, "authenticated", slog.String("store", string(cfg.Store.Driver)))
	return a, authCtx, nil
}

// parseGroupFilter reads a --group value: "" is every group, "none" is
// ungrouped cards, anything else is a group id.
func parseGroupFilter(s string) (domain.GroupFilter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return domain.AllGroups(), nil
	case "none":
		return domain.Ungrouped(), nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return domain.GroupFilter{}, usagef("invalid --group %q: want a UUID or \"none\"", s)
	}
	return domain.InGroup(id), nil
}

// parseGroupID reads a target group: "" and "none" mean no group.
func parseGroupID(s string) (*uuid.UUID, error) {
	f, err := parseGroupFilter(s)
	if err != nil {
		return nil, err
	}
	return f.GroupID(), nil
}

func parseCardID(s string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, usagef("--id is required")
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, usagef("invalid --id %q", s)
	}
	return id, nil
}

func printCard(w io.Writer, card *domain.Card) {
	due := "new"
	if card.NextReviewDate != nil {
		due = card.NextReviewDate.Local().Format("2006-01-02 15:04")
	}
	group := "-"
	if card.GroupID != nil {
		group = card.GroupID.String()
	}
	fmt.Fprintf(w, "%s  %-16s  group=%s  due=%s\n  Q: %s\n  A: %s\n", card.ID, card.Category, group, due, card.Front, card.Back)
}
