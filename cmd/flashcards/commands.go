package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/flashcards-backend/internal/app"
	"github.com/heartmarshall/flashcards-backend/internal/auth"
	"github.com/heartmarshall/flashcards-backend/internal/config"
	"github.com/heartmarshall/flashcards-backend/internal/domain"
	"github.com/heartmarshall/flashcards-backend/internal/service/generate"
	"github.com/heartmarshall/flashcards-backend/internal/service/study"
)

func runVersion(_ context.Context, c *cli, _ []string) error {
	fmt.Fprintln(c.out, app.BuildVersion())
	return nil
}

func runToken(_ context.Context, c *cli, args []string) error {
	var g globalFlags
	var owner string
	fs := c.newFlagSet("token", &g)
	fs.StringVar(&owner, "owner", "", "owner UUID (default: a new random owner)")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	ownerID := uuid.New()
	if owner != "" {
		id, err := uuid.Parse(owner)
		if err != nil {
			return usagef("invalid --owner %q", owner)
		}
		ownerID = id
	}

	cfg, err := config.Load(g.configPath)
	if err != nil {
		return err
	}

	token, err := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL, nil).
		GenerateAccessToken(ownerID)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.errOut, "owner: %s\n", ownerID)
	fmt.Fprintln(c.out, token)
	return nil
}

func runAdd(ctx context.Context, c *cli, args []string) error {
	var g globalFlags
	var in study.CreateCardInput
	var group string
	fs := c.newFlagSet("add", &g)
	fs.StringVar(&in.Front, "front", "", "question side")
	fs.StringVar(&in.Back, "back", "", "answer side")
	fs.StringVar(&in.Category, "category", "", "optional category")
	fs.StringVar(&group, "group", "", "group UUID")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	groupID, err := parseGroupID(group)
	if err != nil {
		return err
	}
	in.GroupID = groupID

	a, ctx, err := c.open(ctx, g)
	if err != nil {
		return err
	}
	defer a.Close()

	card, err := a.Study.CreateCard(ctx, in)
	if err != nil {
		return err
	}
	printCard(c.out, card)
	return nil
}

func runList(ctx context.Context, c *cli, args []string) error {
	var g globalFlags
	var group string
	var due bool
	fs := c.newFlagSet("list", &g)
	fs.StringVar(&group, "group", "", `group UUID, or "none" for ungrouped cards`)
	fs.BoolVar(&due, "due", false, "show only the cards a session would study now")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	filter, err := parseGroupFilter(group)
	if err != nil {
		return err
	}

	a, ctx, err := c.open(ctx, g)
	if err != nil {
		return err
	}
	defer a.Close()

	var cards []domain.Card
	if due {
		cards, err = a.Study.StudyQueue(ctx, study.GetQueueInput{Filter: filter})
	} else {
		cards, err = a.Study.ListCards(ctx, study.ListCardsInput{Filter: filter})
	}
	if err != nil {
		return err
	}

	for i := range cards {
		printCard(c.out, &cards[i])
	}
	fmt.Fprintf(c.errOut, "%d card(s)\n", len(cards))
	return nil
}

func runEdit(ctx context.Context, c *cli, args []string) error {
	var g globalFlags
	var id string
	fs := c.newFlagSet("edit", &g)
	fs.StringVar(&id, "id", "", "card UUID")
	front := fs.String("front", "", "new question side")
	back := fs.String("back", "", "new answer side")
	category := fs.String("category", "", "new category")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	cardID, err := parseCardID(id)
	if err != nil {
		return err
	}

	in := study.EditCardInput{CardID: cardID}
	if fs.Changed("front") {
		in.Front = front
	}
	if fs.Changed("back") {
		in.Back = back
	}
	if fs.Changed("category") {
		in.Category = category
	}

	a, ctx, err := c.open(ctx, g)
	if err != nil {
		return err
	}
	defer a.Close()

	card, err := a.Study.EditCard(ctx, in)
	if err != nil {
		return err
	}
	printCard(c.out, card)
	return nil
}

func runDelete(ctx context.Context, c *cli, args []string) error {
	var g globalFlags
	var id string
	fs := c.newFlagSet("delete", &g)
	fs.StringVar(&id, "id", "", "card UUID")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	cardID, err := parseCardID(id)
	if err != nil {
		return err
	}

	a, ctx, err := c.open(ctx, g)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.Study.DeleteCard(ctx, study.DeleteCardInput{CardID: cardID}); err != nil {
		return err
	}
	fmt.Fprintf(c.errOut, "deleted %s\n", cardID)
	return nil
}

func runMove(ctx context.Context, c *cli, args []string) error {
	var g globalFlags
	var ids []string
	var group string
	fs := c.newFlagSet("move", &g)
	fs.StringSliceVar(&ids, "ids", nil, "comma-separated card UUIDs")
	fs.StringVar(&group, "group", "", `target group UUID, or "none"`)
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	in := study.MoveCardsInput{}
	for _, s := range ids {
		id, err := uuid.Parse(strings.TrimSpace(s))
		if err != nil {
			return usagef("invalid card id %q", s)
		}
		in.CardIDs = append(in.CardIDs, id)
	}
	groupID, err := parseGroupID(group)
	if err != nil {
		return err
	}
	in.GroupID = groupID

	a, ctx, err := c.open(ctx, g)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.Study.MoveCards(ctx, in); err != nil {
		return err
	}
	fmt.Fprintf(c.errOut, "moved %d card(s) to %s\n", len(in.CardIDs), domain.GroupFilterFor(groupID))
	return nil
}

func runRate(ctx context.Context, c *cli, args []string) error {
	var g globalFlags
	var id, difficulty string
	fs := c.newFlagSet("rate", &g)
	fs.StringVar(&id, "id", "", "card UUID")
	fs.StringVar(&difficulty, "difficulty", "", "easy, medium or hard")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	cardID, err := parseCardID(id)
	if err != nil {
		return err
	}

	a, ctx, err := c.open(ctx, g)
	if err != nil {
		return err
	}
	defer a.Close()

	card, err := a.Study.RateCard(ctx, study.RateCardInput{CardID: cardID, Difficulty: domain.ParseDifficulty(difficulty)})
	if err != nil {
		return err
	}
	printCard(c.out, card)
	return nil
}

// readText returns the --file contents, or stdin when file is "" or "-".
func (c *cli) readText(file string) (string, error) {
	var r io.Reader = c.in
	if file != "" && file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return "", err
		}
		defer f.Close()
		r = f
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read text: %w", err)
	}
	return string(b), nil
}

func runGenerate(ctx context.Context, c *cli, args []string) error {
	var g globalFlags
	var file string
	var maxCards int
	fs := c.newFlagSet("generate", &g)
	fs.StringVarP(&file, "file", "f", "", "text file (default stdin)")
	fs.IntVar(&maxCards, "max", 0, "maximum number of cards (default from config)")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	text, err := c.readText(file)
	if err != nil {
		return err
	}

	a, ctx, err := c.open(ctx, g)
	if err != nil {
		return err
	}
	defer a.Close()

	cards, err := a.Generate.Generate(ctx, generate.GenerateInput{Text: text, MaxCards: maxCards})
	if err != nil {
		return err
	}
	for i, card := range cards {
		fmt.Fprintf(c.out, "%d. [%s]\n  Q: %s\n  A: %s\n", i+1, card.Category, card.Front, card.Back)
	}
	return nil
}

func runImport(ctx context.Context, c *cli, args []string) error {
	var g globalFlags
	var file, group string
	var maxCards int
	fs := c.newFlagSet("import", &g)
	fs.StringVarP(&file, "file", "f", "", "text file (default stdin)")
	fs.IntVar(&maxCards, "max", 0, "maximum number of cards (default from config)")
	fs.StringVar(&group, "group", "", "group UUID for the new cards")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	groupID, err := parseGroupID(group)
	if err != nil {
		return err
	}
	text, err := c.readText(file)
	if err != nil {
		return err
	}

	a, ctx, err := c.open(ctx, g)
	if err != nil {
		return err
	}
	defer a.Close()

	res, err := a.Generate.Import(ctx, generate.ImportInput{Text: text, MaxCards: maxCards, GroupID: groupID})
	if err != nil {
		return err
	}
	for i := range res.Created {
		printCard(c.out, &res.Created[i])
	}
	for _, e := range res.Errors {
		fmt.Fprintf(c.errOut, "card %d skipped: %s\n", e.Index+1, e.Reason)
	}
	fmt.Fprintf(c.errOut, "imported %d card(s), %d skipped\n", len(res.Created), len(res.Errors))
	return nil
}
