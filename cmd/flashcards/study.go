package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
	"github.com/heartmarshall/flashcards-backend/internal/service/study"
)

const studyHelp = `Commands:
  <enter>, s       show the answer
  e, m, h          rate easy / medium / hard
  n, p             next / previous card without rating
  pause, resume    stop or restart the session clock
  reset            reselect due cards and start over
  edit front|back|category <text>
                   change the current card
  q                quit`

func runStudy(ctx context.Context, c *cli, args []string) error {
	var g globalFlags
	var group string
	var count int
	fs := c.newFlagSet("study", &g)
	fs.StringVar(&group, "group", "", `group UUID, or "none" for ungrouped cards`)
	fs.IntVar(&count, "count", 0, "cards per session (default from config)")
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

	return studyLoop(ctx, a.Study, study.StartSessionInput{Filter: filter, Count: count}, c.in, c.out)
}

// studyLoop drives one session from line-oriented input until q or EOF.
func studyLoop(ctx context.Context, svc *study.Service, in study.StartSessionInput, r io.Reader, w io.Writer) error {
	in.OnComplete = func(s study.SessionSummary) {
		fmt.Fprintf(w, "Session complete: %d of %d cards in %ds. Type reset to go again or q to quit.\n",
			s.CompletedCount, s.TotalCards, s.ElapsedSeconds)
	}

	sess, err := svc.StartSession(ctx, in)
	if err != nil {
		return err
	}
	defer sess.Close()

	fmt.Fprintln(w, studyHelp)
	showCurrent(w, sess.Snapshot())

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		line := strings.TrimSpace(scanner.Text())
		cmd, rest, _ := strings.Cut(line, " ")

		if cmd == "q" || cmd == "quit" {
			return nil
		}

		if err := dispatch(ctx, sess, strings.ToLower(cmd), strings.TrimSpace(rest), w); err != nil {
			// A failed store write leaves the card current, so the user can retry.
			if errors.Is(err, domain.ErrUnauthorized) || ctx.Err() != nil {
				return err
			}
			fmt.Fprintf(w, "! %v\n", err)
		}
	}
	return scanner.Err()
}

func dispatch(ctx context.Context, sess *study.Session, cmd, rest string, w io.Writer) error {
	switch cmd {
	case "", "s", "show":
		snap := sess.Snapshot()
		if snap.Current != nil {
			fmt.Fprintf(w, "  A: %s\n", snap.Current.Back)
		}
		return nil

	case "e", "m", "h":
		snap := sess.Snapshot()
		if snap.Current == nil {
			return study.ErrEmptyQueue
		}
		if _, err := sess.Rate(ctx, snap.Current.ID, difficultyKeys[cmd]); err != nil {
			return err
		}

	case "n":
		if err := sess.Navigate(domain.DirectionNext); err != nil {
			return err
		}

	case "p":
		if err := sess.Navigate(domain.DirectionPrevious); err != nil {
			return err
		}

	case "pause":
		if err := sess.Pause(); err != nil {
			return err
		}
		fmt.Fprintln(w, "paused")
		return nil

	case "resume":
		if err := sess.Resume(); err != nil {
			return err
		}

	case "reset":
		if err := sess.Reset(ctx); err != nil {
			return err
		}

	case "edit":
		field, text, _ := strings.Cut(rest, " ")
		in := study.EditCardInput{}
		switch field {
		case "front":
			in.Front = &text
		case "back":
			in.Back = &text
		case "category":
			in.Category = &text
		default:
			return fmt.Errorf("usage: edit front|back|category <text>")
		}
		if _, err := sess.EditCurrent(ctx, in); err != nil {
			return err
		}

	case "?", "help":
		fmt.Fprintln(w, studyHelp)
		return nil

	default:
		return fmt.Errorf("unknown command %q, type ? for help", cmd)
	}

	showCurrent(w, sess.Snapshot())
	return nil
}

var difficultyKeys = map[string]domain.Difficulty{
	"e": domain.DifficultyEasy,
	"m": domain.DifficultyMedium,
	"h": domain.DifficultyHard,
}

func showCurrent(w io.Writer, snap study.SessionSnapshot) {
	switch {
	case snap.Total == 0:
		fmt.Fprintln(w, "No cards are due.")
	case snap.State == domain.SessionStateComplete:
		return
	default:
		fmt.Fprintf(w, "[%d/%d  done %d  %ds  %s]\n  Q: %s\n",
			snap.Position+1, snap.Total, snap.CompletedCount, snap.ElapsedSeconds,
			strings.ToLower(string(snap.State)), snap.Current.Front)
	}
}
