// Package cli is the terminal host: it lists, authors, generates and plays
// quizzes, and can serve the HTTP API.
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/urfave/cli/v2"

	"github.com/saulo-duarte/quizmaster-lambda/internal/config"
	"github.com/saulo-duarte/quizmaster-lambda/internal/generator"
	"github.com/saulo-duarte/quizmaster-lambda/internal/quiz"
	"github.com/saulo-duarte/quizmaster-lambda/internal/resolver"
	"github.com/saulo-duarte/quizmaster-lambda/internal/session"
)

type Deps struct {
	Quizzes   quiz.QuizService
	Resolver  resolver.Resolver
	Generator generator.Service
	Serve     func(ctx context.Context) error
	Scheduler session.Scheduler
	In        io.Reader
	Out       io.Writer
}

type app struct {
	deps   Deps
	player *Player
}

func NewApp(deps Deps) *cli.App {
	if deps.In == nil {
		deps.In = os.Stdin
	}
	if deps.Out == nil {
		deps.Out = os.Stdout
	}
	if deps.Scheduler == nil {
		deps.Scheduler = session.SystemScheduler{}
	}
	a := &app{
		deps:   deps,
		player: NewPlayer(deps.In, deps.Out, deps.Scheduler),
	}

	fileFlag := &cli.StringFlag{
		Name:     "file",
		Aliases:  []string{"f"},
		Usage:    "quiz draft JSON `FILE`",
		Required: true,
	}

	return &cli.App{
		Name:      "quizmaster",
		Usage:     "play, author and generate multiple-choice quizzes",
		Reader:    deps.In,
		Writer:    deps.Out,
		ErrWriter: deps.Out,
		Commands: []*cli.Command{
			{
				Name:   "categories",
				Usage:  "list the built-in categories",
				Action: a.categories,
			},
			{
				Name:   "list",
				Usage:  "list saved quizzes",
				Action: a.list,
			},
			{
				Name:      "play",
				Usage:     "play a category or a saved quiz",
				ArgsUsage: "[CATEGORY|QUIZ_ID]",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "category", Aliases: []string{"c"}, Usage: "built-in category id"},
					&cli.StringFlag{Name: "quiz", Aliases: []string{"q"}, Usage: "saved quiz id"},
				},
				Action: a.play,
			},
			{
				Name:      "generate",
				Usage:     "generate a quiz for a category with AI and save it",
				ArgsUsage: "CATEGORY",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "play", Usage: "play the quiz once generated"},
				},
				Action: a.generate,
			},
			{
				Name:   "create",
				Usage:  "save a quiz from a draft file",
				Flags:  []cli.Flag{fileFlag},
				Action: a.create,
			},
			{
				Name:   "preview",
				Usage:  "play a draft file without saving it",
				Flags:  []cli.Flag{fileFlag},
				Action: a.preview,
			},
			{
				Name:      "delete",
				Usage:     "delete a saved quiz",
				ArgsUsage: "QUIZ_ID",
				Action:    a.delete,
			},
			{
				Name:   "serve",
				Usage:  "serve the HTTP API",
				Action: a.serve,
			},
		},
	}
}

func (a *app) categories(c *cli.Context) error {
	tw := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tDIFFICULTY\tQUESTIONS\tDESCRIPTION")
	for _, cat := range resolver.Categories() {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n", cat.ID, cat.Title, cat.Difficulty, cat.QuestionCount, cat.Description)
	}
	return tw.Flush()
}

func (a *app) list(c *cli.Context) error {
	quizzes := a.deps.Quizzes.ListQuizzes(c.Context)
	if len(quizzes) == 0 {
		fmt.Fprintln(c.App.Writer, "No quizzes yet. Create one with `quizmaster create -f draft.json`.")
		return nil
	}

	tw := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tORIGIN\tQUESTIONS\tCREATED")
	for _, q := range quizzes {
		s := quiz.ToSummary(q)
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n", s.ID, s.Title, s.Origin, s.QuestionCount, s.CreatedAt)
	}
	return tw.Flush()
}

func (a *app) play(c *cli.Context) error {
	var (
		questions []quiz.Question
		err       error
	)
	switch {
	case c.String("quiz") != "":
		questions, err = a.deps.Resolver.Resolve(c.Context, resolver.ForQuiz(c.String("quiz")))
	case c.String("category") != "":
		questions, err = a.deps.Resolver.Resolve(c.Context, resolver.ForCategory(c.String("category")))
	default:
		questions, err = a.deps.Resolver.ResolveID(c.Context, c.Args().First())
	}
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	return a.playLoop(c, questions)
}

// playLoop plays questions and offers to replay the same sequence.
func (a *app) playLoop(c *cli.Context, questions []quiz.Question) error {
	for {
		_, err := a.player.Play(c.Context, questions)
		if errors.Is(err, ErrAborted) {
			fmt.Fprintln(c.App.Writer, "Back to home.")
			return nil
		}
		if err != nil {
			return err
		}
		if !a.player.Confirm(c.Context, "Play again?") {
			return nil
		}
	}
}

func (a *app) generate(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("usage: quizmaster generate CATEGORY", 2)
	}

	fmt.Fprintln(c.App.Writer, "Generating...")
	q, err := a.deps.Generator.GenerateQuiz(c.Context, c.Args().First())
	if err != nil {
		if errors.Is(err, generator.ErrUnknownCategory) {
			return cli.Exit(err.Error(), 1)
		}
		config.WithContext(c.Context).WithError(err).Error("Generation failed")
		return cli.Exit("Failed to generate quiz. Please try again.", 1)
	}
	fmt.Fprintf(c.App.Writer, "Saved %q (%s) with %d questions\n", q.Title, q.ID, len(q.Questions))

	if !c.Bool("play") {
		return nil
	}
	questions, err := a.deps.Resolver.ResolveID(c.Context, q.ID)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	return a.playLoop(c, questions)
}

func (a *app) create(c *cli.Context) error {
	draft, err := readDraft(c.String("file"))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	q, err := a.deps.Quizzes.CreateQuiz(c.Context, draft)
	if err != nil {
		return cli.Exit(describe(err), 1)
	}
	fmt.Fprintf(c.App.Writer, "Quiz saved successfully! %s (%s)\n", q.Title, q.ID)
	return nil
}

func (a *app) preview(c *cli.Context) error {
	draft, err := readDraft(c.String("file"))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	q, err := a.deps.Quizzes.PreviewQuiz(c.Context, draft)
	if err != nil {
		return cli.Exit(describe(err), 1)
	}
	questions, err := a.deps.Resolver.Resolve(c.Context, resolver.ForPreview(*q))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	return a.playLoop(c, questions)
}

func (a *app) delete(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("usage: quizmaster delete QUIZ_ID", 2)
	}
	if err := a.deps.Quizzes.DeleteQuiz(c.Context, c.Args().First()); err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, "Quiz deleted")
	return nil
}

func (a *app) serve(c *cli.Context) error {
	if a.deps.Serve == nil {
		return cli.Exit("serve is not available", 1)
	}
	return a.deps.Serve(c.Context)
}

func readDraft(path string) (quiz.Quiz, error) {
	f, err := os.Open(path)
	if err != nil {
		return quiz.Quiz{}, err
	}
	defer f.Close()

	var dto quiz.QuizDraftDTO
	if err := json.NewDecoder(f).Decode(&dto); err != nil {
		return quiz.Quiz{}, fmt.Errorf("invalid draft %s: %w", path, err)
	}
	if err := config.ValidateStruct(dto); err != nil {
		return quiz.Quiz{}, fmt.Errorf("invalid draft %s: %w", path, err)
	}
	return dto.ToQuiz(), nil
}

func describe(err error) string {
	var verr *quiz.ValidationError
	if errors.As(err, &verr) {
		return fmt.Sprintf("%s\n%s", verr.Title, verr.Message)
	}
	return err.Error()
}
