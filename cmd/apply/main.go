// Command apply fills in and submits a detailed internship application
// against the SkillSyncer API.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/fadilmartias/skillsyncer/internal/apperror"
	"github.com/fadilmartias/skillsyncer/internal/client"
	"github.com/fadilmartias/skillsyncer/internal/config"
	"github.com/fadilmartias/skillsyncer/internal/dto"
	"github.com/fadilmartias/skillsyncer/internal/form"
	"github.com/fadilmartias/skillsyncer/internal/logger"
	"github.com/fadilmartias/skillsyncer/internal/submission"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	cfg := config.LoadClientConfig()
	log := logger.New(config.LoadAppConfig().LogLevel, "console")
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	api := client.New(cfg.BaseURL, client.Session{Token: cfg.Token, UserID: cfg.UserID, Role: cfg.Role}, cfg.Timeout)
	if err := run(ctx, os.Args[1:], api, os.Stdout, log); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// API is everything the command needs from the server.
type API interface {
	submission.ApplicationAPI
	ListPostings(ctx context.Context, f dto.PostingFilter) ([]dto.Posting, error)
	GetProfileSuggestions(ctx context.Context) (dto.ProfileSuggestionsDTO, error)
}

var _ API = (*client.Client)(nil)

func run(ctx context.Context, args []string, api API, out io.Writer, log logger.Logger) error {
	fs := flag.NewFlagSet("apply", flag.ContinueOnError)
	fs.SetOutput(out)
	postingID := fs.String("posting", "", "ID of the internship to apply to")
	draftPath := fs.String("draft", "", "YAML file with application answers")
	resumePath := fs.String("resume", "", "resume to upload (PDF, DOC or DOCX)")
	list := fs.Bool("list", false, "list open internships and exit")
	skills := fs.String("skills", "", "comma separated skills filter for -list")
	suggestions := fs.Bool("suggestions", false, "show profile suggestions and exit")
	dryRun := fs.Bool("dry-run", false, "validate every step without submitting")
	if err := fs.Parse(args); err != nil {
		return err
	}

	switch {
	case *list:
		return listPostings(ctx, api, *skills, out)
	case *suggestions:
		return showSuggestions(ctx, api, out)
	case *postingID == "":
		return errors.New("-posting is required")
	}

	session, err := submission.OpenApplication(ctx, api, *postingID, log)
	if err != nil {
		return fmt.Errorf("open application: %w", err)
	}
	p := session.Posting()
	fmt.Fprintf(out, "Applying to %s at %s\n", p.Title, p.CompanyName)

	if *draftPath != "" {
		file, err := loadDraftFile(*draftPath)
		if err != nil {
			return err
		}
		if err := mergeDraft(session.Store(), file); err != nil {
			return fmt.Errorf("apply draft file: %w", err)
		}
	}

	if *resumePath != "" {
		content, err := os.ReadFile(*resumePath)
		if err != nil {
			return fmt.Errorf("read resume: %w", err)
		}
		url, err := session.UploadResume(ctx, submission.ResumeFile{Name: filepath.Base(*resumePath), Content: content})
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Resume uploaded: %s\n", url)
	}

	nav := session.Navigator()
	for nav.Step() < form.LastStep {
		from := nav.Step()
		step, errs := nav.Next()
		if !errs.Empty() {
			printErrors(out, from, errs)
			return fmt.Errorf("step %d is incomplete", from)
		}
		fmt.Fprintf(out, "Step %d complete\n", from)
		if step == from {
			break
		}
	}

	if *dryRun {
		if errs := form.ValidateStep(nav.Step(), session.Store().Draft()); !errs.Empty() {
			printErrors(out, nav.Step(), errs)
			return fmt.Errorf("step %d is incomplete", nav.Step())
		}
		fmt.Fprintln(out, "Draft is complete; not submitted (dry run)")
		return nil
	}

	if err := session.Submit(ctx); err != nil {
		if apperror.Is(err, apperror.KindClientValidation) {
			printErrors(out, nav.Step(), session.Store().Errors())
		}
		return err
	}
	fmt.Fprintln(out, "Application submitted successfully")
	return nil
}

func printErrors(out io.Writer, step int, errs form.ValidationErrors) {
	fmt.Fprintf(out, "Step %d needs attention:\n", step)
	for _, k := range errs.Keys() {
		fmt.Fprintf(out, "  %s: %s\n", k, errs[k])
	}
}

func listPostings(ctx context.Context, api API, skills string, out io.Writer) error {
	var filter dto.PostingFilter
	for _, s := range strings.Split(skills, ",") {
		if s = strings.TrimSpace(s); s != "" {
			filter.Skills = append(filter.Skills, s)
		}
	}
	postings, err := api.ListPostings(ctx, filter)
	if err != nil {
		return err
	}
	if len(postings) == 0 {
		fmt.Fprintln(out, "No open internships")
		return nil
	}
	for _, p := range postings {
		fmt.Fprintf(out, "%s  %s (%s, %s) seats left: %d, apply by %s\n",
			p.ID, p.Title, p.CompanyName, p.Location, p.AvailableSeats, p.LastDateToApply.Format(form.DateLayout))
	}
	return nil
}

func showSuggestions(ctx context.Context, api API, out io.Writer) error {
	s, err := api.GetProfileSuggestions(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Profile score: %d/100\n", s.ATSScore)
	for _, sg := range s.Suggestions {
		fmt.Fprintf(out, "  [%s] %s: %s\n", sg.Priority, sg.Category, sg.Message)
	}
	return nil
}
