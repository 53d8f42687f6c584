package handlers

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/imamik/atmoctl/internal/credsource"
	"github.com/imamik/atmoctl/internal/launch"
	"github.com/imamik/atmoctl/internal/ui/progress"
)

// LaunchOptions contains options for the launch command.
type LaunchOptions struct {
	CSVPath          string
	Username         string
	Image            string
	ImageVersion     string
	Size             string
	AllocationSource string

	ConfigPath string
	Target     string
	AuthMode   string

	DontWait     bool
	PollInterval time.Duration
	Deadline     time.Duration

	MetricsListen string
	NoTUI         bool
}

// runProgram runs the progress view until the batch finishes. Replaced in
// tests to avoid driving a real terminal.
var runProgram = func(p *tea.Program) error {
	_, err := p.Run()
	return err
}

// Launch launches one instance per account, all accounts concurrently,
// and prints a per-account outcome report. The batch itself is
// best-effort: individual account failures end up in the report, not in
// the returned error.
func Launch(ctx context.Context, opts LaunchOptions) error {
	cfg, err := resolveConfig(opts.ConfigPath, opts.Target, opts.AuthMode)
	if err != nil {
		return err
	}
	if opts.DontWait {
		cfg.Wait = false
	}
	if opts.PollInterval > 0 {
		cfg.PollInterval = opts.PollInterval
	}
	if opts.Deadline > 0 {
		cfg.Deadline = opts.Deadline
	}
	if opts.MetricsListen != "" {
		cfg.MetricsListen = opts.MetricsListen
	}

	mode := cfg.ParsedAuthMode()
	requests, err := launchRequests(ctx, opts, mode)
	if err != nil {
		return err
	}
	if len(requests) == 0 {
		return fmt.Errorf("no accounts to launch")
	}

	if cfg.MetricsListen != "" {
		stop := serveMetrics(cfg.MetricsListen)
		defer stop()
	}

	sessions := newSessionProvider(cfg.ParsedTarget(), mode)
	orchOpts := cfg.LaunchOptions()

	var outcomes []launch.OutcomeRecord
	if useTUI(opts.NoTUI) {
		outcomes = runWithProgress(ctx, sessions, orchOpts, requests)
	} else {
		orch := launch.NewOrchestrator(sessions, orchOpts, launch.LogObserver{})
		outcomes = orch.Run(ctx, requests)
	}

	fmt.Print(RenderReport(outcomes, colorEnabled()))
	return nil
}

// launchRequests reads the batch from the CSV or builds a single request
// from flags plus an interactive secret prompt.
func launchRequests(ctx context.Context, opts LaunchOptions, mode launch.AuthMode) ([]launch.LaunchRequest, error) {
	switch {
	case opts.CSVPath != "" && opts.Username != "":
		return nil, fmt.Errorf("--csv and --username are mutually exclusive")
	case opts.CSVPath != "":
		return readLaunchCSV(opts.CSVPath, mode)
	case opts.Username != "":
		return singleLaunchRequest(ctx, opts, mode)
	default:
		return nil, fmt.Errorf("either --csv or --username is required")
	}
}

func singleLaunchRequest(ctx context.Context, opts LaunchOptions, mode launch.AuthMode) ([]launch.LaunchRequest, error) {
	if opts.Image == "" || opts.ImageVersion == "" || opts.Size == "" {
		return nil, fmt.Errorf("--image, --image-version and --size are required with --username")
	}
	imageID, err := credsource.ParseImageRef(opts.Image)
	if err != nil {
		return nil, err
	}
	cred, err := singleCredential(ctx, opts.Username, mode)
	if err != nil {
		return nil, err
	}
	req := launch.LaunchRequest{
		Credential:       cred,
		ImageID:          imageID,
		ImageVersion:     opts.ImageVersion,
		Size:             opts.Size,
		AllocationSource: opts.AllocationSource,
	}
	if err := req.Validate(mode); err != nil {
		return nil, err
	}
	return []launch.LaunchRequest{req}, nil
}

// runWithProgress drives the batch behind a live terminal view. The
// orchestrator runs in its own goroutine; the view owns the terminal
// until the batch is done.
func runWithProgress(ctx context.Context, sessions launch.SessionProvider, opts launch.Options, requests []launch.LaunchRequest) []launch.OutcomeRecord {
	usernames := make([]string, len(requests))
	for i, req := range requests {
		usernames[i] = req.Credential.Username
	}

	p := tea.NewProgram(progress.NewModel("atmoctl launch", usernames))
	orch := launch.NewOrchestrator(sessions, opts, progress.Observer(p))

	results := make(chan []launch.OutcomeRecord, 1)
	go func() {
		outcomes := orch.Run(ctx, requests)
		results <- outcomes
		p.Send(progress.DoneMsg{})
	}()

	if err := runProgram(p); err != nil {
		// View lost the terminal; the batch keeps running and the report
		// still prints when it finishes.
		fmt.Fprintf(os.Stderr, "progress view failed: %v\n", err)
	}
	return <-results
}

func useTUI(noTUI bool) bool {
	return !noTUI && isatty.IsTerminal(os.Stdout.Fd())
}

func colorEnabled() bool {
	return isatty.IsTerminal(os.Stdout.Fd())
}
