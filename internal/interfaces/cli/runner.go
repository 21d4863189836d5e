package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/riskibarqy/content-brain/internal/platform/logging"
	"github.com/riskibarqy/content-brain/internal/usecase"
)

var cliTracer = otel.Tracer("content-brain/internal/interfaces/cli")

// Services is what the commands drive.
type Services struct {
	Auth          *usecase.SessionService
	Password      *usecase.PasswordService
	Onboarding    *usecase.OnboardingService
	Dashboard     *usecase.DashboardService
	Calendar      *usecase.CalendarService
	ProfileEditor *usecase.ProfileEditorService
	Pillars       *usecase.PillarService
	Settings      *usecase.SettingsService
}

type command struct {
	name    string
	summary string
	run     func(ctx context.Context, r *Runner, args []string) error
}

type Runner struct {
	svc    Services
	nav    *Navigator
	prompt *Prompter
	stdout io.Writer
	stderr io.Writer
	logger *logging.Logger

	commands map[string]command
}

func NewRunner(svc Services, stdin io.Reader, stdout, stderr io.Writer, logger *logging.Logger) *Runner {
	r := &Runner{
		svc:    svc,
		nav:    NewNavigator(),
		prompt: NewPrompter(stdin, stdout),
		stdout: stdout,
		stderr: stderr,
		logger: logging.OrDefault(logger).With("component", "cli"),
	}
	r.commands = make(map[string]command)
	for _, c := range commandTable() {
		r.commands[c.name] = c
	}
	return r
}

// Run dispatches args (without the program name) and returns the exit code.
func (r *Runner) Run(ctx context.Context, args []string) int {
	if len(args) == 0 {
		r.printUsage(r.stderr)
		return exitUsage
	}

	name := args[0]
	switch name {
	case "help", "-h", "--help":
		r.printUsage(r.stdout)
		return exitOK
	}

	cmd, ok := r.commands[name]
	if !ok {
		_, _ = fmt.Fprintf(r.stderr, "Unknown command: %s\n", name)
		r.printUsage(r.stderr)
		return exitUsage
	}

	ctx, span := cliTracer.Start(ctx, "cli.Command."+name)
	defer span.End()
	span.SetAttributes(attribute.String("cli.command", name))

	err := cmd.run(ctx, r, args[1:])
	code := exitCode(err)
	if err != nil && !errors.Is(err, flag.ErrHelp) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		if !errors.Is(err, errReported) {
			_, _ = fmt.Fprintf(r.stderr, "Error: %v\n", err)
		}
		r.logger.DebugContext(ctx, "command failed", "command", name, "exit_code", code, "error", err)
	}
	return code
}

func (r *Runner) printUsage(w io.Writer) {
	_, _ = fmt.Fprintln(w, "Usage: contentbrain <command> [flags]")
	_, _ = fmt.Fprintln(w, "")
	_, _ = fmt.Fprintln(w, "Commands:")
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		_, _ = fmt.Fprintf(w, "  %-16s %s\n", name, r.commands[name].summary)
	}
	_, _ = fmt.Fprintln(w, "")
	_, _ = fmt.Fprintln(w, "Run `contentbrain <command> -h` for command flags.")
}

func (r *Runner) flags(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(r.stderr)
	return fs
}

// parse wraps flag parse failures as usage errors.
func parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return usagef(err.Error())
	}
	if fs.NArg() > 0 {
		return usagef(fmt.Sprintf("unexpected arguments: %s", strings.Join(fs.Args(), " ")))
	}
	return nil
}

// enter runs the navigation guard for path.
func (r *Runner) enter(ctx context.Context, path string) (Destination, error) {
	dest := r.nav.Resolve(path, r.svc.Auth.IsAuthenticated())
	r.logger.DebugContext(ctx, "navigate", "path", path, "route", dest.Name, "redirected", dest.Redirected)
	if dest.Redirected {
		return dest, fmt.Errorf("%w: sign in first with `contentbrain login`", usecase.ErrUnauthorized)
	}
	if dest.Name == RouteNameNotFound {
		return dest, fmt.Errorf("%w: page %s", usecase.ErrNotFound, dest.Path)
	}
	return dest, nil
}

// value returns current when set, else asks.
func (r *Runner) value(current, label string) (string, error) {
	if strings.TrimSpace(current) != "" {
		return current, nil
	}
	return r.prompt.Ask(label, "")
}

func required(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return usagef("--" + name + " is required")
	}
	return nil
}

// stringList is a repeatable string flag.
type stringList []string

func (l *stringList) String() string { return strings.Join(*l, ",") }

func (l *stringList) Set(v string) error {
	*l = append(*l, v)
	return nil
}

func visited(fs *flag.FlagSet) map[string]bool {
	out := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { out[f.Name] = true })
	return out
}
