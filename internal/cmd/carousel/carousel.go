// Package carousel implements the terminal preview of the testimonial
// carousel. It drives its own rotator session, independent of the site.
package carousel

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/louisbranch/voraglobal/internal/content"
	entrypoint "github.com/louisbranch/voraglobal/internal/platform/cmd"
	"github.com/louisbranch/voraglobal/internal/rotator"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Options holds preview flags.
type Options struct {
	ContentFile string
	Interval    time.Duration
	Start       int
	Width       int
	Once        bool
	LogLevel    string
}

// programRunner runs a bubbletea model; tests replace it.
type programRunner func(ctx context.Context, m tea.Model, in io.Reader, out io.Writer) (tea.Model, error)

func runProgram(ctx context.Context, m tea.Model, in io.Reader, out io.Writer) (tea.Model, error) {
	return tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithAltScreen(),
	).Run()
}

// NewCommand builds the preview command.
func NewCommand() *cobra.Command {
	return newCommand(runProgram)
}

func newCommand(run programRunner) *cobra.Command {
	var opts Options
	cmd := &cobra.Command{
		Use:   "carousel",
		Short: "Preview the testimonial carousel in the terminal",
		Long: `carousel renders the site's testimonials two at a time and advances
them on the configured interval. Use the arrow keys to step through them
and the digit keys to jump to one.

With --once it prints the current window and exits.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return preview(cmd.Context(), opts, cmd.InOrStdin(), cmd.OutOrStdout(), run)
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&opts.ContentFile, "content-file", "", "Content YAML file (default: embedded content)")
	flags.DurationVar(&opts.Interval, "interval", 0, "Auto-advance interval (default: content interval)")
	flags.IntVar(&opts.Start, "start", 0, "Index of the first testimonial shown")
	flags.IntVar(&opts.Width, "width", defaultWidth, "Render width for --once")
	flags.BoolVar(&opts.Once, "once", false, "Print the window once and exit")
	flags.StringVar(&opts.LogLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	return cmd
}

func preview(ctx context.Context, opts Options, in io.Reader, out io.Writer, run programRunner) error {
	if ctx == nil {
		ctx = context.Background()
	}
	logger, err := entrypoint.NewLogger(entrypoint.ServiceCarousel, opts.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	site, err := loadContent(opts.ContentFile)
	if err != nil {
		return err
	}
	interval := site.Carousel.Interval
	if opts.Interval > 0 {
		interval = opts.Interval
	}
	session, err := rotator.NewSession(site.Testimonials, rotator.WithInterval(interval))
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	defer session.Stop()
	if opts.Start < 0 || opts.Start >= session.Len() {
		return fmt.Errorf("start %d out of range [0, %d)", opts.Start, session.Len())
	}
	session.JumpTo(opts.Start)

	if opts.Once {
		_, err := fmt.Fprintln(out, renderWindow(session.Snapshot(), opts.Width))
		return err
	}

	updates, unsubscribe := session.Subscribe()
	defer unsubscribe()
	if err := session.Start(ctx); err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	final, err := run(ctx, newModel(site.Brand, session, updates), in, out)
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	if err != nil {
		return fmt.Errorf("run preview: %w", err)
	}
	if m, ok := final.(model); ok {
		logger.Debug("preview finished", zap.Int("index", m.snap.Index), zap.Duration("interval", interval))
	}
	return nil
}

func loadContent(path string) (*content.Site, error) {
	if strings.TrimSpace(path) == "" {
		return content.LoadEmbedded()
	}
	return content.LoadFile(path)
}
