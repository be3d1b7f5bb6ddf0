package main

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/alkime/paramctl/internal/config"
	"github.com/alkime/paramctl/internal/logger"
	"github.com/alkime/paramctl/internal/param"
	"github.com/alkime/paramctl/internal/server"
	"github.com/alkime/paramctl/internal/slider"
	"github.com/alkime/paramctl/internal/tui"
	"github.com/alkime/paramctl/pkg/collections"
	"github.com/alkime/paramctl/pkg/uictl"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// CLI defines the paramctl command structure.
type CLI struct {
	// Default TUI command (runs when no subcommand given)
	TUI TUICmd `cmd:"" default:"withargs" help:"Edit a parameter bank with terminal sliders"`

	// Subcommands
	Fill   FillCmd   `cmd:"" help:"Print the fill geometry for a style and value"`
	Params ParamsCmd `cmd:"" help:"List the parameters of a bank"`
	Serve  ServeCmd  `cmd:"" help:"Serve a parameter bank over HTTP"`
}

// TUICmd is the default command that runs the TUI.
type TUICmd struct {
	Bank    string `flag:"" optional:"" help:"Bank file (.toml, .yaml); default is the demo bank"`
	Width   int    `flag:"" optional:"" help:"Slider width in cells"`
	Style   string `flag:"" default:"from-left" help:"Fill style: ${styles}"`
	Even    bool   `flag:"" help:"Draw step styles as equal slots"`
	LogFile string `flag:"" optional:"" help:"Log file (the terminal is busy)"`
	Serve   bool   `flag:"" help:"Also serve the bank over HTTP for remote automation"`
}

// Run executes the TUI command.
func (c *TUICmd) Run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if c.LogFile != "" {
		cfg.LogFile = c.LogFile
	}

	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer logFile.Close()

	log := logger.SetupLogger(cfg, logFile)

	style, err := slider.ParseStyle(c.Style, c.Even)
	if err != nil {
		return err
	}

	width := cfg.SliderWidth
	if c.Width > 0 {
		width = c.Width
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ev, err := startEvents(ctx, true)
	if err != nil {
		return err
	}

	bank, err := loadBank(firstNonEmpty(c.Bank, cfg.BankPath), ev.host)
	if err != nil {
		return err
	}

	serveErr := make(chan error, 1)
	if c.Serve {
		go func() {
			serveErr <- server.Run(ctx, server.New(cfg, log, bank))
		}()
	} else {
		close(serveErr)
	}

	log.Info("Starting paramctl", "params", bank.Len(), "style", style.String(), "width", width)

	p := tea.NewProgram(tui.New(tui.Config{
		Title:               "paramctl",
		Params:              bank.All(),
		Style:               style,
		Width:               width,
		DisableDoubleClick:  cfg.DisableDoubleClick,
		DoubleClickInterval: cfg.DoubleClickInterval(),
		Scale:               cfg.DPIScale,
		Events:              ev.ui,
		Cancel:              cancel,
	}), tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithReportFocus())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to start TUI: %w", err)
	}

	cancel()
	ev.wait()

	if err := <-serveErr; err != nil {
		return err
	}

	for _, prm := range bank.All() {
		fmt.Printf("%s = %s\n", prm.ID(), prm.Format(prm.Read(), true))
	}

	return nil
}

// FillCmd prints the fill computed for a value.
type FillCmd struct {
	Style   string  `flag:"" required:"" help:"Fill style: ${styles}"`
	Even    bool    `flag:"" help:"Draw step styles as equal slots"`
	Value   float32 `flag:"" required:"" help:"Normalized value"`
	Default float32 `flag:"" default:"0" help:"Normalized default"`
	Steps   int     `flag:"" default:"-1" help:"Step count; negative for a continuous parameter"`
}

// Run executes the fill command.
func (c *FillCmd) Run() error {
	style, f, err := c.fill()
	if err != nil {
		return err
	}

	fmt.Printf("style=%s value=%.4f start=%.4f delta=%.4f end=%.4f\n",
		style, uictl.Clamp(c.Value, 0, 1), f.Start, f.Delta, f.End())

	return nil
}

// fill computes the fill for the raw flag values. The value is not snapped
// to the step grid, so in-between values show where they fall.
func (c *FillCmd) fill() (slider.Style, slider.Fill, error) {
	style, err := slider.ParseStyle(c.Style, c.Even)
	if err != nil {
		return style, slider.Fill{}, err
	}

	if c.Steps > math.MaxInt32 {
		return style, slider.Fill{}, fmt.Errorf("step count %d out of range", c.Steps)
	}

	in := slider.FillInput{
		Current: uictl.Clamp(c.Value, 0, 1),
		Default: uictl.Clamp(c.Default, 0, 1),
	}

	if c.Steps < 0 {
		in.Stepper = param.NewFloat("value", "Value", param.Linear{Min: 0, Max: 1}, in.Default)
	} else {
		in.Stepper = param.NewInt("value", "Value", 0, int32(c.Steps), 0)
		in.StepCount, in.Stepped = uint32(c.Steps), true
	}

	return style, slider.ComputeFill(style, in), nil
}

// ParamsCmd lists the parameters of a bank.
type ParamsCmd struct {
	Bank    string `flag:"" optional:"" help:"Bank file (.toml, .yaml); default is the demo bank"`
	Style   string `flag:"" default:"from-left" help:"Fill style: ${styles}"`
	Even    bool   `flag:"" help:"Draw step styles as equal slots"`
	Stepped bool   `flag:"" help:"Only list stepped parameters"`
}

// Run executes the params command.
func (c *ParamsCmd) Run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	style, err := slider.ParseStyle(c.Style, c.Even)
	if err != nil {
		return err
	}

	bank, err := loadBank(firstNonEmpty(c.Bank, cfg.BankPath), param.NopHost{})
	if err != nil {
		return err
	}

	params := bank.All()
	if c.Stepped {
		params = collections.Filter(params, func(p param.Param) bool {
			_, ok := p.StepCount()
			return ok
		})
	}

	rows := collections.Apply(params, func(p param.Param) []string {
		steps := "-"
		if n, ok := p.StepCount(); ok {
			steps = fmt.Sprint(n)
		}

		f := slider.FillFor(style, p)

		return []string{
			p.ID(),
			p.Name(),
			p.Format(p.Read(), true),
			p.Format(p.DefaultNormalizedValue(), true),
			steps,
			fmt.Sprintf("%.3f+%.3f", f.Start, f.Delta),
		}
	})

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "NAME", "VALUE", "DEFAULT", "STEPS", "FILL").
		Rows(rows...)

	fmt.Println(t.Render())

	return nil
}

// ServeCmd serves a bank over HTTP.
type ServeCmd struct {
	Bank string `flag:"" optional:"" help:"Bank file (.toml, .yaml); default is the demo bank"`
	Port string `flag:"" optional:"" help:"Listen port (overrides PORT)"`
}

// Run executes the serve command.
func (c *ServeCmd) Run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if c.Port != "" {
		cfg.Port = c.Port
	}

	log := logger.SetupLogger(cfg, os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ev, err := startEvents(ctx, false)
	if err != nil {
		return err
	}

	bank, err := loadBank(firstNonEmpty(c.Bank, cfg.BankPath), ev.host)
	if err != nil {
		return err
	}

	log.Info("Starting paramctl server", "env", cfg.Env, "port", cfg.Port, "params", bank.Len())

	err = server.Run(ctx, server.New(cfg, log, bank))
	stop()
	ev.wait()

	return err
}

// loadBank reads a bank file, or returns the demo bank for an empty path.
func loadBank(path string, host param.Host) (*param.Bank, error) {
	if path == "" {
		return param.DemoBank(host), nil
	}

	bank, err := param.LoadBank(path, host)
	if err != nil {
		return nil, fmt.Errorf("failed to load bank %s: %w", path, err)
	}

	return bank, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}

func main() {
	// Set up text-based logger for CLI output
	//nolint:exhaustruct // Using default values for other HandlerOptions fields
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))

	cli := &CLI{} //nolint:exhaustruct // Kong fills in command fields
	ctx := kong.Parse(cli,
		kong.Name("paramctl"),
		kong.Description("Drag, scroll, step and type normalized parameters."),
		kong.Vars{"styles": stylesHelp()},
	)

	err := ctx.Run()
	ctx.FatalIfErrorf(err)
	os.Exit(0)
}

func stylesHelp() string {
	return strings.Join(slider.StyleNames(), ", ")
}
