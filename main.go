package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"staff-trainer/config"
	"staff-trainer/debug"
	"staff-trainer/midi"
	"staff-trainer/theme"
	"staff-trainer/trainer"
	"staff-trainer/tui"
)

var (
	configPath string
	courseFlag string
	notesFlag  int
	seedFlag   uint64
	debugFlag  bool
	noMIDIFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "staff-trainer",
	Short: "Drill note names on the treble and bass staff",
	Long: `staff-trainer shows notes on a grand staff and asks for their letter names.

Answer with the c-b keys, the on-screen buttons, a MIDI keyboard or a
Launchpad. Pick a course with 1-7 to drill lines, spaces or a whole clef.`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.config/staff-trainer/config.yaml)")
	rootCmd.Flags().StringVarP(&courseFlag, "course", "c", "", "start with this course instead of the demo scale")
	rootCmd.Flags().IntVarP(&notesFlag, "notes", "n", 0, fmt.Sprintf("notes per round (1-%d)", trainer.MaxNotes))
	rootCmd.Flags().Uint64Var(&seedFlag, "seed", 0, "random seed for reproducible rounds (0 = random)")
	rootCmd.Flags().BoolVar(&debugFlag, "debug", false, "write a debug log to ~/.config/staff-trainer/debug.log")
	rootCmd.Flags().BoolVar(&noMIDIFlag, "no-midi", false, "do not scan for MIDI controllers")

	rootCmd.AddCommand(coursesCmd, portsCmd)
}

// loadConfig reads the config file and applies flag overrides
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("course") {
		cfg.Course = courseFlag
	}
	if flags.Changed("notes") {
		cfg.NotesPerRound = notesFlag
	}
	if flags.Changed("seed") {
		cfg.Seed = seedFlag
	}
	if flags.Changed("debug") {
		cfg.Debug = debugFlag
	}
	if flags.Changed("no-midi") {
		cfg.MIDI.Disabled = noMIDIFlag
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if cfg.Debug {
		if err := debug.Enable(""); err != nil {
			return fmt.Errorf("enable debug log: %w", err)
		}
		defer debug.Disable()
	}

	palette := theme.DefaultPalette()
	if cfg.Palette != "" {
		if palette, err = theme.LoadGPL(cfg.Palette); err != nil {
			return fmt.Errorf("load palette: %w", err)
		}
	}
	th := theme.New(palette)

	t := trainer.New(newRand(cfg.Seed), cfg.NotesPerRound)
	if c, ok := cfg.StartCourse(); ok {
		t.SelectCourse(c)
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	var deviceMgr *midi.DeviceManager
	if !cfg.MIDI.Disabled {
		deviceMgr = midi.NewDeviceManager(cfg.MIDI.PollInterval)
		go deviceMgr.Run(ctx)
	}

	m := tui.NewModel(t, deviceMgr, th)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return err
	}

	rememberCourse(cfg, t)
	return nil
}

// rememberCourse saves the course being drilled for the next run. Flag
// overrides in cfg stay out of the file.
func rememberCourse(cfg *config.Config, t *trainer.Trainer) {
	if t.Demo() {
		return
	}
	if err := config.RememberCourse(cfg.Path(), t.Course().String()); err != nil {
		debug.Log("config", "save %s: %v", cfg.Path(), err)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
