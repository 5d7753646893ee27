package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mdp/qrterminal/v3"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"pkt.systems/pslog"
	"pkt.systems/tmui"
)

// mirrorFromConfig is the value of a bare --mirror: listen where the
// config says.
const mirrorFromConfig = "config"

// sessionFlags are the persistent flags shared by every console command.
type sessionFlags struct {
	configFile  string
	headless    bool
	keys        []string
	mirror      string
	printScreen bool
}

func (f *sessionFlags) register(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringVar(&f.configFile, "config", "", "config file path")
	flags.BoolVar(&f.headless, "headless", false, "draw into memory instead of the terminal")
	flags.StringSliceVar(&f.keys, "keys", nil, "scripted keys for --headless, e.g. down,down,enter")
	flags.StringVar(&f.mirror, "mirror", "", "serve a read-only websocket mirror on this address")
	flags.Lookup("mirror").NoOptDefVal = mirrorFromConfig
	flags.Bool("mirror-qr", false, "print a QR code of the mirror URL before the console opens")
	flags.StringSlice("mirror-tls", nil, "PEM files with certificate and key; serves the mirror over wss")
	flags.BoolVar(&f.printScreen, "print-screen", false, "print the final screen contents to stdout")
	flags.String("title", tmui.DefaultTitle, "header title")
	flags.String("dump-file", "", "write a screen dump here on every save")
	flags.Int("width", tmui.DefaultWidth, "columns for --headless")
	flags.Int("height", tmui.DefaultHeight, "rows for --headless")
}

// bind ties flags to their config keys so explicit flags win over the
// config file and the environment.
func (f *sessionFlags) bind(cmd *cobra.Command, loader *tmui.Loader) error {
	v := loader.Viper()
	flags := cmd.PersistentFlags()
	for key, name := range map[string]string{
		"console.title":     "title",
		"console.dump_file": "dump-file",
		"console.width":     "width",
		"console.height":    "height",
		"mirror.qr":         "mirror-qr",
		"mirror.tls_bundle": "mirror-tls",
	} {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			return err
		}
	}
	return nil
}

// openSession loads the config, applies the session flags and opens the
// console. The returned closer closes the console, optionally prints the
// final screen and closes the log file.
func (f *sessionFlags) openSession(cmd *cobra.Command, loader *tmui.Loader) (*tmui.Session, func() error, error) {
	if f.configFile != "" {
		loader.SetConfigFile(f.configFile)
	}
	cfg, err := loader.Load()
	if err != nil {
		return nil, nil, err
	}
	if f.headless {
		cfg.Console.Driver = tmui.DriverMemory
	}
	keys, err := parseKeys(f.keys)
	if err != nil {
		return nil, nil, err
	}
	if len(keys) > 0 && cfg.Console.Driver != tmui.DriverMemory {
		return nil, nil, fmt.Errorf("--keys needs --headless")
	}
	useMirror := f.mirror != ""
	if useMirror && f.mirror != mirrorFromConfig {
		cfg.Mirror.Listen = f.mirror
	}

	logger, logFile, err := openFileLogger(cfg.Log.File)
	if err != nil {
		return nil, nil, err
	}
	logger = logger.With("command", cmd.Name())
	cmd.SetContext(pslog.ContextWithLogger(cmd.Context(), logger))

	s, err := tmui.Open(cmd.Context(), tmui.OpenOptions{
		Config: cfg,
		Logger: logger,
		Keys:   keys,
		Mirror: useMirror,
		MirrorReady: func(url string) {
			logger.Info("mirror ready", "url", url)
			if cfg.Mirror.QR {
				showQR(cmd, url, cfg.Console.Driver == tmui.DriverANSI)
			}
		},
	})
	if err != nil {
		_ = logFile.Close()
		return nil, nil, err
	}
	closer := func() error {
		snap := s.Display()
		err := s.Close()
		if f.printScreen {
			printScreen(cmd.OutOrStdout(), snap)
		}
		if cerr := logFile.Close(); err == nil {
			err = cerr
		}
		return err
	}
	return s, closer, nil
}

func parseKeys(names []string) ([]tmui.Key, error) {
	keys := make([]tmui.Key, 0, len(names))
	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			continue
		}
		k, err := tmui.ParseKey(name)
		if err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, nil
}

func printScreen(w io.Writer, snap tmui.Snapshot) {
	for y := 0; y < snap.Rows; y++ {
		_, _ = fmt.Fprintln(w, strings.TrimRight(snap.Row(y), " "))
	}
}

func printQR(w io.Writer, url string) {
	if strings.TrimSpace(url) == "" {
		return
	}
	_, _ = fmt.Fprintf(w, "mirror: %s\n", url)
	qrterminal.GenerateHalfBlock(url, qrterminal.L, w)
}

// showQR prints the mirror QR code. On a terminal it waits for Enter so the
// code can be scanned before the console clears the screen.
func showQR(cmd *cobra.Command, url string, wait bool) {
	w := cmd.ErrOrStderr()
	printQR(w, url)
	if !wait || !term.IsTerminal(int(os.Stdin.Fd())) {
		return
	}
	_, _ = fmt.Fprint(w, "press Enter to start ")
	_, _ = bufio.NewReader(os.Stdin).ReadString('\n')
}

// endOfScript turns the end of a --keys script into a clean exit.
func endOfScript(s *tmui.Session, err error) error {
	if s.Headless() && errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
