package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	flag "github.com/spf13/pflag"

	"github.com/antares2881/outlook-email-sender/pkg/config"
)

const appName = "outlook-sender"

// defaultTemplate is used when the configuration names no template file.
const defaultTemplate = `<html>
  <body>
    <h2>Hello {{name}},</h2>
    <p>{{custom_message}}</p>
    <p>Best regards,<br>{{from_name}}</p>
  </body>
</html>
`

type flags struct {
	configPath     string
	recipientsPath string
	send           bool
	previewTo      string
}

func parseFlags(args []string) (flags, error) {
	var f flags
	fs := flag.NewFlagSet(appName, flag.ContinueOnError)
	fs.StringVarP(&f.configPath, "config", "c", "config.yaml", "Path to the run configuration file")
	fs.StringVarP(&f.recipientsPath, "recipients", "r", "", "Override the recipient source path from the configuration")
	fs.BoolVar(&f.send, "send", false, "Send to every recipient without the interactive menu")
	fs.StringVar(&f.previewTo, "preview", "", "Send a single test email to the given address and exit")
	err := fs.Parse(args)
	return f, err
}

func main() {
	f, err := parseFlags(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	// Credentials may live in a .env next to the binary; absence is fine
	// when the variables are already exported.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, f); err != nil {
		color.Red("error: %v", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, f flags) error {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return err
	}
	if f.recipientsPath != "" {
		cfg.Files.Recipients = f.recipientsPath
	}

	creds, err := config.CredentialsFromEnv()
	if err != nil {
		return err
	}

	a, err := newApp(cfg, creds)
	if err != nil {
		return err
	}
	defer a.close()

	switch {
	case f.previewTo != "":
		return a.previewTo(ctx, f.previewTo)
	case f.send:
		return a.sendAll(ctx, false)
	default:
		return a.menu(ctx)
	}
}

func banner() {
	line := "============================================================"
	fmt.Println(line)
	color.New(color.FgHiCyan, color.Bold).Println("  BULK PERSONALIZED EMAIL SENDER")
	fmt.Println(line)
}

func logLevel() slog.Level {
	if os.Getenv("DEBUG") != "" {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}
