package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/antares2881/outlook-email-sender/pkg/mailer"
)

// menu runs the interactive loop until the user quits or the context is
// cancelled.
func (a *app) menu(ctx context.Context) error {
	banner()
	in := bufio.NewScanner(os.Stdin)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Println()
		a.printStats()
		fmt.Println()
		fmt.Println("  1) Send to all recipients")
		fmt.Println("  2) Preview run (first recipient only)")
		fmt.Println("  3) Show recipient details")
		fmt.Println("  4) Reload recipient file")
		fmt.Println("  5) Quit")
		fmt.Print("Select an option: ")

		if !in.Scan() {
			return in.Err()
		}

		switch strings.TrimSpace(in.Text()) {
		case "1":
			if !a.confirmSend(in) {
				color.Yellow("Cancelled.")
				continue
			}
			if err := a.sendAll(ctx, false); err != nil {
				color.Red("run failed: %v", err)
			}
		case "2":
			if err := a.sendAll(ctx, true); err != nil {
				color.Red("preview failed: %v", err)
			}
		case "3":
			a.printRecipients()
		case "4":
			if err := a.reload(); err != nil {
				color.Red("reload failed: %v", err)
				continue
			}
			color.Green("Reloaded %d recipients from %s.", len(a.loaded.Records), a.loaded.SourcePath)
		case "5", "q", "quit":
			return nil
		default:
			color.Yellow("Unknown option.")
		}
	}
}

// confirmSend requires the user to type YES before a real bulk run.
func (a *app) confirmSend(in *bufio.Scanner) bool {
	color.New(color.FgHiYellow).Printf(
		"About to send %d emails from %s. Type YES to continue: ",
		len(a.loaded.Records), a.creds.Email,
	)
	if !in.Scan() {
		return false
	}
	return strings.TrimSpace(in.Text()) == "YES"
}

func (a *app) printStats() {
	fmt.Printf("Source: %s\n", a.loaded.SourcePath)
	color.Green("Valid recipients: %d", len(a.loaded.Records))
	if n := len(a.loaded.Rejected); n > 0 {
		color.Red("Rejected rows:    %d", n)
	}
}

func (a *app) printRecipients() {
	for i, r := range a.loaded.Records {
		fmt.Printf("  %3d. %s", i+1, mailer.Recipient(r.Name, r.Email))
		if r.Company != "" {
			fmt.Printf("  (%s)", r.Company)
		}
		fmt.Println()
	}
	for _, rej := range a.loaded.Rejected {
		color.Red("  row %d rejected: %s (%v)", rej.Line, rej.Email, rej.Reason)
	}
}
