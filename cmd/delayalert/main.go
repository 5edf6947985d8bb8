package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Seiya-Nakagawa/train-delay-alert/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional)")
	prefsPath := flag.String("prefs", "", "override prefs path (optional)")
	code := flag.String("code", "", "login code, or the redirect URL carrying ?code=")
	flag.Parse()

	loginCode := *code
	if loginCode == "" {
		loginCode = os.Getenv("DELAYALERT_LOGIN_CODE")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		PrefsPath:  *prefsPath,
		LoginCode:  loginCode,
	}
	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "delayalert: %v\n", err)
		return 1
	}
	return 0
}
