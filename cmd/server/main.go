package main

import (
	"os"

	"lion_slot/internal/app"

	_ "go.uber.org/automaxprocs"
)

func main() {
	// Run сам пишет ошибку в zap лог
	if err := app.NewApp().Run(); err != nil {
		os.Exit(1)
	}
}
