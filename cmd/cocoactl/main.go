package main

import (
	"cocoa/cmd/cocoactl/commands"
	"os"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

var version = "dev"

func main() {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Debug("The .env file not found.")
	}

	var cli commands.CLI
	ctx := kong.Parse(&cli,
		kong.Name("cocoactl"),
		kong.Description("Inspect and maintain exposure detection state."),
		kong.Vars{"version": version},
	)

	g, err := commands.OpenGlobal(cli.Settings)
	if err != nil {
		log.WithError(err).Fatal("failed to open stores")
	}
	defer g.Close()

	if err := ctx.Run(g, &cli); err != nil {
		log.WithError(err).Error("command failed")
		g.Close()
		os.Exit(1)
	}
}
