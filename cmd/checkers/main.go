package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	// .env is optional; it only feeds CHECKERS_* overrides.
	envErr := godotenv.Load()

	app := newApp(os.Stdin, os.Stdout)
	app.Before = chainBefore(app.Before, func() {
		if envErr != nil && !os.IsNotExist(envErr) {
			log.Warn().Err(envErr).Msg("error loading .env file")
		}
	})
	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("checkers")
	}
}
