package main

import (
	"os"

	"ticketbot/cmd"

	log "github.com/sirupsen/logrus"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.WithError(err).Error("ticketbot exited with error")
		os.Exit(1)
	}
}
