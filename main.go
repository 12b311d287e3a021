package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"gitlab.com/aoterocom/AOStrategyPreview/app"
)

func main() {
	if err := app.NewApp(os.Stdout).Run(os.Args); err != nil {
		log.Fatalln(err)
	}
}
