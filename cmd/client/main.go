package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/zkpauth/internal/buildinfo"
	"github.com/dmitrijs2005/zkpauth/internal/client/cli"
	"github.com/dmitrijs2005/zkpauth/internal/client/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	if err := app.Run(context.Background(), config.Args(os.Args[1:])); err != nil {
		os.Exit(1)
	}

}
