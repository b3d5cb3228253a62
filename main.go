package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/klokku/agenda/internal/app"
	log "github.com/sirupsen/logrus"
)

func init() {
	level := os.Getenv("LOG_LEVEL")
	if level != "" {
		logrusLevel, err := log.ParseLevel(level)
		if err != nil {
			log.Fatal(err)
		}
		log.SetLevel(logrusLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
}

func main() {
	configPath := flag.String("config", "./config/application.yaml", "Path to config file")
	reportOnly := flag.Bool("report", false, "Print the calendar report and exit instead of serving the API")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	application, err := app.NewApplication(ctx, *configPath)
	if err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}

	if *reportOnly {
		if err := application.RunReport(ctx, os.Stdout); err != nil {
			log.Fatal(err)
		}
		return
	}
	if err := application.Run(ctx); err != nil {
		log.Fatal(err)
	}
}
