package config

import (
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	log "github.com/sirupsen/logrus"
)

const envPrefix = "AGENDA_"

type Application struct {
	Addr    string `koanf:"addr"`
	Refresh string `koanf:"refresh"`
	Source  Source `koanf:"source"`
	Google  Google `koanf:"google"`
}

type Source struct {
	// Type is one of csv, yaml, ics or google.
	Type string `koanf:"type"`
	Path string `koanf:"path"`
	// Year limits the google source to one calendar year.
	Year int `koanf:"year"`
}

type Google struct {
	CalendarId  string `koanf:"calendarid"`
	AccessToken string `koanf:"accesstoken"`
	ApiKey      string `koanf:"apikey"`
}

func defaults() Application {
	return Application{
		Addr: ":8181",
		Source: Source{
			Type: "csv",
			Path: "./data/events.csv",
			Year: 2021,
		},
		Google: Google{
			CalendarId: "primary",
		},
	}
}

func Load(path string) (Application, error) {
	var k = koanf.New(".")

	err := k.Load(structs.Provider(defaults(), "koanf"), nil)
	if err != nil {
		log.Errorf("error loading config from structs: %v", err)
		return Application{}, err
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if os.IsNotExist(err) {
			log.Infof("Config file not found at %s, using defaults and environment variables", path)
		} else {
			log.Errorf("error loading config from YAML: %v", err)
			return Application{}, err
		}
	} else {
		log.Infof("Loaded configuration from file: %s", path)
	}

	err = k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(k, v string) (string, any) {
			// AGENDA_SOURCE_PATH -> source.path
			k = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(k, envPrefix)), "_", ".")
			return k, v
		},
	}), nil)
	if err != nil {
		log.Errorf("error loading config from envs: %v", err)
		return Application{}, err
	}

	var app Application
	if err := k.Unmarshal("", &app); err != nil {
		return Application{}, err
	}
	app.Source.Type = strings.ToLower(strings.TrimSpace(app.Source.Type))

	return app, nil
}
