package loader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// YAMLSource reads a document of the form:
//
//	events:
//	  - name: Examen de programación
//	    date: 03/02/2021
//	    start: "11:45"
//	    end: "13:20"
type YAMLSource struct {
	Path string
}

type yamlDocument struct {
	Events []Record `yaml:"events"`
}

func NewYAMLSource(path string) *YAMLSource {
	return &YAMLSource{Path: path}
}

func (s *YAMLSource) Name() string {
	return "yaml:" + s.Path
}

func (s *YAMLSource) Load(_ context.Context) ([]Record, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, s.Path)
		}
		return nil, err
	}
	defer f.Close()

	return ParseYAML(f)
}

func ParseYAML(r io.Reader) ([]Record, error) {
	var doc yamlDocument
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to decode yaml: %w", err)
	}
	return doc.Events, nil
}
