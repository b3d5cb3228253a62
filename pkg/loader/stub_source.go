package loader

import (
	"context"
	"slices"
)

type StubSource struct {
	Records []Record
	Err     error
	Calls   int
}

func NewStubSource(records ...Record) *StubSource {
	return &StubSource{Records: slices.Clone(records)}
}

func (s *StubSource) Name() string {
	return "stub"
}

func (s *StubSource) Load(_ context.Context) ([]Record, error) {
	s.Calls++
	if s.Err != nil {
		return nil, s.Err
	}
	return slices.Clone(s.Records), nil
}
