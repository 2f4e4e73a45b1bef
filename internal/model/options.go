package model

import (
	"github.com/goliatone/go-formbind/pkg/defaults"
	"github.com/goliatone/go-formbind/pkg/submission"
)

// Options configures the behaviour of the Builder. Options are constructed by
// the public adapter in pkg/model and passed into New.
type Options struct {
	Labeler   func(string) string
	Separator string
	Prefix    string
	Excluded  []string
	Generator *defaults.Generator
}

func defaultOptions() Options {
	return Options{
		Labeler:   DefaultLabeler,
		Separator: submission.DefaultSeparator,
	}
}
