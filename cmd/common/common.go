// Package common contains shared functionality for command handlers
package common

import (
	"fmt"
	"time"

	"rmoreira/findash/cmd/root"
	"rmoreira/findash/internal/classify"
	"rmoreira/findash/internal/logging"
	"rmoreira/findash/internal/report"
	"rmoreira/findash/internal/store"
)

// NewClassifier builds a Classifier from the loaded configuration: the YAML
// tag table, any extra fixed-expense categories and, when enabled, the Gemini
// tag suggester.
func NewClassifier() *classify.Classifier {
	tagsFile := ""
	var extraFixed []string
	if root.Cfg != nil {
		tagsFile = root.Cfg.Classification.TagsFile
		extraFixed = root.Cfg.Classification.ExtraFixedCategories
	}

	tags, err := store.NewTagStore(tagsFile, logging.NewLogrusAdapter(root.Log)).Load()
	if err != nil {
		root.Log.WithError(err).Warn("Using default tag table")
		tags = classify.DefaultTagTable()
	}

	opts := []classify.Option{classify.WithExtraFixedCategories(extraFixed)}
	if root.Cfg != nil && root.Cfg.AI.Enabled && root.Cfg.AI.APIKey != "" {
		timeout := time.Duration(root.Cfg.AI.TimeoutSeconds) * time.Second
		suggester, err := classify.NewGeminiSuggester(root.Cfg.AI.APIKey, root.Cfg.AI.Model, timeout, root.Log)
		if err != nil {
			root.Log.WithError(err).Warn("Tag suggestions disabled")
		} else {
			opts = append(opts, classify.WithSuggester(suggester))
		}
	}
	return classify.New(tags, opts...)
}

// EmitReport renders the report in the resolved format and either writes it
// to the output file or prints it to stdout.
func EmitReport(payload any) error {
	gen := report.NewGenerator(root.ReportFormat())
	if root.SharedFlags.Output != "" {
		return gen.WriteFile(payload, root.SharedFlags.Output)
	}
	data, err := gen.Render(payload)
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
