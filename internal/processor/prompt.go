package processor

import (
	"github.com/nguyentantai21042004/standup-scribe/internal/config"
	"github.com/nguyentantai21042004/standup-scribe/internal/summarizer"
)

// ResolvePrompt builds the summary prompt and transcription language.
// path overrides the configured prompt file; an explicitly given file must exist.
// The override file's language wins over the configured one.
func ResolvePrompt(cfg *config.Config, path string, explicit bool) (summarizer.Prompt, string, error) {
	if path == "" {
		path = cfg.Prompts.File
	}

	override, err := config.LoadPrompts(path, explicit)
	if err != nil {
		return summarizer.Prompt{}, "", err
	}

	language := cfg.Prompts.Language
	if override.Language != "" {
		language = override.Language
	}
	prompt := summarizer.DefaultPrompt(language).WithOverrides(override.System, override.User)
	return prompt, language, nil
}
