package job

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/hclsimple"

	"github.com/dylan-ru/sub-lator/internal/fsutil"
	"github.com/dylan-ru/sub-lator/internal/provider"
	"github.com/dylan-ru/sub-lator/internal/transcribe"
	"github.com/dylan-ru/sub-lator/internal/translate"
)

// Load parses the job file at path, or every .hcl file under it when path
// is a directory, and returns the merged, validated job.
func Load(path string) (*Job, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat job path: %w", err)
	}

	files := []string{path}
	if info.IsDir() {
		files, err = fsutil.FindFilesByExtension(path, ".hcl")
		if err != nil {
			return nil, fmt.Errorf("failed to scan job directory: %w", err)
		}
		if len(files) == 0 {
			return nil, fmt.Errorf("no .hcl job files found under %s", path)
		}
	}

	job := &Job{}
	for _, file := range files {
		var parsed File
		if err := hclsimple.DecodeFile(file, nil, &parsed); err != nil {
			return nil, fmt.Errorf("failed to parse job file %s: %w", file, err)
		}
		job.Translates = append(job.Translates, parsed.Translates...)
		job.Transcribes = append(job.Transcribes, parsed.Transcribes...)
		job.Syncs = append(job.Syncs, parsed.Syncs...)
	}

	if err := validate(job); err != nil {
		return nil, err
	}
	return job, nil
}

// validate applies defaults and rejects configurations that would only fail
// later, mid-batch.
func validate(job *Job) error {
	if job.Empty() {
		return fmt.Errorf("job defines no operations")
	}

	seen := make(map[string]bool)
	unique := func(kind, name string) error {
		key := kind + "." + name
		if seen[key] {
			return fmt.Errorf("duplicate %s block %q", kind, name)
		}
		seen[key] = true
		return nil
	}

	for _, t := range job.Translates {
		if err := unique("translate", t.Name); err != nil {
			return err
		}
		if len(t.Inputs) == 0 {
			return fmt.Errorf("translate %q has no inputs", t.Name)
		}
		if t.Provider == "" {
			t.Provider = provider.OpenRouter.Name
		}
		p, err := provider.ByName(t.Provider)
		if err != nil {
			return fmt.Errorf("translate %q: %w", t.Name, err)
		}
		if !p.Can(provider.Translate) {
			return fmt.Errorf("translate %q: provider %q does not support translation", t.Name, p.Name)
		}
		if _, _, err := translate.ResolveLanguage(t.Language); err != nil {
			return fmt.Errorf("translate %q: %w", t.Name, err)
		}
	}

	for _, t := range job.Transcribes {
		if err := unique("transcribe", t.Name); err != nil {
			return err
		}
		if len(t.Inputs) == 0 {
			return fmt.Errorf("transcribe %q has no inputs", t.Name)
		}
		if t.Provider == "" {
			t.Provider = provider.Groq.Name
		}
		p, err := provider.ByName(t.Provider)
		if err != nil {
			return fmt.Errorf("transcribe %q: %w", t.Name, err)
		}
		if !p.Can(provider.Transcribe) {
			return fmt.Errorf("transcribe %q: provider %q does not support transcription", t.Name, p.Name)
		}
		if t.Format == "" {
			t.Format = string(transcribe.FormatSRT)
		}
		if _, err := transcribe.ParseFormat(t.Format); err != nil {
			return fmt.Errorf("transcribe %q: %w", t.Name, err)
		}
	}

	for _, s := range job.Syncs {
		if err := unique("sync", s.Name); err != nil {
			return err
		}
		if s.Subtitle == "" || s.Media == "" {
			return fmt.Errorf("sync %q needs both subtitle and media", s.Name)
		}
		if s.MaxOffset < 0 {
			return fmt.Errorf("sync %q: max_offset cannot be negative", s.Name)
		}
	}

	return nil
}
