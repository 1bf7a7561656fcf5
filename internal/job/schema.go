// Package job loads declarative batch job files written in HCL. A job file
// describes translate, transcribe, and sync operations that the app
// compiles into executor tasks.
package job

// TranslateBlock is a `translate "name" { ... }` block.
type TranslateBlock struct {
	Name      string   `hcl:"name,label"`
	Inputs    []string `hcl:"inputs"`
	Language  string   `hcl:"language"`
	Provider  string   `hcl:"provider,optional"`
	Model     string   `hcl:"model,optional"`
	OutputDir string   `hcl:"output_dir,optional"`
}

// TranscribeBlock is a `transcribe "name" { ... }` block.
type TranscribeBlock struct {
	Name     string   `hcl:"name,label"`
	Inputs   []string `hcl:"inputs"`
	Provider string   `hcl:"provider,optional"`
	Format   string   `hcl:"format,optional"`
}

// SyncBlock is a `sync "name" { ... }` block.
type SyncBlock struct {
	Name      string  `hcl:"name,label"`
	Subtitle  string  `hcl:"subtitle"`
	Media     string  `hcl:"media"`
	Output    string  `hcl:"output,optional"`
	MaxOffset float64 `hcl:"max_offset,optional"`
	DTW       bool    `hcl:"dtw,optional"`
}

// File is the top-level structure of one job file.
type File struct {
	Translates  []*TranslateBlock  `hcl:"translate,block"`
	Transcribes []*TranscribeBlock `hcl:"transcribe,block"`
	Syncs       []*SyncBlock       `hcl:"sync,block"`
}

// Job is the merged, validated content of every loaded job file.
type Job struct {
	Translates  []*TranslateBlock
	Transcribes []*TranscribeBlock
	Syncs       []*SyncBlock
}

// Empty reports whether the job contains no operations at all.
func (j *Job) Empty() bool {
	return len(j.Translates) == 0 && len(j.Transcribes) == 0 && len(j.Syncs) == 0
}
