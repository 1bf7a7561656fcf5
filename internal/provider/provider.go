// Package provider describes the supported API providers: which models they
// offer, where their keys live, and which cooldowns their backends expect.
package provider

import (
	"fmt"
	"time"
)

// Capability describes what a provider can be used for.
type Capability int

const (
	// Translate means the provider exposes an OpenAI-compatible chat
	// completions endpoint usable for subtitle translation.
	Translate Capability = 1 << iota
	// Transcribe means the provider can turn audio into text.
	Transcribe
)

// Provider is the static description of one API provider.
type Provider struct {
	Name               string
	Capabilities       Capability
	Models             []string
	DefaultModel       string
	TranscriptionModel string
	KeyFileName        string
	ChatCompletionsURL string
	TranscriptionsURL  string

	// Cooldown applied to a key after a successful transcription request,
	// and after a failed one. Zero disables cooldown.
	UseCooldown   time.Duration
	ErrorCooldown time.Duration
}

// Can reports whether the provider supports the given capability.
func (p *Provider) Can(c Capability) bool {
	return p.Capabilities&c != 0
}

// The provider catalog. Model lists and endpoints follow the upstream
// services as of the current release.
var (
	OpenRouter = &Provider{
		Name:         "openrouter",
		Capabilities: Translate,
		Models: []string{
			"google/gemini-2.0-flash-thinking-exp:free",
			"anthropic/claude-3-opus",
			"anthropic/claude-3-sonnet",
			"google/gemini-pro",
			"qwen/qwen2.5-vl-72b-instruct:free",
			"deepseek/deepseek-r1-distill-llama-70b:free",
		},
		DefaultModel:       "google/gemini-2.0-flash-thinking-exp:free",
		KeyFileName:        "api_keys.json",
		ChatCompletionsURL: "https://openrouter.ai/api/v1/chat/completions",
	}

	Groq = &Provider{
		Name:         "groq",
		Capabilities: Translate | Transcribe,
		Models: []string{
			"llama-3.3-70b-versatile",
			"llama-guard-3-8b",
			"llama-3.1-8b-instant",
		},
		DefaultModel:       "llama-3.3-70b-versatile",
		TranscriptionModel: "whisper-large-v3-turbo",
		KeyFileName:        "groq_api_keys.json",
		ChatCompletionsURL: "https://api.groq.com/openai/v1/chat/completions",
		TranscriptionsURL:  "https://api.groq.com/openai/v1/audio/transcriptions",
		UseCooldown:        1 * time.Second,
		ErrorCooldown:      5 * time.Second,
	}

	AssemblyAI = &Provider{
		Name:         "assemblyai",
		Capabilities: Transcribe,
		Models:       []string{"default"},
		DefaultModel: "default",
		KeyFileName:  "assembly_api_keys.json",
	}
)

var catalog = []*Provider{OpenRouter, Groq, AssemblyAI}

// ByName looks up a provider by its CLI name.
func ByName(name string) (*Provider, error) {
	for _, p := range catalog {
		if p.Name == name {
			return p, nil
		}
	}
	return nil, fmt.Errorf("unknown provider %q (expected one of %v)", name, Names())
}

// Names lists every provider's CLI name in catalog order.
func Names() []string {
	names := make([]string, len(catalog))
	for i, p := range catalog {
		names[i] = p.Name
	}
	return names
}

// All returns the full catalog.
func All() []*Provider {
	return catalog
}
