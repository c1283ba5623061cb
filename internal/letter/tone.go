// Package letter turns job descriptions, personal history, research, and skill
// analysis into cover letter text through a chain of LLM calls.
package letter

import (
	"strings"

	"github.com/jonathan/coverletter-generator/internal/prompts"
)

// Built-in tones. Any other non-empty value is treated as a custom tone
// description and handed to the model verbatim.
const (
	ToneEnthusiastic = "enthusiastic"
	ToneConfident    = "confident"
	ToneConcise      = "concise"

	DefaultTone = ToneEnthusiastic
)

// BuiltinTones lists the tones with dedicated prompt wording
func BuiltinTones() []string {
	return []string{ToneEnthusiastic, ToneConfident, ToneConcise}
}

// SystemPrompt builds the system instruction for the requested tone
func SystemPrompt(tone string) (string, error) {
	base, err := prompts.Get("letter.json", "base-system")
	if err != nil {
		return "", err
	}

	tone = strings.ToLower(strings.TrimSpace(tone))
	if tone == "" {
		tone = DefaultTone
	}

	switch tone {
	case ToneEnthusiastic, ToneConfident, ToneConcise:
		instruction, err := prompts.Get("letter.json", "tone-"+tone)
		if err != nil {
			return "", err
		}
		return base + "\n" + instruction, nil
	default:
		template, err := prompts.Get("letter.json", "tone-custom")
		if err != nil {
			return "", err
		}
		return base + "\n" + prompts.Format(template, map[string]string{"Tone": tone}), nil
	}
}
