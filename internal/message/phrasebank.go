package message

import (
	"fmt"
	"strings"
)

type Tone string

const (
	ToneProfessional Tone = "professional"
	ToneFriendly     Tone = "friendly"
	ToneCasual       Tone = "casual"
)

var Tones = []Tone{ToneProfessional, ToneFriendly, ToneCasual}

// ParseTone normalizes s to a known tone. Anything unrecognized is professional.
func ParseTone(s string) Tone {
	switch t := Tone(strings.ToLower(strings.TrimSpace(s))); t {
	case ToneProfessional, ToneFriendly, ToneCasual:
		return t
	}
	return ToneProfessional
}

type Pools struct {
	Opening    []string
	Connection []string
	Value      []string
	Ask        []string
	Closing    []string
}

type PhraseBank map[Tone]Pools

func (b PhraseBank) pools(t Tone) Pools {
	if p, ok := b[t]; ok {
		return p
	}
	return b[ToneProfessional]
}

// Validate checks that every tone carries all five pools and none is empty.
func (b PhraseBank) Validate() error {
	for _, t := range Tones {
		p, ok := b[t]
		if !ok {
			return fmt.Errorf("phrase bank missing tone %q", t)
		}
		named := map[string][]string{
			"opening":    p.Opening,
			"connection": p.Connection,
			"value":      p.Value,
			"ask":        p.Ask,
			"closing":    p.Closing,
		}
		for name, pool := range named {
			if len(pool) == 0 {
				return fmt.Errorf("phrase bank tone %q has empty %s pool", t, name)
			}
		}
	}
	return nil
}

func DefaultPhraseBank() PhraseBank {
	return PhraseBank{
		ToneProfessional: {
			Opening: []string{
				"I hope you're well.",
				"Hope you're doing well.",
				"I hope this finds you well.",
			},
			Connection: []string{
				"I came across your profile and was impressed by",
				"I've been following your work in",
				"Your expertise in",
				"I noticed your work in",
			},
			Value: []string{
				"I believe your insights would be valuable.",
				"I'd love to learn from your experience.",
				"Your perspective would be helpful.",
				"I'm interested in your thoughts.",
			},
			Ask: []string{
				"Would you be open to a brief conversation?",
				"I'd love to connect and learn from you.",
				"Would you be available for a quick chat?",
				"I'd appreciate the opportunity to connect.",
			},
			Closing: []string{
				"Thank you for your time.",
				"Thank you for considering this.",
				"I appreciate your time.",
				"Thank you for your consideration.",
			},
		},
		ToneFriendly: {
			Opening: []string{
				"Hope you're having a great day!",
				"Hope you're doing well!",
				"Hope you're doing awesome!",
			},
			Connection: []string{
				"I came across your profile and was impressed by",
				"I've been following your work in",
				"Your work in",
				"I noticed your work in",
			},
			Value: []string{
				"I'd love to learn from your experience.",
				"I'm curious about your background.",
				"Your insights would be valuable.",
				"I'd be interested to hear your thoughts.",
			},
			Ask: []string{
				"Would you be up for a quick chat?",
				"I'd love to connect and learn from you!",
				"Would you be open to a brief conversation?",
				"I'd appreciate the chance to connect.",
			},
			Closing: []string{
				"Thanks so much!",
				"Thanks for considering this!",
				"Really appreciate your time!",
				"Thanks for reading this!",
			},
		},
		ToneCasual: {
			Opening: []string{
				"Hey there!",
				"Hi!",
				"Hello!",
			},
			Connection: []string{
				"I saw your profile and was impressed by",
				"I've been checking out your work in",
				"Your work in",
				"I noticed your work in",
			},
			Value: []string{
				"I'd love to chat about",
				"I'm curious about your experience.",
				"Your thoughts would be helpful.",
				"I'd be interested to hear about",
			},
			Ask: []string{
				"Want to grab a quick chat?",
				"Would you be down to connect?",
				"Want to connect sometime?",
				"Would you be up for a brief conversation?",
			},
			Closing: []string{
				"Thanks! Hope to connect soon!",
				"Thanks for reading!",
				"Appreciate it!",
				"Thanks!",
			},
		},
	}
}
