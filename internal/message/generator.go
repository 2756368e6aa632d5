package message

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
)

const (
	CandidateCount = 5
	WordCap        = 80
	SignOff        = "Best regards,\n[Your Name]"
)

var ErrInvalidInput = errors.New("invalid input")

type Request struct {
	Name         string `json:"name"`
	Role         string `json:"role,omitempty"`
	Company      string `json:"company,omitempty"`
	Context      string `json:"context,omitempty"`
	PersonalInfo string `json:"personalInfo,omitempty"`
	Tone         Tone   `json:"tone,omitempty"`
}

// Normalized resolves the tone and blanks fields holding only whitespace.
// Other values are kept as given; name and context appear verbatim.
func (r Request) Normalized() Request {
	return Request{
		Name:         blank(r.Name),
		Role:         blank(r.Role),
		Company:      blank(r.Company),
		Context:      blank(r.Context),
		PersonalInfo: blank(r.PersonalInfo),
		Tone:         ParseTone(string(r.Tone)),
	}
}

func blank(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	return s
}

func (r Request) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	return nil
}

// Chooser picks one phrase from a non-empty pool.
type Chooser interface {
	Choose(phrases []string) string
}

type randomChooser struct{}

func NewRandomChooser() Chooser {
	return randomChooser{}
}

func (randomChooser) Choose(phrases []string) string {
	return phrases[rand.IntN(len(phrases))]
}

type Candidate struct {
	Text  string
	Words int
}

type Generator struct {
	bank    PhraseBank
	chooser Chooser
}

func NewGenerator(bank PhraseBank, chooser Chooser) (*Generator, error) {
	if err := bank.Validate(); err != nil {
		return nil, err
	}
	if chooser == nil {
		chooser = NewRandomChooser()
	}
	return &Generator{bank: bank, chooser: chooser}, nil
}

// Generate composes CandidateCount messages and keeps the shortest one within
// WordCap. When none fits, the shortest overall is returned untruncated.
func (g *Generator) Generate(req Request) string {
	req = req.Normalized()

	candidates := make([]Candidate, 0, CandidateCount)
	for i := 0; i < CandidateCount; i++ {
		text := g.compose(req)
		candidates = append(candidates, Candidate{Text: text, Words: CountWords(text)})
	}

	return selectCandidate(candidates).Text
}

// Variations returns count independently generated messages.
func (g *Generator) Variations(req Request, count int) []string {
	if count <= 0 {
		count = 3
	}
	out := make([]string, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, g.Generate(req))
	}
	return out
}

// SafeGenerate is Generate with a panic guard. A malformed bank yields the
// fixed personalized template instead of crashing the caller.
func (g *Generator) SafeGenerate(req Request) (msg string, recovered bool) {
	defer func() {
		if r := recover(); r != nil {
			msg = Personalized(req)
			recovered = true
		}
	}()
	return g.Generate(req), false
}

func selectCandidate(candidates []Candidate) Candidate {
	best := -1
	for i, c := range candidates {
		if c.Words > WordCap {
			continue
		}
		if best < 0 || c.Words < candidates[best].Words {
			best = i
		}
	}
	if best >= 0 {
		return candidates[best]
	}

	best = 0
	for i, c := range candidates {
		if c.Words < candidates[best].Words {
			best = i
		}
	}
	return candidates[best]
}

func (g *Generator) compose(req Request) string {
	pools := g.bank.pools(req.Tone)

	var b strings.Builder
	b.WriteString("Hi " + req.Name + ",\n\n")

	b.WriteString(g.chooser.Choose(pools.Opening) + " ")

	switch {
	case req.Context != "":
		b.WriteString(req.Context + " ")
	case req.Company != "" && req.Role != "":
		b.WriteString(fmt.Sprintf("I noticed your work as %s at %s. ", req.Role, req.Company))
	case req.Company != "":
		b.WriteString(fmt.Sprintf("I've been following %s's work. ", req.Company))
	case req.Role != "":
		b.WriteString(fmt.Sprintf("I'm impressed by your %s background. ", req.Role))
	default:
		b.WriteString("I'm interested in your field. ")
	}

	if req.PersonalInfo != "" {
		info := strings.ToLower(req.PersonalInfo)
		switch {
		case strings.Contains(info, "post") || strings.Contains(info, "article"):
			b.WriteString("Your recent content was insightful. ")
		case strings.Contains(info, "achievement") || strings.Contains(info, "award"):
			b.WriteString("Congratulations on your achievements! ")
		default:
			b.WriteString("Your background is impressive. ")
		}
	}

	if req.Role != "" {
		role := strings.ToLower(req.Role)
		switch {
		case strings.Contains(role, "manager") || strings.Contains(role, "director"):
			b.WriteString("I'd love to learn from your leadership experience.\n\n")
		case strings.Contains(role, "engineer") || strings.Contains(role, "developer"):
			b.WriteString("I'd appreciate your technical insights.\n\n")
		default:
			b.WriteString("I'd love to learn from your experience.\n\n")
		}
	} else {
		b.WriteString("I'd appreciate your insights.\n\n")
	}

	b.WriteString(g.chooser.Choose(pools.Ask) + " ")
	switch req.Tone {
	case ToneFriendly:
		b.WriteString("I'd love to connect and learn from you!\n\n")
	case ToneCasual:
		b.WriteString("I'd love to connect!\n\n")
	default:
		b.WriteString("I'm exploring opportunities and value your perspective.\n\n")
	}

	b.WriteString(g.chooser.Choose(pools.Closing) + "\n\n")
	b.WriteString(SignOff)

	return b.String()
}

func CountWords(text string) int {
	return len(strings.Fields(text))
}
