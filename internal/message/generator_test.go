package message

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedChooser returns phrases[picks[n]] on its n-th call, cycling.
type scriptedChooser struct {
	picks []int
	n     int
}

func (s *scriptedChooser) Choose(phrases []string) string {
	idx := 0
	if len(s.picks) > 0 {
		idx = s.picks[s.n%len(s.picks)]
	}
	s.n++
	return phrases[idx]
}

type panicChooser struct{}

func (panicChooser) Choose([]string) string { panic("pool exploded") }

func newTestGenerator(t *testing.T, bank PhraseBank, chooser Chooser) *Generator {
	t.Helper()
	g, err := NewGenerator(bank, chooser)
	require.NoError(t, err)
	return g
}

func TestGenerate_Greeting(t *testing.T) {
	g := newTestGenerator(t, DefaultPhraseBank(), nil)

	for _, tone := range []Tone{ToneProfessional, ToneFriendly, ToneCasual, "pirate"} {
		msg := g.Generate(Request{Name: "Ada", Tone: tone})
		assert.NotEmpty(t, msg)
		assert.True(t, strings.HasPrefix(msg, "Hi Ada,\n\n"), "tone %s: %q", tone, msg)
		assert.True(t, strings.HasSuffix(msg, SignOff))
	}
}

func TestGenerate_UnknownToneMatchesProfessional(t *testing.T) {
	bank := DefaultPhraseBank()
	req := Request{Name: "Lee", Role: "Designer"}

	for _, tone := range []Tone{"", "formal", "CASUAL!"} {
		req.Tone = tone
		got := newTestGenerator(t, bank, &scriptedChooser{picks: []int{1, 2, 3}}).Generate(req)

		req.Tone = ToneProfessional
		want := newTestGenerator(t, bank, &scriptedChooser{picks: []int{1, 2, 3}}).Generate(req)

		assert.Equal(t, want, got, "tone %q", tone)
	}
}

func TestGenerate_ContextVerbatim(t *testing.T) {
	g := newTestGenerator(t, DefaultPhraseBank(), nil)
	context := "We met at the GopherCon hallway track."

	for i := 0; i < 20; i++ {
		msg := g.Generate(Request{Name: "Sam", Company: "Acme", Role: "CTO", Context: context})
		assert.Contains(t, msg, context)
		assert.NotContains(t, msg, "I noticed your work as")
	}
}

func TestGenerate_PaddedFieldsKeptAsGiven(t *testing.T) {
	g := newTestGenerator(t, DefaultPhraseBank(), nil)
	context := "\tMet at GopherCon.  "

	msg := g.Generate(Request{Name: " Dana", Context: context})
	assert.True(t, strings.HasPrefix(msg, "Hi  Dana,\n\n"), msg)
	assert.Contains(t, msg, context+" ")

	msg = g.Generate(Request{Name: "Dana", Company: "Acme", Context: "   "})
	assert.Contains(t, msg, "I've been following Acme's work. ")
}

func TestGenerate_PersonalInfoBranches(t *testing.T) {
	g := newTestGenerator(t, DefaultPhraseBank(), nil)

	tests := []struct {
		info string
		want string
	}{
		{"Great article!", "Your recent content was insightful."},
		{"Loved your POST on gRPC", "Your recent content was insightful."},
		{"Won an Award last year", "Congratulations on your achievements!"},
		{"big achievement unlocked", "Congratulations on your achievements!"},
		{"Ran a marathon", "Your background is impressive."},
	}

	for _, tt := range tests {
		t.Run(tt.info, func(t *testing.T) {
			msg := g.Generate(Request{Name: "Kim", PersonalInfo: tt.info})
			assert.Contains(t, msg, tt.want)
		})
	}

	msg := g.Generate(Request{Name: "Kim"})
	for _, s := range []string{"Your recent content", "Congratulations", "Your background is impressive"} {
		assert.NotContains(t, msg, s)
	}
}

func TestGenerate_ValueBranches(t *testing.T) {
	g := newTestGenerator(t, DefaultPhraseBank(), nil)

	tests := []struct {
		role string
		want string
	}{
		{"Engineering Manager", "I'd love to learn from your leadership experience."},
		{"Director of Sales", "I'd love to learn from your leadership experience."},
		{"Senior Developer", "I'd appreciate your technical insights."},
		{"Data Engineer", "I'd appreciate your technical insights."},
		{"Designer", "I'd love to learn from your experience."},
		{"", "I'd appreciate your insights."},
	}

	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			msg := g.Generate(Request{Name: "Pat", Role: tt.role})
			assert.Contains(t, msg, tt.want+"\n\n")
		})
	}
}

func TestGenerate_ConnectionPriority(t *testing.T) {
	g := newTestGenerator(t, DefaultPhraseBank(), nil)

	assert.Contains(t, g.Generate(Request{Name: "A", Company: "Acme"}), "I've been following Acme's work. ")
	assert.Contains(t, g.Generate(Request{Name: "A", Role: "Chef"}), "I'm impressed by your Chef background. ")
	assert.Contains(t, g.Generate(Request{Name: "A", Role: "Chef", Company: "Acme"}), "I noticed your work as Chef at Acme. ")
}

func TestGenerate_NoOptionalFields(t *testing.T) {
	g := newTestGenerator(t, DefaultPhraseBank(), &scriptedChooser{})
	msg := g.Generate(Request{Name: "Jo"})

	want := "Hi Jo,\n\n" +
		"I hope you're well. I'm interested in your field. I'd appreciate your insights.\n\n" +
		"Would you be open to a brief conversation? I'm exploring opportunities and value your perspective.\n\n" +
		"Thank you for your time.\n\n" +
		"Best regards,\n[Your Name]"
	assert.Equal(t, want, msg)
	assert.NotContains(t, msg, "undefined")
}

func TestGenerate_FriendlyEngineerAtAcme(t *testing.T) {
	g := newTestGenerator(t, DefaultPhraseBank(), nil)
	msg := g.Generate(Request{Name: "Dana", Role: "Engineer", Company: "Acme", Tone: ToneFriendly})

	assert.Contains(t, msg, "Dana")
	assert.Contains(t, msg, "I noticed your work as Engineer at Acme.")
	assert.Contains(t, msg, "I'd appreciate your technical insights.")
	assert.Contains(t, msg, "I'd love to connect and learn from you!\n\n")
	assert.True(t, strings.HasSuffix(msg, "Best regards,\n[Your Name]"))
}

// wordBank returns a bank whose professional opening pool yields candidates
// with exactly the requested word counts when picked in order.
func wordBank(t *testing.T, counts []int) PhraseBank {
	t.Helper()

	sizing := DefaultPhraseBank()
	p := sizing[ToneProfessional]
	p.Opening = []string{"x"}
	sizing[ToneProfessional] = p
	base := CountWords(newTestGenerator(t, sizing, &scriptedChooser{}).compose(Request{Name: "Dana", Tone: ToneProfessional})) - 1

	bank := DefaultPhraseBank()
	p = bank[ToneProfessional]
	p.Opening = nil
	for i, c := range counts {
		require.Greater(t, c, base)
		p.Opening = append(p.Opening, strings.TrimSpace(strings.Repeat(fmt.Sprintf("w%d ", i), c-base)))
	}
	bank[ToneProfessional] = p
	return bank
}

// picksFor selects opening i for candidate i; ask and closing use index 0.
func picksFor(n int) []int {
	var picks []int
	for i := 0; i < n; i++ {
		picks = append(picks, i, 0, 0)
	}
	return picks
}

func TestGenerate_PicksShortestUnderCap(t *testing.T) {
	counts := []int{90, 40, 85, 95, 60}
	bank := wordBank(t, counts)
	g := newTestGenerator(t, bank, &scriptedChooser{picks: picksFor(len(counts))})

	msg := g.Generate(Request{Name: "Dana"})

	assert.Equal(t, 40, CountWords(msg))
	assert.Contains(t, msg, "w1 w1")
}

func TestGenerate_AllOverCapReturnsFirstShortest(t *testing.T) {
	counts := []int{90, 85, 120, 85, 99}
	bank := wordBank(t, counts)
	g := newTestGenerator(t, bank, &scriptedChooser{picks: picksFor(len(counts))})

	msg := g.Generate(Request{Name: "Dana"})

	assert.Equal(t, 85, CountWords(msg))
	assert.Contains(t, msg, "w1 w1")
	assert.NotContains(t, msg, "w3")
}

func TestSelectCandidate(t *testing.T) {
	tests := []struct {
		name  string
		words []int
		want  int
	}{
		{"unique qualifier", []int{90, 40, 85, 95, 60}, 1},
		{"tie keeps first", []int{50, 30, 30, 70, 81}, 1},
		{"qualifier beats shorter overflow", []int{81, 80, 200, 90, 100}, 1},
		{"none qualify", []int{90, 85, 120, 85, 99}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cands []Candidate
			for i, w := range tt.words {
				cands = append(cands, Candidate{Text: fmt.Sprint(i), Words: w})
			}
			assert.Equal(t, fmt.Sprint(tt.want), selectCandidate(cands).Text)
		})
	}
}

func TestVariations(t *testing.T) {
	g := newTestGenerator(t, DefaultPhraseBank(), nil)

	assert.Len(t, g.Variations(Request{Name: "Bo"}, 0), 3)
	vs := g.Variations(Request{Name: "Bo"}, 4)
	require.Len(t, vs, 4)
	for _, v := range vs {
		assert.Contains(t, v, "Hi Bo,")
	}
}

func TestSafeGenerate_RecoversToPersonalized(t *testing.T) {
	g := newTestGenerator(t, DefaultPhraseBank(), panicChooser{})

	msg, recovered := g.SafeGenerate(Request{Name: "Rae", Company: "Initech"})

	assert.True(t, recovered)
	assert.Equal(t, Personalized(Request{Name: "Rae", Company: "Initech"}), msg)
	assert.Contains(t, msg, "I've been following Initech's work")
}

func TestRequestValidate(t *testing.T) {
	assert.ErrorIs(t, Request{}.Validate(), ErrInvalidInput)
	assert.ErrorIs(t, Request{Name: "   "}.Validate(), ErrInvalidInput)
	assert.NoError(t, Request{Name: "Ida"}.Validate())
}

func TestCountWords(t *testing.T) {
	assert.Equal(t, 0, CountWords("   "))
	assert.Equal(t, 3, CountWords(" one\ttwo\n\nthree "))
}
