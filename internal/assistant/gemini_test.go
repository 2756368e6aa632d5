package assistant

import (
	"testing"

	"github.com/BerylCAtieno/network-navigator/internal/message"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanGenerated(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "too short", in: "Hi there", wantErr: true},
		{name: "no greeting", in: "Dear Sir, we regret to report zero news.", wantErr: true},
		{name: "drops dangling fragment", in: "Hi Dana, great to meet you. Let us talk soon. Than", want: "Hi Dana, great to meet you. Let us talk soon."},
		{name: "keeps long tail", in: "Hi Dana, great to meet you. Looking forward to chatting", want: "Hi Dana, great to meet you. Looking forward to chatting."},
		{name: "keeps sign off", in: "Hi Dana,\n\nGreat to meet you.\n\n" + message.SignOff, want: "Hi Dana,\n\nGreat to meet you.\n\n" + message.SignOff},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := cleanGenerated(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, errWeakOutput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildPrompt(t *testing.T) {
	req := message.Request{Name: "Dana", Role: "Engineer", Company: "Acme", Context: "We met at KubeCon.", Tone: message.ToneCasual}
	prompt := buildPrompt(req)

	assert.Contains(t, prompt, "casual tone")
	assert.Contains(t, prompt, "Role: Engineer")
	assert.Contains(t, prompt, "Company: Acme")
	assert.Contains(t, prompt, "We met at KubeCon.")
	assert.Contains(t, prompt, `"Hi Dana,"`)
	assert.NotContains(t, prompt, "Something personal")
}
