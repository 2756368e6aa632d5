package message

import (
	"fmt"
	"strings"
)

// Personalized builds the fixed, non-random outreach message used when the
// phrase engine is unavailable.
func Personalized(req Request) string {
	req = req.Normalized()

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Hi %s,\n\n", req.Name))

	switch {
	case req.Context != "":
		b.WriteString(fmt.Sprintf("I hope this message finds you well. %s\n\n", req.Context))
	case req.Company != "":
		b.WriteString(fmt.Sprintf("I hope this message finds you well. I've been following %s's work and am impressed by the innovative approach you're taking.\n\n", req.Company))
	default:
		b.WriteString("I hope this message finds you well. I came across your profile and was impressed by your background.\n\n")
	}

	if req.PersonalInfo != "" {
		info := strings.ToLower(req.PersonalInfo)
		switch {
		case strings.Contains(info, "post") || strings.Contains(info, "article"):
			b.WriteString("I particularly enjoyed your recent post about the industry trends. Your insights on the topic really resonated with me.\n\n")
		case strings.Contains(info, "achievement") || strings.Contains(info, "award"):
			b.WriteString("Congratulations on your recent achievement! It's inspiring to see professionals like yourself making such an impact.\n\n")
		default:
			b.WriteString("Your background in the field is truly impressive, and I'd love to learn more about your experience.\n\n")
		}
	}

	b.WriteString("I'm currently exploring opportunities in the industry and am particularly interested in connecting with professionals who share similar values and vision. ")
	if req.Role != "" {
		b.WriteString(fmt.Sprintf("As someone in a %s role, I believe you'd have valuable insights to share.\n\n", req.Role))
	} else {
		b.WriteString("I believe you'd have valuable insights to share.\n\n")
	}

	b.WriteString("Would you be open to a brief conversation? I'd love to learn more about your experience and share some thoughts about the industry. I'm happy to work around your schedule.\n\n")
	b.WriteString("Thank you for your time, and I look forward to potentially connecting!\n\n")
	b.WriteString(SignOff)

	return b.String()
}
