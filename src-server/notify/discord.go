package notify

import (
	"context"
	"fmt"
	"strings"
	"time"

	"huddle/src-server/assignment"
	"huddle/src-server/model"

	"github.com/bwmarrin/discordgo"
)

var _ assignment.Notifier = (*Discord)(nil)

// discord rejects embed descriptions longer than this
const embedDescriptionLimit = 4096

// Discord posts locked groups to a channel through a webhook.
type Discord struct {
	session   *discordgo.Session
	webhookID string
	token     string
	// latency sink, may be nil
	observe func(time.Duration)
}

func NewDiscord(webhookID, token string, observe func(time.Duration)) (*Discord, error) {
	if webhookID == "" || token == "" {
		return nil, fmt.Errorf("NewDiscord: webhook id and token are required")
	}
	// webhooks authenticate with their own token, the session token stays blank
	session, err := discordgo.New("")
	if err != nil {
		return nil, fmt.Errorf("NewDiscord: %w", err)
	}
	return &Discord{
		session:   session,
		webhookID: webhookID,
		token:     token,
		observe:   observe,
	}, nil
}

func (d *Discord) GroupLocked(ctx context.Context, group model.Group, members []model.Attendee) error {
	startTimer := time.Now()
	if _, err := d.session.WebhookExecute(d.webhookID, d.token, false, &discordgo.WebhookParams{
		Content: fmt.Sprintf("Group **%s** has been locked", group.Name),
		Embeds:  []*discordgo.MessageEmbed{GroupEmbed(group, members)},
	}, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("(*Discord).GroupLocked: %w", err)
	}
	if d.observe != nil {
		d.observe(time.Since(startTimer))
	}
	return nil
}

func GroupEmbed(group model.Group, members []model.Attendee) *discordgo.MessageEmbed {
	var sb strings.Builder
	for _, m := range members {
		line := fmt.Sprintf("- %s (%s)\n", m.Name, m.UserType)
		if sb.Len()+len(line) > embedDescriptionLimit {
			break
		}
		sb.WriteString(line)
	}
	if len(members) == 0 {
		sb.WriteString("No attendees assigned")
	}

	return &discordgo.MessageEmbed{
		Title:       group.Name,
		Description: strings.TrimSuffix(sb.String(), "\n"),
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "Format",
				Value:  string(group.Format),
				Inline: true,
			},
			{
				Name:   "Attendees",
				Value:  fmt.Sprintf("%d", len(members)),
				Inline: true,
			},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("group #%d", group.ID),
		},
	}
}
