package main

import (
	"context"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/diamondburned/arikawa/v3/api"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"

	"github.com/AgriGophers/dr-agro/advisor"
)

// Discord caps attachments well above this, but the vision gateway
// does not need more than a few megabytes of pixels.
const maxPhotoSize = 8 << 20

func (b *botState) handlePest(e *gateway.InteractionCreateEvent, d *discord.CommandInteraction) {
	resp := api.InteractionResponse{Type: api.DeferredMessageInteractionWithSource}
	if err := b.state.RespondInteraction(e.ID, e.Token, resp); err != nil {
		log.Printf("could not send interaction callback, %v", err)
		return
	}

	id, _ := option(d, "photo").SnowflakeValue()
	att, ok := d.Resolved.Attachments[discord.AttachmentID(id)]
	if !ok {
		b.followupFail(e, failEmbed("Error", "No photo attached."))
		return
	}

	note := option(d, "note").String()

	log.Printf("%s used pest(%q, %s)", e.User.Tag(), att.Filename, att.ContentType)

	if att.Size > maxPhotoSize {
		b.followupFail(e, failEmbed("Error", "Photo is too large; please keep it under 8 MB."))
		return
	}

	image, err := downloadAttachment(att.URL)
	if err != nil {
		log.Printf("could not download attachment %s: %v", att.URL, err)
		b.followupFail(e, failEmbed("Error", "Could not download the photo."))
		return
	}

	photo := advisor.PestPhoto{
		Image: image,
		MIME:  att.ContentType,
		Note:  note,
	}
	if err := photo.Validate(); err != nil {
		b.followupFail(e, failEmbed("Error", err.Error()))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	diagnosis, err := b.advisor.Pest(ctx, photo)
	if err != nil {
		log.Printf("Pest diagnosis for %s failed: %v", e.User.Tag(), err)
		b.followupFail(e, failEmbed("Error", adviceFailed))
		return
	}

	embed, _ := adviceEmbed("Pest diagnosis", diagnosis, true)
	embed.Thumbnail = &discord.EmbedThumbnail{URL: att.URL}

	if _, err := b.state.EditInteractionResponse(e.AppID, e.Token, api.EditInteractionResponseData{
		Embeds: &[]discord.Embed{embed},
	}); err != nil {
		log.Printf("could not edit interaction response, %v", err)
	}
}

func downloadAttachment(url string) ([]byte, error) {
	res, err := http.DefaultClient.Get(url)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	return io.ReadAll(io.LimitReader(res.Body, maxPhotoSize))
}
