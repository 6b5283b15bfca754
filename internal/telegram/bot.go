// Package telegram is a webhook-driven bot front-end over the recipe catalog,
// store lookup, and recipe clipper.
package telegram

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"grocery-assistant/internal/clipper"
	"grocery-assistant/internal/config"
	"grocery-assistant/internal/recipe"
	"grocery-assistant/internal/retailer"
)

// Bot wraps the Telegram API and the assistant services.
type Bot struct {
	api     *tgbotapi.BotAPI
	catalog recipe.Catalog
	retail  *retailer.Service
	clip    *clipper.Clipper // nil when no LLM is configured
	cfg     *config.Config
}

// NewBot initializes the Telegram Bot and sets the webhook.
func NewBot(cfg *config.Config, catalog recipe.Catalog, retail *retailer.Service, clip *clipper.Clipper) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram api: %w", err)
	}

	log.Printf("Authorized on account %s", api.Self.UserName)

	wh, _ := tgbotapi.NewWebhook(cfg.TelegramWebhookURL)
	resp, err := api.Request(wh)
	if err != nil {
		return nil, fmt.Errorf("failed to set webhook to %s: %w", cfg.TelegramWebhookURL, err)
	}
	log.Printf("Webhook set response: %s", resp.Description)

	return &Bot{
		api:     api,
		catalog: catalog,
		retail:  retail,
		clip:    clip,
		cfg:     cfg,
	}, nil
}

// RegisterHandlers registers the webhook handler with the default HTTP mux.
func (b *Bot) RegisterHandlers() {
	http.HandleFunc("/webhook", b.handleWebhook)
	http.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
}

func (b *Bot) handleWebhook(w http.ResponseWriter, r *http.Request) {
	update, err := b.api.HandleUpdate(r)
	if err != nil {
		log.Printf("Error parsing update: %v", err)
		return
	}

	if update.Message == nil {
		return
	}

	isAllowed := false
	for _, id := range b.cfg.TelegramAllowedUserIDs {
		if update.Message.From.ID == id {
			isAllowed = true
			break
		}
	}
	if !isAllowed {
		log.Printf("Unauthorized access attempt from UserID: %d (@%s)", update.Message.From.ID, update.Message.From.UserName)
		return
	}

	go b.processMessage(update.Message)
}

func (b *Bot) processMessage(msg *tgbotapi.Message) {
	text := strings.TrimSpace(msg.Text)

	// URL messages go to the clipper; everything else is a command.
	if strings.HasPrefix(text, "http://") || strings.HasPrefix(text, "https://") {
		b.handleClipRequest(msg)
		return
	}

	switch {
	case text == "/recipes":
		b.reply(msg.Chat.ID, b.formatRecipeList())
	case strings.HasPrefix(text, "/stores"):
		b.handleStoresRequest(msg, strings.TrimSpace(strings.TrimPrefix(text, "/stores")))
	default:
		b.reply(msg.Chat.ID, "Send a recipe URL to clip it, /recipes to browse the catalog, or /stores <zipcode> to find stores.")
	}
}

func (b *Bot) handleClipRequest(msg *tgbotapi.Message) {
	if b.clip == nil {
		b.reply(msg.Chat.ID, "Recipe clipping is not configured on this deployment.")
		return
	}

	statusMsg := tgbotapi.NewMessage(msg.Chat.ID, "✂️ *Clipping recipe...*")
	statusMsg.ParseMode = "Markdown"
	sent, err := b.api.Send(statusMsg)
	if err != nil {
		log.Printf("Failed to send initial reply: %v", err)
		return
	}

	draft, err := b.clip.ClipURL(context.Background(), msg.Text)
	var finalText string
	if err != nil {
		log.Printf("Error clipping recipe: %v", err)
		finalText = fmt.Sprintf("❌ Error clipping recipe: %v", err)
	} else {
		finalText = b.formatDraft(draft)
	}

	edit := tgbotapi.NewEditMessageText(msg.Chat.ID, sent.MessageID, finalText)
	edit.ParseMode = "Markdown"
	b.api.Send(edit)
}

func (b *Bot) handleStoresRequest(msg *tgbotapi.Message, zipcode string) {
	if zipcode == "" {
		b.reply(msg.Chat.ID, "Usage: /stores <zipcode>")
		return
	}
	stores := b.retail.StoresByZip(zipcode)
	if len(stores) == 0 {
		b.reply(msg.Chat.ID, fmt.Sprintf("No stores found in %s.", zipcode))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("*Stores in %s:*\n", zipcode))
	for _, store := range stores {
		sb.WriteString(fmt.Sprintf("• %s - %s\n", store.Name, store.Address))
	}
	b.reply(msg.Chat.ID, sb.String())
}

func (b *Bot) formatRecipeList() string {
	var sb strings.Builder
	sb.WriteString("*Recipe catalog:*\n")
	for _, summary := range b.catalog.List() {
		sb.WriteString(fmt.Sprintf("• *%s* (%d servings, %d min) - %s\n",
			summary.Title, summary.Servings,
			summary.PrepTimeMinutes+summary.CookTimeMinutes,
			summary.Description))
	}
	return sb.String()
}

func (b *Bot) formatDraft(draft *clipper.DraftRecipe) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("✅ *%s* (%d servings)\n\n*Ingredients:*\n", draft.Title, draft.Servings))
	for _, line := range draft.Ingredients {
		sb.WriteString(fmt.Sprintf("• %g %s %s\n", line.Quantity, line.Unit, line.Ingredient))
	}
	sb.WriteString("\nReview the draft before adding it anywhere. Clipped recipes are not saved automatically.")
	return sb.String()
}

func (b *Bot) reply(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = "Markdown"
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("Failed to send message: %v", err)
	}
}
