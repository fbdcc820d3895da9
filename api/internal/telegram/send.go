package telegram

import (
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"tsql-bridge/api/internal/util"
)

func (r *Router) send(cid int64, text string) {
	msg := tgbotapi.NewMessage(cid, text)
	if _, err := r.Bot.Send(msg); err != nil {
		log.Printf("tg send: %v", err)
	}
}

func (r *Router) sendChunks(cid int64, text string) {
	for _, part := range util.ChunkText(text, msgLimit) {
		r.send(cid, part)
	}
}
