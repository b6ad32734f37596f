package repository

import (
	"context"

	"redditTelegramBot/internal/domain/entity"
)

type MessageRepository interface {
	Send(ctx context.Context, msg *entity.Message) error
}
