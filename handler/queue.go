package handler

import (
	"context"
	"sync"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// ConversationQueue runs the updates of one chat one after another, in the
// order they were handed over, while different chats run concurrently. The
// bot must call handlers synchronously (bot.WithNotAsyncHandlers) so the
// hand-over order is the arrival order.
type ConversationQueue struct {
	mu    sync.Mutex
	chats map[int64][]func()
	wg    sync.WaitGroup
}

func NewConversationQueue() *ConversationQueue {
	return &ConversationQueue{chats: make(map[int64][]func())}
}

// Middleware queues every update that belongs to a chat. Other updates run
// on their own goroutine.
func (q *ConversationQueue) Middleware(next bot.HandlerFunc) bot.HandlerFunc {
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		chatID, ok := updateChatID(update)
		if !ok {
			q.wg.Add(1)
			go func() {
				defer q.wg.Done()
				next(ctx, b, update)
			}()
			return
		}
		q.enqueue(chatID, func() { next(ctx, b, update) })
	}
}

func (q *ConversationQueue) enqueue(chatID int64, job func()) {
	q.mu.Lock()
	pending, draining := q.chats[chatID]
	q.chats[chatID] = append(pending, job)
	if !draining {
		q.wg.Add(1)
	}
	q.mu.Unlock()

	if !draining {
		go q.drain(chatID)
	}
}

// drain runs queued jobs until the chat has none left, then forgets it.
func (q *ConversationQueue) drain(chatID int64) {
	defer q.wg.Done()
	for {
		q.mu.Lock()
		jobs := q.chats[chatID]
		if len(jobs) == 0 {
			delete(q.chats, chatID)
			q.mu.Unlock()
			return
		}
		job := jobs[0]
		q.chats[chatID] = jobs[1:]
		q.mu.Unlock()

		job()
	}
}

// Wait blocks until every queued update has been handled.
func (q *ConversationQueue) Wait() {
	q.wg.Wait()
}

func updateChatID(update *models.Update) (int64, bool) {
	switch {
	case update.Message != nil:
		return update.Message.Chat.ID, true
	case update.CallbackQuery != nil:
		return callbackChatID(update.CallbackQuery), true
	}
	return 0, false
}
