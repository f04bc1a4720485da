package fetcher

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ScrpTrx-Go/GoCryptoTags/internal/config"
	"github.com/ScrpTrx-Go/GoCryptoTags/internal/domain/model"
	pkg "github.com/ScrpTrx-Go/GoCryptoTags/pkg/logger"
	"github.com/zelenin/go-tdlib/client"
)

type TDLibFetcher struct {
	client        *client.Client
	log           pkg.Logger
	cfg           config.TDLibConfig
	totalFetched  atomic.Int64
	totalFiltered atomic.Int64
	totalErrors   atomic.Int64
}

func NewTDLibFetcher(tdlibClient *client.Client, log pkg.Logger, cfg config.TDLibConfig) (*TDLibFetcher, error) {
	me, err := tdlibClient.GetMe()
	if err != nil {
		return nil, fmt.Errorf("GetMe error: %w", err)
	}
	log.Info("Authorized successfully", "user_id", me.Id, "first_name", me.FirstName)
	return &TDLibFetcher{
		client: tdlibClient,
		log:    log,
		cfg:    cfg,
	}, nil
}

func (f *TDLibFetcher) RunFetchPipeline(ctx context.Context, from, to time.Time) <-chan *model.Article {
	out := make(chan *model.Article)
	go func() {
		var wg sync.WaitGroup

		for _, channel := range f.cfg.Channels {
			wg.Add(1)
			go func(channel string) {
				defer wg.Done()
				f.fetchChannel(ctx, channel, from, to, out)
			}(channel)
		}
		wg.Wait()
		close(out)
		f.log.Info("All channels processed",
			"total_fetched", f.totalFetched.Load(),
			"total_filtered", f.totalFiltered.Load(),
			"total_errors", f.totalErrors.Load())
	}()
	return out
}

func (f *TDLibFetcher) fetchChannel(ctx context.Context, channel string, from, to time.Time, out chan<- *model.Article) {
	chatID, err := f.FindChat(channel)
	if err != nil {
		f.log.Error("Failed to find chat", "channel", channel, "err", err)
		f.totalErrors.Add(1)
		return
	}

	resultCh, errCh := f.RunPipeline(ctx, chatID, from, to)
	f.log.Info("Fetch pipeline started", "channel", channel)

	count := 0
	for {
		select {
		case <-ctx.Done():
			f.log.Warn("Context canceled", "channel", channel)
			return
		case article, ok := <-resultCh:
			if !ok {
				f.log.Info("Fetch workers completed", "channel", channel, "count", count)
				return
			}
			article.Channel = channel
			f.totalFetched.Add(1)
			count++
			select {
			case <-ctx.Done():
				return
			case out <- article:
			}
		case err, ok := <-errCh:
			if !ok {
				errCh = nil
				continue
			}
			f.totalErrors.Add(1)
			f.log.Error("Pipeline error", "channel", channel, "err", err)
		}
	}
}

func (f *TDLibFetcher) RunPipeline(ctx context.Context, chatID int64, from, to time.Time) (<-chan *model.Article, <-chan error) {
	rawOut := make(chan *client.Message)
	articleOut := make(chan *model.Article)
	errCh := make(chan error, 1)

	go func() {
		defer close(rawOut)
		defer close(errCh)
		if err := f.GetHistoryByPeriod(ctx, chatID, from, to, rawOut); err != nil {
			errCh <- fmt.Errorf("GetHistory failed: %w", err)
		}
	}()

	workers := f.cfg.FetchWorkers
	if workers <= 0 {
		workers = 1
	}

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(workerID int) {
			defer wg.Done()
			for raw := range rawOut {
				article, ok := ArticleFromMessage(raw)
				if !ok {
					f.totalFiltered.Add(1)
					continue
				}
				link, err := f.getMessageLink(chatID, article.ID)
				if err != nil {
					f.totalErrors.Add(1)
					f.log.Warn("Failed to get message link", "id", article.ID, "err", err)
				}
				article.Link = link
				select {
				case <-ctx.Done():
					f.log.Warn("Context canceled in fetch worker", "worker", workerID)
					return
				case articleOut <- article:
				}
			}
		}(i)
	}

	go func() {
		wg.Wait()
		close(articleOut)
	}()

	return articleOut, errCh
}

func (f *TDLibFetcher) FindChat(channel string) (int64, error) {
	chat, err := f.client.SearchPublicChat(&client.SearchPublicChatRequest{Username: channel})
	if err != nil {
		return 0, fmt.Errorf("SearchPublicChat error: %w", err)
	}
	if chat == nil {
		return 0, fmt.Errorf("chat is nil after SearchPublicChat")
	}
	f.log.Info("Chat found", "channel", channel, "chat_id", chat.Id)
	return chat.Id, nil
}

func (f *TDLibFetcher) GetHistoryByPeriod(ctx context.Context, chatID int64, from, to time.Time, out chan<- *client.Message) error {
	var fromMessageID int64

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		history, err := f.client.GetChatHistory(&client.GetChatHistoryRequest{
			ChatId:        chatID,
			FromMessageId: fromMessageID,
			Offset:        0,
			Limit:         f.cfg.GetHistory.Limit,
			OnlyLocal:     f.cfg.GetHistory.OnlyLocal,
		})
		if err != nil {
			return fmt.Errorf("GetChatHistory chat %d: %w", chatID, err)
		}
		if len(history.Messages) == 0 {
			f.log.Info("Reached end of history", "chat_id", chatID)
			return nil
		}

		for _, msg := range history.Messages {
			t := time.Unix(int64(msg.Date), 0)
			if t.After(to) {
				continue
			}
			if t.Before(from) {
				return nil
			}
			select {
			case <-ctx.Done():
				return nil
			case out <- msg:
			}
		}

		fromMessageID = history.Messages[len(history.Messages)-1].Id
	}
}

func (f *TDLibFetcher) getMessageLink(chatID int64, messageID int64) (string, error) {
	resp, err := f.client.GetMessageLink(&client.GetMessageLinkRequest{ChatId: chatID, MessageId: messageID})
	if err != nil {
		return "", fmt.Errorf("GetMessageLink error: %w", err)
	}
	return resp.Link, nil
}

func ArticleFromMessage(raw *client.Message) (*model.Article, bool) {
	if raw == nil {
		return nil, false
	}

	var formatted *client.FormattedText
	switch content := raw.Content.(type) {
	case *client.MessageText:
		formatted = content.Text
	case *client.MessagePhoto:
		formatted = content.Caption
	case *client.MessageVideo:
		formatted = content.Caption
	case *client.MessageDocument:
		formatted = content.Caption
	default:
		return nil, false
	}
	if formatted == nil {
		return nil, false
	}

	text := strings.TrimSpace(formatted.Text)
	if text == "" {
		return nil, false
	}

	return &model.Article{
		ID:        raw.Id,
		Text:      text,
		Timestamp: time.Unix(int64(raw.Date), 0),
	}, true
}
