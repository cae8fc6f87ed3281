package analyzer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/EmilyLiang06/DiaryAnalyzer/internal/infra/anthropic"
)

type messageClient interface {
	CreateMessage(ctx context.Context, req anthropic.MessageRequest) (anthropic.MessageResponse, error)
}

// Anthropic реализует доменный Analyzer через Anthropic Messages API.
type Anthropic struct {
	client  messageClient
	model   string
	timeout time.Duration
}

// NewAnthropic создаёт анализатор дневника.
func NewAnthropic(client messageClient, model string, timeout time.Duration) *Anthropic {
	if model == "" {
		model = "claude-3-haiku-20240307"
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Anthropic{client: client, model: model, timeout: timeout}
}

// Analyze отправляет текст дневника модели и возвращает сырой текст ответа.
// Модель просят ответить ровно четырьмя строками с фиксированными префиксами.
func (a *Anthropic) Analyze(ctx context.Context, text string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	prompt := fmt.Sprintf("你是一个日记分析助手。请根据以下日记内容，提取关键词、判断整体情绪、给出简短反馈，并推荐一个积极的任务。\n"+
		"日记内容：%s\n"+
		"请用如下格式输出：\n"+
		"关键词: ...\n情绪: ...\n反馈: ...\n推荐任务: ...", text)

	req := anthropic.MessageRequest{
		Model:       a.model,
		MaxTokens:   300,
		Temperature: 0.7,
		Messages: []anthropic.Message{
			{Role: anthropic.RoleUser, Content: prompt},
		},
	}

	resp, err := a.client.CreateMessage(ctx, req)
	if err != nil {
		return "", fmt.Errorf("anthropic message: %w", err)
	}
	if len(resp.Content) == 0 {
		return "", fmt.Errorf("anthropic message: пустой ответ")
	}
	return strings.TrimSpace(resp.Content[0].Text), nil
}
