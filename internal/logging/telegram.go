package logging

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"shopify-sync/internal/config"
)

// TelegramNotifier pushes warning and error messages to an operator chat.
// A nil notifier is valid and drops everything.
type TelegramNotifier struct {
	creds      config.TelegramBotConfig
	httpClient *http.Client
}

type telegramRequest struct {
	ChatId string `json:"chat_id"`
	Text   string `json:"text"`
}

const (
	iconError   = "❌"
	iconWarning = "⚠️"
)

func NewTelegramNotifier(creds config.TelegramBotConfig, httpClient *http.Client) *TelegramNotifier {
	if creds.ChatId == "" || creds.Token == "" {
		return nil
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &TelegramNotifier{
		creds:      creds,
		httpClient: httpClient,
	}
}

func (n *TelegramNotifier) Send(icon, level, value string) {
	if n == nil {
		return
	}
	_ = n.sendRequest(formatMessage(icon, level, value))
}

func formatMessage(icon, level, value string) string {
	v := strings.TrimSpace(value)
	if v == "" {
		v = "-"
	}
	return fmt.Sprintf("%s %s: %s", icon, level, v)
}

func (n *TelegramNotifier) sendRequest(value string) error {
	url := fmt.Sprintf("https://api.telegram.org/bot%s/sendMessage", n.creds.Token)

	reqBody := telegramRequest{
		ChatId: n.creds.ChatId,
		Text:   value,
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return err
	}

	resp, err := n.httpClient.Post(url, "application/json", bytes.NewReader(bodyBytes))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("telegram send failed: %s", resp.Status)
	}
	return nil
}
