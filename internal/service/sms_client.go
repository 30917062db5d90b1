package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"

	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/zap"
)

const smscSendURL = "https://smsc.ru/sys/send.php"

// SMSCClient отправляет SMS через шлюз SMSC.ru. Временные сбои шлюза
// переживаются повторными попытками HTTP-клиента.
type SMSCClient struct {
	login    string
	password string
	apiKey   string
	client   *retryablehttp.Client
}

// NewSMSCClient создает новый SMSCClient
func NewSMSCClient(login, password, apiKey string, logger *zap.Logger) *SMSCClient {
	client := retryablehttp.NewClient()
	client.RetryMax = 3
	client.Logger = zap.NewStdLog(logger)
	return &SMSCClient{
		login:    login,
		password: password,
		apiKey:   apiKey,
		client:   client,
	}
}

type smscResponse struct {
	ID        int    `json:"id"`
	Count     int    `json:"cnt"`
	Error     string `json:"error"`
	ErrorCode int    `json:"error_code"`
}

// SendVerificationCode отправляет код подтверждения на номер телефона
func (c *SMSCClient) SendVerificationCode(ctx context.Context, phoneNumber, code string) error {
	params := url.Values{}
	params.Set("login", c.login)
	if c.apiKey != "" {
		params.Set("apikey", c.apiKey)
	} else {
		params.Set("psw", c.password)
	}
	params.Set("phones", phoneNumber)
	params.Set("mes", fmt.Sprintf("Ваш код подтверждения: %s", code))
	params.Set("fmt", "3")
	params.Set("charset", "utf-8")

	req, err := retryablehttp.NewRequestWithContext(ctx, "GET", smscSendURL+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("sms client: failed to build request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("sms client: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("sms client: failed to read response: %w", err)
	}

	var result smscResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return fmt.Errorf("sms client: failed to parse response: %w", err)
	}
	if result.Error != "" {
		return fmt.Errorf("sms client: gateway error %d: %s", result.ErrorCode, result.Error)
	}

	return nil
}

// NoopSMSSender пишет код в лог вместо отправки. Используется в режиме
// разработки и в тестовых окружениях без доступа к шлюзу.
type NoopSMSSender struct {
	logger *zap.Logger
}

// NewNoopSMSSender создает новый NoopSMSSender
func NewNoopSMSSender(logger *zap.Logger) *NoopSMSSender {
	return &NoopSMSSender{logger: logger}
}

// SendVerificationCode логирует код вместо отправки SMS
func (s *NoopSMSSender) SendVerificationCode(ctx context.Context, phoneNumber, code string) error {
	s.logger.Info("SMS sending skipped",
		zap.String("phone", phoneNumber),
		zap.String("code", code),
	)
	return nil
}
