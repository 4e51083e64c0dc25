package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/barbershop-bg/booking-api/internal/config"
)

const twilioAPIBase = "https://api.twilio.com/2010-04-01"

// TwilioSender posts to Twilio's Messages endpoint.
type TwilioSender struct {
	accountSID string
	authToken  string
	from       string

	baseURL string
	client  *http.Client
}

func NewTwilioSender(cfg *config.Config) *TwilioSender {
	return &TwilioSender{
		accountSID: cfg.TwilioAccountSID,
		authToken:  cfg.TwilioAuthToken,
		from:       cfg.TwilioFromNumber,
		baseURL:    twilioAPIBase,
		client:     &http.Client{Timeout: 10 * time.Second},
	}
}

type twilioResponse struct {
	SID     string `json:"sid"`
	Message string `json:"message"`
}

func (s *TwilioSender) Send(ctx context.Context, to string, body string) Result {
	form := url.Values{}
	form.Set("To", to)
	form.Set("From", s.from)
	form.Set("Body", body)

	endpoint := fmt.Sprintf("%s/Accounts/%s/Messages.json", s.baseURL, s.accountSID)

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		endpoint,
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		return Result{Err: err.Error()}
	}

	req.SetBasicAuth(s.accountSID, s.authToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(req)
	if err != nil {
		return Result{Err: err.Error()}
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))

	var tr twilioResponse
	_ = json.Unmarshal(raw, &tr)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := tr.Message
		if msg == "" {
			msg = fmt.Sprintf("twilio returned status %d", resp.StatusCode)
		}
		return Result{Err: msg}
	}

	return Result{Success: true, SID: tr.SID}
}

// NewSenderFromConfig picks Twilio when credentials are present, the
// console sender otherwise.
func NewSenderFromConfig(cfg *config.Config) Sender {
	if cfg.TwilioAccountSID != "" && cfg.TwilioAuthToken != "" && cfg.TwilioFromNumber != "" {
		return NewTwilioSender(cfg)
	}
	return ConsoleSender{}
}
