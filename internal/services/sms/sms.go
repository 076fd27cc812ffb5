// Package sms delivers verification codes through the iletimerkezi
// HTTP gateway. The signup service depends only on the Dispatcher
// interface; any non-nil error counts as dispatch failure.
package sms

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"kimlik/internal/config"
)

// Dispatcher sends a verification code to a phone number.
type Dispatcher interface {
	Send(ctx context.Context, phoneNumber, code string) error
}

const gatewayURL = "https://api.iletimerkezi.com/v1/send-sms/get/"

type gateway struct {
	cfg    config.SMSConfig
	client *http.Client
}

// NewGateway creates the production dispatcher.
func NewGateway(cfg config.SMSConfig) Dispatcher {
	return &gateway{
		cfg:    cfg,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (g *gateway) Send(ctx context.Context, phoneNumber, code string) error {
	params := url.Values{}
	params.Set("key", g.cfg.APIKey)
	params.Set("hash", g.cfg.Secret)
	params.Set("text", fmt.Sprintf("Dogrulama kodunuz: %s", code))
	params.Set("receipents", localizePhone(phoneNumber))
	params.Set("sender", g.cfg.Sender)
	params.Set("iys", "1")
	params.Set("iysList", "BIREYSEL")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, gatewayURL+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("sms gateway returned status %d", resp.StatusCode)
	}
	return nil
}

// localizePhone converts an E.164 Turkish number to the local form the
// gateway expects: no +90/90 country prefix, no leading zero.
func localizePhone(phone string) string {
	p := strings.TrimPrefix(phone, "+90")
	p = strings.TrimPrefix(p, "90")
	p = strings.TrimPrefix(p, "0")
	return p
}
