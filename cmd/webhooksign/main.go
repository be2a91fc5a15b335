// Command webhooksign signs a database change payload the way hosted database webhooks do,
// and prints a curl command that replays it against a local server.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
	svix "github.com/standard-webhooks/standard-webhooks/libraries/go"

	"github.com/rllL1/portfolio/internal/domain"
)

func main() {
	if len(os.Args) < 3 {
		fmt.Println("Usage: go run cmd/webhooksign/main.go <webhook_secret> <payload.json|-> [base_url]")
		os.Exit(1)
	}

	baseURL := "http://localhost:8080"
	if len(os.Args) > 3 {
		baseURL = os.Args[3]
	}

	var (
		payload []byte
		err     error
	)
	if os.Args[2] == "-" {
		payload, err = io.ReadAll(os.Stdin)
	} else {
		payload, err = os.ReadFile(os.Args[2])
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read payload: %v\n", err)
		os.Exit(1)
	}

	out, err := signedCurl(os.Args[1], payload, baseURL, "msg_"+uuid.New().String(), time.Now())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(out)
}

// signedCurl validates the payload as a change event, signs it and renders the replay command
func signedCurl(secret string, payload []byte, baseURL, msgID string, ts time.Time) (string, error) {
	event, err := domain.ParseChangeEvent(payload)
	if err != nil {
		return "", err
	}
	if !domain.IsWatchedTable(event.Table) {
		return "", fmt.Errorf("table %s is not watched, the server would ignore it", event.Table)
	}

	wh, err := svix.NewWebhook(secret)
	if err != nil {
		return "", fmt.Errorf("invalid webhook secret: %w", err)
	}
	signature, err := wh.Sign(msgID, ts, payload)
	if err != nil {
		return "", fmt.Errorf("failed to sign payload: %w", err)
	}

	return fmt.Sprintf("curl -X POST %s/webhooks/supabase/database \\\n"+
		"  -H 'Content-Type: application/json' \\\n"+
		"  -H 'webhook-id: %s' \\\n"+
		"  -H 'webhook-timestamp: %s' \\\n"+
		"  -H 'webhook-signature: %s' \\\n"+
		"  --data %s",
		baseURL, msgID, strconv.FormatInt(ts.Unix(), 10), signature, strconv.Quote(string(payload))), nil
}
