package dictionary

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

const (
	// DefaultURL is the free dictionary API; the word is appended to it.
	DefaultURL = "https://api.dictionaryapi.dev/api/v2/entries/en/"

	userAgent      = "alloy"
	defaultTimeout = 10 * time.Second
	maxBodyBytes   = 1 << 20
)

// Definition is the first definition found for a word.
type Definition struct {
	Word         string
	PartOfSpeech string
	// Text is lowercased.
	Text string
}

func (d Definition) String() string {
	return d.Word + ": " + d.Text
}

// Client looks words up with a single GET request. Lookups are never retried.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient returns a client for baseURL, or DefaultURL when it is empty.
// A nil httpClient gets a client with a short timeout.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{baseURL: baseURL, httpClient: httpClient}
}

// FirstWord returns the first space separated word of a selection.
func FirstWord(selection string) string {
	fields := strings.Fields(selection)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// Lookup fetches the definition of the first word in selection.
func (c *Client) Lookup(ctx context.Context, selection string) (Definition, error) {
	word := FirstWord(selection)
	if word == "" {
		return Definition{}, ErrNoWord
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+url.PathEscape(word), nil)
	if err != nil {
		return Definition{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Definition{}, fmt.Errorf("lookup %q: %w", word, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return Definition{}, fmt.Errorf("%w: %q", ErrNoDefinition, word)
	case resp.StatusCode != http.StatusOK:
		return Definition{}, fmt.Errorf("lookup %q: unexpected status %s", word, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return Definition{}, fmt.Errorf("read response: %w", err)
	}

	def, err := parse(body)
	if err != nil {
		return Definition{}, fmt.Errorf("%w: %q", err, word)
	}
	def.Word = word
	return def, nil
}

// parse picks the first definition of the first meaning of the first entry.
func parse(body []byte) (Definition, error) {
	if !gjson.ValidBytes(body) {
		return Definition{}, ErrNoData
	}
	entries := gjson.ParseBytes(body)
	if !entries.IsArray() || len(entries.Array()) == 0 {
		return Definition{}, ErrNoData
	}

	meaning := entries.Get("0.meanings.0")
	if !meaning.Exists() {
		return Definition{}, ErrNoMeaning
	}

	text := meaning.Get("definitions.0.definition")
	if !text.Exists() || strings.TrimSpace(text.String()) == "" {
		return Definition{}, ErrNoDefinition
	}

	return Definition{
		PartOfSpeech: meaning.Get("partOfSpeech").String(),
		Text:         strings.ToLower(text.String()),
	}, nil
}
