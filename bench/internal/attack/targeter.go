package attack

import (
	"fmt"
	"math/rand/v2"
	"net/http"
	"sync/atomic"

	vegeta "github.com/tsenart/vegeta/v12/lib"
)

const bypassHeader = "X-Rate-Limit-Bypass"

var videoCounter atomic.Uint64

func jsonHeader(bypassSecret string) http.Header {
	header := http.Header{"Content-Type": []string{"application/json"}}
	if bypassSecret != "" {
		header.Set(bypassHeader, bypassSecret)
	}
	return header
}

// AddTargeter posts a new ungrouped video per request.
func AddTargeter(baseURL, bypassSecret string) vegeta.Targeter {
	header := jsonHeader(bypassSecret)
	url := baseURL + "/urls"

	return func(t *vegeta.Target) error {
		t.Method = http.MethodPost
		t.URL = url
		t.Header = header
		t.Body = fmt.Appendf(nil, `{"url":"https://youtu.be/bench%d"}`, videoCounter.Add(1))
		return nil
	}
}

// ReadTargeter fetches a random seeded record by id.
func ReadTargeter(baseURL string, ids []string, bypassSecret string) vegeta.Targeter {
	var header http.Header
	if bypassSecret != "" {
		header = http.Header{bypassHeader: []string{bypassSecret}}
	}

	return func(t *vegeta.Target) error {
		t.Method = http.MethodGet
		t.URL = baseURL + "/urls/" + ids[rand.IntN(len(ids))]
		t.Header = header
		return nil
	}
}

// ToggleTargeter flips the completed flag of a random seeded record.
func ToggleTargeter(baseURL string, ids []string, bypassSecret string) vegeta.Targeter {
	header := jsonHeader(bypassSecret)
	bodies := [][]byte{[]byte(`{"completed":true}`), []byte(`{"completed":false}`)}

	return func(t *vegeta.Target) error {
		t.Method = http.MethodPut
		t.URL = baseURL + "/urls/" + ids[rand.IntN(len(ids))]
		t.Header = header
		t.Body = bodies[rand.IntN(2)]
		return nil
	}
}

// MixedTargeter splits traffic between writes (adds and toggles) and reads.
func MixedTargeter(baseURL string, ids []string, writeRatio float64, bypassSecret string) vegeta.Targeter {
	add := AddTargeter(baseURL, bypassSecret)
	toggle := ToggleTargeter(baseURL, ids, bypassSecret)
	read := ReadTargeter(baseURL, ids, bypassSecret)

	return func(t *vegeta.Target) error {
		if rand.Float64() >= writeRatio {
			return read(t)
		}
		if rand.IntN(2) == 0 {
			return add(t)
		}
		return toggle(t)
	}
}
