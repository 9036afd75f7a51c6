package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type fakeTransport struct {
	mu          sync.Mutex
	status      int
	contentType string
	body        string
	requests    [][]byte
}

func (f *fakeTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	b, _ := io.ReadAll(req.Body)
	_ = req.Body.Close()
	f.mu.Lock()
	f.requests = append(f.requests, b)
	f.mu.Unlock()

	contentType := f.contentType
	if contentType == "" {
		contentType = "application/json"
	}
	resp := &http.Response{
		StatusCode: f.status,
		Body:       io.NopCloser(bytes.NewReader([]byte(f.body))),
		Header:     make(http.Header),
		Request:    req,
	}
	resp.Header.Set("Content-Type", contentType)
	return resp, nil
}

func (f *fakeTransport) lastRequest(t *testing.T) map[string]any {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.requests)
	var out map[string]any
	require.NoError(t, json.Unmarshal(f.requests[len(f.requests)-1], &out))
	return out
}

func newTestService(t *testing.T, rt *fakeTransport) (*Anthropic, *observer.ObservedLogs) {
	t.Helper()
	client := anthropic.NewClient(
		option.WithHTTPClient(&http.Client{Transport: rt}),
		option.WithAPIKey("test-key"),
		option.WithMaxRetries(0),
	)
	core, logs := observer.New(zapcore.DebugLevel)
	svc := NewAnthropic(client, Options{
		Model:     "claude-sonnet-4-5",
		MaxTokens: 256,
		Household: "Gram's House",
		Team:      "Montreal Canadiens",
	}, zap.New(core))
	return svc, logs
}

func textMessage(blocks ...string) string {
	return fmt.Sprintf(`{"id":"msg_1","type":"message","role":"assistant","model":"claude-sonnet-4-5",
"content":[%s],"stop_reason":"end_turn","usage":{"input_tokens":10,"output_tokens":10}}`, strings.Join(blocks, ","))
}

func textBlock(text string) string {
	b, _ := json.Marshal(text)
	return fmt.Sprintf(`{"type":"text","text":%s,"citations":null}`, b)
}

const serverError = `{"type":"error","error":{"type":"api_error","message":"boom"}}`

func TestGroundedAnswer(t *testing.T) {
	ctx := context.Background()

	t.Run("collects web citations", func(t *testing.T) {
		block := `{"type":"text","text":"Try a weekly pill organiser.","citations":[
{"type":"web_search_result_location","url":"https://a.example","title":"A","cited_text":"x","encrypted_index":"e"},
{"type":"web_search_result_location","url":"https://a.example","title":"A again","cited_text":"y","encrypted_index":"e"},
{"type":"web_search_result_location","url":"https://b.example","title":"B","cited_text":"z","encrypted_index":"e"}]}`
		rt := &fakeTransport{status: 200, body: textMessage(block)}
		svc, _ := newTestService(t, rt)

		got := svc.GroundedAnswer(ctx, "medication reminders")
		assert.Equal(t, "Try a weekly pill organiser.", got.Answer)
		assert.Equal(t, []Source{{Title: "A", URI: "https://a.example"}, {Title: "B", URI: "https://b.example"}}, got.Sources)

		req := rt.lastRequest(t)
		tools, ok := req["tools"].([]any)
		require.True(t, ok)
		require.Len(t, tools, 1)
		assert.Equal(t, "web_search_20250305", tools[0].(map[string]any)["type"])
	})

	t.Run("failure returns apology", func(t *testing.T) {
		rt := &fakeTransport{status: 500, body: serverError}
		svc, logs := newTestService(t, rt)

		got := svc.GroundedAnswer(ctx, "anything")
		assert.Equal(t, FallbackGroundedAnswer, got.Answer)
		assert.Empty(t, got.Sources)
		assert.NotNil(t, got.Sources)
		assert.Equal(t, 1, logs.FilterMessage("assistant call failed, using fallback").Len())
	})
}

func TestWeeklyDigest(t *testing.T) {
	ctx := context.Background()

	t.Run("returns text", func(t *testing.T) {
		rt := &fakeTransport{status: 200, body: textMessage(textBlock("Hey family!"))}
		svc, _ := newTestService(t, rt)
		assert.Equal(t, "Hey family!", svc.WeeklyDigest(ctx, DigestContext{}))

		req := rt.lastRequest(t)
		assert.Equal(t, "claude-sonnet-4-5", req["model"])
		assert.Nil(t, req["tools"])
	})

	t.Run("empty reply falls back", func(t *testing.T) {
		rt := &fakeTransport{status: 200, body: textMessage()}
		svc, _ := newTestService(t, rt)
		assert.Equal(t, FallbackDigest, svc.WeeklyDigest(ctx, DigestContext{}))
	})

	t.Run("error falls back", func(t *testing.T) {
		rt := &fakeTransport{status: 400, body: serverError}
		svc, _ := newTestService(t, rt)
		assert.Equal(t, FallbackDigest, svc.WeeklyDigest(ctx, DigestContext{}))
	})
}

func TestMealPlan(t *testing.T) {
	ctx := context.Background()

	t.Run("parses array", func(t *testing.T) {
		plan := `[{"day":"Day 1","meals":{"breakfast":"Oatmeal","lunch":"Soup","dinner":"Salmon"}}]`
		rt := &fakeTransport{status: 200, body: textMessage(textBlock(plan))}
		svc, _ := newTestService(t, rt)

		got := svc.MealPlan(ctx, "low sodium")
		require.Len(t, got, 1)
		assert.Equal(t, "Salmon", got[0].Meals.Dinner)
	})

	t.Run("prose yields empty list", func(t *testing.T) {
		rt := &fakeTransport{status: 200, body: textMessage(textBlock("Here is a lovely plan for you!"))}
		svc, logs := newTestService(t, rt)

		got := svc.MealPlan(ctx, "anything")
		assert.NotNil(t, got)
		assert.Empty(t, got)
		assert.Equal(t, 1, logs.FilterMessage("assistant call failed, using fallback").Len())
	})

	t.Run("transport failure yields empty list", func(t *testing.T) {
		rt := &fakeTransport{status: 500, body: serverError}
		svc, _ := newTestService(t, rt)
		got := svc.MealPlan(ctx, "anything")
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestMemoryStory(t *testing.T) {
	ctx := context.Background()

	t.Run("sends image and note", func(t *testing.T) {
		rt := &fakeTransport{status: 200, body: textMessage(textBlock("A sunny afternoon."))}
		svc, _ := newTestService(t, rt)

		got := svc.MemoryStory(ctx, []byte{0x89, 'P', 'N', 'G'}, "image/png", "Beach day")
		assert.Equal(t, "A sunny afternoon.", got)

		req := rt.lastRequest(t)
		msgs := req["messages"].([]any)
		require.Len(t, msgs, 1)
		content := msgs[0].(map[string]any)["content"].([]any)
		require.Len(t, content, 2)
		image := content[0].(map[string]any)
		assert.Equal(t, "image", image["type"])
		source := image["source"].(map[string]any)
		assert.Equal(t, "image/png", source["media_type"])
		assert.Equal(t, "iVBORw==", source["data"])
		assert.Contains(t, content[1].(map[string]any)["text"], "Beach day")
	})

	t.Run("failure returns apology", func(t *testing.T) {
		rt := &fakeTransport{status: 500, body: serverError}
		svc, _ := newTestService(t, rt)
		assert.Equal(t, FallbackMemoryStory, svc.MemoryStory(ctx, []byte("x"), "image/jpeg", "note"))
	})
}

func TestLiveScore(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		status int
		body   string
		want   LiveScore
		ok     bool
	}{
		{
			name:   "four parts",
			status: 200,
			body:   textMessage(textBlock("3,1,2,10:45")),
			want:   LiveScore{TeamScore: "3", OpponentScore: "1", Period: "2", TimeRemaining: "10:45"},
			ok:     true,
		},
		{
			name:   "answer after search narration",
			status: 200,
			body:   textMessage(textBlock("Let me look that up.\n"), textBlock("2,2,3,05:00")),
			want:   LiveScore{TeamScore: "2", OpponentScore: "2", Period: "3", TimeRemaining: "05:00"},
			ok:     true,
		},
		{name: "three parts", status: 200, body: textMessage(textBlock("3,1,2")), ok: false},
		{name: "prose", status: 200, body: textMessage(textBlock("The game has not started.")), ok: false},
		{name: "error", status: 500, body: serverError, ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt := &fakeTransport{status: tt.status, body: tt.body}
			svc, _ := newTestService(t, rt)
			got, ok := svc.LiveScore(ctx, "Toronto Maple Leafs")
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func sseBody(chunks ...string) string {
	var b strings.Builder
	b.WriteString("event: message_start\ndata: {\"type\":\"message_start\",\"message\":{\"id\":\"msg_1\",\"type\":\"message\",\"role\":\"assistant\",\"model\":\"claude-sonnet-4-5\",\"content\":[],\"usage\":{\"input_tokens\":1,\"output_tokens\":1}}}\n\n")
	b.WriteString("event: content_block_start\ndata: {\"type\":\"content_block_start\",\"index\":0,\"content_block\":{\"type\":\"text\",\"text\":\"\"}}\n\n")
	for _, c := range chunks {
		data, _ := json.Marshal(map[string]any{
			"type":  "content_block_delta",
			"index": 0,
			"delta": map[string]any{"type": "text_delta", "text": c},
		})
		fmt.Fprintf(&b, "event: content_block_delta\ndata: %s\n\n", data)
	}
	b.WriteString("event: content_block_stop\ndata: {\"type\":\"content_block_stop\",\"index\":0}\n\n")
	b.WriteString("event: message_stop\ndata: {\"type\":\"message_stop\"}\n\n")
	return b.String()
}

func TestConverse(t *testing.T) {
	ctx := context.Background()

	t.Run("streams deltas", func(t *testing.T) {
		rt := &fakeTransport{status: 200, contentType: "text/event-stream", body: sseBody("Hel", "lo", " there")}
		svc, _ := newTestService(t, rt)

		history := []Turn{
			{Role: RoleAssistant, Text: HelperGreeting},
			{Role: RoleUser, Text: "Hi"},
			{Role: RoleAssistant, Text: "Hello!"},
		}
		var chunks []string
		for chunk, err := range svc.Converse(ctx, history, "How are you?") {
			require.NoError(t, err)
			chunks = append(chunks, chunk)
		}
		assert.Equal(t, []string{"Hel", "lo", " there"}, chunks)

		req := rt.lastRequest(t)
		assert.Equal(t, true, req["stream"])
		msgs := req["messages"].([]any)
		require.Len(t, msgs, 3, "leading greeting is dropped")
		assert.Equal(t, "user", msgs[0].(map[string]any)["role"])
		assert.NotEmpty(t, req["system"])
	})

	t.Run("consumer can stop early", func(t *testing.T) {
		rt := &fakeTransport{status: 200, contentType: "text/event-stream", body: sseBody("a", "b", "c")}
		svc, _ := newTestService(t, rt)

		var chunks []string
		for chunk := range svc.Converse(ctx, nil, "hi") {
			chunks = append(chunks, chunk)
			break
		}
		assert.Equal(t, []string{"a"}, chunks)
	})

	t.Run("error is yielded", func(t *testing.T) {
		rt := &fakeTransport{status: 500, body: serverError}
		svc, logs := newTestService(t, rt)

		var gotErr error
		for _, err := range svc.Converse(ctx, nil, "hi") {
			if err != nil {
				gotErr = err
			}
		}
		require.Error(t, gotErr)
		assert.Equal(t, 1, logs.FilterMessage("assistant call failed, using fallback").Len())
	})
}
