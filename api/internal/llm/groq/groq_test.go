package groq

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func chatBody(content string) string {
	b, _ := json.Marshal(map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"content": content}},
		},
	})
	return string(b)
}

func TestTranslateRequestShape(t *testing.T) {
	var got chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "POST", r.Method)
		require.Equal(t, "/chat/completions", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(chatBody("CREATE OR REPLACE FUNCTION f() RETURNS VOID LANGUAGE plpgsql AS $$ BEGIN END; $$;")))
	}))
	defer srv.Close()

	e := New("test-key", "llama-3.3-70b-versatile").WithBaseURL(srv.URL).WithHTTPClient(srv.Client())
	out, err := e.Translate(context.Background(), "CREATE PROCEDURE dbo.Foo AS SELECT 1")
	require.NoError(t, err)
	require.Contains(t, out, "CREATE OR REPLACE FUNCTION")

	require.Equal(t, "llama-3.3-70b-versatile", got.Model)
	require.InDelta(t, 0.05, got.Temperature, 1e-9)
	require.Equal(t, 8000, got.MaxTokens)
	require.InDelta(t, 0.9, got.TopP, 1e-9)
	require.Len(t, got.Messages, 2)
	require.Equal(t, "system", got.Messages[0].Role)
	require.Equal(t, "user", got.Messages[1].Role)
	require.Contains(t, got.Messages[1].Content, "CREATE PROCEDURE dbo.Foo AS SELECT 1")
}

func TestTranslateStripsFences(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(chatBody("```sql\nSELECT 1;\n```")))
	}))
	defer srv.Close()

	e := New("k", "m").WithBaseURL(srv.URL)
	out, err := e.Translate(context.Background(), "CREATE PROC P AS SELECT 1")
	require.NoError(t, err)
	require.Equal(t, "SELECT 1;", out)
}

func TestTranslateHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"invalid_api_key"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	e := New("bad", "m").WithBaseURL(srv.URL)
	_, err := e.Translate(context.Background(), "CREATE PROC P AS SELECT 1")
	require.Error(t, err)
	require.Contains(t, err.Error(), "401")
}

func TestTranslateEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	e := New("k", "m").WithBaseURL(srv.URL)
	_, err := e.Translate(context.Background(), "x")
	require.Error(t, err)
}

func TestWithModelOverridesRequestModel(t *testing.T) {
	var got chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(chatBody("SELECT 1;")))
	}))
	defer srv.Close()

	base := New("k", "llama-3.3-70b-versatile").WithBaseURL(srv.URL)
	e := base.WithModel("llama-3.1-8b-instant")
	require.Equal(t, "llama-3.1-8b-instant", e.GetModel())

	_, err := e.Translate(context.Background(), "x")
	require.NoError(t, err)
	require.Equal(t, "llama-3.1-8b-instant", got.Model)
	// The receiver keeps its own model.
	require.Equal(t, "llama-3.3-70b-versatile", base.GetModel())
}

func TestTranslateNoKey(t *testing.T) {
	e := New("", "m")
	_, err := e.Translate(context.Background(), "x")
	require.Error(t, err)
}

func TestTranslateHonorsContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	e := New("k", "m").WithBaseURL(srv.URL)
	_, err := e.Translate(ctx, "x")
	require.Error(t, err)
}
