package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/robalobadob/wordscramble/internal/dictionary"
	"github.com/robalobadob/wordscramble/internal/game"
	"github.com/robalobadob/wordscramble/internal/store"
	"github.com/robalobadob/wordscramble/internal/words"
)

// flakyDictionary fails every lookup while down is set.
type flakyDictionary struct {
	game.Dictionary
	down bool
}

func (d *flakyDictionary) IsCorrectlySpelled(ctx context.Context, word string, lang language.Tag) (bool, error) {
	if d.down {
		return false, errors.New("spellcheck offline")
	}
	return d.Dictionary.IsCorrectlySpelled(ctx, word, lang)
}

func newTestServer(t *testing.T) (*Server, *flakyDictionary) {
	t.Helper()
	roots, err := words.FromSlice([]string{"hamilton", "garden"})
	require.NoError(t, err)
	dict := &flakyDictionary{Dictionary: dictionary.NewWordList(language.English, []string{"ham", "ion", "main", "den"})}
	srv := New(Options{
		Store:          store.NewMemoryStore(),
		Roots:          roots,
		Validator:      game.Validator{Dictionary: dict},
		JWTSecret:      "test_secret",
		SessionTTL:     time.Hour,
		ClientOrigin:   "http://localhost:5173",
		DailySalt:      "salt",
		DictionaryName: "test",
		DictionarySize: 4,
	})
	return srv, dict
}

func do(t *testing.T, srv *Server, method, path, token, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	out := map[string]any{}
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	}
	return rec, out
}

func newSession(t *testing.T, srv *Server) string {
	t.Helper()
	rec, body := do(t, srv, http.MethodPost, "/session", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	tok, _ := body["token"].(string)
	require.NotEmpty(t, tok)
	return tok
}

func TestHealth(t *testing.T) {
	srv, _ := newTestServer(t)
	rec, body := do(t, srv, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["ok"])

	rec, body = do(t, srv, http.MethodGet, "/debug/words", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 2, body["roots"])
}

func TestRoundRequiresSession(t *testing.T) {
	srv, _ := newTestServer(t)

	rec, body := do(t, srv, http.MethodPost, "/round/new", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "unauthorized", body["error"])

	rec, body = do(t, srv, http.MethodGet, "/round", "garbage", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "invalid_token", body["error"])

	tok, _, err := srv.signToken("no-such-session")
	require.NoError(t, err)
	rec, body = do(t, srv, http.MethodGet, "/round", tok, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "session_expired", body["error"])
}

func TestSessionCookie(t *testing.T) {
	srv, _ := newTestServer(t)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/session", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, sessionCookieName, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)

	req := httptest.NewRequest(http.MethodGet, "/round", nil)
	req.AddCookie(cookies[0])
	rec = httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSubmitBeforeRound(t *testing.T) {
	srv, _ := newTestServer(t)
	tok := newSession(t, srv)

	rec, body := do(t, srv, http.MethodPost, "/round/submit", tok, `{"word":"ham"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "no_round", body["error"])
}

func TestPlayRound(t *testing.T) {
	srv, _ := newTestServer(t)
	tok := newSession(t, srv)

	rec, body := do(t, srv, http.MethodPost, "/round/new", tok, `{"root":"Hamilton"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "hamilton", body["root"])
	assert.EqualValues(t, 0, body["score"])
	assert.Equal(t, true, body["active"])

	rec, body = do(t, srv, http.MethodPost, "/round/submit", tok, `{"word":" HAM "}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ham", body["word"])
	assert.EqualValues(t, 24, body["points"])
	assert.EqualValues(t, 24, body["score"])

	rec, body = do(t, srv, http.MethodPost, "/round/submit", tok, `{"word":"ion"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 48, body["score"])
	assert.Equal(t, []any{"ion", "ham"}, body["words"])

	rec, body = do(t, srv, http.MethodGet, "/round", tok, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 48, body["score"])
	assert.Equal(t, []any{"ion", "ham"}, body["words"])
}

func TestSubmitRejections(t *testing.T) {
	srv, _ := newTestServer(t)
	tok := newSession(t, srv)
	rec, _ := do(t, srv, http.MethodPost, "/round/new", tok, `{"root":"hamilton"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	rec, _ = do(t, srv, http.MethodPost, "/round/submit", tok, `{"word":"main"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	tests := []struct {
		word  string
		want  game.Reason
		title string
	}{
		{"", game.ReasonTooShort, "Too short"},
		{"hamilton", game.ReasonSameAsOriginal, "Invalid word"},
		{"iron", game.ReasonInvalidLetters, "Invalid word!"},
		{"main", game.ReasonDuplicateWord, "Duplicate word!"},
		{"holt", game.ReasonNotAWord, "Invalid word"},
	}
	for _, tt := range tests {
		rec, body := do(t, srv, http.MethodPost, "/round/submit", tok, `{"word":"`+tt.word+`"}`)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code, tt.word)
		assert.Equal(t, "rejected", body["error"])
		assert.Equal(t, string(tt.want), body["reason"], tt.word)
		assert.Equal(t, tt.title, body["title"], tt.word)
		assert.NotEmpty(t, body["message"])
	}

	_, body := do(t, srv, http.MethodGet, "/round", tok, "")
	assert.EqualValues(t, 32, body["score"])
	assert.Equal(t, []any{"main"}, body["words"])
}

func TestSubmitDictionaryDown(t *testing.T) {
	srv, dict := newTestServer(t)
	tok := newSession(t, srv)
	rec, _ := do(t, srv, http.MethodPost, "/round/new", tok, `{"root":"hamilton"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	dict.down = true
	rec, body := do(t, srv, http.MethodPost, "/round/submit", tok, `{"word":"ham"}`)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, string(game.ReasonOracleUnavailable), body["reason"])

	dict.down = false
	_, body = do(t, srv, http.MethodGet, "/round", tok, "")
	assert.EqualValues(t, 0, body["score"])
	assert.Empty(t, body["words"])
}

func TestNewRoundResets(t *testing.T) {
	srv, _ := newTestServer(t)
	tok := newSession(t, srv)
	do(t, srv, http.MethodPost, "/round/new", tok, `{"root":"hamilton"}`)
	rec, _ := do(t, srv, http.MethodPost, "/round/submit", tok, `{"word":"ham"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, body := do(t, srv, http.MethodPost, "/round/new", tok, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, []any{"hamilton", "garden"}, body["root"])
	assert.EqualValues(t, 0, body["score"])
	assert.Empty(t, body["words"])
}

func TestNewRoundDailyAndUnknownRoot(t *testing.T) {
	srv, _ := newTestServer(t)
	tok := newSession(t, srv)

	rec, body := do(t, srv, http.MethodPost, "/round/new", tok, `{"daily":true}`)
	require.Equal(t, http.StatusOK, rec.Code)
	date, root := srv.opts.Roots.Daily(srv.now(), "salt")
	assert.Equal(t, date, body["date"])
	assert.Equal(t, root, body["root"])

	rec, body = do(t, srv, http.MethodPost, "/round/new", tok, `{"root":"zebra"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "unknown_root", body["error"])

	rec, body = do(t, srv, http.MethodPost, "/round/submit", tok, `{`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "bad_json", body["error"])
}
