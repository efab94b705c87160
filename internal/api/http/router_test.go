package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mind-engage/selfcheck/internal/logging"
	"github.com/mind-engage/selfcheck/internal/quiz"
	"github.com/mind-engage/selfcheck/internal/render"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(NewRouter(RouterConfig{
		Catalog:     quiz.NewCatalog(quiz.Builtin()),
		PageQuizID:  quiz.BuiltinID,
		CORSOrigins: []string{"http://localhost:3000"},
		Log:         logging.Discard(),
	}))
	t.Cleanup(srv.Close)
	return srv
}

func noRedirects() *http.Client {
	return &http.Client{CheckRedirect: func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}}
}

func readBody(t *testing.T, res *http.Response) string {
	t.Helper()
	defer res.Body.Close()
	b, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return string(b)
}

func TestQuizPage(t *testing.T) {
	srv := newTestServer(t)

	res, err := http.Get(srv.URL + "/")
	require.NoError(t, err)
	body := readBody(t, res)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "text/html; charset=utf-8", res.Header.Get("Content-Type"))
	assert.Contains(t, body, `<form id="quizForm" method="post" action="/quiz">`)
	assert.Contains(t, body, `class="quiz-results" hidden`)
}

func TestSubmitQuiz(t *testing.T) {
	srv := newTestServer(t)

	form := url.Values{
		"q1": {"QUIC"},
		"q2": {"B"},
		"q3": {"C"},
		"q4": {"B"},
		"q5": {"A", "D", "B"},
	}
	res, err := http.PostForm(srv.URL+"/quiz", form)
	require.NoError(t, err)
	body := readBody(t, res)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, render.PassMessage)
	assert.Contains(t, body, "<strong>5 / 5</strong> (100%)")
	assert.Equal(t, 5, strings.Count(body, `<div class="badge correct">Correct</div>`))
	assert.Contains(t, body, `value="QUIC"`)
}

func TestSubmitQuiz_Empty(t *testing.T) {
	srv := newTestServer(t)

	res, err := http.PostForm(srv.URL+"/quiz", url.Values{})
	require.NoError(t, err)
	body := readBody(t, res)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, render.FailMessage)
	assert.Contains(t, body, "<strong>0 / 5</strong> (0%)")
	assert.Contains(t, body, "Your answer: (no answer entered)")
	assert.Equal(t, 3, strings.Count(body, "Your answer: (no option selected)"))
	assert.Contains(t, body, "Your answer: (no options selected)")
}

func TestResetQuiz(t *testing.T) {
	srv := newTestServer(t)

	res, err := noRedirects().PostForm(srv.URL+"/quiz/reset", url.Values{"q1": {"QUIC"}})
	require.NoError(t, err)
	readBody(t, res)

	assert.Equal(t, http.StatusSeeOther, res.StatusCode)
	assert.Equal(t, "/", res.Header.Get("Location"))
}

func TestStaticCSS(t *testing.T) {
	srv := newTestServer(t)

	res, err := http.Get(srv.URL + "/static/quiz.css")
	require.NoError(t, err)
	body := readBody(t, res)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, ".question-feedback")
}

func TestListAndGetQuiz(t *testing.T) {
	srv := newTestServer(t)

	res, err := http.Get(srv.URL + "/api/quizzes")
	require.NoError(t, err)
	var list []quiz.Summary
	require.NoError(t, json.Unmarshal([]byte(readBody(t, res)), &list))
	assert.Equal(t, []quiz.Summary{{ID: quiz.BuiltinID, Title: "HTTP Evolution Self-Assessment", Questions: 5}}, list)

	res, err = http.Get(srv.URL + "/api/quizzes/" + quiz.BuiltinID)
	require.NoError(t, err)
	body := readBody(t, res)
	assert.Equal(t, "application/json", res.Header.Get("Content-Type"))
	var v quiz.View
	require.NoError(t, json.Unmarshal([]byte(body), &v))
	assert.Len(t, v.Questions, 5)
	assert.NotContains(t, body, "answer")
	assert.NotContains(t, body, "explanation")

	res, err = http.Get(srv.URL + "/api/quizzes/nope")
	require.NoError(t, err)
	readBody(t, res)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func postJSON(t *testing.T, u, body string) (*http.Response, string) {
	t.Helper()
	res, err := http.Post(u, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	return res, readBody(t, res)
}

func TestGradeQuiz(t *testing.T) {
	srv := newTestServer(t)
	u := srv.URL + "/api/quizzes/" + quiz.BuiltinID + "/grade"

	res, body := postJSON(t, u, `{"responses": {"q1": " QUIC ", "q2": ["B"], "q3": "C", "q4": "A", "q5": ["D", "A", "B"]}}`)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var got struct {
		QuizID   string `json:"quiz_id"`
		Score    int    `json:"score"`
		Total    int    `json:"total"`
		Percent  int    `json:"percent"`
		Passed   bool   `json:"passed"`
		Verdict  string `json:"verdict"`
		Label    string `json:"percent_label"`
		Results  []struct {
			QuestionID string `json:"question_id"`
			Correct    bool   `json:"correct"`
			UserAnswer string `json:"user_answer"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &got))
	assert.Equal(t, quiz.BuiltinID, got.QuizID)
	assert.Equal(t, 4, got.Score)
	assert.Equal(t, 5, got.Total)
	assert.Equal(t, 80, got.Percent)
	assert.Equal(t, "80%", got.Label)
	assert.True(t, got.Passed)
	assert.Equal(t, render.PassMessage, got.Verdict)
	require.Len(t, got.Results, 5)
	assert.False(t, got.Results[3].Correct)
	assert.Equal(t, "q4", got.Results[3].QuestionID)
	assert.Equal(t, "quic", got.Results[0].UserAnswer)
}

func TestGradeQuiz_NullAndMissing(t *testing.T) {
	srv := newTestServer(t)
	u := srv.URL + "/api/quizzes/" + quiz.BuiltinID + "/grade"

	res, body := postJSON(t, u, `{"responses": {"q2": null}}`)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, `"score":0`)
	assert.Contains(t, body, `"passed":false`)
	assert.Contains(t, body, "(no option selected)")

	res, body = postJSON(t, u, `{}`)
	assert.Equal(t, http.StatusOK, res.StatusCode, body)
}

func TestGradeQuiz_BadRequests(t *testing.T) {
	srv := newTestServer(t)
	u := srv.URL + "/api/quizzes/" + quiz.BuiltinID + "/grade"

	tests := []struct {
		name string
		body string
	}{
		{"not json", `answers please`},
		{"number answer", `{"responses": {"q1": 42}}`},
		{"mixed array", `{"responses": {"q5": ["A", 1]}}`},
		{"unknown field", `{"answers": {}}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res, _ := postJSON(t, u, tc.body)
			assert.Equal(t, http.StatusBadRequest, res.StatusCode)
		})
	}

	res, _ := postJSON(t, srv.URL+"/api/quizzes/nope/grade", `{}`)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestCORS(t *testing.T) {
	srv := newTestServer(t)

	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/api/quizzes", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "GET")
	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	readBody(t, res)

	assert.Equal(t, "http://localhost:3000", res.Header.Get("Access-Control-Allow-Origin"))
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t)
	res, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	readBody(t, res)
	assert.Equal(t, http.StatusOK, res.StatusCode)
}
