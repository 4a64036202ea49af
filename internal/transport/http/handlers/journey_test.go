package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"hrpulse/internal/app/server"
	"hrpulse/internal/domain/audit"
	"hrpulse/internal/domain/pdi"
	"hrpulse/internal/platform/config"
)

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Details struct {
			Fields []struct {
				Field  string `json:"field"`
				Reason string `json:"reason"`
			} `json:"fields"`
		} `json:"details"`
	} `json:"error"`
}

func testConfig() config.Config {
	return config.Config{
		Addr:               "127.0.0.1:0",
		Environment:        "test",
		LogLevel:           "error",
		MaxBodyBytes:       1048576,
		RateLimitPerMinute: 1000,
		MetricsEnabled:     true,
		Timezone:           "UTC",
		ShutdownTimeout:    time.Second,
		ReadHeaderTimeout:  time.Second,
	}
}

// newTestServer starts the full router with the clock pinned to Wednesday
// 8 November 2023.
func newTestServer(t *testing.T, cfg config.Config) (*server.App, *httptest.Server) {
	t.Helper()
	app, err := server.New(cfg)
	if err != nil {
		t.Fatalf("failed to start app: %v", err)
	}
	app.Feedback.Now = func() time.Time { return time.Date(2023, time.November, 8, 9, 0, 0, 0, time.UTC) }

	ts := httptest.NewServer(app.Router)
	t.Cleanup(ts.Close)
	return app, ts
}

func TestFeedbackAndPlanJourney(t *testing.T) {
	_, ts := newTestServer(t, testConfig())
	client := ts.Client()

	overview := getJSON(t, client, ts.URL+"/api/v1/dashboard", http.StatusOK)
	var dash struct {
		Upcoming []json.RawMessage `json:"upcoming"`
		Plan     struct {
			Href string `json:"href"`
		} `json:"plan"`
		PlanPct int `json:"planPercent"`
	}
	decode(t, overview.Data, &dash)
	if len(dash.Upcoming) != 2 {
		t.Fatalf("expected two upcoming sessions on the dashboard, got %d", len(dash.Upcoming))
	}

	detail := getJSON(t, client, ts.URL+"/api/v1"+dash.Plan.Href, http.StatusOK)
	var linked struct {
		Plan pdi.Plan `json:"plan"`
	}
	decode(t, detail.Data, &linked)
	if dash.PlanPct != linked.Plan.Progress() {
		t.Fatalf("dashboard shows %d%% but %s is at %d%%", dash.PlanPct, dash.Plan.Href, linked.Plan.Progress())
	}

	scheduled := sendJSON(t, client, http.MethodPost, ts.URL+"/api/v1/feedback", map[string]any{
		"employee": "3",
		"date":     "2023-11-10",
		"timeSlot": "1:00 PM - 2:00 PM",
		"location": "Virtual (Zoom)",
		"topics":   []string{"Campaign retro", "Campaign retro", " "},
	}, http.StatusCreated)
	var session struct {
		Values struct {
			Topics []string `json:"topics"`
		} `json:"values"`
	}
	decode(t, scheduled.Data, &session)
	if len(session.Values.Topics) != 1 {
		t.Fatalf("expected duplicate and blank topics to be dropped, got %v", session.Values.Topics)
	}

	sendJSON(t, client, http.MethodPost, ts.URL+"/api/v1/pdi", map[string]any{
		"employee":  "4",
		"title":     "Escalation playbook",
		"startDate": "2024-01-01",
		"endDate":   "2024-03-31",
		"goals": []map[string]any{{
			"title": "Document escalation paths",
			"tasks": []map[string]any{{"description": "Interview support leads"}},
		}},
	}, http.StatusCreated)

	sendJSON(t, client, http.MethodPut, ts.URL+"/api/v1/profile", map[string]any{
		"name":   "Alice Johnson",
		"email":  "alice@example.com",
		"skills": []string{"Leadership"},
	}, http.StatusOK)

	resp, err := client.Get(ts.URL + "/api/v1/pdi/1/export.pdf")
	if err != nil {
		t.Fatalf("export request failed: %v", err)
	}
	pdf, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK || !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatalf("expected a pdf document, got status %d", resp.StatusCode)
	}

	events := getJSON(t, client, ts.URL+"/api/v1/audit/events", http.StatusOK)
	var recorded []audit.Event
	decode(t, events.Data, &recorded)
	actions := make([]string, 0, len(recorded))
	for _, evt := range recorded {
		actions = append(actions, evt.Action)
	}
	want := []string{audit.ActionProfileUpdate, audit.ActionPlanCreate, audit.ActionFeedbackSchedule}
	if strings.Join(actions, ",") != strings.Join(want, ",") {
		t.Fatalf("expected events %v, got %v", want, actions)
	}

	metricsEnv := getJSON(t, client, ts.URL+"/metrics", http.StatusOK)
	var snapshot struct {
		Submissions []struct {
			Form     string `json:"form"`
			Accepted int    `json:"accepted"`
		} `json:"submissions"`
	}
	decode(t, metricsEnv.Data, &snapshot)
	if len(snapshot.Submissions) != 3 {
		t.Fatalf("expected submission counters for three forms, got %+v", snapshot.Submissions)
	}

	// Submissions are capture-only; the list still shows the fixtures.
	listed := getJSON(t, client, ts.URL+"/api/v1/feedback", http.StatusOK)
	var sessions struct {
		Total int `json:"total"`
	}
	decode(t, listed.Data, &sessions)
	if sessions.Total != 4 {
		t.Fatalf("expected the four fixture sessions, got %d", sessions.Total)
	}
}

func TestPageJourney(t *testing.T) {
	_, ts := newTestServer(t, testConfig())
	client := ts.Client()
	client.CheckRedirect = func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse }

	for _, path := range []string{"/", "/feedback", "/feedback/new", "/pdi", "/pdi/new", "/profile", "/profile/edit", "/static/app.css"} {
		resp, err := client.Get(ts.URL + path)
		if err != nil {
			t.Fatalf("GET %s failed: %v", path, err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("GET %s: expected 200, got %d", path, resp.StatusCode)
		}
	}

	body := postForm(t, client, ts.URL+"/feedback/new", url.Values{
		"employee": {"2"},
		"timeSlot": {"9:00 AM - 10:00 AM"},
		"location": {"Meeting Room 1"},
		"topics":   {"Roadmap"},
		"date":     {"2023-11-13"},
		"op":       {"submit"},
	}, http.StatusOK)
	if !strings.Contains(body, "Session Scheduled") {
		t.Fatal("expected scheduling confirmation")
	}

	resp := postFormResponse(t, client, ts.URL+"/profile/edit", url.Values{"name": {"Alice Johnson"}})
	if resp.StatusCode != http.StatusSeeOther || resp.Header.Get("Location") != "/profile?updated=1" {
		t.Fatalf("expected redirect to the profile page, got %d %q", resp.StatusCode, resp.Header.Get("Location"))
	}

	req, _ := http.NewRequest(http.MethodPost, ts.URL+"/notifications/read-all", nil)
	req.Header.Set("Referer", ts.URL+"/pdi")
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("mark all read failed: %v", err)
	}
	resp.Body.Close()
	if resp.Header.Get("Location") != "/pdi" {
		t.Fatalf("expected redirect back to /pdi, got %q", resp.Header.Get("Location"))
	}

	page := getPage(t, client, ts.URL+"/pdi", http.StatusOK)
	if strings.Contains(page, "badge-alert") {
		t.Fatal("expected the unread badge to clear")
	}
}

func getJSON(t *testing.T, client *http.Client, target string, status int) envelope {
	t.Helper()
	resp, err := client.Get(target)
	if err != nil {
		t.Fatalf("GET %s failed: %v", target, err)
	}
	return readEnvelope(t, resp, status)
}

func sendJSON(t *testing.T, client *http.Client, method, target string, payload any, status int) envelope {
	t.Helper()
	raw, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	req, err := http.NewRequest(method, target, bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, target, err)
	}
	return readEnvelope(t, resp, status)
}

func readEnvelope(t *testing.T, resp *http.Response, status int) envelope {
	t.Helper()
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != status {
		t.Fatalf("%s %s: expected status %d, got %d: %s", resp.Request.Method, resp.Request.URL.Path, status, resp.StatusCode, body)
	}
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		t.Fatalf("failed to decode envelope: %v", err)
	}
	return env
}

func decode(t *testing.T, raw json.RawMessage, target any) {
	t.Helper()
	if err := json.Unmarshal(raw, target); err != nil {
		t.Fatalf("failed to decode data: %v", err)
	}
}

func postFormResponse(t *testing.T, client *http.Client, target string, form url.Values) *http.Response {
	t.Helper()
	resp, err := client.PostForm(target, form)
	if err != nil {
		t.Fatalf("POST %s failed: %v", target, err)
	}
	resp.Body.Close()
	return resp
}

func postForm(t *testing.T, client *http.Client, target string, form url.Values, status int) string {
	t.Helper()
	resp, err := client.PostForm(target, form)
	if err != nil {
		t.Fatalf("POST %s failed: %v", target, err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != status {
		t.Fatalf("POST %s: expected status %d, got %d", target, status, resp.StatusCode)
	}
	return string(body)
}

func getPage(t *testing.T, client *http.Client, target string, status int) string {
	t.Helper()
	resp, err := client.Get(target)
	if err != nil {
		t.Fatalf("GET %s failed: %v", target, err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != status {
		t.Fatalf("GET %s: expected status %d, got %d", target, status, resp.StatusCode)
	}
	return string(body)
}
