package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/abhisek/pathwise/internal/auth"
	"github.com/abhisek/pathwise/internal/generator"
	"github.com/abhisek/pathwise/internal/llm"
	"github.com/abhisek/pathwise/internal/logger"
	"github.com/abhisek/pathwise/internal/roadmap"
	"github.com/abhisek/pathwise/internal/store"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeUserRepo struct {
	byEmail map[string]*store.User
}

func (f *fakeUserRepo) Create(_ context.Context, u *store.User) (*store.User, error) {
	if _, ok := f.byEmail[u.Email]; ok {
		return nil, store.ErrEmailTaken
	}
	cp := *u
	cp.ID = uuid.New()
	f.byEmail[u.Email] = &cp
	return &cp, nil
}

func (f *fakeUserRepo) ByEmail(_ context.Context, email string) (*store.User, error) {
	return f.byEmail[email], nil
}

func (f *fakeUserRepo) ByID(_ context.Context, id uuid.UUID) (*store.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) UpdateProfile(_ context.Context, _ uuid.UUID, _, _ []string) error {
	return nil
}

type fakeRoadmapRepo struct {
	byKey map[string]*store.Roadmap
}

func (f *fakeRoadmapRepo) Get(_ context.Context, userID uuid.UUID, domain string) (*store.Roadmap, error) {
	return f.byKey[userID.String()+"/"+domain], nil
}
func (f *fakeRoadmapRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]*store.Roadmap, error) {
	var out []*store.Roadmap
	for _, rm := range f.byKey {
		if rm.UserID == userID {
			out = append(out, rm)
		}
	}
	return out, nil
}
func (f *fakeRoadmapRepo) LastDomain(_ context.Context, _ uuid.UUID) (string, error) {
	return "", nil
}
func (f *fakeRoadmapRepo) Replace(_ context.Context, rm *store.Roadmap) (*store.Roadmap, error) {
	cp := *rm
	cp.ID = uuid.New()
	cp.Version = 1
	f.byKey[rm.UserID.String()+"/"+rm.Domain] = &cp
	return &cp, nil
}
func (f *fakeRoadmapRepo) CompleteStep(_ context.Context, _ uuid.UUID, _ int, _ store.StepRef, _ *store.StepRef, _ int) error {
	return nil
}

func testRouter(t *testing.T, responses ...llm.MockResponse) *gin.Engine {
	t.Helper()

	log := logger.NewNop()
	users := &fakeUserRepo{byEmail: make(map[string]*store.User)}
	roadmaps := &fakeRoadmapRepo{byKey: make(map[string]*store.Roadmap)}
	tokens := auth.NewTokenIssuer("test-secret", time.Hour)
	gen := generator.New(llm.NewMockProvider(responses...), generator.DefaultConfig())

	return NewRouter(Config{
		Auth:     auth.NewService(users, tokens, log),
		Tokens:   tokens,
		Roadmaps: roadmap.NewService(roadmaps, users, gen, log),
		Log:      log,
	})
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func register(t *testing.T, router *gin.Engine) string {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/api/register", "", gin.H{
		"name":     "Dana",
		"email":    "dana@example.com",
		"password": "longenough",
		"skills":   []string{"html"},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register status = %d: %s", w.Code, w.Body)
	}
	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	return resp.Token
}

func skeletonResponse() llm.MockResponse {
	return llm.MockResponse{Content: json.RawMessage(`{
		"stages": [{
			"title": "Foundations",
			"steps": [
				{"title": "HTML", "description": "", "resource_type": "article", "study_link": ""},
				{"title": "CSS", "description": "", "resource_type": "article", "study_link": ""}
			]
		}]
	}`)}
}

func TestHealthz(t *testing.T) {
	router := testRouter(t)
	w := doJSON(t, router, http.MethodGet, "/healthz", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	router := testRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/roadmap?domain=frontend", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("no token: status = %d, want 401", w.Code)
	}

	w = doJSON(t, router, http.MethodGet, "/api/roadmap?domain=frontend", "garbage-token", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("bad token: status = %d, want 401", w.Code)
	}
}

func TestRegisterLoginAndGenerate(t *testing.T) {
	router := testRouter(t, skeletonResponse())
	token := register(t, router)

	// Wrong password is a 401.
	w := doJSON(t, router, http.MethodPost, "/api/login", "", gin.H{
		"email": "dana@example.com", "password": "wrong",
	})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("bad login: status = %d, want 401", w.Code)
	}

	// No roadmap yet: 404, not an empty object.
	w = doJSON(t, router, http.MethodGet, "/api/roadmap?domain=frontend", token, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("missing roadmap: status = %d, want 404", w.Code)
	}

	w = doJSON(t, router, http.MethodPost, "/api/roadmap/generate", token, gin.H{"domain": "frontend"})
	if w.Code != http.StatusCreated {
		t.Fatalf("generate: status = %d: %s", w.Code, w.Body)
	}
	var rm struct {
		TotalSteps int `json:"totalSteps"`
		Stages     []struct {
			Steps []struct {
				Unlocked       bool `json:"unlocked"`
				GlobalPosition int  `json:"globalPosition"`
			} `json:"steps"`
		} `json:"stages"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &rm); err != nil {
		t.Fatal(err)
	}
	if rm.TotalSteps != 2 {
		t.Errorf("total steps = %d, want 2", rm.TotalSteps)
	}
	if !rm.Stages[0].Steps[0].Unlocked || rm.Stages[0].Steps[1].Unlocked {
		t.Error("only the first step should start unlocked")
	}
	if rm.Stages[0].Steps[1].GlobalPosition != 1 {
		t.Errorf("second step global position = %d, want 1", rm.Stages[0].Steps[1].GlobalPosition)
	}

	w = doJSON(t, router, http.MethodGet, "/api/roadmap?domain=frontend", token, nil)
	if w.Code != http.StatusOK {
		t.Errorf("get after generate: status = %d, want 200", w.Code)
	}
}

func TestGenerateValidation(t *testing.T) {
	router := testRouter(t)
	token := register(t, router)

	w := doJSON(t, router, http.MethodPost, "/api/roadmap/generate", token, gin.H{"domain": " "})
	if w.Code != http.StatusBadRequest {
		t.Errorf("empty domain: status = %d, want 400", w.Code)
	}
}

func TestGenerationFailureIsBadGateway(t *testing.T) {
	// The mock provider's queue is empty, so generation fails upstream.
	router := testRouter(t)
	token := register(t, router)

	w := doJSON(t, router, http.MethodPost, "/api/roadmap/generate", token, gin.H{"domain": "frontend"})
	if w.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", w.Code)
	}
}
