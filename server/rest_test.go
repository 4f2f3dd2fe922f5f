package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/umputun/companion/pkg/domain"
	"github.com/umputun/companion/pkg/repository"
	"github.com/umputun/companion/server/mocks"
)

func TestServer_createUserHandler(t *testing.T) {
	users := &mocks.UserStoreMock{
		CreateFunc: func(ctx context.Context, user *domain.User) error {
			user.ID = 5
			user.CreatedAt = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
			return nil
		},
	}
	srv := New(Params{Users: users})

	body := `{"name":"Sam","archetype":"tsundere","attachment_style":"anxious","tier":"plus","timezone":"Europe/Berlin","proactive_enabled":false}`
	req := httptest.NewRequest("POST", "/api/v1/users", strings.NewReader(body))
	w := httptest.NewRecorder()

	srv.createUserHandler(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp userResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, int64(5), resp.ID)
	assert.Equal(t, "Sam", resp.Name)
	assert.Equal(t, "tsundere", resp.Archetype)
	assert.Equal(t, "Dot", resp.BotName, "bot name defaults when not provided")
	assert.Equal(t, "anxious", resp.AttachmentStyle)
	assert.Equal(t, "plus", resp.Tier)
	assert.Equal(t, "Europe/Berlin", resp.Timezone)
	assert.False(t, resp.ProactiveEnabled)

	require.Len(t, users.CreateCalls(), 1)
}

func TestServer_createUserHandler_Defaults(t *testing.T) {
	users := &mocks.UserStoreMock{
		CreateFunc: func(ctx context.Context, user *domain.User) error {
			user.ID = 1
			return nil
		},
	}
	srv := New(Params{Users: users})

	req := httptest.NewRequest("POST", "/api/v1/users", strings.NewReader(`{"name":"Kai"}`))
	w := httptest.NewRecorder()

	srv.createUserHandler(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp userResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "golden_retriever", resp.Archetype)
	assert.Equal(t, "secure", resp.AttachmentStyle)
	assert.Equal(t, "free", resp.Tier)
	assert.Equal(t, "UTC", resp.Timezone)
	assert.True(t, resp.ProactiveEnabled)
}

func TestServer_createUserHandler_Errors(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		code     int
		contains string
	}{
		{"invalid json", `{broken`, http.StatusBadRequest, "invalid request body"},
		{"unknown archetype", `{"name":"Sam","archetype":"dragon"}`, http.StatusBadRequest, "unknown archetype"},
		{"unknown attachment", `{"name":"Sam","attachment_style":"clingy"}`, http.StatusBadRequest, "unknown attachment style"},
		{"unknown tier", `{"name":"Sam","tier":"gold"}`, http.StatusBadRequest, "unknown tier"},
		{"unknown timezone", `{"name":"Sam","timezone":"Mars/Olympus"}`, http.StatusBadRequest, "unknown timezone"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := &mocks.UserStoreMock{}
			srv := New(Params{Users: users})

			req := httptest.NewRequest("POST", "/api/v1/users", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			srv.createUserHandler(w, req)

			assert.Equal(t, tt.code, w.Code)
			assert.Contains(t, w.Body.String(), tt.contains)
			assert.Empty(t, users.CreateCalls())
		})
	}
}

func TestServer_getUserHandler(t *testing.T) {
	users := &mocks.UserStoreMock{
		GetFunc: func(ctx context.Context, id int64) (*domain.User, error) {
			assert.Equal(t, int64(123), id)
			return &domain.User{
				ID: 123, Name: "Sam", Archetype: "golden_retriever", BotName: "Dot",
				AttachmentStyle: domain.AttachmentSecure, Tier: domain.TierFree,
				Timezone: "UTC", ProactiveEnabled: true, MessagesToday: 4,
			}, nil
		},
	}
	srv := New(Params{Users: users})

	req := httptest.NewRequest("GET", "/api/v1/users/123", http.NoBody)
	req.SetPathValue("id", "123")
	w := httptest.NewRecorder()

	srv.getUserHandler(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp userResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(123), resp.ID)
	assert.Equal(t, "Sam", resp.Name)
	assert.Equal(t, 4, resp.MessagesToday)
}

func TestServer_getUserHandler_NotFound(t *testing.T) {
	users := &mocks.UserStoreMock{
		GetFunc: func(ctx context.Context, id int64) (*domain.User, error) {
			return nil, repository.ErrNotFound
		},
	}
	srv := New(Params{Users: users})

	req := httptest.NewRequest("GET", "/api/v1/users/999", http.NoBody)
	req.SetPathValue("id", "999")
	w := httptest.NewRecorder()

	srv.getUserHandler(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "user not found")
}

func TestServer_getUserHandler_BadID(t *testing.T) {
	srv := New(Params{Users: &mocks.UserStoreMock{}})

	req := httptest.NewRequest("GET", "/api/v1/users/abc", http.NoBody)
	req.SetPathValue("id", "abc")
	w := httptest.NewRecorder()

	srv.getUserHandler(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid user ID")
}

func TestServer_updateUserHandler(t *testing.T) {
	users := &mocks.UserStoreMock{
		GetFunc: func(ctx context.Context, id int64) (*domain.User, error) {
			return &domain.User{
				ID: 7, Name: "Alex", Archetype: "golden_retriever", BotName: "Dot",
				AttachmentStyle: domain.AttachmentSecure, Tier: domain.TierFree,
				Timezone: "UTC", ProactiveEnabled: true,
			}, nil
		},
		UpdateFunc: func(ctx context.Context, user *domain.User) error { return nil },
	}
	srv := New(Params{Users: users})

	body := `{"bot_name":"Mochi","tier":"premium","proactive_enabled":false}`
	req := httptest.NewRequest("PUT", "/api/v1/users/7", strings.NewReader(body))
	req.SetPathValue("id", "7")
	w := httptest.NewRecorder()

	srv.updateUserHandler(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp userResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Mochi", resp.BotName)
	assert.Equal(t, "premium", resp.Tier)
	assert.False(t, resp.ProactiveEnabled)
	assert.Equal(t, "Alex", resp.Name, "untouched fields survive")

	require.Len(t, users.UpdateCalls(), 1)
	assert.Equal(t, "Mochi", users.UpdateCalls()[0].User.BotName)
	assert.Equal(t, domain.TierPremium, users.UpdateCalls()[0].User.Tier)
}

func TestServer_updateUserHandler_Errors(t *testing.T) {
	t.Run("user not found", func(t *testing.T) {
		users := &mocks.UserStoreMock{
			GetFunc: func(ctx context.Context, id int64) (*domain.User, error) {
				return nil, repository.ErrNotFound
			},
		}
		srv := New(Params{Users: users})

		req := httptest.NewRequest("PUT", "/api/v1/users/9", strings.NewReader(`{"name":"X"}`))
		req.SetPathValue("id", "9")
		w := httptest.NewRecorder()

		srv.updateUserHandler(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("bad timezone", func(t *testing.T) {
		users := &mocks.UserStoreMock{
			GetFunc: func(ctx context.Context, id int64) (*domain.User, error) {
				return &domain.User{ID: 9, Name: "Alex"}, nil
			},
		}
		srv := New(Params{Users: users})

		req := httptest.NewRequest("PUT", "/api/v1/users/9", strings.NewReader(`{"timezone":"Nope/Nope"}`))
		req.SetPathValue("id", "9")
		w := httptest.NewRecorder()

		srv.updateUserHandler(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, users.UpdateCalls())
	})
}

func TestServer_messageHandler(t *testing.T) {
	users := &mocks.UserStoreMock{
		GetFunc: func(ctx context.Context, id int64) (*domain.User, error) {
			return &domain.User{ID: 1, Name: "Sam", Archetype: "golden_retriever"}, nil
		},
	}
	processor := &mocks.ProcessorMock{
		ProcessMessageFunc: func(ctx context.Context, user *domain.User, raw string) (string, error) {
			assert.Equal(t, int64(1), user.ID)
			assert.Equal(t, "went for a run today", raw)
			return "nice!! how far did you go??", nil
		},
	}
	srv := New(Params{Users: users, Processor: processor})

	req := httptest.NewRequest("POST", "/api/v1/users/1/message", strings.NewReader(`{"message":"went for a run today"}`))
	req.SetPathValue("id", "1")
	w := httptest.NewRecorder()

	srv.messageHandler(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp messageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "nice!! how far did you go??", resp.Reply)
	require.Len(t, processor.ProcessMessageCalls(), 1)
}

func TestServer_messageHandler_Errors(t *testing.T) {
	t.Run("empty message", func(t *testing.T) {
		users := &mocks.UserStoreMock{
			GetFunc: func(ctx context.Context, id int64) (*domain.User, error) {
				return &domain.User{ID: 1}, nil
			},
		}
		processor := &mocks.ProcessorMock{}
		srv := New(Params{Users: users, Processor: processor})

		req := httptest.NewRequest("POST", "/api/v1/users/1/message", strings.NewReader(`{"message":"   "}`))
		req.SetPathValue("id", "1")
		w := httptest.NewRecorder()

		srv.messageHandler(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "message is required")
		assert.Empty(t, processor.ProcessMessageCalls())
	})

	t.Run("message too long", func(t *testing.T) {
		users := &mocks.UserStoreMock{
			GetFunc: func(ctx context.Context, id int64) (*domain.User, error) {
				return &domain.User{ID: 1}, nil
			},
		}
		processor := &mocks.ProcessorMock{}
		srv := New(Params{Users: users, Processor: processor, MaxMessageLen: 32})

		req := httptest.NewRequest("POST", "/api/v1/users/1/message",
			strings.NewReader(`{"message":"`+strings.Repeat("a", 64)+`"}`))
		req.SetPathValue("id", "1")
		w := httptest.NewRecorder()

		srv.messageHandler(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "message too long")
		assert.Empty(t, processor.ProcessMessageCalls())
	})

	t.Run("user not found", func(t *testing.T) {
		users := &mocks.UserStoreMock{
			GetFunc: func(ctx context.Context, id int64) (*domain.User, error) {
				return nil, repository.ErrNotFound
			},
		}
		srv := New(Params{Users: users, Processor: &mocks.ProcessorMock{}})

		req := httptest.NewRequest("POST", "/api/v1/users/404/message", strings.NewReader(`{"message":"hi"}`))
		req.SetPathValue("id", "404")
		w := httptest.NewRecorder()

		srv.messageHandler(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("processor failure", func(t *testing.T) {
		users := &mocks.UserStoreMock{
			GetFunc: func(ctx context.Context, id int64) (*domain.User, error) {
				return &domain.User{ID: 1}, nil
			},
		}
		processor := &mocks.ProcessorMock{
			ProcessMessageFunc: func(ctx context.Context, user *domain.User, raw string) (string, error) {
				return "", assert.AnError
			},
		}
		srv := New(Params{Users: users, Processor: processor})

		req := httptest.NewRequest("POST", "/api/v1/users/1/message", strings.NewReader(`{"message":"hi"}`))
		req.SetPathValue("id", "1")
		w := httptest.NewRecorder()

		srv.messageHandler(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "failed to process message")
	})

	t.Run("degraded to fallback", func(t *testing.T) {
		users := &mocks.UserStoreMock{
			GetFunc: func(ctx context.Context, id int64) (*domain.User, error) {
				return &domain.User{ID: 1}, nil
			},
		}
		processor := &mocks.ProcessorMock{
			ProcessMessageFunc: func(ctx context.Context, user *domain.User, raw string) (string, error) {
				return "sorry, my brain glitched for a second. what were you saying?", assert.AnError
			},
		}
		srv := New(Params{Users: users, Processor: processor})

		req := httptest.NewRequest("POST", "/api/v1/users/1/message", strings.NewReader(`{"message":"hi"}`))
		req.SetPathValue("id", "1")
		w := httptest.NewRecorder()

		srv.messageHandler(w, req)

		assert.Equal(t, http.StatusOK, w.Code, "fallback text is still a reply")
		assert.Contains(t, w.Body.String(), "my brain glitched")
	})

	t.Run("message sanitized to nothing", func(t *testing.T) {
		users := &mocks.UserStoreMock{
			GetFunc: func(ctx context.Context, id int64) (*domain.User, error) {
				return &domain.User{ID: 1}, nil
			},
		}
		processor := &mocks.ProcessorMock{
			ProcessMessageFunc: func(ctx context.Context, user *domain.User, raw string) (string, error) {
				return "", nil // tag-only input strips to nothing
			},
		}
		srv := New(Params{Users: users, Processor: processor})

		req := httptest.NewRequest("POST", "/api/v1/users/1/message", strings.NewReader(`{"message":"<script></script>"}`))
		req.SetPathValue("id", "1")
		w := httptest.NewRecorder()

		srv.messageHandler(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "no usable text")
	})
}

func TestServer_messageHandler_RateLimited(t *testing.T) {
	users := &mocks.UserStoreMock{
		GetFunc: func(ctx context.Context, id int64) (*domain.User, error) {
			return &domain.User{ID: 1}, nil
		},
	}
	processor := &mocks.ProcessorMock{
		ProcessMessageFunc: func(ctx context.Context, user *domain.User, raw string) (string, error) {
			return "ok", nil
		},
	}
	srv := New(Params{
		Users:        users,
		Processor:    processor,
		MessageRate:  rate.Every(time.Hour),
		MessageBurst: 2,
	})

	send := func(msg string) int {
		req := httptest.NewRequest("POST", "/api/v1/users/1/message", strings.NewReader(`{"message":"`+msg+`"}`))
		req.SetPathValue("id", "1")
		w := httptest.NewRecorder()
		srv.messageHandler(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, send("first"))
	assert.Equal(t, http.StatusOK, send("second"))
	assert.Equal(t, http.StatusTooManyRequests, send("third"), "burst exhausted")
	assert.Len(t, processor.ProcessMessageCalls(), 2)
}

func TestServer_messageHandler_DuplicateSuppressed(t *testing.T) {
	users := &mocks.UserStoreMock{
		GetFunc: func(ctx context.Context, id int64) (*domain.User, error) {
			return &domain.User{ID: 1}, nil
		},
	}
	processor := &mocks.ProcessorMock{
		ProcessMessageFunc: func(ctx context.Context, user *domain.User, raw string) (string, error) {
			return "ok", nil
		},
	}
	srv := New(Params{Users: users, Processor: processor, DedupWindow: 50 * time.Millisecond})

	send := func(msg string) int {
		req := httptest.NewRequest("POST", "/api/v1/users/1/message", strings.NewReader(`{"message":"`+msg+`"}`))
		req.SetPathValue("id", "1")
		w := httptest.NewRecorder()
		srv.messageHandler(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, send("hello hello"))
	assert.Equal(t, http.StatusTooManyRequests, send("hello hello"), "identical message inside the window")
	assert.Equal(t, http.StatusOK, send("something else"))

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, http.StatusOK, send("something else"), "window expired")
	assert.Len(t, processor.ProcessMessageCalls(), 3)
}

func TestServer_moodsHandler(t *testing.T) {
	turns := &mocks.TurnStoreMock{
		RecentMoodsFunc: func(ctx context.Context, userID int64, limit int) ([]domain.Mood, error) {
			return []domain.Mood{domain.MoodHappy, domain.MoodTired}, nil
		},
	}
	srv := New(Params{Turns: turns})

	tests := []struct {
		name  string
		query string
		limit int
	}{
		{"default limit", "", 10},
		{"explicit limit", "?limit=3", 3},
		{"limit too large falls back", "?limit=500", 10},
		{"garbage limit falls back", "?limit=abc", 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/api/v1/users/1/moods"+tt.query, http.NoBody)
			req.SetPathValue("id", "1")
			w := httptest.NewRecorder()

			srv.moodsHandler(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Body.String(), "happy")
			assert.Contains(t, w.Body.String(), "tired")

			calls := turns.RecentMoodsCalls()
			assert.Equal(t, tt.limit, calls[len(calls)-1].Limit)
		})
	}
}

func TestServer_proactivePreviewHandler(t *testing.T) {
	t.Run("allowed", func(t *testing.T) {
		users := &mocks.UserStoreMock{
			GetFunc: func(ctx context.Context, id int64) (*domain.User, error) {
				return &domain.User{ID: 1, Name: "Sam", Archetype: "golden_retriever"}, nil
			},
		}
		evaluator := &mocks.EvaluatorMock{
			GenerateFunc: func(ctx context.Context, user *domain.User) (*domain.ProactiveResult, error) {
				return &domain.ProactiveResult{
					Decision: domain.Allow(),
					Text:     "morning!! did you sleep ok??",
					Category: "morning_golden_retriever",
				}, nil
			},
		}
		srv := New(Params{Users: users, Evaluator: evaluator})

		req := httptest.NewRequest("GET", "/api/v1/users/1/proactive", http.NoBody)
		req.SetPathValue("id", "1")
		w := httptest.NewRecorder()

		srv.proactivePreviewHandler(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp proactivePreviewResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Allowed)
		assert.Empty(t, resp.Gate)
		assert.Equal(t, "morning!! did you sleep ok??", resp.Text)
		assert.Equal(t, "morning_golden_retriever", resp.Category)
	})

	t.Run("blocked by cooldown", func(t *testing.T) {
		users := &mocks.UserStoreMock{
			GetFunc: func(ctx context.Context, id int64) (*domain.User, error) {
				return &domain.User{ID: 1}, nil
			},
		}
		evaluator := &mocks.EvaluatorMock{
			GenerateFunc: func(ctx context.Context, user *domain.User) (*domain.ProactiveResult, error) {
				return &domain.ProactiveResult{
					Decision: domain.Block(domain.GateCooldown, domain.BlockCooldownNotMet, "1.5h < 2h"),
				}, nil
			},
		}
		srv := New(Params{Users: users, Evaluator: evaluator})

		req := httptest.NewRequest("GET", "/api/v1/users/1/proactive", http.NoBody)
		req.SetPathValue("id", "1")
		w := httptest.NewRecorder()

		srv.proactivePreviewHandler(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp proactivePreviewResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.Allowed)
		assert.Equal(t, "cooldown", resp.Gate)
		assert.Equal(t, "cooldown_not_met", resp.Reason)
		assert.Equal(t, "1.5h < 2h", resp.Detail)
		assert.Empty(t, resp.Text)
	})

	t.Run("evaluator failure", func(t *testing.T) {
		users := &mocks.UserStoreMock{
			GetFunc: func(ctx context.Context, id int64) (*domain.User, error) {
				return &domain.User{ID: 1}, nil
			},
		}
		evaluator := &mocks.EvaluatorMock{
			GenerateFunc: func(ctx context.Context, user *domain.User) (*domain.ProactiveResult, error) {
				return nil, assert.AnError
			},
		}
		srv := New(Params{Users: users, Evaluator: evaluator})

		req := httptest.NewRequest("GET", "/api/v1/users/1/proactive", http.NoBody)
		req.SetPathValue("id", "1")
		w := httptest.NewRecorder()

		srv.proactivePreviewHandler(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestServer_listBoundariesHandler(t *testing.T) {
	boundaries := &mocks.BoundaryStoreMock{
		ListForUserFunc: func(ctx context.Context, userID int64) ([]domain.Boundary, error) {
			assert.Equal(t, int64(1), userID)
			return []domain.Boundary{
				{ID: 2, UserID: 1, Type: domain.BoundaryTopic, Value: "my ex", Active: true},
				{ID: 1, UserID: 1, Type: domain.BoundaryTiming, Value: "mornings", Active: false},
			}, nil
		},
	}
	srv := New(Params{Boundaries: boundaries})

	req := httptest.NewRequest("GET", "/api/v1/users/1/boundaries", http.NoBody)
	req.SetPathValue("id", "1")
	w := httptest.NewRecorder()

	srv.listBoundariesHandler(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Boundaries []boundaryResponse `json:"boundaries"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Boundaries, 2)
	assert.Equal(t, "topic", resp.Boundaries[0].Type)
	assert.Equal(t, "my ex", resp.Boundaries[0].Value)
	assert.True(t, resp.Boundaries[0].Active)
	assert.False(t, resp.Boundaries[1].Active)
}

func TestServer_createBoundaryHandler(t *testing.T) {
	boundaries := &mocks.BoundaryStoreMock{
		ExistsActiveFunc: func(ctx context.Context, userID int64, btype domain.BoundaryType, value string) (bool, error) {
			return false, nil
		},
		CreateFunc: func(ctx context.Context, b domain.Boundary) (int64, error) {
			assert.Equal(t, int64(1), b.UserID)
			assert.Equal(t, domain.BoundaryTopic, b.Type)
			assert.Equal(t, "my ex", b.Value, "value is lowercased and trimmed")
			assert.True(t, b.Active)
			return 7, nil
		},
	}
	srv := New(Params{Boundaries: boundaries})

	req := httptest.NewRequest("POST", "/api/v1/users/1/boundaries", strings.NewReader(`{"type":"topic","value":"  My Ex  "}`))
	req.SetPathValue("id", "1")
	w := httptest.NewRecorder()

	srv.createBoundaryHandler(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp boundaryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, "topic", resp.Type)
	assert.Equal(t, "my ex", resp.Value)
	assert.True(t, resp.Active)
}

func TestServer_createBoundaryHandler_Duplicate(t *testing.T) {
	boundaries := &mocks.BoundaryStoreMock{
		ExistsActiveFunc: func(ctx context.Context, userID int64, btype domain.BoundaryType, value string) (bool, error) {
			assert.Equal(t, domain.BoundaryTopic, btype)
			assert.Equal(t, "work", value)
			return true, nil
		},
	}
	srv := New(Params{Boundaries: boundaries})

	req := httptest.NewRequest("POST", "/api/v1/users/1/boundaries", strings.NewReader(`{"type":"topic","value":"work"}`))
	req.SetPathValue("id", "1")
	w := httptest.NewRecorder()

	srv.createBoundaryHandler(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "boundary already set")
	assert.Empty(t, boundaries.CreateCalls())
}

func TestServer_createBoundaryHandler_Errors(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		contains string
	}{
		{"missing value", `{"type":"topic","value":"   "}`, "boundary value is required"},
		{"unknown type", `{"type":"vibes","value":"something"}`, "unknown boundary type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			boundaries := &mocks.BoundaryStoreMock{}
			srv := New(Params{Boundaries: boundaries})

			req := httptest.NewRequest("POST", "/api/v1/users/1/boundaries", strings.NewReader(tt.body))
			req.SetPathValue("id", "1")
			w := httptest.NewRecorder()

			srv.createBoundaryHandler(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), tt.contains)
			assert.Empty(t, boundaries.CreateCalls())
		})
	}
}

func TestServer_deleteBoundaryHandler(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		boundaries := &mocks.BoundaryStoreMock{
			DeleteFunc: func(ctx context.Context, userID, boundaryID int64) (bool, error) {
				assert.Equal(t, int64(1), userID)
				assert.Equal(t, int64(7), boundaryID)
				return true, nil
			},
		}
		srv := New(Params{Boundaries: boundaries})

		req := httptest.NewRequest("DELETE", "/api/v1/users/1/boundaries/7", http.NoBody)
		req.SetPathValue("id", "1")
		req.SetPathValue("bid", "7")
		w := httptest.NewRecorder()

		srv.deleteBoundaryHandler(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"deleted":true`)
	})

	t.Run("not found", func(t *testing.T) {
		boundaries := &mocks.BoundaryStoreMock{
			DeleteFunc: func(ctx context.Context, userID, boundaryID int64) (bool, error) {
				return false, nil
			},
		}
		srv := New(Params{Boundaries: boundaries})

		req := httptest.NewRequest("DELETE", "/api/v1/users/1/boundaries/99", http.NoBody)
		req.SetPathValue("id", "1")
		req.SetPathValue("bid", "99")
		w := httptest.NewRecorder()

		srv.deleteBoundaryHandler(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "boundary not found")
	})
}
