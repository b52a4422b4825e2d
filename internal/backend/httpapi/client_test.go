package httpapi_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"todo/internal/backend/httpapi"
	"todo/internal/service"
)

func TestNew_DefaultEndpoint(t *testing.T) {
	c := httpapi.New("")
	if c.Endpoint() != httpapi.DefaultEndpoint {
		t.Errorf("expected %q, got %q", httpapi.DefaultEndpoint, c.Endpoint())
	}
}

func TestListTasks_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		if r.URL.Path != "/" {
			t.Errorf("expected path /, got %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `[{"title":"A","description":""},{"id":"2","title":"B","description":"x"}]`)
	}))
	defer srv.Close()

	c := httpapi.NewWithHTTPClient(srv.URL+"/", srv.Client())
	tasks, err := c.ListTasks(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []service.Task{
		{Title: "A", Description: ""},
		{ID: "2", Title: "B", Description: "x"},
	}
	if len(tasks) != len(want) {
		t.Fatalf("expected %d tasks, got %d", len(want), len(tasks))
	}
	for i := range want {
		if tasks[i] != want[i] {
			t.Errorf("task %d: expected %+v, got %+v", i, want[i], tasks[i])
		}
	}
}

func TestListTasks_EmptyArray(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `[]`)
	}))
	defer srv.Close()

	c := httpapi.NewWithHTTPClient(srv.URL+"/", srv.Client())
	tasks, err := c.ListTasks(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tasks == nil || len(tasks) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", tasks)
	}
}

func TestListTasks_NonOKStatus(t *testing.T) {
	for _, code := range []int{http.StatusCreated, http.StatusNotFound, http.StatusInternalServerError} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(code)
			io.WriteString(w, `[]`)
		}))

		c := httpapi.NewWithHTTPClient(srv.URL+"/", srv.Client())
		_, err := c.ListTasks(context.Background())
		srv.Close()

		var se *service.StatusError
		if !errors.As(err, &se) {
			t.Fatalf("status %d: expected StatusError, got %v", code, err)
		}
		if se.Code != code || se.Op != "list" {
			t.Errorf("status %d: unexpected error %+v", code, se)
		}
	}
}

func TestListTasks_InvalidJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{not json`)
	}))
	defer srv.Close()

	c := httpapi.NewWithHTTPClient(srv.URL+"/", srv.Client())
	if _, err := c.ListTasks(context.Background()); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestListTasks_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL + "/"
	srv.Close()

	c := httpapi.New(url)
	_, err := c.ListTasks(context.Background())
	if err == nil {
		t.Fatal("expected transport error")
	}
	var se *service.StatusError
	if errors.As(err, &se) {
		t.Errorf("transport failure must not be a StatusError: %v", err)
	}
}

func TestCreateTask_Success(t *testing.T) {
	var gotBody map[string]string
	var gotContentType string
	calls := 0

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		gotContentType = r.Header.Get("Content-Type")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	c := httpapi.NewWithHTTPClient(srv.URL+"/", srv.Client())
	err := c.CreateTask(context.Background(), service.Task{ID: "ignored", Title: "B", Description: "x"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if calls != 1 {
		t.Errorf("expected 1 request, got %d", calls)
	}
	if gotContentType != "application/json" {
		t.Errorf("expected Content-Type application/json, got %q", gotContentType)
	}
	want := map[string]string{"title": "B", "description": "x"}
	if len(gotBody) != len(want) || gotBody["title"] != "B" || gotBody["description"] != "x" {
		t.Errorf("expected body %v, got %v", want, gotBody)
	}
}

func TestCreateTask_OKIsNotCreated(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := httpapi.NewWithHTTPClient(srv.URL+"/", srv.Client())
	err := c.CreateTask(context.Background(), service.Task{Title: "B"})

	var se *service.StatusError
	if !errors.As(err, &se) {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if se.Code != http.StatusOK || se.Op != "create" {
		t.Errorf("unexpected error %+v", se)
	}
}

func TestCreateTask_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := httpapi.NewWithHTTPClient(srv.URL+"/", srv.Client())
	if err := c.CreateTask(ctx, service.Task{Title: "B"}); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
