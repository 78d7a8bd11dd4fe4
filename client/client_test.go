package client

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/packtime/api/catalog"
)

func testClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	ts := httptest.NewServer(handler)
	c, err := New(ts.URL)
	if err != nil {
		ts.Close()
		t.Fatal(err)
	}
	return c, ts
}

func TestSearch_SendsOnlyAppliedFilters(t *testing.T) {
	var gotQuery map[string][]string
	c, ts := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/courses/search" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		gotQuery = r.URL.Query()
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status": "success",
			"sections": []catalog.Section{
				{SectionID: 1, CourseCode: "CS 101", CourseTitle: "Introduction to Computer Science"},
			},
			"count": 1,
		})
	}))
	defer ts.Close()

	f := allDefaults()
	f.Department = "CS"
	f.Term = "Fall 2025"
	sections, err := c.Search(BuildSearchParams(f))
	if err != nil {
		t.Fatal(err)
	}
	if len(sections) != 1 || sections[0].CourseCode != "CS 101" {
		t.Errorf("wrong sections: %+v", sections)
	}
	if len(gotQuery) != 2 {
		t.Errorf("expected exactly department and term, got %v", gotQuery)
	}
	if gotQuery["department"][0] != "CS" || gotQuery["term"][0] != "2258" {
		t.Errorf("wrong query: %v", gotQuery)
	}
}

func TestSearch_Failures(t *testing.T) {
	status := 500
	body := `{"error":"could not search sections"}`
	c, ts := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		fmt.Fprint(w, body)
	}))
	defer ts.Close()

	// non-2xx with an error field in the body
	_, err := c.Search(nil)
	e, ok := err.(*ErrorState)
	if !ok {
		t.Fatalf("expected an ErrorState, got %T", err)
	}
	if e.Status != 500 || e.Message != "could not search sections" {
		t.Errorf("wrong error: %+v", e)
	}
	if e.Transport() {
		t.Error("an http response is not a transport failure")
	}

	// 200 but status != success is still a failure
	status = 200
	body = `{"status":"error","sections":[],"count":0}`
	if _, err = c.Search(nil); err == nil {
		t.Error("expected an error for a non-success status")
	}

	// the error keeps the code the server answered with
	status = 202
	_, err = c.Search(nil)
	e, ok = err.(*ErrorState)
	if !ok {
		t.Fatalf("expected an ErrorState, got %T", err)
	}
	if e.Status != 202 {
		t.Errorf("expected status 202 carried through, got %d", e.Status)
	}

	// transport failure
	ts.Close()
	_, err = c.Search(nil)
	e, ok = err.(*ErrorState)
	if !ok {
		t.Fatalf("expected an ErrorState, got %T", err)
	}
	if !e.Transport() {
		t.Errorf("expected a transport failure, got %+v", e)
	}
}

func TestSearcher_ErrorClearsResults(t *testing.T) {
	fail := false
	c, ts := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail {
			w.WriteHeader(500)
			fmt.Fprint(w, `{"error":"boom"}`)
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":   "success",
			"sections": []catalog.Section{{SectionID: 1, CourseCode: "CS 101"}},
			"count":    1,
		})
	}))
	defer ts.Close()

	s := NewSearcher(c)
	resolved := make(chan struct{}, 2)
	s.OnUpdate = func() { resolved <- struct{}{} }

	s.Search(allDefaults())
	waitFor(t, resolved)
	sections, err := s.Results()
	if err != nil || len(sections) != 1 {
		t.Fatalf("expected one result, got %v, %v", sections, err)
	}

	fail = true
	s.Search(allDefaults())
	waitFor(t, resolved)
	sections, err = s.Results()
	if err == nil {
		t.Error("expected an error state after a failed search")
	}
	if len(sections) != 0 {
		t.Errorf("failed search should clear results, got %v", sections)
	}
	if s.Loading() {
		t.Error("nothing should be in flight")
	}
}

func waitFor(t *testing.T, ch <-chan struct{}) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(5 * time.Second):
		t.Fatal("search never resolved")
	}
}

func TestMutations_CarryCSRFToken(t *testing.T) {
	const token = "one-time-token"
	var (
		sawLogin  bool
		sawAdd    bool
		sawRemove bool
	)
	c, ts := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/csrf-token":
			json.NewEncoder(w).Encode(map[string]string{"csrf_token": token})
			return
		case "/api/v1/auth/login":
			sawLogin = true
		case "/api/v1/planner/12":
			if r.Method == "DELETE" {
				sawRemove = true
			} else {
				sawAdd = true
			}
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("X-CSRFToken"); got != token {
			t.Errorf("%s: wrong csrf header %q", r.URL.Path, got)
		}
		json.NewEncoder(w).Encode(map[string]string{"status": "success"})
	}))
	defer ts.Close()

	if err := c.Login("user", "password"); err != nil {
		t.Error(err)
	}
	if err := c.PlannerAdd(12); err != nil {
		t.Error(err)
	}
	if err := c.PlannerRemove(12); err != nil {
		t.Error(err)
	}
	if !sawLogin || !sawAdd || !sawRemove {
		t.Error("not every mutation reached the server")
	}
}

func TestAuthStatus(t *testing.T) {
	authed := false
	c, ts := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if authed {
			fmt.Fprint(w, `{"authenticated":true,"user":{"name":"test","email":"t@t.com"}}`)
		} else {
			fmt.Fprint(w, `{"authenticated":false,"user":null}`)
		}
	}))
	defer ts.Close()

	info, err := c.AuthStatus()
	if err != nil {
		t.Fatal(err)
	}
	if info.Authenticated || info.User != nil {
		t.Errorf("expected an anonymous status, got %+v", info)
	}
	authed = true
	info, err = c.AuthStatus()
	if err != nil {
		t.Fatal(err)
	}
	if !info.Authenticated || info.User == nil || info.User.Name != "test" {
		t.Errorf("expected an authenticated status, got %+v", info)
	}
}

func TestPlannerSet(t *testing.T) {
	p := NewPlannerSet()
	p.Load([]catalog.Section{{SectionID: 1}, {SectionID: 7}})
	if p.Len() != 2 || !p.Has("1") || !p.Has("7") {
		t.Errorf("bad planner set after load")
	}
	p.Add("9")
	p.Remove("1")
	if p.Has("1") || !p.Has("9") {
		t.Error("add/remove did not update membership")
	}
	d := catalog.NewDisplayCourse(&catalog.Section{SectionID: 7, CourseCode: "CS 101"})
	if !p.Has(d.ID) {
		t.Error("display course id should match the planner key space")
	}
}
