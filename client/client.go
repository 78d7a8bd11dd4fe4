package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"

	"github.com/packtime/api/catalog"
)

// Client talks to the course api. The jwt session rides on a cookie
// jar so auth works the same way it does in a browser.
type Client struct {
	BaseURL string
	http    *http.Client
}

// New creates a client for the api at baseURL.
func New(baseURL string) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	return &Client{
		BaseURL: baseURL,
		http:    &http.Client{Jar: jar},
	}, nil
}

// ErrorState is the result of any failed api call. Every failure maps
// to one of these so callers always have something renderable, the app
// stays usable for a retry.
type ErrorState struct {
	Op      string
	Message string
	// Status is the http status code, or zero for transport failures.
	Status int
}

func (e *ErrorState) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}
	return fmt.Sprintf("%s: %s (status %d)", e.Op, e.Message, e.Status)
}

// Transport reports whether the failure happened before any response
// arrived.
func (e *ErrorState) Transport() bool { return e.Status == 0 }

// Department is one entry of the subject filter dropdown.
type Department struct {
	ID      int    `json:"id"`
	Code    string `json:"department_code"`
	College string `json:"college"`
}

// Term is a school term the backend has sections for.
type Term struct {
	ID          int    `json:"id"`
	SessionCode string `json:"session_code"`
	Name        string `json:"name"`
}

// AuthInfo is the startup auth check result.
type AuthInfo struct {
	Authenticated bool `json:"authenticated"`
	User          *struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	} `json:"user"`
}

// SectionDetail is the expanded record for a single section.
type SectionDetail struct {
	CourseCode      string              `json:"course_code"`
	Level           string              `json:"level"`
	CourseCareer    string              `json:"course_career"`
	InstructionMode string              `json:"instruction_mode"`
	SectionInfo     json.RawMessage     `json:"section_info"`
	CourseInfo      json.RawMessage     `json:"course_info"`
	Instructors     []map[string]string `json:"instructors"`
}

// Search runs a section search with the given parameters.
func (c *Client) Search(params url.Values) ([]catalog.Section, error) {
	var body struct {
		Status   string            `json:"status"`
		Sections []catalog.Section `json:"sections"`
		Count    int               `json:"count"`
	}
	path := "/api/v1/courses/search"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}
	status, err := c.get("search", path, &body)
	if err != nil {
		return nil, err
	}
	if body.Status != "success" {
		return nil, &ErrorState{Op: "search", Message: "search failed", Status: status}
	}
	return body.Sections, nil
}

// Departments fetches the subject filter options.
func (c *Client) Departments() ([]Department, error) {
	var body struct {
		Status      string       `json:"status"`
		Departments []Department `json:"departments"`
	}
	status, err := c.get("departments", "/api/v1/departments", &body)
	if err != nil {
		return nil, err
	}
	if body.Status != "success" {
		return nil, &ErrorState{Op: "departments", Message: "failed to load departments", Status: status}
	}
	return body.Departments, nil
}

// Terms fetches the terms the backend knows about.
func (c *Client) Terms() ([]Term, error) {
	var body struct {
		Status string `json:"status"`
		Terms  []Term `json:"terms"`
	}
	if _, err := c.get("terms", "/api/v1/terms", &body); err != nil {
		return nil, err
	}
	return body.Terms, nil
}

// SectionDetails fetches one section with its course, term, and
// instructor info.
func (c *Client) SectionDetails(id int) (*SectionDetail, error) {
	var body struct {
		Status  string        `json:"status"`
		Section SectionDetail `json:"section"`
	}
	_, err := c.get("section", "/api/v1/sections/"+strconv.Itoa(id), &body)
	if err != nil {
		return nil, err
	}
	return &body.Section, nil
}

// CSRFToken fetches a fresh single use token for the next mutating
// request.
func (c *Client) CSRFToken() (string, error) {
	var body struct {
		Token string `json:"csrf_token"`
	}
	if _, err := c.get("csrf", "/api/v1/csrf-token", &body); err != nil {
		return "", err
	}
	return body.Token, nil
}

// AuthStatus asks the backend whether the current session cookie is
// still good. Called once at startup to pick the first view.
func (c *Client) AuthStatus() (*AuthInfo, error) {
	var info AuthInfo
	if _, err := c.get("auth status", "/api/v1/auth/status", &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// Login starts a cookie session.
func (c *Client) Login(name, password string) error {
	return c.send("login", "POST", "/api/v1/auth/login", map[string]string{
		"name":     name,
		"password": password,
	}, nil)
}

// Logout ends the session.
func (c *Client) Logout() error {
	return c.send("logout", "POST", "/api/v1/auth/logout", nil, nil)
}

// Signup creates an account and logs it in.
func (c *Client) Signup(name, email, password string) error {
	return c.send("signup", "POST", "/api/v1/auth/signup", map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
	}, nil)
}

// Planner fetches the saved section list.
func (c *Client) Planner() ([]catalog.Section, error) {
	var body struct {
		Status   string            `json:"status"`
		Sections []catalog.Section `json:"sections"`
	}
	status, err := c.get("planner", "/api/v1/planner", &body)
	if err != nil {
		return nil, err
	}
	if body.Status != "success" {
		return nil, &ErrorState{Op: "planner", Message: "failed to load planner", Status: status}
	}
	return body.Sections, nil
}

// PlannerAdd saves a section to the planner.
func (c *Client) PlannerAdd(sectionID int) error {
	return c.send("planner add", "POST", "/api/v1/planner/"+strconv.Itoa(sectionID), nil, nil)
}

// PlannerRemove drops a section from the planner.
func (c *Client) PlannerRemove(sectionID int) error {
	return c.send("planner remove", "DELETE", "/api/v1/planner/"+strconv.Itoa(sectionID), nil, nil)
}

// get runs a GET request and reports the http status code so callers
// can label body-level failures with the code the server actually sent.
func (c *Client) get(op, path string, dst interface{}) (int, error) {
	resp, err := c.http.Get(c.BaseURL + path)
	if err != nil {
		return 0, &ErrorState{Op: op, Message: err.Error()}
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return resp.StatusCode, failure(op, resp)
	}
	if err = json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return resp.StatusCode, &ErrorState{Op: op, Message: "bad response body", Status: resp.StatusCode}
	}
	return resp.StatusCode, nil
}

// send issues a mutating request with a fresh csrf token attached.
func (c *Client) send(op, method, path string, body, dst interface{}) error {
	tok, err := c.CSRFToken()
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if body != nil {
		if err = json.NewEncoder(&buf).Encode(body); err != nil {
			return &ErrorState{Op: op, Message: err.Error()}
		}
	}
	req, err := http.NewRequest(method, c.BaseURL+path, &buf)
	if err != nil {
		return &ErrorState{Op: op, Message: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-CSRFToken", tok)
	resp, err := c.http.Do(req)
	if err != nil {
		return &ErrorState{Op: op, Message: err.Error()}
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return failure(op, resp)
	}
	if dst != nil {
		if err = json.NewDecoder(resp.Body).Decode(dst); err != nil {
			return &ErrorState{Op: op, Message: "bad response body", Status: resp.StatusCode}
		}
	}
	return nil
}

// failure digs an error message out of a non-2xx response body. The
// backend answers with {"error": ...} but login and logout can answer
// with {"message": ...}.
func failure(op string, resp *http.Response) error {
	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	msg := resp.Status
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		if body.Error != "" {
			msg = body.Error
		} else if body.Message != "" {
			msg = body.Message
		}
	}
	return &ErrorState{Op: op, Message: msg, Status: resp.StatusCode}
}
