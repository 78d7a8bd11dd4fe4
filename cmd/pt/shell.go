package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"github.com/packtime/api/catalog"
	"github.com/packtime/api/client"
)

// The app views. Every command either acts inside the current view or
// switches to another one.
const (
	viewLogin    = "login"
	viewHome     = "home"
	viewSearch   = "search"
	viewPlanner  = "planner"
	viewPrograms = "programs"
	viewSettings = "settings"
)

type shell struct {
	rl       *readline.Instance
	client   *client.Client
	filters  *client.FilterState
	searcher *client.Searcher
	planner  *client.PlannerSet

	view    string
	user    string
	offline bool
}

func newShell(rl *readline.Instance, c *client.Client, offline bool) *shell {
	s := &shell{
		rl:       rl,
		client:   c,
		filters:  client.NewFilterState(),
		searcher: client.NewSearcher(c),
		planner:  client.NewPlannerSet(),
		view:     viewLogin,
		offline:  offline,
	}
	s.searcher.OnUpdate = func() {
		s.renderResults()
		s.rl.Refresh()
	}
	return s
}

// start runs the startup auth check and picks the first view.
func (s *shell) start() {
	fmt.Println("packtime: course search and planning")
	if s.offline {
		fmt.Println("Offline mode, browsing the bundled course list.")
		s.view = viewHome
		s.setPrompt()
		return
	}
	info, err := s.client.AuthStatus()
	if err != nil {
		fmt.Println("Could not reach the server, switching to offline mode.")
		s.offline = true
		s.view = viewHome
	} else if info.Authenticated {
		if info.User != nil {
			s.user = info.User.Name
		}
		fmt.Printf("Welcome back, %s.\n", s.user)
		s.view = viewHome
	} else {
		fmt.Println("Use 'login <name>' or 'signup <name> <email>' to start.")
	}
	s.setPrompt()
}

func (s *shell) setPrompt() {
	s.rl.SetPrompt(fmt.Sprintf("pt:%s> ", s.view))
}

func (s *shell) run() error {
	line, err := s.rl.Readline()
	if err != nil {
		return err
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	args := strings.Fields(line)
	err = s.dispatch(args[0], args[1:], line)
	s.setPrompt()
	return err
}

func (s *shell) dispatch(cmd string, args []string, line string) error {
	switch cmd {
	case "exit", "quit":
		fmt.Println("Goodbye.")
		return io.EOF
	case "help":
		s.printHelp()
		return nil
	case "home", "search", "planner", "programs", "settings":
		return s.switchView(cmd)
	case "login":
		return s.login(args)
	case "signup":
		return s.signup(args)
	}
	if s.view == viewLogin {
		return fmt.Errorf("log in first (or 'help')")
	}
	switch s.view {
	case viewSearch:
		return s.searchCommand(cmd, args, line)
	case viewPlanner:
		return s.plannerCommand(cmd, args)
	case viewSettings:
		return s.settingsCommand(cmd)
	default:
		return fmt.Errorf("unknown command: %s", cmd)
	}
}

// switchView changes the active view. An in-flight search keeps
// running; its result is waiting if the user comes back.
func (s *shell) switchView(view string) error {
	if s.view == viewLogin && s.user == "" && !s.offline {
		return fmt.Errorf("log in first")
	}
	s.view = view
	switch view {
	case viewHome:
		s.renderHome()
	case viewSearch:
		s.renderFilters()
	case viewPlanner:
		return s.loadPlanner()
	case viewPrograms:
		s.renderPrograms()
	case viewSettings:
		fmt.Println("Commands: whoami, logout")
	}
	return nil
}

func (s *shell) login(args []string) error {
	if s.offline {
		return fmt.Errorf("not available offline")
	}
	if len(args) < 1 {
		return fmt.Errorf("usage: login <name>")
	}
	password, err := s.rl.ReadPassword("password: ")
	if err != nil {
		return err
	}
	if err = s.client.Login(args[0], string(password)); err != nil {
		return err
	}
	s.user = args[0]
	fmt.Printf("Logged in as %s.\n", s.user)
	return s.switchView(viewHome)
}

func (s *shell) signup(args []string) error {
	if s.offline {
		return fmt.Errorf("not available offline")
	}
	if len(args) < 2 {
		return fmt.Errorf("usage: signup <name> <email>")
	}
	password, err := s.rl.ReadPassword("password: ")
	if err != nil {
		return err
	}
	if err = s.client.Signup(args[0], args[1], string(password)); err != nil {
		return err
	}
	s.user = args[0]
	fmt.Printf("Account created, logged in as %s.\n", s.user)
	return s.switchView(viewHome)
}

func (s *shell) settingsCommand(cmd string) error {
	switch cmd {
	case "whoami":
		if s.user == "" {
			fmt.Println("not logged in")
		} else {
			fmt.Println(s.user)
		}
		return nil
	case "logout":
		if err := s.client.Logout(); err != nil {
			return err
		}
		s.user = ""
		s.view = viewLogin
		fmt.Println("Logged out.")
		return nil
	default:
		return fmt.Errorf("unknown command: %s", cmd)
	}
}

func (s *shell) loadPlanner() error {
	if s.offline {
		return fmt.Errorf("the planner needs a server")
	}
	sections, err := s.client.Planner()
	if err != nil {
		return err
	}
	s.planner.Load(sections)
	if len(sections) == 0 {
		fmt.Println("Planner is empty. Add sections from the search view.")
		return nil
	}
	fmt.Printf("Planner (%d sections):\n", len(sections))
	for i := range sections {
		d := catalog.NewDisplayCourse(&sections[i])
		s.renderCard(&d)
	}
	return nil
}

func (s *shell) plannerCommand(cmd string, args []string) error {
	id, err := oneID(args)
	if err != nil {
		return fmt.Errorf("usage: %s <section id>", cmd)
	}
	switch cmd {
	case "add":
		if err = s.client.PlannerAdd(id); err != nil {
			return err
		}
		s.planner.Add(strconv.Itoa(id))
		fmt.Println("Added.")
	case "remove", "rm":
		if err = s.client.PlannerRemove(id); err != nil {
			return err
		}
		s.planner.Remove(strconv.Itoa(id))
		fmt.Println("Removed.")
	default:
		return fmt.Errorf("unknown command: %s", cmd)
	}
	return nil
}

func oneID(args []string) (int, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("expected one id")
	}
	return strconv.Atoi(args[0])
}

func (s *shell) printHelp() {
	fmt.Print(`Views: home, search, planner, programs, settings
Global: login <name>, signup <name> <email>, help, exit

Search view:
  query <text>       set the search text ("CS 101" becomes an exact match)
  dept <code|all>    filter by department
  term <name|all>    filter by term (e.g. "Fall 2025")
  day <Mon..Sun>     toggle a weekday
  mode <label|all>   instruction mode
  level <bucket|all> course level (100..500+)
  credits <n|5+|all> unit count
  career <name|all>  Undergraduate or Graduate
  open               toggle open-sections-only
  filters            show current selections
  reset              restore defaults
  search             run the search with the current filters
  show <id>          section details
  add <id>           save a section to the planner

Planner view:
  add <id>, remove <id>
`)
}
