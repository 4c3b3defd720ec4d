package http

import (
	"log/slog"
	"net/http"
	"strings"
)

// Role names accepted by the seeded user table.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RolePublic  = "public"
)

type RouterConfig struct {
	Auth         *AuthHandler
	Universities *UniversityHandler
	Schedules    *ScheduleHandler
	Sessions     SessionValidator
	Logger       *slog.Logger
	Middleware   []func(http.Handler) http.Handler
}

// NewRouter wires the HTTP surface. Reads are public; mutations require a
// session, and creating universities or rooms additionally requires the
// admin (or, for rooms, manager) role.
func NewRouter(cfg RouterConfig) http.Handler {
	mux := http.NewServeMux()

	if cfg.Auth != nil {
		mux.HandleFunc("/login", func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				methodNotAllowed(w, http.MethodPost)
				return
			}
			cfg.Auth.Login(w, r)
		})
		mux.HandleFunc("/logout", func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				methodNotAllowed(w, http.MethodPost)
				return
			}
			cfg.Auth.Logout(w, r)
		})
	}

	if cfg.Universities != nil {
		mux.HandleFunc("/universities", func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet:
				cfg.Universities.List(w, r)
			case http.MethodPost:
				cfg.protect(http.HandlerFunc(cfg.Universities.Create), RoleAdmin).ServeHTTP(w, r)
			default:
				methodNotAllowed(w, http.MethodGet, http.MethodPost)
			}
		})
		mux.HandleFunc("/universities/", func(w http.ResponseWriter, r *http.Request) {
			cfg.dispatchUniversity(w, r)
		})
	}

	var handler http.Handler = mux
	for i := len(cfg.Middleware) - 1; i >= 0; i-- {
		if cfg.Middleware[i] != nil {
			handler = cfg.Middleware[i](handler)
		}
	}
	return handler
}

// dispatchUniversity routes paths of the form
// /universities/{id}[/rooms|/personnel|/classes[/{childID}[/availability]]].
func (cfg RouterConfig) dispatchUniversity(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/universities/")
	segments := strings.Split(strings.Trim(rest, "/"), "/")
	if len(segments) == 0 || segments[0] == "" {
		http.NotFound(w, r)
		return
	}
	universityID := segments[0]

	if len(segments) == 1 {
		if r.Method != http.MethodGet {
			methodNotAllowed(w, http.MethodGet)
			return
		}
		cfg.Universities.Get(w, r, universityID)
		return
	}

	switch segments[1] {
	case "rooms":
		cfg.dispatchRooms(w, r, universityID, segments[2:])
	case "personnel":
		cfg.dispatchPersonnel(w, r, universityID, segments[2:])
	case "classes":
		cfg.dispatchClasses(w, r, universityID, segments[2:])
	default:
		http.NotFound(w, r)
	}
}

func (cfg RouterConfig) dispatchRooms(w http.ResponseWriter, r *http.Request, universityID string, segments []string) {
	switch len(segments) {
	case 0:
		switch r.Method {
		case http.MethodGet:
			cfg.Universities.ListRooms(w, r, universityID)
		case http.MethodPost:
			cfg.protect(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				cfg.Universities.AddRoom(w, r, universityID)
			}), RoleAdmin, RoleManager).ServeHTTP(w, r)
		default:
			methodNotAllowed(w, http.MethodGet, http.MethodPost)
		}
	case 1:
		if r.Method != http.MethodGet {
			methodNotAllowed(w, http.MethodGet)
			return
		}
		cfg.Universities.GetRoom(w, r, universityID, segments[0])
	case 2:
		if segments[1] != "availability" || cfg.Schedules == nil {
			http.NotFound(w, r)
			return
		}
		if r.Method != http.MethodGet {
			methodNotAllowed(w, http.MethodGet)
			return
		}
		cfg.Schedules.RoomAvailability(w, r, universityID, segments[0])
	default:
		http.NotFound(w, r)
	}
}

func (cfg RouterConfig) dispatchPersonnel(w http.ResponseWriter, r *http.Request, universityID string, segments []string) {
	switch len(segments) {
	case 0:
		switch r.Method {
		case http.MethodGet:
			cfg.Universities.ListPersonnel(w, r, universityID)
		case http.MethodPost:
			cfg.protect(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				cfg.Universities.AddPersonnel(w, r, universityID)
			})).ServeHTTP(w, r)
		default:
			methodNotAllowed(w, http.MethodGet, http.MethodPost)
		}
	case 1:
		if r.Method != http.MethodGet {
			methodNotAllowed(w, http.MethodGet)
			return
		}
		cfg.Universities.GetPersonnel(w, r, universityID, segments[0])
	default:
		http.NotFound(w, r)
	}
}

func (cfg RouterConfig) dispatchClasses(w http.ResponseWriter, r *http.Request, universityID string, segments []string) {
	switch len(segments) {
	case 0:
		switch r.Method {
		case http.MethodGet:
			cfg.Universities.ListClasses(w, r, universityID)
		case http.MethodPost:
			if cfg.Schedules == nil {
				http.NotFound(w, r)
				return
			}
			cfg.protect(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				cfg.Schedules.ScheduleClass(w, r, universityID)
			})).ServeHTTP(w, r)
		default:
			methodNotAllowed(w, http.MethodGet, http.MethodPost)
		}
	case 1:
		if r.Method != http.MethodGet {
			methodNotAllowed(w, http.MethodGet)
			return
		}
		cfg.Universities.GetClass(w, r, universityID, segments[0])
	default:
		http.NotFound(w, r)
	}
}

// protect requires a valid session and, when roles are given, at least one
// of them. Without a session validator the handler runs unprotected, which
// only happens in focused tests.
func (cfg RouterConfig) protect(handler http.Handler, roles ...string) http.Handler {
	if cfg.Sessions == nil {
		return handler
	}
	if len(roles) > 0 {
		handler = RequireRoles(cfg.Logger, roles...)(handler)
	}
	return RequireSession(cfg.Sessions, cfg.Logger)(handler)
}

func methodNotAllowed(w http.ResponseWriter, allowed ...string) {
	if len(allowed) > 0 {
		w.Header().Set("Allow", strings.Join(allowed, ", "))
	}
	http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
}
