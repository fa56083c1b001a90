package guard

import (
	"net/url"
	"strings"
)

// AuthState is what the guard sees of the visitor: the raw cookie facts,
// nothing decoded. Mutating them is the login/logout flow's business.
type AuthState struct {
	HasToken bool
	IsAdmin  bool
}

// Decision tells the HTTP binding what to do with a navigation request.
type Decision struct {
	Allow      bool
	RedirectTo string
}

var (
	memberPaths = []string{"/dashboard"}
	adminPaths  = []string{"/admin"}
	publicPaths = []string{"/", "/login", "/register", "/forgot-password"}
)

func matchesAny(path string, roots []string) bool {
	for _, root := range roots {
		if path == root || strings.HasPrefix(path, root+"/") {
			return true
		}
	}
	return false
}

// Decide classifies the path and applies the access rules in order. Member
// and admin protection must stay ahead of the logged-in public redirect:
// rule 3 only fires on the exact login/register paths.
func Decide(path string, s AuthState) Decision {
	isAdminPath := matchesAny(path, adminPaths)
	isMemberPath := matchesAny(path, memberPaths)

	if isAdminPath && (!s.HasToken || !s.IsAdmin) {
		return Decision{RedirectTo: "/dashboard"}
	}

	if (isMemberPath || isAdminPath) && !s.HasToken {
		return Decision{RedirectTo: "/login?redirect=" + url.QueryEscape(path)}
	}

	if s.HasToken && (path == "/login" || path == "/register") {
		return Decision{RedirectTo: "/dashboard"}
	}

	return Decision{Allow: true}
}

// IsPublic reports whether the path needs no session at all, used to skip
// profile initialization on marketing pages.
func IsPublic(path string) bool {
	for _, p := range publicPaths {
		if path == p {
			return true
		}
	}
	return false
}
