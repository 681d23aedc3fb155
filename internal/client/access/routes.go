package access

// Route is a static catalog entry for a dashboard page.
type Route struct {
	Path string

	// Public routes render without authentication.
	Public bool

	// AdminOnly routes additionally require the admin role.
	AdminOnly bool
}

const (
	// LoginPath is where unauthenticated principals are redirected.
	LoginPath = "/login"

	// DefaultPath is the authenticated landing page; it also receives
	// soft-denied admin route requests.
	DefaultPath = "/dashboard"
)

var routes = []Route{
	{Path: LoginPath, Public: true},
	{Path: "/register", Public: true},
	{Path: DefaultPath},
	{Path: "/profile"},
	{Path: "/api-keys"},
	{Path: "/scan"},
	{Path: "/results"},
	{Path: "/history"},
	{Path: "/admin", AdminOnly: true},
}

// RouteByPath looks a route up in the static table.
func RouteByPath(path string) (Route, bool) {
	for _, r := range routes {
		if r.Path == path {
			return r, true
		}
	}
	return Route{}, false
}

// Routes returns the route table in stable order.
func Routes() []Route {
	out := make([]Route, len(routes))
	copy(out, routes)
	return out
}
