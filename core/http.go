package core

// HTTPAdapter mounts the account routes of an App onto a framework.
type HTTPAdapter interface {
	RegisterRoutes(app *App) error
}
