package models

// AppView names the screen a client should show after a mutation. The
// API returns it as a navigation hint; the server never renders views.
type AppView string

const (
	ViewStore   AppView = "store"
	ViewAdmin   AppView = "admin"
	ViewCart    AppView = "cart"
	ViewProfile AppView = "profile"
)
