// Package handler provides the HTTP handlers for the bookmark API.
//
//	@title			Bookmark App API
//	@version		1.0
//	@description	API endpoints for the bookmarking backend: user signup,
//	@description	login and per-user bookmark list management.
//
//	@license.name	MIT
//
//	@host			localhost:9000
//	@BasePath		/
//
//	@tag.name		Users
//	@tag.description	List registered users.
//
//	@tag.name		Signup
//	@tag.description	Create a user account with email and password.
//
//	@tag.name		Login
//	@tag.description	Authenticate with email and password.
//
//	@tag.name		Bookmark
//	@tag.description	Replace a user's bookmark list.
package handler
