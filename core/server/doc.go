// Package server holds the HTTP server configuration.
//
// While the command entry point handles the server startup, this package defines the
// settings it reads: the listen port, the API key guarding every route and the graceful
// shutdown bound.
//
// # Usage
//
//	app.Listen(cfg.Server.Address())
//	...
//	_ = app.ShutdownWithTimeout(cfg.Server.ShutdownTimeout())
package server
