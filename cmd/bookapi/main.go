package main

import "os"

// @title Book Catalog API
// @version 1.0
// @description REST API for a catalog of books and their reader reviews.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey SessionCookie
// @in header
// @name Cookie
// @description Session cookie set by /auth/login, /auth/register or an OAuth callback.
func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
