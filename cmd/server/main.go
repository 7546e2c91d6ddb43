package main

import (
	"fmt"
	"os"

	_ "github.com/ridwanfathin/shop-admin-service/docs"
)

// @title Shop Admin Reporting API
// @version 1.0
// @description Read-only reporting endpoints for the shop admin dashboard.
// @BasePath /
func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
