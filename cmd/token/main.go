// Command token prints a signed JWT for local testing of the archive
// endpoints.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/saulo-duarte/roadmap-lambda/internal/auth"
	"github.com/saulo-duarte/roadmap-lambda/internal/config"
)

func main() {
	userID := flag.String("user", uuid.NewString(), "user id to embed in the token")
	role := flag.String("role", "student", "role claim")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	cfg := config.Load()
	if cfg.JWTSecret == "" {
		fmt.Fprintln(os.Stderr, "JWT_SECRET is not set")
		os.Exit(1)
	}
	auth.Init(cfg.JWTSecret)

	token, err := auth.GenerateJWT(*userID, *role, *ttl)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(token)
}
