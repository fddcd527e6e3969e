// Command admintoken issues a signed admin token with the configured secret.
//
//	RS_ENV=production admintoken -actor ops-1 -name "Ops"
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/amirhossein-jamali/raffle-service/internal/infrastructure/adapter/security"
	timeProvider "github.com/amirhossein-jamali/raffle-service/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/raffle-service/internal/infrastructure/config"
)

func main() {
	actor := flag.String("actor", "", "admin identifier stored in the token subject")
	name := flag.String("name", "", "display name")
	ttl := flag.Duration("ttl", 0, "token lifetime, defaults to auth.tokenTTL")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.Auth.JWTSecret == "" {
		log.Fatal("auth.jwtSecret is not configured")
	}

	lifetime := cfg.Auth.TokenTTL
	if *ttl > 0 {
		lifetime = *ttl
	}

	tokens, err := security.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.Issuer, lifetime, timeProvider.NewRealTimeProvider())
	if err != nil {
		log.Fatalf("Failed to create token manager: %v", err)
	}

	token, err := tokens.Issue(*actor, *name)
	if err != nil {
		fmt.Fprintln(os.Stderr, "usage: admintoken -actor <id> [-name <name>] [-ttl 12h]")
		log.Fatalf("Failed to issue token: %v", err)
	}

	fmt.Println(token)
	fmt.Fprintf(os.Stderr, "expires at %s\n", time.Now().Add(lifetime).UTC().Format(time.RFC3339))
}
