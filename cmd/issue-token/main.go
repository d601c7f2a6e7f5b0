// Command issue-token prints a bearer token for an account, signed with the
// server's JWT configuration.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"badgeregistry/internal/badge/models"
	jwttoken "badgeregistry/internal/jwt_token"
	"badgeregistry/internal/platform/config"
)

func main() {
	account := flag.String("account", "", "account id the token is issued to")
	ttl := flag.Duration("ttl", time.Hour, "token lifetime")
	flag.Parse()

	if err := run(*account, *ttl); err != nil {
		fmt.Fprintf(os.Stderr, "issue-token: %v\n", err)
		os.Exit(1)
	}
}

func run(account string, ttl time.Duration) error {
	id, err := models.ParseAccountID(account)
	if err != nil {
		return err
	}
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}
	svc := jwttoken.NewJWTService(cfg.Server.JWTSigningKey, cfg.Server.JWTIssuer, cfg.Server.JWTAudience)
	token, err := svc.GenerateAccessToken(string(id), ttl)
	if err != nil {
		return err
	}
	fmt.Println(token)
	return nil
}
