package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/gardenlawn/shopfeed/internal/api/auth"
)

// Dev helper: sign an RS256 bearer token for the admin endpoints.
//
//	mint-token -key private.pem -role admin -ttl 24h
func main() {
	keyPath := flag.String("key", "", "path to RSA private key PEM")
	role := flag.String("role", auth.RoleAdmin, "role claim")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	if *keyPath == "" {
		fmt.Fprintln(os.Stderr, "usage: mint-token -key private.pem [-role admin] [-ttl 24h]")
		os.Exit(2)
	}

	pemBytes, err := os.ReadFile(*keyPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read key: %v\n", err)
		os.Exit(1)
	}

	priv, err := jwt.ParseRSAPrivateKeyFromPEM(pemBytes)
	if err != nil {
		fmt.Fprintf(os.Stderr, "parse key: %v\n", err)
		os.Exit(1)
	}

	token, err := auth.SignRS256(priv, *role, *ttl)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sign: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(token)
}
