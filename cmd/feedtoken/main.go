// Command feedtoken mints an access token for the operator feed.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"nanoconsult/internal/operator"
)

func main() {
	name := flag.String("operator", "", "operator name embedded in the token")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	_ = godotenv.Load()

	secret := os.Getenv("OPERATOR_FEED_SECRET")
	if secret == "" {
		fmt.Fprintln(os.Stderr, "OPERATOR_FEED_SECRET is not set")
		os.Exit(1)
	}
	if *name == "" {
		fmt.Fprintln(os.Stderr, "usage: feedtoken -operator <name> [-ttl <duration>]")
		os.Exit(1)
	}

	tokens := operator.NewTokenService(secret, *ttl)
	token, err := tokens.Generate(*name)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to generate token:", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
