// Command splitwise-auth runs the OAuth handshake against Splitwise and
// prints the resulting access token as JSON.
//
// Consumer credentials are read from SPLITWISE_CONSUMER_KEY and
// SPLITWISE_CONSUMER_SECRET (or a .env file).
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	splitwise "github.com/masa-finance/go-splitwise"
)

func main() {
	out := flag.String("out", "", "write the access token JSON to this file instead of stdout")
	verbose := flag.Bool("v", false, "log every request")
	flag.Parse()

	if *verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	cfg, err := splitwise.LoadConfig()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}
	client, err := splitwise.NewFromConfig(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create client")
	}

	ctx := context.Background()
	authorizeURL, secret, err := client.GetAuthorizeURL(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to get request token")
	}
	requestToken, err := requestTokenFrom(authorizeURL)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to read request token")
	}

	fmt.Fprintf(os.Stderr, "Open this URL and authorize the application:\n\n  %s\n\nVerifier: ", authorizeURL)
	verifier, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		logrus.WithError(err).Fatal("Failed to read verifier")
	}

	token, err := client.GetAccessToken(ctx, requestToken, secret, strings.TrimSpace(verifier))
	if err != nil {
		logrus.WithError(err).Fatal("Failed to exchange verifier")
	}

	data, err := json.MarshalIndent(token, "", "  ")
	if err != nil {
		logrus.WithError(err).Fatal("Failed to encode token")
	}
	if *out == "" {
		fmt.Println(string(data))
		return
	}
	if err := os.WriteFile(*out, append(data, '\n'), 0o600); err != nil {
		logrus.WithError(err).Fatal("Failed to write token")
	}
	logrus.WithField("file", *out).Info("Access token saved")
}

func requestTokenFrom(authorizeURL string) (string, error) {
	u, err := url.Parse(authorizeURL)
	if err != nil {
		return "", err
	}
	token := u.Query().Get("oauth_token")
	if token == "" {
		return "", fmt.Errorf("no oauth_token in %s", authorizeURL)
	}
	return token, nil
}
