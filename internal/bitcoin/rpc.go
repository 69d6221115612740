package bitcoin

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/btcsuite/btcd/rpcclient"
)

// RPCOptions are the node connection flags shared by the binaries.
type RPCOptions struct {
	URL      string `long:"rpc-url" env:"RPC_URL" description:"Bitcoin RPC URL" default:"http://127.0.0.1:8332"`
	User     string `long:"rpc-user" env:"RPC_USER" description:"Bitcoin RPC username"`
	Password string `long:"rpc-password" env:"RPC_PASSWORD" description:"Bitcoin RPC password"`
}

// NewRPCClient opens an HTTP POST mode client to the node described by opts.
func NewRPCClient(opts RPCOptions) (*rpcclient.Client, error) {
	cfg, err := connConfig(opts)
	if err != nil {
		return nil, err
	}
	return rpcclient.New(cfg, nil)
}

func connConfig(opts RPCOptions) (*rpcclient.ConnConfig, error) {
	parsed, err := url.Parse(opts.URL)
	if err != nil {
		return nil, fmt.Errorf("parse rpc url: %w", err)
	}
	if parsed.Scheme != "http" {
		return nil, fmt.Errorf("rpc url scheme %q not supported, use http", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, errors.New("rpc url missing host")
	}

	return &rpcclient.ConnConfig{
		Host:         parsed.Host,
		User:         opts.User,
		Pass:         opts.Password,
		HTTPPostMode: true,
		DisableTLS:   true,
	}, nil
}
