// Package metrics holds the prometheus collectors of every component.
package metrics

import "github.com/goodnatureofminers/blockinsight7000-verifier/internal/model"

const (
	namespace    = "blockinsight7000"
	unknownLabel = "unknown"
)

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

func coinLabel(coin model.Coin) string {
	if coin == "" {
		return unknownLabel
	}
	return string(coin)
}

func networkLabel(network model.Network) string {
	if network == "" {
		return unknownLabel
	}
	return string(network)
}
