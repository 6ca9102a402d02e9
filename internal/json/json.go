// Package json is the wire codec for records. It uses sonic on amd64/arm64
// and encoding/json elsewhere.
package json

import (
	stdjson "encoding/json"
	"runtime"

	"github.com/bytedance/sonic"
)

var (
	Marshal   func(v any) ([]byte, error)
	Unmarshal func(data []byte, v any) error

	usingSonic bool
)

func init() {
	if runtime.GOARCH == "amd64" || runtime.GOARCH == "arm64" {
		api := sonic.ConfigStd
		Marshal = api.Marshal
		Unmarshal = api.Unmarshal
		usingSonic = true
		return
	}
	Marshal = stdjson.Marshal
	Unmarshal = stdjson.Unmarshal
}

// Valid reports whether data is a syntactically valid JSON document.
func Valid(data []byte) bool {
	if usingSonic {
		return sonic.Valid(data)
	}
	return stdjson.Valid(data)
}

// IsUsingSonic reports whether sonic backs Marshal and Unmarshal.
func IsUsingSonic() bool { return usingSonic }
