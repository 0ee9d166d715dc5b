// Copyright 2025 The AssetServe Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the assetserve HTTP server, IPC server and CLI.

AssetServe keeps a small catalog of cryptocurrencies and stocks in memory,
indexes names, symbols and categories in a Patricia trie, and answers
prefix searches ranked by a fixed scoring formula.

# Usage

Serve the JSON API on the default port with the built-in catalog:

	assetserve serve

Serve a catalog file on another port with debug logging:

	assetserve serve --catalog assets.toml --port 9090 -d

Speak msgpack over stdin/stdout instead of HTTP:

	assetserve ipc

Query from the terminal:

	assetserve query bit --type crypto
	assetserve query -i

Write the built-in catalog to disk as a starting point for edits:

	assetserve export assets.toml

# Configuration

Settings live in config.toml under the user config directory and are
created with defaults on first run:

	[server]
	addr = "127.0.0.1"
	port = 8080
	allow_origin = "*"

	[search]
	result_limit = 50
	recommend_limit = 5

	[scoring]
	preferences = ["defi", "ai", "tech"]

Flags override the file for the run they are given on.
*/
package main

import (
	"os"

	"github.com/bastiangx/assetserve/cmd/assetserve/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
