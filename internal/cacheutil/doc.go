// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package cacheutil provides the file-based cache that keeps a fetched word
// list on disk so repeat runs skip the network.
package cacheutil
