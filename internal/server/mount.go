// Package server runs the HTTP listener behind the mirror.
package server

import (
	"errors"
	"net/http"
	"path"
	"strings"
)

var errBasePath = errors.New("base path must be a plain URL path without '.' or '..' segments")

// NormalizeBasePath cleans a mount point such as "mirror/" into "/mirror".
// The root mount is returned as "".
func NormalizeBasePath(raw string) (string, error) {
	p := strings.TrimSpace(raw)
	if strings.Contains(p, "://") || strings.ContainsAny(p, "?#") {
		return "", errBasePath
	}
	p = strings.Trim(p, "/")
	if p == "" {
		return "", nil
	}
	for _, seg := range strings.Split(p, "/") {
		if seg == "." || seg == ".." {
			return "", errBasePath
		}
	}
	return path.Clean("/" + p), nil
}

// Mount serves handler below base. Requests for base itself are redirected
// to base + "/".
func Mount(base string, handler http.Handler) http.Handler {
	if base == "" {
		return handler
	}
	mux := http.NewServeMux()
	mux.Handle(base+"/", http.StripPrefix(base, handler))
	mux.Handle(base, http.RedirectHandler(base+"/", http.StatusMovedPermanently))
	return mux
}
