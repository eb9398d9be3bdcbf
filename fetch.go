package main

import (
	"strings"
)

// fetchCredentials returns the credentials mode used to fetch url. Local
// object and data URLs carry no cookies.
func fetchCredentials(url string) string {
	if strings.HasPrefix(url, "blob:") || strings.HasPrefix(url, "data:") {
		return "omit"
	}
	return "same-origin"
}
